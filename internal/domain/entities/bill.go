package entities

// Bill is the wire representation of a Billplz bill. Bills are immutable
// once created; only paid/state change server-side. This service never
// updates or deletes a bill.
type Bill struct {
	ID              string `json:"id"`
	CollectionID    string `json:"collection_id"`
	Paid            bool   `json:"paid"`
	State           string `json:"state"`
	Amount          int64  `json:"amount"`
	PaidAmount      int64  `json:"paid_amount"`
	DueAt           string `json:"due_at"`
	Email           string `json:"email"`
	Mobile          string `json:"mobile"`
	Name            string `json:"name"`
	URL             string `json:"url"`
	Reference1Label string `json:"reference_1_label"`
	Reference1      string `json:"reference_1"`
	Reference2Label string `json:"reference_2_label"`
	Reference2      string `json:"reference_2"`
	RedirectURL     string `json:"redirect_url"`
	CallbackURL     string `json:"callback_url"`
	Description     string `json:"description"`
}

// Collection is the wire representation of a Billplz collection, the
// grouping bucket bills are created under.
type Collection struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Logo  CollectionLogo `json:"logo"`
}

type CollectionLogo struct {
	ThumbURL string `json:"thumb_url"`
	LargeURL string `json:"large_url"`
}

// CreateBillParams carries the outgoing fields for bill creation.
// Amount is already in sen (smallest MYR unit); the gateway client does
// not re-round it. Optional fields left empty are omitted from the form
// body entirely rather than sent as empty strings.
type CreateBillParams struct {
	CollectionID string
	Email        string
	Name         string
	Amount       int64
	Description  string
	CallbackURL  string

	RedirectURL     string
	Mobile          string
	DueAt           string
	Reference1      string
	Reference1Label string
	Reference2      string
	Reference2Label string
}
