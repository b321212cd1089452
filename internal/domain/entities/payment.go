package entities

import "time"

// Payment is the locally persisted record of a Billplz bill raised for a
// quote. The provider owns the canonical bill state; Paid/State here are
// the last values observed via polling or a verified webhook.
//
// Storage model (DynamoDB):
//   - PK: id (the provider-assigned bill id)
//   - GSI1 (quote_id-index): quote_id
type Payment struct {
	ID           string    `json:"id"`
	QuoteID      string    `json:"quote_id"`
	CollectionID string    `json:"collection_id"`
	AmountSen    int64     `json:"amount_sen"`
	Currency     string    `json:"currency"`
	URL          string    `json:"url"`
	Paid         bool      `json:"paid"`
	State        string    `json:"state"`
	PaidAt       time.Time `json:"paid_at,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
