package request

// PaymentRequest is the optional body for payment creation. AmountAUD
// overrides the default (the quote's minimum price); payer fields
// override the contact details captured on the quote.
type PaymentRequest struct {
	AmountAUD float64 `json:"amount_aud"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Mobile    string  `json:"mobile"`
}
