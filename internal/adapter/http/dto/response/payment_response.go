package response

import (
	"time"

	"agency_billing/internal/domain/entities"
)

type PaymentResponse struct {
	ID           string     `json:"id"`
	QuoteID      string     `json:"quote_id"`
	CollectionID string     `json:"collection_id,omitempty"`
	AmountSen    int64      `json:"amount_sen"`
	Currency     string     `json:"currency"`
	URL          string     `json:"url,omitempty"`
	Paid         bool       `json:"paid"`
	State        string     `json:"state"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	res := PaymentResponse{
		ID:           p.ID,
		QuoteID:      p.QuoteID,
		CollectionID: p.CollectionID,
		AmountSen:    p.AmountSen,
		Currency:     p.Currency,
		URL:          p.URL,
		Paid:         p.Paid,
		State:        p.State,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if !p.PaidAt.IsZero() {
		paidAt := p.PaidAt
		res.PaidAt = &paidAt
	}
	return res
}
