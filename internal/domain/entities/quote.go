package entities

import (
	"time"

	"agency_billing/internal/domain/pricing"
)

// QuoteStatus represents the lifecycle of a quote.
//
// Domain notes:
//   - A quote starts pending and must be confirmed before a payment
//     can be raised against it.

type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusConfirmed QuoteStatus = "confirmed"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

// Quote is a calculated project quote persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - MinPrice/MaxPrice are whole AUD, produced by the pricing estimator.
type Quote struct {
	ID          string              `json:"id"`
	ProjectType pricing.ProjectType `json:"project_type"`
	Complexity  pricing.Complexity  `json:"complexity"`
	Timeline    pricing.Timeline    `json:"timeline"`
	MinPrice    int64               `json:"min_price"`
	MaxPrice    int64               `json:"max_price"`
	Duration    string              `json:"duration"`
	Features    []string            `json:"features"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Status      QuoteStatus         `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
