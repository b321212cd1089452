package response

import (
	"time"

	"agency_billing/internal/domain/entities"
)

type QuoteResponse struct {
	ID          string    `json:"id"`
	ProjectType string    `json:"project_type"`
	Complexity  string    `json:"complexity"`
	Timeline    string    `json:"timeline"`
	MinPrice    int64     `json:"min_price"`
	MaxPrice    int64     `json:"max_price"`
	Duration    string    `json:"duration"`
	Features    []string  `json:"features"`
	Name        string    `json:"name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:          q.ID,
		ProjectType: string(q.ProjectType),
		Complexity:  string(q.Complexity),
		Timeline:    string(q.Timeline),
		MinPrice:    q.MinPrice,
		MaxPrice:    q.MaxPrice,
		Duration:    q.Duration,
		Features:    q.Features,
		Name:        q.Name,
		Email:       q.Email,
		Status:      string(q.Status),
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}
