package request

import "strings"

// QuoteRequest is the quote-builder payload. All three selection fields
// are required; unrecognized values are rejected downstream by the
// pricing estimator, never defaulted.
type QuoteRequest struct {
	ProjectType string `json:"project_type" binding:"required"`
	Complexity  string `json:"complexity" binding:"required"`
	Timeline    string `json:"timeline" binding:"required"`
	Name        string `json:"name"`
	Email       string `json:"email"`
}

func (r QuoteRequest) ResolveProjectType() string { return strings.TrimSpace(r.ProjectType) }
func (r QuoteRequest) ResolveComplexity() string  { return strings.TrimSpace(r.Complexity) }
func (r QuoteRequest) ResolveTimeline() string    { return strings.TrimSpace(r.Timeline) }
