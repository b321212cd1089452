package request

import "testing"

func TestQuoteRequest_ResolveSelections(t *testing.T) {
	r := QuoteRequest{
		ProjectType: " website ",
		Complexity:  "standard",
		Timeline:    " 3-4 months",
	}
	if got := r.ResolveProjectType(); got != "website" {
		t.Fatalf("expected website, got %q", got)
	}
	if got := r.ResolveComplexity(); got != "standard" {
		t.Fatalf("expected standard, got %q", got)
	}
	if got := r.ResolveTimeline(); got != "3-4 months" {
		t.Fatalf("expected 3-4 months, got %q", got)
	}

	r2 := QuoteRequest{ProjectType: "   "}
	if got := r2.ResolveProjectType(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
