package pricing

import (
	"errors"
	"reflect"
	"testing"
)

func TestEstimate_ConcreteScenarios(t *testing.T) {
	t.Run("website standard 3-4 months", func(t *testing.T) {
		est, err := Estimate(ProjectTypeWebsite, ComplexityStandard, TimelineStandard)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if est.MinPrice != 6400 || est.MaxPrice != 9600 {
			t.Fatalf("unexpected band: %+v", est)
		}
		if est.Duration != "1-2 months" {
			t.Fatalf("unexpected duration: %q", est.Duration)
		}
		if len(est.Features) != 5 {
			t.Fatalf("expected 5 features, got %d", len(est.Features))
		}
	})

	t.Run("apps enterprise rush", func(t *testing.T) {
		est, err := Estimate(ProjectTypeApps, ComplexityEnterprise, TimelineRush)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 15000 * 2.5 * 1.2 = 45000
		if est.MinPrice != 36000 || est.MaxPrice != 54000 {
			t.Fatalf("unexpected band: %+v", est)
		}
		if est.Duration != "3-6 months" {
			t.Fatalf("unexpected duration: %q", est.Duration)
		}
	})
}

func TestEstimate_PriceOrderingAllTriples(t *testing.T) {
	for _, pt := range ProjectTypes {
		for _, cx := range Complexities {
			for _, tl := range Timelines {
				est, err := Estimate(pt, cx, tl)
				if err != nil {
					t.Fatalf("%s/%s/%s: unexpected error: %v", pt, cx, tl, err)
				}
				if est.MaxPrice < est.MinPrice {
					t.Fatalf("%s/%s/%s: max %d < min %d", pt, cx, tl, est.MaxPrice, est.MinPrice)
				}
				if est.MinPrice <= 0 {
					t.Fatalf("%s/%s/%s: non-positive min %d", pt, cx, tl, est.MinPrice)
				}
			}
		}
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	a, err := Estimate(ProjectTypeAIAutomation, ComplexityAdvanced, TimelineFlexible)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Estimate(ProjectTypeAIAutomation, ComplexityAdvanced, TimelineFlexible)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("estimates differ: %+v vs %+v", a, b)
	}
}

func TestEstimate_MonotonicInComplexity(t *testing.T) {
	for _, pt := range ProjectTypes {
		for _, tl := range Timelines {
			var prev int64
			for i, cx := range Complexities {
				est, err := Estimate(pt, cx, tl)
				if err != nil {
					t.Fatalf("%s/%s/%s: unexpected error: %v", pt, cx, tl, err)
				}
				if i > 0 && est.MinPrice <= prev {
					t.Fatalf("%s/%s: min price not increasing at %s (%d <= %d)", pt, tl, cx, est.MinPrice, prev)
				}
				prev = est.MinPrice
			}
		}
	}
}

func TestEstimate_UnrecognizedInputs(t *testing.T) {
	cases := []struct {
		name  string
		pt    ProjectType
		cx    Complexity
		tl    Timeline
		field string
	}{
		{name: "project type", pt: "invalid_type", cx: ComplexityBasic, tl: TimelineFlexible, field: "project_type"},
		{name: "complexity", pt: ProjectTypeWebsite, cx: "gigantic", tl: TimelineFlexible, field: "complexity"},
		{name: "timeline", pt: ProjectTypeWebsite, cx: ComplexityBasic, tl: "yesterday", field: "timeline"},
		{name: "empty project type", pt: "", cx: ComplexityBasic, tl: TimelineFlexible, field: "project_type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Estimate(tc.pt, tc.cx, tc.tl)
			var inputErr *InvalidInputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("expected InvalidInputError, got %v", err)
			}
			if inputErr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, inputErr.Field)
			}
		})
	}
}

func TestEstimate_FeaturesAreCopies(t *testing.T) {
	a, _ := Estimate(ProjectTypeWebsite, ComplexityBasic, TimelineFlexible)
	a.Features[0] = "mutated"

	b, _ := Estimate(ProjectTypeWebsite, ComplexityBasic, TimelineFlexible)
	if b.Features[0] == "mutated" {
		t.Fatalf("feature table leaked through returned slice")
	}
}
