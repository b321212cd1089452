package pricing

import (
	"fmt"
	"math"
)

// ProjectType identifies one of the agency's service lines.
type ProjectType string

const (
	ProjectTypeWebsite      ProjectType = "website"
	ProjectTypeApps         ProjectType = "apps"
	ProjectTypeAIAutomation ProjectType = "ai_automation"
	ProjectTypeMarketing    ProjectType = "marketing"
)

// Complexity is the scoping tier selected in the quote builder.
type Complexity string

const (
	ComplexityBasic      Complexity = "basic"
	ComplexityStandard   Complexity = "standard"
	ComplexityAdvanced   Complexity = "advanced"
	ComplexityEnterprise Complexity = "enterprise"
)

// Timeline is the delivery window selected in the quote builder.
// Rush deliveries carry a premium, relaxed ones a discount.
type Timeline string

const (
	TimelineRush     Timeline = "1-2 months"
	TimelineStandard Timeline = "3-4 months"
	TimelineRelaxed  Timeline = "5-6 months"
	TimelineExtended Timeline = "6+ months"
	TimelineFlexible Timeline = "Flexible"
)

// ProjectTypes lists every recognized project type, in display order.
var ProjectTypes = []ProjectType{
	ProjectTypeWebsite,
	ProjectTypeApps,
	ProjectTypeAIAutomation,
	ProjectTypeMarketing,
}

// Complexities lists every recognized tier, cheapest first.
var Complexities = []Complexity{
	ComplexityBasic,
	ComplexityStandard,
	ComplexityAdvanced,
	ComplexityEnterprise,
}

// Timelines lists every recognized delivery window.
var Timelines = []Timeline{
	TimelineRush,
	TimelineStandard,
	TimelineRelaxed,
	TimelineExtended,
	TimelineFlexible,
}

// QuoteEstimate is the calculated price band for a project selection.
// Prices are whole currency units (AUD).
type QuoteEstimate struct {
	MinPrice int64    `json:"min_price"`
	MaxPrice int64    `json:"max_price"`
	Duration string   `json:"duration"`
	Features []string `json:"features"`
}

// InvalidInputError reports an unrecognized enum value. Estimation never
// falls back to a default base price; a typo must surface, not produce a
// plausible-looking wrong quote.
type InvalidInputError struct {
	Field string
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

type projectProfile struct {
	basePrice float64
	features  []string
}

var projectProfiles = map[ProjectType]projectProfile{
	ProjectTypeWebsite: {
		basePrice: 8000,
		features: []string{
			"Responsive design",
			"CMS integration",
			"SEO foundations",
			"Contact & enquiry forms",
			"Analytics setup",
		},
	},
	ProjectTypeApps: {
		basePrice: 15000,
		features: []string{
			"iOS & Android builds",
			"User accounts & profiles",
			"Push notifications",
			"Offline support",
			"App store submission",
		},
	},
	ProjectTypeAIAutomation: {
		basePrice: 12000,
		features: []string{
			"Workflow automation",
			"Chat assistant integration",
			"Knowledge base training",
			"Third-party API connectors",
			"Usage reporting",
		},
	},
	ProjectTypeMarketing: {
		basePrice: 6000,
		features: []string{
			"Campaign strategy",
			"Content calendar",
			"Social media management",
			"Email campaigns",
			"Performance reporting",
		},
	},
}

var complexityMultipliers = map[Complexity]float64{
	ComplexityBasic:      0.7,
	ComplexityStandard:   1.0,
	ComplexityAdvanced:   1.5,
	ComplexityEnterprise: 2.5,
}

var timelineMultipliers = map[Timeline]float64{
	TimelineRush:     1.2,
	TimelineStandard: 1.0,
	TimelineRelaxed:  0.9,
	TimelineExtended: 0.8,
	TimelineFlexible: 0.9,
}

// Duration bands are keyed by complexity, not by the selected timeline.
// The timeline only moves the price.
var durationBands = map[Complexity]string{
	ComplexityBasic:      "2-4 weeks",
	ComplexityStandard:   "1-2 months",
	ComplexityAdvanced:   "2-3 months",
	ComplexityEnterprise: "3-6 months",
}

// Estimate calculates the quoted price band for a project selection.
//
// adjusted = basePrice * complexityMultiplier * timelineMultiplier, then
// the band is min = round(0.8*adjusted), max = round(1.2*adjusted) with
// half-away-from-zero rounding, so max >= min always holds.
//
// Pure and deterministic: same inputs always yield the same estimate, and
// the only failure mode is an unrecognized enum value.
func Estimate(projectType ProjectType, complexity Complexity, timeline Timeline) (QuoteEstimate, error) {
	profile, ok := projectProfiles[projectType]
	if !ok {
		return QuoteEstimate{}, &InvalidInputError{Field: "project_type", Value: string(projectType)}
	}
	complexityMult, ok := complexityMultipliers[complexity]
	if !ok {
		return QuoteEstimate{}, &InvalidInputError{Field: "complexity", Value: string(complexity)}
	}
	timelineMult, ok := timelineMultipliers[timeline]
	if !ok {
		return QuoteEstimate{}, &InvalidInputError{Field: "timeline", Value: string(timeline)}
	}

	adjusted := profile.basePrice * complexityMult * timelineMult

	features := make([]string, len(profile.features))
	copy(features, profile.features)

	return QuoteEstimate{
		MinPrice: int64(math.Round(adjusted * 0.8)),
		MaxPrice: int64(math.Round(adjusted * 1.2)),
		Duration: durationBands[complexity],
		Features: features,
	}, nil
}
