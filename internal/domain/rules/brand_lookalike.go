package rules

import (
	"fmt"

	"github.com/linkshield/phishguard/internal/domain"
)

const brandLookalikeWeight = 0.9

// maxBrandEditDistance is the levenshtein distance up to which a domain label
// counts as a lookalike. Distance zero is the brand itself and is skipped.
const maxBrandEditDistance = 2

// BrandLookalikeRule flags registrable domains within a small edit distance of
// a well-known brand ("paypa1.com", "arnazon.net")
type BrandLookalikeRule struct{}

// NewBrandLookalikeRule creates a new brand-impersonation check
func NewBrandLookalikeRule() *BrandLookalikeRule {
	return &BrandLookalikeRule{}
}

// ID returns the rule identifier
func (r *BrandLookalikeRule) ID() string {
	return "BRAND_LOOKALIKE"
}

// Weight returns the rule's risk weight
func (r *BrandLookalikeRule) Weight() float64 {
	return brandLookalikeWeight
}

// Evaluate compares the registrable domain label against the brand list.
// Non-URL text and IP hosts are not applicable.
func (r *BrandLookalikeRule) Evaluate(text string, ctx *Context) domain.Finding {
	finding := domain.Finding{RuleID: r.ID(), Weight: r.Weight()}

	t, ok := parseTarget(text)
	if !ok {
		return finding
	}
	label := registrableLabel(t.hostname())
	if label == "" {
		return finding
	}

	for _, brand := range ctx.Brands {
		distance := levenshteinDistance(label, brand)
		if distance > 0 && distance <= maxBrandEditDistance {
			finding.Triggered = true
			finding.Reason = fmt.Sprintf("domain %q looks like brand %q (edit distance %d)", label, brand, distance)
			return finding
		}
	}

	return finding
}
