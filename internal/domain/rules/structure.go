package rules

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/linkshield/phishguard/internal/domain"
)

const structureWeight = 0.6

// symbolDensityLimit is the fraction of unusual characters above which a URL is
// considered obfuscated. Ordinary URLs sit well below it; encoded redirect
// chains and %-stuffed paths sit above.
const symbolDensityLimit = 0.25

// StructureRule flags structural URL anomalies: excessive length, deep paths,
// embedded credentials, and unusual character density
type StructureRule struct{}

// NewStructureRule creates a new URL-structure check
func NewStructureRule() *StructureRule {
	return &StructureRule{}
}

// ID returns the rule identifier
func (r *StructureRule) ID() string {
	return "URL_STRUCTURE"
}

// Weight returns the rule's risk weight
func (r *StructureRule) Weight() float64 {
	return structureWeight
}

// Evaluate collects every structural anomaly into one finding. Non-URL text is
// not applicable.
func (r *StructureRule) Evaluate(text string, ctx *Context) domain.Finding {
	finding := domain.Finding{RuleID: r.ID(), Weight: r.Weight()}

	t, ok := parseTarget(text)
	if !ok {
		return finding
	}
	raw := strings.TrimSpace(text)

	var indicators []string

	if len(raw) > ctx.MaxURLLength {
		indicators = append(indicators, fmt.Sprintf("unusually long URL (%d characters)", len(raw)))
	}

	if depth := pathDepth(t.Path); depth > ctx.MaxPathDepth {
		indicators = append(indicators, fmt.Sprintf("deeply nested path (%d segments)", depth))
	}

	if t.User != nil {
		indicators = append(indicators, "credentials embedded in URL")
	}

	if density := symbolDensity(raw); density > symbolDensityLimit {
		indicators = append(indicators, fmt.Sprintf("unusual character density (%.0f%%)", density*100))
	}

	if len(indicators) == 0 {
		return finding
	}

	finding.Triggered = true
	finding.Reason = fmt.Sprintf("URL structure anomalies: %s", strings.Join(indicators, "; "))
	return finding
}

// pathDepth counts non-empty path segments.
func pathDepth(path string) int {
	depth := 0
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			depth++
		}
	}
	return depth
}

// symbolDensity is the fraction of characters that are neither alphanumeric nor
// ordinary URL punctuation ("./:-").
func symbolDensity(raw string) float64 {
	if raw == "" {
		return 0
	}
	unusual := 0
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("./:-", r) {
			continue
		}
		unusual++
	}
	return float64(unusual) / float64(len([]rune(raw)))
}
