package rules

import (
	"fmt"
	"strings"

	"github.com/linkshield/phishguard/internal/domain"
)

const keywordWeight = 0.7

// KeywordRule flags text containing terms from the configured denylist
//
// Unlike the URL rules this one applies to any input, link or message body:
// credential-phishing wording ("verify your account", "urgent") is a signal
// either way.
type KeywordRule struct{}

// NewKeywordRule creates a new suspicious-keyword check
func NewKeywordRule() *KeywordRule {
	return &KeywordRule{}
}

// ID returns the rule identifier
func (r *KeywordRule) ID() string {
	return "SUSPICIOUS_KEYWORDS"
}

// Weight returns the rule's risk weight
func (r *KeywordRule) Weight() float64 {
	return keywordWeight
}

// Evaluate reports every denylisted term present in the lowercased text
func (r *KeywordRule) Evaluate(text string, ctx *Context) domain.Finding {
	finding := domain.Finding{RuleID: r.ID(), Weight: r.Weight()}

	lower := strings.ToLower(text)
	var matched []string
	for _, keyword := range ctx.Keywords {
		if strings.Contains(lower, keyword) {
			matched = append(matched, keyword)
		}
	}
	if len(matched) == 0 {
		return finding
	}

	finding.Triggered = true
	finding.Reason = fmt.Sprintf("suspicious wording detected: %s", strings.Join(matched, ", "))
	return finding
}
