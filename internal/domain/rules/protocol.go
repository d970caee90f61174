package rules

import (
	"strings"

	"github.com/linkshield/phishguard/internal/domain"
)

const protocolWeight = 0.8

// ProtocolRule flags URL-like input that is not served over HTTPS
type ProtocolRule struct{}

// NewProtocolRule creates a new transport-protocol check
func NewProtocolRule() *ProtocolRule {
	return &ProtocolRule{}
}

// ID returns the rule identifier
func (r *ProtocolRule) ID() string {
	return "NO_HTTPS"
}

// Weight returns the rule's risk weight
func (r *ProtocolRule) Weight() float64 {
	return protocolWeight
}

// Evaluate flags explicit non-HTTPS schemes and scheme-less URLs alike: a link
// pasted without a scheme will be fetched over plain HTTP by most clients.
// Non-URL text is not applicable.
func (r *ProtocolRule) Evaluate(text string, ctx *Context) domain.Finding {
	finding := domain.Finding{RuleID: r.ID(), Weight: r.Weight()}

	t, ok := parseTarget(text)
	if !ok {
		return finding
	}
	if t.hasScheme && strings.EqualFold(t.Scheme, "https") {
		return finding
	}

	finding.Triggered = true
	finding.Reason = "link is not served over HTTPS"
	return finding
}
