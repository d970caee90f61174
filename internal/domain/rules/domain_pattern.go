package rules

import (
	"fmt"
	"strings"

	"github.com/linkshield/phishguard/internal/domain"
)

const domainPatternWeight = 1.0

// DomainPatternRule flags hosts matching known phishing domain shapes: raw IP
// literals, punycode labels, deep subdomain nesting, and abused TLDs
type DomainPatternRule struct{}

// NewDomainPatternRule creates a new domain-pattern check
func NewDomainPatternRule() *DomainPatternRule {
	return &DomainPatternRule{}
}

// ID returns the rule identifier
func (r *DomainPatternRule) ID() string {
	return "DOMAIN_PATTERN"
}

// Weight returns the rule's risk weight
func (r *DomainPatternRule) Weight() float64 {
	return domainPatternWeight
}

// Evaluate collects every matching indicator into one finding. Non-URL text is
// not applicable.
func (r *DomainPatternRule) Evaluate(text string, ctx *Context) domain.Finding {
	finding := domain.Finding{RuleID: r.ID(), Weight: r.Weight()}

	t, ok := parseTarget(text)
	if !ok {
		return finding
	}
	host := t.hostname()

	var indicators []string

	if isIPHost(host) {
		indicators = append(indicators, "host is a raw IP address")
	}

	for _, label := range strings.Split(host, ".") {
		if strings.HasPrefix(label, "xn--") {
			indicators = append(indicators, "internationalized (punycode) hostname")
			break
		}
	}

	if depth := subdomainDepth(host); depth > ctx.MaxSubdomains {
		indicators = append(indicators, fmt.Sprintf("excessive subdomain nesting (%d levels)", depth))
	}

	if suffix := tld(host); suffix != "" {
		for _, suspicious := range ctx.SuspiciousTLDs {
			if suffix == suspicious {
				indicators = append(indicators, fmt.Sprintf("'.%s' domains are frequently abused", suffix))
				break
			}
		}
	}

	if len(indicators) == 0 {
		return finding
	}

	finding.Triggered = true
	finding.Reason = fmt.Sprintf("host %q matches phishing patterns: %s", host, strings.Join(indicators, "; "))
	return finding
}
