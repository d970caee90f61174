package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainPatternRule_Evaluate(t *testing.T) {
	ctx := DefaultContext()
	rule := NewDomainPatternRule()

	tests := []struct {
		name          string
		text          string
		expectTrigger bool
		expectInWhy   string
	}{
		{
			name:          "IP literal host",
			text:          "http://203.0.113.7/download",
			expectTrigger: true,
			expectInWhy:   "raw IP address",
		},
		{
			name:          "Punycode label",
			text:          "https://xn--pypal-4ve.com/signin",
			expectTrigger: true,
			expectInWhy:   "punycode",
		},
		{
			name:          "Excessive subdomain nesting",
			text:          "https://secure.account.verify.portal.example.com",
			expectTrigger: true,
			expectInWhy:   "subdomain nesting",
		},
		{
			name:          "Suspicious TLD",
			text:          "https://great-deals.xyz/offer",
			expectTrigger: true,
			expectInWhy:   "'.xyz'",
		},
		{
			name:          "Ordinary domain",
			text:          "https://example.com/about",
			expectTrigger: false,
		},
		{
			name:          "Not a URL",
			text:          "the quarterly report is attached",
			expectTrigger: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finding := rule.Evaluate(tt.text, ctx)

			assert.Equal(t, "DOMAIN_PATTERN", finding.RuleID)
			assert.Equal(t, tt.expectTrigger, finding.Triggered)
			if tt.expectTrigger {
				assert.Contains(t, finding.Reason, tt.expectInWhy)
			}
		})
	}
}
