package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProtocolRule_Evaluate(t *testing.T) {
	ctx := DefaultContext()
	rule := NewProtocolRule()

	tests := []struct {
		name          string
		text          string
		expectTrigger bool
	}{
		{
			name:          "HTTP URL - should trigger",
			text:          "http://example.com/login",
			expectTrigger: true,
		},
		{
			name:          "HTTPS URL - no trigger",
			text:          "https://example.com/login",
			expectTrigger: false,
		},
		{
			name:          "Scheme-less URL defaults to plain HTTP - should trigger",
			text:          "example.com/welcome",
			expectTrigger: true,
		},
		{
			name:          "FTP scheme - should trigger",
			text:          "ftp://files.example.com/report.pdf",
			expectTrigger: true,
		},
		{
			name:          "Plain sentence - not applicable",
			text:          "see you at the meeting tomorrow",
			expectTrigger: false,
		},
		{
			name:          "Uppercase HTTPS scheme - no trigger",
			text:          "HTTPS://EXAMPLE.COM",
			expectTrigger: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finding := rule.Evaluate(tt.text, ctx)

			assert.Equal(t, "NO_HTTPS", finding.RuleID)
			assert.Equal(t, protocolWeight, finding.Weight)
			assert.Equal(t, tt.expectTrigger, finding.Triggered)
			if tt.expectTrigger {
				assert.NotEmpty(t, finding.Reason)
			} else {
				assert.Empty(t, finding.Reason)
			}
		})
	}
}
