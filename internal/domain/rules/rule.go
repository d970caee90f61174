package rules

import (
	"github.com/linkshield/phishguard/internal/domain"
)

// Rule is a single deterministic heuristic check over the raw input text
//
// This follows the Strategy pattern, allowing each check to be:
//   - Independently developed and tested
//   - Configured with its own weight
//   - Enumerated explicitly, so the battery order is fixed at startup
//
// Evaluate must never fail: a rule that cannot parse the text as a URL degrades
// to an untriggered finding rather than aborting the whole evaluation. Exactly
// one Finding is returned per call, triggered or not.
type Rule interface {
	// ID returns the stable identifier of this rule, unique within the battery
	ID() string

	// Weight returns the risk weight a triggered finding contributes
	Weight() float64

	// Evaluate inspects the text and returns this rule's finding
	Evaluate(text string, ctx *Context) domain.Finding
}

// Context provides the shared configuration read by the rules
//
// Loaded once at startup and never mutated afterwards, so concurrent analyses
// can share it without locking.
type Context struct {
	// Keywords is the denylist of terms that mark suspicious wording
	Keywords []string

	// SuspiciousTLDs are top-level domains frequently seen in phishing campaigns
	SuspiciousTLDs []string

	// Brands are well-known names checked for lookalike domains
	Brands []string

	// MaxSubdomains is the subdomain nesting depth above which a host is flagged
	MaxSubdomains int

	// MaxURLLength is the URL length above which the structure check fires
	MaxURLLength int

	// MaxPathDepth is the number of path segments above which the structure check fires
	MaxPathDepth int
}

// DefaultContext returns the stock rule configuration. The lists come from
// observed phishing campaigns; deployments can override them via the config file.
func DefaultContext() *Context {
	return &Context{
		Keywords: []string{
			"verify", "urgent", "login", "secure", "account",
			"refund", "password", "confirm", "suspended",
		},
		SuspiciousTLDs: []string{
			"xyz", "top", "ru", "tk", "ml", "ga", "cf", "gq", "icu", "click", "zip",
		},
		Brands: []string{
			"paypal", "google", "amazon", "microsoft", "apple", "facebook", "netflix", "instagram",
		},
		MaxSubdomains: 3,
		MaxURLLength:  75,
		MaxPathDepth:  4,
	}
}

// Battery returns the full rule set in evaluation order.
//
// The order is fixed and stable: verdict reasons are emitted in battery order, so
// reordering rules changes caller-visible output.
func Battery() []Rule {
	return []Rule{
		NewProtocolRule(),
		NewKeywordRule(),
		NewDomainPatternRule(),
		NewStructureRule(),
		NewBrandLookalikeRule(),
	}
}
