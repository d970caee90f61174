package engine

import (
	"math"

	"github.com/linkshield/phishguard/internal/domain"
)

// Blending constants. Fixed so that verdicts are reproducible given the same
// model artifact and rule configuration.
const (
	// classifierWeight and ruleWeight split the confidence between the
	// statistical model and the rule battery. Rules carry the larger share: a
	// fully saturated battery must cross the phishing threshold on its own,
	// whatever the model says.
	classifierWeight = 0.4
	ruleWeight       = 0.6

	// maxRuleRisk saturates the summed weights of triggered findings before
	// normalization into [0,1].
	maxRuleRisk = 2.5

	// phishingThreshold is the confidence at which the label flips to phishing.
	// Ties at exactly the threshold resolve to phishing.
	phishingThreshold = 0.5

	// classifierReasonMin is the score above which the model's contribution is
	// called out as a reason of its own.
	classifierReasonMin = 0.65
)

// classifierReason is the generic explanation emitted when the statistical
// model contributed substantially to the verdict.
const classifierReason = "statistical model flagged this content"

// Combine merges the classifier score and the rule findings into one verdict.
//
// Triggered weights are summed, saturated at maxRuleRisk, normalized, and
// blended with the classifier score. Reasons are ordered: the classifier reason
// first if it applies, then triggered findings in battery order. Adding
// triggered findings can never lower the confidence.
func Combine(score float64, findings []domain.Finding) domain.Verdict {
	var ruleRisk float64
	for _, f := range findings {
		if f.Triggered {
			ruleRisk += f.Weight
		}
	}
	normalized := math.Min(ruleRisk, maxRuleRisk) / maxRuleRisk

	confidence := classifierWeight*score + ruleWeight*normalized

	label := domain.LabelSafe
	if confidence >= phishingThreshold {
		label = domain.LabelPhishing
	}

	reasons := make([]string, 0, len(findings)+1)
	if score >= classifierReasonMin {
		reasons = append(reasons, classifierReason)
	}
	for _, f := range findings {
		if f.Triggered {
			reasons = append(reasons, f.Reason)
		}
	}

	return domain.Verdict{
		Label:      label,
		Confidence: confidence,
		Reasons:    reasons,
	}
}
