package domain

import (
	"time"

	"github.com/google/uuid"
)

// Label is the final classification assigned to a piece of input text
type Label string

const (
	LabelSafe     Label = "safe"
	LabelPhishing Label = "phishing"
)

// Finding is the output of a single heuristic rule over the raw input text
//
// Every rule in the battery produces exactly one Finding per analysis, whether or
// not it fired. Untriggered findings keep their identifier and weight but carry no
// reason and contribute nothing to the verdict. Findings are immutable once created
// and are read-only downstream.
type Finding struct {
	RuleID    string  `json:"rule_id"`
	Triggered bool    `json:"triggered"`
	Weight    float64 `json:"weight"`
	Reason    string  `json:"reason,omitempty"`
}

// Verdict is the terminal artifact returned for one analysis request
type Verdict struct {
	Label      Label    `json:"label"`
	Confidence float64  `json:"confidence"` // 0.0 to 1.0
	Reasons    []string `json:"reasons"`
}

// Report carries the verdict together with the raw signals that produced it.
// The engine returns a Report; callers that only care about the decision read
// Report.Verdict and ignore the rest.
type Report struct {
	ClassifierScore float64   `json:"classifier_score"` // 0.0 to 1.0
	Findings        []Finding `json:"findings"`
	Verdict         Verdict   `json:"verdict"`
}

// Analysis is the per-request envelope produced by the application layer
//
// Simplification: analyses are created fresh per request and never persisted.
// The ID exists so callers (and logs) can correlate a response with a request;
// there is no history table behind it.
type Analysis struct {
	ID              uuid.UUID `json:"id"`
	Input           string    `json:"input"`
	ClassifierScore float64   `json:"classifier_score"`
	Findings        []Finding `json:"findings"`
	Verdict         Verdict   `json:"verdict"`
	AnalyzedAt      time.Time `json:"analyzed_at"`
}

// ModelArtifact is the trained model shipped with the analyzer
//
// Vocabulary, IDF and Coefficients are parallel slices: entry i is the term, its
// inverse-document-frequency weight, and its logistic-regression coefficient.
// The artifact is loaded once at startup, validated, and never mutated.
type ModelArtifact struct {
	Version      string    `json:"version"`
	Vocabulary   []string  `json:"vocabulary"`
	IDF          []float64 `json:"idf"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// Validate checks the internal consistency of the artifact. A mismatch means the
// artifact was packaged against a different vocabulary and must not be served.
func (a *ModelArtifact) Validate() error {
	if len(a.Vocabulary) == 0 {
		return &ModelShapeError{Component: "vocabulary", Expected: 1, Actual: 0}
	}
	if len(a.IDF) != len(a.Vocabulary) {
		return &ModelShapeError{Component: "idf", Expected: len(a.Vocabulary), Actual: len(a.IDF)}
	}
	if len(a.Coefficients) != len(a.Vocabulary) {
		return &ModelShapeError{Component: "coefficients", Expected: len(a.Vocabulary), Actual: len(a.Coefficients)}
	}
	return nil
}
