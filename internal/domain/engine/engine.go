package engine

import (
	"fmt"
	"strings"

	"github.com/linkshield/phishguard/internal/domain"
	"github.com/linkshield/phishguard/internal/domain/rules"
	"github.com/linkshield/phishguard/internal/domain/textmodel"
)

// Engine is the hybrid decision core: a trained text classifier and the
// deterministic rule battery, merged into a single verdict.
//
// All state is immutable after New returns, so one Engine can serve concurrent
// analyses without locking. Analyze does no I/O; the only I/O in the pipeline
// is loading the model artifact, which happens before the engine is built.
type Engine struct {
	vectorizer *textmodel.Vectorizer
	classifier *textmodel.LogisticModel
	battery    []rules.Rule
	ruleCtx    *rules.Context
}

// New builds an engine from a loaded model artifact and rule configuration.
//
// The artifact is validated up front: a shape mismatch is a packaging error and
// the engine refuses to initialize rather than failing per-request later.
func New(artifact *domain.ModelArtifact, ruleCtx *rules.Context) (*Engine, error) {
	if err := artifact.Validate(); err != nil {
		return nil, fmt.Errorf("refusing to initialize engine: %w", err)
	}

	vectorizer, err := textmodel.NewVectorizer(artifact.Vocabulary, artifact.IDF)
	if err != nil {
		return nil, fmt.Errorf("refusing to initialize engine: %w", err)
	}

	if ruleCtx == nil {
		ruleCtx = rules.DefaultContext()
	}

	return &Engine{
		vectorizer: vectorizer,
		classifier: textmodel.NewLogisticModel(artifact.Coefficients, artifact.Intercept),
		battery:    rules.Battery(),
		ruleCtx:    ruleCtx,
	}, nil
}

// Analyze classifies one piece of text and returns the full report.
//
// Deterministic: repeated calls with the same text yield bit-identical reports.
func (e *Engine) Analyze(text string) (*domain.Report, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrInvalidInput
	}

	features, err := e.vectorizer.Transform(text)
	if err != nil {
		return nil, err
	}

	score, err := e.classifier.Score(features)
	if err != nil {
		return nil, fmt.Errorf("classifier scoring failed: %w", err)
	}

	// Fixed battery order; reasons downstream depend on it
	findings := make([]domain.Finding, 0, len(e.battery))
	for _, rule := range e.battery {
		findings = append(findings, rule.Evaluate(text, e.ruleCtx))
	}

	return &domain.Report{
		ClassifierScore: score,
		Findings:        findings,
		Verdict:         Combine(score, findings),
	}, nil
}
