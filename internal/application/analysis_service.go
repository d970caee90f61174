package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/linkshield/phishguard/internal/domain"
	"github.com/linkshield/phishguard/internal/domain/engine"
)

// inputEchoLimit caps how much of the submitted text is echoed back in the
// Analysis envelope (and therefore in logs).
const inputEchoLimit = 500

// AnalysisService orchestrates the decision engine for the delivery layers
//
// The service owns no mutable state: the engine is immutable after startup and
// every Analysis is created fresh per request, so concurrent calls need no
// locking. Nothing is persisted; the ID only correlates responses with logs.
type AnalysisService struct {
	engine *engine.Engine
	logger *zap.Logger
}

// NewAnalysisService creates a new analysis service with dependency injection
func NewAnalysisService(eng *engine.Engine, logger *zap.Logger) *AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{engine: eng, logger: logger}
}

// Analyze classifies one piece of text and wraps the verdict in a per-request
// Analysis envelope. Phishing verdicts are logged at warn level the way an
// operator would want to see them in production.
func (s *AnalysisService) Analyze(ctx context.Context, text string) (*domain.Analysis, error) {
	report, err := s.engine.Analyze(text)
	if err != nil {
		return nil, err
	}

	analysis := &domain.Analysis{
		ID:              uuid.New(),
		Input:           truncate(text, inputEchoLimit),
		ClassifierScore: report.ClassifierScore,
		Findings:        report.Findings,
		Verdict:         report.Verdict,
		AnalyzedAt:      time.Now().UTC(),
	}

	triggered := 0
	for _, f := range report.Findings {
		if f.Triggered {
			triggered++
		}
	}

	if report.Verdict.Label == domain.LabelPhishing {
		s.logger.Warn("phishing detected",
			zap.String("analysis_id", analysis.ID.String()),
			zap.Float64("confidence", report.Verdict.Confidence),
			zap.Float64("classifier_score", report.ClassifierScore),
			zap.Int("triggered_rules", triggered),
			zap.Strings("reasons", report.Verdict.Reasons),
		)
	} else {
		s.logger.Debug("input classified safe",
			zap.String("analysis_id", analysis.ID.String()),
			zap.Float64("confidence", report.Verdict.Confidence),
			zap.Int("triggered_rules", triggered),
		)
	}

	return analysis, nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
