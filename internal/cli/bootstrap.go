package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/linkshield/phishguard/internal/adapters/artifact"
	"github.com/linkshield/phishguard/internal/application"
	"github.com/linkshield/phishguard/internal/config"
	"github.com/linkshield/phishguard/internal/domain"
	"github.com/linkshield/phishguard/internal/domain/engine"
	"github.com/linkshield/phishguard/internal/ports"
)

// modelStore picks the artifact source: a file when configured, otherwise the
// model embedded in the binary.
func modelStore(cfg config.Config) ports.ModelStore {
	if cfg.ModelPath != "" {
		return artifact.NewFileStore(cfg.ModelPath)
	}
	return artifact.NewEmbeddedStore()
}

// loadArtifact performs the one-time startup I/O: read and validate the model.
func loadArtifact(ctx context.Context, cfg config.Config) (*domain.ModelArtifact, error) {
	a, err := modelStore(cfg).LoadArtifact(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load model artifact: %w", err)
	}
	return a, nil
}

// buildService wires artifact -> engine -> service the way main wires adapters
// into the application layer.
func buildService(ctx context.Context, cfg config.Config, logger *zap.Logger) (*application.AnalysisService, error) {
	a, err := loadArtifact(ctx, cfg)
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(a, cfg.RuleContext())
	if err != nil {
		return nil, err
	}

	return application.NewAnalysisService(eng, logger), nil
}
