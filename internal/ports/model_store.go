package ports

import (
	"context"

	"github.com/linkshield/phishguard/internal/domain"
)

// ModelStore defines the contract for loading the trained model artifact
type ModelStore interface {
	// LoadArtifact reads and validates the artifact. Called once at startup;
	// the returned artifact is read-only for the life of the process.
	LoadArtifact(ctx context.Context) (*domain.ModelArtifact, error)
}
