package artifact

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/linkshield/phishguard/internal/domain"
)

//go:embed default_model.json
var defaultModel []byte

// EmbeddedStore implements ports.ModelStore with the artifact compiled into the
// binary, so the analyzer works out of the box without a model file.
type EmbeddedStore struct{}

// NewEmbeddedStore creates a store serving the built-in artifact
func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

// LoadArtifact decodes and validates the embedded artifact
func (s *EmbeddedStore) LoadArtifact(_ context.Context) (*domain.ModelArtifact, error) {
	var a domain.ModelArtifact
	if err := json.Unmarshal(defaultModel, &a); err != nil {
		return nil, fmt.Errorf("failed to decode embedded model artifact: %w", err)
	}

	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("embedded model artifact: %w", err)
	}

	return &a, nil
}
