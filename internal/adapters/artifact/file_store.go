package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/linkshield/phishguard/internal/domain"
)

// FileStore implements ports.ModelStore for JSON artifacts on disk
type FileStore struct {
	path string
}

// NewFileStore creates a store reading the artifact at path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// LoadArtifact reads, decodes, and validates the artifact. Shape problems are
// surfaced here so a broken package never reaches the engine.
func (s *FileStore) LoadArtifact(_ context.Context) (*domain.ModelArtifact, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact %s: %w", s.path, err)
	}

	var a domain.ModelArtifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact %s: %w", s.path, err)
	}

	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("model artifact %s: %w", s.path, err)
	}

	return &a, nil
}
