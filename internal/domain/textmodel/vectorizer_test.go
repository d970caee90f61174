package textmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkshield/phishguard/internal/domain"
)

func newTestVectorizer(t *testing.T) *Vectorizer {
	t.Helper()
	v, err := NewVectorizer(
		[]string{"alpha", "beta", "gamma"},
		[]float64{1.0, 2.0, 2.0},
	)
	require.NoError(t, err)
	return v
}

func TestVectorizer_Transform(t *testing.T) {
	v := newTestVectorizer(t)

	// alpha once (1.0), beta twice (2*2.0), gamma absent; l2-normalized
	features, err := v.Transform("Alpha beta BETA")
	require.NoError(t, err)
	require.Len(t, features, 3)
	assert.InDelta(t, 0.2425, features[0], 0.001)
	assert.InDelta(t, 0.9701, features[1], 0.001)
	assert.InDelta(t, 0.0, features[2], 0.001)
}

func TestVectorizer_Transform_OutOfVocabulary(t *testing.T) {
	v := newTestVectorizer(t)

	// Tokens exist but none are in the vocabulary: valid input, zero vector
	features, err := v.Transform("delta epsilon zeta")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, features)
}

func TestVectorizer_Transform_EmptyAfterNormalization(t *testing.T) {
	v := newTestVectorizer(t)

	for _, text := range []string{"", "   ", "! ? ."} {
		_, err := v.Transform(text)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "input: %q", text)
	}
}

func TestVectorizer_Transform_Deterministic(t *testing.T) {
	v := newTestVectorizer(t)

	first, err := v.Transform("alpha gamma gamma beta")
	require.NoError(t, err)
	second, err := v.Transform("alpha gamma gamma beta")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNewVectorizer_ShapeMismatch(t *testing.T) {
	_, err := NewVectorizer([]string{"alpha", "beta"}, []float64{1.0})
	var shapeErr *domain.ModelShapeError
	assert.ErrorAs(t, err, &shapeErr)

	_, err = NewVectorizer(nil, nil)
	assert.ErrorAs(t, err, &shapeErr)
}
