package textmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkshield/phishguard/internal/domain"
)

func TestLogisticModel_Score(t *testing.T) {
	model := NewLogisticModel([]float64{1.0, -1.0}, 0.0)

	tests := []struct {
		name     string
		features []float64
		expected float64
	}{
		{"Zero vector sits at the intercept", []float64{0, 0}, 0.5},
		{"Positive evidence", []float64{1, 0}, 0.7311},
		{"Negative evidence", []float64{0, 1}, 0.2689},
		{"Cancelling evidence", []float64{1, 1}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := model.Score(tt.features)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, score, 0.001)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		})
	}
}

func TestLogisticModel_Score_ShapeMismatch(t *testing.T) {
	model := NewLogisticModel([]float64{0.5, 0.5, 0.5}, 0.0)

	_, err := model.Score([]float64{1.0})
	var shapeErr *domain.ModelShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 3, shapeErr.Expected)
	assert.Equal(t, 1, shapeErr.Actual)
}

func TestLogisticModel_Score_Intercept(t *testing.T) {
	model := NewLogisticModel([]float64{0}, -2.0)
	score, err := model.Score([]float64{1})
	require.NoError(t, err)
	assert.InDelta(t, 0.1192, score, 0.001)
}
