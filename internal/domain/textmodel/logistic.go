package textmodel

import (
	"math"

	"github.com/linkshield/phishguard/internal/domain"
)

// LogisticModel is a trained binary logistic-regression classifier.
//
// Pure function of its input and the loaded coefficients: a weighted linear sum
// plus intercept, squashed through the logistic function into [0,1]. Higher means
// more likely phishing.
type LogisticModel struct {
	coefficients []float64
	intercept    float64
}

// NewLogisticModel builds a classifier from trained coefficients and intercept.
func NewLogisticModel(coefficients []float64, intercept float64) *LogisticModel {
	return &LogisticModel{coefficients: coefficients, intercept: intercept}
}

// Score maps a feature vector to the estimated probability of phishing.
//
// The feature vector must have exactly the coefficient vector's length; a mismatch
// means the vectorizer and model were packaged against different vocabularies and
// returns a domain.ModelShapeError.
func (m *LogisticModel) Score(features []float64) (float64, error) {
	if len(features) != len(m.coefficients) {
		return 0, &domain.ModelShapeError{Component: "features", Expected: len(m.coefficients), Actual: len(features)}
	}

	z := m.intercept
	for i, f := range features {
		z += m.coefficients[i] * f
	}

	return sigmoid(z), nil
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
