package textmodel

import (
	"math"
	"regexp"
	"strings"

	"github.com/linkshield/phishguard/internal/domain"
)

// tokenRE matches word-character runs of length >= 2, the same token pattern the
// vectorizer was trained with. Single characters and punctuation are dropped.
var tokenRE = regexp.MustCompile(`\w\w+`)

// Vectorizer turns raw text into a fixed-length TF-IDF feature vector over the
// trained vocabulary.
//
// The vocabulary, its ordering, and the per-term IDF weights are fixed at training
// time and shipped in the model artifact. Out-of-vocabulary tokens contribute
// nothing — this must be preserved as-is, because the classifier coefficients were
// fit against exactly this transform.
type Vectorizer struct {
	terms []string
	index map[string]int
	idf   []float64
}

// NewVectorizer builds a vectorizer from parallel vocabulary and IDF slices.
func NewVectorizer(vocabulary []string, idf []float64) (*Vectorizer, error) {
	if len(vocabulary) == 0 {
		return nil, &domain.ModelShapeError{Component: "vocabulary", Expected: 1, Actual: 0}
	}
	if len(idf) != len(vocabulary) {
		return nil, &domain.ModelShapeError{Component: "idf", Expected: len(vocabulary), Actual: len(idf)}
	}

	index := make(map[string]int, len(vocabulary))
	for i, term := range vocabulary {
		index[term] = i
	}

	return &Vectorizer{terms: vocabulary, index: index, idf: idf}, nil
}

// Size returns the feature vector length.
func (v *Vectorizer) Size() int {
	return len(v.terms)
}

// Transform converts text into its TF-IDF feature vector: raw term counts over the
// vocabulary, scaled by IDF, then l2-normalized. Deterministic: the same input
// always yields the bit-identical vector.
//
// Returns domain.ErrInvalidInput when nothing tokenizable remains after
// normalization. Text whose tokens are all out-of-vocabulary is valid and yields
// the zero vector.
func (v *Vectorizer) Transform(text string) ([]float64, error) {
	tokens := tokenRE.FindAllString(strings.ToLower(text), -1)
	if len(tokens) == 0 {
		return nil, domain.ErrInvalidInput
	}

	features := make([]float64, len(v.terms))
	for _, token := range tokens {
		if i, ok := v.index[token]; ok {
			features[i] += v.idf[i]
		}
	}

	// l2 normalization, matching the trained transform
	var sumSquares float64
	for _, f := range features {
		sumSquares += f * f
	}
	if sumSquares > 0 {
		norm := math.Sqrt(sumSquares)
		for i := range features {
			features[i] /= norm
		}
	}

	return features, nil
}
