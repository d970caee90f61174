package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when the submitted text is empty after
// normalization (whitespace-only, or nothing tokenizable). No partial verdict
// is produced.
var ErrInvalidInput = errors.New("cannot analyze empty input")

// ModelShapeError reports a model artifact whose parallel slices disagree in
// length. It indicates a packaging error, so it is raised at startup and the
// engine refuses to initialize; it should never surface per-request.
type ModelShapeError struct {
	Component string // which slice disagrees: "idf", "coefficients", "features"
	Expected  int
	Actual    int
}

func (e *ModelShapeError) Error() string {
	return fmt.Sprintf("model artifact shape mismatch: %s has %d entries, want %d",
		e.Component, e.Actual, e.Expected)
}
