package prismesh

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRange reports a malformed elevation range (top <= base)
	ErrInvalidRange = errors.New("prismesh: top elevation must be greater than base")

	// ErrInvalidPolygon reports a degenerate or self-intersecting input ring
	ErrInvalidPolygon = errors.New("prismesh: invalid polygon")

	// ErrCancelled reports that cooperative cancellation was observed.
	// Terminal: the run produced no mesh and is not retried internally.
	ErrCancelled = errors.New("prismesh: meshing cancelled")

	// ErrNilTessellator reports a generic cap requested without a tessellator
	ErrNilTessellator = errors.New("prismesh: no tessellator configured for non-rectangular cap")
)

// ValidationError aggregates every caller-correctable problem found in a
// structure definition or an options set, so one pass reports them all.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("prismesh: validation failed: %s", strings.Join(e.Problems, "; "))
}

// validator collects problems and builds a ValidationError on demand
type validator struct {
	problems []string
}

func (v *validator) addf(format string, args ...any) {
	v.problems = append(v.problems, fmt.Sprintf(format, args...))
}

func (v *validator) err() error {
	if len(v.problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: v.problems}
}

// BatchError reports the failed slots of a batch run. Successful slots
// still carry their meshes in the result slice.
type BatchError struct {
	// Failures maps input slot index to that slot's error
	Failures map[int]error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("prismesh: %d of batch failed", len(e.Failures))
}

func (e *BatchError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, err := range e.Failures {
		errs = append(errs, err)
	}
	return errs
}

// cancelled wraps a context error as the terminal cancellation outcome
func cancelled(cause error) error {
	if cause == nil {
		return ErrCancelled
	}
	return fmt.Errorf("%w: %w", ErrCancelled, cause)
}
