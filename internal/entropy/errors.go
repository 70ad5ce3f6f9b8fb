package entropy

import (
	"errors"
	"fmt"
)

// Faults the numeric core can surface. Both classes abort the run;
// there is no partial result or retry.
var (
	// ErrSampleCount indicates a grid with fewer than two samples.
	ErrSampleCount = errors.New("entropy: sample count must be at least 2")

	// ErrNoDecades indicates an empty driver table.
	ErrNoDecades = errors.New("entropy: driver table needs at least one decade")

	// ErrSignalLength indicates driver signals covering different decade counts.
	ErrSignalLength = errors.New("entropy: driver signals must cover the same decades")

	// ErrSeriesLength indicates a series not aligned with the time grid.
	ErrSeriesLength = errors.New("entropy: series length does not match grid")

	// ErrDiverged indicates the entropy state left the finite range.
	ErrDiverged = errors.New("entropy: state diverged (NaN or Inf)")
)

// StepError wraps a fault with the integration step it occurred at.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
