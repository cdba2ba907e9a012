package engine

import (
	"errors"
	"fmt"
)

// Validation failures are wrapped around these sentinels so callers can
// branch with errors.Is while still seeing the offending values in the
// message. Every error is fatal to the run that produced it.
var (
	ErrLengthMismatch         = errors.New("bars and signals length mismatch")
	ErrEmptyInput             = errors.New("empty input")
	ErrNonMonotonicTimestamps = errors.New("timestamps not strictly increasing")
	ErrInvalidConfig          = errors.New("invalid config")
	ErrInvalidSignal          = errors.New("invalid signal")
	ErrInsufficientData       = errors.New("insufficient data")
)

// FoldError tags a failure from one walk-forward fold with its index.
// A failing fold aborts the whole run.
type FoldError struct {
	Fold int
	Err  error
}

func (e *FoldError) Error() string {
	return fmt.Sprintf("fold %d: %v", e.Fold, e.Err)
}

func (e *FoldError) Unwrap() error {
	return e.Err
}
