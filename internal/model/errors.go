package model

import "fmt"

// DataInsufficientError reports a price series shorter than the longest
// lookback the computation needs.
type DataInsufficientError struct {
	Required int
	Got      int
}

func (e *DataInsufficientError) Error() string {
	return fmt.Sprintf("insufficient data: need at least %d points, got %d", e.Required, e.Got)
}

// LengthMismatchError reports paired return/benchmark series of unequal length.
type LengthMismatchError struct {
	Len          int
	BenchmarkLen int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: series has %d returns, benchmark has %d", e.Len, e.BenchmarkLen)
}

// InvalidInputError reports a non-finite or non-positive price, or a
// non-increasing date, found during preprocessing.
type InvalidInputError struct {
	Index  int
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input at index %d: %s", e.Index, e.Reason)
}
