package timeseries

import "errors"

// Malformed parameters fail fast with one of these sentinels; callers
// distinguish them with errors.Is. "Not enough data for any output" on a
// well-formed request is not an error; those calls return an empty slice.
var (
	ErrZeroWindow       = errors.New("window size must be greater than zero")
	ErrWindowTooLarge   = errors.New("window size must be smaller than the number of returns")
	ErrInsufficientData = errors.New("insufficient data: need at least 2 prices")
	ErrNonPositivePrice = errors.New("price must be positive for log return calculation")
	ErrInvalidSmoothing = errors.New("smoothing factor must be between 0 and 1 (exclusive)")
)
