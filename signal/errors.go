package signal

import "errors"

var (
	// ErrTypeMismatch indicates a combinator operand that is neither a
	// Signal nor a numeric literal. The wrapping error names the operator
	// and both operand types.
	ErrTypeMismatch = errors.New("signal: operand must be a Signal or a numeric literal")

	// ErrInvalidWindow indicates Start > End (or a NaN bound). Returned
	// only by Window.Validate; constructors deliberately accept reversed
	// windows, which evaluate as permanently zero.
	ErrInvalidWindow = errors.New("signal: window start must not exceed window end")

	// ErrGridSize indicates a Linspace request with fewer than two points.
	ErrGridSize = errors.New("signal: timestamp grid needs at least two points")
)
