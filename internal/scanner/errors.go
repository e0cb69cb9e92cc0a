package scanner

import "errors"

var (
	// ErrNilArgument is returned when a required pointer/slice argument
	// is nil.
	ErrNilArgument = errors.New("scanner: nil argument")
	// ErrEmptyInput is returned when the input buffer has zero length.
	ErrEmptyInput = errors.New("scanner: empty input")
	// ErrOutputTooSmall is returned when a caller-provided output buffer
	// cannot hold one entry per input byte.
	ErrOutputTooSmall = errors.New("scanner: output buffer too small")
)
