package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the value to convert is missing.
	ErrEmptyInput = errors.New("input cannot be empty")

	// ErrInvalidInput is returned when the value holds characters outside the
	// alphabet of the requested conversion.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfRange is returned when a numeric conversion does not fit in 64 bits.
	ErrOutOfRange = fmt.Errorf("%w: value exceeds 64 bits", ErrInvalidInput)

	// ErrUnknownKind is returned for a conversion kind that is not supported.
	ErrUnknownKind = errors.New("unknown conversion type")
)

// InputError is a per-request validation failure. Err is one of the package
// sentinels, so callers classify it with errors.Is; Error returns the
// message shown to end users.
type InputError struct {
	Kind  Kind
	Value string
	Err   error
}

func (e *InputError) Error() string {
	switch {
	case errors.Is(e.Err, ErrEmptyInput):
		return "Input cannot be empty"
	case errors.Is(e.Err, ErrUnknownKind):
		return "Invalid conversion type"
	case errors.Is(e.Err, ErrOutOfRange):
		return "Input exceeds 64 bits"
	case e.Kind == DecToBin:
		return "Invalid Decimal Input"
	case e.Kind == GrayToBin:
		return "Invalid Gray Code Input"
	default:
		return "Invalid Binary Input"
	}
}

func (e *InputError) Unwrap() error {
	return e.Err
}
