package odbcfield

import (
	"fmt"
)

// FieldError is the error type returned by every marshalling operation. Number
// identifies the error kind; errors.Is matches two FieldErrors by Number.
type FieldError struct {
	Number      int
	Message     string
	MessageArgs []interface{}
}

func (fe *FieldError) Error() string {
	message := fe.Message
	if len(fe.MessageArgs) > 0 {
		message = fmt.Sprintf(fe.Message, fe.MessageArgs...)
	}
	return fmt.Sprintf("%06d: %s", fe.Number, message)
}

// Is reports whether target is a *FieldError with the same Number.
func (fe *FieldError) Is(target error) bool {
	t, ok := target.(*FieldError)
	return ok && t.Number == fe.Number
}

const (
	// type mapping

	// ErrCodeUnsupportedType is an error code for the case where no description can be made for a driver type code.
	ErrCodeUnsupportedType = 270001
	// ErrCodeTypeMismatch is an error code for the case where a field variant does not match the description.
	ErrCodeTypeMismatch = 270002

	// buffer and value bounds

	// ErrCodeBounds is an error code for an index outside a buffer or a value that does not fit its element.
	ErrCodeBounds = 271001
	// ErrCodeInvalidBufferSize is an error code for a buffer constructed with a non-positive size or count.
	ErrCodeInvalidBufferSize = 271002

	// decoding

	// ErrCodeMalformedInput is an error code for raw element data that cannot be decoded.
	ErrCodeMalformedInput = 272001

	// configuration

	// ErrCodeInvalidConfig is an error code for a configuration value out of range.
	ErrCodeInvalidConfig = 273001
	// ErrCodeFailedToParseConfig is an error code for a configuration file that cannot be parsed.
	ErrCodeFailedToParseConfig = 273002
)

const (
	errMsgUnsupportedType    = "unsupported column type %v for column %q"
	errMsgTypeMismatch       = "%v cannot store a %v field"
	errMsgIndexOutOfRange    = "index %v out of range [0, %v)"
	errMsgValueTooLarge      = "%v bytes do not fit into an element of %v bytes"
	errMsgIntegerOutOfRange  = "integer %v out of range for %v"
	errMsgDecimalOutOfRange  = "decimal %v does not fit %v"
	errMsgInvalidBufferSize  = "element size and count must be positive. size: %v, count: %v"
	errMsgShortElement       = "%v needs %v bytes, got %v"
	errMsgBadIndicator       = "indicator %v is not a valid length for %v"
	errMsgInvalidText        = "%v received invalid %v data: %v"
	errMsgInvalidConfigValue = "invalid value for %v: %v"
	errMsgFailedToParseFile  = "failed to parse config file %v: %v"
)

var (
	// preformatted errors, usable as errors.Is targets

	// ErrUnsupportedType is returned when a driver type code has no description.
	ErrUnsupportedType = &FieldError{
		Number:  ErrCodeUnsupportedType,
		Message: "unsupported column type",
	}
	// ErrTypeMismatch is returned when SetField receives a field of the wrong variant.
	ErrTypeMismatch = &FieldError{
		Number:  ErrCodeTypeMismatch,
		Message: "field type does not match description",
	}
	// ErrBounds is returned (or panicked with) on out-of-range indexes and oversized values.
	ErrBounds = &FieldError{
		Number:  ErrCodeBounds,
		Message: "bounds violation",
	}
	// ErrInvalidBufferSize is returned when a buffer is constructed with a non-positive size or count.
	ErrInvalidBufferSize = &FieldError{
		Number:  ErrCodeInvalidBufferSize,
		Message: "invalid buffer size",
	}
	// ErrMalformedInput is returned when raw element data or its indicator cannot be decoded.
	ErrMalformedInput = &FieldError{
		Number:  ErrCodeMalformedInput,
		Message: "malformed decode input",
	}
	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = &FieldError{
		Number:  ErrCodeInvalidConfig,
		Message: "invalid configuration",
	}
)

func errTypeMismatch(d Description, f Field) error {
	return &FieldError{
		Number:      ErrCodeTypeMismatch,
		Message:     errMsgTypeMismatch,
		MessageArgs: []interface{}{d.Name(), f.Kind()},
	}
}

func errShortElement(d Description, got int) error {
	return &FieldError{
		Number:      ErrCodeMalformedInput,
		Message:     errMsgShortElement,
		MessageArgs: []interface{}{d.Name(), d.ElementSize(), got},
	}
}

func errValueTooLarge(size, capacity int) error {
	return &FieldError{
		Number:      ErrCodeBounds,
		Message:     errMsgValueTooLarge,
		MessageArgs: []interface{}{size, capacity},
	}
}
