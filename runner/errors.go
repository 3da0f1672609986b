package runner

import "errors"

// Sentinel errors. The first two carry the user-facing validation messages.
var (
	// ErrSizeOutOfRange: size < 1 or size > MaxSize.
	ErrSizeOutOfRange = errors.New("size out of range")

	// ErrInsufficientSelection: fewer distinct known algorithms than MinSelection.
	ErrInsufficientSelection = errors.New("insufficient algorithm selection")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("runner: invalid option supplied")
)

// Field names reported by ValidationError.
const (
	FieldSize       = "size"
	FieldAlgorithms = "algorithms"
)

// ValidationError reports a request that was rejected before any algorithm
// ran. It unwraps to ErrSizeOutOfRange or ErrInsufficientSelection.
type ValidationError struct {
	// Field is FieldSize or FieldAlgorithms.
	Field string
	// Err is the sentinel describing the violation.
	Err error
}

// Error implements error.
func (e *ValidationError) Error() string {
	return "runner: " + e.Err.Error()
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ValidationError) Unwrap() error { return e.Err }

// Message returns the text meant for end users, e.g. "size out of range".
func (e *ValidationError) Message() string { return e.Err.Error() }

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
