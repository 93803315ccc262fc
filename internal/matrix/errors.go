package matrix

import (
	"errors"
	"fmt"
)

// ErrMissingField is matched (via errors.Is) by every *FieldError.
var ErrMissingField = errors.New("missing required field")

// FieldError reports a required matrix key that is absent or empty.
type FieldError struct {
	// Field is the JSON key that is missing, e.g. "directory".
	Field string

	// Container describes where the key was expected, e.g. "entry".
	Container string

	// Entry is the name of the matrix entry, when known.
	Entry string
}

// Error returns a message naming the missing field.
func (e *FieldError) Error() string {
	msg := fmt.Sprintf("missing or empty %q in %s", e.Field, e.Container)
	if e.Entry != "" {
		msg += fmt.Sprintf(" (entry %q)", e.Entry)
	}
	return msg
}

// Is makes errors.Is(err, ErrMissingField) true for any FieldError.
func (e *FieldError) Is(target error) bool {
	return target == ErrMissingField
}

// ParseError reports a matrix file that is not valid JSON, or whose
// values have the wrong types.
type ParseError struct {
	// Path is the matrix file.
	Path string

	// Err is the decoder error.
	Err error
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse JSON file '%s': %v", e.Path, e.Err)
}

// Unwrap returns the decoder error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
