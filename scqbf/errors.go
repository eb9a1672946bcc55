package scqbf

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a missing instance file. Errors carrying it
	// also match fs.ErrNotExist.
	ErrNotFound = errors.New("scqbf: instance not found")

	// ErrFormat is matched by every *FormatError.
	ErrFormat = errors.New("scqbf: malformed instance")

	// ErrNilInstance indicates an evaluator built without an instance.
	ErrNilInstance = errors.New("scqbf: instance is nil")

	errNotInteger = errors.New("not an integer")
	errNotNumber  = errors.New("not a number")
	errOutOfRange = errors.New("value out of range")
	errTrailing   = errors.New("unexpected trailing token")
)

// FormatError reports the first token of an instance stream that does not
// fit the expected layout.
type FormatError struct {
	Token int    // 1-based token position; len+1 for a premature end
	Field string // what the token should have been, e.g. "set 3 element 2"
	Value string // raw token text, empty at end of input
	Err   error  // cause
}

func (e *FormatError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("scqbf: token %d (%s): %v", e.Token, e.Field, e.Err)
	}

	return fmt.Sprintf("scqbf: token %d (%s) %q: %v", e.Token, e.Field, e.Value, e.Err)
}

// Unwrap exposes both ErrFormat and the underlying cause to errors.Is.
func (e *FormatError) Unwrap() []error {
	return []error{ErrFormat, e.Err}
}
