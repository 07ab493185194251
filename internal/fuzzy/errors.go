package fuzzy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfRange is wrapped by RangeError.
var ErrOutOfRange = errors.New("outside recommended range")

// InvalidInputError indicates an input that is not a finite real number.
type InvalidInputError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// RangeError is returned in strict mode when one or more inputs fall outside
// their recommended ranges.
type RangeError struct {
	Advisories []Advisory
}

func (e *RangeError) Error() string {
	parts := make([]string, len(e.Advisories))
	for i, a := range e.Advisories {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%v: %s", ErrOutOfRange, strings.Join(parts, "; "))
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }
