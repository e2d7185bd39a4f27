package mapping

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownConverter is matched by every *UnknownConverterError.
var ErrUnknownConverter = errors.New("unknown converter")

// UnknownConverterError reports a rule naming a converter missing from the registry.
type UnknownConverterError struct {
	Name        string
	Suggestions []string
}

// Error implements the error interface.
func (e *UnknownConverterError) Error() string {
	msg := fmt.Sprintf("unknown converter %q", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", quoteJoin(e.Suggestions))
	}

	return msg
}

// Is makes errors.Is(err, ErrUnknownConverter) match.
func (e *UnknownConverterError) Is(target error) bool {
	return target == ErrUnknownConverter
}

// FieldError wraps a failure translating or extracting one schema field.
type FieldError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FieldError) Unwrap() error {
	return e.Err
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}

	return strings.Join(quoted, ", ")
}
