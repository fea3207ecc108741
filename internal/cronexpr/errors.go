package cronexpr

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedExpression indicates the input does not follow the
	// five-field grammar or holds an out-of-range value.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrUnsupportedCombination indicates a well-formed expression whose
	// wildcard pattern matches none of the supported shapes.
	ErrUnsupportedCombination = errors.New("valid but unsupported field combination")

	// ErrEmptySelection indicates a section required by the current shape
	// holds no concrete value.
	ErrEmptySelection = errors.New("empty selection")
)

// FieldError reports an out-of-range value in a specific field.
type FieldError struct {
	Field Field
	Value int
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid value %d found (col %d, %s): must be %d-%d",
		e.Value, e.Field.Position(), e.Field, e.Field.Min(), e.Field.Max())
}

func (e *FieldError) Unwrap() error {
	return ErrMalformedExpression
}

// SectionError reports a section whose selection cannot be used.
type SectionError struct {
	Section Section
	Err     error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Section, e.Err)
}

func (e *SectionError) Unwrap() error {
	return e.Err
}
