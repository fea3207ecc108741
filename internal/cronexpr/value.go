package cronexpr

import (
	"slices"
	"strconv"
	"strings"
)

// wildcardToken is the rendering of a wildcard field.
const wildcardToken = "*"

// Value is a single field value: either the wildcard or a list of integers.
// The zero Value is the wildcard. A concrete Value may be empty only when it
// was read from an editing surface with nothing selected.
type Value struct {
	concrete bool
	ints     []int
}

// Wildcard returns the "any value" marker.
func Wildcard() Value {
	return Value{}
}

// Values returns a concrete value holding ints in the given order.
func Values(ints ...int) Value {
	return Value{concrete: true, ints: slices.Clone(ints)}
}

// IsWildcard reports whether v matches any value.
func (v Value) IsWildcard() bool {
	return !v.concrete
}

// IsEmpty reports whether v is concrete but holds no integers.
func (v Value) IsEmpty() bool {
	return v.concrete && len(v.ints) == 0
}

// Ints returns a copy of the integers in selection order. Nil for wildcards.
func (v Value) Ints() []int {
	if !v.concrete {
		return nil
	}
	return slices.Clone(v.ints)
}

// Contains reports whether n is one of the concrete integers.
func (v Value) Contains(n int) bool {
	return v.concrete && slices.Contains(v.ints, n)
}

// Equal reports whether both values are wildcards or hold the same
// integers in the same order.
func (v Value) Equal(o Value) bool {
	if v.concrete != o.concrete {
		return false
	}
	return slices.Equal(v.ints, o.ints)
}

// String renders the value as "*" or a comma-joined list.
func (v Value) String() string {
	if !v.concrete {
		return wildcardToken
	}
	parts := make([]string, len(v.ints))
	for i, n := range v.ints {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// checkRange returns a FieldError for the first integer outside f's range.
func (v Value) checkRange(f Field) error {
	for _, n := range v.ints {
		if !f.Contains(n) {
			return &FieldError{Field: f, Value: n}
		}
	}
	return nil
}

func (v Value) clone() Value {
	if !v.concrete {
		return Value{}
	}
	return Values(v.ints...)
}
