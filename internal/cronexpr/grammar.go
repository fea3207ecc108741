package cronexpr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// fieldPattern matches one field: "*" or a comma list of 1-2 digit integers.
const fieldPattern = `(\*|\d{1,2}(,\d{1,2})*)`

// expressionPattern matches five fields separated by a single whitespace
// character.
var expressionPattern = regexp.MustCompile(`^` + fieldPattern + `(\s` + fieldPattern + `){4}$`)

// Classify validates input and returns its shape.
//
// Validation runs in order: the structural grammar, the per-field range
// check, then shape matching. Grammar and range failures wrap
// ErrMalformedExpression; a well-formed input with no matching shape wraps
// ErrUnsupportedCombination.
func Classify(input string) (Shape, error) {
	e, err := parseFields(input)
	if err != nil {
		return 0, err
	}
	return ShapeOf(e)
}

// Valid reports whether input classifies as a supported shape.
func Valid(input string) bool {
	_, err := Classify(input)
	return err == nil
}

// parseFields runs the structural and range checks without shape matching.
func parseFields(input string) (Expression, error) {
	if !expressionPattern.MatchString(input) {
		return Expression{}, fmt.Errorf("%w: %q does not have five fields of \"*\" or comma-separated numbers", ErrMalformedExpression, input)
	}

	var e Expression
	for i, raw := range strings.Fields(input) {
		f := Field(i)
		if raw == wildcardToken {
			continue
		}
		parts := strings.Split(raw, ",")
		ints := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil {
				return Expression{}, fmt.Errorf("%w: %s field %q: %v", ErrMalformedExpression, f, raw, err)
			}
			ints = append(ints, n)
		}
		v := Values(ints...)
		if err := v.checkRange(f); err != nil {
			return Expression{}, fmt.Errorf("%q: %w", input, err)
		}
		e.fields[f] = v
	}
	return e, nil
}
