package cronexpr

import "fmt"

// Shape is one of the six supported recurrence patterns. It is derived from
// which fields of an Expression are wildcards.
type Shape int

const (
	ShapeMinute Shape = iota
	ShapeHour
	ShapeDay
	ShapeWeek
	ShapeMonth
	ShapeYear
)

const shapeCount = 6

var shapeNames = [shapeCount]string{
	ShapeMinute: "minute",
	ShapeHour:   "hour",
	ShapeDay:    "day",
	ShapeWeek:   "week",
	ShapeMonth:  "month",
	ShapeYear:   "year",
}

// Shapes lists every shape in matching priority order.
var Shapes = []Shape{ShapeMinute, ShapeHour, ShapeDay, ShapeWeek, ShapeMonth, ShapeYear}

// shapePatterns holds, per shape, which fields must be concrete. Every
// other field must be a wildcard.
var shapePatterns = [shapeCount][fieldCount]bool{
	ShapeMinute: {false, false, false, false, false},
	ShapeHour:   {true, false, false, false, false},
	ShapeDay:    {true, true, false, false, false},
	ShapeWeek:   {true, true, false, false, true},
	ShapeMonth:  {true, true, true, false, false},
	ShapeYear:   {true, true, true, true, false},
}

// Valid reports whether s is one of the six defined shapes.
func (s Shape) Valid() bool {
	return s >= ShapeMinute && s <= ShapeYear
}

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShape maps a shape name such as "week" to its Shape.
func ParseShape(name string) (Shape, error) {
	for _, s := range Shapes {
		if shapeNames[s] == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// Requires reports whether f must be concrete for expressions of shape s.
func (s Shape) Requires(f Field) bool {
	if !s.Valid() || !f.valid() {
		return false
	}
	return shapePatterns[s][f]
}

// ShapeOf validates e and matches its wildcard pattern against the supported
// shapes in priority order.
func ShapeOf(e Expression) (Shape, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}
	var pattern [fieldCount]bool
	for i, v := range e.fields {
		pattern[i] = !v.IsWildcard()
	}
	for _, s := range Shapes {
		if shapePatterns[s] == pattern {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedCombination, Format(e))
}
