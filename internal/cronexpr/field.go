// Package cronexpr validates, classifies and serializes the restricted
// five-field schedule expressions edited by cronpick.
package cronexpr

import "fmt"

// Field identifies one of the five positions of an expression.
type Field int

const (
	FieldMinute Field = iota
	FieldHour
	FieldDayOfMonth
	FieldMonth
	FieldDayOfWeek
)

// fieldCount is the number of fields in an expression.
const fieldCount = 5

// Field boundary constants.
const (
	maxMinute     = 59
	maxHour       = 23
	minDayOfMonth = 1
	maxDayOfMonth = 31
	minMonth      = 1
	maxMonth      = 12
	maxDayOfWeek  = 6
)

type fieldRange struct {
	min, max int
}

var fieldRanges = [fieldCount]fieldRange{
	FieldMinute:     {0, maxMinute},
	FieldHour:       {0, maxHour},
	FieldDayOfMonth: {minDayOfMonth, maxDayOfMonth},
	FieldMonth:      {minMonth, maxMonth},
	FieldDayOfWeek:  {0, maxDayOfWeek},
}

var fieldNames = [fieldCount]string{
	FieldMinute:     "minute",
	FieldHour:       "hour",
	FieldDayOfMonth: "day-of-month",
	FieldMonth:      "month",
	FieldDayOfWeek:  "day-of-week",
}

// Fields lists every field in expression order.
var Fields = []Field{FieldMinute, FieldHour, FieldDayOfMonth, FieldMonth, FieldDayOfWeek}

func (f Field) valid() bool {
	return f >= FieldMinute && f <= FieldDayOfWeek
}

func (f Field) String() string {
	if !f.valid() {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

// Position returns the 1-indexed column of the field in an expression.
func (f Field) Position() int {
	return int(f) + 1
}

// Min returns the smallest accepted value for the field.
func (f Field) Min() int {
	return fieldRanges[f].min
}

// Max returns the largest accepted value for the field.
func (f Field) Max() int {
	return fieldRanges[f].max
}

// Contains reports whether v lies within the field's range.
func (f Field) Contains(v int) bool {
	if !f.valid() {
		return false
	}
	r := fieldRanges[f]
	return v >= r.min && v <= r.max
}

// Choices returns every accepted value for the field in ascending order.
func Choices(f Field) []int {
	if !f.valid() {
		return nil
	}
	r := fieldRanges[f]
	out := make([]int, 0, r.max-r.min+1)
	for v := r.min; v <= r.max; v++ {
		out = append(out, v)
	}
	return out
}
