package cronexpr

import "strings"

// Expression is the five-field recurrence descriptor. It is a value type:
// accessors return copies and there are no mutating methods.
type Expression struct {
	fields [fieldCount]Value
}

// NewExpression builds an Expression from its five fields in order.
func NewExpression(minute, hour, dayOfMonth, month, dayOfWeek Value) Expression {
	return Expression{fields: [fieldCount]Value{
		minute.clone(),
		hour.clone(),
		dayOfMonth.clone(),
		month.clone(),
		dayOfWeek.clone(),
	}}
}

// EveryMinute is the expression matching every minute, "* * * * *".
func EveryMinute() Expression {
	return Expression{}
}

// Field returns the value held by f.
func (e Expression) Field(f Field) Value {
	if !f.valid() {
		return Wildcard()
	}
	return e.fields[f].clone()
}

// Validate checks that every concrete field is non-empty and within range.
func (e Expression) Validate() error {
	for _, f := range Fields {
		v := e.fields[f]
		if v.IsEmpty() {
			return &SectionError{Section: primarySection(f), Err: ErrEmptySelection}
		}
		if err := v.checkRange(f); err != nil {
			return err
		}
	}
	return nil
}

// Shape classifies the expression. See ShapeOf.
func (e Expression) Shape() (Shape, error) {
	return ShapeOf(e)
}

// Equal reports whether both expressions hold the same fields.
func (e Expression) Equal(o Expression) bool {
	for i := range e.fields {
		if !e.fields[i].Equal(o.fields[i]) {
			return false
		}
	}
	return true
}

// String renders the canonical form. See Format.
func (e Expression) String() string {
	return Format(e)
}

// Format renders e as five space-separated fields.
func Format(e Expression) string {
	parts := make([]string, fieldCount)
	for i, v := range e.fields {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

// Parse validates input and returns its Expression. Input must classify as
// one of the supported shapes.
func Parse(input string) (Expression, error) {
	e, err := parseFields(input)
	if err != nil {
		return Expression{}, err
	}
	if _, err := ShapeOf(e); err != nil {
		return Expression{}, err
	}
	return e, nil
}
