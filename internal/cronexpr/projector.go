package cronexpr

import "fmt"

// activeSections lists, per shape, the value sections shown in display order.
var activeSections = [shapeCount][]Section{
	ShapeMinute: {},
	ShapeHour:   {SectionMinuteOfHour},
	ShapeDay:    {SectionHourOfDay, SectionMinuteOfHourWithinDay},
	ShapeWeek:   {SectionDayOfWeek, SectionHourOfDay, SectionMinuteOfHourWithinDay},
	ShapeMonth:  {SectionDayOfMonth, SectionHourOfDay, SectionMinuteOfHourWithinDay},
	ShapeYear:   {SectionDayOfMonth, SectionMonth, SectionHourOfDay, SectionMinuteOfHourWithinDay},
}

// SectionValues holds per-section values read from or pushed to a surface.
type SectionValues map[Section]Value

// ActiveSections returns the sections shown for shape, period first.
func ActiveSections(shape Shape) []Section {
	if !shape.Valid() {
		return []Section{SectionPeriod}
	}
	out := make([]Section, 0, len(activeSections[shape])+1)
	out = append(out, SectionPeriod)
	return append(out, activeSections[shape]...)
}

// ValueSections returns the active sections of shape that carry values.
func ValueSections(shape Shape) []Section {
	if !shape.Valid() {
		return nil
	}
	return append([]Section(nil), activeSections[shape]...)
}

// IsActive reports whether section is shown for shape.
func IsActive(shape Shape, section Section) bool {
	if section == SectionPeriod {
		return true
	}
	for _, s := range ValueSections(shape) {
		if s == section {
			return true
		}
	}
	return false
}

// Project classifies e and returns the values of its active sections.
// Inactive sections are left out of the map.
func Project(e Expression) (Shape, SectionValues, error) {
	shape, err := ShapeOf(e)
	if err != nil {
		return 0, nil, err
	}
	values := make(SectionValues, len(activeSections[shape]))
	for _, s := range activeSections[shape] {
		f, _ := s.Field()
		values[s] = e.Field(f)
	}
	return shape, values, nil
}

// Unproject builds the Expression for shape from section values. Fields not
// active for shape are wildcards whatever values holds for them. A required
// section that is missing, a wildcard, or empty fails with ErrEmptySelection.
func Unproject(shape Shape, values SectionValues) (Expression, error) {
	if !shape.Valid() {
		return Expression{}, fmt.Errorf("unproject: unknown %s", shape)
	}
	var e Expression
	for _, s := range activeSections[shape] {
		v, ok := values[s]
		if !ok || v.IsWildcard() || v.IsEmpty() {
			return Expression{}, &SectionError{Section: s, Err: ErrEmptySelection}
		}
		f, _ := s.Field()
		if err := v.checkRange(f); err != nil {
			return Expression{}, &SectionError{Section: s, Err: err}
		}
		e.fields[f] = v.clone()
	}
	return e, nil
}
