package cronexpr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveSections(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []Section
	}{
		{ShapeMinute, []Section{SectionPeriod}},
		{ShapeHour, []Section{SectionPeriod, SectionMinuteOfHour}},
		{ShapeDay, []Section{SectionPeriod, SectionHourOfDay, SectionMinuteOfHourWithinDay}},
		{ShapeWeek, []Section{SectionPeriod, SectionDayOfWeek, SectionHourOfDay, SectionMinuteOfHourWithinDay}},
		{ShapeMonth, []Section{SectionPeriod, SectionDayOfMonth, SectionHourOfDay, SectionMinuteOfHourWithinDay}},
		{ShapeYear, []Section{SectionPeriod, SectionDayOfMonth, SectionMonth, SectionHourOfDay, SectionMinuteOfHourWithinDay}},
	}
	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ActiveSections(tt.shape))
			for _, s := range Sections {
				assert.Equal(t, contains(tt.want, s), IsActive(tt.shape, s), "section %s", s)
			}
		})
	}
}

func TestActiveSections_MatchRequiredFields(t *testing.T) {
	for _, shape := range Shapes {
		required := map[Field]bool{}
		for _, s := range ValueSections(shape) {
			f, ok := s.Field()
			require.True(t, ok)
			required[f] = true
		}
		for _, f := range Fields {
			assert.Equal(t, shape.Requires(f), required[f], "%s/%s", shape, f)
		}
	}
}

func TestProject_Week(t *testing.T) {
	e, err := Parse("0,15,30 5 * * 1,2")
	require.NoError(t, err)

	shape, values, err := Project(e)
	require.NoError(t, err)
	assert.Equal(t, ShapeWeek, shape)
	assert.Len(t, values, 3)
	assert.Equal(t, []int{1, 2}, values[SectionDayOfWeek].Ints())
	assert.Equal(t, []int{5}, values[SectionHourOfDay].Ints())
	assert.Equal(t, []int{0, 15, 30}, values[SectionMinuteOfHourWithinDay].Ints())
	_, ok := values[SectionMinuteOfHour]
	assert.False(t, ok, "inactive sections are not populated")
}

func TestProject_HourUsesMinuteOfHour(t *testing.T) {
	e, err := Parse("10,40 * * * *")
	require.NoError(t, err)

	shape, values, err := Project(e)
	require.NoError(t, err)
	assert.Equal(t, ShapeHour, shape)
	assert.Equal(t, []int{10, 40}, values[SectionMinuteOfHour].Ints())
	_, ok := values[SectionMinuteOfHourWithinDay]
	assert.False(t, ok)
}

func TestProject_MinuteHasNoValues(t *testing.T) {
	shape, values, err := Project(EveryMinute())
	require.NoError(t, err)
	assert.Equal(t, ShapeMinute, shape)
	assert.Empty(t, values)
}

func TestProject_Unsupported(t *testing.T) {
	e := NewExpression(Values(1), Values(1), Values(1), Values(1), Values(1))
	_, _, err := Project(e)
	assert.ErrorIs(t, err, ErrUnsupportedCombination)
}

func TestUnproject_InvertsProject(t *testing.T) {
	for _, input := range validExpressions {
		t.Run(input, func(t *testing.T) {
			e, err := Parse(input)
			require.NoError(t, err)

			shape, values, err := Project(e)
			require.NoError(t, err)

			got, err := Unproject(shape, values)
			require.NoError(t, err)
			assert.True(t, e.Equal(got), "want %q, got %q", e, got)
		})
	}
}

func TestUnproject_InactiveFieldsAlwaysWildcard(t *testing.T) {
	values := SectionValues{
		SectionMinuteOfHour:          Values(44),
		SectionHourOfDay:             Values(6),
		SectionMinuteOfHourWithinDay: Values(0, 30),
		SectionDayOfWeek:             Values(3),
		SectionDayOfMonth:            Values(99),
		SectionMonth:                 Values(),
	}

	e, err := Unproject(ShapeWeek, values)
	require.NoError(t, err)
	assert.Equal(t, "0,30 6 * * 3", e.String())

	e, err = Unproject(ShapeMinute, values)
	require.NoError(t, err)
	assert.Equal(t, "* * * * *", e.String())

	e, err = Unproject(ShapeHour, values)
	require.NoError(t, err)
	assert.Equal(t, "44 * * * *", e.String())
}

func TestUnproject_EmptySelectionRejected(t *testing.T) {
	tests := []struct {
		name   string
		values SectionValues
	}{
		{"missing", SectionValues{SectionHourOfDay: Values(1)}},
		{"empty", SectionValues{SectionHourOfDay: Values(1), SectionMinuteOfHourWithinDay: Values()}},
		{"wildcard", SectionValues{SectionHourOfDay: Values(1), SectionMinuteOfHourWithinDay: Wildcard()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unproject(ShapeDay, tt.values)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrEmptySelection)

			var se *SectionError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, SectionMinuteOfHourWithinDay, se.Section)
		})
	}
}

func TestUnproject_OutOfRangeRejected(t *testing.T) {
	_, err := Unproject(ShapeDay, SectionValues{
		SectionHourOfDay:             Values(25),
		SectionMinuteOfHourWithinDay: Values(0),
	})
	assert.ErrorIs(t, err, ErrMalformedExpression)
}

func TestUnproject_UnknownShape(t *testing.T) {
	_, err := Unproject(Shape(42), SectionValues{})
	assert.Error(t, err)
}

func TestSectionField(t *testing.T) {
	_, ok := SectionPeriod.Field()
	assert.False(t, ok)

	f, ok := SectionMinuteOfHour.Field()
	assert.True(t, ok)
	assert.Equal(t, FieldMinute, f)

	f, ok = SectionMinuteOfHourWithinDay.Field()
	assert.True(t, ok)
	assert.Equal(t, FieldMinute, f)
}

func contains(sections []Section, s Section) bool {
	for _, x := range sections {
		if x == s {
			return true
		}
	}
	return false
}
