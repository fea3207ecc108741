package cli

import (
	"testing"

	"github.com/alexanderramin/cronpick/internal/cronexpr"
	"github.com/alexanderramin/cronpick/internal/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormSurface_PushedValuesAreNotUserEdits(t *testing.T) {
	s := newFormSurface()
	calls := 0
	s.OnUserChange(func() { calls++ })

	s.SetPeriod(editor.ShapePeriod(cronexpr.ShapeDay))
	s.Set(cronexpr.SectionHourOfDay, cronexpr.Values(2))
	s.Set(cronexpr.SectionMinuteOfHourWithinDay, cronexpr.Values(0))

	assert.False(t, s.sync())
	assert.Zero(t, calls)
}

func TestFormSurface_BoundWritesAreReportedOnce(t *testing.T) {
	s := newFormSurface()
	calls := 0
	s.OnUserChange(func() { calls++ })
	s.Set(cronexpr.SectionDayOfWeek, cronexpr.Values(1))

	*s.values[cronexpr.SectionDayOfWeek] = []int{1, 3}

	assert.True(t, s.sync())
	assert.False(t, s.sync())
	assert.Equal(t, 1, calls)
	assert.Equal(t, []int{1, 3}, s.Get(cronexpr.SectionDayOfWeek).Ints())
}

func TestFormSurface_PeriodEditIsReported(t *testing.T) {
	s := newFormSurface()
	calls := 0
	s.OnUserChange(func() { calls++ })
	s.SetPeriod(editor.ShapePeriod(cronexpr.ShapeWeek))

	s.period = "month"

	require.True(t, s.sync())
	assert.Equal(t, editor.ShapePeriod(cronexpr.ShapeMonth), s.Period())
}

func TestFormSurface_UnknownPeriodIsPreset(t *testing.T) {
	s := newFormSurface()
	s.period = "Nightly"

	p := s.Period()
	assert.True(t, p.IsPreset())
	assert.Equal(t, "Nightly", p.Preset)
}

func TestFormSurface_WildcardClearsSelection(t *testing.T) {
	s := newFormSurface()
	s.Set(cronexpr.SectionMonth, cronexpr.Values(1, 6))
	s.Set(cronexpr.SectionMonth, cronexpr.Wildcard())

	assert.Empty(t, *s.values[cronexpr.SectionMonth])
	got := s.Get(cronexpr.SectionMonth)
	assert.False(t, got.IsWildcard())
	assert.Empty(t, got.Ints())
}

func TestFormSurface_PeriodSectionHasNoValue(t *testing.T) {
	s := newFormSurface()
	s.Set(cronexpr.SectionPeriod, cronexpr.Values(1))

	assert.True(t, s.Get(cronexpr.SectionPeriod).IsWildcard())
	assert.NotContains(t, s.values, cronexpr.SectionPeriod)
}

func TestListHeight(t *testing.T) {
	tests := []struct {
		name    string
		display editor.SectionDisplay
		n       int
		want    int
	}{
		{"rows", editor.SectionDisplay{Rows: 10, ItemWidth: 30}, 31, 12},
		{"columns", editor.SectionDisplay{Columns: 4, ItemWidth: 30}, 60, 14},
		{"columns small", editor.SectionDisplay{Columns: 2, ItemWidth: 100}, 12, 8},
		{"no layout short", editor.SectionDisplay{}, 3, 5},
		{"no layout long", editor.SectionDisplay{}, 24, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, listHeight(tt.display, tt.n))
		})
	}
}
