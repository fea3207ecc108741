package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/cronpick/internal/cronexpr"
	"github.com/alexanderramin/cronpick/internal/editor"
	"github.com/charmbracelet/huh"
)

// errNoSelection is shown under a section left without any selected value.
var errNoSelection = errors.New("select at least one value")

// formSurface is an editor.Surface backed by the values bound to huh fields.
// huh writes user input straight into period and values; sync detects those
// writes and reports them through notify. Values pushed by the editor update
// the snapshot so they are never reported back as user edits.
type formSurface struct {
	period  string
	values  map[cronexpr.Section]*[]int
	visible map[cronexpr.Section]bool

	snapshot string
	notify   func()
}

func newFormSurface() *formSurface {
	s := &formSurface{
		values:  make(map[cronexpr.Section]*[]int),
		visible: make(map[cronexpr.Section]bool),
	}
	for _, sec := range cronexpr.Sections {
		if _, ok := sec.Field(); ok {
			s.values[sec] = new([]int)
		}
	}
	return s
}

// OnUserChange registers the callback invoked by sync for user edits.
func (s *formSurface) OnUserChange(fn func()) {
	s.notify = fn
}

func (s *formSurface) Period() editor.Period {
	if shape, err := cronexpr.ParseShape(s.period); err == nil {
		return editor.ShapePeriod(shape)
	}
	return editor.Period{Preset: s.period}
}

func (s *formSurface) SetPeriod(p editor.Period) {
	s.period = p.String()
	s.snapshot = s.fingerprint()
}

// Get returns the bound selection. An empty selection is an empty concrete
// value, which the editor rejects.
func (s *formSurface) Get(section cronexpr.Section) cronexpr.Value {
	bound, ok := s.values[section]
	if !ok {
		return cronexpr.Wildcard()
	}
	return cronexpr.Values(*bound...)
}

// Set replaces the bound selection; a wildcard clears it.
func (s *formSurface) Set(section cronexpr.Section, value cronexpr.Value) {
	bound, ok := s.values[section]
	if !ok {
		return
	}
	if value.IsWildcard() {
		*bound = nil
	} else {
		*bound = value.Ints()
	}
	s.snapshot = s.fingerprint()
}

func (s *formSurface) SetVisible(section cronexpr.Section, visible bool) {
	s.visible[section] = visible
}

// sync reports a user edit if the bound state changed since the last push
// or report. It returns whether notify was called.
func (s *formSurface) sync() bool {
	fp := s.fingerprint()
	if fp == s.snapshot {
		return false
	}
	s.snapshot = fp
	if s.notify != nil {
		s.notify()
	}
	return true
}

func (s *formSurface) fingerprint() string {
	var b strings.Builder
	b.WriteString(s.period)
	for _, sec := range cronexpr.Sections {
		bound, ok := s.values[sec]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "|%v", *bound)
	}
	return b.String()
}

// buildForm creates one group for the period selector and one per value
// section. Groups of hidden sections are skipped by huh.
func (s *formSurface) buildForm(opts editor.Options, display func(cronexpr.Section) editor.SectionDisplay) *huh.Form {
	groups := []*huh.Group{
		huh.NewGroup(s.periodField(opts, display(cronexpr.SectionPeriod))),
	}
	for _, sec := range cronexpr.Sections {
		field, ok := sec.Field()
		if !ok {
			continue
		}
		group := huh.NewGroup(s.sectionField(sec, field, display(sec))).
			WithHideFunc(func() bool { return !s.visible[sec] })
		groups = append(groups, group)
	}
	return huh.NewForm(groups...).
		WithTheme(cronpickHuhTheme()).
		WithShowHelp(false)
}

func (s *formSurface) periodField(opts editor.Options, d editor.SectionDisplay) huh.Field {
	options := make([]huh.Option[string], 0, len(cronexpr.Shapes)+len(opts.Presets))
	for _, shape := range cronexpr.Shapes {
		options = append(options, huh.NewOption(shape.String(), shape.String()))
	}
	for _, p := range opts.Presets {
		options = append(options, huh.NewOption(p.Label, p.Label))
	}
	return huh.NewSelect[string]().
		Title(d.Title).
		Options(options...).
		Value(&s.period)
}

func (s *formSurface) sectionField(sec cronexpr.Section, f cronexpr.Field, d editor.SectionDisplay) huh.Field {
	bound := s.values[sec]
	choices := cronexpr.Choices(f)
	selected := cronexpr.Values(*bound...)

	options := make([]huh.Option[int], 0, len(choices))
	for _, v := range choices {
		options = append(options, huh.NewOption(cronexpr.Label(f, v), v).Selected(selected.Contains(v)))
	}
	return huh.NewMultiSelect[int]().
		Title(d.Title).
		Options(options...).
		Value(bound).
		Height(listHeight(d, len(choices))).
		Validate(func(v []int) error {
			if len(v) == 0 {
				return errNoSelection
			}
			return nil
		})
}

// listHeight maps a grid layout onto the height of a vertical list: the row
// count of the grid it would form, within terminal-friendly bounds.
func listHeight(d editor.SectionDisplay, n int) int {
	const minHeight, maxHeight = 5, 14
	rows := n
	switch {
	case d.Rows > 0:
		rows = d.Rows
	case d.Columns > 0:
		rows = (n + d.Columns - 1) / d.Columns
	}
	return min(max(rows+2, minHeight), maxHeight)
}
