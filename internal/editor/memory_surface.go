package editor

import "github.com/alexanderramin/cronpick/internal/cronexpr"

// MemorySurface is an in-memory Surface. It backs non-interactive commands
// and tests; Select and SelectPeriod simulate user edits.
type MemorySurface struct {
	period  Period
	values  map[cronexpr.Section]cronexpr.Value
	visible map[cronexpr.Section]bool
	notify  func()
}

// NewMemorySurface creates an empty surface with every section hidden.
func NewMemorySurface() *MemorySurface {
	return &MemorySurface{
		values:  make(map[cronexpr.Section]cronexpr.Value),
		visible: make(map[cronexpr.Section]bool),
	}
}

// OnUserChange registers the callback invoked after each simulated user edit.
func (s *MemorySurface) OnUserChange(fn func()) {
	s.notify = fn
}

func (s *MemorySurface) Period() Period { return s.period }

func (s *MemorySurface) SetPeriod(p Period) { s.period = p }

func (s *MemorySurface) Get(section cronexpr.Section) cronexpr.Value {
	return s.values[section]
}

func (s *MemorySurface) Set(section cronexpr.Section, value cronexpr.Value) {
	s.values[section] = value
}

func (s *MemorySurface) SetVisible(section cronexpr.Section, visible bool) {
	s.visible[section] = visible
}

// Visible reports whether section was last marked visible.
func (s *MemorySurface) Visible(section cronexpr.Section) bool {
	return s.visible[section]
}

// VisibleSections returns the visible sections in cronexpr.Sections order.
func (s *MemorySurface) VisibleSections() []cronexpr.Section {
	var out []cronexpr.Section
	for _, sec := range cronexpr.Sections {
		if s.visible[sec] {
			out = append(out, sec)
		}
	}
	return out
}

// Select replaces the selection of section as a user would, then notifies.
func (s *MemorySurface) Select(section cronexpr.Section, ints ...int) {
	s.values[section] = cronexpr.Values(ints...)
	s.changed()
}

// SelectPeriod changes the period as a user would, then notifies.
func (s *MemorySurface) SelectPeriod(p Period) {
	s.period = p
	s.changed()
}

func (s *MemorySurface) changed() {
	if s.notify != nil {
		s.notify()
	}
}
