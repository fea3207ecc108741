package editor

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/cronpick/internal/cronexpr"
)

// ErrInvalidConfiguration indicates conflicting or missing editor options.
var ErrInvalidConfiguration = errors.New("invalid editor configuration")

// DefaultInitial is the value used when Options.Initial is empty.
const DefaultInitial = "* * * * *"

// SectionDisplay holds presentational settings for one section. Zero means
// unset. Rows and Columns are mutually exclusive and both need ItemWidth.
type SectionDisplay struct {
	Title     string `yaml:"title,omitempty" mapstructure:"title"`
	Columns   int    `yaml:"columns,omitempty" mapstructure:"columns"`
	Rows      int    `yaml:"rows,omitempty" mapstructure:"rows"`
	ItemWidth int    `yaml:"item_width,omitempty" mapstructure:"item_width"`
	MinWidth  int    `yaml:"min_width,omitempty" mapstructure:"min_width"`
}

// Validate checks the layout rules of a section display.
func (d SectionDisplay) Validate() error {
	if d.Columns < 0 || d.Rows < 0 || d.ItemWidth < 0 || d.MinWidth < 0 {
		return fmt.Errorf("%w: layout values must not be negative", ErrInvalidConfiguration)
	}
	if d.Columns > 0 && d.Rows > 0 {
		return fmt.Errorf("%w: cannot supply both rows and columns", ErrInvalidConfiguration)
	}
	if d.Columns > 0 && d.ItemWidth == 0 {
		return fmt.Errorf("%w: item width must be supplied if columns is specified", ErrInvalidConfiguration)
	}
	if d.Rows > 0 && d.ItemWidth == 0 {
		return fmt.Errorf("%w: item width must be supplied if rows is specified", ErrInvalidConfiguration)
	}
	return nil
}

// Preset is a labelled expression offered in the period selector next to
// the six shapes.
type Preset struct {
	Label      string `yaml:"label" mapstructure:"label"`
	Expression string `yaml:"expression" mapstructure:"expression"`
}

// Options configures an Editor.
type Options struct {
	// Initial is the starting expression. Empty means DefaultInitial.
	Initial string

	// OnChange receives the new value after each user edit that changes it.
	OnChange func(value string)

	// Sections overrides the default display of individual sections.
	Sections map[cronexpr.Section]SectionDisplay

	Presets []Preset

	Observer Observer
}

// DefaultSectionDisplays returns the built-in layout of every value section.
func DefaultSectionDisplays() map[cronexpr.Section]SectionDisplay {
	return map[cronexpr.Section]SectionDisplay{
		cronexpr.SectionPeriod:                {Title: "Every", MinWidth: 100},
		cronexpr.SectionMinuteOfHour:          {Title: "Minutes Past the Hour", Columns: 4, ItemWidth: 30, MinWidth: 100},
		cronexpr.SectionHourOfDay:             {Title: "Time: Hour", Columns: 2, ItemWidth: 20, MinWidth: 100},
		cronexpr.SectionMinuteOfHourWithinDay: {Title: "Time: Minute", Columns: 4, ItemWidth: 20, MinWidth: 100},
		cronexpr.SectionDayOfWeek:             {Title: "Day of Week", MinWidth: 100},
		cronexpr.SectionDayOfMonth:            {Title: "Day of Month", Rows: 10, ItemWidth: 30, MinWidth: 100},
		cronexpr.SectionMonth:                 {Title: "Month", Columns: 2, ItemWidth: 100, MinWidth: 100},
	}
}

// withDefaults returns a copy of o with empty settings filled in. Section
// overrides replace the default display for that section wholesale, except
// that an empty title keeps the default title.
func (o Options) withDefaults() Options {
	out := o
	if out.Initial == "" {
		out.Initial = DefaultInitial
	}
	if out.Observer == nil {
		out.Observer = NoopObserver{}
	}
	displays := DefaultSectionDisplays()
	for sec, d := range o.Sections {
		if d.Title == "" {
			d.Title = displays[sec].Title
		}
		displays[sec] = d
	}
	out.Sections = displays
	out.Presets = append([]Preset(nil), o.Presets...)
	return out
}

// Validate checks the options after defaults are applied.
func (o Options) Validate() error {
	o = o.withDefaults()

	if _, err := cronexpr.Classify(o.Initial); err != nil {
		return fmt.Errorf("%w: initial value: %w", ErrInvalidConfiguration, err)
	}
	for sec, d := range o.Sections {
		if !sec.Valid() {
			return fmt.Errorf("%w: unknown %s", ErrInvalidConfiguration, sec)
		}
		if err := d.Validate(); err != nil {
			return fmt.Errorf("%s: %w", sec, err)
		}
	}
	seen := make(map[string]bool, len(o.Presets))
	for _, p := range o.Presets {
		if p.Label == "" {
			return fmt.Errorf("%w: preset label is required", ErrInvalidConfiguration)
		}
		if _, err := cronexpr.ParseShape(p.Label); err == nil {
			return fmt.Errorf("%w: preset label %q collides with a period name", ErrInvalidConfiguration, p.Label)
		}
		if seen[p.Label] {
			return fmt.Errorf("%w: duplicate preset %q", ErrInvalidConfiguration, p.Label)
		}
		seen[p.Label] = true
		if _, err := cronexpr.Classify(p.Expression); err != nil {
			return fmt.Errorf("%w: preset %q: %w", ErrInvalidConfiguration, p.Label, err)
		}
	}
	return nil
}

// preset returns the preset with the given label.
func (o Options) preset(label string) (Preset, bool) {
	for _, p := range o.Presets {
		if p.Label == label {
			return p, true
		}
	}
	return Preset{}, false
}
