// Package editor binds the cronexpr model to an editing surface: it pushes
// a classified expression into per-section selections and reads user edits
// back into a canonical expression string.
package editor

import (
	"fmt"

	"github.com/alexanderramin/cronpick/internal/cronexpr"
)

// Editor owns the current expression of one editing surface. It is not safe
// for concurrent use.
type Editor struct {
	surface Surface
	opts    Options

	current string
	shape   cronexpr.Shape
	err     error
}

// New validates opts, creates an Editor over surface and pushes the initial
// value into it.
func New(surface Surface, opts Options) (*Editor, error) {
	if surface == nil {
		return nil, fmt.Errorf("%w: surface is required", ErrInvalidConfiguration)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	e := &Editor{surface: surface, opts: opts.withDefaults()}
	if err := e.SetValue(e.opts.Initial); err != nil {
		return nil, fmt.Errorf("setting initial value: %w", err)
	}
	return e, nil
}

// Value returns the last accepted expression.
func (e *Editor) Value() string {
	return e.current
}

// Shape returns the shape of the last accepted expression.
func (e *Editor) Shape() cronexpr.Shape {
	return e.shape
}

// Err returns the error from the most recent surface read, if it failed.
func (e *Editor) Err() error {
	return e.err
}

// Options returns the effective options, defaults applied.
func (e *Editor) Options() Options {
	return e.opts
}

// Display returns the effective display settings for section.
func (e *Editor) Display(section cronexpr.Section) SectionDisplay {
	return e.opts.Sections[section]
}

// GetValue serializes the surface's current selections. When the period
// holds a preset, the preset's expression is returned.
func (e *Editor) GetValue() (string, error) {
	p := e.surface.Period()
	if p.IsPreset() {
		preset, ok := e.opts.preset(p.Preset)
		if !ok {
			return "", fmt.Errorf("%w: unknown preset %q", ErrInvalidConfiguration, p.Preset)
		}
		expr, err := cronexpr.Parse(preset.Expression)
		if err != nil {
			return "", fmt.Errorf("preset %q: %w", p.Preset, err)
		}
		return expr.String(), nil
	}

	values := make(cronexpr.SectionValues)
	for _, sec := range cronexpr.ValueSections(p.Shape) {
		values[sec] = e.surface.Get(sec)
	}
	expr, err := cronexpr.Unproject(p.Shape, values)
	if err != nil {
		return "", err
	}
	return expr.String(), nil
}

// SetValue validates s and, only if it is valid, pushes it into the surface:
// the period, the values of active sections, wildcards for the rest, and
// section visibility. OnChange is not called.
func (e *Editor) SetValue(s string) error {
	expr, err := cronexpr.Parse(s)
	if err != nil {
		e.opts.Observer.OnValueChange(ChangeEvent{Source: SourceProgrammatic, Previous: e.current, Value: s, Err: err})
		return err
	}
	shape, values, err := cronexpr.Project(expr)
	if err != nil {
		e.opts.Observer.OnValueChange(ChangeEvent{Source: SourceProgrammatic, Previous: e.current, Value: s, Err: err})
		return err
	}

	period := ShapePeriod(shape)
	e.surface.SetPeriod(period)
	for _, sec := range cronexpr.Sections {
		if sec == cronexpr.SectionPeriod {
			continue
		}
		if v, ok := values[sec]; ok {
			e.surface.Set(sec, v)
		} else {
			e.surface.Set(sec, cronexpr.Wildcard())
		}
	}
	e.applyVisibility(period)

	previous := e.current
	e.current = expr.String()
	e.shape = shape
	e.err = nil
	e.opts.Observer.OnValueChange(ChangeEvent{
		Source:   SourceProgrammatic,
		Previous: previous,
		Value:    e.current,
		Period:   period.String(),
	})
	return nil
}

// SurfaceChanged is called by the surface after a user edit. It refreshes
// section visibility for the selected period, re-reads the value and calls
// OnChange once if the value differs from the last accepted one.
func (e *Editor) SurfaceChanged() error {
	period := e.surface.Period()
	e.applyVisibility(period)

	value, err := e.GetValue()
	if err != nil {
		e.err = err
		e.opts.Observer.OnValueChange(ChangeEvent{
			Source:   SourceUser,
			Previous: e.current,
			Period:   period.String(),
			Err:      err,
		})
		return err
	}
	e.err = nil
	if value == e.current {
		return nil
	}

	previous := e.current
	e.current = value
	if shape, err := cronexpr.Classify(value); err == nil {
		e.shape = shape
	}
	e.opts.Observer.OnValueChange(ChangeEvent{
		Source:   SourceUser,
		Previous: previous,
		Value:    value,
		Period:   period.String(),
	})
	if e.opts.OnChange != nil {
		e.opts.OnChange(value)
	}
	return nil
}

// applyVisibility shows the sections active for period and hides the rest.
// Presets show only the period selector.
func (e *Editor) applyVisibility(period Period) {
	for _, sec := range cronexpr.Sections {
		visible := sec == cronexpr.SectionPeriod
		if !period.IsPreset() {
			visible = cronexpr.IsActive(period.Shape, sec)
		}
		e.surface.SetVisible(sec, visible)
	}
}
