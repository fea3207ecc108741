package editor

import "github.com/alexanderramin/cronpick/internal/cronexpr"

// Period is the selection held by the period section: a shape, or the label
// of a preset when one is chosen.
type Period struct {
	Shape  cronexpr.Shape
	Preset string
}

// IsPreset reports whether the period selects a preset.
func (p Period) IsPreset() bool {
	return p.Preset != ""
}

func (p Period) String() string {
	if p.IsPreset() {
		return p.Preset
	}
	return p.Shape.String()
}

// ShapePeriod returns the period selecting shape.
func ShapePeriod(shape cronexpr.Shape) Period {
	return Period{Shape: shape}
}

// Surface is the editing surface an Editor drives. Set, SetPeriod and
// SetVisible push state in; Get and Period read it back. A surface must
// notify its Editor through SurfaceChanged only for user-originated changes,
// never for values pushed through this interface.
type Surface interface {
	Period() Period
	SetPeriod(Period)
	Get(section cronexpr.Section) cronexpr.Value
	Set(section cronexpr.Section, value cronexpr.Value)
	SetVisible(section cronexpr.Section, visible bool)
}
