package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cronpick/internal/cronexpr"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ShapeColor returns the style used for a shape name. Coarser periods get
// warmer colors.
func ShapeColor(shape cronexpr.Shape) lipgloss.Style {
	switch shape {
	case cronexpr.ShapeMinute:
		return StyleDim
	case cronexpr.ShapeHour:
		return StyleBlue
	case cronexpr.ShapeDay:
		return StyleGreen
	case cronexpr.ShapeWeek:
		return StylePurple
	case cronexpr.ShapeMonth:
		return StyleYellow
	case cronexpr.ShapeYear:
		return StyleRed
	default:
		return StyleFg
	}
}

// ShapeBadge returns a colored shape indicator such as "● WEEK".
func ShapeBadge(shape cronexpr.Shape) string {
	return ShapeColor(shape).Render("● " + strings.ToUpper(shape.String()))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Error renders an error line in red.
func Error(err error) string {
	return StyleRed.Render("✖ " + err.Error())
}
