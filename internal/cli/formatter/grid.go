package formatter

import (
	"strings"

	"github.com/alexanderramin/cronpick/internal/cronexpr"
	"github.com/charmbracelet/lipgloss"
)

// pixelsPerCell converts an item width given in pixels to terminal cells.
const pixelsPerCell = 8

// GridLayout arranges choices into columns or rows. Columns and Rows are
// mutually exclusive; with neither set every choice gets its own line.
type GridLayout struct {
	Columns   int
	Rows      int
	ItemWidth int
}

// Choice is one selectable value in a grid.
type Choice struct {
	Label    string
	Selected bool
}

// FieldChoices returns every value of f with its label, marking the values
// contained in selected.
func FieldChoices(f cronexpr.Field, selected cronexpr.Value) []Choice {
	values := cronexpr.Choices(f)
	out := make([]Choice, 0, len(values))
	for _, v := range values {
		out = append(out, Choice{
			Label:    cronexpr.Label(f, v),
			Selected: !selected.IsWildcard() && selected.Contains(v),
		})
	}
	return out
}

// RenderGrid lays out choices per layout. Column-count layouts fill rows
// left to right; row-count layouts fill columns top to bottom.
func RenderGrid(choices []Choice, layout GridLayout) string {
	if len(choices) == 0 {
		return ""
	}

	cells := make([]string, len(choices))
	width := 0
	for i, c := range choices {
		cells[i] = renderChoice(c)
		width = max(width, lipgloss.Width(cells[i]))
	}
	width = max(width, ceilDiv(layout.ItemWidth, pixelsPerCell))

	rows, cols := gridShape(len(choices), layout)
	index := func(r, c int) int {
		if layout.Rows > 0 {
			return c*rows + r
		}
		return r*cols + c
	}

	var b strings.Builder
	for r := 0; r < rows; r++ {
		var line strings.Builder
		for c := 0; c < cols; c++ {
			i := index(r, c)
			if i >= len(cells) {
				continue
			}
			line.WriteString(cells[i])
			line.WriteString(strings.Repeat(" ", width-lipgloss.Width(cells[i])+colGap))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}
	return b.String()
}

func gridShape(n int, layout GridLayout) (rows, cols int) {
	switch {
	case layout.Columns > 0:
		return ceilDiv(n, layout.Columns), layout.Columns
	case layout.Rows > 0:
		return layout.Rows, ceilDiv(n, layout.Rows)
	default:
		return n, 1
	}
}

func renderChoice(c Choice) string {
	if c.Selected {
		return StyleGreen.Render("● " + c.Label)
	}
	return StyleDim.Render("○ " + c.Label)
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
