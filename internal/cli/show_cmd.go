package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/cronpick/internal/cli/formatter"
	"github.com/alexanderramin/cronpick/internal/cronexpr"
	"github.com/alexanderramin/cronpick/internal/editor"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "show EXPR...",
		Short: "Show the sections an expression is edited through",
		Long: `Show the shape of an expression, the sections the editor would display
for it, and the selected values of each section laid out by its
configured columns or rows.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := joinExprArgs(args)
			if _, err := cronexpr.Parse(input); err != nil {
				return err
			}

			surface := editor.NewMemorySurface()
			opts := app.editorOptions()
			opts.Initial = input
			ed, err := editor.New(surface, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n", formatter.Expression(ed.Value()), formatter.ShapeBadge(ed.Shape()))
			if compact {
				writeCompactSections(out, surface)
				return nil
			}
			writeSectionGrids(out, ed, surface)
			return nil
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "list selected labels instead of grids")
	return cmd
}

// writeCompactSections prints one "section: labels" line per visible value
// section.
func writeCompactSections(w io.Writer, surface *editor.MemorySurface) {
	for _, sec := range surface.VisibleSections() {
		if sec == cronexpr.SectionPeriod {
			fmt.Fprintf(w, "%s: %s\n", sec, surface.Period())
			continue
		}
		f, _ := sec.Field()
		value := surface.Get(sec)
		labels := make([]string, 0, len(value.Ints()))
		for _, v := range value.Ints() {
			labels = append(labels, cronexpr.Label(f, v))
		}
		fmt.Fprintf(w, "%s: %s\n", sec, strings.Join(labels, ", "))
	}
}

// writeSectionGrids prints each visible section under its display title.
func writeSectionGrids(w io.Writer, ed *editor.Editor, surface *editor.MemorySurface) {
	for _, sec := range surface.VisibleSections() {
		d := ed.Display(sec)
		fmt.Fprintln(w)
		fmt.Fprintln(w, formatter.Header(d.Title))
		if sec == cronexpr.SectionPeriod {
			fmt.Fprintln(w, surface.Period())
			continue
		}
		f, _ := sec.Field()
		fmt.Fprint(w, formatter.RenderGrid(
			formatter.FieldChoices(f, surface.Get(sec)),
			formatter.GridLayout{Columns: d.Columns, Rows: d.Rows, ItemWidth: d.ItemWidth},
		))
	}
}
