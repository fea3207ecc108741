package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/cronpick/internal/cli/formatter"
	"github.com/alexanderramin/cronpick/internal/cronexpr"
	"github.com/alexanderramin/cronpick/internal/domain"
	"github.com/alexanderramin/cronpick/internal/editor"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"s"},
		Short:   "Manage saved schedules",
	}

	cmd.AddCommand(
		newScheduleListCmd(app),
		newScheduleSaveCmd(app),
		newScheduleShowCmd(app),
		newScheduleDeleteCmd(app),
		newScheduleExportCmd(app),
		newScheduleImportCmd(app),
	)

	return cmd
}

func newScheduleListCmd(app *App) *cobra.Command {
	var shape shapeFlag

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved schedules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schedules, err := app.Schedules.List(cmd.Context(), shape.name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(schedules) == 0 {
				fmt.Fprintln(out, "No schedules found.")
				return nil
			}

			headers := []string{"ID", "Name", "Expression", "Shape", "Updated"}
			rows := make([][]string, 0, len(schedules))
			for _, s := range schedules {
				rows = append(rows, []string{
					formatter.Dim(s.DisplayID()),
					s.Name,
					s.Expression,
					shapeCell(s),
					s.UpdatedAt.Local().Format("2006-01-02 15:04"),
				})
			}

			fmt.Fprint(out, formatter.RenderTable(headers, rows))
			return nil
		},
	}
	cmd.Flags().Var(&shape, "shape", "only list schedules of this shape")
	return cmd
}

func newScheduleSaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save NAME EXPR...",
		Short: "Save an expression under a name, replacing any previous one",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Schedules.Save(cmd.Context(), args[0], joinExprArgs(args[1:]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", savedMessage(res.Schedule.Name, res.Created), formatter.Dim(res.Schedule.Expression))
			return nil
		},
	}
}

func newScheduleShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show a saved schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Schedules.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			surface := editor.NewMemorySurface()
			opts := app.editorOptions()
			opts.Initial = s.Expression
			if _, err := editor.New(surface, opts); err != nil {
				return err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Name:       %s\n", formatter.Bold(s.Name))
			fmt.Fprintf(&b, "ID:         %s\n", s.ID)
			fmt.Fprintf(&b, "Expression: %s\n", s.Expression)
			fmt.Fprintf(&b, "Shape:      %s\n", shapeCell(s))
			fmt.Fprintf(&b, "Created:    %s\n", s.CreatedAt.Local().Format("2006-01-02 15:04"))
			fmt.Fprintf(&b, "Updated:    %s\n\n", s.UpdatedAt.Local().Format("2006-01-02 15:04"))
			writeCompactSections(&b, surface)

			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Schedule", strings.TrimRight(b.String(), "\n")))
			return nil
		},
	}
}

func newScheduleDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a saved schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Schedules.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted %s\n", formatter.StyleGreen.Render("✔"), formatter.Bold(args[0]))
			return nil
		},
	}
}

func newScheduleExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [FILE]",
		Short: "Write all schedules as YAML to FILE or stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_, err := app.Schedules.Export(cmd.Context(), cmd.OutOrStdout())
				return err
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			n, err := app.Schedules.Export(cmd.Context(), f)
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Exported %d schedules to %s\n", formatter.StyleGreen.Render("✔"), n, args[0])
			return nil
		},
	}
}

func newScheduleImportCmd(app *App) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import schedules from a YAML file",
		Long: `Import schedules from a YAML file. The whole file is validated first and
written in one transaction, so either every schedule is imported or none
is. Existing names are an error unless --replace is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Import.ImportFile(cmd.Context(), args[0], replace)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Imported %d new, %d updated\n", formatter.StyleGreen.Render("✔"), res.Created, res.Updated)
			return nil
		},
	}
	cmd.Flags().BoolVar(&replace, "replace", false, "overwrite schedules with the same name")
	return cmd
}

// shapeCell renders a stored shape name in its color.
func shapeCell(s *domain.Schedule) string {
	shape, err := cronexpr.ParseShape(s.Shape)
	if err != nil {
		return s.Shape
	}
	return formatter.ShapeColor(shape).Render(s.Shape)
}
