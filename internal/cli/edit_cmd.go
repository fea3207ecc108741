package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/cronpick/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newEditCmd(app *App) *cobra.Command {
	var initial exprFlag
	var from string
	var save string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit an expression interactively",
		Long: `Open the interactive editor. Pick a period, then the values of each
section the period needs. The accepted expression is printed on exit.

With --from the editor starts from a saved schedule and, unless --save
names another schedule, writes the result back to it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return errors.New("edit needs an interactive terminal")
			}
			if from != "" && initial.value != "" {
				return errors.New("--from and --initial are mutually exclusive")
			}

			opts := app.editorOptions()
			if initial.value != "" {
				opts.Initial = initial.value
			}
			if from != "" {
				sched, err := app.Schedules.Get(cmd.Context(), from)
				if err != nil {
					return err
				}
				opts.Initial = sched.Expression
				if save == "" {
					save = from
				}
			}

			model, err := newEditModel(opts, app.Publisher)
			if err != nil {
				return err
			}
			final, err := app.runProgram(cmd, model)
			if err != nil {
				return fmt.Errorf("running editor: %w", err)
			}
			m, ok := final.(*editModel)
			if !ok {
				return fmt.Errorf("running editor: unexpected model %T", final)
			}
			if m.Aborted() {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("Cancelled."))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), m.Value())
			if save == "" {
				return nil
			}
			res, err := app.Schedules.Save(cmd.Context(), save, m.Value())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), savedMessage(res.Schedule.Name, res.Created))
			return nil
		},
	}
	cmd.Flags().Var(&initial, "initial", "starting expression (default from config)")
	cmd.Flags().StringVar(&from, "from", "", "start from the saved schedule `NAME`")
	cmd.Flags().StringVar(&save, "save", "", "save the result as schedule `NAME`")
	return cmd
}

func savedMessage(name string, created bool) string {
	verb := "Updated"
	if created {
		verb = "Saved"
	}
	return fmt.Sprintf("%s %s %s", formatter.StyleGreen.Render("✔"), verb, formatter.Bold(name))
}
