package cli

import (
	"github.com/alexanderramin/cronpick/internal/editor"
	"github.com/alexanderramin/cronpick/internal/publish"
	"github.com/alexanderramin/cronpick/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands. Bootstrap, when
// set, fills the remaining fields from the --config file before any command
// runs; tests set the fields directly instead.
type App struct {
	Schedules service.ScheduleService
	Import    service.ImportService

	// EditorOptions are the configured initial value, section displays and
	// presets. Callbacks are attached per command.
	EditorOptions editor.Options

	// ChangeObserver receives editor change events. Nil discards them.
	ChangeObserver editor.Observer

	// Publisher receives every value accepted by the interactive editor.
	Publisher publish.Publisher

	IsInteractive func() bool

	// RunProgram runs an interactive model to completion. Nil runs a real
	// bubbletea program on the command's streams.
	RunProgram func(cmd *cobra.Command, model tea.Model) (tea.Model, error)

	Bootstrap func(configPath string) error
}

// NewRootCmd creates the top-level "cronpick" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "cronpick",
		Short:         "Classify, inspect and edit five-field cron expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Bootstrap == nil {
				return nil
			}
			return app.Bootstrap(configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.cronpick/config.yaml)")

	root.AddCommand(
		newClassifyCmd(),
		newShowCmd(app),
		newEditCmd(app),
		newScheduleCmd(app),
	)

	return root
}

// editorOptions returns the configured options with the app observer set.
func (app *App) editorOptions() editor.Options {
	opts := app.EditorOptions
	if app.ChangeObserver != nil {
		opts.Observer = app.ChangeObserver
	}
	return opts
}

func (app *App) runProgram(cmd *cobra.Command, model tea.Model) (tea.Model, error) {
	if app.RunProgram != nil {
		return app.RunProgram(cmd, model)
	}
	p := tea.NewProgram(model,
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
	)
	return p.Run()
}
