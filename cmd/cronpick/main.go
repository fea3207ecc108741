package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/alexanderramin/cronpick/internal/cli"
	"github.com/alexanderramin/cronpick/internal/config"
	"github.com/alexanderramin/cronpick/internal/db"
	"github.com/alexanderramin/cronpick/internal/editor"
	"github.com/alexanderramin/cronpick/internal/publish"
	"github.com/alexanderramin/cronpick/internal/repository"
	"github.com/alexanderramin/cronpick/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	app := &cli.App{}

	// Detect interactive terminal for the editor.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wiring waits for --config, which cobra parses before PersistentPreRunE.
	app.Bootstrap = func(configPath string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		database, err = db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}

		scheduleRepo := repository.NewSQLiteScheduleRepo(database)
		uow := db.NewSQLiteUnitOfWork(database)

		var observers []service.UseCaseObserver
		if cfg.LogChanges {
			observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
			app.ChangeObserver = editor.NewLogObserver(os.Stderr)
		}
		app.Schedules = service.NewScheduleService(scheduleRepo, uow, observers...)
		app.Import = service.NewImportService(uow, observers...)

		app.EditorOptions, err = cfg.EditorOptions()
		if err != nil {
			return err
		}

		// Publishing is wired only when post.url is set.
		pubCfg := cfg.PublishConfig()
		if pubCfg.Enabled() {
			var observer publish.Observer = publish.NoopObserver{}
			if cfg.LogChanges {
				observer = publish.NewLogObserver(os.Stderr)
			}
			app.Publisher = publish.NewHTTPPublisher(pubCfg, observer)
		}
		return nil
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
