package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/cronpick/internal/repository"
	"github.com/alexanderramin/cronpick/internal/service"
	"github.com/alexanderramin/cronpick/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	repo := repository.NewSQLiteScheduleRepo(database)

	return &App{
		Schedules:     service.NewScheduleService(repo, uow),
		Import:        service.NewImportService(uow),
		IsInteractive: func() bool { return true },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- classify ---

func TestClassifyCmd_SingleArgument(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "classify", "0 5 * * 1,2")
	require.NoError(t, err)
	assert.Equal(t, "week\n", out)
}

func TestClassifyCmd_SplitArguments(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "classify", "0", "0", "1", "1", "*")
	require.NoError(t, err)
	assert.Equal(t, "year\n", out)
}

func TestClassifyCmd_Quiet(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "classify", "-q", "* * * * *")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestClassifyCmd_Unsupported(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "classify", "*/5 * * * *")
	require.Error(t, err)
}

func TestClassifyCmd_Malformed(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "classify", "0 5 * *")
	require.Error(t, err)
}

// --- show ---

func TestShowCmd_Grids(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "show", "0 5 * * 1,2")
	require.NoError(t, err)
	assert.Contains(t, out, "WEEK")
	assert.Contains(t, out, "DAY OF WEEK")
	assert.Contains(t, out, "TIME: HOUR")
	assert.NotContains(t, out, "DAY OF MONTH")
	assert.Contains(t, out, "● Monday")
	assert.Contains(t, out, "○ Sunday")
}

func TestShowCmd_Compact(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "show", "--compact", "0 5 * * 1,2")
	require.NoError(t, err)
	assert.Contains(t, out, "period: week")
	assert.Contains(t, out, "dayOfWeek: Monday, Tuesday")
	assert.Contains(t, out, "hourOfDay: 05")
}

func TestShowCmd_RejectsUnsupported(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "show", "0 5 1 * 1")
	require.Error(t, err)
}

// --- schedule ---

func TestScheduleCmd_SaveAndList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "schedule", "save", "backup", "0", "2", "*", "*", "*")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved backup")

	out, err = executeCmd(t, app, "schedule", "save", "backup", "30 2 * * *")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated backup")

	_, err = executeCmd(t, app, "schedule", "save", "standup", "30 9 * * 1,2,3,4,5")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "schedule", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "backup")
	assert.Contains(t, out, "30 2 * * *")
	assert.Contains(t, out, "standup")
}

func TestScheduleCmd_ListByShape(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "schedule", "save", "backup", "0 2 * * *")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "schedule", "save", "standup", "30 9 * * 1")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "schedule", "list", "--shape", "week")
	require.NoError(t, err)
	assert.Contains(t, out, "standup")
	assert.NotContains(t, out, "backup")
}

func TestScheduleCmd_ListInvalidShape(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "schedule", "list", "--shape", "fortnight")
	require.Error(t, err)
}

func TestScheduleCmd_ListEmpty(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "schedule", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No schedules found.")
}

func TestScheduleCmd_SaveRejectsUnsupported(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "schedule", "save", "bad", "0 5 1 * 1")
	require.Error(t, err)

	_, err = app.Schedules.Get(context.Background(), "bad")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestScheduleCmd_Show(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "schedule", "save", "monthly", "0 0 1 * *")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "schedule", "show", "monthly")
	require.NoError(t, err)
	assert.Contains(t, out, "monthly")
	assert.Contains(t, out, "0 0 1 * *")
	assert.Contains(t, out, "period: month")
	assert.Contains(t, out, "dayOfMonth: 1st")
}

func TestScheduleCmd_ShowMissing(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "schedule", "show", "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestScheduleCmd_Delete(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "schedule", "save", "backup", "0 2 * * *")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "schedule", "delete", "backup")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted backup")

	_, err = executeCmd(t, app, "schedule", "delete", "backup")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestScheduleCmd_ExportImportRoundTrip(t *testing.T) {
	src := testApp(t)
	_, err := executeCmd(t, src, "schedule", "save", "backup", "0 2 * * *")
	require.NoError(t, err)
	_, err = executeCmd(t, src, "schedule", "save", "hourly", "15 * * * *")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "schedules.yaml")
	out, err := executeCmd(t, src, "schedule", "export", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 schedules")

	dst := testApp(t)
	out, err = executeCmd(t, dst, "schedule", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 new, 0 updated")

	got, err := dst.Schedules.Get(context.Background(), "hourly")
	require.NoError(t, err)
	assert.Equal(t, "15 * * * *", got.Expression)
	assert.Equal(t, "hour", got.Shape)
}

func TestScheduleCmd_ExportToStdout(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "schedule", "save", "backup", "0 2 * * *")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "schedule", "export")
	require.NoError(t, err)
	assert.Contains(t, out, "version: 1")
	assert.Contains(t, out, "name: backup")
}

func TestScheduleCmd_ImportConflictNeedsReplace(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "schedule", "save", "backup", "0 2 * * *")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "in.yaml")
	doc := "version: 1\nschedules:\n  - name: backup\n    expression: \"0 3 * * *\"\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err = executeCmd(t, app, "schedule", "import", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrDuplicateName)

	out, err := executeCmd(t, app, "schedule", "import", "--replace", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 0 new, 1 updated")

	got, err := app.Schedules.Get(context.Background(), "backup")
	require.NoError(t, err)
	assert.Equal(t, "0 3 * * *", got.Expression)
}

// --- edit ---

// finishingProgram returns a RunProgram that completes the model with the
// given expression without a terminal.
func finishingProgram(t *testing.T, value string) func(*cobra.Command, tea.Model) (tea.Model, error) {
	return func(_ *cobra.Command, model tea.Model) (tea.Model, error) {
		t.Helper()
		m, ok := model.(*editModel)
		require.True(t, ok)
		require.NoError(t, m.editor.SetValue(value))
		m.done = true
		return m, nil
	}
}

func TestEditCmd_RequiresTerminal(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }

	_, err := executeCmd(t, app, "edit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestEditCmd_RejectsInvalidInitial(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "edit", "--initial", "*/5 * * * *")
	require.Error(t, err)
}

func TestEditCmd_PrintsResultAndSaves(t *testing.T) {
	app := testApp(t)
	app.RunProgram = finishingProgram(t, "0 9 * * 1")

	out, err := executeCmd(t, app, "edit", "--initial", "0 5 * * *", "--save", "weekly")
	require.NoError(t, err)
	assert.Contains(t, out, "0 9 * * 1\n")
	assert.Contains(t, out, "Saved weekly")

	got, err := app.Schedules.Get(context.Background(), "weekly")
	require.NoError(t, err)
	assert.Equal(t, "week", got.Shape)
}

func TestEditCmd_FromSavedScheduleWritesBack(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "schedule", "save", "backup", "0 2 * * *")
	require.NoError(t, err)

	var initial string
	app.RunProgram = func(cmd *cobra.Command, model tea.Model) (tea.Model, error) {
		initial = model.(*editModel).Value()
		return finishingProgram(t, "0 4 * * *")(cmd, model)
	}

	out, err := executeCmd(t, app, "edit", "--from", "backup")
	require.NoError(t, err)
	assert.Equal(t, "0 2 * * *", initial)
	assert.Contains(t, out, "Updated backup")

	got, err := app.Schedules.Get(context.Background(), "backup")
	require.NoError(t, err)
	assert.Equal(t, "0 4 * * *", got.Expression)
}

func TestEditCmd_FromAndInitialConflict(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "edit", "--from", "x", "--initial", "* * * * *")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestEditCmd_CancelledDoesNotSave(t *testing.T) {
	app := testApp(t)
	app.RunProgram = func(_ *cobra.Command, model tea.Model) (tea.Model, error) {
		m := model.(*editModel)
		m.aborted = true
		return m, nil
	}

	out, err := executeCmd(t, app, "edit", "--save", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")

	_, err = app.Schedules.Get(context.Background(), "never")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEditCmd_ProgramError(t *testing.T) {
	app := testApp(t)
	app.RunProgram = func(_ *cobra.Command, model tea.Model) (tea.Model, error) {
		return model, errors.New("no tty")
	}

	_, err := executeCmd(t, app, "edit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "running editor")
}

// --- bootstrap ---

func TestRootCmd_BootstrapReceivesConfigPath(t *testing.T) {
	app := testApp(t)
	var got string
	app.Bootstrap = func(path string) error {
		got = path
		return nil
	}

	_, err := executeCmd(t, app, "--config", "/tmp/cronpick.yaml", "classify", "* * * * *")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cronpick.yaml", got)
}

func TestRootCmd_BootstrapErrorStopsCommand(t *testing.T) {
	app := testApp(t)
	app.Bootstrap = func(string) error { return errors.New("bad config") }

	out, err := executeCmd(t, app, "schedule", "list")
	require.Error(t, err)
	assert.Equal(t, "bad config", err.Error())
	assert.NotContains(t, out, "No schedules")
}
