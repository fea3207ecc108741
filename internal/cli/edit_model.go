package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/cronpick/internal/cli/formatter"
	"github.com/alexanderramin/cronpick/internal/editor"
	"github.com/alexanderramin/cronpick/internal/publish"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// editKeyMap lists the bindings shown in the footer. Only Cancel is handled
// by the model; huh handles the rest.
type editKeyMap struct {
	Next   key.Binding
	Toggle key.Binding
	Back   key.Binding
	Cancel key.Binding
}

func defaultEditKeys() editKeyMap {
	return editKeyMap{
		Next:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		Toggle: key.NewBinding(key.WithKeys("x", " "), key.WithHelp("x/space", "toggle")),
		Back:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "back")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Toggle, k.Back, k.Cancel}
}

// publishResultMsg reports the outcome of publishing one accepted value.
type publishResultMsg struct {
	value string
	err   error
}

// editModel runs the expression editor as a huh form. User edits flow from
// the form into formSurface, then through the editor; accepted values are
// published asynchronously when a publisher is configured.
type editModel struct {
	editor    *editor.Editor
	surface   *formSurface
	form      *huh.Form
	keys      editKeyMap
	publisher publish.Publisher

	width      int
	pending    []string
	publishErr error

	done    bool
	aborted bool
}

// newEditModel creates the editor over a fresh form surface. opts.OnChange,
// if set, is still called for every accepted value.
func newEditModel(opts editor.Options, publisher publish.Publisher) (*editModel, error) {
	m := &editModel{
		surface:   newFormSurface(),
		keys:      defaultEditKeys(),
		publisher: publisher,
	}

	onChange := opts.OnChange
	opts.OnChange = func(value string) {
		m.pending = append(m.pending, value)
		if onChange != nil {
			onChange(value)
		}
	}

	ed, err := editor.New(m.surface, opts)
	if err != nil {
		return nil, err
	}
	m.editor = ed
	m.surface.OnUserChange(func() { _ = ed.SurfaceChanged() })
	m.form = m.surface.buildForm(ed.Options(), ed.Display)
	return m, nil
}

func (m *editModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Cancel) {
			m.aborted = true
			return m, tea.Quit
		}
	case publishResultMsg:
		m.publishErr = msg.err
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	m.surface.sync()
	cmds := []tea.Cmd{cmd, m.flushPending()}

	switch m.form.State {
	case huh.StateCompleted:
		m.done = true
		cmds = append(cmds, tea.Quit)
	case huh.StateAborted:
		m.aborted = true
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Batch(cmds...)
}

// flushPending turns values accepted during this update into publish Cmds.
func (m *editModel) flushPending() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	values := m.pending
	m.pending = nil
	if m.publisher == nil {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(values))
	for _, v := range values {
		cmds = append(cmds, func() tea.Msg {
			return publishResultMsg{value: v, err: m.publisher.Publish(context.Background(), v)}
		})
	}
	return tea.Sequence(cmds...)
}

func (m *editModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.form.View())
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

// footer renders the live expression or the current error above the key hints.
func (m *editModel) footer() string {
	var status string
	if err := m.editor.Err(); err != nil {
		status = formatter.Error(err)
	} else {
		status = formatter.Dim("cron ") + formatter.Expression(m.editor.Value()) + "  " + formatter.ShapeBadge(m.editor.Shape())
	}
	if m.publishErr != nil {
		status += "\n" + formatter.Error(m.publishErr)
	}

	hints := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, formatter.Dim(h.Key+": "+h.Desc))
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.width, 20)))
	return sep + "\n" + status + "\n" + strings.Join(hints, "  ")
}

// Value returns the last accepted expression.
func (m *editModel) Value() string {
	return m.editor.Value()
}

// Completed reports whether the user submitted the form.
func (m *editModel) Completed() bool {
	return m.done
}

// Aborted reports whether the user cancelled.
func (m *editModel) Aborted() bool {
	return m.aborted
}
