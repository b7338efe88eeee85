package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/tturner/scandrill/internal/drill"
	"github.com/tturner/scandrill/internal/presenter"
	"github.com/tturner/scandrill/internal/ui"
)

// Model is the main TUI model. It renders the engine by polling its
// snapshot; the engine itself never sends messages to the program.
type Model struct {
	engine *drill.Engine
	styles Styles
	layout Layout
	keys   keyMap
	help   help.Model

	snap drill.Snapshot

	form   *huh.Form
	values *formValues

	status string
	error  string
}

// NewModel creates a model on the settings screen.
func NewModel(engine *drill.Engine) *Model {
	m := &Model{
		engine: engine,
		styles: DefaultStyles,
		layout: NewLayout(DefaultWidth, DefaultHeight),
		keys:   defaultKeyMap(),
		help:   help.New(),
		snap:   engine.Snapshot(),
	}
	m.resetForm()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if m.form != nil {
		cmds = append(cmds, m.form.Init())
	}
	return tea.Batch(cmds...)
}

// tickMsg is sent periodically.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// resetForm rebuilds the settings form from the engine configuration and
// returns its init command.
func (m *Model) resetForm() tea.Cmd {
	m.values = valuesFromConfig(m.engine.Config())
	m.form = buildSettingsForm(m.values, m.engine.Languages(), m.layout.FormWidth)
	return m.form.Init()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = NewLayout(msg.Width, msg.Height)
		m.help.Width = msg.Width
		if m.form != nil {
			m.form = m.form.WithWidth(m.layout.FormWidth)
		}
		return m, nil

	case tickMsg:
		return m.handleTick()

	case clipboardCopyMsg:
		if msg.success {
			m.status = "Command copied to clipboard"
		} else {
			m.status = "Clipboard unavailable: " + msg.content
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.engine.Stop()
			return m, tea.Quit
		}
		if m.snap.Screen == drill.ScreenRunning {
			return m.handleRunningKey(msg)
		}
	}

	if m.snap.Screen == drill.ScreenSettings && m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	formModel, cmd := m.form.Update(msg)
	if f, ok := formModel.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		return m, m.startDrill()
	case huh.StateAborted:
		return m, tea.Quit
	}
	return m, cmd
}

// startDrill applies the form values and starts the engine. On failure the
// form is shown again with the error.
func (m *Model) startDrill() tea.Cmd {
	patch, err := m.values.patch()
	if err == nil {
		err = m.engine.Reconfigure(patch)
	}
	if err == nil {
		err = m.engine.Start()
	}
	if err != nil {
		m.error = err.Error()
		return m.resetForm()
	}
	m.error = ""
	m.status = ""
	m.form = nil
	m.snap = m.engine.Snapshot()
	return nil
}

func (m *Model) handleRunningKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.engine.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Stop):
		m.engine.Stop()
		return m, m.backToSettings("Stopped after %d cues")
	case key.Matches(msg, m.keys.Copy):
		return m, copyToClipboard(ui.BuildRunCommand(m.snap.Config))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// backToSettings refreshes the snapshot and shows the form with a status
// line formatted with the final cue count.
func (m *Model) backToSettings(statusFormat string) tea.Cmd {
	m.snap = m.engine.Snapshot()
	m.status = fmt.Sprintf(statusFormat, m.snap.Ticks)
	return m.resetForm()
}

func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd()}
	prev := m.snap.Screen
	m.snap = m.engine.Snapshot()

	// The duration limit ended the drill.
	if prev == drill.ScreenRunning && m.snap.Screen == drill.ScreenSettings {
		cmds = append(cmds, m.backToSettings("Drill finished after %d cues"))
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.snap.Screen == drill.ScreenRunning {
		return m.viewRunning()
	}
	return m.viewSettings()
}

func (m *Model) viewSettings() string {
	title := m.styles.Title.Render("scandrill")
	body := ""
	if m.form != nil {
		body = m.form.View()
	}
	out := lipgloss.JoinVertical(lipgloss.Left, title, m.styles.Panel.Render(body))
	if m.error != "" {
		out += "\n" + m.styles.Error.Render("✗ "+m.error)
	}
	if m.status != "" {
		out += "\n" + m.styles.Success.Render(m.status)
	}
	out += "\n" + m.styles.Footer.Render("enter next • ctrl+c quit")
	return out
}

func (m *Model) viewRunning() string {
	bg := presenter.Swatch(m.snap.Background)
	content := ""
	if m.snap.Cue.Kind == drill.CueDirection {
		content = m.styles.Cue.
			Background(bg).
			Foreground(presenter.Ink(m.snap.Background)).
			Render(m.snap.DisplayText)
	}

	screen := lipgloss.Place(
		m.layout.Width, m.layout.CueHeight,
		lipgloss.Center, lipgloss.Center,
		content,
		lipgloss.WithWhitespaceBackground(bg),
	)
	return screen + "\n" + m.footer()
}

func (m *Model) footer() string {
	info := fmt.Sprintf("%s • cue %d • %s", m.snap.Config.Mode, m.snap.Ticks, formatClock(m.snap.Elapsed))
	if m.snap.Remaining > 0 {
		info += fmt.Sprintf(" • %s left", formatClock(m.snap.Remaining))
	}
	if m.status != "" {
		info += " • " + m.status
	}
	return m.styles.Footer.Render(info) + "  " + m.help.View(m.keys)
}

func formatClock(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
