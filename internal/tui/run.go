package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tturner/scandrill/internal/drill"
)

// Run starts the TUI on the alternate screen and blocks until the user
// quits. Any running drill is stopped on return.
func Run(engine *drill.Engine) error {
	model := NewModel(engine)
	program := tea.NewProgram(model, tea.WithAltScreen())

	_, err := program.Run()
	engine.Stop()
	return err
}
