package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tturner/scandrill/internal/ui"
)

// clipboardCopyMsg is sent after a clipboard copy operation.
type clipboardCopyMsg struct {
	success bool
	content string
	err     error
}

// copyToClipboard copies the command to the system clipboard.
// Returns a tea.Cmd that will send a clipboardCopyMsg when complete.
func copyToClipboard(spec ui.CommandSpec) tea.Cmd {
	return func() tea.Msg {
		if err := ui.CopyCommand(spec); err != nil {
			return clipboardCopyMsg{success: false, content: spec.String(), err: err}
		}
		return clipboardCopyMsg{success: true, content: spec.String()}
	}
}
