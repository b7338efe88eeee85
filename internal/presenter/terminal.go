package presenter

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/tturner/scandrill/internal/drill"
)

const defaultWidth = 40

// Terminal prints one line per cue to a writer. Color cues are drawn as a
// colored block when the writer is a color terminal.
type Terminal struct {
	mu       sync.Mutex
	out      io.Writer
	renderer *lipgloss.Renderer
	width    int
	cues     int
	// clear erases the current line first so cue lines replace a progress
	// line drawn on the same terminal.
	clear bool
}

// NewTerminal renders to out. A width below 1 uses the default.
func NewTerminal(out io.Writer, width int) *Terminal {
	if width < 1 {
		width = defaultWidth
	}
	return &Terminal{
		out:      out,
		renderer: lipgloss.NewRenderer(out),
		width:    width,
	}
}

// SetClearLine makes every line start by erasing the cursor line.
func (t *Terminal) SetClearLine(on bool) {
	t.mu.Lock()
	t.clear = on
	t.mu.Unlock()
}

func (t *Terminal) prefix() string {
	if t.clear {
		return "\r\x1b[K"
	}
	return ""
}

func (t *Terminal) OnScreenChange(screen drill.Screen) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch screen {
	case drill.ScreenRunning:
		t.cues = 0
		fmt.Fprintln(t.out, t.prefix()+t.renderer.NewStyle().Bold(true).Render("Drill started. Press Ctrl+C to stop."))
	case drill.ScreenSettings:
		fmt.Fprintf(t.out, "%sDrill ended after %d cues.\n", t.prefix(), t.cues)
	}
}

func (t *Terminal) OnCueChange(cue drill.Cue, displayText string) {
	if cue.IsNeutral() {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cues++

	var line string
	switch cue.Kind {
	case drill.CueColor:
		color := drill.Color(cue.Value)
		line = t.renderer.NewStyle().
			Background(Swatch(color)).
			Foreground(Ink(color)).
			Bold(true).
			Width(t.width).
			Align(lipgloss.Center).
			Render(strings.ToUpper(cue.Value))
	case drill.CueDirection:
		text := displayText
		if text == "" {
			text = cue.Value
		}
		line = t.renderer.NewStyle().
			Bold(true).
			Width(t.width).
			Align(lipgloss.Center).
			Render(strings.ToUpper(text))
		if text != cue.Value {
			line += t.renderer.NewStyle().Faint(true).Render(" (" + cue.Value + ")")
		}
	}
	fmt.Fprintf(t.out, "%s%4d %s\n", t.prefix(), t.cues, line)
}

// OnBackgroundChange is a no-op; the color block already carries the
// background.
func (t *Terminal) OnBackgroundChange(drill.Color) {}

func (t *Terminal) PlayAlertSound() {}

func (t *Terminal) Speak(string, string) {}
