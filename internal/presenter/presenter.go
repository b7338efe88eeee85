// Package presenter provides drill.Presenter implementations for the
// headless runner and the TUI.
package presenter

import (
	"sync"

	"github.com/tturner/scandrill/internal/audio"
	"github.com/tturner/scandrill/internal/drill"
)

type multi []drill.Presenter

// Multi forwards every callback to each presenter in order.
func Multi(presenters ...drill.Presenter) drill.Presenter {
	out := make(multi, 0, len(presenters))
	for _, p := range presenters {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (m multi) OnScreenChange(screen drill.Screen) {
	for _, p := range m {
		p.OnScreenChange(screen)
	}
}

func (m multi) OnCueChange(cue drill.Cue, displayText string) {
	for _, p := range m {
		p.OnCueChange(cue, displayText)
	}
}

func (m multi) OnBackgroundChange(color drill.Color) {
	for _, p := range m {
		p.OnBackgroundChange(color)
	}
}

func (m multi) PlayAlertSound() {
	for _, p := range m {
		p.PlayAlertSound()
	}
}

func (m multi) Speak(text, languageCode string) {
	for _, p := range m {
		p.Speak(text, languageCode)
	}
}

// Audio routes the alert and speech callbacks to audio backends and ignores
// the visual ones.
type Audio struct {
	drill.NopPresenter
	Player  audio.Player
	Speaker audio.Speaker
}

func (a Audio) PlayAlertSound() {
	if a.Player != nil {
		a.Player.Play()
	}
}

func (a Audio) Speak(text, languageCode string) {
	if a.Speaker != nil {
		a.Speaker.Speak(text, languageCode)
	}
}

// Done closes its channel the first time a running drill returns to the
// settings screen, whether by Stop or by the duration limit.
type Done struct {
	drill.NopPresenter
	mu      sync.Mutex
	running bool
	once    sync.Once
	ch      chan struct{}
}

func NewDone() *Done {
	return &Done{ch: make(chan struct{})}
}

// C is closed once the drill has ended.
func (d *Done) C() <-chan struct{} {
	return d.ch
}

func (d *Done) OnScreenChange(screen drill.Screen) {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch screen {
	case drill.ScreenRunning:
		d.running = true
	case drill.ScreenSettings:
		if d.running {
			d.once.Do(func() { close(d.ch) })
		}
	}
}
