package drill

// Presenter renders what the engine decides. The engine calls it with its
// lock held and in state order, so implementations must return promptly
// and must not call back into the engine. Playback and speech failures are
// the presenter's to log; nothing is reported back.
type Presenter interface {
	OnScreenChange(screen Screen)
	OnCueChange(cue Cue, displayText string)
	OnBackgroundChange(color Color)
	PlayAlertSound()
	Speak(text, languageCode string)
}

// NopPresenter ignores every callback.
type NopPresenter struct{}

func (NopPresenter) OnScreenChange(Screen) {}
func (NopPresenter) OnCueChange(Cue, string) {}
func (NopPresenter) OnBackgroundChange(Color) {}
func (NopPresenter) PlayAlertSound() {}
func (NopPresenter) Speak(string, string) {}
