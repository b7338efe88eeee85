package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tturner/scandrill/internal/drill"
	"github.com/tturner/scandrill/internal/language"
)

func newTestModel(t *testing.T, cfg drill.Config) (*Model, *drill.ManualClock, *drill.Engine) {
	t.Helper()
	clock := drill.NewManualClock(time.Unix(0, 0))
	engine, err := drill.New(cfg, nil, drill.WithClock(clock))
	if err != nil {
		t.Fatalf("drill.New() error: %v", err)
	}
	return NewModel(engine), clock, engine
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModel(t *testing.T) {
	m, _, _ := newTestModel(t, drill.DefaultConfig())
	if m.snap.Screen != drill.ScreenSettings {
		t.Errorf("expected settings screen, got %v", m.snap.Screen)
	}
	if m.form == nil {
		t.Fatal("settings form should be built")
	}
	if m.values.Mode != "visual" || len(m.values.Colors) != 5 || m.values.IntervalMs != 3000 {
		t.Errorf("form values = %+v", *m.values)
	}
	if m.Init() == nil {
		t.Error("Init should schedule the tick")
	}
}

func TestFormValuesPatch(t *testing.T) {
	v := &formValues{
		Mode:       "directions",
		Colors:     nil,
		Directions: []string{"Left", "Protect"},
		IntervalMs: 2000,
		Duration:   "5",
		Language:   "fi-FI",
	}
	p, err := v.patch()
	if err != nil {
		t.Fatalf("patch() error: %v", err)
	}
	cfg, err := p.Apply(drill.DefaultConfig())
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if cfg.Mode != drill.ModeDirections || cfg.Interval != 2*time.Second || cfg.Duration != 5 || cfg.Language != "fi-FI" {
		t.Errorf("config = %+v", cfg)
	}
	if len(cfg.Colors) != 0 {
		t.Errorf("unchecked colors should clear the selection, got %v", cfg.Colors)
	}

	v.Duration = "soon"
	if _, err := v.patch(); err == nil {
		t.Error("invalid duration should fail")
	}
}

func TestStartDrillAndStop(t *testing.T) {
	m, clock, engine := newTestModel(t, drill.DefaultConfig())
	m.values.Colors = []string{"green"}

	m.startDrill()
	if engine.Screen() != drill.ScreenRunning {
		t.Fatal("engine should be running")
	}
	if m.form != nil {
		t.Error("form should be cleared while running")
	}

	clock.Advance(3 * time.Second)
	m.handleTick()
	if m.snap.Background != drill.Green {
		t.Errorf("background = %q, want green", m.snap.Background)
	}
	if !strings.Contains(m.View(), "cue 1") {
		t.Errorf("running view should show the cue count:\n%s", m.View())
	}

	m.Update(keyRune('s'))
	if engine.Screen() == drill.ScreenRunning {
		t.Error("'s' should stop the drill")
	}
	if m.form == nil {
		t.Error("form should be rebuilt after stopping")
	}
	if !strings.Contains(m.status, "Stopped after 1 cues") {
		t.Errorf("status = %q", m.status)
	}
	if got := engine.Config().Colors; len(got) != 1 || got[0] != drill.Green {
		t.Errorf("settings should keep the last selection, got %v", got)
	}
}

func TestStartDrillRejectsEmptySelection(t *testing.T) {
	m, _, engine := newTestModel(t, drill.DefaultConfig())
	m.values.Colors = nil

	m.startDrill()
	if engine.Screen() == drill.ScreenRunning {
		t.Fatal("engine should not start without colors")
	}
	if !strings.Contains(m.error, "select at least one color") {
		t.Errorf("error = %q", m.error)
	}
	if m.form == nil {
		t.Error("form should be shown again")
	}
}

func TestDurationExpiryReturnsToSettings(t *testing.T) {
	cfg := drill.DefaultConfig()
	cfg.Duration = 1
	m, clock, _ := newTestModel(t, cfg)
	m.startDrill()

	clock.Advance(30 * time.Second)
	m.handleTick()
	if m.snap.Screen != drill.ScreenRunning {
		t.Fatal("drill should still be running")
	}
	if m.snap.Remaining != 30*time.Second {
		t.Errorf("remaining = %v", m.snap.Remaining)
	}

	clock.Advance(30 * time.Second)
	m.handleTick()
	if m.snap.Screen != drill.ScreenSettings {
		t.Fatal("drill should have ended")
	}
	if !strings.Contains(m.status, "Drill finished after 20 cues") {
		t.Errorf("status = %q", m.status)
	}
	if m.form == nil {
		t.Error("form should be rebuilt after expiry")
	}
}

func TestDirectionsView(t *testing.T) {
	cfg := drill.DefaultConfig()
	cfg.Mode = drill.ModeDirections
	cfg.Directions = []drill.Direction{drill.Left}
	cfg.Language = "fi-FI"
	m, clock, _ := newTestModel(t, cfg)
	m.values.Language = "fi-FI"
	m.startDrill()

	clock.Advance(3*time.Second + drill.PostAlertDelay)
	m.handleTick()
	if !strings.Contains(m.View(), "Vasen") {
		t.Errorf("view should show the translated direction:\n%s", m.View())
	}
}

func TestRunningKeys(t *testing.T) {
	m, _, engine := newTestModel(t, drill.DefaultConfig())
	m.startDrill()

	m.Update(keyRune('?'))
	if !m.help.ShowAll {
		t.Error("'?' should expand help")
	}

	_, cmd := m.Update(keyRune('y'))
	if cmd == nil {
		t.Error("'y' should return a clipboard command")
	}

	m.Update(clipboardCopyMsg{success: true})
	if m.status != "Command copied to clipboard" {
		t.Errorf("status = %q", m.status)
	}

	_, cmd = m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("'q' should quit")
	}
	if engine.Screen() == drill.ScreenRunning {
		t.Error("quitting should stop the drill")
	}
}

func TestCtrlCQuitsFromSettings(t *testing.T) {
	m, _, _ := newTestModel(t, drill.DefaultConfig())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should produce tea.QuitMsg")
	}
}

func TestWindowResize(t *testing.T) {
	m, _, _ := newTestModel(t, drill.DefaultConfig())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.layout.Width != 100 || m.layout.CueHeight != 29 {
		t.Errorf("layout = %+v", m.layout)
	}
	if m.layout.FormWidth != FormMaxWidth {
		t.Errorf("form width = %d, want %d", m.layout.FormWidth, FormMaxWidth)
	}
}

func TestDirectionWordsFollowLanguage(t *testing.T) {
	languages := language.Default()
	if got := directionWords(languages, language.English); got != "space toggles, enter continues" {
		t.Errorf("English = %q", got)
	}
	if got := directionWords(languages, language.Finnish); got != "Spoken as Vasen, Oikea, Käänny, Suojaa" {
		t.Errorf("Finnish = %q", got)
	}

	// The form description reads the bound value, so a changed selection
	// shows up without rebuilding the form.
	v := valuesFromConfig(drill.DefaultConfig())
	describe := func() string { return directionWords(languages, v.Language) }
	before := describe()
	v.Language = language.Finnish
	if after := describe(); after == before || !strings.Contains(after, "Vasen") {
		t.Errorf("description did not follow the language: %q then %q", before, after)
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := formatSeconds(3000); got != "3 seconds" {
		t.Errorf("formatSeconds(3000) = %q", got)
	}
	if got := formatSeconds(2500); got != "2.5 seconds" {
		t.Errorf("formatSeconds(2500) = %q", got)
	}
	if got := formatClock(90 * time.Second); got != "01:30" {
		t.Errorf("formatClock = %q", got)
	}
}
