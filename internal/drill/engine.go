// Package drill implements the drill engine: a two-state machine
// (settings, running) that emits randomized color or direction cues on a
// fixed interval until it is stopped or its duration elapses.
package drill

import (
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/tturner/scandrill/internal/language"
	"github.com/tturner/scandrill/internal/logging"
)

// Rand draws a uniform index in [0, n).
type Rand interface {
	IntN(n int) int
}

type runtimeRand struct{}

func (runtimeRand) IntN(n int) int {
	return rand.IntN(n)
}

// Snapshot is a consistent view of the engine state.
type Snapshot struct {
	Screen      Screen
	Cue         Cue
	DisplayText string
	Background  Color
	Config      Config
	Ticks       uint64
	StartedAt   time.Time
	Elapsed     time.Duration
	// Remaining is zero for infinite drills and while in settings.
	Remaining time.Duration
}

// Engine owns the drill configuration, the screen state and the active cue.
// All methods are safe for concurrent use.
type Engine struct {
	mu         sync.Mutex
	cfg        Config
	screen     Screen
	cue        Cue
	display    string
	background Color

	ticker   Timer
	deadline Timer
	// generation changes on every start and stop; callbacks from an
	// earlier session see a different value and do nothing.
	generation uint64
	ticks      uint64
	startedAt  time.Time

	clock     Clock
	presenter Presenter
	languages language.Table
	// rng is the source for the current drill: baseRng, or a PCG when the
	// config carries a seed.
	rng     Rand
	baseRng Rand
	logger  *logging.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces SystemClock.
func WithClock(clock Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithRand replaces the runtime random source. A non-zero Config.Seed
// still takes precedence when a drill starts.
func WithRand(r Rand) Option {
	return func(e *Engine) { e.baseRng = r }
}

// WithLanguages replaces the built-in language table.
func WithLanguages(table language.Table) Option {
	return func(e *Engine) { e.languages = table }
}

// WithLogger sets the logger used for lifecycle and cue messages.
func WithLogger(logger *logging.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// New creates an engine in the settings state.
func New(cfg Config, presenter Presenter, opts ...Option) (*Engine, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	if presenter == nil {
		presenter = NopPresenter{}
	}
	e := &Engine{
		cfg:        cfg.Clone(),
		screen:     ScreenSettings,
		cue:        NeutralCue,
		background: Neutral,
		clock:      SystemClock,
		presenter:  presenter,
		languages:  language.Default(),
		baseRng:    runtimeRand{},
		logger:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Start validates the configuration and begins a drill.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.screen == ScreenRunning {
		return ErrRunning
	}
	if err := e.cfg.Validate(); err != nil {
		e.logger.Info("Drill not started: %v", err)
		return err
	}

	e.generation++
	gen := e.generation
	e.rng = e.baseRng
	if e.cfg.Seed != 0 {
		e.rng = rand.New(rand.NewPCG(e.cfg.Seed, e.cfg.Seed))
	}
	e.screen = ScreenRunning
	e.ticks = 0
	e.startedAt = e.clock.Now()
	e.cue = NeutralCue
	e.display = ""
	e.background = Neutral

	e.presenter.OnScreenChange(ScreenRunning)
	e.presenter.OnCueChange(e.cue, "")
	e.presenter.OnBackgroundChange(Neutral)

	e.ticker = e.clock.Every(e.cfg.Interval, func() { e.tick(gen) })
	if !e.cfg.Duration.IsInfinite() {
		e.deadline = e.clock.AfterFunc(e.cfg.Duration.Duration(), func() { e.expire(gen) })
	}

	e.logger.LogStartup(string(e.cfg.Mode), e.cfg.Interval.Milliseconds(), e.cfg.Duration.String(), e.cfg.Language, e.cfg.Selection())
	return nil
}

// Stop cancels the drill and returns to settings. Calling Stop while in
// settings does nothing.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.screen != ScreenRunning {
		return
	}
	e.logger.Info("Drill stopped after %d cues", e.ticks)
	e.stopLocked()
}

func (e *Engine) stopLocked() {
	if e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
	}
	if e.deadline != nil {
		e.deadline.Stop()
		e.deadline = nil
	}
	e.generation++
	e.screen = ScreenSettings
	e.cue = NeutralCue
	e.display = ""
	e.background = Neutral

	e.presenter.OnScreenChange(ScreenSettings)
	e.presenter.OnCueChange(e.cue, "")
	e.presenter.OnBackgroundChange(Neutral)
}

func (e *Engine) expire(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.generation || e.screen != ScreenRunning {
		return
	}
	e.logger.Info("Drill duration of %s min elapsed after %d cues", e.cfg.Duration, e.ticks)
	e.stopLocked()
}

func (e *Engine) tick(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.generation || e.screen != ScreenRunning {
		return
	}
	e.ticks++

	switch e.cfg.Mode {
	case ModeVisual:
		colors := slices.Clone(e.cfg.Colors)
		color := colors[e.rng.IntN(len(colors))]
		e.cue = Cue{Kind: CueColor, Value: string(color)}
		e.display = ""
		e.background = color
		e.presenter.OnCueChange(e.cue, "")
		e.presenter.OnBackgroundChange(color)
		e.logger.LogCue(CueColor.String(), string(color), "", e.ticks)

	case ModeDirections:
		directions := slices.Clone(e.cfg.Directions)
		n := e.ticks
		e.presenter.PlayAlertSound()
		e.clock.AfterFunc(PostAlertDelay, func() { e.announce(gen, n, directions) })
	}
}

// announce completes a directions tick once the post-alert delay is over.
// Several may be in flight when the interval is shorter than the delay.
func (e *Engine) announce(gen, n uint64, directions []Direction) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.generation {
		e.logger.Debug("Dropping cue #%d from a stopped drill", n)
		return
	}

	direction := directions[e.rng.IntN(len(directions))]
	text := e.languages.Translate(e.cfg.Language, string(direction))
	e.cue = Cue{Kind: CueDirection, Value: string(direction)}
	e.display = text
	e.background = Neutral
	e.presenter.OnCueChange(e.cue, text)
	e.presenter.OnBackgroundChange(Neutral)
	e.presenter.Speak(text, e.cfg.Language)
	e.logger.LogCue(CueDirection.String(), string(direction), text, n)
}

// Reconfigure merges p into the configuration. It fails with ErrRunning
// while a drill is running and with a *ValidationError for bad values; in
// both cases nothing changes.
func (e *Engine) Reconfigure(p Patch) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.screen == ScreenRunning {
		return ErrRunning
	}
	next, err := p.Apply(e.cfg)
	if err != nil {
		return err
	}
	e.cfg = next
	return nil
}

// SetMode selects the cue modality.
func (e *Engine) SetMode(mode Mode) error {
	return e.Reconfigure(Patch{Mode: &mode})
}

// SetInterval sets the time between ticks.
func (e *Engine) SetInterval(interval time.Duration) error {
	return e.Reconfigure(Patch{Interval: &interval})
}

// SetDurationLimit sets how long a drill runs before stopping itself.
func (e *Engine) SetDurationLimit(limit DurationLimit) error {
	return e.Reconfigure(Patch{Duration: &limit})
}

// SetLanguage selects the locale used to translate and speak directions.
func (e *Engine) SetLanguage(code string) error {
	return e.Reconfigure(Patch{Language: &code})
}

// ToggleColor enables color when disabled and disables it otherwise.
func (e *Engine) ToggleColor(color Color) error {
	if _, err := ParseColor(string(color)); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.screen == ScreenRunning {
		return ErrRunning
	}
	if i := slices.Index(e.cfg.Colors, color); i >= 0 {
		e.cfg.Colors = slices.Delete(slices.Clone(e.cfg.Colors), i, i+1)
	} else {
		e.cfg.Colors = append(slices.Clone(e.cfg.Colors), color)
	}
	return nil
}

// ToggleDirection enables direction when disabled and disables it otherwise.
func (e *Engine) ToggleDirection(direction Direction) error {
	if _, err := ParseDirection(string(direction)); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.screen == ScreenRunning {
		return ErrRunning
	}
	if i := slices.Index(e.cfg.Directions, direction); i >= 0 {
		e.cfg.Directions = slices.Delete(slices.Clone(e.cfg.Directions), i, i+1)
	} else {
		e.cfg.Directions = append(slices.Clone(e.cfg.Directions), direction)
	}
	return nil
}

// Screen returns the current state.
func (e *Engine) Screen() Screen {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.screen
}

// Cue returns the current cue and its display text.
func (e *Engine) Cue() (Cue, string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cue, e.display
}

// Config returns a copy of the configuration.
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg.Clone()
}

// Languages returns the table used for translation.
func (e *Engine) Languages() language.Table {
	return e.languages
}

// Snapshot returns the full state at once.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Snapshot{
		Screen:      e.screen,
		Cue:         e.cue,
		DisplayText: e.display,
		Background:  e.background,
		Config:      e.cfg.Clone(),
		Ticks:       e.ticks,
	}
	if e.screen == ScreenRunning {
		s.StartedAt = e.startedAt
		s.Elapsed = e.clock.Now().Sub(e.startedAt)
		if !e.cfg.Duration.IsInfinite() {
			s.Remaining = e.cfg.Duration.Duration() - s.Elapsed
			if s.Remaining < 0 {
				s.Remaining = 0
			}
		}
	}
	return s
}
