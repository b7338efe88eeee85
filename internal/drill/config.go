package drill

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/tturner/scandrill/internal/language"
)

// PostAlertDelay separates the alert sound from the spoken direction.
const PostAlertDelay = 1800 * time.Millisecond

// DefaultInterval is the tick interval of a fresh configuration.
const DefaultInterval = 3000 * time.Millisecond

// ErrRunning is returned when settings are changed, or a drill is started,
// while a drill is already running.
var ErrRunning = errors.New("drill is running; stop it before changing settings")

// ValidationError reports a setting that cannot be used. It never leaves
// the engine in a changed state.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// Config is the drill configuration.
type Config struct {
	Mode       Mode
	Colors     []Color
	Directions []Direction
	Interval   time.Duration
	Duration   DurationLimit
	Language   string
	// Seed makes cue selection reproducible; zero draws from the
	// runtime's random source.
	Seed uint64
}

// DefaultConfig returns the settings a fresh drill starts with.
func DefaultConfig() Config {
	return Config{
		Mode:       ModeVisual,
		Colors:     slices.Clone(Colors),
		Directions: slices.Clone(Directions),
		Interval:   DefaultInterval,
		Duration:   Infinite,
		Language:   language.English,
	}
}

// Clone returns a deep copy.
func (c Config) Clone() Config {
	out := c
	out.Colors = slices.Clone(c.Colors)
	out.Directions = slices.Clone(c.Directions)
	return out
}

// Check validates every field except the active selection, which may be
// empty while the user is still choosing.
func (c Config) Check() error {
	if c.Mode != ModeVisual && c.Mode != ModeDirections {
		return &ValidationError{Field: "mode", Value: string(c.Mode), Reason: "must be visual or directions"}
	}
	for _, color := range c.Colors {
		if _, err := ParseColor(string(color)); err != nil {
			return err
		}
	}
	for _, direction := range c.Directions {
		if _, err := ParseDirection(string(direction)); err != nil {
			return err
		}
	}
	if c.Interval <= 0 {
		return &ValidationError{Field: "interval", Value: c.Interval.String(), Reason: "must be positive"}
	}
	if c.Duration < 0 {
		return &ValidationError{Field: "duration", Value: c.Duration.String(), Reason: "must be infinite or a positive number of minutes"}
	}
	if strings.TrimSpace(c.Language) == "" {
		return &ValidationError{Field: "language", Reason: "must not be empty"}
	}
	return nil
}

// Validate checks the configuration is ready to start: all fields valid
// and the selection for the active mode non-empty.
func (c Config) Validate() error {
	if err := c.Check(); err != nil {
		return err
	}
	switch c.Mode {
	case ModeVisual:
		if len(c.Colors) == 0 {
			return &ValidationError{Field: "colors", Reason: "select at least one color"}
		}
	case ModeDirections:
		if len(c.Directions) == 0 {
			return &ValidationError{Field: "directions", Reason: "select at least one direction"}
		}
	}
	return nil
}

// Selection returns the enabled values for the active mode.
func (c Config) Selection() []string {
	switch c.Mode {
	case ModeDirections:
		out := make([]string, len(c.Directions))
		for i, d := range c.Directions {
			out[i] = string(d)
		}
		return out
	default:
		out := make([]string, len(c.Colors))
		for i, color := range c.Colors {
			out[i] = string(color)
		}
		return out
	}
}

// Patch is a partial configuration. Nil fields are left unchanged; a
// non-nil empty slice clears the selection.
type Patch struct {
	Mode       *Mode
	Colors     []Color
	Directions []Direction
	Interval   *time.Duration
	Duration   *DurationLimit
	Language   *string
	Seed       *uint64
}

// Apply returns cfg with the patch merged in. Duplicate selections are
// collapsed, keeping first-seen order.
func (p Patch) Apply(cfg Config) (Config, error) {
	next := cfg.Clone()
	if p.Mode != nil {
		next.Mode = *p.Mode
	}
	if p.Colors != nil {
		next.Colors = dedupe(p.Colors)
	}
	if p.Directions != nil {
		next.Directions = dedupe(p.Directions)
	}
	if p.Interval != nil {
		next.Interval = *p.Interval
	}
	if p.Duration != nil {
		next.Duration = *p.Duration
	}
	if p.Language != nil {
		next.Language = strings.TrimSpace(*p.Language)
	}
	if p.Seed != nil {
		next.Seed = *p.Seed
	}
	if err := next.Check(); err != nil {
		return cfg, err
	}
	return next, nil
}

func dedupe[T comparable](values []T) []T {
	out := make([]T, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
