package drill

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Mode selects the cue modality.
type Mode string

const (
	ModeVisual     Mode = "visual"
	ModeDirections Mode = "directions"
)

// ParseMode accepts "visual"/"colors" and "directions"/"audio".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "visual", "colors", "color":
		return ModeVisual, nil
	case "directions", "direction", "audio":
		return ModeDirections, nil
	default:
		return "", &ValidationError{Field: "mode", Value: s, Reason: "must be visual or directions"}
	}
}

// Screen is the state of the drill state machine.
type Screen int

const (
	ScreenSettings Screen = iota
	ScreenRunning
)

func (s Screen) String() string {
	switch s {
	case ScreenSettings:
		return "settings"
	case ScreenRunning:
		return "running"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// Color is a visual cue.
type Color string

const (
	Red    Color = "red"
	Blue   Color = "blue"
	Yellow Color = "yellow"
	Green  Color = "green"
	Orange Color = "orange"

	// Neutral is the background shown before and between cues.
	Neutral Color = "black"
)

// Colors lists the selectable colors in display order.
var Colors = []Color{Red, Blue, Yellow, Green, Orange}

// ParseColor matches a selectable color case-insensitively.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Colors {
		if string(c) == name {
			return c, nil
		}
	}
	return "", &ValidationError{Field: "color", Value: s, Reason: "must be one of " + joinColors(Colors)}
}

// Direction is a spoken cue key. Keys are translated through the
// language table before they are displayed or spoken.
type Direction string

const (
	Left    Direction = "Left"
	Right   Direction = "Right"
	Turn    Direction = "Turn"
	Protect Direction = "Protect"
)

// Directions lists the selectable directions in display order.
var Directions = []Direction{Left, Right, Turn, Protect}

// ParseDirection matches a selectable direction case-insensitively.
func ParseDirection(s string) (Direction, error) {
	name := strings.TrimSpace(s)
	for _, d := range Directions {
		if strings.EqualFold(string(d), name) {
			return d, nil
		}
	}
	return "", &ValidationError{Field: "direction", Value: s, Reason: "must be one of " + joinDirections(Directions)}
}

// CueKind tells what a Cue carries.
type CueKind int

const (
	CueNeutral CueKind = iota
	CueColor
	CueDirection
)

func (k CueKind) String() string {
	switch k {
	case CueColor:
		return "color"
	case CueDirection:
		return "direction"
	default:
		return "neutral"
	}
}

// Cue is the value currently presented.
type Cue struct {
	Kind  CueKind
	Value string
}

// NeutralCue is the idle cue.
var NeutralCue = Cue{Kind: CueNeutral, Value: string(Neutral)}

func (c Cue) String() string {
	return c.Kind.String() + ":" + c.Value
}

// IsNeutral reports whether no cue is being shown.
func (c Cue) IsNeutral() bool {
	return c.Kind == CueNeutral
}

// DurationLimit is the drill length in whole minutes; Infinite runs until
// stopped.
type DurationLimit int

const Infinite DurationLimit = 0

// ParseDurationLimit accepts "infinite" (or empty) and a positive number of
// minutes.
func ParseDurationLimit(s string) (DurationLimit, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == "infinite" || v == "inf" || v == "none" {
		return Infinite, nil
	}
	v = strings.TrimSuffix(v, "m")
	minutes, err := strconv.Atoi(v)
	if err != nil || minutes <= 0 {
		return Infinite, &ValidationError{Field: "duration", Value: s, Reason: "must be infinite or a positive number of minutes"}
	}
	return DurationLimit(minutes), nil
}

// IsInfinite reports whether the drill runs until stopped.
func (d DurationLimit) IsInfinite() bool {
	return d == Infinite
}

// Duration converts the limit to a time.Duration (zero when infinite).
func (d DurationLimit) Duration() time.Duration {
	return time.Duration(d) * time.Minute
}

func (d DurationLimit) String() string {
	if d.IsInfinite() {
		return "infinite"
	}
	return strconv.Itoa(int(d))
}

func joinColors(colors []Color) string {
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func joinDirections(directions []Direction) string {
	names := make([]string, len(directions))
	for i, d := range directions {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}
