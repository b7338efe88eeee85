package drill

import (
	"testing"
	"time"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"visual", ModeVisual, false},
		{"Colors", ModeVisual, false},
		{"directions", ModeDirections, false},
		{" audio ", ModeDirections, false},
		{"smell", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseColorAndDirection(t *testing.T) {
	if c, err := ParseColor(" RED "); err != nil || c != Red {
		t.Errorf("ParseColor = %q, %v", c, err)
	}
	if _, err := ParseColor("black"); !IsValidationError(err) {
		t.Errorf("neutral is not selectable, got %v", err)
	}
	if d, err := ParseDirection("protect"); err != nil || d != Protect {
		t.Errorf("ParseDirection = %q, %v", d, err)
	}
	if _, err := ParseDirection("Up"); !IsValidationError(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestParseDurationLimit(t *testing.T) {
	tests := []struct {
		in      string
		want    DurationLimit
		wantErr bool
	}{
		{"", Infinite, false},
		{"infinite", Infinite, false},
		{"5", 5, false},
		{"10m", 10, false},
		{"0", Infinite, true},
		{"-3", Infinite, true},
		{"soon", Infinite, true},
	}
	for _, tt := range tests {
		got, err := ParseDurationLimit(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDurationLimit(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDurationLimit(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDurationLimit(t *testing.T) {
	if !Infinite.IsInfinite() || Infinite.Duration() != 0 || Infinite.String() != "infinite" {
		t.Error("Infinite helpers misbehave")
	}
	d := DurationLimit(1)
	if d.Duration() != 60000*time.Millisecond {
		t.Errorf("1 minute = %v", d.Duration())
	}
	if d.String() != "1" {
		t.Errorf("String() = %q", d.String())
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	cfg.Mode = ModeDirections
	cfg.Directions = nil
	err := cfg.Validate()
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Field != "directions" {
		t.Errorf("field = %q, want directions", verr.Field)
	}
	if err := cfg.Check(); err != nil {
		t.Errorf("Check should allow an empty selection: %v", err)
	}
}

func TestSelection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Colors = []Color{Red, Green}
	if got := cfg.Selection(); len(got) != 2 || got[1] != "green" {
		t.Errorf("visual selection = %v", got)
	}
	cfg.Mode = ModeDirections
	cfg.Directions = []Direction{Turn}
	if got := cfg.Selection(); len(got) != 1 || got[0] != "Turn" {
		t.Errorf("directions selection = %v", got)
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(epoch)
	var fired []string
	c.AfterFunc(2*time.Second, func() { fired = append(fired, "once") })
	tm := c.Every(time.Second, func() { fired = append(fired, "tick") })

	c.Advance(2 * time.Second)
	want := []string{"tick", "once", "tick"}
	if len(fired) != len(want) {
		t.Fatalf("fired = %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("fired = %v, want %v", fired, want)
		}
	}
	if !tm.Stop() {
		t.Error("Stop on active timer should return true")
	}
	if tm.Stop() {
		t.Error("second Stop should return false")
	}
	if c.Pending() != 0 {
		t.Errorf("pending = %d, want 0", c.Pending())
	}
	if !c.Now().Equal(epoch.Add(2 * time.Second)) {
		t.Errorf("now = %v", c.Now())
	}
}
