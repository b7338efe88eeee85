package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/tturner/scandrill/internal/drill"
)

func TestBuildRunCommandDefaults(t *testing.T) {
	cmd := BuildRunCommand(drill.DefaultConfig())
	got := cmd.String()
	want := "scandrill run --mode visual --colors red,blue,yellow,green,orange"
	if got != want {
		t.Errorf("BuildRunCommand(default) = %q, want %q", got, want)
	}
}

func TestBuildRunCommandDirections(t *testing.T) {
	cfg := drill.DefaultConfig()
	cfg.Mode = drill.ModeDirections
	cfg.Directions = []drill.Direction{drill.Left, drill.Protect}
	cfg.Language = "fi-FI"
	cfg.Interval = 2 * time.Second
	cfg.Duration = 5
	cfg.Seed = 7

	cmd := BuildRunCommand(cfg)
	if cmd.Args[0] != "scandrill" || cmd.Args[1] != "run" {
		t.Fatalf("unexpected command: %v", cmd.Args)
	}
	expectPair(t, cmd.Args, "--mode", "directions")
	expectPair(t, cmd.Args, "--directions", "Left,Protect")
	expectPair(t, cmd.Args, "--language", "fi-FI")
	expectPair(t, cmd.Args, "--interval-ms", "2000")
	expectPair(t, cmd.Args, "--duration", "5")
	expectPair(t, cmd.Args, "--seed", "7")
	for _, arg := range cmd.Args {
		if arg == "--colors" {
			t.Errorf("inactive selection should be omitted: %v", cmd.Args)
		}
	}
}

func TestBuildRunCommandEmptySelection(t *testing.T) {
	cfg := drill.DefaultConfig()
	cfg.Colors = nil
	cmd := BuildRunCommand(cfg)
	if strings.Contains(cmd.String(), "--colors") {
		t.Errorf("empty selection should not emit a flag: %q", cmd.String())
	}
}

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"scandrill", "run"}, "scandrill run"},
		{[]string{"scandrill", "--config", "my drills.yaml"}, `scandrill --config "my drills.yaml"`},
		{[]string{"echo", ""}, `echo ""`},
		{[]string{"say", `a "b" c`}, `say "a \"b\" c"`},
	}
	for _, tt := range tests {
		if got := FormatCommand(tt.args); got != tt.want {
			t.Errorf("FormatCommand(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func expectPair(t *testing.T, args []string, flag, value string) {
	t.Helper()
	for i := 0; i+1 < len(args); i++ {
		if args[i] == flag {
			if args[i+1] != value {
				t.Errorf("%s = %q, want %q", flag, args[i+1], value)
			}
			return
		}
	}
	t.Errorf("expected %s %s in %v", flag, value, args)
}
