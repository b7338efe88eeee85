package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/tturner/scandrill/internal/drill"
	"github.com/tturner/scandrill/internal/language"
)

// Binary is the program name used in generated commands.
const Binary = "scandrill"

// CommandSpec represents a CLI invocation derived from drill settings.
type CommandSpec struct {
	Args []string
}

// String returns the shell-ready form of the command.
func (c CommandSpec) String() string {
	return FormatCommand(c.Args)
}

// BuildRunCommand returns the `scandrill run` invocation that reproduces cfg.
// Only the active selection is emitted; settings equal to their defaults
// are left out.
func BuildRunCommand(cfg drill.Config) CommandSpec {
	def := drill.DefaultConfig()
	args := []string{Binary, "run", "--mode", string(cfg.Mode)}

	switch cfg.Mode {
	case drill.ModeVisual:
		names := make([]string, 0, len(cfg.Colors))
		for _, c := range cfg.Colors {
			names = append(names, string(c))
		}
		addListFlag(&args, "--colors", names)
	case drill.ModeDirections:
		names := make([]string, 0, len(cfg.Directions))
		for _, d := range cfg.Directions {
			names = append(names, string(d))
		}
		addListFlag(&args, "--directions", names)
		if cfg.Language != "" && cfg.Language != language.English {
			args = append(args, "--language", cfg.Language)
		}
	}

	if cfg.Interval != def.Interval {
		args = append(args, "--interval-ms", strconv.FormatInt(cfg.Interval.Milliseconds(), 10))
	}
	if !cfg.Duration.IsInfinite() {
		args = append(args, "--duration", cfg.Duration.String())
	}
	if cfg.Seed != 0 {
		args = append(args, "--seed", strconv.FormatUint(cfg.Seed, 10))
	}
	return CommandSpec{Args: args}
}

func addListFlag(args *[]string, flag string, values []string) {
	if len(values) == 0 {
		return
	}
	*args = append(*args, flag, strings.Join(values, ","))
}

// FormatCommand joins args, quoting those that need it.
func FormatCommand(args []string) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" {
		return "\"\""
	}
	if strings.ContainsAny(arg, " \t") {
		escaped := strings.ReplaceAll(arg, "\"", "\\\"")
		return fmt.Sprintf("\"%s\"", escaped)
	}
	return arg
}

// CopyCommand places the formatted command on the system clipboard.
func CopyCommand(spec CommandSpec) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not available on this system")
	}
	return clipboard.WriteAll(spec.String())
}
