package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tturner/scandrill/internal/config"
	"github.com/tturner/scandrill/internal/drill"
	scandrillErrors "github.com/tturner/scandrill/internal/errors"
	"github.com/tturner/scandrill/internal/language"
	"github.com/tturner/scandrill/internal/logging"
)

// CommonOptions are shared by the run and ui commands.
type CommonOptions struct {
	ConfigPath string
	LogFile    string
	LogFormat  string
	Verbose    bool
	Debug      bool
	NoSpeech   bool
	AlertSound string
}

func newLogger(opts CommonOptions, console io.Writer) (*logging.Logger, error) {
	logger, err := logging.NewLoggerWithOptions(logging.Options{
		Level:   logging.LevelFromFlags(opts.Verbose, opts.Debug),
		File:    opts.LogFile,
		Format:  opts.LogFormat,
		Console: console,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger, nil
}

// resolveConfig loads path, or the default file when path is empty and it
// exists, or the built-in defaults otherwise.
func resolveConfig(path string) (*config.Config, string, error) {
	if path == "" {
		if _, err := os.Stat(config.DefaultPath); err != nil {
			return config.CreateDefaultConfig(), "", nil
		}
		path = config.DefaultPath
	}
	cfg, err := config.LoadConfig(path, false)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// DrillFlags are the per-run overrides. Zero values keep the configured
// setting.
type DrillFlags struct {
	Mode       string
	Colors     string
	Directions string
	IntervalMs int
	Duration   string
	Language   string
	Seed       uint64
}

func (f DrillFlags) patch() (drill.Patch, error) {
	var p drill.Patch
	if f.Mode != "" {
		mode, err := drill.ParseMode(f.Mode)
		if err != nil {
			return p, err
		}
		p.Mode = &mode
	}
	if f.Colors != "" {
		p.Colors = []drill.Color{}
		for _, name := range splitList(f.Colors) {
			c, err := drill.ParseColor(name)
			if err != nil {
				return p, err
			}
			p.Colors = append(p.Colors, c)
		}
	}
	if f.Directions != "" {
		p.Directions = []drill.Direction{}
		for _, name := range splitList(f.Directions) {
			d, err := drill.ParseDirection(name)
			if err != nil {
				return p, err
			}
			p.Directions = append(p.Directions, d)
		}
	}
	if f.IntervalMs != 0 {
		interval := time.Duration(f.IntervalMs) * time.Millisecond
		p.Interval = &interval
	}
	if f.Duration != "" {
		limit, err := drill.ParseDurationLimit(f.Duration)
		if err != nil {
			return p, err
		}
		p.Duration = &limit
	}
	if f.Language != "" {
		lang := f.Language
		p.Language = &lang
	}
	if f.Seed != 0 {
		seed := f.Seed
		p.Seed = &seed
	}
	return p, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// buildDrillConfig layers flags over the file and checks the result is
// ready to start.
func buildDrillConfig(cfg *config.Config, flags DrillFlags) (drill.Config, language.Table, error) {
	out, table, err := buildFormConfig(cfg, flags)
	if err != nil {
		return out, table, err
	}
	if err := out.Validate(); err != nil {
		return out, table, wrapDrillError(err, table)
	}
	if !table.Has(out.Language) {
		err := &drill.ValidationError{Field: "language", Value: out.Language, Reason: "no translations for this language"}
		return out, table, wrapDrillError(err, table)
	}
	return out, table, nil
}

func wrapDrillError(err error, table language.Table) error {
	var verr *drill.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	var allowed []string
	switch verr.Field {
	case "mode":
		allowed = []string{string(drill.ModeVisual), string(drill.ModeDirections)}
	case "color", "colors":
		for _, c := range drill.Colors {
			allowed = append(allowed, string(c))
		}
	case "direction", "directions":
		for _, d := range drill.Directions {
			allowed = append(allowed, string(d))
		}
	case "duration":
		allowed = []string{"infinite", "<minutes>"}
	case "language":
		allowed = table.Codes()
	}
	return scandrillErrors.WrapValidationError(err, verr.Field, allowed)
}
