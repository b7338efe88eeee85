package config

// Configuration loading and validation for scandrill

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tturner/scandrill/internal/drill"
	"github.com/tturner/scandrill/internal/errors"
	"github.com/tturner/scandrill/internal/language"
)

// DefaultPath is used when --config is not given.
const DefaultPath = "scandrill.yaml"

// DrillSection holds the drill settings as written in YAML.
type DrillSection struct {
	Mode       string   `yaml:"mode"`
	Colors     []string `yaml:"colors"`
	Directions []string `yaml:"directions"`
	IntervalMs int      `yaml:"interval_ms"`
	Duration   string   `yaml:"duration"` // "infinite" or whole minutes
	Language   string   `yaml:"language"`
	Seed       uint64   `yaml:"seed,omitempty"` // 0 = random each run
}

// AudioSection selects the external commands used for sound and speech.
type AudioSection struct {
	SpeechCommand string `yaml:"speech_command,omitempty"` // empty = auto-detect
	SoundCommand  string `yaml:"sound_command,omitempty"`  // empty = auto-detect
	AlertSound    string `yaml:"alert_sound,omitempty"`    // empty = terminal bell
	DisableSpeech bool   `yaml:"disable_speech,omitempty"`
}

// Config represents the scandrill configuration file
type Config struct {
	Drill     DrillSection                 `yaml:"drill"`
	Audio     AudioSection                 `yaml:"audio"`
	Languages map[string]map[string]string `yaml:"languages,omitempty"`
}

// CreateDefaultConfig returns the configuration used when no file exists.
func CreateDefaultConfig() *Config {
	d := drill.DefaultConfig()
	cfg := &Config{
		Drill: DrillSection{
			Mode:       string(d.Mode),
			IntervalMs: int(d.Interval / time.Millisecond),
			Duration:   d.Duration.String(),
			Language:   d.Language,
		},
	}
	for _, c := range d.Colors {
		cfg.Drill.Colors = append(cfg.Drill.Colors, string(c))
	}
	for _, dir := range d.Directions {
		cfg.Drill.Directions = append(cfg.Drill.Directions, string(dir))
	}
	return cfg
}

// WriteDefaultConfig writes the default configuration to path.
func WriteDefaultConfig(path string) error {
	cfg := CreateDefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// LoadConfig reads path, applies defaults for omitted fields and validates
// the result. With autoCreate a missing file is written with defaults first.
func LoadConfig(path string, autoCreate bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if autoCreate {
				if err := WriteDefaultConfig(path); err != nil {
					return nil, fmt.Errorf("create default config: %w", err)
				}
				data, err = os.ReadFile(path)
				if err != nil {
					return nil, errors.WrapConfigError(
						fmt.Errorf("read created config file: %w", err),
						path,
					)
				}
			} else {
				return nil, errors.WrapConfigError(
					fmt.Errorf("config file not found: %s", path),
					path,
				)
			}
		} else {
			return nil, errors.WrapConfigError(
				fmt.Errorf("read config file: %w", err),
				path,
			)
		}
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.WrapConfigError(err, path)
	}
	return cfg, nil
}

// Parse decodes YAML, applies defaults and checks field values.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	applyDefaults(&cfg)
	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Omitted lists are defaulted; an explicit empty list is kept so a user can
// leave the inactive modality empty.
func applyDefaults(cfg *Config) {
	def := CreateDefaultConfig()
	if cfg.Drill.Mode == "" {
		cfg.Drill.Mode = def.Drill.Mode
	}
	if cfg.Drill.Colors == nil {
		cfg.Drill.Colors = def.Drill.Colors
	}
	if cfg.Drill.Directions == nil {
		cfg.Drill.Directions = def.Drill.Directions
	}
	if cfg.Drill.IntervalMs == 0 {
		cfg.Drill.IntervalMs = def.Drill.IntervalMs
	}
	if cfg.Drill.Duration == "" {
		cfg.Drill.Duration = def.Drill.Duration
	}
	if cfg.Drill.Language == "" {
		cfg.Drill.Language = def.Drill.Language
	}
}

// ValidateConfig checks every field. An empty selection is accepted here
// since command-line flags or the settings form may still fill it; callers
// about to start a drill run drill.Config.Validate on the final settings.
func ValidateConfig(cfg *Config) error {
	d, err := cfg.DrillConfig()
	if err != nil {
		return err
	}

	table := cfg.LanguageTable()
	if !table.Has(d.Language) {
		return fmt.Errorf("drill.language %q is unknown (available: %s)", d.Language, strings.Join(table.Codes(), ", "))
	}

	for code, words := range cfg.Languages {
		if strings.TrimSpace(code) == "" {
			return fmt.Errorf("languages: empty language code")
		}
		for key := range words {
			if _, err := drill.ParseDirection(key); err != nil {
				return fmt.Errorf("languages.%s: %w", code, err)
			}
		}
	}
	return nil
}

// DrillConfig converts the drill section to an engine configuration. It
// reports bad values but not an empty selection.
func (c *Config) DrillConfig() (drill.Config, error) {
	var out drill.Config

	mode, err := drill.ParseMode(c.Drill.Mode)
	if err != nil {
		return out, err
	}
	out.Mode = mode

	for _, name := range c.Drill.Colors {
		color, err := drill.ParseColor(name)
		if err != nil {
			return out, err
		}
		out.Colors = append(out.Colors, color)
	}
	for _, name := range c.Drill.Directions {
		dir, err := drill.ParseDirection(name)
		if err != nil {
			return out, err
		}
		out.Directions = append(out.Directions, dir)
	}

	if c.Drill.IntervalMs <= 0 {
		return out, &drill.ValidationError{Field: "interval", Value: fmt.Sprint(c.Drill.IntervalMs), Reason: "must be positive"}
	}
	out.Interval = time.Duration(c.Drill.IntervalMs) * time.Millisecond

	limit, err := drill.ParseDurationLimit(c.Drill.Duration)
	if err != nil {
		return out, err
	}
	out.Duration = limit
	out.Language = c.Drill.Language
	out.Seed = c.Drill.Seed

	// Apply dedupes the selections and runs the field checks.
	return drill.Patch{Colors: out.Colors, Directions: out.Directions}.Apply(out)
}

// LanguageTable returns the built-in translations merged with the file's
// languages section. Direction keys are matched case-insensitively.
func (c *Config) LanguageTable() language.Table {
	extra := make(language.Table, len(c.Languages))
	for code, words := range c.Languages {
		canon := make(map[string]string, len(words))
		for key, word := range words {
			if dir, err := drill.ParseDirection(key); err == nil {
				canon[string(dir)] = word
			}
		}
		extra[code] = canon
	}
	return language.Default().Merge(extra)
}
