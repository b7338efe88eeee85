package app

import (
	"fmt"
	"io"
	"os"

	"github.com/tturner/scandrill/internal/audio"
	"github.com/tturner/scandrill/internal/config"
	"github.com/tturner/scandrill/internal/drill"
	"github.com/tturner/scandrill/internal/language"
	"github.com/tturner/scandrill/internal/presenter"
	"github.com/tturner/scandrill/internal/tui"
)

// UIOptions configures the interactive TUI.
type UIOptions struct {
	CommonOptions
	Flags DrillFlags
}

// RunUI opens the settings screen. Console logging is off while the
// alternate screen is active; use --log-file to keep a log.
func RunUI(opts UIOptions) error {
	logger, err := newLogger(opts.CommonOptions, io.Discard)
	if err != nil {
		return err
	}
	defer logger.Close()

	fileCfg, _, err := resolveConfig(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return fmt.Errorf("load config: %w", err)
	}

	cfg, table, err := buildFormConfig(fileCfg, opts.Flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return fmt.Errorf("invalid drill settings: %w", err)
	}

	audioOpts := audioOptions(fileCfg.Audio, opts.CommonOptions)
	audioOpts.Logger = logger
	speaker := audio.NewSpeaker(audioOpts)
	defer speaker.Close()
	player := audio.NewPlayer(audioOpts)
	defer player.Close()

	engine, err := drill.New(cfg, presenter.Audio{Player: player, Speaker: speaker},
		drill.WithLanguages(table),
		drill.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("create drill: %w", err)
	}
	return tui.Run(engine)
}

// buildFormConfig layers flags over the file like buildDrillConfig but
// leaves an empty selection for the form to fix.
func buildFormConfig(fileCfg *config.Config, flags DrillFlags) (drill.Config, language.Table, error) {
	table := fileCfg.LanguageTable()
	cfg, err := fileCfg.DrillConfig()
	if err == nil {
		var patch drill.Patch
		if patch, err = flags.patch(); err == nil {
			cfg, err = patch.Apply(cfg)
		}
	}
	if err != nil {
		return cfg, table, wrapDrillError(err, table)
	}
	return cfg, table, nil
}

// audioOptions merges the audio section with the command-line switches.
func audioOptions(section config.AudioSection, opts CommonOptions) audio.Options {
	out := audio.Options{
		SpeechCommand: section.SpeechCommand,
		SoundCommand:  section.SoundCommand,
		AlertSound:    section.AlertSound,
		DisableSpeech: section.DisableSpeech || opts.NoSpeech,
	}
	if opts.AlertSound != "" {
		out.AlertSound = opts.AlertSound
	}
	return out
}
