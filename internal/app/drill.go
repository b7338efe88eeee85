package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tturner/scandrill/internal/audio"
	"github.com/tturner/scandrill/internal/drill"
	"github.com/tturner/scandrill/internal/presenter"
	"github.com/tturner/scandrill/internal/progress"
)

// RunOptions configures a headless drill.
type RunOptions struct {
	CommonOptions
	Flags      DrillFlags
	NoProgress bool

	// Stdout receives the cue lines and Stderr the logs and progress. Nil
	// means the process streams.
	Stdout io.Writer
	Stderr io.Writer
	// Context stops the drill when cancelled, in addition to SIGINT and
	// SIGTERM.
	Context context.Context

	clock drill.Clock
}

const progressInterval = 250 * time.Millisecond

// RunDrill runs a drill in the terminal until its duration elapses or the
// process is interrupted.
func RunDrill(opts RunOptions) error {
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	parent := opts.Context
	if parent == nil {
		parent = context.Background()
	}

	logger, err := newLogger(opts.CommonOptions, stderr)
	if err != nil {
		return err
	}
	defer logger.Close()

	fileCfg, path, err := resolveConfig(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return fmt.Errorf("load config: %w", err)
	}
	if path != "" {
		logger.Verbose("Using config %s", path)
	}

	cfg, table, err := buildDrillConfig(fileCfg, opts.Flags)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return fmt.Errorf("invalid drill settings: %w", err)
	}

	audioOpts := audioOptions(fileCfg.Audio, opts.CommonOptions)
	audioOpts.Logger = logger
	audioOpts.Bell = stderr
	speaker := audio.NewSpeaker(audioOpts)
	defer speaker.Close()
	player := audio.NewPlayer(audioOpts)
	defer player.Close()

	showProgress := !opts.NoProgress
	term := presenter.NewTerminal(stdout, 0)
	term.SetClearLine(showProgress)
	done := presenter.NewDone()

	engineOpts := []drill.Option{drill.WithLanguages(table), drill.WithLogger(logger)}
	if opts.clock != nil {
		engineOpts = append(engineOpts, drill.WithClock(opts.clock))
	}
	engine, err := drill.New(cfg, presenter.Multi(term, presenter.Audio{Player: player, Speaker: speaker}, done), engineOpts...)
	if err != nil {
		return fmt.Errorf("create drill: %w", err)
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			logger.Info("Received interrupt signal, stopping drill...")
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := engine.Start(); err != nil {
		return fmt.Errorf("start drill: %w", err)
	}

	var bar *progress.ProgressBar
	var simple *progress.SimpleProgress
	if cfg.Duration.IsInfinite() {
		simple = progress.NewSimpleProgress("Drill", time.Second)
		simple.SetOutput(stderr)
	} else {
		bar = progress.NewProgressBar(cfg.Duration.Duration(), "Drill")
		bar.SetOutput(stderr)
	}

	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			engine.Stop()
			return nil
		case <-done.C():
			if showProgress && bar != nil {
				bar.Finish()
			}
			return nil
		case <-ticker.C:
			if !showProgress {
				continue
			}
			snap := engine.Snapshot()
			if bar != nil {
				bar.Set(snap.Elapsed, snap.Ticks)
			} else {
				simple.Update(snap.Ticks, snap.Elapsed, snap.DisplayText)
			}
		}
	}
}
