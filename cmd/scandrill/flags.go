package main

import (
	"github.com/spf13/cobra"
	"github.com/tturner/scandrill/internal/app"
)

func addCommonFlags(cmd *cobra.Command, opts *app.CommonOptions) {
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Drill config file (default \"scandrill.yaml\" when present)")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "Log file path (default: stderr only)")
	cmd.Flags().StringVar(&opts.LogFormat, "log-format", "text", "Log format: text|json|logfmt")
	cmd.Flags().BoolVar(&opts.Verbose, "verbose", false, "Enable verbose output")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "Enable debug output")
	cmd.Flags().BoolVar(&opts.NoSpeech, "no-speech", false, "Do not speak direction cues")
	cmd.Flags().StringVar(&opts.AlertSound, "alert-sound", "", "Sound file played before each direction (default: terminal bell)")
}

func addDrillFlags(cmd *cobra.Command, flags *app.DrillFlags) {
	cmd.Flags().StringVar(&flags.Mode, "mode", "", "Cue mode: visual|directions")
	cmd.Flags().StringVar(&flags.Colors, "colors", "", "Comma-separated colors: red,blue,yellow,green,orange")
	cmd.Flags().StringVar(&flags.Directions, "directions", "", "Comma-separated directions: Left,Right,Turn,Protect")
	cmd.Flags().IntVar(&flags.IntervalMs, "interval-ms", 0, "Time between cues in milliseconds")
	cmd.Flags().StringVar(&flags.Duration, "duration", "", "Drill length in minutes, or \"infinite\"")
	cmd.Flags().StringVar(&flags.Language, "language", "", "Language code for directions (see 'scandrill languages')")
	cmd.Flags().Uint64Var(&flags.Seed, "seed", 0, "Random seed for a repeatable cue sequence (0 = random)")
}
