package main

import (
	"github.com/spf13/cobra"
	"github.com/tturner/scandrill/internal/app"
)

type runFlags struct {
	common     app.CommonOptions
	drill      app.DrillFlags
	noProgress bool
}

func newRunCmd() *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a drill in the terminal",
		Long: `Run a drill without the settings screen. Cues are printed one per line
and directions are spoken. The drill ends when its duration elapses or on
Ctrl+C.

Flags override the config file, which overrides the built-in defaults.`,
		Example: `  # Five minutes of colors, a cue every 2 seconds
  scandrill run --mode visual --colors red,blue,green --duration 5

  # Finnish directions until interrupted
  scandrill run --mode directions --directions Left,Right,Turn --language fi-FI

  # Same sequence every time
  scandrill run --seed 42 --duration 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			return app.RunDrill(app.RunOptions{
				CommonOptions: flags.common,
				Flags:         flags.drill,
				NoProgress:    flags.noProgress,
				Stdout:        cmd.OutOrStdout(),
				Stderr:        cmd.ErrOrStderr(),
				Context:       cmd.Context(),
			})
		},
	}

	addCommonFlags(cmd, &flags.common)
	addDrillFlags(cmd, &flags.drill)
	cmd.Flags().BoolVar(&flags.noProgress, "no-progress", false, "Hide the progress line")

	return cmd
}
