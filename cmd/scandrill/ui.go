package main

import (
	"github.com/spf13/cobra"
	"github.com/tturner/scandrill/internal/app"
)

type uiFlags struct {
	common app.CommonOptions
	drill  app.DrillFlags
}

func newUICmd() *cobra.Command {
	flags := &uiFlags{}
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the settings screen",
		Long: `Open the interactive settings screen. Pick a mode, the colors or
directions to draw from, the interval and the duration, then start the
drill. Esc or s stops a running drill and returns to settings; y copies the
equivalent 'scandrill run' command.

Drill flags preset the form.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			return runUI(flags)
		},
	}

	addCommonFlags(cmd, &flags.common)
	addDrillFlags(cmd, &flags.drill)

	return cmd
}

func runUI(flags *uiFlags) error {
	return app.RunUI(app.UIOptions{
		CommonOptions: flags.common,
		Flags:         flags.drill,
	})
}
