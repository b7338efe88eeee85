package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &uiFlags{}
	rootCmd := &cobra.Command{
		Use:   "scandrill",
		Short: "Randomized color and direction cue drills",
		Long: `Scandrill runs timed drills that show a random color or call out a
random direction at a fixed interval. Without a command it opens the
settings screen.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(flags)
		},
	}
	addCommonFlags(rootCmd, &flags.common)
	addDrillFlags(rootCmd, &flags.drill)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newUICmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLanguagesCmd())

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if cmd != rootCmd {
			if cmd.Long != "" {
				fmt.Fprintf(out, "%s\n\n", cmd.Long)
			} else {
				fmt.Fprintf(out, "%s\n\n", cmd.Short)
			}
			fmt.Fprint(out, cmd.UsageString())
			return
		}
		fmt.Fprintf(out, "Usage:\n  %s [command] [options]\n\n", cmd.Name())
		fmt.Fprintf(out, "Available Commands:\n")
		for _, subCmd := range cmd.Commands() {
			if !subCmd.Hidden {
				fmt.Fprintf(out, "  %-15s %s\n", subCmd.Name(), subCmd.Short)
			}
		}
		fmt.Fprintf(out, "\nUse \"%s help <command>\" for more information about a command.\n", cmd.Name())
	})
	return rootCmd
}
