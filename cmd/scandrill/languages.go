package main

import (
	"github.com/spf13/cobra"
	"github.com/tturner/scandrill/internal/app"
)

func newLanguagesCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the languages available for direction cues",
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			return app.RunLanguages(configPath, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Config file with extra translations")
	return cmd
}
