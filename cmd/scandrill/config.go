package main

import (
	"github.com/spf13/cobra"
	"github.com/tturner/scandrill/internal/app"
	"github.com/tturner/scandrill/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or check a drill config file",
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigValidateCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var path string
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Example: `  scandrill config init
  scandrill config init --config drills/morning.yaml --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			return app.RunConfigInit(path, force, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&path, "config", config.DefaultPath, "Path to write")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a config file and print the equivalent run command",
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			return app.RunConfigValidate(path, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&path, "config", config.DefaultPath, "Config file to check")
	return cmd
}
