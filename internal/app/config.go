package app

import (
	"fmt"
	"io"
	"os"

	"github.com/tturner/scandrill/internal/config"
	"github.com/tturner/scandrill/internal/drill"
	scandrillErrors "github.com/tturner/scandrill/internal/errors"
	"github.com/tturner/scandrill/internal/ui"
)

// RunConfigInit writes the default configuration to path. An existing file
// is only replaced with force.
func RunConfigInit(path string, force bool, out io.Writer) error {
	if path == "" {
		path = config.DefaultPath
	}
	if _, err := os.Stat(path); err == nil && !force {
		return scandrillErrors.UserFriendlyError{
			Message: fmt.Sprintf("Config file already exists: %s", path),
			Hint:    "Pass --force to overwrite it",
			Try:     fmt.Sprintf("scandrill config validate --config %s", path),
		}
	}
	if err := config.WriteDefaultConfig(path); err != nil {
		return scandrillErrors.WrapConfigError(err, path)
	}
	fmt.Fprintf(out, "Wrote default config to %s\n", path)
	return nil
}

// RunConfigValidate loads path and prints the equivalent run command.
func RunConfigValidate(path string, out io.Writer) error {
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.LoadConfig(path, false)
	if err != nil {
		return err
	}
	d, err := cfg.DrillConfig()
	if err == nil {
		err = d.Validate()
	}
	if drill.IsValidationError(err) {
		return wrapDrillError(err, cfg.LanguageTable())
	}
	if err != nil {
		return scandrillErrors.WrapConfigError(err, path)
	}
	fmt.Fprintf(out, "Config OK: %s\n", path)
	fmt.Fprintf(out, "Equivalent command: %s\n", ui.BuildRunCommand(d))
	return nil
}
