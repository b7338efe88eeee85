package errors

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// UserFriendlyError provides user-friendly error messages with context and hints
type UserFriendlyError struct {
	Message string
	Reason  string
	Hint    string
	Try     string
	Err     error
}

func (e UserFriendlyError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Message)
	if e.Reason != "" {
		buf.WriteString("\n  Reason: " + e.Reason)
	}
	if e.Hint != "" {
		buf.WriteString("\n  Hint: " + e.Hint)
	}
	if e.Try != "" {
		buf.WriteString("\n  Try: " + e.Try)
	}
	if e.Err != nil {
		buf.WriteString("\n  Details: " + e.Err.Error())
	}
	return buf.String()
}

func (e UserFriendlyError) Unwrap() error {
	return e.Err
}

// WrapConfigError wraps configuration errors with user-friendly context
func WrapConfigError(err error, configPath string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Configuration error in %s", configPath),
		Reason:  err.Error(),
		Hint:    "Run 'scandrill config init' to write a default config file",
		Try:     fmt.Sprintf("scandrill config validate --config %s", configPath),
		Err:     err,
	}
}

// WrapValidationError wraps a rejected drill setting. allowed lists the
// accepted values and may be empty.
func WrapValidationError(err error, field string, allowed []string) error {
	if err == nil {
		return nil
	}

	hint := fmt.Sprintf("Check the %s setting", field)
	if len(allowed) > 0 {
		hint = fmt.Sprintf("Allowed %s values: %s", field, strings.Join(allowed, ", "))
	}
	return UserFriendlyError{
		Message: fmt.Sprintf("Invalid drill setting: %s", field),
		Reason:  err.Error(),
		Hint:    hint,
		Try:     "scandrill run --mode visual --colors red,blue --interval-ms 3000",
		Err:     err,
	}
}

// WrapAudioError wraps speech and alert playback failures. These are only
// logged; the drill keeps running.
func WrapAudioError(err error, command string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Audio command failed: %s", command),
		Reason:  extractAudioReason(err),
		Hint:    "Set audio.speech_command or audio.sound_command in the config file",
		Try:     "scandrill run --no-speech",
		Err:     err,
	}
}

func extractAudioReason(err error) string {
	if errors.Is(err, exec.ErrNotFound) {
		return "Command not found in PATH"
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Sprintf("Command exited with status %d", exitErr.ExitCode())
	}
	errStr := err.Error()
	if strings.Contains(errStr, "no such file") {
		return "Sound file does not exist"
	}
	if strings.Contains(errStr, "permission denied") {
		return "Permission denied"
	}
	return "Audio playback failed"
}
