package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerWithOptions_Files(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		l, err := NewLoggerWithOptions(Options{Level: LogLevelInfo})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer l.Close()
		if l.level != LogLevelInfo {
			t.Errorf("level = %d, want %d", l.level, LogLevelInfo)
		}
		if l.file != nil {
			t.Error("file should be nil when no path given")
		}
	})

	t.Run("with file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.log")
		l, err := NewLoggerWithOptions(Options{Level: LogLevelDebug, File: path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer l.Close()
		if l.file == nil {
			t.Error("file should not be nil")
		}
		if l.fileLog == nil {
			t.Error("fileLog should not be nil")
		}
	})

	t.Run("invalid path", func(t *testing.T) {
		_, err := NewLoggerWithOptions(Options{Level: LogLevelInfo, File: "/nonexistent/dir/test.log"})
		if err == nil {
			t.Error("expected error for invalid path")
		}
	})
}

func TestNewLoggerWithOptions_Defaults(t *testing.T) {
	l, err := NewLoggerWithOptions(Options{Level: LogLevelInfo, Console: io.Discard})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer l.Close()

	if l.format != "text" {
		t.Errorf("format = %q, want %q", l.format, "text")
	}
}

func TestNewLoggerWithOptions_BadFormat(t *testing.T) {
	_, err := NewLoggerWithOptions(Options{Level: LogLevelInfo, Format: "xml"})
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("error should name the format, got %v", err)
	}
}

func TestLoggerLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	l, err := NewLoggerWithOptions(Options{Level: LogLevelInfo, File: path, Console: io.Discard})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.Error("error msg")
	l.Info("info msg")
	l.Verbose("verbose msg")
	l.Debug("debug msg")

	l.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "error msg") {
		t.Error("log should contain error message")
	}
	if !strings.Contains(content, "info msg") {
		t.Error("log should contain info message")
	}
	if strings.Contains(content, "verbose msg") {
		t.Error("log should NOT contain verbose message at Info level")
	}
	if strings.Contains(content, "debug msg") {
		t.Error("log should NOT contain debug message at Info level")
	}
}

func TestLoggerSilentLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	var console bytes.Buffer
	l, err := NewLoggerWithOptions(Options{Level: LogLevelSilent, File: path, Console: &console})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.Error("should not appear")
	l.Info("should not appear")
	l.Close()

	data, _ := os.ReadFile(path)
	if len(strings.TrimSpace(string(data))) > 0 {
		t.Error("silent logger should produce no file output")
	}
	if console.Len() > 0 {
		t.Error("silent logger should produce no console output")
	}
}

func TestLoggerDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	l, err := NewLoggerWithOptions(Options{Level: LogLevelDebug, File: path, Console: io.Discard})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.Error("e-line")
	l.Info("i-line")
	l.Verbose("v-line")
	l.Debug("d-line")
	l.Close()

	data, _ := os.ReadFile(path)
	content := string(data)

	for _, want := range []string{"e-line", "i-line", "v-line", "d-line"} {
		if !strings.Contains(content, want) {
			t.Errorf("log should contain %q", want)
		}
	}
}

func TestLoggerConsoleRouting(t *testing.T) {
	t.Run("info level shows only errors", func(t *testing.T) {
		var console bytes.Buffer
		l, err := NewLoggerWithOptions(Options{Level: LogLevelInfo, Console: &console})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		l.Info("quiet info")
		l.Error("loud error")

		out := console.String()
		if strings.Contains(out, "quiet info") {
			t.Error("info should stay off the console below verbose")
		}
		if !strings.Contains(out, "loud error") {
			t.Error("errors should always reach the console")
		}
	})

	t.Run("verbose level shows info", func(t *testing.T) {
		var console bytes.Buffer
		l, err := NewLoggerWithOptions(Options{Level: LogLevelVerbose, Console: &console})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		l.Info("chatty info")
		if !strings.Contains(console.String(), "chatty info") {
			t.Error("info should reach the console at verbose")
		}
	})
}

func TestLoggerJSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	l, err := NewLoggerWithOptions(Options{Level: LogLevelError, File: path, Format: "json", Console: io.Discard})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.Error("test message")
	l.Close()

	data, _ := os.ReadFile(path)
	content := strings.TrimSpace(string(data))

	if !strings.HasPrefix(content, "{") {
		t.Errorf("JSON output should be an object, got: %s", content)
	}
	if !strings.Contains(content, "test message") {
		t.Errorf("JSON output should contain the message, got: %s", content)
	}
}

func TestSetGetLevel(t *testing.T) {
	l, _ := NewLoggerWithOptions(Options{Level: LogLevelInfo})
	defer l.Close()

	if l.GetLevel() != LogLevelInfo {
		t.Errorf("GetLevel() = %d, want %d", l.GetLevel(), LogLevelInfo)
	}

	l.SetLevel(LogLevelDebug)
	if l.GetLevel() != LogLevelDebug {
		t.Errorf("GetLevel() = %d, want %d", l.GetLevel(), LogLevelDebug)
	}
}

func TestLevelFromFlags(t *testing.T) {
	tests := []struct {
		verbose, debug bool
		want           LogLevel
	}{
		{false, false, LogLevelInfo},
		{true, false, LogLevelVerbose},
		{false, true, LogLevelDebug},
		{true, true, LogLevelDebug},
	}
	for _, tt := range tests {
		if got := LevelFromFlags(tt.verbose, tt.debug); got != tt.want {
			t.Errorf("LevelFromFlags(%v, %v) = %d, want %d", tt.verbose, tt.debug, got, tt.want)
		}
	}
}

func TestLogCue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	l, err := NewLoggerWithOptions(Options{Level: LogLevelVerbose, File: path, Console: io.Discard})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.LogCue("color", "red", "", 1)
	l.LogCue("direction", "Left", "Vasen", 2)
	l.Close()

	data, _ := os.ReadFile(path)
	content := string(data)

	if !strings.Contains(content, "cue #1 color=red") {
		t.Errorf("should contain color cue, got: %s", content)
	}
	if !strings.Contains(content, "Vasen") {
		t.Errorf("should contain translated text, got: %s", content)
	}
}

func TestLogStartup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	l, err := NewLoggerWithOptions(Options{Level: LogLevelVerbose, File: path, Console: io.Discard})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.LogStartup("directions", 3000, "infinite", "fi-FI", []string{"Left", "Right"})
	l.Close()

	data, _ := os.ReadFile(path)
	content := string(data)

	if !strings.Contains(content, "Starting directions drill") {
		t.Error("should contain startup message")
	}
	if !strings.Contains(content, "Left, Right") {
		t.Error("should contain the selection")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing")
	l.Debug("nothing")
	if err := l.Close(); err != nil {
		t.Errorf("Close on discard logger: %v", err)
	}
}

func TestClose_NilFile(t *testing.T) {
	l, _ := NewLoggerWithOptions(Options{Level: LogLevelInfo})
	if err := l.Close(); err != nil {
		t.Errorf("Close with nil file should not error: %v", err)
	}
}
