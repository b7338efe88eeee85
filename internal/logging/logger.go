package logging

// Structured logging for scandrill

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelSilent LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelVerbose
	LogLevelDebug
)

// LevelFromFlags maps the --verbose/--debug flags onto a level.
func LevelFromFlags(verbose, debug bool) LogLevel {
	switch {
	case debug:
		return LogLevelDebug
	case verbose:
		return LogLevelVerbose
	default:
		return LogLevelInfo
	}
}

// Options configures a Logger.
type Options struct {
	Level LogLevel
	// File receives every message that passes the level filter.
	File string
	// Format of the file output: text, json or logfmt.
	Format string
	// Console receives errors always and other messages at verbose or
	// above. Nil means stderr.
	Console io.Writer
}

// Logger provides structured logging
type Logger struct {
	mu      sync.Mutex
	level   LogLevel
	format  string
	file    *os.File
	fileLog *log.Logger
	console *log.Logger
}

// NewLoggerWithOptions creates a logger with an explicit file format and
// console writer.
func NewLoggerWithOptions(opts Options) (*Logger, error) {
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "text"
	}
	formatter, err := parseFormatter(format)
	if err != nil {
		return nil, err
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	l := &Logger{
		level:  opts.Level,
		format: format,
		console: log.NewWithOptions(console, log.Options{
			Level:  log.DebugLevel,
			Prefix: "scandrill",
		}),
	}

	if opts.File != "" {
		file, err := os.Create(opts.File)
		if err != nil {
			return nil, fmt.Errorf("create log file: %w", err)
		}
		l.file = file
		l.fileLog = log.NewWithOptions(file, log.Options{
			Level:           log.DebugLevel,
			ReportTimestamp: true,
			Formatter:       formatter,
		})
	}

	return l, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{
		level:   LogLevelSilent,
		format:  "text",
		console: log.NewWithOptions(io.Discard, log.Options{}),
	}
}

func parseFormatter(format string) (log.Formatter, error) {
	switch format {
	case "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("unsupported log format %q (want text, json or logfmt)", format)
	}
}

// Close closes the logger and flushes all data
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.fileLog = nil
		return err
	}
	return nil
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	if l.level >= LogLevelError {
		l.write(LogLevelError, fmt.Sprintf(format, v...))
	}
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	if l.level >= LogLevelInfo {
		l.write(LogLevelInfo, fmt.Sprintf(format, v...))
	}
}

// Verbose logs a verbose message
func (l *Logger) Verbose(format string, v ...interface{}) {
	if l.level >= LogLevelVerbose {
		l.write(LogLevelVerbose, fmt.Sprintf(format, v...))
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.level >= LogLevelDebug {
		l.write(LogLevelDebug, fmt.Sprintf(format, v...))
	}
}

// write writes a message to the appropriate outputs
func (l *Logger) write(level LogLevel, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fileLog != nil {
		emit(l.fileLog, level, msg)
	}

	// Errors always reach the console, the rest only when verbose/debug
	if level == LogLevelError || l.level >= LogLevelVerbose {
		emit(l.console, level, msg)
	}
}

func emit(dst *log.Logger, level LogLevel, msg string) {
	switch level {
	case LogLevelError:
		dst.Error(msg)
	case LogLevelDebug:
		dst.Debug(msg)
	default:
		dst.Info(msg)
	}
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current logging level
func (l *Logger) GetLevel() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// LogCue logs a presented cue
func (l *Logger) LogCue(kind, value, text string, tick uint64) {
	if text != "" && text != value {
		l.Verbose("cue #%d %s=%s (%q)", tick, kind, value, text)
		return
	}
	l.Verbose("cue #%d %s=%s", tick, kind, value)
}

// LogStartup logs the drill settings at start
func (l *Logger) LogStartup(mode string, intervalMs int64, duration, language string, selection []string) {
	l.Info("Starting %s drill", mode)
	l.Verbose("  Interval: %d ms", intervalMs)
	l.Verbose("  Duration: %s", duration)
	l.Verbose("  Language: %s", language)
	l.Verbose("  Selection: %s", strings.Join(selection, ", "))
}
