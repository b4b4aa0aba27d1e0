// Package logging provides structured logging for the logvalues CLI,
// backed by log/slog with level gating and text/json output.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

// LogLevel represents different log levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to its LogLevel, defaulting to info.
func ParseLevel(name string) LogLevel {
	switch name {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger interface for structured logging
type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Warn(err error, msg string, fields ...any)
	Error(err error, msg string, fields ...any)

	WithComponent(component string) Logger
}

// CLILogger implements structured logging for the logvalues CLI
type CLILogger struct {
	logger    *slog.Logger
	level     LogLevel
	component string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level  LogLevel
	Format string // "json" or "text"
	Output io.Writer
}

// DefaultConfig returns default logger configuration. Output format
// defaults to text on a terminal and json otherwise, so piped output
// stays machine-readable.
func DefaultConfig() *LoggerConfig {
	format := "json"
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		format = "text"
	}
	return &LoggerConfig{
		Level:  LevelInfo,
		Format: format,
		Output: os.Stderr,
	}
}

// NewLogger creates a new structured logger
func NewLogger(config *LoggerConfig) *CLILogger {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Output == nil {
		config.Output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel(config.Level),
	}

	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(config.Output, opts)
	} else {
		handler = slog.NewTextHandler(config.Output, opts)
	}

	return &CLILogger{
		logger: slog.New(handler),
		level:  config.Level,
	}
}

func slogLevel(level LogLevel) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs a debug message
func (l *CLILogger) Debug(msg string, fields ...any) {
	if l.level > LevelDebug {
		return
	}
	l.log(slog.LevelDebug, nil, msg, fields...)
}

// Info logs an info message
func (l *CLILogger) Info(msg string, fields ...any) {
	if l.level > LevelInfo {
		return
	}
	l.log(slog.LevelInfo, nil, msg, fields...)
}

// Warn logs a warning message
func (l *CLILogger) Warn(err error, msg string, fields ...any) {
	if l.level > LevelWarn {
		return
	}
	l.log(slog.LevelWarn, err, msg, fields...)
}

// Error logs an error message
func (l *CLILogger) Error(err error, msg string, fields ...any) {
	l.log(slog.LevelError, err, msg, fields...)
}

// WithComponent creates a new logger with component context
func (l *CLILogger) WithComponent(component string) Logger {
	return &CLILogger{
		logger:    l.logger,
		level:     l.level,
		component: component,
	}
}

func (l *CLILogger) log(level slog.Level, err error, msg string, fields ...any) {
	attrs := make([]slog.Attr, 0, len(fields)/2+2)

	if l.component != "" {
		attrs = append(attrs, slog.String("component", l.component))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	for i := 0; i+1 < len(fields); i += 2 {
		if key, ok := fields[i].(string); ok {
			attrs = append(attrs, slog.Any(key, fields[i+1]))
		}
	}

	record := slog.NewRecord(time.Now(), level, msg, 0)
	record.AddAttrs(attrs...)

	_ = l.logger.Handler().Handle(context.Background(), record)
}
