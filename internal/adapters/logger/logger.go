// Package logger implements a logging adapter using log/slog with a
// charmbracelet/log handler.
package logger

import (
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	handler *charmlog.Logger
	logger  *slog.Logger
}

// New creates a new Logger writing to stderr at info level.
func New() *Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a new Logger writing to w at info level.
func NewWithWriter(w io.Writer) *Logger {
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           charmlog.InfoLevel,
	})
	return &Logger{
		handler: handler,
		logger:  slog.New(handler),
	}
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.handler.SetOutput(w)
}

// SetVerbose toggles debug level output.
func (l *Logger) SetVerbose(verbose bool) {
	if verbose {
		l.handler.SetLevel(charmlog.DebugLevel)
		return
	}
	l.handler.SetLevel(charmlog.InfoLevel)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(err error) {
	l.logger.Error("operation failed", "error", err)
}
