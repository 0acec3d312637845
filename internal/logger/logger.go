package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// VerboseChecker interface for checking verbose state
type VerboseChecker interface {
	IsVerbose() bool
}

// Logger provides component-scoped structured logging with verbose support
type Logger struct {
	component      string
	verboseChecker VerboseChecker
	zl             zerolog.Logger
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

var (
	outputMu sync.RWMutex
	output   io.Writer = os.Stderr
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

// SetOutput redirects all loggers created afterwards. The TUI points this at
// a file so log lines never land on the alternate screen.
func SetOutput(w io.Writer) {
	outputMu.Lock()
	defer outputMu.Unlock()
	if w == nil {
		w = io.Discard
	}
	output = w
}

// OpenFile opens path for appending and makes it the log output.
// The returned closer restores stderr.
func OpenFile(path string) (func() error, error) {
	// #nosec G304 - path comes from the user's own flag or config
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	SetOutput(f)
	return func() error {
		SetOutput(os.Stderr)
		return f.Close()
	}, nil
}

func currentOutput() io.Writer {
	outputMu.RLock()
	defer outputMu.RUnlock()
	return output
}

func newZerolog(component string) zerolog.Logger {
	w := zerolog.ConsoleWriter{
		Out:        currentOutput(),
		TimeFormat: "15:04:05.000",
		NoColor:    true,
	}
	if component == "" {
		component = "main"
	}
	return zerolog.New(w).With().Timestamp().Str("component", component).Logger()
}

// New creates a new logger instance
func New(component string, verboseChecker VerboseChecker) *Logger {
	return &Logger{
		component:      component,
		verboseChecker: verboseChecker,
		zl:             newZerolog(component),
	}
}

// NewWithCallback creates a new logger instance with a callback function
func NewWithCallback(component string, verboseCheck func() bool) *Logger {
	return New(component, &callbackChecker{callback: verboseCheck})
}

// WithComponent creates a logger with a specific component name
func (l *Logger) WithComponent(component string) *Logger {
	return New(component, l.verboseChecker)
}

// callbackChecker implements VerboseChecker with a callback function
type callbackChecker struct {
	callback func() bool
}

func (c *callbackChecker) IsVerbose() bool {
	if c.callback == nil {
		return false
	}
	return c.callback()
}

func (l *Logger) verbose() bool {
	return l.verboseChecker != nil && l.verboseChecker.IsVerbose()
}

// Debug logs debug messages (only when verbose=true)
func (l *Logger) Debug(msg string, args ...interface{}) {
	if l.verbose() {
		l.zl.Debug().Msgf(msg, args...)
	}
}

// Info logs informational messages (only when verbose=true)
func (l *Logger) Info(msg string, args ...interface{}) {
	if l.verbose() {
		l.zl.Info().Msgf(msg, args...)
	}
}

// Warn logs warning messages (always shown)
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.zl.Warn().Msgf(msg, args...)
}

// Error logs error messages (always shown)
func (l *Logger) Error(msg string, args ...interface{}) {
	l.zl.Error().Msgf(msg, args...)
}

// DebugWithFields logs debug message with structured fields
func (l *Logger) DebugWithFields(msg string, fields []Field, args ...interface{}) {
	if l.verbose() {
		withFields(l.zl.Debug(), fields).Msgf(msg, args...)
	}
}

// InfoWithFields logs info message with structured fields
func (l *Logger) InfoWithFields(msg string, fields []Field, args ...interface{}) {
	if l.verbose() {
		withFields(l.zl.Info(), fields).Msgf(msg, args...)
	}
}

// WarnWithFields logs warning message with structured fields
func (l *Logger) WarnWithFields(msg string, fields []Field, args ...interface{}) {
	withFields(l.zl.Warn(), fields).Msgf(msg, args...)
}

func withFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			e = e.AnErr(field.Key, err)
			continue
		}
		e = e.Interface(field.Key, field.Value)
	}
	return e
}

// Helper functions for common field types
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

func Count(value int) Field {
	return Field{Key: "count", Value: value}
}

func Duration(d time.Duration) Field {
	return Field{Key: "duration", Value: d}
}

func Error(err error) Field {
	return Field{Key: "error", Value: err}
}
