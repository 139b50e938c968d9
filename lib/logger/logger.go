// Package logger provides the structured logging surface used across
// the solver core and its adapters. It keeps the call shape this
// codebase's original hand-rolled logger used (Debug/Info/Warn/Error,
// plus per-cell and per-technique helpers) on top of zerolog.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu    sync.Mutex
	base  = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	level = zerolog.InfoLevel
)

func init() {
	zerolog.SetGlobalLevel(level)
}

// SetLevel sets the minimum level emitted by the package logger.
func SetLevel(l zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
	zerolog.SetGlobalLevel(l)
}

// SetOutput redirects log output, e.g. to silence logging in tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	base = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
}

func current() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return base
}

// Debug logs a debug-level message.
func Debug(format string, args ...interface{}) {
	current().Debug().Msgf(format, args...)
}

// Info logs an info-level message.
func Info(format string, args ...interface{}) {
	current().Info().Msgf(format, args...)
}

// Warn logs a warn-level message.
func Warn(format string, args ...interface{}) {
	current().Warn().Msgf(format, args...)
}

// Error logs an error-level message.
func Error(format string, args ...interface{}) {
	current().Error().Msgf(format, args...)
}

// DebugCell logs a debug message tagged with a cell coordinate.
func DebugCell(row, col int, format string, args ...interface{}) {
	current().Debug().Int("row", row+1).Int("col", col+1).Msgf(format, args...)
}

// InfoCell logs an info message tagged with a cell coordinate.
func InfoCell(row, col int, format string, args ...interface{}) {
	current().Info().Int("row", row+1).Int("col", col+1).Msgf(format, args...)
}

// SolvingStep logs an info message tagged with the inference technique
// that produced it (naked subset, pointing pair, hidden subset, ...).
func SolvingStep(technique string, format string, args ...interface{}) {
	current().Info().Str("technique", technique).Msgf(format, args...)
}

// WithTrace returns a child logger tagged with a solve trace id, used
// by the solver to correlate the placements/backtracks of one Solve
// call in structured output.
func WithTrace(traceID string) zerolog.Logger {
	return current().With().Str("trace_id", traceID).Logger()
}
