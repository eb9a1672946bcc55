// Package logging builds the logr.Logger used across the module, backed by
// zap through zapr, and defines the verbosity levels callers pass to V().
package logging

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logger.V(...).
const (
	DEBUG = 1 // per-improvement progress
	TRACE = 2 // full solution dumps
)

// Format selects the zap encoder.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// ParseLevel maps a level name to the logr verbosity it enables:
// "info" → 0, "debug" → DEBUG, "trace" → TRACE. Names are case-insensitive.
func ParseLevel(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return 0, nil
	case "debug":
		return DEBUG, nil
	case "trace":
		return TRACE, nil
	default:
		return 0, fmt.Errorf("unknown log level %q (want info, debug or trace)", s)
	}
}

// New returns a logger writing to stderr at the given verbosity.
// logr's V(n) maps to zap level -n, so enabling verbosity v means setting
// the zap level to -v.
func New(level string, format Format) (logr.Logger, error) {
	v, err := ParseLevel(level)
	if err != nil {
		return logr.Discard(), err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-v))
	cfg.Sampling = nil
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	switch format {
	case FormatJSON:
		cfg.Encoding = "json"
	case FormatConsole, "":
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	default:
		return logr.Discard(), fmt.Errorf("unknown log format %q (want console or json)", format)
	}

	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("building zap logger: %w", err)
	}

	return zapr.NewLogger(zl), nil
}

// NewTestLogger returns a development logger with TRACE verbosity, for tests
// that want to see engine output with -v.
func NewTestLogger() logr.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-TRACE))
	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard()
	}

	return zapr.NewLogger(zl)
}
