// ============================================================================
// lox - scripting language toolchain
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers from
//              command line flags and configuration
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	loxlog "github.com/msto63/lox/foundation/core/log"

	"github.com/msto63/lox/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name shown in every entry
	Name string

	// Log level (trace, debug, info, warn, error, off)
	Level string

	// Output format (text, json, console, logfmt; default: text)
	Format string

	// Destination; stderr when nil so script output on stdout stays clean
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  loxlog.DefaultLevel().String(),
		Format: "text",
	}
}

// FromConfig builds a LoggerConfig from the [log] section. A non-empty
// levelOverride wins over the file; verbose forces debug.
func FromConfig(name string, cfg config.LogConfig, levelOverride string, verbose bool) LoggerConfig {
	lc := DefaultLoggerConfig(name)
	if cfg.Level != "" {
		lc.Level = cfg.Level
	}
	if cfg.Format != "" {
		lc.Format = cfg.Format
	}
	if levelOverride != "" {
		lc.Level = levelOverride
	}
	if verbose {
		lc.Level = "debug"
	}
	return lc
}

// NewLogger creates a foundation logger. Unknown levels and formats fall
// back to the defaults; config.Validate reports them earlier.
func NewLogger(cfg LoggerConfig) *loxlog.Logger {
	level, err := loxlog.ParseLevel(cfg.Level)
	if err != nil {
		level = loxlog.DefaultLevel()
	}
	format, _ := loxlog.ParseFormat(cfg.Format)

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return loxlog.NewWithConfig(loxlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *loxlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// KV converts alternating key-value pairs to fields. Non-string keys and a
// trailing key without value are skipped.
func KV(keysAndValues ...interface{}) loxlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(loxlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
