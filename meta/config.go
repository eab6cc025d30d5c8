// Package meta implements the engine that sits between the public API and
// the automaton: it runs the compilation pipeline once and picks the
// cheapest way to answer whole-input matches for the compiled pattern.
//
// Strategy selection is based on the pattern's language:
//   - a single literal string is compared directly
//   - a small finite set of literals is answered by Aho-Corasick
//   - everything else runs on the NFA (PikeVM)
package meta

import (
	"errors"
	"log/slog"
)

// ErrInvalidConfig is wrapped by every *ConfigError.
var ErrInvalidConfig = errors.New("invalid config")

// Config controls compilation limits and strategy selection.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnableLiteralFastPath = false // Force NFA-only execution
//	engine, err := meta.CompileWithConfig(`\d{1,3}`, config)
type Config struct {
	// MaxRepeat is the largest bound accepted in {m,n}.
	// Default: 1000
	MaxRepeat int

	// MaxNesting is the deepest group nesting a pattern may use.
	// Default: 1000
	MaxNesting int

	// MaxStates caps the number of NFA states a pattern may compile to.
	// Default: 100000
	MaxStates int

	// EnableLiteralFastPath enables the UseLiteral and UseAhoCorasick
	// strategies for patterns with a finite language.
	// Default: true
	EnableLiteralFastPath bool

	// MaxLiterals limits the size of a finite language considered for the
	// fast path. Larger languages run on the NFA.
	// Default: 256
	MaxLiterals int

	// Logger receives Debug records about compilation. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxRepeat:             1000,
		MaxNesting:            1000,
		MaxStates:             100_000,
		EnableLiteralFastPath: true,
		MaxLiterals:           256,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges:
//   - MaxRepeat: 0 to 100,000
//   - MaxNesting: 1 to 100,000
//   - MaxStates: 2 to 10,000,000
//   - MaxLiterals: 1 to 10,000 (only checked when the fast path is enabled)
func (c Config) Validate() error {
	if c.MaxRepeat < 0 || c.MaxRepeat > 100_000 {
		return &ConfigError{
			Field:   "MaxRepeat",
			Message: "must be between 0 and 100,000",
		}
	}
	if c.MaxNesting < 1 || c.MaxNesting > 100_000 {
		return &ConfigError{
			Field:   "MaxNesting",
			Message: "must be between 1 and 100,000",
		}
	}
	if c.MaxStates < 2 || c.MaxStates > 10_000_000 {
		return &ConfigError{
			Field:   "MaxStates",
			Message: "must be between 2 and 10,000,000",
		}
	}
	if c.EnableLiteralFastPath {
		if c.MaxLiterals < 1 || c.MaxLiterals > 10_000 {
			return &ConfigError{
				Field:   "MaxLiterals",
				Message: "must be between 1 and 10,000",
			}
		}
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "wholematch: invalid config: " + e.Field + ": " + e.Message
}

// Unwrap returns ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
