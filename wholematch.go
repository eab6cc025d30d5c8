// Package wholematch compiles regular expressions into matchers that decide
// whether an entire string belongs to the pattern's language.
//
// Matching is always anchored at both ends: "a|b" accepts "a" and "b" but
// not "ab" or "xa". There is no substring search and no capture extraction.
//
// Basic usage:
//
//	m, err := wholematch.Compile(`(\d{1,3}\.){3}\d{1,3}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m.Test("192.168.0.1") // true
//	m.Test("192.168.0")   // false
//
// Supported syntax:
//   - literals, '.', groups (...), alternation |
//   - repetition * + ? and bounded repetition {m} {m,} {m,n}
//   - classes [abc] [a-z] [^...]
//   - escapes \d \w \s and \x for any other character x
//
// Performance characteristics:
//   - Compilation is linear in the size of the expanded pattern
//   - Test never backtracks: O(len(input) * states) in the worst case
//   - Patterns with a small finite language skip the automaton entirely
package wholematch

import (
	"github.com/coregx/wholematch/meta"
)

// Matcher is a compiled pattern.
//
// A Matcher is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	m := wholematch.MustCompile(`cat|dog`)
//	if m.Test("dog") {
//	    println("matched!")
//	}
type Matcher struct {
	engine  *meta.Engine
	pattern string
}

// Config is the compilation configuration. See meta.Config.
type Config = meta.Config

// Strategy is the execution strategy chosen for a pattern. See meta.Strategy.
type Strategy = meta.Strategy

// DefaultConfig returns the default compilation configuration.
func DefaultConfig() Config {
	return meta.DefaultConfig()
}

// Compile compiles a pattern.
// Returns an error if the pattern is invalid; use errors.Is with the
// syntax.Err* values to tell the kinds apart.
//
// Example:
//
//	m, err := wholematch.Compile(`[\w.+-]+@[\w.-]+\.\w+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Matcher, error) {
	return CompileWithConfig(pattern, meta.DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var zipCode = wholematch.MustCompile(`\d{5}(-\d{4})?`)
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic("wholematch: Compile(`" + pattern + "`): " + err.Error())
	}
	return m
}

// CompileWithConfig compiles a pattern with custom limits.
//
// Example:
//
//	config := wholematch.DefaultConfig()
//	config.MaxRepeat = 10
//	m, err := wholematch.CompileWithConfig(`a{1,20}`, config) // fails
func CompileWithConfig(pattern string, config Config) (*Matcher, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Matcher{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// Test reports whether input, as a whole, matches the pattern.
//
// Example:
//
//	m := wholematch.MustCompile(`a+`)
//	m.Test("aaa")  // true
//	m.Test("aaab") // false
func (m *Matcher) Test(input string) bool {
	return m.engine.IsMatch(input)
}

// String returns the source pattern.
func (m *Matcher) String() string {
	return m.pattern
}

// Strategy returns the execution strategy selected at compile time.
func (m *Matcher) Strategy() Strategy {
	return m.engine.Strategy()
}
