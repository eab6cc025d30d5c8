package meta

import (
	"fmt"

	"github.com/coregx/wholematch/literal"
)

// Strategy represents the execution strategy for whole-input matching.
// It is chosen once, at compile time, and never changes the answer: every
// strategy agrees with UseNFA on every input.
type Strategy int

const (
	// UseNFA runs the PikeVM.
	// Selected for every pattern with an infinite or large language.
	UseNFA Strategy = iota

	// UseLiteral compares the input with the only string the pattern accepts.
	// Selected for patterns like `hello`, `a{3}` or `(x)`.
	UseLiteral

	// UseAhoCorasick runs an Aho-Corasick automaton over the literal set and
	// accepts when the first match spans the whole input.
	// Selected for finite languages of at least two non-empty literals where
	// no literal occurs inside another, e.g. `cat|dog|bird`.
	UseAhoCorasick
)

// String returns a human-readable representation of the Strategy
func (s Strategy) String() string {
	switch s {
	case UseNFA:
		return "UseNFA"
	case UseLiteral:
		return "UseLiteral"
	case UseAhoCorasick:
		return "UseAhoCorasick"
	default:
		return fmt.Sprintf("Strategy(%d)", s)
	}
}

// SelectStrategy picks the strategy for a pattern whose exact language is
// literals (nil when the language is infinite or too large).
func SelectStrategy(literals *literal.Seq, config Config) Strategy {
	if !config.EnableLiteralFastPath || literals == nil {
		return UseNFA
	}

	n := literals.Len()
	switch {
	case n == 1:
		return UseLiteral
	case n >= 2 && n <= config.MaxLiterals &&
		!literals.ContainsEmpty() && literals.IsSubstringFree():
		return UseAhoCorasick
	}
	return UseNFA
}
