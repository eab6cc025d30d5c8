// Package nfa provides a Thompson NFA over characters (runes) and a PikeVM
// that decides full-string acceptance by state-set simulation.
//
// States live in a flat arena indexed by StateID; transitions refer to IDs,
// so the cycles created by * and + need no ownership links.
package nfa

import (
	"fmt"

	"github.com/coregx/wholematch/syntax"
)

// StateID uniquely identifies an NFA state.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID.
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies the type of NFA state and determines which transitions are valid.
type StateKind uint8

const (
	// StateMatch is the accepting state.
	StateMatch StateKind = iota

	// StateRune consumes one specific character.
	StateRune

	// StateClass consumes one character accepted by a character class.
	StateClass

	// StateAny consumes any single character.
	StateAny

	// StateSplit has epsilon transitions to two states.
	// Used for alternation and the * + ? operators.
	StateSplit

	// StateEpsilon has one epsilon transition.
	StateEpsilon
)

// String returns a human-readable representation of the StateKind
func (k StateKind) String() string {
	switch k {
	case StateMatch:
		return "Match"
	case StateRune:
		return "Rune"
	case StateClass:
		return "Class"
	case StateAny:
		return "Any"
	case StateSplit:
		return "Split"
	case StateEpsilon:
		return "Epsilon"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// State represents a single NFA state with its transitions.
// The state's kind determines which fields are valid.
type State struct {
	id   StateID
	kind StateKind

	// For Rune
	r rune

	// For Class: index into NFA.classes
	class int

	// target for Rune, Class, Any and Epsilon
	next StateID

	// For Split
	left, right StateID
}

// ID returns the state's unique identifier
func (s *State) ID() StateID {
	return s.id
}

// Kind returns the state's type
func (s *State) Kind() StateKind {
	return s.kind
}

// IsMatch returns true if this is a match state
func (s *State) IsMatch() bool {
	return s.kind == StateMatch
}

// Rune returns the character and target of a Rune state.
// Returns (0, InvalidState) for other kinds.
func (s *State) Rune() (r rune, next StateID) {
	if s.kind == StateRune {
		return s.r, s.next
	}
	return 0, InvalidState
}

// Class returns the class index and target of a Class state.
// Returns (-1, InvalidState) for other kinds.
func (s *State) Class() (index int, next StateID) {
	if s.kind == StateClass {
		return s.class, s.next
	}
	return -1, InvalidState
}

// Split returns the two target states for Split states.
// Returns (InvalidState, InvalidState) for non-Split states.
func (s *State) Split() (left, right StateID) {
	if s.kind == StateSplit {
		return s.left, s.right
	}
	return InvalidState, InvalidState
}

// Next returns the target of a consuming or Epsilon state.
// Returns InvalidState for Split and Match states.
func (s *State) Next() StateID {
	switch s.kind {
	case StateRune, StateClass, StateAny, StateEpsilon:
		return s.next
	}
	return InvalidState
}

// IsConsuming reports whether the state reads one input character.
func (s *State) IsConsuming() bool {
	switch s.kind {
	case StateRune, StateClass, StateAny:
		return true
	}
	return false
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	switch s.kind {
	case StateMatch:
		return fmt.Sprintf("State(%d, Match)", s.id)
	case StateRune:
		return fmt.Sprintf("State(%d, Rune %q -> %d)", s.id, s.r, s.next)
	case StateClass:
		return fmt.Sprintf("State(%d, Class #%d -> %d)", s.id, s.class, s.next)
	case StateAny:
		return fmt.Sprintf("State(%d, Any -> %d)", s.id, s.next)
	case StateSplit:
		return fmt.Sprintf("State(%d, Split -> [%d, %d])", s.id, s.left, s.right)
	case StateEpsilon:
		return fmt.Sprintf("State(%d, Epsilon -> %d)", s.id, s.next)
	default:
		return fmt.Sprintf("State(%d, Unknown)", s.id)
	}
}

// NFA represents a compiled Thompson NFA.
// It is immutable once built and may be shared between goroutines.
type NFA struct {
	// states contains all NFA states indexed by StateID
	states []State

	// classes holds the predicates referenced by Class states
	classes []syntax.CharClass

	start StateID
	match StateID
}

// Start returns the start state ID.
func (n *NFA) Start() StateID {
	return n.start
}

// Match returns the ID of the accepting state.
func (n *NFA) Match() StateID {
	return n.match
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// IsMatch returns true if the given state is a match state
func (n *NFA) IsMatch(id StateID) bool {
	if s := n.State(id); s != nil {
		return s.IsMatch()
	}
	return false
}

// States returns the total number of states in the NFA
func (n *NFA) States() int {
	return len(n.states)
}

// Class returns the class with the given index, or nil.
func (n *NFA) Class(index int) *syntax.CharClass {
	if index < 0 || index >= len(n.classes) {
		return nil
	}
	return &n.classes[index]
}

// step follows the consuming transition of state id on r.
func (n *NFA) step(id StateID, r rune) (StateID, bool) {
	s := &n.states[id]
	switch s.kind {
	case StateRune:
		return s.next, s.r == r
	case StateClass:
		return s.next, n.classes[s.class].Matches(r)
	case StateAny:
		return s.next, true
	}
	return InvalidState, false
}

// String returns a human-readable representation of the NFA
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, classes: %d, start: %d, match: %d}",
		len(n.states), len(n.classes), n.start, n.match)
}
