package nfa

import (
	"fmt"
	"slices"

	"github.com/coregx/wholematch/syntax"
)

// Builder constructs NFAs incrementally using a low-level API.
// This provides full control over NFA construction and is used by the Compiler.
type Builder struct {
	states  []State
	classes []syntax.CharClass
	start   StateID
	match   StateID
}

// NewBuilder creates a new NFA builder with default capacity
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a new NFA builder with specified initial capacity
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		states: make([]State, 0, capacity),
		start:  InvalidState,
		match:  InvalidState,
	}
}

func (b *Builder) add(s State) StateID {
	//nolint:gosec // G115: the compiler caps the state count far below 2^32
	id := StateID(len(b.states))
	s.id = id
	b.states = append(b.states, s)
	return id
}

// AddMatch adds a match (accepting) state and returns its ID.
// The most recently added match state becomes the NFA's accept state.
func (b *Builder) AddMatch() StateID {
	id := b.add(State{kind: StateMatch})
	b.match = id
	return id
}

// AddRune adds a state that consumes exactly r.
func (b *Builder) AddRune(r rune, next StateID) StateID {
	return b.add(State{kind: StateRune, r: r, next: next})
}

// AddClass adds a state that consumes one character accepted by class.
// The class is copied to avoid aliasing issues.
func (b *Builder) AddClass(class syntax.CharClass, next StateID) StateID {
	class.Ranges = slices.Clone(class.Ranges)
	class.Metas = slices.Clone(class.Metas)
	b.classes = append(b.classes, class)
	return b.add(State{kind: StateClass, class: len(b.classes) - 1, next: next})
}

// AddAny adds a state that consumes any single character.
func (b *Builder) AddAny(next StateID) StateID {
	return b.add(State{kind: StateAny, next: next})
}

// AddSplit adds a state with epsilon transitions to two states.
func (b *Builder) AddSplit(left, right StateID) StateID {
	return b.add(State{kind: StateSplit, left: left, right: right})
}

// AddEpsilon adds a state with a single epsilon transition (no input consumed)
func (b *Builder) AddEpsilon(next StateID) StateID {
	return b.add(State{kind: StateEpsilon, next: next})
}

// Patch updates a state's target. This is used during compilation to handle
// forward references (e.g., loops, alternations).
// This only works for states with a single 'next' target.
func (b *Builder) Patch(stateID, target StateID) error {
	if int(stateID) >= len(b.states) {
		return &BuildError{
			Message: "state ID out of bounds",
			StateID: stateID,
		}
	}

	s := &b.states[stateID]
	switch s.kind {
	case StateRune, StateClass, StateAny, StateEpsilon:
		s.next = target
		return nil
	default:
		return &BuildError{
			Message: fmt.Sprintf("cannot patch state of kind %s", s.kind),
			StateID: stateID,
		}
	}
}

// PatchSplit updates the left and right targets of a Split state
func (b *Builder) PatchSplit(stateID StateID, left, right StateID) error {
	if int(stateID) >= len(b.states) {
		return &BuildError{
			Message: "state ID out of bounds",
			StateID: stateID,
		}
	}

	s := &b.states[stateID]
	if s.kind != StateSplit {
		return &BuildError{
			Message: fmt.Sprintf("expected Split state, got %s", s.kind),
			StateID: stateID,
		}
	}

	s.left = left
	s.right = right
	return nil
}

// SetStart sets the starting state for the NFA
func (b *Builder) SetStart(start StateID) {
	b.start = start
}

// States returns the current number of states
func (b *Builder) States() int {
	return len(b.states)
}

// Validate checks that the NFA is well-formed:
// - start and match states are set and in range
// - every transition points at an existing state
func (b *Builder) Validate() error {
	if b.start == InvalidState {
		return &BuildError{Message: "start state not set", StateID: InvalidState}
	}
	if !b.valid(b.start) {
		return &BuildError{Message: "start state out of bounds", StateID: b.start}
	}
	if b.match == InvalidState {
		return &BuildError{Message: "match state not set", StateID: InvalidState}
	}

	for i := range b.states {
		s := &b.states[i]
		switch s.kind {
		case StateRune, StateClass, StateAny, StateEpsilon:
			if !b.valid(s.next) {
				return &BuildError{
					Message: fmt.Sprintf("invalid next state %d", s.next),
					StateID: s.id,
				}
			}
		case StateSplit:
			if !b.valid(s.left) {
				return &BuildError{
					Message: fmt.Sprintf("invalid left state %d", s.left),
					StateID: s.id,
				}
			}
			if !b.valid(s.right) {
				return &BuildError{
					Message: fmt.Sprintf("invalid right state %d", s.right),
					StateID: s.id,
				}
			}
		}
	}

	return nil
}

func (b *Builder) valid(id StateID) bool {
	return id != InvalidState && int(id) < len(b.states)
}

// Build validates and returns the constructed NFA.
// The builder must not be used afterwards.
func (b *Builder) Build() (*NFA, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &NFA{
		states:  b.states,
		classes: b.classes,
		start:   b.start,
		match:   b.match,
	}, nil
}
