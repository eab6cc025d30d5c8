package nfa

import (
	"unicode/utf8"

	"github.com/coregx/wholematch/internal/sparse"
	"github.com/coregx/wholematch/simd"
)

// PikeVM decides full-string acceptance by simulating the NFA over the set
// of all states reachable after each input character. It never backtracks:
// the work per character is bounded by the number of NFA states, so a
// match costs O(len(input) * States()) regardless of how ambiguous the
// pattern is.
//
// Thread safety: PikeVM is immutable after creation. Each concurrent
// caller needs its own PikeVMState, either from NewState or from a pool.
type PikeVM struct {
	nfa *NFA
}

// PikeVMState holds mutable per-search state for PikeVM.
// This struct should be pooled (via sync.Pool) for concurrent usage.
// Each goroutine must use its own PikeVMState instance.
type PikeVMState struct {
	// sets.Set1 holds the current state set, sets.Set2 the next one.
	// Set membership doubles as the visited check of the epsilon closure.
	sets *sparse.SparseSets

	// stack drives the loop-based epsilon closure
	stack []StateID
}

// NewPikeVM creates a new PikeVM for executing the given NFA
func NewPikeVM(nfa *NFA) *PikeVM {
	return &PikeVM{nfa: nfa}
}

// NFA returns the automaton the VM runs.
func (p *PikeVM) NFA() *NFA {
	return p.nfa
}

// NewState allocates a PikeVMState sized for this VM's NFA.
func (p *PikeVM) NewState() *PikeVMState {
	capacity := max(p.nfa.States(), 16)
	return &PikeVMState{
		//nolint:gosec // G115: state count is capped by the compiler
		sets:  sparse.NewSparseSets(uint32(capacity)),
		stack: make([]StateID, 0, capacity),
	}
}

// IsMatch reports whether the whole input is accepted.
// It allocates a fresh PikeVMState; use IsMatchWithState on hot paths.
func (p *PikeVM) IsMatch(input string) bool {
	return p.IsMatchWithState(input, p.NewState())
}

// IsMatchWithState reports whether the whole input is accepted, using state
// as scratch space. state must come from NewState of a VM over an NFA with
// no more states than this one.
func (p *PikeVM) IsMatchWithState(input string, state *PikeVMState) bool {
	sets := state.sets
	sets.Clear()
	p.addClosure(state, sets.Set1, p.nfa.start)

	// bytes before asciiEnd are whole characters and need no decoding
	asciiEnd := simd.FirstNonASCII(input)
	if asciiEnd < 0 {
		asciiEnd = len(input)
	}

	for i := 0; i < len(input); {
		if sets.Set1.IsEmpty() {
			// no state can consume the rest of the input
			return false
		}
		var r rune
		if i < asciiEnd {
			r = rune(input[i])
			i++
		} else {
			var size int
			r, size = utf8.DecodeRuneInString(input[i:])
			i += size
		}

		sets.Set2.Clear()
		for _, id := range sets.Set1.Values() {
			if next, ok := p.nfa.step(StateID(id), r); ok {
				p.addClosure(state, sets.Set2, next)
			}
		}
		sets.Swap()
	}

	return sets.Set1.Contains(uint32(p.nfa.match))
}

// addClosure inserts id and every state reachable from it through epsilon
// transitions into set. A state already in the set is not expanded again,
// which is what makes epsilon cycles terminate.
func (p *PikeVM) addClosure(state *PikeVMState, set *sparse.SparseSet, id StateID) {
	stack := append(state.stack[:0], id)
	for len(stack) > 0 {
		sid := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !set.Insert(uint32(sid)) {
			continue
		}
		s := &p.nfa.states[sid]
		switch s.kind {
		case StateEpsilon:
			stack = append(stack, s.next)
		case StateSplit:
			// push right first so left is explored first
			stack = append(stack, s.right, s.left)
		}
	}
	state.stack = stack
}

// Closure returns the epsilon closure of the start state in discovery
// order. It is intended for inspection and tests.
func (p *PikeVM) Closure() []StateID {
	state := p.NewState()
	p.addClosure(state, state.sets.Set1, p.nfa.start)
	values := state.sets.Set1.Values()
	out := make([]StateID, len(values))
	for i, v := range values {
		out[i] = StateID(v)
	}
	return out
}
