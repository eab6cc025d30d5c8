package meta

import (
	"sync"

	"github.com/coregx/wholematch/nfa"
)

// SearchState holds per-search mutable state for thread-safe concurrent
// matching. It is obtained from a sync.Pool so one compiled Engine can be
// used from many goroutines.
//
// Usage pattern:
//
//	state := e.pool.get()
//	defer e.pool.put(state)
//
// Thread safety: Each goroutine must use its own SearchState instance.
type SearchState struct {
	// pikevm holds the state sets and closure stack of one simulation
	pikevm *nfa.PikeVMState
}

// newSearchState creates a new SearchState sized for vm.
func newSearchState(vm *nfa.PikeVM) *SearchState {
	return &SearchState{
		pikevm: vm.NewState(),
	}
}

// searchStatePool manages a pool of SearchState instances for thread-safe reuse.
type searchStatePool struct {
	pool sync.Pool
	vm   *nfa.PikeVM
}

// newSearchStatePool creates a pool of states for vm.
func newSearchStatePool(vm *nfa.PikeVM) *searchStatePool {
	p := &searchStatePool{vm: vm}
	p.pool = sync.Pool{
		New: func() any {
			return newSearchState(p.vm)
		},
	}
	return p
}

// get retrieves a SearchState from the pool, creating one if necessary.
func (p *searchStatePool) get() *SearchState {
	return p.pool.Get().(*SearchState)
}

// put returns a SearchState to the pool for reuse.
// PikeVM clears the sets at the start of every search.
func (p *searchStatePool) put(state *SearchState) {
	if state == nil {
		return
	}
	p.pool.Put(state)
}
