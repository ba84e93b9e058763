package execlist

import (
	"sync"

	"github.com/joeycumines/logiface"
)

// lockedStack implements StrategyStack and StrategyStackUnordered, a
// mutex-guarded singly-linked stack. Register prepends in O(1); fire
// detaches the whole chain under the lock, then (unless unordered) reverses
// it outside the lock, restoring registration order before draining.
type lockedStack struct {
	logger    *logiface.Logger[logiface.Event]
	mu        sync.Mutex
	head      *node
	fired     bool
	unordered bool // skip the fire-time reversal, dispatching LIFO
}

var _ List = (*lockedStack)(nil)

func (x *lockedStack) Register(callback Task, runner Runner) error {
	if err := checkPair(callback, runner); err != nil {
		return err
	}
	p := pair{callback: callback, runner: runner}

	x.mu.Lock()
	if !x.fired {
		x.head = &node{pair: p, next: x.head}
		x.mu.Unlock()
		return nil
	}
	x.mu.Unlock()

	p.dispatch(x.logger)
	return nil
}

func (x *lockedStack) Fire() {
	x.mu.Lock()
	if x.fired {
		x.mu.Unlock()
		return
	}
	x.fired = true
	n := x.head
	x.head = nil // allow the pairs to be collected, even if the list lives on
	x.mu.Unlock()

	// the chain is exclusively owned from here - the O(n) reversal happens
	// outside the lock, so it never blocks concurrent Register calls (which
	// observe fired, and dispatch immediately)
	if !x.unordered {
		n = reverseChain(n, nil)
	}
	for ; n != nil; n = n.next {
		n.pair.dispatch(x.logger)
	}
}
