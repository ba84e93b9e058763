package execlist

import (
	"sync"

	"github.com/joeycumines/logiface"
)

// lockedQueue implements StrategyQueue, a mutex-guarded singly-linked list
// with an explicit tail. Registration order is preserved directly, at the
// cost of one extra pointer of bookkeeping, so fire drains without any
// reordering pass.
type lockedQueue struct {
	logger *logiface.Logger[logiface.Event]
	mu     sync.Mutex
	head   *node
	tail   *node
	fired  bool
}

var _ List = (*lockedQueue)(nil)

func (x *lockedQueue) Register(callback Task, runner Runner) error {
	if err := checkPair(callback, runner); err != nil {
		return err
	}
	p := pair{callback: callback, runner: runner}

	x.mu.Lock()
	if !x.fired {
		n := &node{pair: p}
		if x.head == nil {
			x.head = n
		} else {
			x.tail.next = n
		}
		x.tail = n
		x.mu.Unlock()
		return nil
	}
	x.mu.Unlock()

	p.dispatch(x.logger)
	return nil
}

func (x *lockedQueue) Fire() {
	x.mu.Lock()
	if x.fired {
		x.mu.Unlock()
		return
	}
	x.fired = true
	n := x.head
	// allow the pairs to be collected, even if the list lives on
	x.head = nil
	x.tail = nil
	x.mu.Unlock()

	// the claimed chain is exclusively owned - concurrent Register calls
	// observe fired and dispatch immediately, without touching it
	for ; n != nil; n = n.next {
		n.pair.dispatch(x.logger)
	}
}
