package execlist

import (
	"sync/atomic"

	"github.com/joeycumines/logiface"
)

// casBottom marks the bottom of every casList stack. It lets a Register
// racing a not-yet-fired empty list distinguish "nothing pushed yet"
// (head == casBottom) from "already fired" (head == nil). It carries no
// pair, is never dispatched, and is never mutated, so a single shared
// instance is safe for all lists.
var casBottom = new(node)

// casList implements StrategyCAS, a lock-free stack. The head pointer is
// the only shared mutable state: pushes CAS it forward, and fire swaps it
// to nil exactly once. That swap is the sole serialization point - every
// concurrent Register either lands in the claimed stack, or observes nil
// and dispatches immediately. No pair can observe an intermediate state.
type casList struct {
	logger *logiface.Logger[logiface.Event]
	head   atomic.Pointer[node]
}

var _ List = (*casList)(nil)

func newCASList(logger *logiface.Logger[logiface.Event]) *casList {
	x := &casList{logger: logger}
	x.head.Store(casBottom)
	return x
}

func (x *casList) Register(callback Task, runner Runner) error {
	if err := checkPair(callback, runner); err != nil {
		return err
	}
	n := &node{pair: pair{callback: callback, runner: runner}}
	for {
		head := x.head.Load()
		if head == nil {
			// fired - abandon the push, dispatch immediately
			n.pair.dispatch(x.logger)
			return nil
		}
		// n is unpublished until the CAS succeeds, so writing next here is
		// safe, and the CAS orders it before any read by the drain
		n.next = head
		if x.head.CompareAndSwap(head, n) {
			return nil
		}
	}
}

func (x *casList) Fire() {
	stack := x.head.Swap(nil)
	if stack == nil {
		// another caller already fired
		return
	}

	// the claimed stack is exclusively owned - reverse it locally
	// (LIFO -> FIFO), stopping at casBottom so the sentinel is never
	// dispatched, then drain in registration order
	for n := reverseChain(stack, casBottom); n != nil; n = n.next {
		n.pair.dispatch(x.logger)
	}
}
