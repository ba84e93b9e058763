package execlist

import (
	"sync"

	"github.com/eapache/queue"
	"github.com/joeycumines/logiface"
)

// ringList implements StrategyRing, a mutex-guarded ring-buffer queue.
// Registration order is preserved directly, like lockedQueue, but pairs are
// stored by value in the ring, avoiding a per-pair link allocation (the
// ring grows amortized, by doubling).
type ringList struct {
	logger *logiface.Logger[logiface.Event]
	mu     sync.Mutex
	q      *queue.Queue // nil once fired
	fired  bool
}

var _ List = (*ringList)(nil)

func newRingList(logger *logiface.Logger[logiface.Event]) *ringList {
	return &ringList{logger: logger, q: queue.New()}
}

func (x *ringList) Register(callback Task, runner Runner) error {
	if err := checkPair(callback, runner); err != nil {
		return err
	}
	p := pair{callback: callback, runner: runner}

	x.mu.Lock()
	if !x.fired {
		x.q.Add(p)
		x.mu.Unlock()
		return nil
	}
	x.mu.Unlock()

	p.dispatch(x.logger)
	return nil
}

func (x *ringList) Fire() {
	x.mu.Lock()
	if x.fired {
		x.mu.Unlock()
		return
	}
	x.fired = true
	q := x.q
	x.q = nil // allow the pairs to be collected, even if the list lives on
	x.mu.Unlock()

	// the claimed queue is exclusively owned - concurrent Register calls
	// observe fired and dispatch immediately, without touching it
	for q.Length() > 0 {
		q.Remove().(pair).dispatch(x.logger)
	}
}
