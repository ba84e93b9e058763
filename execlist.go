package execlist

import (
	"errors"

	"github.com/joeycumines/logiface"
)

type (
	// Task models a unit of work, e.g. a completion callback.
	Task func()

	// Runner runs tasks, using arbitrary behavior, e.g. inline on the
	// submitting goroutine, on a fresh goroutine, or via a worker pool.
	// See also the Synchronous and Goroutine factories, and RunnerFunc.
	Runner interface {
		// Submit schedules task to run, and may run it before returning.
		// A panic from Submit (including a panic from task, if run
		// inline) is recovered by the List that dispatched it, and
		// reported via the configured logger - it is never propagated to
		// callers of List.Register or List.Fire.
		Submit(task Task)
	}

	// List is a single-trigger list of callback/runner pairs.
	// Instances must be initialized using the NewList factory, and are safe
	// for concurrent use.
	List interface {
		// Register records the callback, to be dispatched on runner when
		// the list fires. If the list has already fired, the pair is
		// dispatched immediately, before Register returns.
		//
		// An ErrNilCallback or ErrNilRunner error will be returned, without
		// any state change, if the corresponding argument is nil. Dispatch
		// failures are not observable via Register, see Runner.Submit.
		Register(callback Task, runner Runner) error

		// Fire transitions the list to its fired state, dispatching every
		// pair registered so far, in registration order (except
		// StrategyStackUnordered, which dispatches in reverse). Exactly one
		// call performs the drain - every subsequent or concurrent call is
		// a no-op. Dispatch failures are not observable via Fire, see
		// Runner.Submit.
		Fire()
	}

	// Strategy selects the internal List implementation, for ListConfig.
	// All strategies implement the same contract, differing only in how
	// they keep the pending pairs, and (for StrategyStackUnordered) the
	// dispatch order on fire.
	Strategy int

	// ListConfig models optional configuration, for NewList.
	ListConfig struct {
		// Strategy selects the internal implementation.
		// **Defaults to StrategyQueue.**
		//
		// WARNING: NewList will panic on an unknown strategy.
		Strategy Strategy

		// Logger receives dispatch failures, e.g. a panic from a runner, or
		// from a callback run inline by a synchronous runner. May be nil,
		// disabling such logging. This is the only place dispatch failures
		// are observable.
		Logger *logiface.Logger[logiface.Event]
	}

	// pair bundles a callback with the runner used to dispatch it.
	// Immutable once constructed.
	pair struct {
		callback Task
		runner   Runner
	}

	// node is a link in a strategy's internal chain. Each node is created
	// by exactly one Register call, owned by the list structure until the
	// drain detaches it, then owned by the local drain walk, and discarded.
	node struct {
		pair pair
		next *node
	}
)

const (
	// StrategyQueue keeps a mutex-guarded singly-linked list with an
	// explicit tail, appending in O(1), so no reordering is needed on fire.
	// This is the default.
	StrategyQueue Strategy = iota

	// StrategyStack keeps a mutex-guarded singly-linked stack, which fire
	// detaches under the lock, then reverses (restoring registration order)
	// and drains outside it.
	StrategyStack

	// StrategyCAS keeps a lock-free stack with an atomically-updated head,
	// coordinating concurrent pushes and the single drain without a mutex.
	StrategyCAS

	// StrategyRing keeps a mutex-guarded ring-buffer queue
	// ([github.com/eapache/queue]), avoiding per-pair link allocations.
	StrategyRing

	// StrategyStackUnordered is StrategyStack without the fire-time
	// reversal, dispatching in reverse registration order.
	//
	// WARNING: This trades the ordering guarantee for a cheaper fire, and
	// does not conform to the documented List.Fire ordering.
	StrategyStackUnordered
)

var (
	// ErrNilCallback is returned by List.Register for a nil callback.
	ErrNilCallback = errors.New(`execlist: nil callback`)

	// ErrNilRunner is returned by List.Register for a nil runner.
	ErrNilRunner = errors.New(`execlist: nil runner`)
)

// NewList initializes a new List, using the provided ListConfig, which may
// be nil, in which case the documented defaults will be used. A panic will
// occur on an invalid config, i.e. an unknown strategy.
func NewList(config *ListConfig) List {
	var (
		strategy Strategy
		logger   *logiface.Logger[logiface.Event]
	)
	if config != nil {
		strategy = config.Strategy
		logger = config.Logger
	}
	switch strategy {
	case StrategyQueue:
		return &lockedQueue{logger: logger}
	case StrategyStack:
		return &lockedStack{logger: logger}
	case StrategyCAS:
		return newCASList(logger)
	case StrategyRing:
		return newRingList(logger)
	case StrategyStackUnordered:
		return &lockedStack{logger: logger, unordered: true}
	default:
		panic(`execlist: invalid strategy`)
	}
}

// checkPair validates Register arguments. No state may be mutated before it
// passes.
func checkPair(callback Task, runner Runner) error {
	if callback == nil {
		return ErrNilCallback
	}
	if runner == nil {
		return ErrNilRunner
	}
	return nil
}

// reverseChain flips a detached chain in place, stopping at (and dropping)
// stop, returning the new head. The result is always nil-terminated. It must
// only be called on a chain exclusively owned by the caller, i.e. after the
// drain has claimed it - no synchronization is performed.
func reverseChain(n, stop *node) *node {
	var prev *node
	for n != stop {
		next := n.next
		n.next = prev
		prev = n
		n = next
	}
	return prev
}
