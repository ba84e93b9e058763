package execlist

import (
	"fmt"

	"github.com/joeycumines/logiface"
)

// PanicError wraps a panic value recovered while dispatching a pair.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf(`execlist: panic during dispatch: %v`, e.Value)
}

// Unwrap returns the underlying error if the panic value is an error type,
// enabling use with [errors.Is] and [errors.As]. Returns nil otherwise.
func (e PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// dispatch hands the callback to the runner, isolating any panic from the
// runner, or from the callback if the runner runs it inline. One bad
// listener must not block or corrupt delivery to the others - failures go to
// the logger, and nowhere else.
func (x pair) dispatch(logger *logiface.Logger[logiface.Event]) {
	defer func() {
		if r := recover(); r != nil {
			reportDispatchFailure(logger, x, r)
		}
	}()
	x.runner.Submit(x.callback)
}

// reportDispatchFailure forwards a recovered dispatch failure to the logger.
// A failure to report must not itself abort dispatch of the remaining
// pairs, so any panic from the logger is swallowed.
func reportDispatchFailure(logger *logiface.Logger[logiface.Event], p pair, value any) {
	defer func() { _ = recover() }()
	logger.Err().
		Err(PanicError{Value: value}).
		Str(`callback`, fmt.Sprintf(`%p`, p.callback)).
		Str(`runner`, fmt.Sprintf(`%T`, p.runner)).
		Log(`dispatch failed`)
}
