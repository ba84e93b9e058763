// Package execlist provides a single-trigger list of callback/runner pairs,
// e.g. to run completion callbacks for a promise or future.
//
// A List accepts any number of concurrent Register calls, and a single
// logical Fire. Every registered pair is dispatched exactly once: pairs
// registered before the list fires are drained by Fire, in registration
// order, and pairs registered after the list has fired are dispatched
// immediately, within Register.
package execlist
