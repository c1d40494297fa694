// Package rleerr provides the panic/recover plumbing used by package ben's
// stream reader and random-access extractor to unwind out of a sequence of
// reads without threading an error return through every call.
package rleerr

import "runtime"

// Recover turns a panicked error into *err and lets everything else continue
// unwinding. It must be used as `defer rleerr.Recover(&err)` at the point
// where a caller expects a normal Go error return.
func Recover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}

// Panic panics with err so that the nearest Recover converts it back into a
// normal error return.
func Panic(err error) {
	panic(err)
}
