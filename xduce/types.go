// Package xduce provides a composable transduction engine: reducers
// express how to fold a sequence into a result, transducers express
// value transformations independently of any sequence or reducer, and
// the traversal functions combine them in a single pass with support for
// early termination in either direction.
//
// This package is the primary user-facing API. Most users should only
// need to import this package plus the concrete reducer and transducer
// subpackages. The xduce/core subpackage contains the kernel and is
// rarely needed directly.
package xduce

import "github.com/lguimbarda/min-xduce/xduce/core"

// Type aliases for the core kernel types. These allow users to work with
// the engine without importing core directly.
type (
	// Reduction is the per-step continue/stop signal carrying the
	// current accumulator in both states.
	Reduction[R any] = core.Reduction[R]

	// Reducer folds items of type A into an accumulator of type R,
	// threading explicit state of type S.
	Reducer[S, A, R any] = core.Reducer[S, A, R]

	// Transducer transforms a reducer over inner items I1 into a reducer
	// over outer items I2.
	Transducer[S1, S2, I1, I2, R any] = core.Transducer[S1, S2, I1, I2, R]

	// TransducerFunc adapts a plain function to the Transducer interface.
	TransducerFunc[S1, S2, I1, I2, R any] = core.TransducerFunc[S1, S2, I1, I2, R]

	// LeftEduction is a transducer and sequence bound together, awaiting
	// a terminal reducer and seed for a left-to-right traversal.
	LeftEduction[S1, S2, I1, I2, R any] = core.LeftEduction[S1, S2, I1, I2, R]

	// RightEduction is the right-to-left counterpart of LeftEduction.
	RightEduction[S1, S2, I1, I2, R any] = core.RightEduction[S1, S2, I1, I2, R]

	// Paired threads a transducer's own bookkeeping alongside the inner
	// reducer's state.
	Paired[S, X any] = core.Paired[S, X]

	// Bias is a directional hint consulted by direction-sensitive
	// constructors at construction time.
	Bias = core.Bias
)

// Directional hints re-exported from core.
const (
	BiasL = core.BiasL
	BiasR = core.BiasR
)

// Continue creates a Reduction signaling that traversal should proceed.
func Continue[R any](value R) Reduction[R] {
	return core.Continue(value)
}

// Reduced creates a Reduction signaling immediate termination.
func Reduced[R any](value R) Reduction[R] {
	return core.Reduced(value)
}

// Identity returns the neutral transducer, passing every reducer through
// unchanged.
func Identity[S, A, R any]() Transducer[S, S, A, A, R] {
	return core.Identity[S, A, R]()
}
