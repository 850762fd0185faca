// Package core defines the reduction and transduction kernel: the
// Reduction signal, the Reducer and Transducer contracts, and the left
// and right traversal algorithms that drive them over sequences.
// Sequences are represented as iter.Seq values and are consumed strictly
// in order, exactly once per traversal.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other xduce packages.
package core

// Reducer is the unit of accumulation. It folds items of type A into an
// accumulator of type R, threading an internal state of type S through
// every call. A Reducer value holds no mutable fields of its own; because
// all state lives in the explicitly threaded S, a single Reducer is
// safely reusable across independent traversals and safe to share.
type Reducer[S, A, R any] interface {
	// InitialState produces a fresh state value. It is called exactly
	// once, at the start of a traversal.
	InitialState() S

	// Identity produces the accumulator to use when the caller supplies
	// none. The "1" traversal variants seed from it.
	Identity() R

	// StepL folds one item into the accumulator when traversing
	// left-to-right. It returns the updated state and either
	// Continue(newAcc) to keep going or Reduced(finalAcc) to request
	// immediate termination.
	StepL(state S, acc R, item A) (S, Reduction[R])

	// StepR folds one item when traversing right-to-left, given the
	// already-computed reduction of everything to its right. The right
	// traversal only invokes StepR while rest is a Continue; whether a
	// reducer short-circuits further is its own policy.
	StepR(state S, item A, rest Reduction[R]) (S, Reduction[R])

	// Completion finalizes the accumulator using the final internal
	// state. It is called exactly once, when traversal ends (whether
	// exhausted or terminated early), and nowhere else.
	Completion(state S, result R) R
}
