package core

import "iter"

// reduceR recursively folds the sequence behind next from the right. The
// reduction of the tail is computed before the head is touched; if the
// tail is already Reduced, the head is not passed to StepR at all. That
// skip is the mechanism by which right-reduction short-circuits without
// processing elements left of the stopping point.
//
// The recursion is not tail-recursive: depth grows with sequence length.
func reduceR[S, A, R any](r Reducer[S, A, R], state S, init R, next func() (A, bool)) (S, Reduction[R]) {
	item, ok := next()
	if !ok {
		return state, Continue(init)
	}
	state, rest := reduceR(r, state, init, next)
	if rest.IsReduced() {
		return state, rest
	}
	return r.StepR(state, item, rest)
}

// ReduceRight drives the reducer over the sequence right-to-left,
// starting from the given accumulator at the rightmost position, and
// returns the finalized result. The sequence is still consumed
// left-to-right physically; the backward semantics comes from structural
// recursion, not from reversing or buffering the sequence. Stack depth
// grows with sequence length, so right reduction is intended for bounded
// sequences.
func ReduceRight[S, A, R any](r Reducer[S, A, R], init R, seq iter.Seq[A]) R {
	next, stop := iter.Pull(seq)
	defer stop()
	state, sig := reduceR(r, r.InitialState(), init, next)
	return r.Completion(state, sig.Value())
}

// ReduceRight1 is ReduceRight seeded from the reducer's own identity.
func ReduceRight1[S, A, R any](r Reducer[S, A, R], seq iter.Seq[A]) R {
	return ReduceRight(r, r.Identity(), seq)
}

// TransduceRight wraps the reducer with the transducer, then drives the
// wrapped reducer over the sequence right-to-left.
func TransduceRight[S1, S2, I1, I2, R any](xf Transducer[S1, S2, I1, I2, R], r Reducer[S1, I1, R], init R, seq iter.Seq[I2]) R {
	return ReduceRight(xf.Apply(r), init, seq)
}

// TransduceRight1 is TransduceRight seeded from the wrapped reducer's
// identity.
func TransduceRight1[S1, S2, I1, I2, R any](xf Transducer[S1, S2, I1, I2, R], r Reducer[S1, I1, R], seq iter.Seq[I2]) R {
	wrapped := xf.Apply(r)
	return ReduceRight(wrapped, wrapped.Identity(), seq)
}

// RightEduction binds a transducer and a sequence together for deferred
// right-to-left transduction.
type RightEduction[S1, S2, I1, I2, R any] struct {
	xf  Transducer[S1, S2, I1, I2, R]
	seq iter.Seq[I2]
}

// EductionRight captures the transducer and sequence for later
// right-to-left transduction.
func EductionRight[S1, S2, I1, I2, R any](xf Transducer[S1, S2, I1, I2, R], seq iter.Seq[I2]) RightEduction[S1, S2, I1, I2, R] {
	return RightEduction[S1, S2, I1, I2, R]{xf: xf, seq: seq}
}

// Into performs the deferred transduction with the given terminal reducer
// and seed.
func (e RightEduction[S1, S2, I1, I2, R]) Into(r Reducer[S1, I1, R], init R) R {
	return TransduceRight(e.xf, r, init, e.seq)
}
