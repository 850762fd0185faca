package core

import "iter"

// ReduceLeft drives the reducer over the sequence left-to-right, starting
// from the given accumulator, and returns the finalized result. The loop
// runs in constant stack space regardless of sequence length. If a step
// signals Reduced, traversal stops immediately and the rest of the
// sequence is not consumed.
func ReduceLeft[S, A, R any](r Reducer[S, A, R], init R, seq iter.Seq[A]) R {
	state := r.InitialState()
	acc := init
	for item := range seq {
		var sig Reduction[R]
		state, sig = r.StepL(state, acc, item)
		if sig.IsReduced() {
			return r.Completion(state, sig.Value())
		}
		acc = sig.Value()
	}
	return r.Completion(state, acc)
}

// ReduceLeft1 is ReduceLeft seeded from the reducer's own identity.
func ReduceLeft1[S, A, R any](r Reducer[S, A, R], seq iter.Seq[A]) R {
	return ReduceLeft(r, r.Identity(), seq)
}

// TransduceLeft wraps the reducer with the transducer, then drives the
// wrapped reducer over the sequence left-to-right. The wrapped reducer's
// own fresh initial state is used, and its completion finalizes the
// result.
func TransduceLeft[S1, S2, I1, I2, R any](xf Transducer[S1, S2, I1, I2, R], r Reducer[S1, I1, R], init R, seq iter.Seq[I2]) R {
	return ReduceLeft(xf.Apply(r), init, seq)
}

// TransduceLeft1 is TransduceLeft seeded from the wrapped reducer's
// identity.
func TransduceLeft1[S1, S2, I1, I2, R any](xf Transducer[S1, S2, I1, I2, R], r Reducer[S1, I1, R], seq iter.Seq[I2]) R {
	wrapped := xf.Apply(r)
	return ReduceLeft(wrapped, wrapped.Identity(), seq)
}

// LeftEduction binds a transducer and a sequence together, deferring only
// the choice of terminal reducer and seed. The same eduction can be
// replayed against different reducers; traversals never share state.
type LeftEduction[S1, S2, I1, I2, R any] struct {
	xf  Transducer[S1, S2, I1, I2, R]
	seq iter.Seq[I2]
}

// EductionLeft captures the transducer and sequence for later
// left-to-right transduction.
func EductionLeft[S1, S2, I1, I2, R any](xf Transducer[S1, S2, I1, I2, R], seq iter.Seq[I2]) LeftEduction[S1, S2, I1, I2, R] {
	return LeftEduction[S1, S2, I1, I2, R]{xf: xf, seq: seq}
}

// Into performs the deferred transduction with the given terminal reducer
// and seed. It is exactly TransduceLeft over the captured transducer and
// sequence.
func (e LeftEduction[S1, S2, I1, I2, R]) Into(r Reducer[S1, I1, R], init R) R {
	return TransduceLeft(e.xf, r, init, e.seq)
}
