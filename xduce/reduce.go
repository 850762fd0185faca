package xduce

import (
	"iter"

	"github.com/lguimbarda/min-xduce/xduce/core"
)

// Traversal entry points - wrappers around the core functions.

// ReduceLeft folds the sequence left-to-right with the given reducer and
// seed accumulator.
func ReduceLeft[S, A, R any](r Reducer[S, A, R], init R, seq iter.Seq[A]) R {
	return core.ReduceLeft(r, init, seq)
}

// ReduceLeft1 folds the sequence left-to-right, seeding the accumulator
// from the reducer's identity.
func ReduceLeft1[S, A, R any](r Reducer[S, A, R], seq iter.Seq[A]) R {
	return core.ReduceLeft1(r, seq)
}

// ReduceRight folds the sequence right-to-left with the given reducer
// and seed accumulator. Stack depth grows with sequence length.
func ReduceRight[S, A, R any](r Reducer[S, A, R], init R, seq iter.Seq[A]) R {
	return core.ReduceRight(r, init, seq)
}

// ReduceRight1 folds the sequence right-to-left, seeding the accumulator
// from the reducer's identity.
func ReduceRight1[S, A, R any](r Reducer[S, A, R], seq iter.Seq[A]) R {
	return core.ReduceRight1(r, seq)
}

// TransduceLeft wraps the reducer with the transducer and folds the
// sequence left-to-right.
func TransduceLeft[S1, S2, I1, I2, R any](xf Transducer[S1, S2, I1, I2, R], r Reducer[S1, I1, R], init R, seq iter.Seq[I2]) R {
	return core.TransduceLeft(xf, r, init, seq)
}

// TransduceLeft1 is TransduceLeft seeded from the wrapped reducer's
// identity.
func TransduceLeft1[S1, S2, I1, I2, R any](xf Transducer[S1, S2, I1, I2, R], r Reducer[S1, I1, R], seq iter.Seq[I2]) R {
	return core.TransduceLeft1(xf, r, seq)
}

// TransduceRight wraps the reducer with the transducer and folds the
// sequence right-to-left.
func TransduceRight[S1, S2, I1, I2, R any](xf Transducer[S1, S2, I1, I2, R], r Reducer[S1, I1, R], init R, seq iter.Seq[I2]) R {
	return core.TransduceRight(xf, r, init, seq)
}

// TransduceRight1 is TransduceRight seeded from the wrapped reducer's
// identity.
func TransduceRight1[S1, S2, I1, I2, R any](xf Transducer[S1, S2, I1, I2, R], r Reducer[S1, I1, R], seq iter.Seq[I2]) R {
	return core.TransduceRight1(xf, r, seq)
}

// EductionLeft binds the transducer and sequence for deferred
// left-to-right transduction via Into.
func EductionLeft[S1, S2, I1, I2, R any](xf Transducer[S1, S2, I1, I2, R], seq iter.Seq[I2]) LeftEduction[S1, S2, I1, I2, R] {
	return core.EductionLeft(xf, seq)
}

// EductionRight binds the transducer and sequence for deferred
// right-to-left transduction via Into.
func EductionRight[S1, S2, I1, I2, R any](xf Transducer[S1, S2, I1, I2, R], seq iter.Seq[I2]) RightEduction[S1, S2, I1, I2, R] {
	return core.EductionRight(xf, seq)
}
