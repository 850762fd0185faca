package core

// Transducer transforms a Reducer over "inner" items I1 with state S1
// into a Reducer over "outer" items I2 with state S2, injecting per-item
// logic (mapping, filtering, stopping, expanding) before delegating to
// the wrapped reducer. A transducer owns no data; it is a stateless
// recipe, safely applied to many different reducers.
//
// Conceptually a transducer is generic over the result type R. Go has no
// rank-2 generics, so R is a type parameter of the Transducer itself;
// concrete constructors stay generic in R so the same transducer logic
// works for any result type.
type Transducer[S1, S2, I1, I2, R any] interface {
	Apply(inner Reducer[S1, I1, R]) Reducer[S2, I2, R]
}

// TransducerFunc adapts a plain function to the Transducer interface.
type TransducerFunc[S1, S2, I1, I2, R any] func(inner Reducer[S1, I1, R]) Reducer[S2, I2, R]

// Apply implements Transducer.
func (f TransducerFunc[S1, S2, I1, I2, R]) Apply(inner Reducer[S1, I1, R]) Reducer[S2, I2, R] {
	return f(inner)
}

// Identity returns the neutral transducer: it passes every reducer
// through unchanged. It is the identity of transducer composition, so
// transducing with it is equivalent to reducing directly.
func Identity[S, A, R any]() Transducer[S, S, A, A, R] {
	return TransducerFunc[S, S, A, A, R](func(inner Reducer[S, A, R]) Reducer[S, A, R] {
		return inner
	})
}

// Bias selects left- or right-biased behavior for direction-sensitive
// reducer and transducer constructors. It carries no data and is
// consulted at construction time, never during traversal.
type Bias int

const (
	// BiasL treats the left end of the sequence as primary.
	BiasL Bias = iota
	// BiasR treats the right end of the sequence as primary.
	BiasR
)

// String returns "BiasL" or "BiasR".
func (b Bias) String() string {
	if b == BiasR {
		return "BiasR"
	}
	return "BiasL"
}

// Paired threads a transducer's own bookkeeping alongside the inner
// reducer's state. Stateful transducers choose it as their S2: the inner
// reducer's state lives in Inner, the extra bookkeeping in Extra.
type Paired[S, X any] struct {
	Inner S
	Extra X
}
