// Package filter provides transducers that drop or bound items: predicate
// filtering, take/skip by count, and take/skip by predicate. Bounding
// transducers signal early termination through the Reduction they return,
// so the traversal never visits items beyond the bound.
package filter

import "github.com/lguimbarda/min-xduce/xduce/core"

// Where returns a transducer that only passes items matching the
// predicate through to the inner reducer. Non-matching items leave the
// state and accumulator untouched.
func Where[S, A, R any](predicate func(A) bool) core.Transducer[S, S, A, A, R] {
	return core.TransducerFunc[S, S, A, A, R](func(inner core.Reducer[S, A, R]) core.Reducer[S, A, R] {
		return whereReducer[S, A, R]{inner: inner, predicate: predicate}
	})
}

type whereReducer[S, A, R any] struct {
	inner     core.Reducer[S, A, R]
	predicate func(A) bool
}

func (w whereReducer[S, A, R]) InitialState() S { return w.inner.InitialState() }

func (w whereReducer[S, A, R]) Identity() R { return w.inner.Identity() }

func (w whereReducer[S, A, R]) StepL(state S, acc R, item A) (S, core.Reduction[R]) {
	if !w.predicate(item) {
		return state, core.Continue(acc)
	}
	return w.inner.StepL(state, acc, item)
}

func (w whereReducer[S, A, R]) StepR(state S, item A, rest core.Reduction[R]) (S, core.Reduction[R]) {
	if !w.predicate(item) {
		return state, rest
	}
	return w.inner.StepR(state, item, rest)
}

func (w whereReducer[S, A, R]) Completion(state S, result R) R {
	return w.inner.Completion(state, result)
}
