package filter

import "github.com/lguimbarda/min-xduce/xduce/core"

// Take returns a transducer that passes through only the first n items
// seen by the traversal, then terminates it regardless of what the inner
// reducer says. In a left traversal that is the leftmost n items; in a
// right traversal the rightmost n. If n <= 0 the traversal stops at the
// first item without stepping it.
func Take[S, A, R any](n int) core.Transducer[S, core.Paired[S, int], A, A, R] {
	return core.TransducerFunc[S, core.Paired[S, int], A, A, R](func(inner core.Reducer[S, A, R]) core.Reducer[core.Paired[S, int], A, R] {
		return takeReducer[S, A, R]{inner: inner, n: n}
	})
}

type takeReducer[S, A, R any] struct {
	inner core.Reducer[S, A, R]
	n     int
}

func (t takeReducer[S, A, R]) InitialState() core.Paired[S, int] {
	return core.Paired[S, int]{Inner: t.inner.InitialState()}
}

func (t takeReducer[S, A, R]) Identity() R { return t.inner.Identity() }

func (t takeReducer[S, A, R]) StepL(state core.Paired[S, int], acc R, item A) (core.Paired[S, int], core.Reduction[R]) {
	if state.Extra >= t.n {
		return state, core.Reduced(acc)
	}
	inner, sig := t.inner.StepL(state.Inner, acc, item)
	state.Inner = inner
	state.Extra++
	if state.Extra >= t.n && !sig.IsReduced() {
		sig = core.Reduced(sig.Value())
	}
	return state, sig
}

func (t takeReducer[S, A, R]) StepR(state core.Paired[S, int], item A, rest core.Reduction[R]) (core.Paired[S, int], core.Reduction[R]) {
	if state.Extra >= t.n {
		return state, core.Reduced(rest.Value())
	}
	inner, sig := t.inner.StepR(state.Inner, item, rest)
	state.Inner = inner
	state.Extra++
	if state.Extra >= t.n && !sig.IsReduced() {
		sig = core.Reduced(sig.Value())
	}
	return state, sig
}

func (t takeReducer[S, A, R]) Completion(state core.Paired[S, int], result R) R {
	return t.inner.Completion(state.Inner, result)
}

// TakeWhile returns a transducer that passes items through while the
// predicate holds, then terminates the traversal at the first failing
// item without stepping it.
func TakeWhile[S, A, R any](predicate func(A) bool) core.Transducer[S, S, A, A, R] {
	return core.TransducerFunc[S, S, A, A, R](func(inner core.Reducer[S, A, R]) core.Reducer[S, A, R] {
		return takeWhileReducer[S, A, R]{inner: inner, predicate: predicate}
	})
}

type takeWhileReducer[S, A, R any] struct {
	inner     core.Reducer[S, A, R]
	predicate func(A) bool
}

func (t takeWhileReducer[S, A, R]) InitialState() S { return t.inner.InitialState() }

func (t takeWhileReducer[S, A, R]) Identity() R { return t.inner.Identity() }

func (t takeWhileReducer[S, A, R]) StepL(state S, acc R, item A) (S, core.Reduction[R]) {
	if !t.predicate(item) {
		return state, core.Reduced(acc)
	}
	return t.inner.StepL(state, acc, item)
}

func (t takeWhileReducer[S, A, R]) StepR(state S, item A, rest core.Reduction[R]) (S, core.Reduction[R]) {
	if !t.predicate(item) {
		return state, core.Reduced(rest.Value())
	}
	return t.inner.StepR(state, item, rest)
}

func (t takeWhileReducer[S, A, R]) Completion(state S, result R) R {
	return t.inner.Completion(state, result)
}

// Skip returns a transducer that drops the first n items seen by the
// traversal and passes through the rest. In a left traversal that drops
// the leftmost n items; in a right traversal the rightmost n.
func Skip[S, A, R any](n int) core.Transducer[S, core.Paired[S, int], A, A, R] {
	return core.TransducerFunc[S, core.Paired[S, int], A, A, R](func(inner core.Reducer[S, A, R]) core.Reducer[core.Paired[S, int], A, R] {
		return skipReducer[S, A, R]{inner: inner, n: n}
	})
}

type skipReducer[S, A, R any] struct {
	inner core.Reducer[S, A, R]
	n     int
}

func (s skipReducer[S, A, R]) InitialState() core.Paired[S, int] {
	return core.Paired[S, int]{Inner: s.inner.InitialState()}
}

func (s skipReducer[S, A, R]) Identity() R { return s.inner.Identity() }

func (s skipReducer[S, A, R]) StepL(state core.Paired[S, int], acc R, item A) (core.Paired[S, int], core.Reduction[R]) {
	if state.Extra < s.n {
		state.Extra++
		return state, core.Continue(acc)
	}
	inner, sig := s.inner.StepL(state.Inner, acc, item)
	state.Inner = inner
	return state, sig
}

func (s skipReducer[S, A, R]) StepR(state core.Paired[S, int], item A, rest core.Reduction[R]) (core.Paired[S, int], core.Reduction[R]) {
	if state.Extra < s.n {
		state.Extra++
		return state, rest
	}
	inner, sig := s.inner.StepR(state.Inner, item, rest)
	state.Inner = inner
	return state, sig
}

func (s skipReducer[S, A, R]) Completion(state core.Paired[S, int], result R) R {
	return s.inner.Completion(state.Inner, result)
}

// SkipWhile returns a transducer that drops items while the predicate
// holds, then passes through everything from the first failing item on.
func SkipWhile[S, A, R any](predicate func(A) bool) core.Transducer[S, core.Paired[S, bool], A, A, R] {
	return core.TransducerFunc[S, core.Paired[S, bool], A, A, R](func(inner core.Reducer[S, A, R]) core.Reducer[core.Paired[S, bool], A, R] {
		return skipWhileReducer[S, A, R]{inner: inner, predicate: predicate}
	})
}

type skipWhileReducer[S, A, R any] struct {
	inner     core.Reducer[S, A, R]
	predicate func(A) bool
}

func (s skipWhileReducer[S, A, R]) InitialState() core.Paired[S, bool] {
	return core.Paired[S, bool]{Inner: s.inner.InitialState()}
}

func (s skipWhileReducer[S, A, R]) Identity() R { return s.inner.Identity() }

func (s skipWhileReducer[S, A, R]) StepL(state core.Paired[S, bool], acc R, item A) (core.Paired[S, bool], core.Reduction[R]) {
	// Extra records that skipping has ended.
	if !state.Extra {
		if s.predicate(item) {
			return state, core.Continue(acc)
		}
		state.Extra = true
	}
	inner, sig := s.inner.StepL(state.Inner, acc, item)
	state.Inner = inner
	return state, sig
}

func (s skipWhileReducer[S, A, R]) StepR(state core.Paired[S, bool], item A, rest core.Reduction[R]) (core.Paired[S, bool], core.Reduction[R]) {
	if !state.Extra {
		if s.predicate(item) {
			return state, rest
		}
		state.Extra = true
	}
	inner, sig := s.inner.StepR(state.Inner, item, rest)
	state.Inner = inner
	return state, sig
}

func (s skipWhileReducer[S, A, R]) Completion(state core.Paired[S, bool], result R) R {
	return s.inner.Completion(state.Inner, result)
}
