// Package transform provides transducers that reshape items: one-to-one
// mapping, one-to-many expansion, and consecutive-duplicate removal.
package transform

import "github.com/lguimbarda/min-xduce/xduce/core"

// Map returns a transducer that applies fn to each outer item of type IN
// before handing the resulting OUT item to the inner reducer. Cardinality
// is preserved.
func Map[S, IN, OUT, R any](fn func(IN) OUT) core.Transducer[S, S, OUT, IN, R] {
	return core.TransducerFunc[S, S, OUT, IN, R](func(inner core.Reducer[S, OUT, R]) core.Reducer[S, IN, R] {
		return mapReducer[S, IN, OUT, R]{inner: inner, fn: fn}
	})
}

type mapReducer[S, IN, OUT, R any] struct {
	inner core.Reducer[S, OUT, R]
	fn    func(IN) OUT
}

func (m mapReducer[S, IN, OUT, R]) InitialState() S { return m.inner.InitialState() }

func (m mapReducer[S, IN, OUT, R]) Identity() R { return m.inner.Identity() }

func (m mapReducer[S, IN, OUT, R]) StepL(state S, acc R, item IN) (S, core.Reduction[R]) {
	return m.inner.StepL(state, acc, m.fn(item))
}

func (m mapReducer[S, IN, OUT, R]) StepR(state S, item IN, rest core.Reduction[R]) (S, core.Reduction[R]) {
	return m.inner.StepR(state, m.fn(item), rest)
}

func (m mapReducer[S, IN, OUT, R]) Completion(state S, result R) R {
	return m.inner.Completion(state, result)
}

// FlatMap returns a transducer that expands each outer item into zero or
// more inner items, stepping the inner reducer once per expanded item.
// If the inner reducer signals Reduced mid-expansion, the remaining
// expanded items are dropped and the signal propagates. In a right
// traversal the expansion is stepped in reverse, preserving sequence
// order.
func FlatMap[S, IN, OUT, R any](fn func(IN) []OUT) core.Transducer[S, S, OUT, IN, R] {
	return core.TransducerFunc[S, S, OUT, IN, R](func(inner core.Reducer[S, OUT, R]) core.Reducer[S, IN, R] {
		return flatMapReducer[S, IN, OUT, R]{inner: inner, fn: fn}
	})
}

type flatMapReducer[S, IN, OUT, R any] struct {
	inner core.Reducer[S, OUT, R]
	fn    func(IN) []OUT
}

func (f flatMapReducer[S, IN, OUT, R]) InitialState() S { return f.inner.InitialState() }

func (f flatMapReducer[S, IN, OUT, R]) Identity() R { return f.inner.Identity() }

func (f flatMapReducer[S, IN, OUT, R]) StepL(state S, acc R, item IN) (S, core.Reduction[R]) {
	for _, out := range f.fn(item) {
		var sig core.Reduction[R]
		state, sig = f.inner.StepL(state, acc, out)
		if sig.IsReduced() {
			return state, sig
		}
		acc = sig.Value()
	}
	return state, core.Continue(acc)
}

func (f flatMapReducer[S, IN, OUT, R]) StepR(state S, item IN, rest core.Reduction[R]) (S, core.Reduction[R]) {
	outs := f.fn(item)
	for i := len(outs) - 1; i >= 0; i-- {
		state, rest = f.inner.StepR(state, outs[i], rest)
		if rest.IsReduced() {
			return state, rest
		}
	}
	return state, rest
}

func (f flatMapReducer[S, IN, OUT, R]) Completion(state S, result R) R {
	return f.inner.Completion(state, result)
}

// Dedupe returns a transducer that drops items equal to the previously
// stepped item, collapsing runs of equal values to a single occurrence.
// Adjacency follows the traversal direction: a left traversal compares
// with the item to the left, a right traversal with the item to the
// right. Either way each run survives as one item.
func Dedupe[S any, A comparable, R any]() core.Transducer[S, core.Paired[S, Prev[A]], A, A, R] {
	return core.TransducerFunc[S, core.Paired[S, Prev[A]], A, A, R](func(inner core.Reducer[S, A, R]) core.Reducer[core.Paired[S, Prev[A]], A, R] {
		return dedupeReducer[S, A, R]{inner: inner}
	})
}

// Prev remembers the last item stepped by Dedupe.
type Prev[A any] struct {
	Value A
	OK    bool
}

type dedupeReducer[S any, A comparable, R any] struct {
	inner core.Reducer[S, A, R]
}

func (d dedupeReducer[S, A, R]) InitialState() core.Paired[S, Prev[A]] {
	return core.Paired[S, Prev[A]]{Inner: d.inner.InitialState()}
}

func (d dedupeReducer[S, A, R]) Identity() R { return d.inner.Identity() }

func (d dedupeReducer[S, A, R]) StepL(state core.Paired[S, Prev[A]], acc R, item A) (core.Paired[S, Prev[A]], core.Reduction[R]) {
	if state.Extra.OK && state.Extra.Value == item {
		return state, core.Continue(acc)
	}
	state.Extra = Prev[A]{Value: item, OK: true}
	inner, sig := d.inner.StepL(state.Inner, acc, item)
	state.Inner = inner
	return state, sig
}

func (d dedupeReducer[S, A, R]) StepR(state core.Paired[S, Prev[A]], item A, rest core.Reduction[R]) (core.Paired[S, Prev[A]], core.Reduction[R]) {
	if state.Extra.OK && state.Extra.Value == item {
		return state, rest
	}
	state.Extra = Prev[A]{Value: item, OK: true}
	inner, sig := d.inner.StepR(state.Inner, item, rest)
	state.Inner = inner
	return state, sig
}

func (d dedupeReducer[S, A, R]) Completion(state core.Paired[S, Prev[A]], result R) R {
	return d.inner.Completion(state.Inner, result)
}
