// Package aggregate provides terminal reducers for common reductions:
// folds, sums, counts, extrema, collection, and short-circuiting
// searches. All reducers conform to the core.Reducer contract and work
// with either traversal direction.
package aggregate

import "github.com/lguimbarda/min-xduce/xduce/core"

// Fold builds a stateless reducer from a seed and a step function. The
// seed doubles as the reducer's identity. In a right traversal the step
// receives the reduction of everything to the item's right as its first
// argument.
func Fold[A, R any](seed R, step func(R, A) R) core.Reducer[struct{}, A, R] {
	return foldReducer[A, R]{seed: seed, step: step}
}

type foldReducer[A, R any] struct {
	seed R
	step func(R, A) R
}

func (f foldReducer[A, R]) InitialState() struct{} { return struct{}{} }

func (f foldReducer[A, R]) Identity() R { return f.seed }

func (f foldReducer[A, R]) StepL(_ struct{}, acc R, item A) (struct{}, core.Reduction[R]) {
	return struct{}{}, core.Continue(f.step(acc, item))
}

func (f foldReducer[A, R]) StepR(_ struct{}, item A, rest core.Reduction[R]) (struct{}, core.Reduction[R]) {
	return struct{}{}, core.Continue(f.step(rest.Value(), item))
}

func (f foldReducer[A, R]) Completion(_ struct{}, result R) R { return result }

// Numeric is a constraint for numeric types that support arithmetic
// operations.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum returns a reducer that adds all items. Its identity is zero.
func Sum[T Numeric]() core.Reducer[struct{}, T, T] {
	return Fold[T, T](0, func(acc T, item T) T { return acc + item })
}

// Count returns a reducer that counts items, ignoring their values.
func Count[A any]() core.Reducer[struct{}, A, int] {
	return Fold[A, int](0, func(acc int, _ A) int { return acc + 1 })
}

// ToSlice returns a reducer that collects items into a slice in sequence
// order, for either traversal direction. Right traversal prepends, so
// collecting n items right-to-left costs O(n^2).
func ToSlice[A any]() core.Reducer[struct{}, A, []A] {
	return sliceReducer[A]{}
}

type sliceReducer[A any] struct{}

func (sliceReducer[A]) InitialState() struct{} { return struct{}{} }

func (sliceReducer[A]) Identity() []A { return nil }

func (sliceReducer[A]) StepL(_ struct{}, acc []A, item A) (struct{}, core.Reduction[[]A]) {
	return struct{}{}, core.Continue(append(acc, item))
}

func (sliceReducer[A]) StepR(_ struct{}, item A, rest core.Reduction[[]A]) (struct{}, core.Reduction[[]A]) {
	tail := rest.Value()
	out := make([]A, 0, len(tail)+1)
	out = append(out, item)
	return struct{}{}, core.Continue(append(out, tail...))
}

func (sliceReducer[A]) Completion(_ struct{}, result []A) []A { return result }

// extremum tracks the best item seen so far in the reducer's state; the
// accumulator is untouched until Completion folds the winner in. If the
// sequence is empty, the seed accumulator is returned unchanged.
type extremum[T any] struct {
	better func(candidate, best T) bool
}

// ExtremumState tracks the best item seen so far for Min and Max.
type ExtremumState[T any] struct {
	best T
	seen bool
}

func (e extremum[T]) InitialState() ExtremumState[T] { return ExtremumState[T]{} }

func (e extremum[T]) Identity() T {
	var zero T
	return zero
}

func (e extremum[T]) StepL(state ExtremumState[T], acc T, item T) (ExtremumState[T], core.Reduction[T]) {
	return e.observe(state, item), core.Continue(acc)
}

func (e extremum[T]) StepR(state ExtremumState[T], item T, rest core.Reduction[T]) (ExtremumState[T], core.Reduction[T]) {
	return e.observe(state, item), rest
}

func (e extremum[T]) Completion(state ExtremumState[T], result T) T {
	if state.seen {
		return state.best
	}
	return result
}

func (e extremum[T]) observe(state ExtremumState[T], item T) ExtremumState[T] {
	if !state.seen || e.better(item, state.best) {
		state.best = item
		state.seen = true
	}
	return state
}

// Min returns a reducer that finds the minimum item using the provided
// less function. If the sequence is empty, the seed accumulator is
// returned unchanged.
func Min[T any](less func(a, b T) bool) core.Reducer[ExtremumState[T], T, T] {
	return extremum[T]{better: less}
}

// Max returns a reducer that finds the maximum item using the provided
// less function. If the sequence is empty, the seed accumulator is
// returned unchanged.
func Max[T any](less func(a, b T) bool) core.Reducer[ExtremumState[T], T, T] {
	return extremum[T]{better: func(candidate, best T) bool { return less(best, candidate) }}
}

// AvgState accumulates the running sum and count for Average.
type AvgState struct {
	Sum float64
	N   int64
}

// Average returns a reducer that computes the mean of numeric items. The
// running sum and count live in the reducer state; Completion divides
// them into the visible result. An empty sequence yields the seed
// accumulator unchanged.
func Average[T Numeric]() core.Reducer[AvgState, T, float64] {
	return avgReducer[T]{}
}

type avgReducer[T Numeric] struct{}

func (avgReducer[T]) InitialState() AvgState { return AvgState{} }

func (avgReducer[T]) Identity() float64 { return 0 }

func (avgReducer[T]) StepL(state AvgState, acc float64, item T) (AvgState, core.Reduction[float64]) {
	state.Sum += float64(item)
	state.N++
	return state, core.Continue(acc)
}

func (avgReducer[T]) StepR(state AvgState, item T, rest core.Reduction[float64]) (AvgState, core.Reduction[float64]) {
	state.Sum += float64(item)
	state.N++
	return state, rest
}

func (avgReducer[T]) Completion(state AvgState, result float64) float64 {
	if state.N == 0 {
		return result
	}
	return state.Sum / float64(state.N)
}

// All returns a reducer that reports whether every item satisfies the
// predicate. It terminates the traversal at the first non-matching item.
// Its identity is true.
func All[A any](predicate func(A) bool) core.Reducer[struct{}, A, bool] {
	return allReducer[A]{predicate: predicate}
}

type allReducer[A any] struct {
	predicate func(A) bool
}

func (r allReducer[A]) InitialState() struct{} { return struct{}{} }

func (r allReducer[A]) Identity() bool { return true }

func (r allReducer[A]) StepL(_ struct{}, acc bool, item A) (struct{}, core.Reduction[bool]) {
	if !r.predicate(item) {
		return struct{}{}, core.Reduced(false)
	}
	return struct{}{}, core.Continue(acc)
}

func (r allReducer[A]) StepR(_ struct{}, item A, rest core.Reduction[bool]) (struct{}, core.Reduction[bool]) {
	if !r.predicate(item) {
		return struct{}{}, core.Reduced(false)
	}
	return struct{}{}, rest
}

func (r allReducer[A]) Completion(_ struct{}, result bool) bool { return result }

// Any returns a reducer that reports whether at least one item satisfies
// the predicate. It terminates the traversal at the first match. Its
// identity is false.
func Any[A any](predicate func(A) bool) core.Reducer[struct{}, A, bool] {
	return anyReducer[A]{predicate: predicate}
}

type anyReducer[A any] struct {
	predicate func(A) bool
}

func (r anyReducer[A]) InitialState() struct{} { return struct{}{} }

func (r anyReducer[A]) Identity() bool { return false }

func (r anyReducer[A]) StepL(_ struct{}, acc bool, item A) (struct{}, core.Reduction[bool]) {
	if r.predicate(item) {
		return struct{}{}, core.Reduced(true)
	}
	return struct{}{}, core.Continue(acc)
}

func (r anyReducer[A]) StepR(_ struct{}, item A, rest core.Reduction[bool]) (struct{}, core.Reduction[bool]) {
	if r.predicate(item) {
		return struct{}{}, core.Reduced(true)
	}
	return struct{}{}, rest
}

func (r anyReducer[A]) Completion(_ struct{}, result bool) bool { return result }
