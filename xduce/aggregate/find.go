package aggregate

import "github.com/lguimbarda/min-xduce/xduce/core"

// First returns a reducer that yields one item of the sequence and
// terminates the traversal as soon as that item is decided. The bias
// selects which end of the sequence counts as first: with BiasL the
// leftmost item wins, so a left traversal stops after one step; with
// BiasR the rightmost item wins, so a right traversal stops after one
// step. Driven from the opposite direction the reducer still yields the
// correct item but must see the whole sequence. An empty sequence yields
// the seed accumulator unchanged.
func First[A any](bias core.Bias) core.Reducer[struct{}, A, A] {
	return Find[A](bias, func(A) bool { return true })
}

// Find returns a reducer that searches for an item satisfying the
// predicate. The bias selects which match wins: BiasL the leftmost,
// BiasR the rightmost. Traversing in the biased direction terminates at
// the first match, skipping everything beyond it; traversing against
// the bias keeps the last match seen. If nothing matches, the seed
// accumulator is returned unchanged.
func Find[A any](bias core.Bias, predicate func(A) bool) core.Reducer[struct{}, A, A] {
	return findReducer[A]{bias: bias, predicate: predicate}
}

type findReducer[A any] struct {
	bias      core.Bias
	predicate func(A) bool
}

func (r findReducer[A]) InitialState() struct{} { return struct{}{} }

func (r findReducer[A]) Identity() A {
	var zero A
	return zero
}

func (r findReducer[A]) StepL(_ struct{}, acc A, item A) (struct{}, core.Reduction[A]) {
	if !r.predicate(item) {
		return struct{}{}, core.Continue(acc)
	}
	if r.bias == core.BiasL {
		return struct{}{}, core.Reduced(item)
	}
	// Against the bias: a later match may still win, keep going.
	return struct{}{}, core.Continue(item)
}

func (r findReducer[A]) StepR(_ struct{}, item A, rest core.Reduction[A]) (struct{}, core.Reduction[A]) {
	if !r.predicate(item) {
		return struct{}{}, rest
	}
	if r.bias == core.BiasR {
		return struct{}{}, core.Reduced(item)
	}
	return struct{}{}, core.Continue(item)
}

func (r findReducer[A]) Completion(_ struct{}, result A) A { return result }
