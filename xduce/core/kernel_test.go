package core

import (
	"iter"
	"slices"
)

// Test reducers shared by the left and right traversal tests. They are
// deliberately small conforming implementations of the Reducer contract.

// sumReducer adds items into the accumulator. When visited is non-nil it
// records every item passed to a step function, in step order.
type sumReducer struct {
	visited *[]int
}

func (s sumReducer) InitialState() struct{} { return struct{}{} }

func (s sumReducer) Identity() int { return 0 }

func (s sumReducer) StepL(_ struct{}, acc, item int) (struct{}, Reduction[int]) {
	s.record(item)
	return struct{}{}, Continue(acc + item)
}

func (s sumReducer) StepR(_ struct{}, item int, rest Reduction[int]) (struct{}, Reduction[int]) {
	s.record(item)
	return struct{}{}, Continue(rest.Value() + item)
}

func (s sumReducer) Completion(_ struct{}, result int) int { return result }

func (s sumReducer) record(item int) {
	if s.visited != nil {
		*s.visited = append(*s.visited, item)
	}
}

// stopAtReducer sums items until it sees the target, then signals Reduced
// with the accumulator including the target. It stops from either
// direction.
type stopAtReducer struct {
	target  int
	visited *[]int
}

func (s stopAtReducer) InitialState() struct{} { return struct{}{} }

func (s stopAtReducer) Identity() int { return 0 }

func (s stopAtReducer) StepL(_ struct{}, acc, item int) (struct{}, Reduction[int]) {
	s.record(item)
	if item == s.target {
		return struct{}{}, Reduced(acc + item)
	}
	return struct{}{}, Continue(acc + item)
}

func (s stopAtReducer) StepR(_ struct{}, item int, rest Reduction[int]) (struct{}, Reduction[int]) {
	s.record(item)
	if item == s.target {
		return struct{}{}, Reduced(rest.Value() + item)
	}
	return struct{}{}, Continue(rest.Value() + item)
}

func (s stopAtReducer) Completion(_ struct{}, result int) int { return result }

func (s stopAtReducer) record(item int) {
	if s.visited != nil {
		*s.visited = append(*s.visited, item)
	}
}

// countingReducer demonstrates nontrivial state: it counts items in S and
// folds the count into the result only at completion.
type countingReducer struct{}

func (countingReducer) InitialState() int { return 0 }

func (countingReducer) Identity() int { return 0 }

func (countingReducer) StepL(state, acc, _ int) (int, Reduction[int]) {
	return state + 1, Continue(acc)
}

func (countingReducer) StepR(state, _ int, rest Reduction[int]) (int, Reduction[int]) {
	return state + 1, rest
}

func (countingReducer) Completion(state, result int) int { return result + state }

// doubling is a minimal map transducer used to exercise the transduce
// entry points without depending on the transform package.
func doubling() Transducer[struct{}, struct{}, int, int, int] {
	return TransducerFunc[struct{}, struct{}, int, int, int](func(inner Reducer[struct{}, int, int]) Reducer[struct{}, int, int] {
		return doublingReducer{inner: inner}
	})
}

type doublingReducer struct {
	inner Reducer[struct{}, int, int]
}

func (d doublingReducer) InitialState() struct{} { return d.inner.InitialState() }

func (d doublingReducer) Identity() int { return d.inner.Identity() }

func (d doublingReducer) StepL(state struct{}, acc, item int) (struct{}, Reduction[int]) {
	return d.inner.StepL(state, acc, item*2)
}

func (d doublingReducer) StepR(state struct{}, item int, rest Reduction[int]) (struct{}, Reduction[int]) {
	return d.inner.StepR(state, item*2, rest)
}

func (d doublingReducer) Completion(state struct{}, result int) int {
	return d.inner.Completion(state, result)
}

func seqOf(items ...int) iter.Seq[int] {
	return slices.Values(items)
}
