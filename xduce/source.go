package xduce

import "iter"

// Sequence sources. A sequence is any iter.Seq: finite or lazily
// produced, consumed strictly in order, at most once per traversal.

// FromSlice returns a sequence over the elements of the given slice.
func FromSlice[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// FromChannel returns a sequence that drains the given channel. The
// sequence ends when the channel is closed; the caller is responsible
// for closing it. The resulting sequence is one-shot.
func FromChannel[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

// Range returns a sequence of integers from start (inclusive) to end
// (exclusive). If start >= end, the sequence is empty.
func Range(start, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Generate returns a sequence that lazily produces values from fn. The
// function returns the next value and true to continue, or false to end
// the sequence.
func Generate[T any](fn func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, ok := fn()
			if !ok {
				return
			}
			if !yield(value) {
				return
			}
		}
	}
}

// Empty returns a sequence that produces no values.
func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// Once returns a sequence that produces a single value.
func Once[T any](value T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(value)
	}
}
