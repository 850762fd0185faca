package xduce

import "github.com/lguimbarda/min-xduce/xduce/core"

// Compose chains two transducers into one. Items pass through first,
// then through second, before reaching the terminal reducer: the
// resulting transducer wraps the reducer with second, then with first.
// Identity is the neutral element of this composition.
func Compose[SA, SB, SC, IA, IB, IC, R any](
	first Transducer[SB, SC, IB, IC, R],
	second Transducer[SA, SB, IA, IB, R],
) Transducer[SA, SC, IA, IC, R] {
	return core.TransducerFunc[SA, SC, IA, IC, R](func(inner core.Reducer[SA, IA, R]) core.Reducer[SC, IC, R] {
		return first.Apply(second.Apply(inner))
	})
}

// Compose3 chains three transducers; items pass through first, second,
// then third.
func Compose3[SA, SB, SC, SD, IA, IB, IC, ID, R any](
	first Transducer[SC, SD, IC, ID, R],
	second Transducer[SB, SC, IB, IC, R],
	third Transducer[SA, SB, IA, IB, R],
) Transducer[SA, SD, IA, ID, R] {
	return Compose(first, Compose(second, third))
}
