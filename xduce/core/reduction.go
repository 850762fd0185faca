package core

// Reduction is the per-step signal produced by a reducer's step functions.
// It exists in one of two states:
//   - Continue: traversal should proceed; Value() is the new accumulator
//   - Reduced: traversal must stop immediately; Value() is the final
//     (pre-completion) result
//
// A Reduction is produced fresh on every step and consumed immediately by
// the driving traversal; it is never stored across steps.
type Reduction[R any] struct {
	value   R
	reduced bool
}

// Continue creates a Reduction signaling that traversal should proceed
// with value as the new accumulator.
func Continue[R any](value R) Reduction[R] {
	return Reduction[R]{value: value}
}

// Reduced creates a Reduction signaling that traversal must stop
// immediately with value as the final accumulator.
func Reduced[R any](value R) Reduction[R] {
	return Reduction[R]{value: value, reduced: true}
}

// IsReduced returns true if this Reduction requests early termination.
func (r Reduction[R]) IsReduced() bool {
	return r.reduced
}

// Value returns the accumulator carried by this Reduction. It is present
// in both states.
func (r Reduction[R]) Value() R {
	return r.value
}
