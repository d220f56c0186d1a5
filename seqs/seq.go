package seqs

import "iter"

// Filter applies predicate to each element of seq, yielding only those that satisfy the predicate.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Map applies transform to each element of seq, yielding the transformed elements.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// MapIf applies transform only to the elements that satisfy constraint.
// All other elements are passed through unchanged.
func MapIf[T any](seq iter.Seq[T], constraint func(T) bool, transform func(T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if constraint(v) {
				v = transform(v)
			}
			if !yield(v) {
				return
			}
		}
	}
}

// MapWhile applies transform to leading elements as long as constraint holds.
// The first element failing constraint switches the mapping off for good:
// it and everything after it are passed through unchanged.
func MapWhile[T any](seq iter.Seq[T], constraint func(T) bool, transform func(T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		mapping := true
		for v := range seq {
			if mapping && !constraint(v) {
				mapping = false
			}
			if mapping {
				v = transform(v)
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Peek performs the provided action on each element of the sequence without modifying it.
// It is useful for debugging (e.g., logging) or side effects.
func Peek[T any](seq iter.Seq[T], action func(T)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			action(v)
			if !yield(v) {
				return
			}
		}
	}
}

// Reduce aggregates the elements of seq using the reducer function, starting from the initial value.
func Reduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for v := range seq {
		acc = reducer(acc, v)
	}
	return acc
}
