package seqs

import "iter"

type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

func Sum[T Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

// Avg returns the arithmetic mean of seq computed in T, so integer element
// types get integer division. It reports false for an empty sequence.
func Avg[T Number](seq iter.Seq[T]) (T, bool) {
	var total T
	count := 0
	for v := range seq {
		total += v
		count++
	}
	if count == 0 {
		var zero T
		return zero, false
	}
	return total / T(count), true
}
