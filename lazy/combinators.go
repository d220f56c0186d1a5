package lazy

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/types"

	"chainiter/seqs"
)

func sameSize(n int) int { return n }

func sizeUnknown(int) int { return unknownSize }

// Map transforms each element with f.
func (c *Chain[T]) Map(f func(T) T) *Chain[T] {
	return c.compose(func(s iter.Seq[T]) iter.Seq[T] {
		return seqs.Map(s, f)
	}, sameSize)
}

// Filter keeps the elements satisfying predicate.
func (c *Chain[T]) Filter(predicate func(T) bool) *Chain[T] {
	return c.compose(func(s iter.Seq[T]) iter.Seq[T] {
		return seqs.Filter(s, predicate)
	}, sizeUnknown)
}

// MapIf transforms only the elements satisfying constraint and passes the others through.
func (c *Chain[T]) MapIf(constraint func(T) bool, transformation func(T) T) *Chain[T] {
	return c.compose(func(s iter.Seq[T]) iter.Seq[T] {
		return seqs.MapIf(s, constraint, transformation)
	}, sameSize)
}

// MapWhile transforms elements while constraint holds. After the first element
// failing constraint, everything passes through unchanged.
func (c *Chain[T]) MapWhile(constraint func(T) bool, transformation func(T) T) *Chain[T] {
	return c.compose(func(s iter.Seq[T]) iter.Seq[T] {
		return seqs.MapWhile(s, constraint, transformation)
	}, sameSize)
}

// Chain continues with other once c runs dry.
func (c *Chain[T]) Chain(other iter.Seq[T]) *Chain[T] {
	return c.compose(func(s iter.Seq[T]) iter.Seq[T] {
		return seqs.Concat(s, other)
	}, sizeUnknown)
}

func (c *Chain[T]) Take(n int) *Chain[T] {
	return c.compose(func(s iter.Seq[T]) iter.Seq[T] {
		return seqs.Take(s, n)
	}, func(size int) int {
		return min(size, max(n, 0))
	})
}

// TakeWhile yields elements while predicate holds and ends the chain at the first
// failure. Later elements are dropped even if they would satisfy predicate.
func (c *Chain[T]) TakeWhile(predicate func(T) bool) *Chain[T] {
	return c.compose(func(s iter.Seq[T]) iter.Seq[T] {
		return seqs.TakeWhile(s, predicate)
	}, sizeUnknown)
}

func (c *Chain[T]) Skip(n int) *Chain[T] {
	return c.compose(func(s iter.Seq[T]) iter.Seq[T] {
		return seqs.Skip(s, n)
	}, func(size int) int {
		return max(size-max(n, 0), 0)
	})
}

// SkipWhile drops leading elements while predicate holds, then yields the first
// failing element and everything after it.
func (c *Chain[T]) SkipWhile(predicate func(T) bool) *Chain[T] {
	return c.compose(func(s iter.Seq[T]) iter.Seq[T] {
		return seqs.DropWhile(s, predicate)
	}, sizeUnknown)
}

// StepBy yields the first element and every step-th one after it.
// It panics if step is less than 1.
func (c *Chain[T]) StepBy(step int) *Chain[T] {
	if step < 1 {
		panic("lazy: StepBy step must be at least 1")
	}
	return c.compose(func(s iter.Seq[T]) iter.Seq[T] {
		return seqs.StepBy(s, step)
	}, func(size int) int {
		return (size + step - 1) / step
	})
}

// Intersperse yields sep after every element, the last one included.
func (c *Chain[T]) Intersperse(sep T) *Chain[T] {
	return c.compose(func(s iter.Seq[T]) iter.Seq[T] {
		return seqs.Intersperse(s, sep)
	}, func(size int) int {
		return 2 * size
	})
}

// Inspect calls action on each element as it passes through.
func (c *Chain[T]) Inspect(action func(T)) *Chain[T] {
	return c.compose(func(s iter.Seq[T]) iter.Seq[T] {
		return seqs.Peek(s, action)
	}, sameSize)
}

// Discard drains and drops everything left, leaving c exhausted.
func (c *Chain[T]) Discard() *Chain[T] {
	for range c.Values() {
	}
	return c
}

// Distinct drops elements already seen earlier in the chain.
func Distinct[T comparable](c *Chain[T]) *Chain[T] {
	return c.compose(func(s iter.Seq[T]) iter.Seq[T] {
		return seqs.Distinct(s)
	}, sizeUnknown)
}

// Map moves c into a Chain of another element type, transforming each element with f.
// c is exhausted afterwards.
func Map[T, R any](c *Chain[T], f func(T) R) *Chain[R] {
	return moveTo(c, func(s iter.Seq[T]) iter.Seq[R] {
		return seqs.Map(s, f)
	}, sameSize)
}

// Zip pairs each element of c with one from other, ending at the shorter of the two.
// c is exhausted afterwards.
func Zip[T, U any](c *Chain[T], other iter.Seq[U]) *Chain[types.Tuple2[T, U]] {
	return moveTo(c, func(s iter.Seq[T]) iter.Seq[types.Tuple2[T, U]] {
		return seqs.Zip(s, other)
	}, sizeUnknown)
}

// Enumerate pairs each element with its zero-based index. c is exhausted afterwards.
func Enumerate[T any](c *Chain[T]) *Chain[types.Tuple2[int, T]] {
	return moveTo(c, func(s iter.Seq[T]) iter.Seq[types.Tuple2[int, T]] {
		return pairs(seqs.Enumerate(s))
	}, sameSize)
}

// Scan yields the running accumulation of c. c is exhausted afterwards.
func Scan[T, A any](c *Chain[T], initial A, f func(A, T) A) *Chain[A] {
	return moveTo(c, func(s iter.Seq[T]) iter.Seq[A] {
		return seqs.Scan(s, initial, f)
	}, sameSize)
}

// Flatten unnests the elements of c depth-first into a Chain[any].
//
// Slices, arrays, iter.Seq[any] and values with a Values() iter.Seq[any] method
// (a *Chain[any], for one) are unnested at any depth. When stop is non-nil and
// reports true for a value, the value is kept whole. c is exhausted afterwards.
func Flatten[T any](c *Chain[T], stop func(any) bool) *Chain[any] {
	return moveTo(c, func(s iter.Seq[T]) iter.Seq[any] {
		return seqs.Flatten(seqs.Map(s, func(v T) any { return v }), stop)
	}, sizeUnknown)
}
