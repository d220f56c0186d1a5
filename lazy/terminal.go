package lazy

import (
	"fmt"
	"iter"

	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/go-softwarelab/common/pkg/types"

	"chainiter/seqs"
)

// NextChunk pulls up to n elements. It returns fewer, possibly none, when the
// chain runs dry first. Elements left over stay pullable.
func (c *Chain[T]) NextChunk(n int) []T {
	chunk := make([]T, 0, max(n, 0))
	for len(chunk) < n {
		v, ok := c.pull()
		if !ok {
			break
		}
		chunk = append(chunk, v)
	}
	return chunk
}

// Collect drains the chain into a slice.
// It returns ErrExhausted if the chain was already exhausted.
func (c *Chain[T]) Collect() ([]T, error) {
	if c.exhausted {
		return nil, ErrExhausted
	}
	out := make([]T, 0, max(c.size, 0))
	for v := range c.Values() {
		out = append(out, v)
	}
	return out, nil
}

// CollectInto drains c through build, for example slices.Collect or a set builder.
// It returns ErrExhausted if c was already exhausted. c is exhausted afterwards,
// even when build stops early.
func CollectInto[T, C any](c *Chain[T], build func(iter.Seq[T]) C) (C, error) {
	if c.exhausted {
		var zero C
		return zero, ErrExhausted
	}
	out := build(c.Values())
	c.finish("chain closed")
	return out, nil
}

// CollectSet drains c into a set.
func CollectSet[T comparable](c *Chain[T]) (map[T]struct{}, error) {
	return CollectInto(c, func(s iter.Seq[T]) map[T]struct{} {
		set := make(map[T]struct{})
		for v := range s {
			set[v] = struct{}{}
		}
		return set
	})
}

// CollectMap drains a chain of pairs into a map. Later keys overwrite earlier ones.
func CollectMap[K comparable, V any](c *Chain[types.Tuple2[K, V]]) (map[K]V, error) {
	return CollectInto(c, func(s iter.Seq[types.Tuple2[K, V]]) map[K]V {
		m := make(map[K]V)
		for p := range s {
			m[p.A] = p.B
		}
		return m
	})
}

// Count drains the chain and returns how many elements it held.
func (c *Chain[T]) Count() int {
	return seqs.Count(c.Values())
}

// ForEach drains the chain, calling action on every element.
func (c *Chain[T]) ForEach(action func(T)) {
	for v := range c.Values() {
		action(v)
	}
}

// All reports whether every remaining element satisfies predicate; true when none remain.
// It stops at the first failure. The chain is exhausted afterwards.
func (c *Chain[T]) All(predicate func(T) bool) bool {
	ok := seqs.All(c.Values(), predicate)
	c.finish("chain closed")
	return ok
}

// Any reports whether some remaining element satisfies predicate; false when none remain.
// It stops at the first match. The chain is exhausted afterwards.
func (c *Chain[T]) Any(predicate func(T) bool) bool {
	ok := seqs.Any(c.Values(), predicate)
	c.finish("chain closed")
	return ok
}

// FindFirst returns the first element satisfying predicate, or ErrExhausted
// if there is none. The chain is exhausted afterwards.
func (c *Chain[T]) FindFirst(predicate func(T) bool) (T, error) {
	v, ok := seqs.First(seqs.Filter(c.Values(), predicate))
	c.finish("chain closed")
	if !ok {
		return v, ErrExhausted
	}
	return v, nil
}

// Index returns the position, counted from the current element, of the first
// element satisfying predicate, or ErrExhausted. The chain is exhausted afterwards.
func (c *Chain[T]) Index(predicate func(T) bool) (int, error) {
	i := seqs.Index(c.Values(), predicate)
	c.finish("chain closed")
	if i < 0 {
		return i, ErrExhausted
	}
	return i, nil
}

// Nth returns the element at zero-based position i, counted from the current element.
// It returns an error wrapping ErrOutOfRange when fewer than i+1 elements remain.
// The chain is exhausted afterwards.
func (c *Chain[T]) Nth(i int) (T, error) {
	var zero T
	if i < 0 {
		c.finish("chain closed")
		return zero, fmt.Errorf("%w: negative index %d", ErrOutOfRange, i)
	}
	pos := 0
	for v := range c.Values() {
		if pos == i {
			c.finish("chain closed")
			return v, nil
		}
		pos++
	}
	return zero, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, pos)
}

// Last drains the chain and returns its final element, or ErrExhausted if none remained.
func (c *Chain[T]) Last() (T, error) {
	v, ok := seqs.Last(c.Values())
	if !ok {
		return v, ErrExhausted
	}
	return v, nil
}

// Foldl folds the remaining elements from the left and drains the chain.
func Foldl[T, A any](c *Chain[T], accumulator A, f func(A, T) A) A {
	return seqs.Reduce(c.Values(), accumulator, f)
}

// FoldlUntil folds from the left until stop reports true for the accumulator.
// The element that triggered the stop is consumed; the ones after it stay pullable.
func FoldlUntil[T, A any](c *Chain[T], accumulator A, f func(A, T) A, stop func(A) bool) A {
	for {
		v, ok := c.pull()
		if !ok {
			return accumulator
		}
		accumulator = f(accumulator, v)
		if stop(accumulator) {
			return accumulator
		}
	}
}

// Sum drains the chain and adds up its elements. It is zero for an empty chain.
func Sum[T seqs.Number](c *Chain[T]) T {
	return seqs.Sum(c.Values())
}

// Avg drains the chain and returns the mean of its elements in T's arithmetic,
// so integer chains get integer division. It returns ErrExhausted when empty.
func Avg[T seqs.Number](c *Chain[T]) (T, error) {
	v, ok := seqs.Avg(c.Values())
	if !ok {
		return v, ErrExhausted
	}
	return v, nil
}

// Max drains the chain and returns its largest element, or ErrExhausted when empty.
func Max[T types.Ordered](c *Chain[T]) (T, error) {
	return seq.Max(c.Values()).OrError(ErrExhausted)
}

// Min drains the chain and returns its smallest element, or ErrExhausted when empty.
func Min[T types.Ordered](c *Chain[T]) (T, error) {
	return seq.Min(c.Values()).OrError(ErrExhausted)
}
