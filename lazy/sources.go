package lazy

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/go-softwarelab/common/pkg/types"
)

// Wrap returns a Chain over s, which may be finite or infinite.
// A nil s is treated as empty.
func Wrap[T any](s iter.Seq[T], opts ...Option) *Chain[T] {
	return newChain(s, unknownSize, opts)
}

// FromSlice returns a Chain over the elements of s. The slice is never modified,
// and its length makes Len free until a size-changing stage like Filter is composed.
func FromSlice[S ~[]T, T any](s S, opts ...Option) *Chain[T] {
	return newChain(seq.FromSlice(s), len(s), opts)
}

func Of[T any](values ...T) *Chain[T] {
	return FromSlice(values)
}

// FromMap returns a Chain over the key/value pairs of m in Go map order.
func FromMap[K comparable, V any](m map[K]V, opts ...Option) *Chain[types.Tuple2[K, V]] {
	return newChain(pairs(maps.All(m)), len(m), opts)
}

// FromSortedMap returns a Chain over the key/value pairs of m in ascending key order.
func FromSortedMap[K cmp.Ordered, V any](m map[K]V, opts ...Option) *Chain[types.Tuple2[K, V]] {
	keys := slices.Sorted(maps.Keys(m))
	items := func(yield func(K, V) bool) {
		for _, k := range keys {
			if !yield(k, m[k]) {
				return
			}
		}
	}
	return newChain(pairs(items), len(keys), opts)
}

// FromSeq2 returns a Chain over the pairs produced by s.
func FromSeq2[K, V any](s iter.Seq2[K, V], opts ...Option) *Chain[types.Tuple2[K, V]] {
	if s == nil {
		return newChain[types.Tuple2[K, V]](nil, 0, opts)
	}
	return newChain(pairs(s), unknownSize, opts)
}

// FromChannel returns a Chain over the values received from ch until it is closed.
func FromChannel[T any](ch <-chan T, opts ...Option) *Chain[T] {
	return newChain[T](func(yield func(T) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}, unknownSize, opts)
}

func pairs[K, V any](s iter.Seq2[K, V]) iter.Seq[types.Tuple2[K, V]] {
	return func(yield func(types.Tuple2[K, V]) bool) {
		for k, v := range s {
			if !yield(types.NewTuple2(k, v)) {
				return
			}
		}
	}
}
