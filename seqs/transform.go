package seqs

import (
	"iter"
	"reflect"
	"slices"

	"github.com/go-softwarelab/common/pkg/types"
)

func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Zip pairs up elements of seq1 and seq2. It stops as soon as either side runs out.
func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[types.Tuple2[T1, T2]] {
	return func(yield func(types.Tuple2[T1, T2]) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(types.NewTuple2(v1, v2)) {
				return
			}
		}
	}
}

func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// Intersperse yields sep after every element, including the last one.
func Intersperse[T any](seq iter.Seq[T], sep T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v) || !yield(sep) {
				return
			}
		}
	}
}

// Nested is implemented by values that Flatten descends into.
type Nested interface {
	Values() iter.Seq[any]
}

// Flatten unnests seq depth-first.
//
// A value is nested when it implements [Nested], is an iter.Seq[any], or is a slice
// or array. []byte, strings, maps and structs are leaves. When stop is non-nil and
// reports true for a value, that value is yielded as a leaf even if it is nested.
func Flatten(seq iter.Seq[any], stop func(any) bool) iter.Seq[any] {
	return func(yield func(any) bool) {
		flatten(seq, stop, yield)
	}
}

func flatten(seq iter.Seq[any], stop func(any) bool, yield func(any) bool) bool {
	for v := range seq {
		if stop == nil || !stop(v) {
			if inner, ok := unnest(v); ok {
				if !flatten(inner, stop, yield) {
					return false
				}
				continue
			}
		}
		if !yield(v) {
			return false
		}
	}
	return true
}

func unnest(v any) (iter.Seq[any], bool) {
	switch n := v.(type) {
	case nil, []byte:
		return nil, false
	case Nested:
		return n.Values(), true
	case iter.Seq[any]:
		return n, true
	case []any:
		return slices.Values(n), true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	return func(yield func(any) bool) {
		for i := range rv.Len() {
			if !yield(rv.Index(i).Interface()) {
				return
			}
		}
	}, true
}

// Distinct returns a sequence that yields only unique elements.
// It maintains a map of seen elements, so memory usage is proportional to the number of unique elements.
func Distinct[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range seq {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Scan is similar to Reduce, but it yields the accumulated result at each step.
func Scan[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		acc := initial
		for v := range seq {
			acc = reducer(acc, v)
			if !yield(acc) {
				return
			}
		}
	}
}
