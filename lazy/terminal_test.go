package lazy_test

import (
	"errors"
	"iter"
	"maps"
	"slices"
	"testing"

	"chainiter/lazy"
	"chainiter/seqs"
)

func TestCollect(t *testing.T) {
	base := numbers()
	c := lazy.FromSlice(base).Map(func(n int) int { return n + 1 })

	got, err := c.Collect()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !slices.Equal(got, []int{2, 3, 4, 5, 6, 7}) {
		t.Errorf("Collect mismatch: got %v", got)
	}
	if _, err := c.Collect(); !errors.Is(err, lazy.ErrExhausted) {
		t.Errorf("Expected ErrExhausted on second Collect, got %v", err)
	}

	t.Run("EmptyResult", func(t *testing.T) {
		got, err := lazy.FromSlice(base).Skip(6).Collect()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Expected empty result, got %v", got)
		}
	})

	t.Run("Into", func(t *testing.T) {
		got, err := lazy.CollectInto(lazy.FromSlice(base), slices.Collect[int])
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !slices.Equal(got, base) {
			t.Errorf("CollectInto mismatch: got %v", got)
		}
	})

	t.Run("IntoEarlyStop", func(t *testing.T) {
		c := lazy.FromSlice(base)
		first, err := lazy.CollectInto(c, func(s iter.Seq[int]) int {
			v, _ := seqs.First(s)
			return v
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if first != 1 {
			t.Errorf("Expected 1, got %d", first)
		}
		if !c.Exhausted() {
			t.Error("Expected chain to be exhausted after CollectInto")
		}
	})

	t.Run("Set", func(t *testing.T) {
		c := lazy.FromSlice(base).
			Filter(func(n int) bool { return n%2 != 0 }).
			Map(func(n int) int { return n + 6 })
		got, err := lazy.CollectSet(c)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want := map[int]struct{}{7: {}, 9: {}, 11: {}}
		if !maps.Equal(got, want) {
			t.Errorf("CollectSet mismatch: got %v", got)
		}
		if _, err := lazy.CollectSet(c); !errors.Is(err, lazy.ErrExhausted) {
			t.Errorf("Expected ErrExhausted, got %v", err)
		}
	})

	assertUntouched(t, base)
}

func TestNextChunk(t *testing.T) {
	base := numbers()
	c := lazy.FromSlice(base)

	if got := c.NextChunk(4); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("first chunk mismatch: got %v", got)
	}
	if got := c.NextChunk(4); !slices.Equal(got, []int{5, 6}) {
		t.Errorf("second chunk mismatch: got %v", got)
	}
	if got := c.NextChunk(4); len(got) != 0 {
		t.Errorf("Expected empty chunk, got %v", got)
	}
	if _, err := c.Collect(); !errors.Is(err, lazy.ErrExhausted) {
		t.Errorf("Expected ErrExhausted, got %v", err)
	}
	assertUntouched(t, base)
}

func TestCount(t *testing.T) {
	base := numbers()
	c := lazy.FromSlice(base)
	if got := c.Count(); got != 6 {
		t.Errorf("Count mismatch: got %d", got)
	}
	if _, err := lazy.CollectSet(c); !errors.Is(err, lazy.ErrExhausted) {
		t.Errorf("Expected ErrExhausted, got %v", err)
	}
	if got := c.Count(); got != 0 {
		t.Errorf("Expected 0 on exhausted chain, got %d", got)
	}
	assertUntouched(t, base)
}

func TestAllAny(t *testing.T) {
	base := numbers()

	if !lazy.FromSlice(base).All(func(n int) bool { return n < 7 }) {
		t.Error("Expected All(n < 7) to be true")
	}
	if lazy.FromSlice(base).All(func(n int) bool { return n < 6 }) {
		t.Error("Expected All(n < 6) to be false")
	}
	if !lazy.FromSlice(base).Any(func(n int) bool { return n == 3 }) {
		t.Error("Expected Any(n == 3) to be true")
	}
	if lazy.FromSlice(base).Any(func(n int) bool { return n == 9 }) {
		t.Error("Expected Any(n == 9) to be false")
	}
	if !lazy.Of[int]().All(isEven) {
		t.Error("Expected All on empty chain to be true")
	}
	if lazy.Of[int]().Any(isEven) {
		t.Error("Expected Any on empty chain to be false")
	}

	c := lazy.FromSlice(base)
	c.Any(func(n int) bool { return n < 7 })
	if _, err := c.Collect(); !errors.Is(err, lazy.ErrExhausted) {
		t.Errorf("Expected ErrExhausted after Any, got %v", err)
	}

	c = lazy.FromSlice(base)
	c.All(func(n int) bool { return n < 7 })
	if _, err := c.Collect(); !errors.Is(err, lazy.ErrExhausted) {
		t.Errorf("Expected ErrExhausted after All, got %v", err)
	}

	// Short-circuits on an infinite source.
	if !lazy.Wrap(seqs.Iterate(1, func(n int) int { return n + 1 })).Any(func(n int) bool { return n > 100 }) {
		t.Error("Expected Any to find an element on an infinite chain")
	}
	assertUntouched(t, base)
}

func TestFindFirst(t *testing.T) {
	base := numbers()
	c := lazy.FromSlice(base)
	got, err := c.FindFirst(func(n int) bool { return n/2 == 2 })
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != 4 {
		t.Errorf("FindFirst mismatch: got %d", got)
	}
	if _, err := c.Next(); !errors.Is(err, lazy.ErrExhausted) {
		t.Errorf("Expected ErrExhausted, got %v", err)
	}

	if _, err := lazy.FromSlice(base).FindFirst(func(n int) bool { return n > 10 }); !errors.Is(err, lazy.ErrExhausted) {
		t.Errorf("Expected ErrExhausted for missing element, got %v", err)
	}
	assertUntouched(t, base)
}

func TestIndex(t *testing.T) {
	base := numbers()
	c := lazy.FromSlice(base)
	got, err := c.Index(func(n int) bool { return n/2 == 2 })
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != 3 {
		t.Errorf("Index mismatch: got %d", got)
	}
	if _, err := c.Next(); !errors.Is(err, lazy.ErrExhausted) {
		t.Errorf("Expected ErrExhausted, got %v", err)
	}

	if _, err := lazy.FromSlice(base).Index(func(n int) bool { return n > 10 }); !errors.Is(err, lazy.ErrExhausted) {
		t.Errorf("Expected ErrExhausted for missing element, got %v", err)
	}
	assertUntouched(t, base)
}

func TestNth(t *testing.T) {
	base := numbers()
	for i, want := range base {
		got, err := lazy.FromSlice(base).Nth(i)
		if err != nil {
			t.Fatalf("Nth(%d): unexpected error: %v", i, err)
		}
		if got != want {
			t.Errorf("Nth(%d): got %d, want %d", i, got, want)
		}
	}

	for _, i := range []int{6, 100, -1} {
		_, err := lazy.FromSlice(base).Nth(i)
		if !errors.Is(err, lazy.ErrOutOfRange) {
			t.Errorf("Nth(%d): expected ErrOutOfRange, got %v", i, err)
		}
		if errors.Is(err, lazy.ErrExhausted) {
			t.Errorf("Nth(%d): out of range must not be reported as exhaustion", i)
		}
	}

	c := lazy.FromSlice(base)
	if got, _ := c.Nth(1); got != 2 {
		t.Errorf("Nth(1): got %d", got)
	}
	if _, err := c.Collect(); !errors.Is(err, lazy.ErrExhausted) {
		t.Errorf("Expected ErrExhausted after Nth, got %v", err)
	}
	assertUntouched(t, base)
}

func TestLast(t *testing.T) {
	base := numbers()
	got, err := lazy.FromSlice(base).Last()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != 6 {
		t.Errorf("Last mismatch: got %d", got)
	}
	if _, err := lazy.Of[int]().Last(); !errors.Is(err, lazy.ErrExhausted) {
		t.Errorf("Expected ErrExhausted on empty chain, got %v", err)
	}
	assertUntouched(t, base)
}

func TestForEach(t *testing.T) {
	var got []int
	lazy.FromSlice(numbers()).ForEach(func(n int) { got = append(got, n*n) })
	if !slices.Equal(got, []int{1, 4, 9, 16, 25, 36}) {
		t.Errorf("ForEach mismatch: got %v", got)
	}
}

func TestFoldl(t *testing.T) {
	base := numbers()
	add := func(acc, n int) int { return acc + n }

	if got := lazy.Foldl(lazy.FromSlice(base), 0, add); got != 21 {
		t.Errorf("Foldl mismatch: got %d", got)
	}

	t.Run("Until", func(t *testing.T) {
		c := lazy.FromSlice(base)
		got := lazy.FoldlUntil(c, 0, add, func(acc int) bool { return acc == 6 })
		if got != 6 {
			t.Errorf("FoldlUntil mismatch: got %d", got)
		}
		next, err := c.Next()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if next != 4 {
			t.Errorf("Expected cursor just past the stop, got %d", next)
		}
	})

	t.Run("UntilNeverMet", func(t *testing.T) {
		c := lazy.FromSlice(base)
		got := lazy.FoldlUntil(c, 0, add, func(acc int) bool { return acc == 5 })
		if got != 21 {
			t.Errorf("Expected full fold when target is overshot, got %d", got)
		}
		if !c.Exhausted() {
			t.Error("Expected chain to be exhausted")
		}
	})

	t.Run("UntilThreshold", func(t *testing.T) {
		c := lazy.FromSlice(base)
		got := lazy.FoldlUntil(c, 0, add, func(acc int) bool { return acc >= 5 })
		if got != 6 {
			t.Errorf("FoldlUntil mismatch: got %d", got)
		}
	})

	t.Run("Accumulator", func(t *testing.T) {
		got := lazy.Foldl(lazy.FromSlice(base), "", func(acc string, n int) string {
			return acc + string(rune('0'+n))
		})
		if got != "123456" {
			t.Errorf("Foldl mismatch: got %q", got)
		}
	})

	assertUntouched(t, base)
}

func TestAggregates(t *testing.T) {
	base := numbers()

	if got := lazy.Sum(lazy.FromSlice(base)); got != 21 {
		t.Errorf("Sum mismatch: got %d", got)
	}
	if got := lazy.Sum(lazy.Of[int]()); got != 0 {
		t.Errorf("Sum of empty mismatch: got %d", got)
	}
	if got, err := lazy.Max(lazy.FromSlice(base)); err != nil || got != 6 {
		t.Errorf("Max mismatch: got %d, %v", got, err)
	}
	if got, err := lazy.Min(lazy.FromSlice(base)); err != nil || got != 1 {
		t.Errorf("Min mismatch: got %d, %v", got, err)
	}
	if got, err := lazy.Avg(lazy.FromSlice(base)); err != nil || got != 3 {
		t.Errorf("integer Avg mismatch: got %d, %v", got, err)
	}
	if got, err := lazy.Avg(lazy.Of(1.0, 2.0, 3.0, 4.0, 5.0, 6.0)); err != nil || got != 3.5 {
		t.Errorf("float Avg mismatch: got %v, %v", got, err)
	}

	for name, agg := range map[string]func(*lazy.Chain[int]) (int, error){
		"Max": lazy.Max[int],
		"Min": lazy.Min[int],
		"Avg": lazy.Avg[int],
	} {
		if _, err := agg(lazy.Of[int]()); !errors.Is(err, lazy.ErrExhausted) {
			t.Errorf("%s on empty chain: expected ErrExhausted, got %v", name, err)
		}
	}

	assertUntouched(t, base)
}
