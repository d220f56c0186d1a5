package lazy

import (
	"iter"
	"slices"

	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/rs/zerolog"
)

const unknownSize = -1

// Chain is a single-pass cursor over a lazily produced sequence.
//
// Combinators compose new stages onto the pending pipeline and return the same
// Chain; nothing is pulled until a terminal operation or Next asks for it.
// Once the underlying sequence runs dry the Chain is exhausted for good.
//
// A Chain holds no locks. Confine it to one goroutine at a time.
type Chain[T any] struct {
	seq  iter.Seq[T]
	next func() (T, bool)

	// stops of every iter.Pull cursor opened so far, innermost first.
	stops []func()

	exhausted bool

	// size is the number of elements left, or unknownSize.
	size   int
	pulled int

	log  zerolog.Logger
	name string
}

func newChain[T any](s iter.Seq[T], size int, opts []Option) *Chain[T] {
	cfg := newConfig(opts)
	c := &Chain[T]{seq: s, size: size, log: cfg.logger, name: cfg.name}
	if s == nil {
		c.seq = seq.Empty[T]()
		c.size = 0
	}
	return c
}

// pull advances the cursor, opening it on first use.
func (c *Chain[T]) pull() (T, bool) {
	if c.exhausted {
		var zero T
		return zero, false
	}
	if c.next == nil {
		next, stop := iter.Pull(c.seq)
		c.next = next
		c.stops = append(c.stops, stop)
	}
	v, ok := c.next()
	if !ok {
		c.finish("chain exhausted")
		return v, false
	}
	c.pulled++
	if c.size > 0 {
		c.size--
	}
	return v, true
}

// source returns the elements not pulled yet as a sequence, without pulling any of them.
func (c *Chain[T]) source() iter.Seq[T] {
	if c.next == nil {
		return c.seq
	}
	next := c.next
	return func(yield func(T) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// compose layers stage over the remaining elements. resize maps a known
// remaining count to the count after the stage, or to unknownSize.
func (c *Chain[T]) compose(stage func(iter.Seq[T]) iter.Seq[T], resize func(int) int) *Chain[T] {
	if c.exhausted {
		return c
	}
	c.seq = stage(c.source())
	c.next = nil
	if c.size != unknownSize {
		c.size = resize(c.size)
	}
	return c
}

// moveTo hands the cursor of c over to a new Chain of another element type.
// c is left exhausted.
func moveTo[T, R any](c *Chain[T], stage func(iter.Seq[T]) iter.Seq[R], resize func(int) int) *Chain[R] {
	out := &Chain[R]{size: unknownSize, log: c.log, name: c.name}
	if c.exhausted {
		out.exhausted = true
		out.size = 0
		return out
	}
	out.seq = stage(c.source())
	out.stops = c.stops
	if c.size != unknownSize {
		out.size = resize(c.size)
	}

	c.stops = nil
	c.next = nil
	c.seq = nil
	c.exhausted = true
	c.size = 0
	c.log.Debug().Str("chain", c.name).Int("pulled", c.pulled).Msg("chain moved")
	return out
}

// finish marks c exhausted and releases its cursors.
func (c *Chain[T]) finish(msg string) {
	if c.exhausted {
		return
	}
	c.exhausted = true
	c.size = 0
	c.release()
	c.log.Debug().Str("chain", c.name).Int("pulled", c.pulled).Msg(msg)
}

func (c *Chain[T]) release() {
	for i := len(c.stops) - 1; i >= 0; i-- {
		c.stops[i]()
	}
	c.stops = nil
	c.next = nil
	c.seq = nil
}

// Next returns the next element, or ErrExhausted once nothing is left.
func (c *Chain[T]) Next() (T, error) {
	v, ok := c.pull()
	if !ok {
		return v, ErrExhausted
	}
	return v, nil
}

// Values returns an iterator over the remaining elements, for use with range.
// Breaking out of the loop leaves the rest of the chain pullable.
func (c *Chain[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.pull()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Close stops the chain without draining it and releases its pull cursors.
// Chains abandoned before running dry should be closed.
func (c *Chain[T]) Close() {
	c.finish("chain closed")
}

// Exhausted reports whether the chain has run dry.
func (c *Chain[T]) Exhausted() bool {
	return c.exhausted
}

// Len reports how many elements remain without consuming them.
//
// When the count cannot be derived from the source and the stages composed on
// it, the remainder is buffered and replayed. Len never returns on an infinite chain.
func (c *Chain[T]) Len() int {
	if c.exhausted {
		return 0
	}
	if c.size != unknownSize {
		return c.size
	}
	buf := slices.Collect(c.source())
	c.release()
	c.seq = seq.FromSlice(buf)
	c.size = len(buf)
	c.log.Debug().Str("chain", c.name).Int("buffered", c.size).Msg("chain buffered")
	return c.size
}
