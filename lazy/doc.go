/*
Package lazy provides Chain, a fluent, single-pass wrapper over any iter.Seq.

Combinators such as [Chain.Filter], [Chain.Map], [Chain.Take] and [Chain.StepBy]
compose deferred stages and return the same Chain, so calls read left to right:

	odd, _ := lazy.Of(1, 2, 3, 4, 5, 6).
		Filter(func(n int) bool { return n%2 != 0 }).
		Map(func(n int) int { return n + 6 }).
		Collect() // [7 9 11]

Nothing is pulled from the source until a terminal operation ([Chain.Collect],
[Chain.Count], [Sum], [Foldl], ...) or [Chain.Next] asks for it, and the source
collection is never modified.

Go methods cannot introduce type parameters, so stages that change the element
type are package functions: [Map], [Zip], [Enumerate], [Scan] and [Flatten]. They
move the cursor into the returned Chain and leave the argument exhausted.

# Exhaustion

A Chain is a cursor, not a collection. Once its source runs dry it is exhausted
for good: [Chain.Next] returns [ErrExhausted] on every later call, and ranging
over [Chain.Values] yields nothing. [Chain.Nth] reports [ErrOutOfRange] instead,
since asking for a missing index is a different mistake from running out.

Short-circuiting terminals ([Chain.All], [Chain.Any], [Chain.FindFirst],
[Chain.Index], [Chain.Nth]) stop pulling as soon as they know the answer and
close the chain. [Chain.NextChunk] and [FoldlUntil] keep the cursor where they
stopped.

# Concurrency

A Chain holds no locks. It must be owned by one goroutine at a time; concurrent
calls on the same Chain are undefined.

# Logging

Lifecycle events (exhausted, closed, moved, buffered) are written at debug
level to the zerolog.Logger given by [WithLogger].
*/
package lazy
