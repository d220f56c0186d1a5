/*
Package seqs provides lazy building blocks for Go 1.23+ iterators (iter.Seq).

Every function returns a new sequence that does no work until it is ranged over,
and pulls from its input only as far as the consumer asks:

  - **Transformations**: [Map], [MapIf], [MapWhile], [Filter], [Peek], [Scan], [Distinct].
  - **Combining**: [Concat], [Zip], [Enumerate], [Intersperse], [Flatten].
  - **Flow Control**: [Take], [Skip], [TakeWhile], [DropWhile], [StepBy].
  - **Sinks**: [First], [Last], [Any], [All], [Count], [Index], [Reduce], [Sum], [Avg].

The lazy package builds its fluent Chain type on top of these.

# Flattening

[Flatten] decides at run time whether a value is nested:

	nested := []any{1, []any{2, []int{3, 4}}}
	for v := range seqs.Flatten(slices.Values(nested), nil) {
		fmt.Println(v) // 1 2 3 4
	}

Pass a stop function to keep selected nested values whole.
*/
package seqs
