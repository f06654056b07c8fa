/*
Package seqkit implements lazy, restartable integer sequences.

A Sequence is defined by a starting value, an optional inclusive end and an interval.
When the end is not set, the sequence is unbounded, and it is up to the consumer
to stop pulling values from it.

	seq, err := seqkit.Range(1, 10, 2)
	for n := range seq.All() {
		fmt.Println(n) // 1, 3, 5, 7, 9
	}

A Sequence is a value type and it is never mutated after construction.
Every call to All or Iterator starts a fresh pass from Start,
so iterating the same Sequence twice, or from multiple goroutines, yields the same values.

The zero value is usable: it counts up from zero by one without an end.
A negative Interval counts downwards, and a sequence whose Interval points away from its End is empty.
A sequence stops at the last value representable by its integer type instead of wrapping around.
*/
package seqkit
