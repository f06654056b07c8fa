package seqkit

import "golang.org/x/exp/constraints"

// Iterator is a pull iterator over a Sequence.
// It holds the cursor of a single iteration pass.
type Iterator[T constraints.Integer] struct {
	seq     Sequence[T]
	value   T
	started bool
	done    bool
}

func (i *Iterator[T]) Next() bool {
	if i.done {
		return false
	}
	var (
		v  T
		ok bool
	)
	if i.started {
		v, ok = i.seq.next(i.value)
	} else {
		v, ok = i.seq.first()
		i.started = true
	}
	if !ok {
		i.done = true
		return false
	}
	i.value = v
	return true
}

func (i *Iterator[T]) Value() T {
	return i.value
}

func (i *Iterator[T]) Err() error {
	return nil
}

func (i *Iterator[T]) Close() error {
	i.done = true
	return nil
}
