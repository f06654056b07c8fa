package iterkit

import (
	"io"
	"iter"

	"go.llib.dev/sequence/pkg/errorkit"
)

// PullIter define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
type PullIter[V any] interface {
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene
	// for all other cases where the underling io is handled on a higher level, it should simply return nil
	io.Closer
	// Err return the error cause.
	Err() error
}

// ErrSeq is an iterator that can tell if a currently returned value has an issue or not.
type ErrSeq[T any] = iter.Seq2[T, error]

// FromPullIter turns a PullIter into a single use ErrSeq.
// Iteration and close errors are yielded as the last element.
func FromPullIter[T any](itr PullIter[T]) ErrSeq[T] {
	return func(yield func(T, error) bool) {
		defer itr.Close()
		for itr.Next() {
			if !yield(itr.Value(), nil) {
				return
			}
		}
		var zero T
		if err := errorkit.Merge(itr.Err(), itr.Close()); err != nil {
			yield(zero, err)
		}
	}
}

// CollectPullIter will iterate through the PullIter and collect its values.
// The iterator is closed afterwards.
func CollectPullIter[T any](itr PullIter[T]) (vs []T, rErr error) {
	if itr == nil {
		return nil, nil
	}
	defer errorkit.Finish(&rErr, itr.Close)
	vs = make([]T, 0)
	for itr.Next() {
		vs = append(vs, itr.Value())
	}
	return vs, itr.Err()
}
