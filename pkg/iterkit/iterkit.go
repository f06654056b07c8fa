// Package iterkit provide iterator helpers around the iter.Seq and pull style iterators.
//
// # Summary
//
// An Iterator's goal is to decouple the origin of the data from the consumer who uses that data.
// An iterator represents an iterable list of element,
// which length is not known until it is fully iterated, thus can range from zero to infinity.
// Helpers in this package never iterate further than what their consumer asks for,
// so they are safe to use with infinite sequences.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package iterkit

import (
	"iter"
)

// Collect will iterate through the whole sequence and collect the values into a slice.
//
// # WARNING
//
// It does not work with infinite iterators, use Head to cap them first.
func Collect[T any](i iter.Seq[T]) []T {
	if i == nil {
		return nil
	}
	var vs = make([]T, 0)
	for v := range i {
		vs = append(vs, v)
	}
	return vs
}

// Head takes the first n element, similarly how the coreutils "head" app works.
func Head[T any](i iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		var index int
		for v := range i {
			if !yield(v) {
				return
			}
			index++
			if n <= index {
				return
			}
		}
	}
}

// Count will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in an iterator but don't want to do anything else.
func Count[T any](i iter.Seq[T]) int {
	var total int
	for range i {
		total++
	}
	return total
}

// FromPull turns a pull style next function into an iter.Seq.
// The stop functions are called when the iteration finishes, including when the consumer breaks early.
func FromPull[T any](next func() (T, bool), stops ...func()) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, stop := range stops {
			defer stop()
		}
		for {
			v, ok := next()
			if !ok {
				break
			}
			if !yield(v) {
				return
			}
		}
	}
}
