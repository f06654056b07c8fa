// Package generator provides single-use producers that pause at each yield
// and resume on the next request for a value.
//
// The body of a Generator runs lazily on a coroutine made by iter.Pull.
// Nothing executes until the first Next call,
// and each Next resumes the body until its following yield.
package generator

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"go.llib.dev/sequence/pkg/iterkit"
	"go.llib.dev/sequence/pkg/seqkit"
)

// Result is the outcome of a single step.
// When Done is true, Value holds the zero value.
type Result[T any] struct {
	Value T
	Done  bool
}

// Generator is a single-use, pausable producer of values.
// It is not safe for concurrent use.
//
// A Generator that is abandoned before it is exhausted should be closed with Return.
type Generator[T any] struct {
	next  func() (T, bool)
	stop  func()
	state State
}

// New makes a Generator from a body function.
// The body yields values one by one, and should return when yield reports false.
func New[T any](fn func(yield func(T) bool)) *Generator[T] {
	return FromSeq(iter.Seq[T](fn))
}

// FromSeq makes a Generator that steps through the values of seq.
func FromSeq[T any](seq iter.Seq[T]) *Generator[T] {
	next, stop := iter.Pull(seq)
	return &Generator[T]{next: next, stop: stop, state: SuspendedStart}
}

// Forever is a counter generator that yields 0, 1, 2 and so on
// until the maximum value of T is reached.
func Forever[T constraints.Integer]() *Generator[T] {
	return FromSeq(seqkit.Sequence[T]{}.All())
}

// Next resumes the body until its next yield.
// Once the body returned, every further call reports Done.
func (g *Generator[T]) Next() Result[T] {
	if g.state == Closed {
		return Result[T]{Done: true}
	}
	v, ok := g.next()
	if !ok {
		g.close()
		return Result[T]{Done: true}
	}
	g.state = SuspendedYield
	return Result[T]{Value: v}
}

// Return finishes the generator early.
// The body is unwound at its paused yield, which reports false to it.
func (g *Generator[T]) Return() Result[T] {
	g.close()
	return Result[T]{Done: true}
}

// All iterates over the remaining values.
// Breaking out of the loop closes the generator.
func (g *Generator[T]) All() iter.Seq[T] {
	return iterkit.FromPull(func() (T, bool) {
		r := g.Next()
		return r.Value, !r.Done
	}, func() { g.Return() })
}

func (g *Generator[T]) State() State {
	return g.state
}

func (g *Generator[T]) String() string {
	return fmt.Sprintf("Generator {<%s>}", g.state)
}

func (g *Generator[T]) close() {
	if g.state == Closed {
		return
	}
	g.state = Closed
	g.stop()
}
