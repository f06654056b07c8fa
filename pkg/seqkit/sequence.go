package seqkit

import (
	"fmt"
	"iter"
	"math"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/missinggo/v2/panicif"
	"golang.org/x/exp/constraints"

	"go.llib.dev/sequence/pkg/errorkit"
	"go.llib.dev/sequence/port/option"
)

const ErrZeroInterval errorkit.Error = "ErrZeroInterval"

// Sequence describes an integer range from Start to End (inclusive), advancing by Interval.
type Sequence[T constraints.Integer] struct {
	Start T
	// End is the inclusive upper bound, or the lower bound for a negative Interval.
	// When it is not set, the sequence is unbounded.
	End g.Option[T]
	// Interval is the step between two consecutive values.
	// Zero value means the default step, which is 1.
	Interval T
}

// New makes a Sequence that starts at start.
// By default, it is unbounded and steps by one.
func New[T constraints.Integer](start T, opts ...Option[T]) (Sequence[T], error) {
	c := option.ToConfig[Config[T]](opts)
	seq := Sequence[T]{Start: start, End: c.End, Interval: 1}
	if c.Interval.Ok {
		if c.Interval.Value == 0 {
			return Sequence[T]{}, ErrZeroInterval
		}
		seq.Interval = c.Interval.Value
	}
	return seq, nil
}

// MustNew is the panicking version of New.
func MustNew[T constraints.Integer](start T, opts ...Option[T]) Sequence[T] {
	seq, err := New(start, opts...)
	panicif.Err(err)
	return seq
}

// Range is a shorthand for a bounded Sequence.
func Range[T constraints.Integer](start, end, interval T) (Sequence[T], error) {
	return New(start, End(end), Interval(interval))
}

// All returns a fresh iterator over the sequence.
func (s Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur, ok := s.first(); ok; cur, ok = s.next(cur) {
			if !yield(cur) {
				return
			}
		}
	}
}

// Iterator returns a fresh pull iterator over the sequence.
func (s Sequence[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{seq: s}
}

// Bounded reports whether the sequence has an End.
func (s Sequence[T]) Bounded() bool {
	return s.End.Ok
}

// Step is the effective interval of the sequence.
func (s Sequence[T]) Step() T {
	if s.Interval == 0 {
		return 1
	}
	return s.Interval
}

// Len returns the number of values in a bounded sequence.
// The second return value is false when the sequence is unbounded.
// Lengths beyond math.MaxInt are reported as math.MaxInt.
func (s Sequence[T]) Len() (int, bool) {
	if !s.End.Ok {
		return 0, false
	}
	if !s.within(s.Start) {
		return 0, true
	}
	var (
		step  = s.Step()
		start = uint64(s.Start)
		end   = uint64(s.End.Value)
		dist  uint64
		size  uint64
	)
	// two's complement keeps these differences exact, even for signed types
	if 0 < step {
		dist, size = end-start, uint64(step)
	} else {
		dist, size = start-end, 0-uint64(step)
	}
	n := dist / size
	if uint64(math.MaxInt)-1 < n {
		return math.MaxInt, true
	}
	return int(n) + 1, true
}

func (s Sequence[T]) String() string {
	end := "unbounded"
	if s.End.Ok {
		end = fmt.Sprint(s.End.Value)
	}
	return fmt.Sprintf("Sequence(%v, %s, %v)", s.Start, end, s.Step())
}

func (s Sequence[T]) first() (T, bool) {
	return s.Start, s.within(s.Start)
}

func (s Sequence[T]) next(cur T) (T, bool) {
	step := s.Step()
	n := cur + step
	if (0 < step && n < cur) || (step < 0 && cur < n) {
		return cur, false // overflow
	}
	return n, s.within(n)
}

func (s Sequence[T]) within(v T) bool {
	if !s.End.Ok {
		return true
	}
	if 0 < s.Step() {
		return v <= s.End.Value
	}
	return s.End.Value <= v
}
