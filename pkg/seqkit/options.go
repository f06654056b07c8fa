package seqkit

import (
	g "github.com/anacrolix/generics"
	"golang.org/x/exp/constraints"

	"go.llib.dev/sequence/port/option"
)

type Option[T constraints.Integer] interface {
	option.Option[Config[T]]
}

// Config is the intermediate state of New's options.
type Config[T constraints.Integer] struct {
	End      g.Option[T]
	Interval g.Option[T]
}

// End sets the inclusive end of the sequence.
func End[T constraints.Integer](end T) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) {
		c.End = g.Some(end)
	})
}

// Unbounded removes the end of the sequence.
func Unbounded[T constraints.Integer]() Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) {
		c.End = g.None[T]()
	})
}

// Interval sets the step between two values. It must not be zero.
func Interval[T constraints.Integer](n T) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) {
		c.Interval = g.Some(n)
	})
}
