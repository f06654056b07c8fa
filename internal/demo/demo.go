// Package demo walks through the behaviour of generators and sequences,
// logging each step as it goes.
package demo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bradfitz/iter"
	"github.com/samber/lo"
	uuid "github.com/satori/go.uuid"

	"go.llib.dev/sequence/pkg/generator"
	"go.llib.dev/sequence/pkg/iterkit"
	"go.llib.dev/sequence/pkg/logger"
	"go.llib.dev/sequence/pkg/seqkit"
	"go.llib.dev/sequence/pkg/tasker"
)

// Run executes the walkthrough with the given Config.
// Each step is logged with a "step" field, and all entries share a "run_id".
func Run(ctx context.Context, c Config) error {
	seq, err := c.Sequence()
	if err != nil {
		return err
	}
	ctx = logger.ContextWith(ctx, logger.Field("run_id", uuid.NewV4().String()))
	w := walkthrough{take: c.Take, seq: seq}
	return tasker.Sequence(
		w.lazyBody,
		w.manualStepping,
		w.rangeOver,
		w.forever,
		w.sequence,
	)(ctx)
}

type walkthrough struct {
	take int
	seq  seqkit.Sequence[int]
}

func (w walkthrough) lazyBody(ctx context.Context) error {
	gen := twoStep(ctx)
	defer gen.Return()
	logger.Info(ctx, "generator created", step(1), logger.Field("generator", gen))
	return nil
}

func (w walkthrough) manualStepping(ctx context.Context) error {
	gen := twoStep(ctx)
	defer gen.Return()
	for i := range iter.N(3) {
		r := gen.Next()
		logger.Info(ctx, "generator stepped", step(2),
			logger.Field("call", i+1),
			logger.Field("result", fmt.Sprint(r)),
			logger.Field("value", r.Value),
			logger.Field("done", r.Done))
	}
	return nil
}

func (w walkthrough) rangeOver(ctx context.Context) error {
	for v := range twoStep(ctx).All() {
		logger.Info(ctx, "generator value", step(3), logger.Field("value", v))
	}
	return nil
}

func (w walkthrough) forever(ctx context.Context) error {
	counter := generator.Forever[int]()
	defer counter.Return()
	for range iter.N(w.take) {
		r := counter.Next()
		logger.Info(ctx, "forever value", step(4),
			logger.Field("result", fmt.Sprint(r)),
			logger.Field("value", r.Value),
			logger.Field("done", r.Done))
	}
	return nil
}

func (w walkthrough) sequence(ctx context.Context) error {
	values := w.seq.All()
	if !w.seq.Bounded() {
		values = iterkit.Head(values, w.take)
	}
	for v := range values {
		if err := ctx.Err(); err != nil {
			return err
		}
		logger.Info(ctx, "sequence value", step(5), logger.Field("value", v))
	}
	collected := iterkit.Collect(values)
	logger.Info(ctx, "sequence collected", step(5),
		logger.Field("sequence", w.seq),
		logger.Field("values", collected),
		logger.Field("formatted", format(collected)))
	return nil
}

// twoStep logs before each yield, so the output shows when the body actually runs.
func twoStep(ctx context.Context) *generator.Generator[int] {
	return generator.New(func(yield func(int) bool) {
		logger.Info(ctx, "invoked 1st time")
		if !yield(1) {
			return
		}
		logger.Info(ctx, "invoked 2nd time")
		yield(2)
	})
}

func step(n int) logger.LoggingDetail {
	return logger.Field("step", n)
}

func format(vs []int) string {
	return "[" + strings.Join(lo.Map(vs, func(v int, _ int) string {
		return strconv.Itoa(v)
	}), ", ") + "]"
}
