// Package tasker runs the synchronous units of work of an application,
// and ties their lifecycle to the process signals.
package tasker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"go.llib.dev/sequence/pkg/tasker/internal"
)

// Task is the basic unit of tasker package, which represents an executable work.
//
// Task at its core is nothing more than a synchronous function.
type Task func(context.Context) error

// Run method supplies Runnable interface for Task.
func (fn Task) Run(ctx context.Context) error { return fn(ctx) }

type Runnable interface{ Run(context.Context) error }

type genericTask interface {
	Task |
		func(context.Context) error |
		func(context.Context) |
		func() error |
		func()
}

func ToTask[TFN genericTask](tfn TFN) Task {
	switch v := any(tfn).(type) {
	case Task:
		return v
	case func(context.Context) error:
		return v
	case func(context.Context):
		return func(ctx context.Context) error { v(ctx); return nil }
	case func() error:
		return func(context.Context) error { return v() }
	case func():
		return func(context.Context) error { v(); return nil }
	default:
		panic(fmt.Sprintf("%T is not supported Task func", v))
	}
}

// Sequence executes the tasks one after the other.
// The first failing Task breaks the execution and its error is returned.
// A cancelled context stops the Sequence before the next Task would start.
func Sequence[TFN genericTask](tfns ...TFN) Task {
	var tasks sequence
	for _, tfn := range tfns {
		tasks = append(tasks, ToTask(tfn))
	}
	return tasks.Run
}

type sequence []Task

func (s sequence) Run(ctx context.Context) error {
	for _, task := range s {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := task(ctx); err != nil {
			return err
		}
	}
	return nil
}

// WithSignalNotify cancels the context of the task when one of the shutdown signals is received.
// Without explicit signals, it listens to interrupt and termination.
// A task that returns because of the cancellation is treated as a graceful shutdown.
func WithSignalNotify[TFN genericTask](tfn TFN, shutdownSignals ...os.Signal) Task {
	task := ToTask(tfn)
	if len(shutdownSignals) == 0 {
		shutdownSignals = []os.Signal{
			os.Interrupt,
			syscall.SIGINT,
			syscall.SIGTERM,
		}
	}
	return func(ctx context.Context) error {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		ch := make(chan os.Signal, 1)
		internal.SignalNotify(ch, shutdownSignals...)
		defer internal.SignalStop(ch)

		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-ch:
				cancel()
			case <-done:
			}
		}()

		err := task(ctx)
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return nil
		}
		return err
	}
}

// Main runs the tasks of an application in order, until they finish or a shutdown signal arrives.
func Main[TFN genericTask](ctx context.Context, tasks ...TFN) error {
	return WithSignalNotify(Sequence(tasks...))(ctx)
}
