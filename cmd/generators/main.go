package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.llib.dev/sequence/internal/demo"
	"go.llib.dev/sequence/pkg/logger"
	"go.llib.dev/sequence/pkg/tasker"
)

func main() {
	app, err := newApp()
	if err == nil {
		err = app.Run(os.Args)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newApp() (*cli.App, error) {
	c, err := demo.LoadConfig()
	if err != nil {
		return nil, errors.Wrap(err, "loading config")
	}

	return &cli.App{
		Name:  "generators",
		Usage: "walk through lazy generators and integer sequences",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "start",
				Usage:       "first value of the sequence",
				EnvVars:     []string{"SEQUENCE_START"},
				Value:       c.Start,
				Destination: &c.Start,
			},
			&cli.StringFlag{
				Name:        "end",
				Usage:       "inclusive end of the sequence, empty for unbounded",
				EnvVars:     []string{"SEQUENCE_END"},
				Value:       c.End,
				Destination: &c.End,
			},
			&cli.IntFlag{
				Name:        "interval",
				Aliases:     []string{"step"},
				Usage:       "step between two values, must not be zero",
				EnvVars:     []string{"SEQUENCE_INTERVAL"},
				Value:       c.Interval,
				Destination: &c.Interval,
			},
			&cli.IntFlag{
				Name:        "take",
				Usage:       "number of values pulled from unbounded producers",
				EnvVars:     []string{"SEQUENCE_TAKE"},
				Value:       c.Take,
				Destination: &c.Take,
			},
		},
		Action: func(cCtx *cli.Context) error {
			if err := c.Validate(); err != nil {
				return errors.Wrap(err, "invalid config")
			}
			err := tasker.Main(cCtx.Context, func(ctx context.Context) error {
				return demo.Run(ctx, c)
			})
			if err != nil {
				logger.Error(cCtx.Context, "walkthrough failed", logger.ErrField(err))
			}
			return errors.Wrap(err, "walkthrough failed")
		},
	}, nil
}
