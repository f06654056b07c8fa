package env_test

import (
	"context"
	"os"

	"go.llib.dev/sequence/pkg/env"
	"go.llib.dev/sequence/pkg/logger"
)

func ExampleLoad() {
	type ExampleAppConfig struct {
		Foo string `env:"FOO"`
		Baz int    `env:"BAZ" default:"42"`
	}

	var c ExampleAppConfig
	if err := env.Load(&c); err != nil {
		logger.Error(context.Background(), "failed to load application config", logger.ErrField(err))
		os.Exit(1)
	}
}

func ExampleLookup() {
	val, ok, err := env.Lookup[string]("FOO", env.DefaultValue("foo"))
	_, _, _ = val, ok, err
}
