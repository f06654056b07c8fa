package demo

import (
	"strconv"
	"strings"

	"go.llib.dev/sequence/pkg/env"
	"go.llib.dev/sequence/pkg/errorkit"
	"go.llib.dev/sequence/pkg/seqkit"
)

const ErrInvalidConfig errorkit.Error = "ErrInvalidConfig"

// Config is the input of the walkthrough.
type Config struct {
	Start int `env:"SEQUENCE_START" default:"1"`
	// End is the inclusive end of the Sequence.
	// An empty End means an unbounded Sequence.
	End      string `env:"SEQUENCE_END" default:"10"`
	Interval int    `env:"SEQUENCE_INTERVAL" default:"2"`
	// Take is how many values are pulled from unbounded producers.
	Take int `env:"SEQUENCE_TAKE" default:"3"`
}

// LoadConfig reads the Config from the environment, falling back to the defaults.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, ErrInvalidConfig.Wrap(err)
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Interval == 0 {
		return ErrInvalidConfig.F("interval must not be zero")
	}
	if c.Take < 0 {
		return ErrInvalidConfig.F("take must not be negative: %d", c.Take)
	}
	if _, _, err := c.end(); err != nil {
		return err
	}
	return nil
}

// Sequence makes the configured Sequence.
func (c Config) Sequence() (seqkit.Sequence[int], error) {
	if err := c.Validate(); err != nil {
		return seqkit.Sequence[int]{}, err
	}
	end, ok, _ := c.end()
	opts := []seqkit.Option[int]{seqkit.Interval(c.Interval)}
	if ok {
		opts = append(opts, seqkit.End(end))
	}
	return seqkit.New(c.Start, opts...)
}

func (c Config) end() (int, bool, error) {
	raw := strings.TrimSpace(c.End)
	if raw == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, ErrInvalidConfig.F("end is not an integer: %q", c.End)
	}
	return n, true, nil
}
