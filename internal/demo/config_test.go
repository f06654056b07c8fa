package demo_test

import (
	"testing"

	g "github.com/anacrolix/generics"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/sequence/internal/demo"
	"go.llib.dev/sequence/pkg/seqkit"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"SEQUENCE_START", "SEQUENCE_END", "SEQUENCE_INTERVAL", "SEQUENCE_TAKE"} {
			testcase.UnsetEnv(t, key)
		}
		c, err := demo.LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, demo.Config{Start: 1, End: "10", Interval: 2, Take: 3}, c)
	})
	t.Run("from the environment", func(t *testing.T) {
		testcase.SetEnv(t, "SEQUENCE_START", "5")
		testcase.SetEnv(t, "SEQUENCE_END", "")
		testcase.SetEnv(t, "SEQUENCE_INTERVAL", "-1")
		testcase.SetEnv(t, "SEQUENCE_TAKE", "7")
		c, err := demo.LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, demo.Config{Start: 5, End: "", Interval: -1, Take: 7}, c)
	})
	t.Run("malformed environment value", func(t *testing.T) {
		testcase.SetEnv(t, "SEQUENCE_START", "one")
		_, err := demo.LoadConfig()
		assert.ErrorIs(t, demo.ErrInvalidConfig, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := demo.Config{Start: 1, End: "10", Interval: 2, Take: 3}
	assert.NoError(t, valid.Validate())

	unbounded := valid
	unbounded.End = " "
	assert.NoError(t, unbounded.Validate())

	for name, c := range map[string]demo.Config{
		"zero interval": {Start: 1, End: "10", Interval: 0, Take: 3},
		"negative take": {Start: 1, End: "10", Interval: 1, Take: -1},
		"non-int end":   {Start: 1, End: "ten", Interval: 1, Take: 1},
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, demo.ErrInvalidConfig, c.Validate())
		})
	}
}

func TestConfig_Sequence(t *testing.T) {
	seq, err := demo.Config{Start: 1, End: "10", Interval: 2}.Sequence()
	assert.NoError(t, err)
	assert.Equal(t, seqkit.Sequence[int]{Start: 1, End: g.Some(10), Interval: 2}, seq)

	seq, err = demo.Config{Start: 3, Interval: -1}.Sequence()
	assert.NoError(t, err)
	assert.Equal(t, seqkit.Sequence[int]{Start: 3, Interval: -1}, seq)

	_, err = demo.Config{Start: 3}.Sequence()
	assert.ErrorIs(t, demo.ErrInvalidConfig, err)
}
