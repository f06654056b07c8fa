package demo_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/sequence/internal/demo"
	"go.llib.dev/sequence/pkg/logger"
)

func decodeEntries(tb testing.TB, buf *bytes.Buffer) []map[string]any {
	tb.Helper()
	var entries []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		entry := map[string]any{}
		assert.NoError(tb, dec.Decode(&entry))
		entries = append(entries, entry)
	}
	return entries
}

func messages(entries []map[string]any) []string {
	var msgs []string
	for _, e := range entries {
		msgs = append(msgs, e["message"].(string))
	}
	return msgs
}

func entriesOf(entries []map[string]any, step int) []map[string]any {
	var out []map[string]any
	for _, e := range entries {
		if e["step"] == float64(step) {
			out = append(out, e)
		}
	}
	return out
}

func TestRun(t *testing.T) {
	s := testcase.NewSpec(t)

	config := testcase.Let(s, func(t *testcase.T) demo.Config {
		return demo.Config{Start: 1, End: "10", Interval: 2, Take: 3}
	})
	out := testcase.Let(s, func(t *testcase.T) *bytes.Buffer {
		return logger.Stub(t)
	})
	act := func(t *testcase.T) error {
		out.Get(t) // stub before running
		return demo.Run(context.Background(), config.Get(t))
	}
	entries := func(t *testcase.T) []map[string]any {
		return decodeEntries(t, out.Get(t))
	}

	s.Then("the walkthrough is logged in order", func(t *testcase.T) {
		t.Must.NoError(act(t))
		t.Must.Equal([]string{
			"generator created",
			"invoked 1st time",
			"generator stepped",
			"invoked 2nd time",
			"generator stepped",
			"generator stepped",
			"invoked 1st time",
			"generator value",
			"invoked 2nd time",
			"generator value",
			"forever value",
			"forever value",
			"forever value",
			"sequence value",
			"sequence value",
			"sequence value",
			"sequence value",
			"sequence value",
			"sequence collected",
		}, messages(entries(t)))
	})

	s.Then("every entry carries the same run id", func(t *testcase.T) {
		t.Must.NoError(act(t))
		es := entries(t)
		runID, ok := es[0]["run_id"].(string)
		t.Must.True(ok)
		t.Must.NotEmpty(runID)
		for _, e := range es {
			t.Must.Equal(runID, e["run_id"])
		}
	})

	s.Then("the generator is logged while it is suspended", func(t *testcase.T) {
		t.Must.NoError(act(t))
		es := entriesOf(entries(t), 1)
		t.Must.Equal(1, len(es))
		t.Must.Equal("Generator {<suspended>}", es[0]["generator"])
	})

	s.Then("manual stepping reports the values, then done", func(t *testcase.T) {
		t.Must.NoError(act(t))
		var results []any
		for _, e := range entriesOf(entries(t), 2) {
			results = append(results, e["result"])
		}
		t.Must.Equal([]any{"{1 false}", "{2 false}", "{0 true}"}, results)
	})

	s.Then("the forever counter starts from zero", func(t *testcase.T) {
		t.Must.NoError(act(t))
		var values []any
		for _, e := range entriesOf(entries(t), 4) {
			values = append(values, e["value"])
		}
		t.Must.Equal([]any{float64(0), float64(1), float64(2)}, values)
	})

	s.Then("the forever counter is never done", func(t *testcase.T) {
		t.Must.NoError(act(t))
		var results []any
		for _, e := range entriesOf(entries(t), 4) {
			t.Must.Equal(false, e["done"])
			results = append(results, e["result"])
		}
		t.Must.Equal([]any{"{0 false}", "{1 false}", "{2 false}"}, results)
	})

	s.Then("the sequence values are collected", func(t *testcase.T) {
		t.Must.NoError(act(t))
		es := entriesOf(entries(t), 5)
		last := es[len(es)-1]
		t.Must.Equal("[1, 3, 5, 7, 9]", last["formatted"])
		t.Must.Equal("Sequence(1, 10, 2)", last["sequence"])
	})

	s.When("take is changed", func(s *testcase.Spec) {
		config.Let(s, func(t *testcase.T) demo.Config {
			c := config.Super(t)
			c.Take = t.Random.IntBetween(0, 7)
			return c
		})

		s.Then("that many forever values are logged", func(t *testcase.T) {
			t.Must.NoError(act(t))
			t.Must.Equal(config.Get(t).Take, len(entriesOf(entries(t), 4)))
		})
	})

	s.When("the sequence is unbounded", func(s *testcase.Spec) {
		config.Let(s, func(t *testcase.T) demo.Config {
			c := config.Super(t)
			c.End = ""
			c.Start = 0
			c.Interval = 1
			return c
		})

		s.Then("only take values are iterated from it", func(t *testcase.T) {
			t.Must.NoError(act(t))
			es := entriesOf(entries(t), 5)
			t.Must.Equal(4, len(es))
			t.Must.Equal("[0, 1, 2]", es[3]["formatted"])
		})
	})

	s.When("the config is invalid", func(s *testcase.Spec) {
		config.Let(s, func(t *testcase.T) demo.Config {
			c := config.Super(t)
			c.Interval = 0
			return c
		})

		s.Then("an error is returned before anything is logged", func(t *testcase.T) {
			t.Must.ErrorIs(demo.ErrInvalidConfig, act(t))
			t.Must.Empty(out.Get(t).String())
		})
	})
}
