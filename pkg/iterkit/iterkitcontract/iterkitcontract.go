// Package iterkitcontract holds reusable test contracts for iterator implementations.
package iterkitcontract

import (
	"iter"
	"testing"

	"go.llib.dev/sequence/pkg/iterkit"
	"go.llib.dev/testcase"
)

// sampleSize caps the iteration, so infinite sequences can be checked as well.
const sampleSize = 1024

// IterSeq is the contract of a restartable iter.Seq.
// The sequence made by the function must yield at least one value.
type IterSeq[T any] func(tb testing.TB) iter.Seq[T]

func (c IterSeq[T]) Spec(s *testcase.Spec) {
	s.Describe("it behaves like a restartable iter.Seq", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) iter.Seq[T] {
			return c(t)
		})
		sample := func(t *testcase.T) []T {
			return iterkit.Collect(iterkit.Head(subject.Get(t), sampleSize))
		}

		s.Then("values can be collected from the iterator", func(t *testcase.T) {
			t.Must.NotEmpty(sample(t))
		})

		s.Then("iterating again yields the same values", func(t *testcase.T) {
			t.Must.Equal(sample(t), sample(t))
		})

		s.Then("breaking out early does not affect the next iteration", func(t *testcase.T) {
			var first T
			for v := range subject.Get(t) {
				first = v
				break
			}
			vs := sample(t)
			t.Must.NotEmpty(vs)
			t.Must.Equal(first, vs[0])
		})

		s.Then("interleaved iterations are independent", func(t *testcase.T) {
			exp := sample(t)

			next1, stop1 := iter.Pull(iterkit.Head(subject.Get(t), sampleSize))
			defer stop1()
			next2, stop2 := iter.Pull(iterkit.Head(subject.Get(t), sampleSize))
			defer stop2()

			var got1, got2 []T
			for {
				v1, ok1 := next1()
				v2, ok2 := next2()
				t.Must.Equal(ok1, ok2)
				if !ok1 {
					break
				}
				got1 = append(got1, v1)
				got2 = append(got2, v2)
			}
			t.Must.Equal(exp, got1)
			t.Must.Equal(exp, got2)
		})
	})
}

func (c IterSeq[T]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c IterSeq[T]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}
