package seqkit_test

import (
	"iter"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/sequence/pkg/iterkit"
	"go.llib.dev/sequence/pkg/iterkit/iterkitcontract"
	"go.llib.dev/sequence/pkg/seqkit"
)

func TestSequence_All_contract(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Context("bounded", iterkitcontract.IterSeq[int](func(tb testing.TB) iter.Seq[int] {
		return seqkit.MustNew(1, seqkit.End(10), seqkit.Interval(2)).All()
	}).Spec)

	s.Context("unbounded", iterkitcontract.IterSeq[int](func(tb testing.TB) iter.Seq[int] {
		return seqkit.MustNew(0).All()
	}).Spec)

	s.Context("descending", iterkitcontract.IterSeq[int64](func(tb testing.TB) iter.Seq[int64] {
		return seqkit.MustNew[int64](100, seqkit.End[int64](-100), seqkit.Interval[int64](-3)).All()
	}).Spec)
}

func TestIterator(t *testing.T) {
	seq := seqkit.MustNew(0, seqkit.End(4))

	t.Run("Next then Value", func(t *testing.T) {
		i := seq.Iterator()
		assert.True(t, i.Next())
		assert.Equal(t, 0, i.Value())
		assert.Equal(t, 0, i.Value(), "Value is repeatable")
		assert.True(t, i.Next())
		assert.Equal(t, 1, i.Value())
	})

	t.Run("as iter.Seq", func(t *testing.T) {
		var vs []int
		for v, err := range iterkit.FromPullIter[int](seq.Iterator()) {
			assert.NoError(t, err)
			vs = append(vs, v)
		}
		assert.Equal(t, []int{0, 1, 2, 3, 4}, vs)
	})

	t.Run("empty sequence", func(t *testing.T) {
		i := seqkit.MustNew(5, seqkit.End(0)).Iterator()
		assert.False(t, i.Next())
		assert.NoError(t, i.Err())
		assert.NoError(t, i.Close())
	})

	t.Run("Close mid iteration", func(t *testing.T) {
		i := seqkit.MustNew(0).Iterator()
		assert.True(t, i.Next())
		assert.NoError(t, i.Close())
		assert.False(t, i.Next())
	})
}
