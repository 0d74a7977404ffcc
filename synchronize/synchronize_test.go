// Package synchronize_test contains unit tests for the synchronize
// package.
package synchronize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/katalvlaran/wfst/synchronize"
)

// buildIdentity builds the zero-delay acceptor 0 -a/1-> 1(final=0).
func buildIdentity() *fst.VectorFst[semiring.TropicalWeight] {
	f := fst.NewVectorFst[semiring.TropicalWeight]()
	f.AddState()
	f.AddState()
	f.SetStart(0)
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: 1, NextState: 1})
	f.SetFinal(1, 0)

	return f
}

func TestNewFst_ZeroDelayIsPassthrough(t *testing.T) {
	t.Parallel()

	lazy := synchronize.NewFst[semiring.TropicalWeight](buildIdentity())
	start := lazy.Start()
	require.NotEqual(t, fst.NoStateId, start)

	it := lazy.NewArcIterator(start)
	require.False(t, it.Done())
	a := it.Value()
	require.Equal(t, fst.Label(1), a.ILabel)
	require.Equal(t, fst.Label(1), a.OLabel)
	require.InDelta(t, 1.0, float64(a.Weight), 1e-6)

	require.True(t, lazy.Final(a.NextState).Equal(semiring.TropicalOne))
}

// buildOutputDelay builds 0 -(a:eps)/1-> 1 -(b:x)/1-> 2(final=0): two
// input symbols are consumed before the single output symbol appears,
// a one-symbol output delay.
func buildOutputDelay() *fst.VectorFst[semiring.TropicalWeight] {
	f := fst.NewVectorFst[semiring.TropicalWeight]()
	for i := 0; i < 3; i++ {
		f.AddState()
	}
	f.SetStart(0)
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: fst.Epsilon, Weight: 1, NextState: 1})
	f.AddArc(1, fst.Arc[semiring.TropicalWeight]{ILabel: 2, OLabel: 3, Weight: 1, NextState: 2})
	f.SetFinal(2, 0)

	return f
}

func TestNewFst_DrainsResidualAfterFinal(t *testing.T) {
	t.Parallel()

	lazy := synchronize.NewFst[semiring.TropicalWeight](buildOutputDelay())
	start := lazy.Start()
	require.NotEqual(t, fst.NoStateId, start)

	// From start, consuming input label 1 with no output label owed
	// yet should leave an outstanding input residual, so the state is
	// not final and produces exactly one outgoing arc.
	require.True(t, lazy.Final(start).Equal(semiring.TropicalZero))
	it := lazy.NewArcIterator(start)
	require.False(t, it.Done())
	require.Equal(t, 1, lazy.NumArcs(start))

	// The owed input label 1 is emitted next, paired with output label
	// 3, leaving input label 2 owed in turn.
	it = lazy.NewArcIterator(it.Value().NextState)
	require.False(t, it.Done())
	a := it.Value()
	require.Equal(t, fst.Label(1), a.ILabel)
	require.Equal(t, fst.Label(3), a.OLabel)

	// Input state 2 is final but label 2 is still owed, so the state is
	// not final; its drain arc emits 2:eps into a final drain state.
	require.True(t, lazy.Final(a.NextState).Equal(semiring.TropicalZero))
	it = lazy.NewArcIterator(a.NextState)
	require.False(t, it.Done())
	a = it.Value()
	require.Equal(t, fst.Label(2), a.ILabel)
	require.Equal(t, fst.Epsilon, a.OLabel)
	require.True(t, lazy.Final(a.NextState).Equal(semiring.TropicalOne))
}
