// Package concat_test contains unit tests for the concat package.
package concat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/concat"
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// buildAB builds a two-state acceptor 0 -a/1-> 1(final=0), the string
// "a" with weight 1.
func buildAB() *fst.VectorFst[semiring.TropicalWeight] {
	f := fst.NewVectorFst[semiring.TropicalWeight]()
	f.AddState()
	f.AddState()
	f.SetStart(0)
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: 1, NextState: 1})
	f.SetFinal(1, 0)

	return f
}

func buildCD() *fst.VectorFst[semiring.TropicalWeight] {
	f := fst.NewVectorFst[semiring.TropicalWeight]()
	f.AddState()
	f.AddState()
	f.SetStart(0)
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 2, OLabel: 2, Weight: 3, NextState: 1})
	f.SetFinal(1, 0)

	return f
}

func TestGrowLeft_AppendsSecondOperand(t *testing.T) {
	t.Parallel()

	fst1 := buildAB()
	fst2 := buildCD()
	require.NoError(t, concat.GrowLeft[semiring.TropicalWeight](fst1, fst2))

	// State 1 (formerly final) should now have an epsilon arc into
	// fst2's shifted start (state 2) instead of a final weight.
	require.True(t, fst1.Final(1).Equal(semiring.TropicalZero))

	it := fst1.NewArcIterator(1)
	require.False(t, it.Done())
	a := it.Value()
	require.Equal(t, fst.Epsilon, a.ILabel)
	require.Equal(t, fst.StateId(2), a.NextState)
}

func TestGrowRight_PrependsFirstOperand(t *testing.T) {
	t.Parallel()

	fst1 := buildAB()
	fst2 := buildCD()
	require.NoError(t, concat.GrowRight[semiring.TropicalWeight](fst1, fst2))

	// fst2's new start is fst1's start, shifted by fst2's original
	// state count (2).
	require.Equal(t, fst.StateId(2), fst2.Start())
}

func TestNewFst_DelayedMatchesEagerGrowLeft(t *testing.T) {
	t.Parallel()

	eager := buildAB()
	require.NoError(t, concat.GrowLeft[semiring.TropicalWeight](eager, buildCD()))

	lazy := concat.NewFst[semiring.TropicalWeight]([]fst.Fst[semiring.TropicalWeight]{buildAB(), buildCD()})
	require.Equal(t, eager.Start(), lazy.Start())
	require.True(t, lazy.Final(0).Equal(semiring.TropicalZero))
}

func TestNewFst_EmptyOperandsIsIdentity(t *testing.T) {
	t.Parallel()

	identity := concat.NewFst[semiring.TropicalWeight](nil)
	require.NotEqual(t, fst.NoStateId, identity.Start())
	require.True(t, identity.Final(identity.Start()).Equal(semiring.TropicalOne))
}

func TestNewFst_EmptyOperandYieldsEmptyLanguage(t *testing.T) {
	t.Parallel()

	empty := fst.NewVectorFst[semiring.TropicalWeight]()

	lazy := concat.NewFst[semiring.TropicalWeight]([]fst.Fst[semiring.TropicalWeight]{buildAB(), empty})
	require.Equal(t, fst.NoStateId, lazy.Start())
}
