// Package rmepsilon_test contains unit tests for the rmepsilon package.
package rmepsilon_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/rmepsilon"
	"github.com/katalvlaran/wfst/semiring"
)

// buildEpsilonChain builds 0 -eps/1-> 1 -eps/1-> 2 -a/1-> 3(final=0),
// plus a direct 0 -a/5-> 3, under the tropical semiring. Epsilon
// removal should produce, at state 0, two competing a-arcs to 3 with
// weight 3 (1+1+1, through the epsilon chain) and 5 (direct), combined
// by Plus (min) only if the (ilabel,olabel,nextstate) triples match
// exactly as they do here, yielding a single a-arc of weight 3.
func buildEpsilonChain() *fst.VectorFst[semiring.TropicalWeight] {
	f := fst.NewVectorFst[semiring.TropicalWeight]()
	for i := 0; i < 4; i++ {
		f.AddState()
	}
	f.SetStart(0)
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: 1, NextState: 1})
	f.AddArc(1, fst.Arc[semiring.TropicalWeight]{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: 1, NextState: 2})
	f.AddArc(2, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: 1, NextState: 3})
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: 5, NextState: 3})
	f.SetFinal(3, 0)

	return f
}

func TestExpand_CombinesEpsilonClosureArcs(t *testing.T) {
	t.Parallel()

	f := buildEpsilonChain()
	arcs, final, err := rmepsilon.Expand[semiring.TropicalWeight](f, 0, semiring.DefaultDelta)
	require.NoError(t, err)
	require.True(t, final.Equal(semiring.TropicalZero))
	require.Len(t, arcs, 1)
	require.Equal(t, fst.StateId(3), arcs[0].NextState)
	require.InDelta(t, float64(semiring.TropicalWeight(3)), float64(arcs[0].Weight), 1e-6)
}

func TestDo_RemovesEveryEpsilonArc(t *testing.T) {
	t.Parallel()

	f := buildEpsilonChain()
	require.NoError(t, rmepsilon.Do[semiring.TropicalWeight](f))

	sit := f.NewStateIterator()
	for ; !sit.Done(); sit.Next() {
		s := sit.Value()
		it := f.NewArcIterator(s)
		for ; !it.Done(); it.Next() {
			a := it.Value()
			require.False(t, a.ILabel == fst.Epsilon && a.OLabel == fst.Epsilon)
		}
	}
}

func TestDo_InconsistentAcyclicPropertyErrors(t *testing.T) {
	t.Parallel()

	f := fst.NewVectorFst[semiring.TropicalWeight]()
	for i := 0; i < 2; i++ {
		f.AddState()
	}
	f.SetStart(0)
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: 1, NextState: 1})
	f.AddArc(1, fst.Arc[semiring.TropicalWeight]{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: 1, NextState: 0})
	f.SetProperties(fst.Acyclic, fst.Acyclic)

	err := rmepsilon.Do[semiring.TropicalWeight](f)
	require.ErrorIs(t, err, rmepsilon.ErrInconsistentProperties)
}

// buildBranchingClosure builds 0 -eps-> 1, 0 -eps-> 2, where 1 has a
// surviving arc labeled 9 to state 5 and 2 has a surviving arc labeled
// 3 to state 4: Expand(0) must combine arcs from both closure states,
// and the result must not depend on map iteration order over the
// closure.
func buildBranchingClosure() *fst.VectorFst[semiring.TropicalWeight] {
	f := fst.NewVectorFst[semiring.TropicalWeight]()
	for i := 0; i < 6; i++ {
		f.AddState()
	}
	f.SetStart(0)
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: 1, NextState: 1})
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: 1, NextState: 2})
	f.AddArc(1, fst.Arc[semiring.TropicalWeight]{ILabel: 9, OLabel: 9, Weight: 1, NextState: 5})
	f.AddArc(2, fst.Arc[semiring.TropicalWeight]{ILabel: 3, OLabel: 3, Weight: 1, NextState: 4})

	return f
}

func TestExpand_OrderIsDeterministicAcrossCalls(t *testing.T) {
	t.Parallel()

	var firstArcs []fst.Arc[semiring.TropicalWeight]
	for i := 0; i < 10; i++ {
		f := buildBranchingClosure()
		arcs, _, err := rmepsilon.Expand[semiring.TropicalWeight](f, 0, semiring.DefaultDelta)
		require.NoError(t, err)
		require.Len(t, arcs, 2)
		if firstArcs == nil {
			firstArcs = arcs
		} else {
			require.Equal(t, firstArcs, arcs)
		}
	}
}

// buildSurvivingInputEpsilon builds 0 -eps/a-> 1(final=0): the arc is
// epsilon only on the input tape, so RmEpsilon must keep it (only
// both-tapes-epsilon arcs are removed).
func buildSurvivingInputEpsilon() *fst.VectorFst[semiring.TropicalWeight] {
	f := fst.NewVectorFst[semiring.TropicalWeight]()
	f.AddState()
	f.AddState()
	f.SetStart(0)
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: fst.Epsilon, OLabel: 1, Weight: 1, NextState: 1})
	f.SetFinal(1, 0)

	return f
}

func TestExpand_KeepsInputOnlyEpsilonArc(t *testing.T) {
	t.Parallel()

	f := buildSurvivingInputEpsilon()
	arcs, _, err := rmepsilon.Expand[semiring.TropicalWeight](f, 0, semiring.DefaultDelta)
	require.NoError(t, err)
	require.Len(t, arcs, 1)
	require.Equal(t, fst.Epsilon, arcs[0].ILabel)
	require.Equal(t, fst.Label(1), arcs[0].OLabel)
}

func TestNewFst_NumInputEpsilonsCountsSurvivingArcs(t *testing.T) {
	t.Parallel()

	lazy := rmepsilon.NewFst[semiring.TropicalWeight](buildSurvivingInputEpsilon())
	require.Equal(t, 1, lazy.NumInputEpsilons(0))
	require.Equal(t, 0, lazy.NumInputEpsilons(1))
}

func TestNewFst_MatchesEagerDo(t *testing.T) {
	t.Parallel()

	eager := buildEpsilonChain()
	require.NoError(t, rmepsilon.Do[semiring.TropicalWeight](eager))

	lazy := rmepsilon.NewFst[semiring.TropicalWeight](buildEpsilonChain())
	require.Equal(t, eager.Start(), lazy.Start())

	it := lazy.NewArcIterator(0)
	require.False(t, it.Done())
	a := it.Value()
	require.Equal(t, fst.StateId(3), a.NextState)
	require.InDelta(t, 3.0, float64(a.Weight), 1e-6)
}
