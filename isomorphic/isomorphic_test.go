// Package isomorphic_test contains unit tests for the isomorphic
// package.
package isomorphic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/isomorphic"
	"github.com/katalvlaran/wfst/semiring"
)

func buildDiamond() *fst.VectorFst[semiring.TropicalWeight] {
	f := fst.NewVectorFst[semiring.TropicalWeight]()
	for i := 0; i < 4; i++ {
		f.AddState()
	}
	f.SetStart(0)
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: 1, NextState: 1})
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 2, OLabel: 2, Weight: 4, NextState: 2})
	f.AddArc(1, fst.Arc[semiring.TropicalWeight]{ILabel: 3, OLabel: 3, Weight: 1, NextState: 3})
	f.AddArc(2, fst.Arc[semiring.TropicalWeight]{ILabel: 3, OLabel: 3, Weight: 1, NextState: 3})
	f.SetFinal(3, 0)

	return f
}

// buildDiamondRelabeled is buildDiamond with states 1 and 2 swapped
// (along with their arcs) and arc insertion order reversed, testing
// that Test is insensitive to both state numbering and arc order.
func buildDiamondRelabeled() *fst.VectorFst[semiring.TropicalWeight] {
	f := fst.NewVectorFst[semiring.TropicalWeight]()
	for i := 0; i < 4; i++ {
		f.AddState()
	}
	f.SetStart(0)
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 2, OLabel: 2, Weight: 4, NextState: 1})
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: 1, NextState: 2})
	f.AddArc(1, fst.Arc[semiring.TropicalWeight]{ILabel: 3, OLabel: 3, Weight: 1, NextState: 3})
	f.AddArc(2, fst.Arc[semiring.TropicalWeight]{ILabel: 3, OLabel: 3, Weight: 1, NextState: 3})
	f.SetFinal(3, 0)

	return f
}

func TestTest_IsomorphicUpToReordering(t *testing.T) {
	t.Parallel()

	ok, err := isomorphic.Test[semiring.TropicalWeight](buildDiamond(), buildDiamondRelabeled(), semiring.DefaultDelta)
	require.True(t, ok)
	require.False(t, err)
}

func TestTest_DifferentWeightIsNotIsomorphic(t *testing.T) {
	t.Parallel()

	other := buildDiamondRelabeled()
	other.SetFinal(3, semiring.TropicalOne+5)

	ok, err := isomorphic.Test[semiring.TropicalWeight](buildDiamond(), other, semiring.DefaultDelta)
	require.False(t, ok)
	require.False(t, err)
}

func TestTest_BothEmptyIsIsomorphic(t *testing.T) {
	t.Parallel()

	ok, err := isomorphic.Test[semiring.TropicalWeight](
		fst.NewVectorFst[semiring.TropicalWeight](),
		fst.NewVectorFst[semiring.TropicalWeight](),
		semiring.DefaultDelta,
	)
	require.True(t, ok)
	require.False(t, err)
}

func TestTest_NonDeterministicFlagsError(t *testing.T) {
	t.Parallel()

	f := fst.NewVectorFst[semiring.TropicalWeight]()
	f.AddState()
	f.AddState()
	f.SetStart(0)
	// Two arcs on the same state with identical (ilabel, olabel,
	// weight) tie under the comparator: non-determinism as an
	// unweighted automaton.
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: 1, NextState: 1})
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: 1, NextState: 1})
	f.SetFinal(1, 0)

	ok, err := isomorphic.Test[semiring.TropicalWeight](f, f, semiring.DefaultDelta)
	require.False(t, ok)
	require.True(t, err)
}
