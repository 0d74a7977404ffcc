// Package labelreachable_test contains unit tests for the
// labelreachable package.
package labelreachable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/labelreachable"
	"github.com/katalvlaran/wfst/semiring"
)

// buildBranch builds 0 -a(1)-> 1 -c(3)-> 3(final), 0 -b(2)-> 2 -c(3)->
// 3(final): from state 0 either 'a' or 'b' can be read first; from
// state 1 or 2, only 'c' can be read first; state 3 is final with no
// outgoing arcs.
func buildBranch() *fst.VectorFst[semiring.TropicalWeight] {
	f := fst.NewVectorFst[semiring.TropicalWeight]()
	for i := 0; i < 4; i++ {
		f.AddState()
	}
	f.SetStart(0)
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: 1, NextState: 1})
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 2, OLabel: 2, Weight: 1, NextState: 2})
	f.AddArc(1, fst.Arc[semiring.TropicalWeight]{ILabel: 3, OLabel: 3, Weight: 1, NextState: 3})
	f.AddArc(2, fst.Arc[semiring.TropicalWeight]{ILabel: 3, OLabel: 3, Weight: 1, NextState: 3})
	f.SetFinal(3, 0)

	return f
}

func TestReach_MatchesFirstNonEpsilonLabels(t *testing.T) {
	t.Parallel()

	f := buildBranch()
	reach, err := labelreachable.New[semiring.TropicalWeight](f, true)
	require.NoError(t, err)

	reach.SetState(0)
	require.True(t, reach.Reach(reach.Relabel(1)))
	require.True(t, reach.Reach(reach.Relabel(2)))
	require.False(t, reach.Reach(reach.Relabel(3)))

	reach.SetState(1)
	require.False(t, reach.Reach(reach.Relabel(1)))
	require.True(t, reach.Reach(reach.Relabel(3)))

	reach.SetState(2)
	require.True(t, reach.Reach(reach.Relabel(3)))
}

func TestReachFinal_OnlyViaEpsilonPath(t *testing.T) {
	t.Parallel()

	f := buildBranch()
	reach, err := labelreachable.New[semiring.TropicalWeight](f, true)
	require.NoError(t, err)

	// State 1 must consume the non-epsilon 'c' arc before reaching the
	// final state 3, so no epsilon-only path to a final state exists.
	reach.SetState(1)
	require.False(t, reach.ReachFinal())

	// State 3 is itself final: the empty epsilon path reaches it.
	reach.SetState(3)
	require.True(t, reach.ReachFinal())
}

func TestRelabel_UnseenLabelGetsFreshDistinctIndex(t *testing.T) {
	t.Parallel()

	f := buildBranch()
	reach, err := labelreachable.New[semiring.TropicalWeight](f, true)
	require.NoError(t, err)

	seen := reach.Relabel(1)
	fresh := reach.Relabel(99) // never appears in f
	require.NotEqual(t, seen, fresh)

	reach.SetState(0)
	require.False(t, reach.Reach(fresh))
}

func TestRelabelFst_SortsAndSetsProperty(t *testing.T) {
	t.Parallel()

	f := buildBranch()
	reach, err := labelreachable.New[semiring.TropicalWeight](f, true)
	require.NoError(t, err)

	reach.RelabelFst(f, true)

	props := f.Properties(fst.ILabelSorted, false)
	require.True(t, props.Has(fst.ILabelSorted))

	it := f.NewArcIterator(0)
	require.False(t, it.Done())
	first := it.Value()
	it.Next()
	require.False(t, it.Done())
	second := it.Value()
	require.Less(t, first.ILabel, second.ILabel)
}

func TestReachRange_OwnArcsAreSelfReachable(t *testing.T) {
	t.Parallel()

	f := buildBranch()
	reach, err := labelreachable.New[semiring.TropicalWeight](f, true)
	require.NoError(t, err)

	reach.RelabelFst(f, true)
	require.NoError(t, reach.ReachInit(f, true))

	reach.SetState(0)
	it := f.NewArcIterator(0)
	ok := reach.ReachRange(it, 0, 2, false)
	require.True(t, ok)
	require.Equal(t, 0, reach.ReachBegin())
	require.Equal(t, 2, reach.ReachEnd())
}

func TestReachRange_NoMatchWhenUnreachable(t *testing.T) {
	t.Parallel()

	f := buildBranch()
	reach, err := labelreachable.New[semiring.TropicalWeight](f, true)
	require.NoError(t, err)

	reach.RelabelFst(f, true)
	require.NoError(t, reach.ReachInit(f, true))

	// State 1 can only read label 3 first; state 0's own two arcs (1
	// and 2) should not be reachable from state 1.
	reach.SetState(1)
	it := f.NewArcIterator(0)
	ok := reach.ReachRange(it, 0, 2, false)
	require.False(t, ok)
	require.Equal(t, -1, reach.ReachBegin())
}

func TestReachInit_RejectsUnsortedSecondary(t *testing.T) {
	t.Parallel()

	f := buildBranch()
	reach, err := labelreachable.New[semiring.TropicalWeight](f, true)
	require.NoError(t, err)

	unsorted := fst.NewVectorFst[semiring.TropicalWeight]()
	unsorted.AddState()
	unsorted.AddState()
	unsorted.SetStart(0)
	unsorted.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 5, OLabel: 5, Weight: 1, NextState: 1})
	unsorted.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: 1, NextState: 1})

	err = reach.ReachInit(unsorted, true)
	require.ErrorIs(t, err, labelreachable.ErrUnsorted)
	require.True(t, reach.Error())
}
