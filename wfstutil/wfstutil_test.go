// Package wfstutil_test contains unit tests for the wfstutil package.
package wfstutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/katalvlaran/wfst/shortestdistance"
	"github.com/katalvlaran/wfst/wfstutil"
)

// buildDangling builds 0 -a(1)-> 1(final), plus a dangling 2 with no
// arc in or out, and a dead branch 0 -b(1)-> 3 -c(1)-> 4 that never
// reaches a final state.
func buildDangling() *fst.VectorFst[semiring.TropicalWeight] {
	f := fst.NewVectorFst[semiring.TropicalWeight]()
	for i := 0; i < 5; i++ {
		f.AddState()
	}
	f.SetStart(0)
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: 1, NextState: 1})
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 2, OLabel: 2, Weight: 1, NextState: 3})
	f.AddArc(3, fst.Arc[semiring.TropicalWeight]{ILabel: 3, OLabel: 3, Weight: 1, NextState: 4})
	f.SetFinal(1, 0)

	return f
}

func TestWalk_VisitsEveryReachableStateOnce(t *testing.T) {
	t.Parallel()

	f := buildDangling()
	res, err := wfstutil.Walk[semiring.TropicalWeight](f, 0)
	require.NoError(t, err)

	// Arcs are added 1-then-2, so the BFS order is fully determined:
	// use cmp.Diff for a readable failure if that ever changes.
	want := []fst.StateId{0, 1, 3, 4}
	if diff := cmp.Diff(want, res.Order); diff != "" {
		t.Fatalf("Walk order mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 0, res.Depth[0])
	require.Equal(t, 1, res.Depth[1])
	require.Equal(t, 1, res.Depth[3])
	require.Equal(t, 2, res.Depth[4])
	require.Equal(t, fst.StateId(0), res.Parent[1])
	require.Equal(t, fst.StateId(3), res.Parent[4])
	require.NotContains(t, res.Depth, fst.StateId(2))
}

func TestWalk_MaxDepthStopsExpansion(t *testing.T) {
	t.Parallel()

	f := buildDangling()
	res, err := wfstutil.Walk[semiring.TropicalWeight](f, 0, wfstutil.WithMaxDepth(1))
	require.NoError(t, err)

	require.ElementsMatch(t, []fst.StateId{0, 1, 3}, res.Order)
	require.NotContains(t, res.Depth, fst.StateId(4))
}

func TestWalk_OnVisitErrorAborts(t *testing.T) {
	t.Parallel()

	f := buildDangling()
	boom := errors.New("boom")
	_, err := wfstutil.Walk[semiring.TropicalWeight](f, 0, wfstutil.WithOnVisit(
		func(s fst.StateId, depth int) error {
			if s == 1 {
				return boom
			}

			return nil
		},
	))
	require.Error(t, err)
	require.ErrorIs(t, err, boom)
}

func TestWalk_CancelledContextStopsEarly(t *testing.T) {
	t.Parallel()

	f := buildDangling()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := wfstutil.Walk[semiring.TropicalWeight](f, 0, wfstutil.WithWalkContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestConnect_OrphansInaccessibleAndNonCoaccessibleStates(t *testing.T) {
	t.Parallel()

	f := buildDangling()
	wfstutil.Connect[semiring.TropicalWeight](f)

	var zero semiring.TropicalWeight
	// State 1 is accessible and final: survives untouched.
	require.True(t, f.Final(1).Equal(semiring.TropicalWeight(0)))

	// States 3 and 4 are accessible but not coaccessible (dead branch):
	// orphaned in place.
	it := f.NewArcIterator(3)
	require.True(t, it.Done())
	require.True(t, f.Final(3).Equal(zero.Zero()))
	require.True(t, f.Final(4).Equal(zero.Zero()))

	// State 2 was never accessible to begin with, and stays orphaned.
	require.True(t, f.Final(2).Equal(zero.Zero()))
}

func TestConnect_UnreachableStartClearsStart(t *testing.T) {
	t.Parallel()

	f := fst.NewVectorFst[semiring.TropicalWeight]()
	f.AddState()
	f.AddState()
	f.SetStart(0)
	// No final state anywhere: start is accessible but not
	// coaccessible.
	wfstutil.Connect[semiring.TropicalWeight](f)
	require.Equal(t, fst.NoStateId, f.Start())
}

func TestPrune_DropsStatesBeyondThreshold(t *testing.T) {
	t.Parallel()

	f := fst.NewVectorFst[semiring.TropicalWeight]()
	for i := 0; i < 3; i++ {
		f.AddState()
	}
	f.SetStart(0)
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: 1, NextState: 1})
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 2, OLabel: 2, Weight: 100, NextState: 2})
	f.SetFinal(1, 0)
	f.SetFinal(2, 0)

	err := wfstutil.Prune[semiring.TropicalWeight](
		f, semiring.TropicalWeight(10), -1,
		shortestdistance.NewFIFOQueue[semiring.TropicalWeight](),
	)
	require.NoError(t, err)

	var zero semiring.TropicalWeight
	require.True(t, f.Final(1).Equal(semiring.TropicalWeight(0)))
	// State 2's only path costs weight 100, over the threshold of 10:
	// pruned.
	it := f.NewArcIterator(2)
	require.True(t, it.Done())
	require.True(t, f.Final(2).Equal(zero.Zero()))
}

func TestPrune_MaxStatesKeepsOnlyBestScoring(t *testing.T) {
	t.Parallel()

	f := fst.NewVectorFst[semiring.TropicalWeight]()
	for i := 0; i < 3; i++ {
		f.AddState()
	}
	f.SetStart(0)
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: 1, NextState: 1})
	f.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 2, OLabel: 2, Weight: 5, NextState: 2})
	f.SetFinal(1, 0)
	f.SetFinal(2, 0)

	var zero semiring.TropicalWeight
	// maxStates=2 keeps the start plus its single best-scoring
	// non-start survivor (state 1, weight 1 beats state 2's weight 5).
	err := wfstutil.Prune[semiring.TropicalWeight](
		f, zero.Zero().(semiring.TropicalWeight), 2,
		shortestdistance.NewFIFOQueue[semiring.TropicalWeight](),
	)
	require.NoError(t, err)

	require.True(t, f.Final(1).Equal(semiring.TropicalWeight(0)))
	require.True(t, f.Final(2).Equal(zero.Zero()))
}
