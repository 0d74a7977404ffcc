// Package intervalset_test contains unit tests for the intervalset
// package.
package intervalset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/labelreachable/intervalset"
)

func TestBuild_CollapsesConsecutiveRuns(t *testing.T) {
	t.Parallel()

	s := intervalset.Build([]int64{5, 1, 2, 3, 9, 9, 7})
	require.Equal(t, []intervalset.Interval{
		{Begin: 1, End: 4},
		{Begin: 5, End: 6},
		{Begin: 7, End: 8},
		{Begin: 9, End: 10},
	}, s.Intervals())
	require.Equal(t, int64(6), s.Count())
}

func TestSet_MemberMatchesBuiltValues(t *testing.T) {
	t.Parallel()

	s := intervalset.Build([]int64{1, 2, 3, 10})
	require.True(t, s.Member(1))
	require.True(t, s.Member(3))
	require.True(t, s.Member(10))
	require.False(t, s.Member(0))
	require.False(t, s.Member(4))
	require.False(t, s.Member(11))
}

func TestMerge_UnionsAndCollapsesAdjacentRuns(t *testing.T) {
	t.Parallel()

	a := intervalset.Build([]int64{1, 2, 3})
	b := intervalset.Build([]int64{4, 5, 10})

	merged := intervalset.Merge(a, b)
	require.Equal(t, []intervalset.Interval{
		{Begin: 1, End: 6},
		{Begin: 10, End: 11},
	}, merged.Intervals())
}

func TestFromIntervals_RejectsOverlap(t *testing.T) {
	t.Parallel()

	_, err := intervalset.FromIntervals([]intervalset.Interval{
		{Begin: 0, End: 5},
		{Begin: 4, End: 6},
	})
	require.ErrorIs(t, err, intervalset.ErrUnsorted)
}

func TestFromIntervals_RejectsEmptyInterval(t *testing.T) {
	t.Parallel()

	_, err := intervalset.FromIntervals([]intervalset.Interval{{Begin: 5, End: 5}})
	require.ErrorIs(t, err, intervalset.ErrEmptyInterval)
}

func TestSet_EmptyMemberIsAlwaysFalse(t *testing.T) {
	t.Parallel()

	var s intervalset.Set
	require.False(t, s.Member(0))
	require.Equal(t, 0, s.Size())
}
