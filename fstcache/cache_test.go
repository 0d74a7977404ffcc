// Package fstcache_test contains unit tests for the fstcache package.
package fstcache_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/fstcache"
	"github.com/katalvlaran/wfst/semiring"
)

func TestCache_ExpandMemoizes(t *testing.T) {
	t.Parallel()

	c := fstcache.NewCache[semiring.TropicalWeight](0)
	calls := 0
	fn := func(id fst.StateId) (fstcache.StateData[semiring.TropicalWeight], error) {
		calls++

		return fstcache.StateData[semiring.TropicalWeight]{HasFinal: true, Final: 0}, nil
	}

	_, err := c.Expand(0, fn)
	require.NoError(t, err)
	_, err = c.Expand(0, fn)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestCache_ExpandPropagatesError(t *testing.T) {
	t.Parallel()

	c := fstcache.NewCache[semiring.TropicalWeight](0)
	wantErr := errors.New("boom")
	_, err := c.Expand(0, func(id fst.StateId) (fstcache.StateData[semiring.TropicalWeight], error) {
		return fstcache.StateData[semiring.TropicalWeight]{}, wantErr
	})
	require.ErrorIs(t, err, wantErr)
	require.False(t, c.Has(0))
}

func TestCache_ConcurrentExpandSingleCall(t *testing.T) {
	t.Parallel()

	c := fstcache.NewCache[semiring.TropicalWeight](0)
	var calls int
	var mu sync.Mutex
	fn := func(id fst.StateId) (fstcache.StateData[semiring.TropicalWeight], error) {
		mu.Lock()
		calls++
		mu.Unlock()

		return fstcache.StateData[semiring.TropicalWeight]{HasFinal: true}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Expand(7, fn)
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 1, calls)
}

func TestCache_GCLimitEvictsOldest(t *testing.T) {
	t.Parallel()

	c := fstcache.NewCache[semiring.TropicalWeight](2)
	for id := fst.StateId(0); id < 3; id++ {
		_, err := c.Expand(id, func(id fst.StateId) (fstcache.StateData[semiring.TropicalWeight], error) {
			return fstcache.StateData[semiring.TropicalWeight]{HasFinal: true}, nil
		})
		require.NoError(t, err)
	}
	require.False(t, c.Has(0))
	require.True(t, c.Has(1))
	require.True(t, c.Has(2))
}

func TestElementTable_FindOrCreate(t *testing.T) {
	t.Parallel()

	type key struct {
		ILabel, OLabel, NextState fst.Label
	}
	tbl := fstcache.NewElementTable[key]()

	id1 := tbl.FindOrCreate(key{1, 2, 3})
	id2 := tbl.FindOrCreate(key{1, 2, 3})
	id3 := tbl.FindOrCreate(key{4, 5, 6})

	require.Equal(t, id1, id2)
	require.NotEqual(t, id1, id3)
	require.Equal(t, key{1, 2, 3}, tbl.Element(id1))
	require.Equal(t, 2, tbl.Size())
}
