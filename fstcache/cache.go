package fstcache

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// StateData is the memoized expansion of one delayed-Fst state: its
// final weight (if any) and its outgoing arcs.
type StateData[W semiring.Weight] struct {
	Final    W
	HasFinal bool
	Arcs     []fst.Arc[W]
	HasArcs  bool
}

// ExpandFunc computes the StateData for a state id that has not yet
// been cached. Concurrent calls for the same uncached id share one
// invocation via Cache.Expand's singleflight gate; an id that a positive
// GCLimit has evicted is expanded again on its next query.
type ExpandFunc[W semiring.Weight] func(id fst.StateId) (StateData[W], error)

// Cache memoizes per-state expansion results for a delayed Fst. A
// GCLimit of 0 means "retain every expanded state" (the default);
// a positive GCLimit evicts the least-recently-expanded states beyond
// that count, bounding memory use over an effectively-infinite lazy
// composition chain.
type Cache[W semiring.Weight] struct {
	mu      sync.Mutex
	group   singleflight.Group
	data    map[fst.StateId]StateData[W]
	order   []fst.StateId
	GCLimit int
}

// NewCache returns an empty Cache. gcLimit <= 0 means unbounded.
func NewCache[W semiring.Weight](gcLimit int) *Cache[W] {
	return &Cache[W]{
		data:    make(map[fst.StateId]StateData[W]),
		GCLimit: gcLimit,
	}
}

// Expand returns the memoized StateData for id, computing it via fn on
// first access. Concurrent calls for the same id share a single
// invocation of fn: this is a correctness backstop for the documented
// idempotent-expansion invariant, not a concurrency feature, since
// ordinary use of a single Fst value is expected to be single-threaded.
func (c *Cache[W]) Expand(id fst.StateId, fn ExpandFunc[W]) (StateData[W], error) {
	c.mu.Lock()
	if d, ok := c.data[id]; ok {
		c.mu.Unlock()

		return d, nil
	}
	c.mu.Unlock()

	key := strconv.FormatInt(id, 10)
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Re-check under the singleflight gate: another caller may have
		// populated the cache between our first check and entering Do.
		c.mu.Lock()
		if d, ok := c.data[id]; ok {
			c.mu.Unlock()

			return d, nil
		}
		c.mu.Unlock()

		d, err := fn(id)
		if err != nil {
			return StateData[W]{}, err
		}

		c.mu.Lock()
		c.store(id, d)
		c.mu.Unlock()

		return d, nil
	})
	if err != nil {
		return StateData[W]{}, err
	}

	return v.(StateData[W]), nil
}

// Get returns the cached StateData for id without triggering expansion.
func (c *Cache[W]) Get(id fst.StateId) (StateData[W], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, ok := c.data[id]

	return d, ok
}

// Has reports whether id has already been expanded.
func (c *Cache[W]) Has(id fst.StateId) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.data[id]

	return ok
}

// store records d under id and evicts the oldest entries past GCLimit.
// Callers must hold c.mu.
func (c *Cache[W]) store(id fst.StateId, d StateData[W]) {
	c.data[id] = d
	c.order = append(c.order, id)

	if c.GCLimit <= 0 {
		return
	}
	for len(c.order) > c.GCLimit {
		evict := c.order[0]
		c.order = c.order[1:]
		delete(c.data, evict)
	}
}
