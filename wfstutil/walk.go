package wfstutil

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// WalkResult collects a breadth-first traversal's visit order and
// per-state depth/parent links.
type WalkResult struct {
	Order  []fst.StateId
	Depth  map[fst.StateId]int
	Parent map[fst.StateId]fst.StateId
}

// WalkOptions configures Walk: hooks rather than a logging dependency,
// the same ambient-stack stance the rest of this module follows.
type WalkOptions struct {
	// Ctx, when cancelled, stops the walk early with ctx.Err().
	Ctx context.Context
	// MaxDepth caps how far the walk explores from start. Zero means
	// unlimited.
	MaxDepth int
	// OnVisit fires once per dequeued state, in visit order. An error
	// aborts the walk.
	OnVisit func(s fst.StateId, depth int) error
	// OnEnqueue fires once per state the first time it's discovered.
	OnEnqueue func(s fst.StateId, depth int)
}

// WalkOption configures WalkOptions.
type WalkOption func(*WalkOptions)

// DefaultWalkOptions returns WalkOptions with an unlimited depth, a
// background context, and no-op hooks.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		Ctx:       context.Background(),
		OnVisit:   func(fst.StateId, int) error { return nil },
		OnEnqueue: func(fst.StateId, int) {},
	}
}

// WithWalkContext overrides the cancellation context.
func WithWalkContext(ctx context.Context) WalkOption {
	return func(o *WalkOptions) { o.Ctx = ctx }
}

// WithMaxDepth caps how far Walk explores from its start state.
func WithMaxDepth(n int) WalkOption {
	return func(o *WalkOptions) { o.MaxDepth = n }
}

// WithOnVisit installs a hook called once per dequeued state.
func WithOnVisit(fn func(s fst.StateId, depth int) error) WalkOption {
	return func(o *WalkOptions) { o.OnVisit = fn }
}

// WithOnEnqueue installs a hook called once per newly discovered
// state.
func WithOnEnqueue(fn func(s fst.StateId, depth int)) WalkOption {
	return func(o *WalkOptions) { o.OnEnqueue = fn }
}

// walker holds one Walk call's mutable traversal state.
type walker[W semiring.Weight] struct {
	f       fst.Fst[W]
	opts    WalkOptions
	queue   []fst.StateId
	depth   map[fst.StateId]int
	visited map[fst.StateId]bool
	res     *WalkResult
}

// Walk runs a breadth-first traversal of f's arcs starting from start,
// following an enqueue/dequeue/visit/enqueueNeighbors loop split so
// each phase can be hooked independently via OnVisit/OnEnqueue.
func Walk[W semiring.Weight](f fst.Fst[W], start fst.StateId, opts ...WalkOption) (*WalkResult, error) {
	o := DefaultWalkOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker[W]{
		f:       f,
		opts:    o,
		depth:   make(map[fst.StateId]int),
		visited: make(map[fst.StateId]bool),
		res: &WalkResult{
			Depth:  make(map[fst.StateId]int),
			Parent: make(map[fst.StateId]fst.StateId),
		},
	}
	w.enqueue(start, 0, fst.NoStateId)

	return w.res, w.loop()
}

// enqueue marks s visited at depth, calls OnEnqueue, records its
// parent, and adds it to the queue.
func (w *walker[W]) enqueue(s fst.StateId, depth int, parent fst.StateId) {
	w.visited[s] = true
	w.depth[s] = depth
	w.res.Depth[s] = depth
	if parent != fst.NoStateId {
		w.res.Parent[s] = parent
	}
	w.opts.OnEnqueue(s, depth)
	w.queue = append(w.queue, s)
}

// loop processes the queue until empty, a hook error, or cancellation.
func (w *walker[W]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		s := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.depth[s]

		w.res.Order = append(w.res.Order, s)
		if err := w.opts.OnVisit(s, depth); err != nil {
			return fmt.Errorf("wfstutil: OnVisit error at state %d: %w", s, err)
		}

		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			continue
		}

		it := w.f.NewArcIterator(s)
		for ; !it.Done(); it.Next() {
			a := it.Value()
			if !w.visited[a.NextState] {
				w.enqueue(a.NextState, depth+1, s)
			}
		}
	}

	return nil
}
