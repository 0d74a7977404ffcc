package shortestdistance

import (
	"container/heap"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Queue is a pluggable enqueue/dequeue discipline for the shortest-
// distance engine's main loop. Enqueue is called with the state whose
// residual just changed materially and its current residual value (so
// priority-ordered disciplines can use it); disciplines that don't care
// about the value (FIFO, LIFO) simply ignore it. Disciplines use a
// lazy-decrease-key strategy: the same state may be enqueued more than
// once, and it is the engine's job to skip a dequeued state that has
// already been fully relaxed in this round.
type Queue[W semiring.Weight] interface {
	// Enqueue admits s with residual value w for future processing.
	Enqueue(s fst.StateId, w W)
	// Dequeue removes and returns the next state to process.
	Dequeue() fst.StateId
	// Empty reports whether the queue holds no pending states.
	Empty() bool
}

// FIFOQueue processes states in the order they were first enqueued
// (BFS-like), appropriate for unweighted or uniform-cost acyclic
// filtered subgraphs.
type FIFOQueue[W semiring.Weight] struct {
	items []fst.StateId
}

// NewFIFOQueue returns an empty FIFOQueue.
func NewFIFOQueue[W semiring.Weight]() *FIFOQueue[W] { return &FIFOQueue[W]{} }

func (q *FIFOQueue[W]) Enqueue(s fst.StateId, w W) { q.items = append(q.items, s) }
func (q *FIFOQueue[W]) Dequeue() fst.StateId {
	s := q.items[0]
	q.items = q.items[1:]

	return s
}
func (q *FIFOQueue[W]) Empty() bool { return len(q.items) == 0 }

// LIFOQueue processes the most recently enqueued state first
// (DFS-like).
type LIFOQueue[W semiring.Weight] struct {
	items []fst.StateId
}

// NewLIFOQueue returns an empty LIFOQueue.
func NewLIFOQueue[W semiring.Weight]() *LIFOQueue[W] { return &LIFOQueue[W]{} }

func (q *LIFOQueue[W]) Enqueue(s fst.StateId, w W) { q.items = append(q.items, s) }
func (q *LIFOQueue[W]) Dequeue() fst.StateId {
	n := len(q.items) - 1
	s := q.items[n]
	q.items = q.items[:n]

	return s
}
func (q *LIFOQueue[W]) Empty() bool { return len(q.items) == 0 }

// ShortestFirstQueue processes the state with the smallest pending
// residual first, using each weight's natural order (only valid when
// the semiring is Idempotent). It is Dijkstra's min-heap priority
// queue generalized from a fixed int64 distance to an arbitrary
// idempotent weight.
type ShortestFirstQueue[W semiring.Weight] struct {
	h sfHeap[W]
}

// NewShortestFirstQueue returns an empty ShortestFirstQueue.
func NewShortestFirstQueue[W semiring.Weight]() *ShortestFirstQueue[W] {
	q := &ShortestFirstQueue[W]{}
	heap.Init(&q.h)

	return q
}

func (q *ShortestFirstQueue[W]) Enqueue(s fst.StateId, w W) {
	heap.Push(&q.h, sfItem[W]{s: s, w: w})
}
func (q *ShortestFirstQueue[W]) Dequeue() fst.StateId {
	item := heap.Pop(&q.h).(sfItem[W])

	return item.s
}
func (q *ShortestFirstQueue[W]) Empty() bool { return q.h.Len() == 0 }

type sfItem[W semiring.Weight] struct {
	s fst.StateId
	w W
}

type sfHeap[W semiring.Weight] []sfItem[W]

func (h sfHeap[W]) Len() int            { return len(h) }
func (h sfHeap[W]) Less(i, j int) bool  { return h[i].w.Less(h[j].w) }
func (h sfHeap[W]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *sfHeap[W]) Push(x interface{}) { *h = append(*h, x.(sfItem[W])) }
func (h *sfHeap[W]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// TopologicalQueue processes states in increasing StateId order,
// correct only when the filtered subgraph is acyclic and numbered so
// every admitted arc goes from a lower to a higher id (a single pass
// then suffices, since every predecessor is guaranteed dequeued first).
type TopologicalQueue[W semiring.Weight] struct {
	h idHeap
}

// NewTopologicalQueue returns an empty TopologicalQueue.
func NewTopologicalQueue[W semiring.Weight]() *TopologicalQueue[W] {
	return &TopologicalQueue[W]{}
}

func (q *TopologicalQueue[W]) Enqueue(s fst.StateId, w W) { heap.Push(&q.h, s) }
func (q *TopologicalQueue[W]) Dequeue() fst.StateId       { return heap.Pop(&q.h).(fst.StateId) }
func (q *TopologicalQueue[W]) Empty() bool                { return q.h.Len() == 0 }

type idHeap []fst.StateId

func (h idHeap) Len() int            { return len(h) }
func (h idHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *idHeap) Push(x interface{}) { *h = append(*h, x.(fst.StateId)) }
func (h *idHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
