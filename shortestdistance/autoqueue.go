package shortestdistance

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// AutoQueue decomposes the filtered subgraph of f into strongly
// connected components and, for each component, picks the cheapest
// correct discipline: TopologicalQueue for a trivial (single-state,
// no self-loop) component, ShortestFirstQueue for a non-trivial
// component when the semiring is Idempotent, and FIFOQueue otherwise.
// Components are drained strictly in the condensation's topological
// order, since a component can only be safely finalized once every
// component it depends on has already been fully relaxed.
type AutoQueue[W semiring.Weight] struct {
	compOf   map[fst.StateId]int
	order    []int // component ids in topological order, source-first
	pos      int   // index into order of the earliest non-empty component
	subQueue []Queue[W]
}

// NewAutoQueue builds the SCC decomposition of f's filter-admitted
// subgraph reachable from source and returns the dispatching queue.
func NewAutoQueue[W semiring.Weight](f fst.Fst[W], source fst.StateId, filter ArcFilter[W]) *AutoQueue[W] {
	comps, topo := tarjanSCC(f, source, filter)

	aq := &AutoQueue[W]{
		compOf: comps,
		order:  topo,
	}
	size := make(map[int]int)
	selfLoop := make(map[int]bool)
	for s, c := range comps {
		size[c]++
		it := f.NewArcIterator(s)
		for ; !it.Done(); it.Next() {
			a := it.Value()
			if !filter(a) {
				continue
			}
			if c2, ok := comps[a.NextState]; ok && c2 == c && a.NextState == s {
				selfLoop[c] = true
			}
		}
	}

	var zero W
	idempotent := zero.Zero().(W).Properties().Has(semiring.Idempotent)

	aq.subQueue = make([]Queue[W], len(topo))
	for i, c := range topo {
		switch {
		case size[c] <= 1 && !selfLoop[c]:
			aq.subQueue[i] = NewTopologicalQueue[W]()
		case idempotent:
			aq.subQueue[i] = NewShortestFirstQueue[W]()
		default:
			aq.subQueue[i] = NewFIFOQueue[W]()
		}
	}

	return aq
}

// Enqueue implements Queue.
func (q *AutoQueue[W]) Enqueue(s fst.StateId, w W) {
	c := q.compOf[s]
	for i, cc := range q.order {
		if cc == c {
			q.subQueue[i].Enqueue(s, w)

			return
		}
	}
}

// Dequeue implements Queue.
func (q *AutoQueue[W]) Dequeue() fst.StateId {
	for q.pos < len(q.order) && q.subQueue[q.pos].Empty() {
		q.pos++
	}

	return q.subQueue[q.pos].Dequeue()
}

// Empty implements Queue.
func (q *AutoQueue[W]) Empty() bool {
	for q.pos < len(q.order) && q.subQueue[q.pos].Empty() {
		q.pos++
	}

	return q.pos >= len(q.order)
}

// tarjanSCC runs Tarjan's algorithm over the filter-admitted subgraph
// reachable from source, returning each visited state's component id
// and the component ids in reverse-finish (i.e. source-first
// topological) order.
func tarjanSCC[W semiring.Weight](f fst.Fst[W], source fst.StateId, filter ArcFilter[W]) (map[fst.StateId]int, []int) {
	index := make(map[fst.StateId]int)
	lowlink := make(map[fst.StateId]int)
	onStack := make(map[fst.StateId]bool)
	comp := make(map[fst.StateId]int)
	var stack []fst.StateId
	var sccOrder []int
	counter := 0
	nextComp := 0

	type frame struct {
		s       fst.StateId
		it      fst.ArcIterator[W]
		started bool
	}

	var visit func(start fst.StateId)
	visit = func(start fst.StateId) {
		var frames []frame
		frames = append(frames, frame{s: start})

		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			if !top.started {
				top.started = true
				index[top.s] = counter
				lowlink[top.s] = counter
				counter++
				stack = append(stack, top.s)
				onStack[top.s] = true
				top.it = f.NewArcIterator(top.s)
			}

			advanced := false
			for !top.it.Done() {
				a := top.it.Value()
				top.it.Next()
				if !filter(a) {
					continue
				}
				w := a.NextState
				if _, seen := index[w]; !seen {
					frames = append(frames, frame{s: w})
					advanced = true

					break
				} else if onStack[w] {
					if lowlink[w] < lowlink[top.s] {
						lowlink[top.s] = lowlink[w]
					}
				}
			}
			if advanced {
				continue
			}

			if top.it.Done() {
				if lowlink[top.s] == index[top.s] {
					nextComp++
					cid := nextComp - 1
					for {
						n := len(stack) - 1
						w := stack[n]
						stack = stack[:n]
						onStack[w] = false
						comp[w] = cid
						if w == top.s {
							break
						}
					}
					sccOrder = append(sccOrder, cid)
				}
				s := top.s
				frames = frames[:len(frames)-1]
				if len(frames) > 0 {
					parent := &frames[len(frames)-1]
					if lowlink[s] < lowlink[parent.s] {
						lowlink[parent.s] = lowlink[s]
					}
				}
			}
		}
	}

	visit(source)

	// sccOrder is emitted in finish order (sink-first); reverse for a
	// source-first topological order of the condensation.
	for i, j := 0, len(sccOrder)-1; i < j; i, j = i+1, j-1 {
		sccOrder[i], sccOrder[j] = sccOrder[j], sccOrder[i]
	}
	// Remap component ids to their position in the reversed order so
	// AutoQueue's linear scan walks components source-first.
	posOf := make(map[int]int, len(sccOrder))
	for pos, cid := range sccOrder {
		posOf[cid] = pos
	}
	for s, cid := range comp {
		comp[s] = posOf[cid]
	}
	order := make([]int, len(sccOrder))
	for i := range order {
		order[i] = i
	}

	return comp, order
}
