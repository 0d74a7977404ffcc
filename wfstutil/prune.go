package wfstutil

import (
	"sort"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/katalvlaran/wfst/shortestdistance"
)

// Prune discards every state whose best weight through it (shortest
// distance from Start, times shortest distance to a final state)
// exceeds threshold under the semiring's natural order, then — if
// maxStates is non-negative — keeps only the maxStates best-scoring
// survivors. Requires an Idempotent semiring (the natural order used
// to compare weights is only a total order in that case); behavior on
// a non-idempotent semiring is unspecified, matching rmepsilon's
// Options doc comment.
//
// Pruning is grounded on the reference implementation's shortest-
// distance-to/from pruning idiom, adapted here to Queue[W]/Compute from
// shortestdistance rather than a bespoke traversal: the forward half
// reuses shortestdistance.Compute directly, and the backward half runs
// the same residual-relaxation shape over a reverse adjacency list
// built locally, since the package has no standalone Reverse operation
// yet.
func Prune[W semiring.Weight](f fst.MutableFst[W], threshold W, maxStates int64, queue shortestdistance.Queue[W]) error {
	start := f.Start()
	if start == fst.NoStateId {
		return nil
	}

	forward, err := shortestdistance.Compute(f, start, shortestdistance.AnyArcFilter[W], queue)
	if err != nil {
		return err
	}

	backward := backwardDistance[W](f)

	var zero W
	zeroW := zero.Zero().(W)
	hasThreshold := !threshold.Equal(zeroW)

	type scored struct {
		id    fst.StateId
		total W
	}
	var all []scored

	sit := f.NewStateIterator()
	for ; !sit.Done(); sit.Next() {
		s := sit.Value()
		fd, ok := forward[s]
		if !ok {
			fd = zeroW
		}
		bd, ok := backward[s]
		if !ok {
			bd = zeroW
		}
		total := fd.Times(bd).(W)
		all = append(all, scored{id: s, total: total})
	}

	sort.Slice(all, func(i, j int) bool {
		return semiring.NaturalLess(all[i].total, all[j].total)
	})

	keep := make(map[fst.StateId]bool, len(all))
	for i, sc := range all {
		if sc.total.Equal(zeroW) {
			continue
		}
		if hasThreshold && threshold.Less(sc.total) {
			continue
		}
		if maxStates >= 0 && int64(i) >= maxStates {
			continue
		}
		keep[sc.id] = true
	}
	keep[start] = true

	sit = f.NewStateIterator()
	for ; !sit.Done(); sit.Next() {
		s := sit.Value()
		if keep[s] {
			continue
		}
		f.DeleteArcs(s)
		f.SetFinal(s, zeroW)
	}

	return nil
}

// backwardDistance computes, for every state s, the shortest distance
// from s to some final state, by relaxing a reverse adjacency list
// seeded at every final state's own final weight. The loop shape
// mirrors shortestdistance's engine (residual-driven, ApproxEqual-
// gated re-enqueue) but walks reverse arcs built by one forward scan.
func backwardDistance[W semiring.Weight](f fst.Fst[W]) map[fst.StateId]W {
	type revArc struct {
		from   fst.StateId
		weight W
	}
	reverse := make(map[fst.StateId][]revArc)

	var zero W
	zeroW := zero.Zero().(W)

	distance := make(map[fst.StateId]W)
	residual := make(map[fst.StateId]W)
	var queue []fst.StateId

	sit := f.NewStateIterator()
	for ; !sit.Done(); sit.Next() {
		s := sit.Value()
		fw := f.Final(s)
		if !fw.Equal(zeroW) {
			distance[s] = fw
			residual[s] = fw
			queue = append(queue, s)
		}
		it := f.NewArcIterator(s)
		for ; !it.Done(); it.Next() {
			a := it.Value()
			reverse[a.NextState] = append(reverse[a.NextState], revArc{from: s, weight: a.Weight})
		}
	}

	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]

		r, ok := residual[q]
		if !ok || r.Equal(zeroW) {
			continue
		}
		residual[q] = zeroW

		for _, ra := range reverse[q] {
			mass := r.Times(ra.weight).(W)
			prevD, ok := distance[ra.from]
			if !ok {
				prevD = zeroW
			}
			newD := prevD.Plus(mass).(W)
			prevR, ok := residual[ra.from]
			if !ok {
				prevR = zeroW
			}
			newR := prevR.Plus(mass).(W)
			distance[ra.from] = newD
			if !newR.Equal(prevR) {
				residual[ra.from] = newR
				queue = append(queue, ra.from)
			}
		}
	}

	return distance
}
