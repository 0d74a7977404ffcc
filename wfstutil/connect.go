package wfstutil

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Connect removes arcs and finality from every state that is not both
// accessible (reachable from Start) and coaccessible (has a path to
// some final state), mirroring the reference implementation's Connect
// pass that rmepsilon's eager Do runs when its Connect option is set
// (the default).
//
// The underlying MutableFst interface has no primitive for physically
// deleting a state (renumbering every other state's ids), so states
// outside the accessible∩coaccessible set are orphaned in place —
// their arcs are cleared and their final weight zeroed — rather than
// removed from the state space. This preserves every reachable
// StateId's identity (important for callers holding onto ids from
// before Connect ran) at the cost of leaving dead states allocated.
// "Connect" is defined here by its observable effect (dead states
// carry no weight out of the result), not by the reference's physical
// renumbering.
func Connect[W semiring.Weight](f fst.MutableFst[W]) {
	start := f.Start()
	if start == fst.NoStateId {
		return
	}

	accessible := reachableForward(f, start)
	coaccessible := reachableBackward(f, accessible)

	sit := f.NewStateIterator()
	for ; !sit.Done(); sit.Next() {
		s := sit.Value()
		if accessible[s] && coaccessible[s] {
			continue
		}
		f.DeleteArcs(s)

		var zero W
		f.SetFinal(s, zero.Zero().(W))
	}

	if !accessible[start] || !coaccessible[start] {
		f.SetStart(fst.NoStateId)
	}
}

// reachableForward delegates to Walk for a BFS from start over every
// outgoing arc, using its Depth map (every key visited, values
// unused here) as the visited set Connect needs.
func reachableForward[W semiring.Weight](f fst.Fst[W], start fst.StateId) map[fst.StateId]bool {
	res, _ := Walk[W](f, start)

	visited := make(map[fst.StateId]bool, len(res.Depth))
	for s := range res.Depth {
		visited[s] = true
	}

	return visited
}

// reachableBackward computes every state with a path to a final state,
// restricted to the accessible set (dead states outside it can never
// be coaccessible in a way that matters to Connect). It builds a
// reverse adjacency list by scanning every accessible state's arcs once
// and then runs the same BFS shape backwards.
func reachableBackward[W semiring.Weight](f fst.Fst[W], accessible map[fst.StateId]bool) map[fst.StateId]bool {
	reverse := make(map[fst.StateId][]fst.StateId)
	var finals []fst.StateId

	for s := range accessible {
		var zero W
		if !f.Final(s).Equal(zero.Zero()) {
			finals = append(finals, s)
		}
		it := f.NewArcIterator(s)
		for ; !it.Done(); it.Next() {
			a := it.Value()
			reverse[a.NextState] = append(reverse[a.NextState], s)
		}
	}

	visited := make(map[fst.StateId]bool, len(finals))
	queue := append([]fst.StateId(nil), finals...)
	for _, s := range finals {
		visited[s] = true
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, p := range reverse[s] {
			if !visited[p] {
				visited[p] = true
				queue = append(queue, p)
			}
		}
	}

	return visited
}
