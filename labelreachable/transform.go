package labelreachable

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// transform is the auxiliary graph built by buildTransform: plain
// topology, no weights, since New only needs it to compute which
// synthetic sink nodes are reachable from which original state.
// Nodes 0..ins-1 are the original Fst's states, ins..start-1 are
// per-label synthetic sinks (one NoLabel sink shared by every final
// state), and
// start is the super-initial state linked to every zero-indegree node.
type transform struct {
	adj         [][]fst.StateId
	start       fst.StateId
	numStates   int
	label2state map[fst.Label]fst.StateId
}

// countStates counts f's states by draining a StateIterator, the same
// technique concat.countStates uses, since Fst exposes no O(1) state
// count for a possibly-delayed implementation.
func countStates[W semiring.Weight](f fst.Fst[W]) int {
	n := 0
	sit := f.NewStateIterator()
	for ; !sit.Done(); sit.Next() {
		n++
	}

	return n
}

// buildTransform redirects every arc labeled on the reachInput side
// (ilabel if reachInput, else olabel) to a label-specific sink state,
// and every final state's weight to a kNoLabel-specific sink, then
// adds a super-initial state linked to every node with zero in-degree.
// Ports the reference's TransformFst, assuming (as the rest of this
// module's siblings do) that the input Fst numbers its states densely
// from 0.
func buildTransform[W semiring.Weight](f fst.Fst[W], reachInput bool) *transform {
	ins := countStates(f)

	adj := make([][]fst.StateId, ins)
	indeg := make([]int, ins)
	label2state := make(map[fst.Label]fst.StateId)

	addNode := func() fst.StateId {
		id := fst.StateId(len(adj))
		adj = append(adj, nil)
		indeg = append(indeg, 0)

		return id
	}
	nodeFor := func(label fst.Label) fst.StateId {
		if st, ok := label2state[label]; ok {
			return st
		}
		st := addNode()
		label2state[label] = st

		return st
	}
	link := func(s, dest fst.StateId) {
		adj[s] = append(adj[s], dest)
		indeg[dest]++
	}

	var zero W
	zeroW := zero.Zero().(W)

	for s := fst.StateId(0); s < fst.StateId(ins); s++ {
		it := f.NewArcIterator(s)
		for ; !it.Done(); it.Next() {
			a := it.Value()
			label := a.ILabel
			if !reachInput {
				label = a.OLabel
			}
			if label != fst.Epsilon {
				link(s, nodeFor(label))
			} else {
				link(s, a.NextState)
			}
		}
		if !f.Final(s).Equal(zeroW) {
			link(s, nodeFor(fst.NoLabel))
		}
	}

	start := addNode()
	for s := fst.StateId(0); s < start; s++ {
		if indeg[s] == 0 {
			link(start, s)
		}
	}

	return &transform{
		adj:         adj,
		start:       start,
		numStates:   len(adj),
		label2state: label2state,
	}
}
