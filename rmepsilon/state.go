package rmepsilon

import (
	"sort"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/katalvlaran/wfst/shortestdistance"
)

// element is the combining key for one non-epsilon arc reached from a
// state's epsilon closure (the final weight is summed separately). Two arcs reached through different
// epsilon paths with the same (ilabel, olabel, nextstate) combine by
// Plus on their weights, the same collapsing the reference
// implementation's Element/expand-id map performs while expanding
// RmEpsilonState.
type element struct {
	iLabel    fst.Label
	oLabel    fst.Label
	nextState fst.StateId
}

// Expand computes the combined non-epsilon outgoing arcs and final
// weight reachable from s through zero or more epsilon (both labels
// Epsilon) transitions, each arc's weight premultiplied by the
// epsilon-closure shortest distance to the state it originates from.
// This is the per-state transformation both the eager Do and the
// delayed NewFst apply; it is exactly RmEpsilonState::Expand from the
// reference implementation, restated over shortestdistance.Compute
// instead of a bespoke closure-specific relaxation loop. The closure
// states are visited in StateId order (shortestdistance.Compute
// returns them as a map, whose iteration order Go does not fix) so
// that expanding the same state twice always yields the same arc
// slice, in the same order.
func Expand[W semiring.Weight](f fst.Fst[W], s fst.StateId, delta float64) ([]fst.Arc[W], W, error) {
	var zero W
	zeroW := zero.Zero().(W)

	closure, err := shortestdistance.Compute(
		f, s,
		shortestdistance.EpsilonFilter[W],
		shortestdistance.NewFIFOQueue[W](),
		shortestdistance.WithDelta(delta),
	)
	if err != nil {
		return nil, zeroW, err
	}

	closureStates := make([]fst.StateId, 0, len(closure))
	for q := range closure {
		closureStates = append(closureStates, q)
	}
	sort.Slice(closureStates, func(i, j int) bool { return closureStates[i] < closureStates[j] })

	weights := make(map[element]W)
	var order []element
	final := zeroW

	for _, q := range closureStates {
		d := closure[q]
		it := f.NewArcIterator(q)
		for ; !it.Done(); it.Next() {
			a := it.Value()
			if a.ILabel == fst.Epsilon && a.OLabel == fst.Epsilon {
				continue
			}
			key := element{iLabel: a.ILabel, oLabel: a.OLabel, nextState: a.NextState}
			w := d.Times(a.Weight).(W)
			if prev, ok := weights[key]; ok {
				weights[key] = prev.Plus(w).(W)
			} else {
				weights[key] = w
				order = append(order, key)
			}
		}

		fw := f.Final(q)
		if !fw.Equal(zeroW) {
			final = final.Plus(d.Times(fw)).(W)
		}
	}

	arcs := make([]fst.Arc[W], len(order))
	for i, key := range order {
		arcs[i] = fst.Arc[W]{
			ILabel:    key.iLabel,
			OLabel:    key.oLabel,
			Weight:    weights[key],
			NextState: key.nextState,
		}
	}

	return arcs, final, nil
}
