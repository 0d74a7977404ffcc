package isomorphic

import (
	"sort"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Test reports whether a and b are isomorphic: equal up to a state and
// arc reordering, within delta on weight comparisons. err is true when
// the comparison could not be trusted — either a quantized-weight hash
// collision (ErrHashCollision territory) or adjacent arcs that tie
// under the comparator, meaning one or both inputs are non-
// deterministic as unweighted automata and Test's result is
// unreliable. Ports the reference implementation's
// Isomorphism::IsIsomorphic/IsIsomorphicState.
func Test[W semiring.Weight](a, b fst.Fst[W], delta float64) (isomorphic bool, err bool) {
	start1, start2 := a.Start(), b.Start()
	if start1 == fst.NoStateId && start2 == fst.NoStateId {
		return true, false
	}
	if start1 == fst.NoStateId || start2 == fst.NoStateId {
		return false, false
	}

	statePairs := make(map[fst.StateId]fst.StateId)
	var queue []pair

	pairState := func(s1, s2 fst.StateId) bool {
		if existing, ok := statePairs[s1]; ok {
			return existing == s2
		}
		statePairs[s1] = s2
		queue = append(queue, pair{s1, s2})

		return true
	}

	if !pairState(start1, start2) {
		return false, false
	}

	var hashCollision bool
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		ok, fatal := isomorphicState(a, b, p.s1, p.s2, delta, pairState, &hashCollision)
		if fatal {
			return false, true
		}
		if !ok {
			return false, hashCollision
		}
	}

	return true, hashCollision
}

type pair struct {
	s1, s2 fst.StateId
}

// isomorphicState compares one paired state's final weight and sorted
// arc list, queuing each arc's destination pair via pairState. fatal
// reports non-determinism detected while comparing (an unrecoverable
// error, mirroring the reference's immediate-return behavior);
// hashCollision is set (but comparison continues) when a
// non-idempotent semiring's quantized hash collides for two otherwise
// distinct weights.
func isomorphicState[W semiring.Weight](
	a, b fst.Fst[W],
	s1, s2 fst.StateId,
	delta float64,
	pairState func(fst.StateId, fst.StateId) bool,
	hashCollision *bool,
) (ok bool, fatal bool) {
	if !a.Final(s1).ApproxEqual(b.Final(s2), delta) {
		return false, false
	}
	if a.NumArcs(s1) != b.NumArcs(s2) {
		return false, false
	}

	arcs1 := collectArcs(a, s1)
	arcs2 := collectArcs(b, s2)

	sortArcs(arcs1, delta, hashCollision)
	sortArcs(arcs2, delta, hashCollision)

	for i := range arcs1 {
		arc1, arc2 := arcs1[i], arcs2[i]
		if arc1.ILabel != arc2.ILabel || arc1.OLabel != arc2.OLabel {
			return false, false
		}
		if !arc1.Weight.ApproxEqual(arc2.Weight, delta) {
			return false, false
		}
		if !pairState(arc1.NextState, arc2.NextState) {
			return false, false
		}

		if i > 0 {
			prev := arcs1[i-1]
			if arc1.ILabel == prev.ILabel && arc1.OLabel == prev.OLabel &&
				arc1.Weight.ApproxEqual(prev.Weight, delta) {
				return false, true
			}
		}
	}

	return true, false
}

func collectArcs[W semiring.Weight](f fst.Fst[W], s fst.StateId) []fst.Arc[W] {
	var arcs []fst.Arc[W]
	it := f.NewArcIterator(s)
	for ; !it.Done(); it.Next() {
		arcs = append(arcs, it.Value())
	}

	return arcs
}

// sortArcs orders arcs by (ilabel, olabel, weight-order), where
// weight-order is the semiring's natural Less when Idempotent, else a
// quantize-then-hash comparison that flags *hashCollision when two
// weights that differ after quantization hash to the same bucket.
func sortArcs[W semiring.Weight](arcs []fst.Arc[W], delta float64, hashCollision *bool) {
	sort.SliceStable(arcs, func(i, j int) bool {
		a1, a2 := arcs[i], arcs[j]
		if a1.ILabel != a2.ILabel {
			return a1.ILabel < a2.ILabel
		}
		if a1.OLabel != a2.OLabel {
			return a1.OLabel < a2.OLabel
		}

		return weightLess(a1.Weight, a2.Weight, delta, hashCollision)
	})
}

func weightLess[W semiring.Weight](w1, w2 W, delta float64, hashCollision *bool) bool {
	if w1.Properties().Has(semiring.Idempotent) {
		return semiring.NaturalLess(w1, w2)
	}

	q1 := w1.Quantize(delta)
	q2 := w2.Quantize(delta)
	h1 := q1.Hash()
	h2 := q2.Hash()
	if h1 == h2 && !q1.Equal(q2) {
		*hashCollision = true
	}

	return h1 < h2
}
