package labelreachable

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/labelreachable/intervalset"
	"github.com/katalvlaran/wfst/semiring"
)

// LabelPair is a (From, To) relabeling pair, the same shape
// relabel.h::Relabel expects in the reference implementation.
type LabelPair struct {
	From fst.Label
	To   fst.Label
}

// Reachable answers "can label l be read as the first non-epsilon
// symbol along some path from state s of the Fst New was built from?"
// Call SetState before Reach/ReachFinal/ReachRange. A Reachable is not safe for concurrent use from multiple
// goroutines (SetState mutates shared cursor fields), mirroring the
// reference's single-threaded-per-copy contract.
type Reachable[W semiring.Weight] struct {
	reachInput        bool
	numOriginalStates int
	isets             []intervalset.Set
	label2index       map[fst.Label]fst.Label // nil if KeepRelabelData was false
	finalLabel        fst.Label
	nextFreeIndex     fst.Label
	accumulator       Accumulator[W]

	s        fst.StateId
	hasError bool

	reachFstInput bool
	reachBegin    int
	reachEnd      int
	reachWeight   W
}

// New builds a Reachable for f. If reachInput is true, reachability is
// tested against input labels; otherwise against output labels.
func New[W semiring.Weight](f fst.Fst[W], reachInput bool, opts ...Option[W]) (*Reachable[W], error) {
	o := DefaultOptions[W]()
	for _, opt := range opts {
		opt(&o)
	}

	ins := countStates(f)
	g := buildTransform(f, reachInput)
	scc := tarjanSCC(g)
	full := buildIntervalSets(g, scc)

	var zero W
	r := &Reachable[W]{
		reachInput:        reachInput,
		numOriginalStates: ins,
		isets:             full[:ins],
		finalLabel:        fst.NoLabel,
		nextFreeIndex:     fst.Label(g.numStates),
		accumulator:       o.Accumulator,
		s:                 fst.NoStateId,
		reachWeight:       zero.Zero().(W),
	}

	label2index := make(map[fst.Label]fst.Label, len(g.label2state))
	for label, node := range g.label2state {
		idx := fst.Label(node)
		label2index[label] = idx
		if label == fst.NoLabel {
			r.finalLabel = idx
		}
	}
	if o.KeepRelabelData {
		r.label2index = label2index
	}

	return r, nil
}

// SetState sets the current state for subsequent Reach/ReachFinal/
// ReachRange calls.
func (r *Reachable[W]) SetState(s fst.StateId) {
	r.s = s
}

// Reach reports whether label can be read as the first non-epsilon
// symbol along some path from the current state. label must already
// have been passed through Relabel if it did not originate from the
// Fst New was built from.
func (r *Reachable[W]) Reach(label fst.Label) bool {
	if label == fst.Epsilon || r.hasError {
		return false
	}
	if r.s < 0 || int(r.s) >= len(r.isets) {
		return false
	}

	return r.isets[r.s].Member(label)
}

// ReachFinal reports whether a final state is reachable (via an
// epsilon path) from the current state.
func (r *Reachable[W]) ReachFinal() bool {
	if r.hasError {
		return false
	}
	if r.s < 0 || int(r.s) >= len(r.isets) {
		return false
	}

	return r.isets[r.s].Member(r.finalLabel)
}

// Error reports whether this Reachable (or its accumulator) has
// recorded an unrecoverable error.
func (r *Reachable[W]) Error() bool {
	return r.hasError
}

// Relabel maps label to the compact index space used internally by
// this Reachable's interval sets. Epsilon is returned unchanged.
// Labels not seen while building this Reachable (e.g. from a second,
// composition-partner Fst) are assigned a fresh index guaranteed
// distinct from every index in use, so they correctly test as
// unreachable from any state. Requires KeepRelabelData; otherwise sets
// Error() and returns label unchanged.
func (r *Reachable[W]) Relabel(label fst.Label) fst.Label {
	if label == fst.Epsilon || r.hasError {
		return label
	}
	if r.label2index == nil {
		r.hasError = true

		return label
	}
	if idx, ok := r.label2index[label]; ok {
		return idx
	}

	idx := r.nextFreeIndex
	r.nextFreeIndex++
	r.label2index[label] = idx

	return idx
}

// RelabelFst rewrites every arc of f on the relabelInput side (ilabel
// if true, else olabel) via Relabel, then re-sorts each state's arcs
// on that side and clears the corresponding symbol table, mirroring
// the reference's Relabel(MutableFst*, bool) — a companion this
// package adds so ReachRange's sorted-arc precondition is actually
// establishable by a caller.
func (r *Reachable[W]) RelabelFst(f fst.MutableFst[W], relabelInput bool) {
	sit := f.NewStateIterator()
	for ; !sit.Done(); sit.Next() {
		s := sit.Value()

		var arcs []fst.Arc[W]
		it := f.NewArcIterator(s)
		for ; !it.Done(); it.Next() {
			arcs = append(arcs, it.Value())
		}
		f.DeleteArcs(s)

		for i := range arcs {
			if relabelInput {
				arcs[i].ILabel = r.Relabel(arcs[i].ILabel)
			} else {
				arcs[i].OLabel = r.Relabel(arcs[i].OLabel)
			}
		}
		if relabelInput {
			sort.SliceStable(arcs, func(i, j int) bool { return arcs[i].ILabel < arcs[j].ILabel })
		} else {
			sort.SliceStable(arcs, func(i, j int) bool { return arcs[i].OLabel < arcs[j].OLabel })
		}
		for _, a := range arcs {
			f.AddArc(s, a)
		}
	}

	if relabelInput {
		f.SetInputSymbols(nil)
		f.SetProperties(fst.ILabelSorted, fst.ILabelSorted)
	} else {
		f.SetOutputSymbols(nil)
		f.SetProperties(fst.OLabelSorted, fst.OLabelSorted)
	}
}

// RelabelPairs returns the (From, To) pairs recorded so far, excluding
// the synthetic final-state label. When avoidCollisions is true, every
// label value in [0, highest index assigned so far] that isn't already
// a relabeling source is additionally mapped to a fresh index, so a
// caller relabeling a second Fst with Relabel(pairs) cannot have an
// untouched label numerically collide with an index already in use.
func (r *Reachable[W]) RelabelPairs(avoidCollisions bool) []LabelPair {
	if r.label2index == nil {
		r.hasError = true

		return nil
	}

	var maxIndex fst.Label = -1
	for _, idx := range r.label2index {
		if idx > maxIndex {
			maxIndex = idx
		}
	}

	pairs := make([]LabelPair, 0, len(r.label2index))
	for from, to := range r.label2index {
		if to != r.finalLabel {
			pairs = append(pairs, LabelPair{From: from, To: to})
		}
	}

	if avoidCollisions {
		for v := fst.Label(0); v <= maxIndex; v++ {
			if _, ok := r.label2index[v]; ok {
				continue
			}
			pairs = append(pairs, LabelPair{From: v, To: r.nextFreeIndex})
			r.nextFreeIndex++
		}
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].From < pairs[j].From })

	return pairs
}

// ReachInit prepares this Reachable to test reachability over a
// secondary Fst's arc iterators via ReachRange. reachFstInput selects
// which of that Fst's arc label sides is tested. Returns ErrUnsorted
// (and sets Error()) if secondary is not sorted on that side.
func (r *Reachable[W]) ReachInit(secondary fst.Fst[W], reachFstInput bool) error {
	r.reachFstInput = reachFstInput

	mask := fst.OLabelSorted
	if reachFstInput {
		mask = fst.ILabelSorted
	}
	if !secondary.Properties(mask, true).Has(mask) {
		r.hasError = true

		return fmt.Errorf("%w: %w", fst.ErrUnsorted, ErrUnsorted)
	}

	return nil
}

// ReachRange reports whether any arc in it's positions [begin, end)
// has a label (per ReachInit's reachFstInput side) reachable from the
// current state. When computeWeight is true, ReachWeight returns the
// accumulated weight of the matching arcs afterward. Chooses between a
// linear scan (checking each arc against the interval set) and a
// binary search (checking each interval against the sorted arcs) by
// comparing the scan's cost against the interval count, exactly the
// reference's 2*(end-begin) < |intervals| rule.
func (r *Reachable[W]) ReachRange(it fst.ArcIterator[W], begin, end int, computeWeight bool) bool {
	r.reachBegin, r.reachEnd = -1, -1
	var zero W
	r.reachWeight = zero.Zero().(W)

	if r.hasError {
		return false
	}
	if r.s < 0 || int(r.s) >= len(r.isets) {
		return false
	}
	iset := r.isets[r.s]

	labelOf := func(a fst.Arc[W]) fst.Label {
		if r.reachFstInput {
			return a.ILabel
		}

		return a.OLabel
	}

	if 2*(end-begin) < iset.Size() {
		it.Seek(begin)
		reachLabel := fst.NoLabel
		for pos := begin; pos < end; pos++ {
			a := it.Value()
			label := labelOf(a)
			if label == reachLabel || r.Reach(label) {
				reachLabel = label
				if r.reachBegin < 0 {
					r.reachBegin = pos
				}
				r.reachEnd = pos + 1
				if computeWeight {
					r.reachWeight = r.accumulator.Sum(r.reachWeight, a.Weight)
				}
			}
			it.Next()
		}
	} else {
		endLow := begin
		for _, iv := range iset.Intervals() {
			beginLow := r.lowerBound(it, endLow, end, fst.Label(iv.Begin))
			endLow = r.lowerBound(it, beginLow, end, fst.Label(iv.End))
			if endLow-beginLow > 0 {
				if r.reachBegin < 0 {
					r.reachBegin = beginLow
				}
				r.reachEnd = endLow
				if computeWeight {
					r.reachWeight = r.accumulator.SumRange(r.reachWeight, it, beginLow, endLow)
				}
			}
		}
	}

	return r.reachBegin >= 0
}

// lowerBound returns the first position in [begin, end) of it whose
// label (per reachFstInput) is >= matchLabel, scanning backward from a
// binary-search hit to the first of any tied run (handling a
// non-deterministically labeled it).
func (r *Reachable[W]) lowerBound(it fst.ArcIterator[W], begin, end int, matchLabel fst.Label) int {
	labelAt := func(pos int) fst.Label {
		it.Seek(pos)
		a := it.Value()
		if r.reachFstInput {
			return a.ILabel
		}

		return a.OLabel
	}

	low, high := begin, end
	for low < high {
		mid := (low + high) / 2
		label := labelAt(mid)
		switch {
		case label > matchLabel:
			high = mid
		case label < matchLabel:
			low = mid + 1
		default:
			i := mid
			for i > low {
				if labelAt(i-1) != matchLabel {
					return i
				}
				i--
			}

			return low
		}
	}

	return low
}

// ReachBegin returns the iterator position of the first match found by
// the most recent ReachRange call.
func (r *Reachable[W]) ReachBegin() int { return r.reachBegin }

// ReachEnd returns the iterator position one past the last match found
// by the most recent ReachRange call.
func (r *Reachable[W]) ReachEnd() int { return r.reachEnd }

// ReachWeight returns the accumulated weight of matches found by the
// most recent ReachRange call, valid only if it was called with
// computeWeight true.
func (r *Reachable[W]) ReachWeight() W { return r.reachWeight }
