package concat

import (
	"fmt"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// GrowLeft rewrites fst1 in place into the concatenation fst1 . fst2:
// fst2's states are appended to fst1, every previously-final state of
// fst1 loses its final weight and gains an epsilon arc into fst2's
// (shifted) start carrying that weight. Ports the reference
// implementation's Concat(MutableFst<Arc> *fst1, const Fst<Arc> &fst2)
// overload verbatim.
func GrowLeft[W semiring.Weight](fst1 fst.MutableFst[W], fst2 fst.Fst[W]) error {
	if !fst.CompatSymbols(fst1.InputSymbols(), fst2.InputSymbols()) ||
		!fst.CompatSymbols(fst1.OutputSymbols(), fst2.OutputSymbols()) {
		fst1.SetProperties(fst.Error, fst.Error)

		return fmt.Errorf("%w: %w", fst.ErrIncompatibleSymbols, ErrIncompatibleSymbols)
	}

	props1 := fst1.Properties(^fst.PropertyBits(0), false)
	props2 := fst2.Properties(^fst.PropertyBits(0), false)

	start1 := fst1.Start()
	if start1 == fst.NoStateId {
		if props2.Has(fst.Error) {
			fst1.SetProperties(fst.Error, fst.Error)
		}

		return nil
	}

	numStates1 := fst.StateId(countStates(fst1))
	if fst2.Properties(fst.Expanded, false).Has(fst.Expanded) {
		fst1.ReserveStates(int(numStates1) + countStates(fst2))
	}

	sit2 := fst2.NewStateIterator()
	for ; !sit2.Done(); sit2.Next() {
		s2 := sit2.Value()
		s1 := fst1.AddState()
		fst1.SetFinal(s1, fst2.Final(s2))
		fst1.ReserveArcs(s1, fst2.NumArcs(s2))

		it := fst2.NewArcIterator(s2)
		for ; !it.Done(); it.Next() {
			a := it.Value()
			a.NextState += numStates1
			fst1.AddArc(s1, a)
		}
	}

	var zero W
	start2 := fst2.Start()
	for s1 := fst.StateId(0); s1 < numStates1; s1++ {
		fw := fst1.Final(s1)
		if fw.Equal(zero.Zero()) {
			continue
		}
		fst1.SetFinal(s1, zero.Zero().(W))
		if start2 != fst.NoStateId {
			fst1.AddArc(s1, fst.Arc[W]{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: fw, NextState: start2 + numStates1})
		}
	}

	if start2 != fst.NoStateId {
		merged := fst.ConcatProperties(props1, props2)
		fst1.SetProperties(merged.Value, merged.Known)
	}

	return nil
}

// GrowRight rewrites fst2 in place into the concatenation fst1 . fst2:
// fst1's states are prepended before fst2's existing states (shifted
// by fst2's original state count), each gaining an epsilon arc into
// fst2's original start when final in fst1, and fst2's start moves to
// fst1's (shifted) start. Ports the reference implementation's
// Concat(const Fst<Arc> &fst1, MutableFst<Arc> *fst2) overload.
func GrowRight[W semiring.Weight](fst1 fst.Fst[W], fst2 fst.MutableFst[W]) error {
	if !fst.CompatSymbols(fst1.InputSymbols(), fst2.InputSymbols()) ||
		!fst.CompatSymbols(fst1.OutputSymbols(), fst2.OutputSymbols()) {
		fst2.SetProperties(fst.Error, fst.Error)

		return fmt.Errorf("%w: %w", fst.ErrIncompatibleSymbols, ErrIncompatibleSymbols)
	}

	props1 := fst1.Properties(^fst.PropertyBits(0), false)
	props2 := fst2.Properties(^fst.PropertyBits(0), false)

	start2 := fst2.Start()
	if start2 == fst.NoStateId {
		if props1.Has(fst.Error) {
			fst2.SetProperties(fst.Error, fst.Error)
		}

		return nil
	}

	numStates2 := fst.StateId(countStates(fst2))
	if fst1.Properties(fst.Expanded, false).Has(fst.Expanded) {
		fst2.ReserveStates(int(numStates2) + countStates(fst1))
	}

	var zero W
	sit1 := fst1.NewStateIterator()
	for ; !sit1.Done(); sit1.Next() {
		s1 := sit1.Value()
		s2 := fst2.AddState()
		fw := fst1.Final(s1)
		extra := 0
		if !fw.Equal(zero.Zero()) {
			extra = 1
		}
		fst2.ReserveArcs(s2, fst1.NumArcs(s1)+extra)
		if extra == 1 {
			fst2.AddArc(s2, fst.Arc[W]{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: fw, NextState: start2})
		}

		it := fst1.NewArcIterator(s1)
		for ; !it.Done(); it.Next() {
			a := it.Value()
			a.NextState += numStates2
			fst2.AddArc(s2, a)
		}
	}

	start1 := fst1.Start()
	if start1 == fst.NoStateId {
		fst2.SetStart(fst2.AddState())
	} else {
		fst2.SetStart(start1 + numStates2)
	}

	if start1 != fst.NoStateId {
		merged := fst.ConcatProperties(props1, props2)
		fst2.SetProperties(merged.Value, merged.Known)
	}

	return nil
}

// countStates counts f's states by draining a StateIterator, since
// fst.Fst exposes no O(1) state-count accessor for a possibly-delayed
// implementation.
func countStates[W semiring.Weight](f fst.Fst[W]) int {
	n := 0
	sit := f.NewStateIterator()
	for ; !sit.Done(); sit.Next() {
		n++
	}

	return n
}
