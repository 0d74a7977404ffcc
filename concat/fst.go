package concat

import (
	"sort"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/fstcache"
	"github.com/katalvlaran/wfst/semiring"
)

// lazyConcatFst is a delayed view over the concatenation of an ordered
// list of operands, generalizing the reference implementation's
// RationalFstImpl::AddConcat (a binary fold building a Car/Cdr tree)
// to a flat N-ary chain: global state ids are partitioned into
// contiguous ranges, one per operand, and every operand's final states
// (other than the last operand's) are rewritten on the fly into
// epsilon arcs reaching the next operand's start, exactly as GrowLeft
// does eagerly.
type lazyConcatFst[W semiring.Weight] struct {
	operands   []fst.Fst[W]
	offsets    []fst.StateId
	total      fst.StateId
	empty      bool
	isIdentity bool
	hasError   bool
	cache      *fstcache.Cache[W]
}

// NewFst returns a delayed Fst computing the concatenation of operands
// in order, without mutating any of them. An empty operands slice
// yields the empty-string acceptor (the monoid identity: a single
// final start state with final weight One); if any operand is itself
// the empty language (Start == NoStateId), the whole concatenation is
// the empty language.
func NewFst[W semiring.Weight](operands []fst.Fst[W]) fst.Fst[W] {
	if len(operands) == 0 {
		return &lazyConcatFst[W]{isIdentity: true, total: 1, cache: fstcache.NewCache[W](0)}
	}

	f := &lazyConcatFst[W]{
		operands: operands,
		offsets:  make([]fst.StateId, len(operands)),
		cache:    fstcache.NewCache[W](0),
	}

	var total fst.StateId
	for i, op := range operands {
		f.offsets[i] = total
		if op.Start() == fst.NoStateId {
			f.empty = true
		}
		if op.Properties(fst.Error, false).Has(fst.Error) {
			f.hasError = true
		}
		total += fst.StateId(countStates(op))
	}
	f.total = total

	for i := 1; i < len(operands); i++ {
		if !fst.CompatSymbols(operands[i-1].InputSymbols(), operands[i].InputSymbols()) ||
			!fst.CompatSymbols(operands[i-1].OutputSymbols(), operands[i].OutputSymbols()) {
			f.hasError = true
		}
	}

	return f
}

// locate resolves a global state id to its owning operand index and
// the local state id within that operand, via binary search over the
// ascending offsets slice.
func (f *lazyConcatFst[W]) locate(s fst.StateId) (int, fst.StateId) {
	idx := sort.Search(len(f.offsets), func(i int) bool { return f.offsets[i] > s }) - 1

	return idx, s - f.offsets[idx]
}

func (f *lazyConcatFst[W]) expand(s fst.StateId) (fstcache.StateData[W], error) {
	return f.cache.Expand(s, func(id fst.StateId) (fstcache.StateData[W], error) {
		if f.isIdentity {
			var zero W
			one := zero.One().(W)

			return fstcache.StateData[W]{Final: one, HasFinal: true, Arcs: nil, HasArcs: true}, nil
		}

		opIdx, local := f.locate(id)
		op := f.operands[opIdx]

		var zero W
		zeroW := zero.Zero().(W)

		var arcs []fst.Arc[W]
		it := op.NewArcIterator(local)
		for ; !it.Done(); it.Next() {
			a := it.Value()
			a.NextState += f.offsets[opIdx]
			arcs = append(arcs, a)
		}

		fw := op.Final(local)
		final := zeroW
		last := opIdx == len(f.operands)-1
		if !fw.Equal(zeroW) {
			if last {
				final = fw
			} else {
				next := f.operands[opIdx+1]
				if next.Start() != fst.NoStateId {
					arcs = append(arcs, fst.Arc[W]{
						ILabel: fst.Epsilon, OLabel: fst.Epsilon,
						Weight: fw, NextState: f.offsets[opIdx+1] + next.Start(),
					})
				}
			}
		}

		return fstcache.StateData[W]{Final: final, HasFinal: !final.Equal(zeroW), Arcs: arcs, HasArcs: true}, nil
	})
}

// Start implements fst.Fst.
func (f *lazyConcatFst[W]) Start() fst.StateId {
	if f.isIdentity {
		return 0
	}
	if f.empty {
		return fst.NoStateId
	}

	return f.offsets[0] + f.operands[0].Start()
}

// Final implements fst.Fst.
func (f *lazyConcatFst[W]) Final(s fst.StateId) W {
	d, err := f.expand(s)
	if err != nil {
		var zero W

		return zero.Zero().(W)
	}

	return d.Final
}

// NumArcs implements fst.Fst.
func (f *lazyConcatFst[W]) NumArcs(s fst.StateId) int {
	d, err := f.expand(s)
	if err != nil {
		return 0
	}

	return len(d.Arcs)
}

// NumInputEpsilons implements fst.Fst.
func (f *lazyConcatFst[W]) NumInputEpsilons(s fst.StateId) int {
	d, err := f.expand(s)
	if err != nil {
		return 0
	}
	n := 0
	for _, a := range d.Arcs {
		if a.ILabel == fst.Epsilon {
			n++
		}
	}

	return n
}

// NumOutputEpsilons implements fst.Fst.
func (f *lazyConcatFst[W]) NumOutputEpsilons(s fst.StateId) int {
	d, err := f.expand(s)
	if err != nil {
		return 0
	}
	n := 0
	for _, a := range d.Arcs {
		if a.OLabel == fst.Epsilon {
			n++
		}
	}

	return n
}

// Properties implements fst.Fst. Structural bits beyond Error/Epsilons
// are left unknown: a concatenation chain's sortedness/acyclicity
// depend on every operand's own properties in ways ConcatProperties
// already models pairwise, and generalizing that fold across an
// arbitrary operand count beyond Error is left to an explicit
// structural scan by the caller if needed.
func (f *lazyConcatFst[W]) Properties(mask fst.PropertyBits, computeIfUnknown bool) fst.Props {
	out := fst.Props{}
	if f.hasError {
		out = out.Set(fst.Error, fst.Error)
	} else {
		out = out.Set(fst.Error, 0)
	}

	return fst.Props{Known: out.Known & mask, Value: out.Value & mask}
}

// Copy implements fst.Fst.
func (f *lazyConcatFst[W]) Copy(bool) fst.Fst[W] {
	return &lazyConcatFst[W]{
		operands:   f.operands,
		offsets:    f.offsets,
		total:      f.total,
		empty:      f.empty,
		isIdentity: f.isIdentity,
		hasError:   f.hasError,
		cache:      f.cache,
	}
}

// InputSymbols implements fst.Fst.
func (f *lazyConcatFst[W]) InputSymbols() *fst.SymbolTable {
	if len(f.operands) == 0 {
		return nil
	}

	return f.operands[0].InputSymbols()
}

// OutputSymbols implements fst.Fst.
func (f *lazyConcatFst[W]) OutputSymbols() *fst.SymbolTable {
	if len(f.operands) == 0 {
		return nil
	}

	return f.operands[len(f.operands)-1].OutputSymbols()
}

// NewStateIterator implements fst.Fst.
func (f *lazyConcatFst[W]) NewStateIterator() fst.StateIterator {
	return &concatStateIterator{n: int(f.total)}
}

// NewArcIterator implements fst.Fst.
func (f *lazyConcatFst[W]) NewArcIterator(s fst.StateId) fst.ArcIterator[W] {
	d, err := f.expand(s)
	if err != nil {
		return &concatArcIterator[W]{}
	}

	return &concatArcIterator[W]{arcs: d.Arcs}
}

type concatStateIterator struct{ i, n int }

func (it *concatStateIterator) Done() bool         { return it.i >= it.n }
func (it *concatStateIterator) Next()              { it.i++ }
func (it *concatStateIterator) Value() fst.StateId { return fst.StateId(it.i) }

type concatArcIterator[W semiring.Weight] struct {
	arcs  []fst.Arc[W]
	pos   int
	flags fst.ArcFlags
}

func (it *concatArcIterator[W]) Done() bool          { return it.pos >= len(it.arcs) }
func (it *concatArcIterator[W]) Next()               { it.pos++ }
func (it *concatArcIterator[W]) Value() fst.Arc[W]   { return it.arcs[it.pos] }
func (it *concatArcIterator[W]) Seek(pos int)        { it.pos = pos }
func (it *concatArcIterator[W]) Position() int       { return it.pos }
func (it *concatArcIterator[W]) Flags() fst.ArcFlags { return it.flags }
func (it *concatArcIterator[W]) SetFlags(flags, mask fst.ArcFlags) {
	it.flags = (it.flags &^ mask) | (flags & mask)
}
