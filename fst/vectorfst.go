package fst

import (
	"sync"

	"github.com/katalvlaran/wfst/semiring"
)

// vectorState holds one state's final weight and arc list.
type vectorState[W semiring.Weight] struct {
	final    W
	hasFinal bool
	arcs     []Arc[W]
}

// VectorFst is a concrete, eagerly-materialized MutableFst backed by a
// slice of states, each holding its own arc slice. It is the default
// concrete Fst implementation this module constructs by hand (as
// opposed to the delayed Fsts produced by rmepsilon/concat/synchronize),
// the same role OpenFST's VectorFst plays as the canonical in-memory
// representation algorithms are handed.
type VectorFst[W semiring.Weight] struct {
	mu      sync.RWMutex
	start   StateId
	states  []vectorState[W]
	props   Props
	inSyms  *SymbolTable
	outSyms *SymbolTable
}

// NewVectorFst returns an empty VectorFst with no states and start ==
// NoStateId.
func NewVectorFst[W semiring.Weight]() *VectorFst[W] {
	return &VectorFst[W]{
		start: NoStateId,
		props: Props{Known: Expanded | Mutable, Value: Expanded | Mutable},
	}
}

// Start implements Fst.
func (f *VectorFst[W]) Start() StateId {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.start
}

// Final implements Fst.
func (f *VectorFst[W]) Final(s StateId) W {
	f.mu.RLock()
	defer f.mu.RUnlock()

	f.mustExist(s)
	st := f.states[s]
	if st.hasFinal {
		return st.final
	}

	var zero W

	return zero.Zero().(W)
}

// NumArcs implements Fst.
func (f *VectorFst[W]) NumArcs(s StateId) int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	f.mustExist(s)

	return len(f.states[s].arcs)
}

// NumInputEpsilons implements Fst.
func (f *VectorFst[W]) NumInputEpsilons(s StateId) int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	f.mustExist(s)
	n := 0
	for _, a := range f.states[s].arcs {
		if a.ILabel == Epsilon {
			n++
		}
	}

	return n
}

// NumOutputEpsilons implements Fst.
func (f *VectorFst[W]) NumOutputEpsilons(s StateId) int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	f.mustExist(s)
	n := 0
	for _, a := range f.states[s].arcs {
		if a.OLabel == Epsilon {
			n++
		}
	}

	return n
}

// Properties implements Fst. VectorFst only ever knows the bits it has
// been explicitly told via SetProperties plus the always-known
// Expanded|Mutable; computeIfUnknown triggers a structural scan for
// Acyclic/TopSorted/sortedness/epsilon/acceptor bits requested in mask
// but not already known.
func (f *VectorFst[W]) Properties(mask PropertyBits, computeIfUnknown bool) Props {
	f.mu.RLock()
	known := f.props
	f.mu.RUnlock()

	missing := mask &^ known.Known
	if missing == 0 || !computeIfUnknown {
		return Props{Known: known.Known & mask, Value: known.Value & mask}
	}

	computed := computeStructuralProperties(f, missing)

	f.mu.Lock()
	f.props = f.props.Set(computed.Known, computed.Value)
	merged := f.props
	f.mu.Unlock()

	return Props{Known: merged.Known & mask, Value: merged.Value & mask}
}

// Copy implements Fst.
func (f *VectorFst[W]) Copy(deep bool) Fst[W] {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := &VectorFst[W]{start: f.start, props: f.props, inSyms: f.inSyms, outSyms: f.outSyms}
	out.states = make([]vectorState[W], len(f.states))
	for i, st := range f.states {
		ns := vectorState[W]{final: st.final, hasFinal: st.hasFinal}
		ns.arcs = append([]Arc[W](nil), st.arcs...)
		out.states[i] = ns
	}

	return out
}

// InputSymbols implements Fst.
func (f *VectorFst[W]) InputSymbols() *SymbolTable {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.inSyms
}

// OutputSymbols implements Fst.
func (f *VectorFst[W]) OutputSymbols() *SymbolTable {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.outSyms
}

// SetInputSymbols implements MutableFst.
func (f *VectorFst[W]) SetInputSymbols(tab *SymbolTable) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.inSyms = tab
}

// SetOutputSymbols implements MutableFst.
func (f *VectorFst[W]) SetOutputSymbols(tab *SymbolTable) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.outSyms = tab
}

// NewStateIterator implements Fst.
func (f *VectorFst[W]) NewStateIterator() StateIterator {
	f.mu.RLock()
	n := len(f.states)
	f.mu.RUnlock()

	return &vectorStateIterator{n: n}
}

// NewArcIterator implements Fst.
func (f *VectorFst[W]) NewArcIterator(s StateId) ArcIterator[W] {
	f.mu.RLock()
	defer f.mu.RUnlock()

	f.mustExist(s)
	arcs := f.states[s].arcs

	return &vectorArcIterator[W]{arcs: arcs}
}

// AddState implements MutableFst.
func (f *VectorFst[W]) AddState() StateId {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.states = append(f.states, vectorState[W]{})
	f.props = f.props.Unknown(^PropertyBits(0) &^ (Expanded | Mutable | Error))

	return StateId(len(f.states) - 1)
}

// AddArc implements MutableFst.
func (f *VectorFst[W]) AddArc(s StateId, arc Arc[W]) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.mustExist(s)
	f.states[s].arcs = append(f.states[s].arcs, arc)
	f.props = f.props.Unknown(^PropertyBits(0) &^ (Expanded | Mutable | Error))
}

// SetFinal implements MutableFst.
func (f *VectorFst[W]) SetFinal(s StateId, weight W) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.mustExist(s)
	var zero W
	isZero := weight.Equal(zero.Zero())
	f.states[s].final = weight
	f.states[s].hasFinal = !isZero
}

// SetStart implements MutableFst.
func (f *VectorFst[W]) SetStart(s StateId) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if s != NoStateId {
		f.mustExist(s)
	}
	f.start = s
}

// DeleteArcs implements MutableFst.
func (f *VectorFst[W]) DeleteArcs(s StateId) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.mustExist(s)
	f.states[s].arcs = nil
	f.props = f.props.Unknown(^PropertyBits(0) &^ (Expanded | Mutable | Error))
}

// ReserveStates implements MutableFst.
func (f *VectorFst[W]) ReserveStates(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if cap(f.states) < n {
		grown := make([]vectorState[W], len(f.states), n)
		copy(grown, f.states)
		f.states = grown
	}
}

// ReserveArcs implements MutableFst.
func (f *VectorFst[W]) ReserveArcs(s StateId, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.mustExist(s)
	if cap(f.states[s].arcs) < n {
		grown := make([]Arc[W], len(f.states[s].arcs), n)
		copy(grown, f.states[s].arcs)
		f.states[s].arcs = grown
	}
}

// SetProperties implements MutableFst.
func (f *VectorFst[W]) SetProperties(bits, mask PropertyBits) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.props = f.props.Set(mask, bits)
}

// mustExist panics if s is not a valid state id. Callers hold f.mu.
func (f *VectorFst[W]) mustExist(s StateId) {
	if s < 0 || int(s) >= len(f.states) {
		panic(ErrStateOutOfRange)
	}
}

type vectorStateIterator struct {
	i, n int
}

func (it *vectorStateIterator) Done() bool     { return it.i >= it.n }
func (it *vectorStateIterator) Next()          { it.i++ }
func (it *vectorStateIterator) Value() StateId { return StateId(it.i) }

type vectorArcIterator[W semiring.Weight] struct {
	arcs  []Arc[W]
	pos   int
	flags ArcFlags
}

func (it *vectorArcIterator[W]) Done() bool      { return it.pos >= len(it.arcs) }
func (it *vectorArcIterator[W]) Next()           { it.pos++ }
func (it *vectorArcIterator[W]) Value() Arc[W]   { return it.arcs[it.pos] }
func (it *vectorArcIterator[W]) Seek(pos int)    { it.pos = pos }
func (it *vectorArcIterator[W]) Position() int   { return it.pos }
func (it *vectorArcIterator[W]) Flags() ArcFlags { return it.flags }
func (it *vectorArcIterator[W]) SetFlags(flags, mask ArcFlags) {
	it.flags = (it.flags &^ mask) | (flags & mask)
}
