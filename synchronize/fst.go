package synchronize

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/fstcache"
	"github.com/katalvlaran/wfst/semiring"
)

// element is the composite-state descriptor (q, u, v): an input state
// together with the residual input/output label strings still owed to
// the other tape. state == fst.NoStateId marks the drain phase after
// the input Fst has gone final and only residual labels remain to be
// emitted. Mirrors SynchronizeFstImpl::Element.
type element struct {
	state fst.StateId
	iStr  residualID
	oStr  residualID
}

// lazySynchronizeFst is the delayed Fst NewFst returns. Composite
// states are interned by elements (shared across Start/Final/Expand so
// every reference to the same (q, u, v) triple resolves to the same
// StateId), and each state's combined arcs/final weight are memoized
// by cache on first visit, mirroring SynchronizeFstImpl's CacheImpl
// base plus its own element_map_/elements_ pair.
type lazySynchronizeFst[W semiring.Weight] struct {
	input    fst.Fst[W]
	ri       *residualInterner
	elements *fstcache.ElementTable[element]
	cache    *fstcache.Cache[W]
}

// NewFst returns a delayed, bounded-delay-synchronized view over
// input. input must have bounded delay (every cycle's net delay
// between input and output tape length is zero) or expansion will
// never terminate, exactly as the reference implementation documents.
func NewFst[W semiring.Weight](input fst.Fst[W]) fst.Fst[W] {
	return &lazySynchronizeFst[W]{
		input:    input,
		ri:       newResidualInterner(),
		elements: fstcache.NewElementTable[element](),
		cache:    fstcache.NewCache[W](0),
	}
}

func (f *lazySynchronizeFst[W]) emptyResidualID() residualID {
	return f.ri.intern(nil)
}

// Start implements fst.Fst.
func (f *lazySynchronizeFst[W]) Start() fst.StateId {
	start := f.input.Start()
	if start == fst.NoStateId {
		return fst.NoStateId
	}
	empty := f.emptyResidualID()

	return f.elements.FindOrCreate(element{state: start, iStr: empty, oStr: empty})
}

// Final implements fst.Fst.
func (f *lazySynchronizeFst[W]) Final(s fst.StateId) W {
	var zero W
	zeroW := zero.Zero().(W)

	e := f.elements.Element(s)
	w := f.baseWeight(e)
	iStr := f.ri.lookup(e.iStr)
	oStr := f.ri.lookup(e.oStr)

	if !w.Equal(zeroW) && len(iStr) == 0 && len(oStr) == 0 {
		return w
	}

	return zeroW
}

func (f *lazySynchronizeFst[W]) baseWeight(e element) W {
	var zero W
	if e.state == fst.NoStateId {
		return zero.One().(W)
	}

	return f.input.Final(e.state)
}

func (f *lazySynchronizeFst[W]) expand(s fst.StateId) (fstcache.StateData[W], error) {
	return f.cache.Expand(s, func(id fst.StateId) (fstcache.StateData[W], error) {
		e := f.elements.Element(id)
		var zero W
		zeroW := zero.Zero().(W)

		var arcs []fst.Arc[W]

		if e.state != fst.NoStateId {
			iStr := f.ri.lookup(e.iStr)
			oStr := f.ri.lookup(e.oStr)

			it := f.input.NewArcIterator(e.state)
			for ; !it.Done(); it.Next() {
				a := it.Value()
				if !empty(iStr, a.ILabel) && !empty(oStr, a.OLabel) {
					newI := cdr(f.ri, iStr, a.ILabel)
					newO := cdr(f.ri, oStr, a.OLabel)
					d := f.elements.FindOrCreate(element{state: a.NextState, iStr: newI, oStr: newO})
					arcs = append(arcs, fst.Arc[W]{
						ILabel: car(iStr, a.ILabel), OLabel: car(oStr, a.OLabel),
						Weight: a.Weight, NextState: d,
					})
				} else {
					newI := concat(f.ri, iStr, a.ILabel)
					newO := concat(f.ri, oStr, a.OLabel)
					d := f.elements.FindOrCreate(element{state: a.NextState, iStr: newI, oStr: newO})
					arcs = append(arcs, fst.Arc[W]{
						ILabel: fst.Epsilon, OLabel: fst.Epsilon,
						Weight: a.Weight, NextState: d,
					})
				}
			}
		}

		w := f.baseWeight(e)
		iStr := f.ri.lookup(e.iStr)
		oStr := f.ri.lookup(e.oStr)
		if !w.Equal(zeroW) && len(iStr)+len(oStr) > 0 {
			newI := cdr(f.ri, iStr, fst.Epsilon)
			newO := cdr(f.ri, oStr, fst.Epsilon)
			d := f.elements.FindOrCreate(element{state: fst.NoStateId, iStr: newI, oStr: newO})
			arcs = append(arcs, fst.Arc[W]{
				ILabel: car(iStr, fst.Epsilon), OLabel: car(oStr, fst.Epsilon),
				Weight: w, NextState: d,
			})
		}

		final := f.Final(id)

		return fstcache.StateData[W]{Final: final, HasFinal: !final.Equal(zeroW), Arcs: arcs, HasArcs: true}, nil
	})
}

// NumArcs implements fst.Fst.
func (f *lazySynchronizeFst[W]) NumArcs(s fst.StateId) int {
	d, err := f.expand(s)
	if err != nil {
		return 0
	}

	return len(d.Arcs)
}

// NumInputEpsilons implements fst.Fst.
func (f *lazySynchronizeFst[W]) NumInputEpsilons(s fst.StateId) int {
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
func (f *lazySynchronizeFst[W]) NumOutputEpsilons(s fst.StateId) int {
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

// Properties implements fst.Fst.
func (f *lazySynchronizeFst[W]) Properties(mask fst.PropertyBits, computeIfUnknown bool) fst.Props {
	in := f.input.Properties(mask, computeIfUnknown)

	return fst.SynchronizeProperties(in)
}

// Copy implements fst.Fst. Shallow and deep copies both share the
// interner/element table/cache: they are append-only and
// content-addressed, so concurrent readers never observe a
// torn or inconsistent state.
func (f *lazySynchronizeFst[W]) Copy(bool) fst.Fst[W] {
	return &lazySynchronizeFst[W]{input: f.input, ri: f.ri, elements: f.elements, cache: f.cache}
}

// InputSymbols implements fst.Fst.
func (f *lazySynchronizeFst[W]) InputSymbols() *fst.SymbolTable { return f.input.InputSymbols() }

// OutputSymbols implements fst.Fst.
func (f *lazySynchronizeFst[W]) OutputSymbols() *fst.SymbolTable { return f.input.OutputSymbols() }

// NewStateIterator implements fst.Fst. Synchronize's state space is
// discovered lazily (the reference's own CacheStateIterator walks only
// what Expand has produced so far), so the iterator here forces a full
// expansion from Start outward before reporting any ids, since an
// eagerly-complete state count is otherwise unknowable for a delayed
// construction with potentially exponential blowup.
func (f *lazySynchronizeFst[W]) NewStateIterator() fst.StateIterator {
	start := f.Start()
	if start == fst.NoStateId {
		return &synchronizeStateIterator{}
	}

	visited := map[fst.StateId]bool{start: true}
	queue := []fst.StateId{start}
	var order []fst.StateId
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		order = append(order, s)

		d, err := f.expand(s)
		if err != nil {
			continue
		}
		for _, a := range d.Arcs {
			if !visited[a.NextState] {
				visited[a.NextState] = true
				queue = append(queue, a.NextState)
			}
		}
	}

	return &synchronizeStateIterator{ids: order}
}

// NewArcIterator implements fst.Fst.
func (f *lazySynchronizeFst[W]) NewArcIterator(s fst.StateId) fst.ArcIterator[W] {
	d, err := f.expand(s)
	if err != nil {
		return &synchronizeArcIterator[W]{}
	}

	return &synchronizeArcIterator[W]{arcs: d.Arcs}
}

type synchronizeStateIterator struct {
	ids []fst.StateId
	pos int
}

func (it *synchronizeStateIterator) Done() bool         { return it.pos >= len(it.ids) }
func (it *synchronizeStateIterator) Next()              { it.pos++ }
func (it *synchronizeStateIterator) Value() fst.StateId { return it.ids[it.pos] }

type synchronizeArcIterator[W semiring.Weight] struct {
	arcs  []fst.Arc[W]
	pos   int
	flags fst.ArcFlags
}

func (it *synchronizeArcIterator[W]) Done() bool          { return it.pos >= len(it.arcs) }
func (it *synchronizeArcIterator[W]) Next()               { it.pos++ }
func (it *synchronizeArcIterator[W]) Value() fst.Arc[W]   { return it.arcs[it.pos] }
func (it *synchronizeArcIterator[W]) Seek(pos int)        { it.pos = pos }
func (it *synchronizeArcIterator[W]) Position() int       { return it.pos }
func (it *synchronizeArcIterator[W]) Flags() fst.ArcFlags { return it.flags }
func (it *synchronizeArcIterator[W]) SetFlags(flags, mask fst.ArcFlags) {
	it.flags = (it.flags &^ mask) | (flags & mask)
}
