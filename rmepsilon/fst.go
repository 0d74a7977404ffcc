package rmepsilon

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/fstcache"
	"github.com/katalvlaran/wfst/semiring"
)

// FstOptions configures the delayed NewFst.
type FstOptions struct {
	// Delta is the epsilon-closure shortest-distance convergence
	// tolerance Expand uses for each state it expands.
	Delta float64
	// GCLimit bounds the number of expanded states fstcache.Cache
	// retains; 0 means unbounded.
	GCLimit int
}

// FstOption configures FstOptions.
type FstOption func(*FstOptions)

// DefaultFstOptions returns FstOptions with semiring.DefaultDelta and
// an unbounded cache.
func DefaultFstOptions() FstOptions {
	return FstOptions{Delta: semiring.DefaultDelta, GCLimit: 0}
}

// WithFstDelta overrides the convergence tolerance. Panics if delta is
// negative.
func WithFstDelta(delta float64) FstOption {
	return func(o *FstOptions) {
		if delta < 0 {
			panic("rmepsilon: delta must be non-negative")
		}
		o.Delta = delta
	}
}

// WithFstGCLimit overrides the cache's retained-state limit. Panics if
// n is negative.
func WithFstGCLimit(n int) FstOption {
	return func(o *FstOptions) {
		if n < 0 {
			panic("rmepsilon: GCLimit must be non-negative")
		}
		o.GCLimit = n
	}
}

// lazyFst is an epsilon-free view over input, expanding and memoizing
// each state's Expand result on first visit instead of rewriting input
// up front. It shares input's state space one-to-one (epsilon removal
// changes a state's arcs and final weight, never the state count), so
// Start/NewStateIterator delegate straight through.
type lazyFst[W semiring.Weight] struct {
	input fst.Fst[W]
	cache *fstcache.Cache[W]
	delta float64
}

// NewFst returns a delayed, epsilon-free view over input. Unlike Do,
// it never mutates input and never runs Connect or Prune — those stay
// eager-only rewrites, matching the reference implementation's
// RmEpsilonFst/RmEpsilon split: the delayed form is for composition
// pipelines that want to defer materialization, not for one-shot
// cleanup.
func NewFst[W semiring.Weight](input fst.Fst[W], opts ...FstOption) fst.Fst[W] {
	cfg := DefaultFstOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &lazyFst[W]{
		input: input,
		cache: fstcache.NewCache[W](cfg.GCLimit),
		delta: cfg.Delta,
	}
}

func (f *lazyFst[W]) expand(s fst.StateId) (fstcache.StateData[W], error) {
	return f.cache.Expand(s, func(id fst.StateId) (fstcache.StateData[W], error) {
		arcs, final, err := Expand(f.input, id, f.delta)
		if err != nil {
			return fstcache.StateData[W]{}, err
		}

		var zero W

		return fstcache.StateData[W]{
			Final:    final,
			HasFinal: !final.Equal(zero.Zero()),
			Arcs:     arcs,
			HasArcs:  true,
		}, nil
	})
}

// Start implements fst.Fst.
func (f *lazyFst[W]) Start() fst.StateId { return f.input.Start() }

// Final implements fst.Fst.
func (f *lazyFst[W]) Final(s fst.StateId) W {
	d, err := f.expand(s)
	if err != nil {
		var zero W

		return zero.Zero().(W)
	}

	return d.Final
}

// NumArcs implements fst.Fst.
func (f *lazyFst[W]) NumArcs(s fst.StateId) int {
	d, err := f.expand(s)
	if err != nil {
		return 0
	}

	return len(d.Arcs)
}

// NumInputEpsilons implements fst.Fst. Expand strips only arcs that
// are epsilon on both tapes; an (epsilon, b) arc with b != Epsilon
// survives the closure, so this counts arcs the same way
// NumOutputEpsilons does, just on the other label.
func (f *lazyFst[W]) NumInputEpsilons(s fst.StateId) int {
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
func (f *lazyFst[W]) NumOutputEpsilons(s fst.StateId) int {
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
func (f *lazyFst[W]) Properties(mask fst.PropertyBits, computeIfUnknown bool) fst.Props {
	in := f.input.Properties(mask, computeIfUnknown)

	return fst.RmEpsilonProperties(in)
}

// Copy implements fst.Fst. A shallow copy shares this lazyFst's cache
// and input (safe: both are read-only from a caller's perspective); a
// deep copy materializes every input state into an independent
// VectorFst through this view's own per-state expansion.
func (f *lazyFst[W]) Copy(deep bool) fst.Fst[W] {
	if !deep {
		return &lazyFst[W]{input: f.input, cache: f.cache, delta: f.delta}
	}

	out := fst.NewVectorFst[W]()
	ids := make(map[fst.StateId]fst.StateId)
	sit := f.input.NewStateIterator()
	for ; !sit.Done(); sit.Next() {
		ids[sit.Value()] = out.AddState()
	}

	sit = f.input.NewStateIterator()
	for ; !sit.Done(); sit.Next() {
		s := sit.Value()
		d, err := f.expand(s)
		if err != nil {
			continue
		}
		for _, a := range d.Arcs {
			out.AddArc(ids[s], fst.Arc[W]{ILabel: a.ILabel, OLabel: a.OLabel, Weight: a.Weight, NextState: ids[a.NextState]})
		}
		out.SetFinal(ids[s], d.Final)
	}

	if start := f.input.Start(); start != fst.NoStateId {
		out.SetStart(ids[start])
	}
	out.SetInputSymbols(f.input.InputSymbols())
	out.SetOutputSymbols(f.input.OutputSymbols())

	return out
}

// InputSymbols implements fst.Fst.
func (f *lazyFst[W]) InputSymbols() *fst.SymbolTable { return f.input.InputSymbols() }

// OutputSymbols implements fst.Fst.
func (f *lazyFst[W]) OutputSymbols() *fst.SymbolTable { return f.input.OutputSymbols() }

// NewStateIterator implements fst.Fst.
func (f *lazyFst[W]) NewStateIterator() fst.StateIterator { return f.input.NewStateIterator() }

// NewArcIterator implements fst.Fst.
func (f *lazyFst[W]) NewArcIterator(s fst.StateId) fst.ArcIterator[W] {
	d, err := f.expand(s)
	if err != nil {
		return &lazyArcIterator[W]{}
	}

	return &lazyArcIterator[W]{arcs: d.Arcs}
}

type lazyArcIterator[W semiring.Weight] struct {
	arcs  []fst.Arc[W]
	pos   int
	flags fst.ArcFlags
}

func (it *lazyArcIterator[W]) Done() bool    { return it.pos >= len(it.arcs) }
func (it *lazyArcIterator[W]) Next()         { it.pos++ }
func (it *lazyArcIterator[W]) Value() fst.Arc[W] { return it.arcs[it.pos] }
func (it *lazyArcIterator[W]) Seek(pos int)  { it.pos = pos }
func (it *lazyArcIterator[W]) Position() int { return it.pos }
func (it *lazyArcIterator[W]) Flags() fst.ArcFlags { return it.flags }
func (it *lazyArcIterator[W]) SetFlags(flags, mask fst.ArcFlags) {
	it.flags = (it.flags &^ mask) | (flags & mask)
}
