package fst

import "github.com/katalvlaran/wfst/semiring"

// Fst is a read-only weighted finite-state transducer over weight type
// W. Implementations may be eager (every state already materialized,
// e.g. VectorFst) or delayed (states expanded on first visit and
// memoized by an fstcache.Cache, e.g. the results of rmepsilon.NewFst,
// concat.NewFst, synchronize.NewFst).
type Fst[W semiring.Weight] interface {
	// Start returns the start state, or NoStateId if the Fst is empty.
	Start() StateId
	// Final returns the final weight of s. A non-final state has final
	// weight equal to its own Zero(): a state has final weight Zero()
	// if and only if it is not final.
	Final(s StateId) W
	// NumArcs returns the number of outgoing arcs at s.
	NumArcs(s StateId) int
	// NumInputEpsilons returns the number of outgoing arcs at s with
	// ILabel == Epsilon.
	NumInputEpsilons(s StateId) int
	// NumOutputEpsilons returns the number of outgoing arcs at s with
	// OLabel == Epsilon.
	NumOutputEpsilons(s StateId) int
	// Properties returns the subset of mask this Fst can report. If
	// computeIfUnknown is true and a bit in mask is not yet known, the
	// implementation computes it (which may require a full traversal);
	// otherwise unknown bits are simply absent from the result's Known
	// mask.
	Properties(mask PropertyBits, computeIfUnknown bool) Props
	// Copy returns an independent copy of this Fst. If deep is false
	// and the underlying representation is immutable, implementations
	// may share storage.
	Copy(deep bool) Fst[W]
	// InputSymbols returns the input symbol table, or nil if unset.
	InputSymbols() *SymbolTable
	// OutputSymbols returns the output symbol table, or nil if unset.
	OutputSymbols() *SymbolTable
	// NewStateIterator returns an iterator over this Fst's states.
	NewStateIterator() StateIterator
	// NewArcIterator returns an iterator over s's outgoing arcs.
	NewArcIterator(s StateId) ArcIterator[W]
}

// MutableFst is an Fst that can be built and edited in place.
type MutableFst[W semiring.Weight] interface {
	Fst[W]

	// AddState appends a new, non-final state with no arcs and returns
	// its id.
	AddState() StateId
	// AddArc appends arc to s's outgoing arc list.
	AddArc(s StateId, arc Arc[W])
	// SetFinal sets s's final weight. Per invariant, weight must equal
	// Zero() to mark s as non-final.
	SetFinal(s StateId, weight W)
	// SetStart sets the start state.
	SetStart(s StateId)
	// DeleteArcs removes every outgoing arc at s.
	DeleteArcs(s StateId)
	// ReserveStates hints the expected final state count.
	ReserveStates(n int)
	// ReserveArcs hints the expected arc count at s.
	ReserveArcs(s StateId, n int)
	// SetProperties overwrites the bits in mask with the corresponding
	// bits of bits, leaving the rest of the Props unchanged.
	SetProperties(bits, mask PropertyBits)
	// SetInputSymbols sets the input symbol table.
	SetInputSymbols(tab *SymbolTable)
	// SetOutputSymbols sets the output symbol table.
	SetOutputSymbols(tab *SymbolTable)
}
