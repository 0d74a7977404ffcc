package fst

import "github.com/katalvlaran/wfst/semiring"

// ArcFlags is a bitset a producer attaches to an ArcIterator to
// describe how its caller should treat the iteration.
type ArcFlags uint8

const (
	// ArcNoCache tells a delayed Fst not to memoize the arcs this
	// iterator yields (the caller is expected to consume them once).
	ArcNoCache ArcFlags = 1 << iota
	// ArcSortedInput indicates arcs are sorted by ILabel.
	ArcSortedInput
	// ArcSortedOutput indicates arcs are sorted by OLabel.
	ArcSortedOutput
)

// ArcIterator walks a state's outgoing arcs in order.
type ArcIterator[W semiring.Weight] interface {
	// Done reports whether iteration is exhausted.
	Done() bool
	// Next advances to the next arc.
	Next()
	// Value returns the current arc. Undefined if Done().
	Value() Arc[W]
	// Seek repositions the iterator to the arc at index pos.
	Seek(pos int)
	// Position returns the current zero-based arc index.
	Position() int
	// Flags returns the iterator's current flags.
	Flags() ArcFlags
	// SetFlags updates flags, touching only the bits set in mask.
	SetFlags(flags, mask ArcFlags)
}

// StateIterator walks an Fst's state ids in unspecified (but stable for
// a single Fst value) order.
type StateIterator interface {
	// Done reports whether iteration is exhausted.
	Done() bool
	// Next advances to the next state.
	Next()
	// Value returns the current state id. Undefined if Done().
	Value() StateId
}
