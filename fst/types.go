package fst

import "github.com/katalvlaran/wfst/semiring"

// Label identifies an input or output symbol on an arc. Label 0 is
// epsilon, the distinguished "no symbol consumed/emitted" label.
type Label = int64

// Epsilon is the distinguished epsilon label.
const Epsilon Label = 0

// StateId identifies a state within an Fst.
type StateId = int64

// NoStateId is the sentinel returned by Start() for an Fst with no
// states, and used as Arc.NextState for a dangling/incomplete arc.
const NoStateId StateId = -1

// NoLabel is used where a label slot is intentionally absent (e.g. a
// super-final transform's synthetic arc).
const NoLabel Label = -1

// Arc is a single transition: consume ILabel, emit OLabel, pay Weight,
// move to NextState.
type Arc[W semiring.Weight] struct {
	ILabel    Label
	OLabel    Label
	Weight    W
	NextState StateId
}
