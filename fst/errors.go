package fst

import "errors"

// Sentinel errors for the fst package. Algorithms wrap these with
// fmt.Errorf("%w: ...", ErrX) to attach context.
var (
	// ErrArcTypeMismatch names the case of two Fst values combined with
	// different concrete weight types. No function in this module returns
	// it: Fst[W] fixes the weight type at compile time.
	ErrArcTypeMismatch = errors.New("fst: arc weight type mismatch")

	// ErrIncompatibleSymbols is returned when two Fst values carry
	// symbol tables that CompatSymbols rejects.
	ErrIncompatibleSymbols = errors.New("fst: incompatible symbol tables")

	// ErrUnsorted is returned when an algorithm requires I_LABEL_SORTED
	// or O_LABEL_SORTED and the input does not have that property set.
	ErrUnsorted = errors.New("fst: arcs not sorted as required")

	// ErrInconsistentProperties is returned when an algorithm observes
	// a contradiction between a claimed property and the structure it
	// walks (e.g. ACYCLIC claimed but a cycle is found).
	ErrInconsistentProperties = errors.New("fst: inconsistent properties")

	// ErrStateOutOfRange is the value VectorFst panics with when a
	// StateId is used that does not exist in the target Fst.
	ErrStateOutOfRange = errors.New("fst: state id out of range")
)
