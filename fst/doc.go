// Package fst defines the weighted finite-state transducer abstraction
// that every transformation in this module operates over: the Fst and
// MutableFst interfaces, arc and state iteration, the properties
// bitset, and a concrete in-memory VectorFst implementation.
//
// An Fst is generic over its weight type, constrained to
// semiring.Weight: the same interface-as-constraint idiom the reference
// implementation gets from a template arc-type parameter, but resolved
// at the semiring.Weight method set rather than at an arbitrary arc
// struct, since every concrete weight in this module already carries
// the full algebraic contract.
package fst
