// Package semiring defines the algebraic Weight contract that every
// transformation in this module is generic over, plus the canonical
// semiring instances used to build weighted finite-state transducers.
//
// A semiring is (W, ⊕, ⊗, 0̄, 1̄) with ⊕ associative and commutative with
// identity 0̄, ⊗ associative with identity 1̄, ⊗ distributing over ⊕, and
// 0̄ absorbing under ⊗. Weight is a runtime interface rather than a Go
// generic type parameter: the arc type of an FST is fixed by which
// concrete Weight its arcs carry, and algorithms dispatch on that value
// the way the reference implementation dispatches on an arc-type tag.
package semiring
