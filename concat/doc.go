// Package concat implements finite-state transducer concatenation:
// if fst1 transduces x to y with weight a and fst2 transduces w to v
// with weight b, their concatenation transduces xw to yv with
// Times(a, b). GrowLeft and GrowRight rewrite one operand's states in
// place (mirroring the reference implementation's two in-place
// Concat overloads); NewFst builds a delayed view over any number of
// operands without touching either one, generalizing the reference's
// RationalFstImpl::AddConcat fold over a binary operator to an
// N-operand chain.
package concat
