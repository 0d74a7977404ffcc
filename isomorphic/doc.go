// Package isomorphic tests whether two Fsts have the same states and
// arcs up to reordering: a state-pair correspondence is grown
// breadth-first from the two start states, and at each paired state
// the outgoing arcs are sorted by (ilabel, olabel, weight-order) and
// compared position by position. Both inputs should be deterministic
// when viewed as unweighted automata; Test flags non-determinism it
// detects along the way as an error rather than silently returning a
// wrong answer.
package isomorphic
