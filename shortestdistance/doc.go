// Package shortestdistance computes, for a single source state, the
// semiring sum of weights of all paths to every other state under a
// caller-supplied arc filter, parameterized by a pluggable queue
// discipline. It is the substrate rmepsilon's per-state epsilon-closure
// expansion is built on.
package shortestdistance
