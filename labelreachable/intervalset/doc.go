// Package intervalset stores a sorted set of int64 values as a compact
// list of disjoint, non-adjacent [begin, end) runs, supporting
// membership queries by binary search and set union by a linear merge.
// Follows this module's discipline of splitting a small value type
// across dedicated files: types.go for the shape, validators.go for
// the invariant checks, builder.go for construction, methods.go for
// the operations callers actually use.
package intervalset
