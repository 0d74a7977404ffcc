// Package fstcache provides the memoizing state cache delayed Fst
// implementations (rmepsilon.NewFst, concat.NewFst, synchronize.NewFst)
// use to expand each composite state once (again only after a
// positive GCLimit has evicted it), plus a generic
// element table for interning the algorithm-specific composite keys
// those implementations build their states from.
package fstcache
