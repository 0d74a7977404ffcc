// Package rmepsilon removes arcs whose input and output labels are
// both epsilon, producing an equivalent transducer. Do mutates a
// fst.MutableFst in place; NewFst returns a delayed equivalent that
// expands states lazily through an fstcache.Cache.
package rmepsilon
