package labelreachable

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Accumulator sums the weights of arcs found reachable during a
// ReachRange(it, begin, end, true) call, so callers (e.g. composition)
// can distribute those weights differently than a plain semiring sum
// when that's useful. Ports the reference's Accumulator/
// DefaultAccumulator split.
type Accumulator[W semiring.Weight] interface {
	// Sum folds w into the running accumulation acc.
	Sum(acc, w W) W
	// SumRange folds every arc in [begin, end) of it into acc. it is
	// left positioned at end.
	SumRange(acc W, it fst.ArcIterator[W], begin, end int) W
}

// defaultAccumulator sums with the semiring's own Plus, the behavior
// every Reachable gets unless a caller supplies another Accumulator.
type defaultAccumulator[W semiring.Weight] struct{}

// Sum implements Accumulator.
func (defaultAccumulator[W]) Sum(acc, w W) W {
	return acc.Plus(w).(W)
}

// SumRange implements Accumulator.
func (defaultAccumulator[W]) SumRange(acc W, it fst.ArcIterator[W], begin, end int) W {
	it.Seek(begin)
	for pos := begin; pos < end; pos++ {
		acc = acc.Plus(it.Value().Weight).(W)
		it.Next()
	}

	return acc
}
