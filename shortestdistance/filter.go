package shortestdistance

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// ArcFilter decides whether an arc participates in the traversal. The
// engine never even requests weights from an arc the filter rejects.
type ArcFilter[W semiring.Weight] func(a fst.Arc[W]) bool

// AnyArcFilter admits every arc.
func AnyArcFilter[W semiring.Weight](a fst.Arc[W]) bool { return true }

// EpsilonFilter admits only arcs with both labels epsilon, the
// subgraph rmepsilon's per-state expansion runs the engine over.
func EpsilonFilter[W semiring.Weight](a fst.Arc[W]) bool {
	return a.ILabel == fst.Epsilon && a.OLabel == fst.Epsilon
}

// InputEpsilonFilter admits arcs whose input label is epsilon,
// regardless of the output label.
func InputEpsilonFilter[W semiring.Weight](a fst.Arc[W]) bool {
	return a.ILabel == fst.Epsilon
}
