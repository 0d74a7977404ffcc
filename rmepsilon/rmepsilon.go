package rmepsilon

import (
	"fmt"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/katalvlaran/wfst/shortestdistance"
	"github.com/katalvlaran/wfst/wfstutil"
)

// Do eagerly rewrites f in place, replacing every state's arc set with
// the combined non-epsilon arcs and final weight Expand computes,
// removing every epsilon transition. It mirrors the reference
// implementation's RmEpsilon(MutableFst*, ...), restated per state
// through Expand rather than through the incremental noneps_in/
// generation-counter bookkeeping the reference uses to avoid
// recomputing shared closures. The simpler per-state-independent
// recomputation is acceptable here since Expand's own closure search
// is already bounded by shortestdistance.Compute's convergence
// guarantee.
func Do[W semiring.Weight](f fst.MutableFst[W], opts ...Option[W]) error {
	cfg := DefaultOptions[W]()
	for _, opt := range opts {
		opt(&cfg)
	}

	inProps := f.Properties(fst.Acyclic, true)
	if inProps.Has(fst.Acyclic) {
		if hasEpsilonCycle(f) {
			return fmt.Errorf("%w: %w", fst.ErrInconsistentProperties, ErrInconsistentProperties)
		}
	}

	start := f.Start()
	if start == fst.NoStateId {
		return nil
	}

	type rewrite struct {
		arcs  []fst.Arc[W]
		final W
	}
	rewrites := make(map[fst.StateId]rewrite)

	sit := f.NewStateIterator()
	for ; !sit.Done(); sit.Next() {
		s := sit.Value()
		arcs, final, err := Expand(f, s, cfg.Delta)
		if err != nil {
			return fmt.Errorf("rmepsilon: expanding state %d: %w", s, err)
		}
		rewrites[s] = rewrite{arcs: arcs, final: final}
	}

	sit = f.NewStateIterator()
	for ; !sit.Done(); sit.Next() {
		s := sit.Value()
		r := rewrites[s]
		f.DeleteArcs(s)
		for _, a := range r.arcs {
			f.AddArc(s, a)
		}
		f.SetFinal(s, r.final)
	}

	outProps := fst.RmEpsilonProperties(f.Properties(^fst.PropertyBits(0), false))
	f.SetProperties(outProps.Value, outProps.Known)

	if cfg.Connect {
		wfstutil.Connect[W](f)
	}

	var zero W
	if !cfg.WeightThreshold.Equal(zero.Zero()) || cfg.StateThreshold >= 0 {
		queue := shortestdistance.NewAutoQueue[W](f, f.Start(), shortestdistance.AnyArcFilter[W])
		if err := wfstutil.Prune[W](f, cfg.WeightThreshold, cfg.StateThreshold, queue); err != nil {
			return fmt.Errorf("rmepsilon: pruning: %w", err)
		}
	}

	return nil
}

// hasEpsilonCycle reports whether f's epsilon-only subgraph (arcs with
// both labels Epsilon) contains a cycle, via an iterative DFS with an
// explicit on-stack set, matching fst's own detectAcyclicAndOrder
// traversal shape rather than introducing a second recursive
// implementation.
func hasEpsilonCycle[W semiring.Weight](f fst.Fst[W]) bool {
	const (
		unvisited = 0
		onStack   = 1
		done      = 2
	)
	color := make(map[fst.StateId]int)

	type frame struct {
		state fst.StateId
		it    fst.ArcIterator[W]
	}

	sit := f.NewStateIterator()
	for ; !sit.Done(); sit.Next() {
		root := sit.Value()
		if color[root] != unvisited {
			continue
		}

		stack := []frame{{state: root, it: f.NewArcIterator(root)}}
		color[root] = onStack

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			advanced := false
			for !top.it.Done() {
				a := top.it.Value()
				top.it.Next()
				if a.ILabel != fst.Epsilon || a.OLabel != fst.Epsilon {
					continue
				}
				switch color[a.NextState] {
				case onStack:
					return true
				case unvisited:
					color[a.NextState] = onStack
					stack = append(stack, frame{state: a.NextState, it: f.NewArcIterator(a.NextState)})
					advanced = true
				}
				if advanced {
					break
				}
			}
			if advanced {
				continue
			}
			color[top.state] = done
			stack = stack[:len(stack)-1]
		}
	}

	return false
}
