package labelreachable

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/labelreachable/intervalset"
)

// buildIntervalSets computes, for every node of g, the intervalset.Set
// of node ids reachable from it (including itself) via g's edges —
// used directly as label indices per doc.go's collapsed-renumbering
// decision. Computed bottom-up over the SCC condensation: every node
// in a component shares one reachable set, the union of the
// component's own node ids and every component it has an edge into
// (already computed, since sinkFirst visits descendants before their
// ancestors).
func buildIntervalSets(g *transform, scc *sccResult) []intervalset.Set {
	numComps := 0
	for _, c := range scc.comp {
		if c+1 > numComps {
			numComps = c + 1
		}
	}

	members := make([][]fst.StateId, numComps)
	for s, c := range scc.comp {
		members[c] = append(members[c], fst.StateId(s))
	}

	compSet := make([]intervalset.Set, numComps)
	for _, c := range scc.sinkFirst {
		ids := make([]int64, len(members[c]))
		for i, s := range members[c] {
			ids[i] = int64(s)
		}
		set := intervalset.Build(ids)

		for _, s := range members[c] {
			for _, w := range g.adj[s] {
				if wc := scc.comp[w]; wc != c {
					set = intervalset.Merge(set, compSet[wc])
				}
			}
		}
		compSet[c] = set
	}

	isets := make([]intervalset.Set, g.numStates)
	for s, c := range scc.comp {
		isets[s] = compSet[c]
	}

	return isets
}
