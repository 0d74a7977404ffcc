package labelreachable

import "github.com/katalvlaran/wfst/fst"

// sccResult is a Tarjan strongly-connected-component decomposition of
// a transform graph's entire node set.
type sccResult struct {
	// comp[s] is s's component id.
	comp []int
	// sinkFirst lists every component id in finish order: a
	// component's descendants (the components it has an edge into)
	// always appear before it, since Tarjan only finishes a component
	// once every node reachable from it has been visited.
	sinkFirst []int
}

// tarjanSCC decomposes every node of g (not just what's reachable from
// g.start — a state kept alive only by a cycle among otherwise-
// unreachable states still gets a correct, if practically unused,
// interval set). Grounded on shortestdistance/autoqueue.go's iterative
// frame-stack Tarjan, generalized here to a plain adjacency-list graph
// with no arc filter and no single root.
func tarjanSCC(g *transform) *sccResult {
	n := g.numStates
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	visited := make([]bool, n)
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}

	var stack []fst.StateId
	var sinkFirst []int
	counter := 0
	nextComp := 0

	type frame struct {
		s   fst.StateId
		pos int
	}

	visit := func(root fst.StateId) {
		frames := []frame{{s: root, pos: -1}}
		visited[root] = true
		index[root] = counter
		lowlink[root] = counter
		counter++
		stack = append(stack, root)
		onStack[root] = true

		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			advanced := false
			for top.pos+1 < len(g.adj[top.s]) {
				top.pos++
				w := g.adj[top.s][top.pos]
				if !visited[w] {
					visited[w] = true
					index[w] = counter
					lowlink[w] = counter
					counter++
					stack = append(stack, w)
					onStack[w] = true
					frames = append(frames, frame{s: w, pos: -1})
					advanced = true

					break
				}
				if onStack[w] && lowlink[w] < lowlink[top.s] {
					lowlink[top.s] = lowlink[w]
				}
			}
			if advanced {
				continue
			}

			if lowlink[top.s] == index[top.s] {
				cid := nextComp
				nextComp++
				for {
					k := len(stack) - 1
					w := stack[k]
					stack = stack[:k]
					onStack[w] = false
					comp[w] = cid
					if w == top.s {
						break
					}
				}
				sinkFirst = append(sinkFirst, cid)
			}

			s := top.s
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := &frames[len(frames)-1]
				if lowlink[s] < lowlink[parent.s] {
					lowlink[parent.s] = lowlink[s]
				}
			}
		}
	}

	for s := fst.StateId(0); s < fst.StateId(n); s++ {
		if !visited[s] {
			visit(s)
		}
	}

	return &sccResult{comp: comp, sinkFirst: sinkFirst}
}
