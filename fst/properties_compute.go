package fst

import "github.com/katalvlaran/wfst/semiring"

// computeStructuralProperties walks f once and derives every bit
// requested in want that can be determined by direct inspection: arc
// sortedness, epsilon presence, acceptor-ness, and (via a DFS cycle
// check) acyclicity/topological order. It is the structural fallback
// Properties(..., computeIfUnknown=true) calls when a caller asks for a
// bit that was never explicitly recorded.
func computeStructuralProperties[W semiring.Weight](f Fst[W], want PropertyBits) Props {
	out := Props{}

	needSort := want&(ILabelSorted|OLabelSorted) != 0
	needEps := want&(Epsilons|InputEpsilons|OutputEpsilons) != 0
	needAcceptor := want&Acceptor != 0
	needCycle := want&(Acyclic|TopSorted) != 0

	iSorted, oSorted := true, true
	hasEps, hasIEps, hasOEps := false, false, false
	isAcceptor := true

	if needSort || needEps || needAcceptor {
		sit := f.NewStateIterator()
		for ; !sit.Done(); sit.Next() {
			s := sit.Value()
			ait := f.NewArcIterator(s)
			prevI, prevO := NoLabel, NoLabel
			first := true
			for ; !ait.Done(); ait.Next() {
				a := ait.Value()
				if !first {
					if a.ILabel < prevI {
						iSorted = false
					}
					if a.OLabel < prevO {
						oSorted = false
					}
				}
				prevI, prevO = a.ILabel, a.OLabel
				first = false
				if a.ILabel == Epsilon {
					hasIEps = true
					hasEps = true
				}
				if a.OLabel == Epsilon {
					hasOEps = true
					hasEps = true
				}
				if a.ILabel != a.OLabel {
					isAcceptor = false
				}
			}
		}
	}

	if needSort {
		out = out.Set(ILabelSorted, boolBit(iSorted, ILabelSorted))
		out = out.Set(OLabelSorted, boolBit(oSorted, OLabelSorted))
	}
	if needEps {
		out = out.Set(Epsilons, boolBit(hasEps, Epsilons))
		out = out.Set(InputEpsilons, boolBit(hasIEps, InputEpsilons))
		out = out.Set(OutputEpsilons, boolBit(hasOEps, OutputEpsilons))
	}
	if needAcceptor {
		out = out.Set(Acceptor, boolBit(isAcceptor, Acceptor))
	}
	if needCycle {
		acyclic, order := detectAcyclicAndOrder(f)
		out = out.Set(Acyclic, boolBit(acyclic, Acyclic))
		out = out.Set(TopSorted, boolBit(acyclic && order, TopSorted))
	}

	return out
}

func boolBit(b bool, bit PropertyBits) PropertyBits {
	if b {
		return bit
	}

	return 0
}

// detectAcyclicAndOrder runs an iterative DFS to detect back edges
// (cycles) and, if acyclic, whether the existing StateId numbering is
// already a valid topological order (every arc goes from a lower to a
// higher id).
func detectAcyclicAndOrder[W semiring.Weight](f Fst[W]) (acyclic, topOrder bool) {
	const (
		unvisited = 0
		onStack   = 1
		done      = 2
	)

	color := make(map[StateId]int)
	topOrder = true

	sit := f.NewStateIterator()
	var allStates []StateId
	for ; !sit.Done(); sit.Next() {
		s := sit.Value()
		allStates = append(allStates, s)
		color[s] = unvisited
	}

	acyclic = true

	var visit func(s StateId)
	visit = func(start StateId) {
		type frame struct {
			s  StateId
			it ArcIterator[W]
		}
		var frames []frame
		frames = append(frames, frame{s: start, it: f.NewArcIterator(start)})
		color[start] = onStack

		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			if top.it.Done() {
				color[top.s] = done
				frames = frames[:len(frames)-1]
				continue
			}
			a := top.it.Value()
			top.it.Next()
			if a.NextState < top.s {
				topOrder = false
			}
			switch color[a.NextState] {
			case unvisited:
				color[a.NextState] = onStack
				frames = append(frames, frame{s: a.NextState, it: f.NewArcIterator(a.NextState)})
			case onStack:
				acyclic = false
			}
		}
	}

	for _, s := range allStates {
		if color[s] == unvisited {
			visit(s)
		}
	}

	return acyclic, topOrder
}
