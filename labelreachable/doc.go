// Package labelreachable determines whether a non-epsilon label can be
// read as the first non-epsilon symbol along some path from a given
// state of an Fst.
//
// New builds an auxiliary "transform" graph from the input Fst: every
// non-epsilon arc is redirected to a label-specific synthetic sink
// state, and every original final state is redirected (via a
// kNoLabel-specific sink) the same way, exactly mirroring the
// reference's TransformFst. A node in that graph is reachable from
// state s of the original Fst iff the label it stands for can be read
// as a first non-epsilon symbol from s. Reachability is then computed
// once for every node (a state-reachability closure over the graph's
// strongly-connected-component condensation) and stored as one
// intervalset.Set per original state, so a later Reach(label) call is
// a single binary search.
//
// This port collapses the reference's two-step renumbering
// (state2index then label2index) into one: a synthetic sink's "index"
// is simply its StateId in the transform graph (Label and StateId are
// both int64 here), since the renumbering step in the reference exists
// purely to make interval sets denser — an optimization the
// intervalset package's run-length compression already provides
// without it.
package labelreachable
