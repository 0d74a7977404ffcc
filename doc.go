// Package wfst is a generic weighted finite-state transducer library.
//
// A weighted finite-state transducer (Fst) reads input symbols,
// writes output symbols, and accumulates a weight along every path
// through a semiring — the same algebraic abstraction speech and
// language toolkits use for shortest-path search, n-best extraction,
// and grammar composition. wfst generalizes the arithmetic over a Go
// generic type parameter (W semiring.Weight) instead of committing to
// one weight representation, so an Fst[TropicalWeight] and an
// Fst[LogWeight] share every algorithm's code.
//
// Subpackages:
//
//	semiring/        — Weight interface and its concrete semirings (Tropical, Log, Boolean, String, ...)
//	fst/              — Fst/MutableFst interfaces, VectorFst, properties
//	fstcache/         — lazy, single-flighted state expansion cache for delayed Fsts
//	shortestdistance/ — generic shortest-distance computation over pluggable queues
//	rmepsilon/        — epsilon-removal (eager and lazy), Connect/Prune pruning
//	concat/           — concatenation of transducers (two in place, or N lazily)
//	synchronize/      — delay synchronization between an Fst's input and output tapes
//	isomorphic/       — structural equivalence up to state/arc relabeling
//	labelreachable/   — "is label l the first symbol reachable from state s" queries
//	wfstutil/         — traversal, Connect/Prune, and logging helpers shared across the above
//
// Every operation takes and returns fst.Fst[W]/fst.MutableFst[W]
// values rather than mutating global state, and every blocking
// traversal accepts a context.Context where cancellation makes sense.
package wfst
