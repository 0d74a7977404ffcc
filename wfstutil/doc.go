// Package wfstutil holds the ambient helpers every transformation
// package shares but that are not themselves a named transducer
// algorithm in their own right: a caller-injectable no-op-by-default
// Logger, a hook-driven state-graph Walk, and the Connect/Prune
// reachability helpers rmepsilon (and, in principle, any future eager
// transformation) uses to discard unreachable or over-threshold states
// after a structural rewrite.
package wfstutil
