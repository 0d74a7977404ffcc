package rmepsilon

import "errors"

// ErrInconsistentProperties is returned when the input claims Acyclic
// but a topological-order pass over its epsilon subgraph finds a cycle
// — treated as a hard error rather than a silent fallback to SCC
// ordering, since a caller-asserted property that contradicts the
// graph itself signals a bug at the call site, not a condition this
// package should paper over.
var ErrInconsistentProperties = errors.New("rmepsilon: input claims acyclic but epsilon subgraph has a cycle")
