package shortestdistance

import "errors"

// ErrNonConvergence is returned when the relaxation loop exceeds its
// iteration budget without residuals settling to within delta, which
// can happen for a non-idempotent semiring over a cyclic filtered
// subgraph.
var ErrNonConvergence = errors.New("shortestdistance: failed to converge within iteration budget")

// ErrSemiringOverflow is returned when a semiring operation performed
// during relaxation reports a non-Member() (invalid) result.
var ErrSemiringOverflow = errors.New("shortestdistance: semiring arithmetic overflow during relaxation")
