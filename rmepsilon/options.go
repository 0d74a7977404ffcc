package rmepsilon

import (
	"github.com/katalvlaran/wfst/semiring"
	"github.com/katalvlaran/wfst/wfstutil"
)

// Options configures the eager Do. It follows this module's
// functional-options idiom (Options/Option/DefaultOptions/WithXxx),
// generalized over weight type since there is no single concrete
// Options type that works across semirings.
type Options[W semiring.Weight] struct {
	// Connect removes unreachable/non-coaccessible states once epsilon
	// removal is done. Default true.
	Connect bool
	// WeightThreshold prunes states/arcs whose best weight exceeds it
	// (per wfstutil.Prune's convention). The semiring's Zero() (the
	// default) disables pruning by weight.
	WeightThreshold W
	// StateThreshold caps the number of states retained by weight-order
	// pruning. A negative value (fst.NoStateId) disables this limit.
	StateThreshold int64
	// Delta is the shortest-distance convergence tolerance used for the
	// epsilon-closure computation.
	Delta float64
	// Logger is the diagnostic sink carried with these options. Do
	// writes no messages to it. Defaults to a no-op logger.
	Logger wfstutil.Logger
}

// Option configures Options[W].
type Option[W semiring.Weight] func(*Options[W])

// DefaultOptions returns Options with Connect enabled, no weight/state
// pruning, semiring.DefaultDelta, and a no-op logger.
func DefaultOptions[W semiring.Weight]() Options[W] {
	var zero W

	return Options[W]{
		Connect:         true,
		WeightThreshold: zero.Zero().(W),
		StateThreshold:  -1,
		Delta:           semiring.DefaultDelta,
		Logger:          wfstutil.NoopLogger{},
	}
}

// WithConnect overrides whether Connect runs after epsilon removal.
func WithConnect[W semiring.Weight](connect bool) Option[W] {
	return func(o *Options[W]) { o.Connect = connect }
}

// WithWeightThreshold enables pruning: states whose best weight through
// them (from the start to a final state) exceeds threshold (per the
// natural order) are discarded. Requires an Idempotent semiring; callers of a
// non-idempotent semiring should leave this unset.
func WithWeightThreshold[W semiring.Weight](threshold W) Option[W] {
	return func(o *Options[W]) { o.WeightThreshold = threshold }
}

// WithStateThreshold caps the number of states retained after pruning.
// Panics if n is negative.
func WithStateThreshold[W semiring.Weight](n int64) Option[W] {
	return func(o *Options[W]) {
		if n < 0 {
			panic("rmepsilon: StateThreshold must be non-negative")
		}
		o.StateThreshold = n
	}
}

// WithDelta overrides the shortest-distance convergence tolerance.
// Panics if delta is negative.
func WithDelta[W semiring.Weight](delta float64) Option[W] {
	return func(o *Options[W]) {
		if delta < 0 {
			panic("rmepsilon: delta must be non-negative")
		}
		o.Delta = delta
	}
}

// WithLogger overrides the diagnostic logger.
func WithLogger[W semiring.Weight](logger wfstutil.Logger) Option[W] {
	return func(o *Options[W]) { o.Logger = logger }
}
