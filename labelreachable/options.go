package labelreachable

import "github.com/katalvlaran/wfst/semiring"

// Options configures New. Follows this module's functional-options
// idiom (Options/Option/DefaultOptions/WithXxx).
type Options[W semiring.Weight] struct {
	// Accumulator sums weights for ReachRange.
	// Defaults to summing with the semiring's Plus.
	Accumulator Accumulator[W]
	// KeepRelabelData retains the label-to-index map so Relabel,
	// RelabelFst, and RelabelPairs stay usable after New returns. When
	// false, the map is discarded once the interval sets are built,
	// trading memory for the ability to relabel later.
	KeepRelabelData bool
}

// Option configures Options[W].
type Option[W semiring.Weight] func(*Options[W])

// DefaultOptions returns Options with the default Plus-based
// accumulator and relabel data retained.
func DefaultOptions[W semiring.Weight]() Options[W] {
	return Options[W]{
		Accumulator:     defaultAccumulator[W]{},
		KeepRelabelData: true,
	}
}

// WithAccumulator overrides the weight accumulator used by ReachRange.
func WithAccumulator[W semiring.Weight](acc Accumulator[W]) Option[W] {
	return func(o *Options[W]) { o.Accumulator = acc }
}

// WithKeepRelabelData controls whether the label-to-index map survives
// past New, for later Relabel/RelabelFst/RelabelPairs calls.
func WithKeepRelabelData[W semiring.Weight](keep bool) Option[W] {
	return func(o *Options[W]) { o.KeepRelabelData = keep }
}
