package shortestdistance

import (
	"fmt"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Options configures Compute, following this module's functional-
// options idiom (Options/Option/DefaultOptions/WithXxx).
type Options struct {
	// Delta is the approximate-equality tolerance used to decide
	// whether a residual changed "materially" enough to re-enqueue its
	// state.
	Delta float64
	// MaxIterations bounds the number of dequeue/relax steps before the
	// engine gives up and returns ErrNonConvergence. Zero means
	// unbounded.
	MaxIterations int
}

// Option configures shortest-distance Compute calls.
type Option func(*Options)

// DefaultOptions returns Options with semiring.DefaultDelta and an
// unbounded iteration budget.
func DefaultOptions() Options {
	return Options{Delta: semiring.DefaultDelta, MaxIterations: 0}
}

// WithDelta sets the approximate-equality tolerance. Panics if delta is
// negative.
func WithDelta(delta float64) Option {
	return func(o *Options) {
		if delta < 0 {
			panic("shortestdistance: delta must be non-negative")
		}
		o.Delta = delta
	}
}

// WithMaxIterations bounds the relaxation loop. Panics if n is
// negative.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("shortestdistance: MaxIterations must be non-negative")
		}
		o.MaxIterations = n
	}
}

// Compute runs the shortest-distance algorithm from source over f,
// admitting only arcs filter accepts, using queue to order processing.
// It returns distance[q] for every state q reached through admitted
// arcs from source (distance[source] == 1̄, unreached states are
// omitted), or ErrNonConvergence if the relaxation loop does not settle
// within MaxIterations (when set).
func Compute[W semiring.Weight](
	f fst.Fst[W],
	source fst.StateId,
	filter ArcFilter[W],
	queue Queue[W],
	opts ...Option,
) (map[fst.StateId]W, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var zero W
	one := zero.Zero().One().(W)
	zeroW := zero.Zero().(W)

	distance := map[fst.StateId]W{source: one}
	residual := map[fst.StateId]W{source: one}

	queue.Enqueue(source, one)

	iterations := 0
	for !queue.Empty() {
		if cfg.MaxIterations > 0 && iterations >= cfg.MaxIterations {
			return nil, fmt.Errorf("%w: after %d iterations", ErrNonConvergence, iterations)
		}
		iterations++

		q := queue.Dequeue()
		r, ok := residual[q]
		if !ok || r.Equal(zeroW) {
			continue
		}
		residual[q] = zeroW

		d, ok := distance[q]
		if !ok {
			d = zeroW
		}
		newD := d.Plus(r).(W)
		if !newD.Member() {
			return nil, fmt.Errorf("%w: at state %d", ErrSemiringOverflow, q)
		}
		distance[q] = newD

		it := f.NewArcIterator(q)
		for ; !it.Done(); it.Next() {
			a := it.Value()
			if !filter(a) {
				continue
			}
			mass := r.Times(a.Weight).(W)
			prevR, ok := residual[a.NextState]
			if !ok {
				prevR = zeroW
			}
			newR := prevR.Plus(mass).(W)
			if !newR.Member() {
				return nil, fmt.Errorf("%w: at state %d", ErrSemiringOverflow, a.NextState)
			}
			if newR.ApproxEqual(prevR, cfg.Delta) {
				residual[a.NextState] = newR

				continue
			}
			residual[a.NextState] = newR
			queue.Enqueue(a.NextState, newR)
		}
	}

	out := make(map[fst.StateId]W, len(distance))
	for s, d := range distance {
		if !d.Equal(zeroW) || s == source {
			out[s] = d
		}
	}

	return out, nil
}
