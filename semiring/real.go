package semiring

import (
	"math"
	"strconv"
)

// RealWeight is the ordinary (+, ×) semiring over non-negative reals:
// ⊕ = +, ⊗ = ×, 0̄ = 0, 1̄ = 1. It is used when weights represent
// un-logged probabilities directly rather than negative log-likelihoods.
type RealWeight float64

// RealZero is 0̄ for the real semiring.
const RealZero = RealWeight(0)

// RealOne is 1̄ for the real semiring.
const RealOne = RealWeight(1)

func (w RealWeight) asReal(other Weight) RealWeight {
	o, ok := other.(RealWeight)
	if !ok {
		panic("semiring: RealWeight operand of mismatched type")
	}
	return o
}

// Plus implements Weight.
func (w RealWeight) Plus(other Weight) Weight { return w + w.asReal(other) }

// Times implements Weight.
func (w RealWeight) Times(other Weight) Weight { return w * w.asReal(other) }

// Zero implements Weight.
func (w RealWeight) Zero() Weight { return RealZero }

// One implements Weight.
func (w RealWeight) One() Weight { return RealOne }

// Quantize implements Weight.
func (w RealWeight) Quantize(delta float64) Weight {
	return RealWeight(math.Floor(float64(w)/delta+0.5) * delta)
}

// ApproxEqual implements Weight.
func (w RealWeight) ApproxEqual(other Weight, delta float64) bool {
	return math.Abs(float64(w)-float64(w.asReal(other))) <= delta
}

// Equal implements Weight.
func (w RealWeight) Equal(other Weight) bool { return w == w.asReal(other) }

// Less implements Weight. The real semiring is not idempotent (x+x != x
// in general), so this order is not meaningful as a semiring natural
// order; provided for interface conformance only.
func (w RealWeight) Less(other Weight) bool { return w < w.asReal(other) }

// Hash implements Weight.
func (w RealWeight) Hash() uint64 { return math.Float64bits(float64(w)) }

// Reverse implements Weight.
func (w RealWeight) Reverse() Weight { return w }

// Member implements Weight: negative values and NaN are invalid.
func (w RealWeight) Member() bool { return !math.IsNaN(float64(w)) && w >= 0 }

// Properties implements Weight.
func (w RealWeight) Properties() Properties {
	return LeftSemiring | RightSemiring | Commutative
}

// String implements Weight.
func (w RealWeight) String() string { return strconv.FormatFloat(float64(w), 'g', -1, 64) }
