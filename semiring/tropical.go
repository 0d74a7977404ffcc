package semiring

import (
	"math"
	"strconv"
)

// TropicalWeight is the (min, +) semiring over the extended reals: ⊕ = min,
// ⊗ = +, 0̄ = +Inf, 1̄ = 0. It is idempotent, commutative, and forms a
// lattice under the natural order (smaller is "less"), so it satisfies
// Path. This is the default semiring for shortest-path style FSTs.
type TropicalWeight float64

// TropicalZero is 0̄ for the tropical semiring.
var TropicalZero = TropicalWeight(math.Inf(1))

// TropicalOne is 1̄ for the tropical semiring.
const TropicalOne = TropicalWeight(0)

func (w TropicalWeight) asTropical(other Weight) TropicalWeight {
	o, ok := other.(TropicalWeight)
	if !ok {
		panic("semiring: TropicalWeight operand of mismatched type")
	}
	return o
}

// Plus implements Weight.
func (w TropicalWeight) Plus(other Weight) Weight {
	o := w.asTropical(other)
	if w < o {
		return w
	}
	return o
}

// Times implements Weight.
func (w TropicalWeight) Times(other Weight) Weight {
	o := w.asTropical(other)
	if math.IsInf(float64(w), 1) || math.IsInf(float64(o), 1) {
		return TropicalZero
	}
	return w + o
}

// Zero implements Weight.
func (w TropicalWeight) Zero() Weight { return TropicalZero }

// One implements Weight.
func (w TropicalWeight) One() Weight { return TropicalOne }

// Quantize implements Weight.
func (w TropicalWeight) Quantize(delta float64) Weight {
	if math.IsInf(float64(w), 1) {
		return w
	}
	return TropicalWeight(math.Floor(float64(w)/delta+0.5) * delta)
}

// ApproxEqual implements Weight.
func (w TropicalWeight) ApproxEqual(other Weight, delta float64) bool {
	o := w.asTropical(other)
	if math.IsInf(float64(w), 1) || math.IsInf(float64(o), 1) {
		return math.IsInf(float64(w), 1) == math.IsInf(float64(o), 1)
	}
	return math.Abs(float64(w)-float64(o)) <= delta
}

// Equal implements Weight.
func (w TropicalWeight) Equal(other Weight) bool { return w == w.asTropical(other) }

// Less implements the natural order: smaller value wins.
func (w TropicalWeight) Less(other Weight) bool { return w < w.asTropical(other) }

// Hash implements Weight.
func (w TropicalWeight) Hash() uint64 {
	return math.Float64bits(float64(w))
}

// Reverse implements Weight. The tropical semiring is its own reverse.
func (w TropicalWeight) Reverse() Weight { return w }

// Member implements Weight: only NaN is invalid.
func (w TropicalWeight) Member() bool { return !math.IsNaN(float64(w)) }

// Properties implements Weight.
func (w TropicalWeight) Properties() Properties {
	return LeftSemiring | RightSemiring | Commutative | Idempotent | Path
}

// String implements Weight.
func (w TropicalWeight) String() string {
	if math.IsInf(float64(w), 1) {
		return "Infinity"
	}
	return strconv.FormatFloat(float64(w), 'g', -1, 64)
}
