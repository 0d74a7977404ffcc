package semiring

import (
	"math"
	"strconv"
)

// LogWeight is the log semiring over float64: ⊕ is computed via
// log-add (log(exp(-x) + exp(-y))), ⊗ is ordinary +, 0̄ = +Inf, 1̄ = 0.
// Unlike TropicalWeight it is not idempotent, so it does not satisfy
// Path, but it is the correct semiring for summing path probabilities
// expressed as negative log-likelihoods.
type LogWeight float64

// LogZero is 0̄ for the log semiring.
var LogZero = LogWeight(math.Inf(1))

// LogOne is 1̄ for the log semiring.
const LogOne = LogWeight(0)

func (w LogWeight) asLog(other Weight) LogWeight {
	o, ok := other.(LogWeight)
	if !ok {
		panic("semiring: LogWeight operand of mismatched type")
	}
	return o
}

// logAdd computes -log(exp(-x) + exp(-y)) without overflow for large x, y.
func logAdd(x, y float64) float64 {
	if math.IsInf(x, 1) {
		return y
	}
	if math.IsInf(y, 1) {
		return x
	}
	if x > y {
		x, y = y, x
	}
	return x - math.Log1p(math.Exp(x-y))
}

// Plus implements Weight.
func (w LogWeight) Plus(other Weight) Weight {
	o := w.asLog(other)
	return LogWeight(logAdd(float64(w), float64(o)))
}

// Times implements Weight.
func (w LogWeight) Times(other Weight) Weight {
	o := w.asLog(other)
	if math.IsInf(float64(w), 1) || math.IsInf(float64(o), 1) {
		return LogZero
	}
	return w + o
}

// Zero implements Weight.
func (w LogWeight) Zero() Weight { return LogZero }

// One implements Weight.
func (w LogWeight) One() Weight { return LogOne }

// Quantize implements Weight.
func (w LogWeight) Quantize(delta float64) Weight {
	if math.IsInf(float64(w), 1) {
		return w
	}
	return LogWeight(math.Floor(float64(w)/delta+0.5) * delta)
}

// ApproxEqual implements Weight.
func (w LogWeight) ApproxEqual(other Weight, delta float64) bool {
	o := w.asLog(other)
	if math.IsInf(float64(w), 1) || math.IsInf(float64(o), 1) {
		return math.IsInf(float64(w), 1) == math.IsInf(float64(o), 1)
	}
	return math.Abs(float64(w)-float64(o)) <= delta
}

// Equal implements Weight.
func (w LogWeight) Equal(other Weight) bool { return w == w.asLog(other) }

// Less implements Weight. The log semiring is not idempotent, so this
// order is not a semiring natural order; it is provided only so LogWeight
// satisfies Weight for algorithms that accept but don't require Path.
func (w LogWeight) Less(other Weight) bool { return w < w.asLog(other) }

// Hash implements Weight.
func (w LogWeight) Hash() uint64 { return math.Float64bits(float64(w)) }

// Reverse implements Weight. The log semiring is commutative and its own
// reverse.
func (w LogWeight) Reverse() Weight { return w }

// Member implements Weight.
func (w LogWeight) Member() bool { return !math.IsNaN(float64(w)) }

// Properties implements Weight.
func (w LogWeight) Properties() Properties {
	return LeftSemiring | RightSemiring | Commutative
}

// String implements Weight.
func (w LogWeight) String() string {
	if math.IsInf(float64(w), 1) {
		return "Infinity"
	}
	return strconv.FormatFloat(float64(w), 'g', -1, 64)
}
