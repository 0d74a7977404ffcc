package semiring

// BooleanWeight is the Boolean semiring: ⊕ = ||, ⊗ = &&, 0̄ = false,
// 1̄ = true. It is idempotent and forms a lattice, so it satisfies Path;
// it is used for acceptors where only reachability, not accumulated
// weight, matters.
type BooleanWeight bool

// BooleanZero is 0̄ for the Boolean semiring.
const BooleanZero = BooleanWeight(false)

// BooleanOne is 1̄ for the Boolean semiring.
const BooleanOne = BooleanWeight(true)

func (w BooleanWeight) asBoolean(other Weight) BooleanWeight {
	o, ok := other.(BooleanWeight)
	if !ok {
		panic("semiring: BooleanWeight operand of mismatched type")
	}
	return o
}

// Plus implements Weight.
func (w BooleanWeight) Plus(other Weight) Weight { return w || w.asBoolean(other) }

// Times implements Weight.
func (w BooleanWeight) Times(other Weight) Weight { return w && w.asBoolean(other) }

// Zero implements Weight.
func (w BooleanWeight) Zero() Weight { return BooleanZero }

// One implements Weight.
func (w BooleanWeight) One() Weight { return BooleanOne }

// Quantize implements Weight: Boolean weights are exact.
func (w BooleanWeight) Quantize(delta float64) Weight { return w }

// ApproxEqual implements Weight.
func (w BooleanWeight) ApproxEqual(other Weight, delta float64) bool { return w == w.asBoolean(other) }

// Equal implements Weight.
func (w BooleanWeight) Equal(other Weight) bool { return w == w.asBoolean(other) }

// Less implements the natural order: false < true.
func (w BooleanWeight) Less(other Weight) bool { return !bool(w) && bool(w.asBoolean(other)) }

// Hash implements Weight.
func (w BooleanWeight) Hash() uint64 {
	if w {
		return 1
	}
	return 0
}

// Reverse implements Weight.
func (w BooleanWeight) Reverse() Weight { return w }

// Member implements Weight: every BooleanWeight value is valid.
func (w BooleanWeight) Member() bool { return true }

// Properties implements Weight.
func (w BooleanWeight) Properties() Properties {
	return LeftSemiring | RightSemiring | Commutative | Idempotent | Path
}

// String implements Weight.
func (w BooleanWeight) String() string {
	if w {
		return "T"
	}
	return "F"
}
