package semiring

// LexicographicWeight pairs two idempotent Path semirings and orders
// them lexicographically: ⊕ picks the operand that is smaller in W1,
// breaking ties by W2; ⊗ is componentwise. Both component semirings
// must satisfy Path (NewLexicographicWeight does not check this at
// runtime, matching the reference implementation's compile-time
// constraint, but callers should only ever use this with Path weights).
type LexicographicWeight struct {
	W1 Weight
	W2 Weight
}

// NewLexicographicWeight pairs two Path-semiring weights.
func NewLexicographicWeight(w1, w2 Weight) LexicographicWeight {
	return LexicographicWeight{W1: w1, W2: w2}
}

func (w LexicographicWeight) asLex(other Weight) LexicographicWeight {
	o, ok := other.(LexicographicWeight)
	if !ok {
		panic("semiring: LexicographicWeight operand of mismatched type")
	}
	return o
}

// Plus implements Weight: the lexicographically smaller of the two
// pairs, using each component's natural order.
func (w LexicographicWeight) Plus(other Weight) Weight {
	o := w.asLex(other)
	if w.W1.Equal(o.W1) {
		if NaturalLess(w.W2, o.W2) {
			return w
		}
		return o
	}
	if NaturalLess(w.W1, o.W1) {
		return w
	}
	return o
}

// Times implements Weight.
func (w LexicographicWeight) Times(other Weight) Weight {
	o := w.asLex(other)
	return LexicographicWeight{W1: w.W1.Times(o.W1), W2: w.W2.Times(o.W2)}
}

// Zero implements Weight.
func (w LexicographicWeight) Zero() Weight {
	return LexicographicWeight{W1: w.W1.Zero(), W2: w.W2.Zero()}
}

// One implements Weight.
func (w LexicographicWeight) One() Weight {
	return LexicographicWeight{W1: w.W1.One(), W2: w.W2.One()}
}

// Quantize implements Weight.
func (w LexicographicWeight) Quantize(delta float64) Weight {
	return LexicographicWeight{W1: w.W1.Quantize(delta), W2: w.W2.Quantize(delta)}
}

// ApproxEqual implements Weight.
func (w LexicographicWeight) ApproxEqual(other Weight, delta float64) bool {
	o := w.asLex(other)
	return w.W1.ApproxEqual(o.W1, delta) && w.W2.ApproxEqual(o.W2, delta)
}

// Equal implements Weight.
func (w LexicographicWeight) Equal(other Weight) bool {
	o := w.asLex(other)
	return w.W1.Equal(o.W1) && w.W2.Equal(o.W2)
}

// Less implements the natural order.
func (w LexicographicWeight) Less(other Weight) bool { return NaturalLess(w, w.asLex(other)) }

// Hash implements Weight.
func (w LexicographicWeight) Hash() uint64 {
	return w.W1.Hash()*1099511628211 ^ w.W2.Hash()
}

// Reverse implements Weight.
func (w LexicographicWeight) Reverse() Weight {
	return LexicographicWeight{W1: w.W1.Reverse(), W2: w.W2.Reverse()}
}

// Member implements Weight.
func (w LexicographicWeight) Member() bool { return w.W1.Member() && w.W2.Member() }

// Properties implements Weight: lexicographic order is always Path and
// idempotent when built from Path components.
func (w LexicographicWeight) Properties() Properties {
	return (w.W1.Properties() & w.W2.Properties() & (LeftSemiring | RightSemiring)) | Idempotent | Path
}

// String implements Weight.
func (w LexicographicWeight) String() string {
	return "(" + w.W1.String() + "," + w.W2.String() + ")"
}
