package semiring

// GallicWeight pairs a StringWeight (the "output string" component) with
// an arbitrary underlying Weight (the "cost" component), as used when an
// FST's output tape is factored out into the weight so that algorithms
// written for acceptors (single tape) can be applied to transducers.
type GallicWeight struct {
	Str  StringWeight
	Cost Weight
}

// NewGallicWeight pairs a string component with a cost component. The
// two must be combined only with other GallicWeight values built from
// the same StringMode and cost semiring.
func NewGallicWeight(str StringWeight, cost Weight) GallicWeight {
	return GallicWeight{Str: str, Cost: cost}
}

func (w GallicWeight) asGallic(other Weight) GallicWeight {
	o, ok := other.(GallicWeight)
	if !ok {
		panic("semiring: GallicWeight operand of mismatched type")
	}
	return o
}

// Plus implements Weight: the string component takes the common
// affix (per its Mode) and the cost component is combined the same way
// the underlying semiring combines costs for competing paths with that
// affix.
func (w GallicWeight) Plus(other Weight) Weight {
	o := w.asGallic(other)
	return GallicWeight{
		Str:  w.Str.Plus(o.Str).(StringWeight),
		Cost: w.Cost.Plus(o.Cost),
	}
}

// Times implements Weight: string concatenation paired with cost
// multiplication.
func (w GallicWeight) Times(other Weight) Weight {
	o := w.asGallic(other)
	return GallicWeight{
		Str:  w.Str.Times(o.Str).(StringWeight),
		Cost: w.Cost.Times(o.Cost),
	}
}

// Zero implements Weight.
func (w GallicWeight) Zero() Weight {
	return GallicWeight{Str: StringZero(w.Str.Mode), Cost: w.Cost.Zero()}
}

// One implements Weight.
func (w GallicWeight) One() Weight {
	return GallicWeight{Str: StringOne(w.Str.Mode), Cost: w.Cost.One()}
}

// Quantize implements Weight.
func (w GallicWeight) Quantize(delta float64) Weight {
	return GallicWeight{Str: w.Str.Quantize(delta).(StringWeight), Cost: w.Cost.Quantize(delta)}
}

// ApproxEqual implements Weight.
func (w GallicWeight) ApproxEqual(other Weight, delta float64) bool {
	o := w.asGallic(other)
	return w.Str.ApproxEqual(o.Str, delta) && w.Cost.ApproxEqual(o.Cost, delta)
}

// Equal implements Weight.
func (w GallicWeight) Equal(other Weight) bool {
	o := w.asGallic(other)
	return w.Str.Equal(o.Str) && w.Cost.Equal(o.Cost)
}

// Less implements the natural order, meaningful only when Cost's
// semiring is idempotent.
func (w GallicWeight) Less(other Weight) bool { return NaturalLess(w, w.asGallic(other)) }

// Hash implements Weight.
func (w GallicWeight) Hash() uint64 {
	return w.Str.Hash()*1099511628211 ^ w.Cost.Hash()
}

// Reverse implements Weight.
func (w GallicWeight) Reverse() Weight {
	return GallicWeight{Str: w.Str.Reverse().(StringWeight), Cost: w.Cost.Reverse()}
}

// Member implements Weight.
func (w GallicWeight) Member() bool { return w.Str.Member() && w.Cost.Member() }

// Properties implements Weight.
func (w GallicWeight) Properties() Properties { return w.Str.Properties() & w.Cost.Properties() }

// String implements Weight.
func (w GallicWeight) String() string { return "(" + w.Str.String() + "," + w.Cost.String() + ")" }
