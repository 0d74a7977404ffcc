package semiring

// ProductWeight is the direct product of two semirings: componentwise ⊕
// and ⊗, 0̄ = (W1.Zero, W2.Zero), 1̄ = (W1.One, W2.One). It is used to
// carry two independently-combined costs (e.g. a tropical distance and a
// Boolean acceptance flag) through the same set of arcs without having
// to run two separate FSTs.
type ProductWeight struct {
	W1 Weight
	W2 Weight
}

// NewProductWeight pairs two weights of arbitrary (possibly different)
// concrete semiring types.
func NewProductWeight(w1, w2 Weight) ProductWeight { return ProductWeight{W1: w1, W2: w2} }

func (w ProductWeight) asProduct(other Weight) ProductWeight {
	o, ok := other.(ProductWeight)
	if !ok {
		panic("semiring: ProductWeight operand of mismatched type")
	}
	return o
}

// Plus implements Weight.
func (w ProductWeight) Plus(other Weight) Weight {
	o := w.asProduct(other)
	return ProductWeight{W1: w.W1.Plus(o.W1), W2: w.W2.Plus(o.W2)}
}

// Times implements Weight.
func (w ProductWeight) Times(other Weight) Weight {
	o := w.asProduct(other)
	return ProductWeight{W1: w.W1.Times(o.W1), W2: w.W2.Times(o.W2)}
}

// Zero implements Weight.
func (w ProductWeight) Zero() Weight { return ProductWeight{W1: w.W1.Zero(), W2: w.W2.Zero()} }

// One implements Weight.
func (w ProductWeight) One() Weight { return ProductWeight{W1: w.W1.One(), W2: w.W2.One()} }

// Quantize implements Weight.
func (w ProductWeight) Quantize(delta float64) Weight {
	return ProductWeight{W1: w.W1.Quantize(delta), W2: w.W2.Quantize(delta)}
}

// ApproxEqual implements Weight.
func (w ProductWeight) ApproxEqual(other Weight, delta float64) bool {
	o := w.asProduct(other)
	return w.W1.ApproxEqual(o.W1, delta) && w.W2.ApproxEqual(o.W2, delta)
}

// Equal implements Weight.
func (w ProductWeight) Equal(other Weight) bool {
	o := w.asProduct(other)
	return w.W1.Equal(o.W1) && w.W2.Equal(o.W2)
}

// Less implements the natural order, which only holds when both
// components are idempotent.
func (w ProductWeight) Less(other Weight) bool { return NaturalLess(w, w.asProduct(other)) }

// Hash implements Weight.
func (w ProductWeight) Hash() uint64 {
	h1 := w.W1.Hash()
	h2 := w.W2.Hash()
	return h1*1099511628211 ^ h2
}

// Reverse implements Weight.
func (w ProductWeight) Reverse() Weight {
	return ProductWeight{W1: w.W1.Reverse(), W2: w.W2.Reverse()}
}

// Member implements Weight.
func (w ProductWeight) Member() bool { return w.W1.Member() && w.W2.Member() }

// Properties implements Weight: the conjunction of both components'
// properties, since a property only holds on the pair if it holds on
// each coordinate independently.
func (w ProductWeight) Properties() Properties { return w.W1.Properties() & w.W2.Properties() }

// String implements Weight.
func (w ProductWeight) String() string { return "(" + w.W1.String() + "," + w.W2.String() + ")" }
