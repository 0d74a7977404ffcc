package semiring

import "errors"

// ErrOverflow names an arithmetic operation (Plus/Times) producing a
// value the semiring cannot represent. Weights carry no error bit and no
// function in this module returns ErrOverflow; an unrepresentable value
// is only detectable through Member, and overflow in a weight does not
// set fst.Error on any Fst.
var ErrOverflow = errors.New("semiring: arithmetic overflow")

// ErrHashCollision names two weights that compare unequal after
// quantization but hash identically. No function in this module returns
// it: isomorphic.Test reports such a collision through its err result.
var ErrHashCollision = errors.New("semiring: quantized weight hash collision")

// DefaultDelta is the default tolerance used for approximate equality,
// quantization, and shortest-distance convergence checks throughout the
// module. It mirrors the reference implementation's kDelta.
const DefaultDelta = 1.0 / 1024.0

// Properties is a bitset describing the algebraic properties a concrete
// Weight type reports about itself.
type Properties uint8

const (
	// LeftSemiring holds when ⊗ distributes over ⊕ on the left.
	LeftSemiring Properties = 1 << iota
	// RightSemiring holds when ⊗ distributes over ⊕ on the right.
	RightSemiring
	// Commutative holds when ⊗ is commutative.
	Commutative
	// Idempotent holds when x ⊕ x = x for all x, which induces the
	// natural order a ≤ b iff a ⊕ b = a.
	Idempotent
	// Path holds when the semiring is idempotent and its natural order
	// forms a lattice (e.g. tropical, boolean).
	Path
)

// Has reports whether every bit in mask is set in p.
func (p Properties) Has(mask Properties) bool { return p&mask == mask }

// Weight is a single element of a semiring together with the operations
// algorithms in this module rely on. Implementations are expected to be
// small, comparable-by-value types (a float64, a string, a tuple of
// weights) so that Go's ordinary value semantics give the copy-on-pass
// behavior the reference implementation gets from pass-by-value template
// arguments.
//
// Zero and One are ordinary methods, not static/package-level functions:
// callers obtain the identity elements from any existing Weight value of
// the same concrete type, e.g. w.Zero(), regardless of what w itself
// holds. This is what lets generic algorithms (which only ever see a
// Weight interface value obtained from an Fst) construct 0̄ and 1̄ without
// knowing the concrete type.
type Weight interface {
	// Plus returns w ⊕ other. Panics if other is not the same concrete
	// type as w.
	Plus(other Weight) Weight
	// Times returns w ⊗ other. Panics if other is not the same concrete
	// type as w.
	Times(other Weight) Weight
	// Zero returns 0̄ for this semiring.
	Zero() Weight
	// One returns 1̄ for this semiring.
	One() Weight
	// Quantize rounds w to the nearest delta-bucket, per semiring
	// convention (e.g. rounding a tropical weight's underlying float).
	Quantize(delta float64) Weight
	// ApproxEqual reports whether w and other are equal to within delta.
	ApproxEqual(other Weight, delta float64) bool
	// Equal reports exact equality.
	Equal(other Weight) bool
	// Less implements the natural order (a < b iff a ⊕ b = a and a != b).
	// Only meaningful when Properties().Has(Idempotent); callers must not
	// invoke it otherwise.
	Less(other Weight) bool
	// Hash returns a deterministic hash of the (unquantized) value.
	Hash() uint64
	// Reverse returns the weight of the reversed path, used by algorithms
	// that traverse an FST backwards.
	Reverse() Weight
	// Member reports whether w is a valid element (not a NaN/overflow
	// sentinel produced by a failed operation).
	Member() bool
	// Properties reports this semiring's algebraic properties. The
	// result is identical for every value of a given concrete type.
	Properties() Properties
	// String renders w for diagnostics and test failure messages.
	String() string
}

// NaturalLess implements the idempotent-semiring natural order
// (a < b iff a ⊕ b = a and a != b) generically, for algorithms that
// receive a Weight and don't want to call the interface method directly.
func NaturalLess(a, b Weight) bool {
	return a.Properties().Has(Idempotent) && !a.Equal(b) && a.Plus(b).Equal(a)
}
