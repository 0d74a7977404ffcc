package fst

// PropertyBits is a bitset of structural/algebraic properties an Fst may
// hold. Properties are tracked as a known/value pair (Props) so that an
// algorithm can distinguish "not X" from "unknown whether X".
type PropertyBits uint64

const (
	// Expanded holds when every state's arc list has been materialized
	// (as opposed to a delayed Fst that expands states on demand).
	Expanded PropertyBits = 1 << iota
	// Mutable holds when the Fst implements MutableFst.
	Mutable
	// Acyclic holds when the Fst's state graph has no cycles.
	Acyclic
	// TopSorted holds when Acyclic and states are numbered so every arc
	// goes from a lower to a higher StateId.
	TopSorted
	// ILabelSorted holds when every state's arcs are sorted by ILabel.
	ILabelSorted
	// OLabelSorted holds when every state's arcs are sorted by OLabel.
	OLabelSorted
	// Epsilons holds when some arc has ILabel == Epsilon || OLabel == Epsilon.
	Epsilons
	// InputEpsilons holds when some arc has ILabel == Epsilon.
	InputEpsilons
	// OutputEpsilons holds when some arc has OLabel == Epsilon.
	OutputEpsilons
	// Acceptor holds when every arc has ILabel == OLabel.
	Acceptor
	// Error is sticky: once set on an Fst derived from a failed
	// operation, it propagates to every Fst built from it.
	Error
)

// Props pairs a "known" mask (which bits have been determined) with a
// "value" mask (what those bits are, valid only where known), the
// same split OpenFST's kError/kXXX known/value bit-pair encodes in a
// single uint64.
type Props struct {
	Known PropertyBits
	Value PropertyBits
}

// Has reports whether mask is both known and set to true in p.
func (p Props) Has(mask PropertyBits) bool {
	return p.Known&mask == mask && p.Value&mask == mask
}

// KnownFalse reports whether mask is known and set to false in p.
func (p Props) KnownFalse(mask PropertyBits) bool {
	return p.Known&mask == mask && p.Value&mask == 0
}

// Set returns a copy of p with mask marked known and set to value's
// corresponding bits.
func (p Props) Set(mask, value PropertyBits) Props {
	return Props{Known: p.Known | mask, Value: (p.Value &^ mask) | (value & mask)}
}

// Unknown returns a copy of p with mask marked unknown.
func (p Props) Unknown(mask PropertyBits) Props {
	return Props{Known: p.Known &^ mask, Value: p.Value &^ mask}
}

// ConcatProperties computes the resulting Props for the concatenation of
// two Fsts with known Props a and b, per the closed-form table in the
// reference implementation's ConcatProperties: acyclicity and
// sortedness are not preserved across the join point in general, but
// epsilon/acceptor flags and the Error bit propagate mechanically.
func ConcatProperties(a, b Props) Props {
	out := Props{}
	// Error is contagious.
	if a.Has(Error) || b.Has(Error) {
		out = out.Set(Error, Error)
	} else if a.KnownFalse(Error) && b.KnownFalse(Error) {
		out = out.Set(Error, 0)
	}
	// Epsilons: present if either operand has them, or always (the join
	// point itself introduces no new epsilon, but we cannot assert
	// absence unless both operands are known epsilon-free).
	out = propagateOr(out, a, b, Epsilons)
	out = propagateOr(out, a, b, InputEpsilons)
	out = propagateOr(out, a, b, OutputEpsilons)
	// Acceptor holds only if both operands are acceptors.
	out = propagateAnd(out, a, b, Acceptor)
	// Acyclic/TopSorted/sortedness are not preserved by concatenation in
	// general (a cycle can appear only if an operand already had one,
	// but the join itself can break TopSorted numbering), so they are
	// left unknown unless both operands are known-false, in which case
	// concatenation cannot introduce them either... conservatively we
	// only propagate the "known false" case for Acyclic.
	if a.KnownFalse(Acyclic) || b.KnownFalse(Acyclic) {
		out = out.Set(Acyclic, 0)
	}
	return out
}

// RmEpsilonProperties computes the resulting Props after epsilon removal
// from an Fst with known Props in. RmEpsilon only drops arcs that are
// epsilon on both tapes (ILabel == Epsilon && OLabel == Epsilon); an
// (epsilon, b) arc with b != Epsilon survives, so the result cannot be
// asserted input-epsilon-free — the reference's kNoEpsilons tracks
// "no both-epsilon arc", a fact this port's OR-semantics Epsilons/
// InputEpsilons/OutputEpsilons bits (properties.go:23-28) cannot
// represent on their own, so InputEpsilons is left unknown rather than
// claimed false. Acceptor/Acyclic/Error are preserved as the source
// reports them.
func RmEpsilonProperties(in Props) Props {
	out := in
	out = out.Unknown(InputEpsilons)
	out = out.Unknown(ILabelSorted)
	out = out.Unknown(OLabelSorted)
	out = out.Unknown(TopSorted)
	return out
}

// SynchronizeProperties computes the resulting Props after
// synchronization of an Fst with known Props in: synchronization can
// only add states/arcs to align input/output tape delay, so it
// preserves Acceptor and Error but invalidates sortedness and
// acyclicity claims (the composite (state, residual) construction may
// introduce new, unordered states even from an acyclic source when the
// per-state "drain" arcs are added).
func SynchronizeProperties(in Props) Props {
	out := in
	out = out.Unknown(Acyclic)
	out = out.Unknown(TopSorted)
	out = out.Unknown(ILabelSorted)
	out = out.Unknown(OLabelSorted)
	return out
}

func propagateOr(out, a, b Props, bit PropertyBits) Props {
	if a.Has(bit) || b.Has(bit) {
		return out.Set(bit, bit)
	}
	if a.KnownFalse(bit) && b.KnownFalse(bit) {
		return out.Set(bit, 0)
	}
	return out
}

func propagateAnd(out, a, b Props, bit PropertyBits) Props {
	if a.Has(bit) && b.Has(bit) {
		return out.Set(bit, bit)
	}
	if a.KnownFalse(bit) || b.KnownFalse(bit) {
		return out.Set(bit, 0)
	}
	return out
}
