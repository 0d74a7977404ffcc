// Package fst_test contains unit tests for the fst package.
package fst_test

import (
	"testing"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/stretchr/testify/require"
)

func buildLinearFst() *fst.VectorFst[semiring.TropicalWeight] {
	f := fst.NewVectorFst[semiring.TropicalWeight]()
	s0 := f.AddState()
	s1 := f.AddState()
	s2 := f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: 2, NextState: s1})
	f.AddArc(s1, fst.Arc[semiring.TropicalWeight]{ILabel: 2, OLabel: 2, Weight: 3, NextState: s2})
	f.SetFinal(s2, 0)

	return f
}

func TestVectorFst_BasicShape(t *testing.T) {
	t.Parallel()

	f := buildLinearFst()
	require.EqualValues(t, 0, f.Start())
	require.Equal(t, 1, f.NumArcs(0))
	require.Equal(t, 1, f.NumArcs(1))
	require.Equal(t, 0, f.NumArcs(2))
	require.True(t, f.Final(2).Equal(semiring.TropicalWeight(0)))
	require.True(t, f.Final(0).Equal(semiring.TropicalZero))
}

func TestVectorFst_ArcIteration(t *testing.T) {
	t.Parallel()

	f := buildLinearFst()
	it := f.NewArcIterator(0)
	var seen []fst.Arc[semiring.TropicalWeight]
	for !it.Done() {
		seen = append(seen, it.Value())
		it.Next()
	}
	require.Len(t, seen, 1)
	require.EqualValues(t, 1, seen[0].ILabel)
}

func TestVectorFst_StateIteration(t *testing.T) {
	t.Parallel()

	f := buildLinearFst()
	it := f.NewStateIterator()
	var ids []fst.StateId
	for !it.Done() {
		ids = append(ids, it.Value())
		it.Next()
	}
	require.Equal(t, []fst.StateId{0, 1, 2}, ids)
}

func TestVectorFst_SetFinalZeroClearsFinality(t *testing.T) {
	t.Parallel()

	f := fst.NewVectorFst[semiring.TropicalWeight]()
	s0 := f.AddState()
	f.SetFinal(s0, 5)
	require.True(t, f.Final(s0).Equal(semiring.TropicalWeight(5)))
	f.SetFinal(s0, semiring.TropicalZero)
	require.True(t, f.Final(s0).Equal(semiring.TropicalZero))
}

func TestVectorFst_OutOfRangeStatePanics(t *testing.T) {
	t.Parallel()

	f := fst.NewVectorFst[semiring.TropicalWeight]()
	require.Panics(t, func() { f.NumArcs(0) })
}

func TestVectorFst_PropertiesComputeAcyclic(t *testing.T) {
	t.Parallel()

	f := buildLinearFst()
	props := f.Properties(fst.Acyclic|fst.TopSorted, true)
	require.True(t, props.Has(fst.Acyclic))
	require.True(t, props.Has(fst.TopSorted))
}

func TestVectorFst_PropertiesDetectCycle(t *testing.T) {
	t.Parallel()

	f := fst.NewVectorFst[semiring.TropicalWeight]()
	s0 := f.AddState()
	s1 := f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: 1, NextState: s1})
	f.AddArc(s1, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: 1, NextState: s0})

	props := f.Properties(fst.Acyclic, true)
	require.True(t, props.KnownFalse(fst.Acyclic))
}

func TestVectorFst_PropertiesDetectAcceptorAndEpsilons(t *testing.T) {
	t.Parallel()

	f := fst.NewVectorFst[semiring.TropicalWeight]()
	s0 := f.AddState()
	s1 := f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, fst.Arc[semiring.TropicalWeight]{ILabel: fst.Epsilon, OLabel: 1, Weight: 1, NextState: s1})
	f.SetFinal(s1, 0)

	props := f.Properties(fst.Acceptor|fst.InputEpsilons|fst.Epsilons, true)
	require.True(t, props.KnownFalse(fst.Acceptor))
	require.True(t, props.Has(fst.InputEpsilons))
	require.True(t, props.Has(fst.Epsilons))
}

func TestVectorFst_CopyIsIndependent(t *testing.T) {
	t.Parallel()

	f := buildLinearFst()
	cp := f.Copy(true).(*fst.VectorFst[semiring.TropicalWeight])
	cp.AddArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 9, OLabel: 9, Weight: 1, NextState: 1})
	require.Equal(t, 1, f.NumArcs(0))
	require.Equal(t, 2, cp.NumArcs(0))
}

func TestCompatSymbols(t *testing.T) {
	t.Parallel()

	require.True(t, fst.CompatSymbols(nil, nil))

	a := fst.NewSymbolTable("a")
	a.AddSymbol("x")
	require.True(t, fst.CompatSymbols(a, nil))

	b := fst.NewSymbolTable("b")
	b.AddSymbol("x")
	require.True(t, fst.CompatSymbols(a, b))

	// c registers a different symbol under label 1, the same label a
	// and b agree on: the tables disagree and must be rejected.
	c := fst.NewSymbolTable("c")
	c.AddSymbol("z")
	require.False(t, fst.CompatSymbols(a, c))
}
