package polynomial

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func evalsOf(values ...uint64) []fr.Element {
	evals := make([]fr.Element, len(values))
	for i, v := range values {
		evals[i].SetUint64(v)
	}
	return evals
}

func randomEvals(t *testing.T, n int) []fr.Element {
	t.Helper()
	evals := make([]fr.Element, n)
	for i := range evals {
		_, err := evals[i].SetRandom()
		require.NoError(t, err)
	}
	return evals
}

func TestFromEvals(t *testing.T) {
	evals := evalsOf(1, 2, 3, 4)
	poly := FromEvals(evals)
	require.Equal(t, 2, poly.NbVars)
	require.Equal(t, evals, poly.Evals)
}

func TestFromEvalsInvalidLength(t *testing.T) {
	require.Panics(t, func() {
		FromEvals(evalsOf(1, 2, 3))
	})
	require.Panics(t, func() {
		FromEvals(nil)
	})
}

func TestZero(t *testing.T) {
	poly := Zero(3)
	require.Equal(t, 3, poly.NbVars)
	require.Equal(t, 8, poly.Len())
	var zero fr.Element
	for i := range poly.Evals {
		require.True(t, poly.Evals[i].Equal(&zero))
	}
}

func TestGet(t *testing.T) {
	poly := FromEvals(evalsOf(1, 2, 3, 4))

	e, ok := poly.Get(2)
	require.True(t, ok)
	require.Equal(t, "3", e.String())

	_, ok = poly.Get(4)
	require.False(t, ok)
	_, ok = poly.Get(-1)
	require.False(t, ok)
}

func TestSum(t *testing.T) {
	poly := FromEvals(evalsOf(1, 2, 3, 4))
	sum := poly.Sum()
	var expected fr.Element
	expected.SetUint64(10)
	require.True(t, sum.Equal(&expected))
}

func TestFoldFirst(t *testing.T) {
	// f(x₁, x₂) with evals [f(0,0), f(1,0), f(0,1), f(1,1)] = [1, 2, 3, 4]
	poly := FromEvals(evalsOf(1, 2, 3, 4))

	// folding at x₁ = 0 keeps the even-indexed subtable [1, 3]
	var zero fr.Element
	folded := poly.FoldFirst(zero)
	require.Equal(t, 1, folded.NbVars)
	require.Equal(t, evalsOf(1, 3), folded.Evals)

	// folding at x₁ = 1 keeps the odd-indexed subtable [2, 4]
	folded = poly.FoldFirst(fr.One())
	require.Equal(t, evalsOf(2, 4), folded.Evals)

	// the receiver is untouched
	require.Equal(t, evalsOf(1, 2, 3, 4), poly.Evals)
}

func TestFoldConstantPanics(t *testing.T) {
	poly := FromEvals(evalsOf(7))
	require.Panics(t, func() {
		poly.FoldFirst(fr.One())
	})
}

func TestFoldManyTooManyPointsPanics(t *testing.T) {
	poly := FromEvals(evalsOf(1, 2))
	require.Panics(t, func() {
		poly.FoldMany(make([]fr.Element, 2))
	})
}

func TestEvaluateAt(t *testing.T) {
	// f(x₁, x₂) = 1 + x₁ + 2·x₂ + x₁·x₂
	// evals: f(0,0)=1, f(1,0)=2, f(0,1)=3, f(1,1)=5
	poly := FromEvals(evalsOf(1, 2, 3, 5))

	cases := []struct {
		x        []fr.Element
		expected uint64
	}{
		{evalsOf(0, 0), 1},
		{evalsOf(1, 0), 2},
		{evalsOf(0, 1), 3},
		{evalsOf(1, 1), 5},
	}
	for _, c := range cases {
		got := poly.EvaluateAt(c.x)
		var expected fr.Element
		expected.SetUint64(c.expected)
		require.True(t, got.Equal(&expected))
	}

	require.Panics(t, func() {
		poly.EvaluateAt(evalsOf(1))
	})
}

func TestRoundSumsConsistency(t *testing.T) {
	poly := FromEvals(randomEvals(t, 8))
	g0, g1 := poly.RoundSums()

	var sum fr.Element
	sum.Add(&g0, &g1)
	total := poly.Sum()
	require.True(t, sum.Equal(&total))
}

func TestCloneAndEqual(t *testing.T) {
	poly := FromEvals(randomEvals(t, 16))
	clone := poly.Clone()
	require.True(t, poly.Equal(clone))

	clone.Evals[3].SetUint64(42)
	require.False(t, poly.Equal(clone))
}

// TestFoldFirstLargeTable exercises the parallel fold and round-sum paths.
func TestFoldFirstLargeTable(t *testing.T) {
	nbVars := 14 // 2^13 output evaluations, above the parallel threshold
	poly := FromEvals(randomEvals(t, 1<<nbVars))

	var r fr.Element
	_, err := r.SetRandom()
	require.NoError(t, err)

	folded := poly.FoldFirst(r)
	require.Equal(t, nbVars-1, folded.NbVars)

	// spot-check against the scalar formula
	var oneMinusR, want, tmp fr.Element
	one := fr.One()
	oneMinusR.Sub(&one, &r)
	for _, i := range []int{0, 1, 1<<(nbVars-1) - 1} {
		want.Mul(&poly.Evals[2*i], &oneMinusR)
		tmp.Mul(&poly.Evals[2*i+1], &r)
		want.Add(&want, &tmp)
		require.True(t, folded.Evals[i].Equal(&want), "mismatch at index %d", i)
	}

	g0, g1 := poly.RoundSums()
	var sum fr.Element
	sum.Add(&g0, &g1)
	total := poly.Sum()
	require.True(t, sum.Equal(&total))
}

func polyFromUint64(raw []uint64) MultiLin {
	evals := make([]fr.Element, len(raw))
	for i, v := range raw {
		evals[i].SetUint64(v)
	}
	return FromEvals(evals)
}

func TestPolynomialProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("g0 + g1 == total sum", prop.ForAll(
		func(raw []uint64) bool {
			poly := polyFromUint64(raw)
			g0, g1 := poly.RoundSums()
			var sum fr.Element
			sum.Add(&g0, &g1)
			total := poly.Sum()
			return sum.Equal(&total)
		},
		gen.SliceOfN(16, gen.UInt64()),
	))

	properties.Property("folding at 0 and 1 keeps the even/odd subtables", prop.ForAll(
		func(raw []uint64) bool {
			poly := polyFromUint64(raw)
			var zero fr.Element
			at0 := poly.FoldFirst(zero)
			at1 := poly.FoldFirst(fr.One())
			for i := range at0.Evals {
				if !at0.Evals[i].Equal(&poly.Evals[2*i]) || !at1.Evals[i].Equal(&poly.Evals[2*i+1]) {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(8, gen.UInt64()),
	))

	properties.Property("evaluation at boolean points indexes the table", prop.ForAll(
		func(raw []uint64) bool {
			poly := polyFromUint64(raw)
			x := make([]fr.Element, poly.NbVars)
			for i := range poly.Evals {
				for k := range x {
					x[k].SetUint64(uint64(i) >> k & 1)
				}
				got := poly.EvaluateAt(x)
				if !got.Equal(&poly.Evals[i]) {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(8, gen.UInt64()),
	))

	properties.Property("FoldMany == repeated FoldFirst", prop.ForAll(
		func(raw []uint64, rs []uint64) bool {
			poly := polyFromUint64(raw)
			points := make([]fr.Element, len(rs))
			for i, v := range rs {
				points[i].SetUint64(v)
			}
			byMany := poly.FoldMany(points)
			byOne := poly
			for _, r := range points {
				byOne = byOne.FoldFirst(r)
			}
			return byMany.Equal(byOne)
		},
		gen.SliceOfN(8, gen.UInt64()),
		gen.SliceOfN(3, gen.UInt64()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
