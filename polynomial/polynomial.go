// Package polynomial provides multilinear polynomials over the BN254 scalar
// field in evaluation (bookkeeping table) form, with the fold and partial-sum
// primitives the sumcheck protocol runs on.
package polynomial

import (
	"math/bits"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/sumcheck/internal/parallel"
)

// minEvalsPerCPU is the table size above which folds and round sums are
// spread over the available CPUs.
const minEvalsPerCPU = 1 << 12

// MultiLin is a multilinear polynomial f(x₁, ..., xₙ) stored as its
// evaluations over the boolean hypercube {0,1}ⁿ:
//
//	Evals[i] = f(b₁, ..., bₙ)
//
// where (b₁, ..., bₙ) is the binary decomposition of i, b₁ being the least
// significant bit. len(Evals) is always 1 << NbVars.
type MultiLin struct {
	NbVars int
	Evals  []fr.Element
}

// Zero returns the all-zero polynomial on nbVars variables.
func Zero(nbVars int) MultiLin {
	return MultiLin{
		NbVars: nbVars,
		Evals:  make([]fr.Element, 1<<nbVars),
	}
}

// FromEvals builds a polynomial from its evaluations over the hypercube,
// inferring the number of variables from the table size. The slice is used
// as is, not copied.
//
// It panics if len(evals) is not a power of two.
func FromEvals(evals []fr.Element) MultiLin {
	if bits.OnesCount(uint(len(evals))) != 1 {
		panic("polynomial: evaluations length must be a power of two")
	}
	return MultiLin{
		NbVars: bits.TrailingZeros(uint(len(evals))),
		Evals:  evals,
	}
}

// Len returns the number of evaluations, i.e. 2^NbVars.
func (m MultiLin) Len() int {
	return len(m.Evals)
}

// IsConstant reports whether the polynomial has no variables left.
func (m MultiLin) IsConstant() bool {
	return m.NbVars == 0
}

// Get returns the evaluation at index i, or ok == false when i is out of
// range.
func (m MultiLin) Get(i int) (fr.Element, bool) {
	if i < 0 || i >= len(m.Evals) {
		return fr.Element{}, false
	}
	return m.Evals[i], true
}

// Clone returns a deep copy of the polynomial.
func (m MultiLin) Clone() MultiLin {
	evals := make([]fr.Element, len(m.Evals))
	copy(evals, m.Evals)
	return MultiLin{NbVars: m.NbVars, Evals: evals}
}

// Equal reports whether both polynomials have the same variables and
// evaluations.
func (m MultiLin) Equal(other MultiLin) bool {
	if m.NbVars != other.NbVars || len(m.Evals) != len(other.Evals) {
		return false
	}
	for i := range m.Evals {
		if !m.Evals[i].Equal(&other.Evals[i]) {
			return false
		}
	}
	return true
}

// Sum returns ∑_{x ∈ {0,1}ⁿ} f(x).
func (m MultiLin) Sum() fr.Element {
	var sum fr.Element
	for i := range m.Evals {
		sum.Add(&sum, &m.Evals[i])
	}
	return sum
}

// FoldFirst fixes the first variable to r and returns the resulting
// polynomial on NbVars-1 variables:
//
//	out[i] = Evals[2i]·(1-r) + Evals[2i+1]·r
//
// r may be any field element, not only 0 or 1; this is the restriction of
// the multilinear extension. The receiver is left untouched.
//
// It panics if the polynomial is constant.
func (m MultiLin) FoldFirst(r fr.Element) MultiLin {
	if m.NbVars == 0 {
		panic("polynomial: cannot fold a constant polynomial")
	}
	half := len(m.Evals) / 2
	res := MultiLin{
		NbVars: m.NbVars - 1,
		Evals:  make([]fr.Element, half),
	}

	foldChunk := func(start, end int) {
		var t fr.Element
		for i := start; i < end; i++ {
			// Evals[2i] + r·(Evals[2i+1] - Evals[2i])
			t.Sub(&m.Evals[2*i+1], &m.Evals[2*i])
			t.Mul(&t, &r)
			res.Evals[i].Add(&m.Evals[2*i], &t)
		}
	}

	if half < minEvalsPerCPU {
		foldChunk(0, half)
	} else {
		parallel.Execute(0, half, foldChunk)
	}
	return res
}

// FoldMany folds the current first variable at each element of rs in order,
// returning the polynomial on NbVars-len(rs) variables.
//
// It panics if len(rs) > NbVars.
func (m MultiLin) FoldMany(rs []fr.Element) MultiLin {
	if len(rs) > m.NbVars {
		panic("polynomial: more fold points than variables")
	}
	cur := m
	for _, r := range rs {
		cur = cur.FoldFirst(r)
	}
	return cur
}

// EvaluateAt evaluates the multilinear extension of the polynomial at an
// arbitrary point x ∈ 𝔽ⁿ by folding down to a scalar.
//
// It panics if len(x) != NbVars.
func (m MultiLin) EvaluateAt(x []fr.Element) fr.Element {
	if len(x) != m.NbVars {
		panic("polynomial: wrong number of evaluation points")
	}
	return m.FoldMany(x).Evals[0]
}

// RoundSums computes in one pass over the table
//
//	g0 = ∑_{x₂,...,xₙ} f(0, x₂, ..., xₙ)
//	g1 = ∑_{x₂,...,xₙ} f(1, x₂, ..., xₙ)
//
// without materializing a folded copy. g0 + g1 == Sum() always holds.
func (m MultiLin) RoundSums() (g0, g1 fr.Element) {
	half := len(m.Evals) / 2

	sumChunk := func(start, end int) (s0, s1 fr.Element) {
		for j := start; j < end; j++ {
			s0.Add(&s0, &m.Evals[2*j])
			s1.Add(&s1, &m.Evals[2*j+1])
		}
		return
	}

	if half < minEvalsPerCPU {
		return sumChunk(0, half)
	}

	var mu sync.Mutex
	parallel.Execute(0, half, func(start, end int) {
		s0, s1 := sumChunk(start, end)
		mu.Lock()
		g0.Add(&g0, &s0)
		g1.Add(&g1, &s1)
		mu.Unlock()
	})
	return
}
