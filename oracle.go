package sumcheck

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/sumcheck/polynomial"
)

// Oracle answers point-evaluation queries on the polynomial underlying a
// sumcheck claim. The verifier queries it exactly once, at the end of the
// protocol. It stands in for a polynomial commitment opening in a full proof
// system; any backing with this single method can replace [PolyOracle]
// without protocol changes.
type Oracle interface {
	Query(point []fr.Element) fr.Element
}

// PolyOracle answers queries by evaluating a multilinear polynomial it holds
// in the clear. It is the direct-access oracle, used in tests and whenever
// the verifier knows the polynomial.
type PolyOracle struct {
	Poly polynomial.MultiLin
}

// NewPolyOracle returns an oracle backed by p.
func NewPolyOracle(p polynomial.MultiLin) *PolyOracle {
	return &PolyOracle{Poly: p}
}

// Query evaluates the polynomial at point by folding it down to a scalar.
func (o *PolyOracle) Query(point []fr.Element) fr.Element {
	return o.Poly.EvaluateAt(point)
}
