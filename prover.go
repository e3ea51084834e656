package sumcheck

import (
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/sumcheck/fiatshamir"
	"github.com/consensys/sumcheck/logger"
	"github.com/consensys/sumcheck/polynomial"
)

// Transcript labels shared by prover and verifier. Verification replays the
// exact append/challenge sequence of the prover, so both sides must use the
// same labels in the same order.
const (
	labelG0 = "g0"
	labelG1 = "g1"
	labelR  = "r"
)

// Prover drives the prover side of the protocol one round at a time, for
// callers that supply their own challenges (e.g. a surrounding protocol
// owning the transcript). [Prove] is the one-shot Fiat-Shamir wrapper
// around it.
type Prover struct {
	poly  polynomial.MultiLin
	round int
}

// NewProver returns a prover for the given statement and polynomial. It
// returns ErrDimensionMismatch when the polynomial's number of variables
// does not match the statement.
func NewProver(stmt Statement, poly polynomial.MultiLin) (*Prover, error) {
	if poly.NbVars != stmt.NbVars {
		return nil, fmt.Errorf("statement has %d variables, polynomial has %d: %w",
			stmt.NbVars, poly.NbVars, ErrDimensionMismatch)
	}
	return &Prover{poly: poly}, nil
}

// Round returns the index of the current round, starting at 0.
func (p *Prover) Round() int {
	return p.round
}

// RoundPoly computes the round polynomial for the current round: the partial
// sums of the remaining table with the first unfolded variable fixed to 0
// and to 1.
func (p *Prover) RoundPoly() RoundPoly {
	g0, g1 := p.poly.RoundSums()
	return RoundPoly{G0: g0, G1: g1}
}

// Bind folds the first unfolded variable at the verifier challenge r and
// moves to the next round.
func (p *Prover) Bind(r fr.Element) {
	p.poly = p.poly.FoldFirst(r)
	p.round++
}

// Prove runs the prover side of the non-interactive sumcheck protocol and
// returns a proof with exactly stmt.NbVars round polynomials.
//
// For the proof to verify, the caller must supply a statement with
// ClaimedSum == poly.Sum() and a freshly created transcript; Prove does not
// re-check the claimed sum. The only failure mode is a polynomial whose
// number of variables does not match the statement.
func Prove(stmt Statement, poly polynomial.MultiLin, fs *fiatshamir.Transcript) (Proof, error) {
	log := logger.Logger()
	start := time.Now()

	prover, err := NewProver(stmt, poly)
	if err != nil {
		return Proof{}, err
	}

	roundPolys := make([]RoundPoly, stmt.NbVars)
	for round := range roundPolys {
		rp := prover.RoundPoly()
		fs.AppendField(labelG0, &rp.G0)
		fs.AppendField(labelG1, &rp.G1)
		roundPolys[round] = rp

		prover.Bind(fs.ChallengeScalar(labelR))
	}

	log.Debug().Int("nbVars", stmt.NbVars).Dur("took", time.Since(start)).Msg("sumcheck prove")
	return Proof{RoundPolys: roundPolys}, nil
}
