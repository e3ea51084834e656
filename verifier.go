package sumcheck

import (
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/sumcheck/fiatshamir"
	"github.com/consensys/sumcheck/logger"
)

// Verifier tracks the verifier's running claim across rounds, for callers
// that drive the protocol themselves. [Verify] is the one-shot Fiat-Shamir
// wrapper around it.
type Verifier struct {
	stmt       Statement
	claim      fr.Element
	challenges []fr.Element
	round      int
}

// NewVerifier returns a verifier whose initial claim is the statement's
// claimed sum.
func NewVerifier(stmt Statement) *Verifier {
	return &Verifier{
		stmt:       stmt,
		claim:      stmt.ClaimedSum,
		challenges: make([]fr.Element, 0, stmt.NbVars),
	}
}

// Round returns the index of the current round, starting at 0.
func (v *Verifier) Round() int {
	return v.round
}

// ProcessRound checks the round polynomial against the running claim and, on
// success, reduces the claim to rp.Eval(r) and records the challenge. It
// returns ErrInvalidProof when g(0) + g(1) does not equal the running claim.
func (v *Verifier) ProcessRound(rp RoundPoly, r fr.Element) error {
	var sum fr.Element
	sum.Add(&rp.G0, &rp.G1)
	if !sum.Equal(&v.claim) {
		return fmt.Errorf("round %d: %w", v.round, ErrInvalidProof)
	}
	v.claim = rp.Eval(&r)
	v.challenges = append(v.challenges, r)
	v.round++
	return nil
}

// FinalCheck queries the oracle at the accumulated challenge point and
// compares the result with the final claim. A mismatch is a normal false
// result, not an error. It returns ErrDimensionMismatch when fewer or more
// rounds were processed than the statement has variables.
func (v *Verifier) FinalCheck(oracle Oracle) (bool, error) {
	if len(v.challenges) != v.stmt.NbVars {
		return false, fmt.Errorf("processed %d rounds, statement has %d variables: %w",
			len(v.challenges), v.stmt.NbVars, ErrDimensionMismatch)
	}
	eval := oracle.Query(v.challenges)
	return eval.Equal(&v.claim), nil
}

// Verify checks a sumcheck proof against a statement.
//
// fs must be a freshly created transcript with the same domain as the
// prover's: Verify replays the prover's append/challenge sequence, so the
// derived challenges match the prover's exactly when and only when all prior
// messages match.
//
// It returns ErrDimensionMismatch when the proof's round count does not
// equal stmt.NbVars, ErrInvalidProof at the first round whose polynomial
// does not sum to the running claim, and otherwise (ok, nil) where ok
// reports whether the oracle's evaluation at the challenge point ties in
// with the final claim. A false result is a rejected proof, distinct from a
// malformed one.
func Verify(stmt Statement, proof Proof, oracle Oracle, fs *fiatshamir.Transcript) (bool, error) {
	log := logger.Logger()
	start := time.Now()

	if proof.NbRounds() != stmt.NbVars {
		return false, fmt.Errorf("proof has %d round polynomials, statement has %d variables: %w",
			proof.NbRounds(), stmt.NbVars, ErrDimensionMismatch)
	}

	verifier := NewVerifier(stmt)
	for i := range proof.RoundPolys {
		rp := proof.RoundPolys[i]
		fs.AppendField(labelG0, &rp.G0)
		fs.AppendField(labelG1, &rp.G1)
		r := fs.ChallengeScalar(labelR)

		if err := verifier.ProcessRound(rp, r); err != nil {
			return false, err
		}
	}

	ok, err := verifier.FinalCheck(oracle)
	if err != nil {
		return false, err
	}

	log.Debug().Int("nbVars", stmt.NbVars).Dur("took", time.Since(start)).Msg("sumcheck verify")
	return ok, nil
}
