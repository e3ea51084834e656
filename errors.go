package sumcheck

import "errors"

var (
	// ErrInvalidProof is returned when a round polynomial's evaluations at 0
	// and 1 do not sum to the verifier's running claim. Verification halts
	// at the first failing round.
	ErrInvalidProof = errors.New("sum check failed")

	// ErrTranscriptMismatch is reserved for extensions that tag and compare
	// transcript states explicitly. The base protocol never returns it:
	// transcript divergence surfaces as a failed final oracle check.
	ErrTranscriptMismatch = errors.New("transcript mismatch")

	// ErrDimensionMismatch is returned when the proof's round count or the
	// number of accumulated challenges does not match the statement's number
	// of variables.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
