package sumcheck

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Statement is the public claim that the sum of a multilinear polynomial on
// NbVars variables over the boolean hypercube equals ClaimedSum. Prover and
// verifier must agree on it out-of-band.
type Statement struct {
	NbVars     int
	ClaimedSum fr.Element
}

// RoundPoly is the degree-1 polynomial a prover sends in one round,
// represented by its evaluations at 0 and 1.
type RoundPoly struct {
	G0, G1 fr.Element
}

// Eval evaluates the round polynomial at x by linear interpolation:
// g(x) = g(0) + (g(1) - g(0))·x.
func (p *RoundPoly) Eval(x *fr.Element) fr.Element {
	var res fr.Element
	res.Sub(&p.G1, &p.G0)
	res.Mul(&res, x)
	res.Add(&res, &p.G0)
	return res
}

// Coeffs returns (c0, c1) such that g(x) = c0 + c1·x.
func (p *RoundPoly) Coeffs() (c0, c1 fr.Element) {
	c0 = p.G0
	c1.Sub(&p.G1, &p.G0)
	return
}

// Proof is an ordered sequence of round polynomials, one per variable of the
// proven polynomial. Entry i binds the i-th variable. It is immutable once
// produced by [Prove].
type Proof struct {
	RoundPolys []RoundPoly
}

// NbRounds returns the number of round polynomials.
func (p *Proof) NbRounds() int {
	return len(p.RoundPolys)
}

// WriteTo writes the proof to w as the round count (big endian uint64)
// followed, for each round, by the canonical encodings of g(0) and g(1). It
// implements io.WriterTo.
func (p *Proof) WriteTo(w io.Writer) (int64, error) {
	var written int64
	if err := binary.Write(w, binary.BigEndian, uint64(len(p.RoundPolys))); err != nil {
		return written, err
	}
	written += 8
	for i := range p.RoundPolys {
		g0 := p.RoundPolys[i].G0.Bytes()
		g1 := p.RoundPolys[i].G1.Bytes()
		n, err := w.Write(g0[:])
		written += int64(n)
		if err != nil {
			return written, err
		}
		n, err = w.Write(g1[:])
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// maxReadPrealloc caps the slice capacity reserved from a length header
// before any payload has been read, so a lying header cannot force a huge
// allocation. The slice still grows to the full count as bytes arrive.
const maxReadPrealloc = 1024

// ReadFrom reads a proof written by WriteTo, rejecting non-canonical field
// element encodings. Rounds are read incrementally, so memory use is
// proportional to the bytes actually supplied, not to the round count
// claimed by the header. A round count that does not match the statement is
// only detected by [Verify]. It implements io.ReaderFrom.
func (p *Proof) ReadFrom(r io.Reader) (int64, error) {
	var read int64
	var nbRounds uint64
	if err := binary.Read(r, binary.BigEndian, &nbRounds); err != nil {
		return read, err
	}
	read += 8

	roundPolys := make([]RoundPoly, 0, min(nbRounds, maxReadPrealloc))
	var buf [fr.Bytes]byte
	var rp RoundPoly
	for i := uint64(0); i < nbRounds; i++ {
		n, err := io.ReadFull(r, buf[:])
		read += int64(n)
		if err != nil {
			return read, err
		}
		if err := rp.G0.SetBytesCanonical(buf[:]); err != nil {
			return read, fmt.Errorf("round %d: g0: %w", i, err)
		}
		n, err = io.ReadFull(r, buf[:])
		read += int64(n)
		if err != nil {
			return read, err
		}
		if err := rp.G1.SetBytesCanonical(buf[:]); err != nil {
			return read, fmt.Errorf("round %d: g1: %w", i, err)
		}
		roundPolys = append(roundPolys, rp)
	}

	p.RoundPolys = roundPolys
	return read, nil
}
