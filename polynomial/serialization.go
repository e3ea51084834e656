package polynomial

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// WriteTo writes the polynomial to w as the number of evaluations (big
// endian uint64) followed by each evaluation in canonical form. It
// implements io.WriterTo.
func (m MultiLin) WriteTo(w io.Writer) (int64, error) {
	var written int64
	if err := binary.Write(w, binary.BigEndian, uint64(len(m.Evals))); err != nil {
		return written, err
	}
	written += 8
	for i := range m.Evals {
		buf := m.Evals[i].Bytes()
		n, err := w.Write(buf[:])
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

// ReadFrom reads a polynomial written by WriteTo. It rejects a table whose
// size is not a power of two and any non-canonical field element encoding.
// Evaluations are read incrementally, so memory use is proportional to the
// bytes actually supplied, not to the count claimed by the header. It
// implements io.ReaderFrom.
func (m *MultiLin) ReadFrom(r io.Reader) (int64, error) {
	var read int64
	var nbEvals uint64
	if err := binary.Read(r, binary.BigEndian, &nbEvals); err != nil {
		return read, err
	}
	read += 8
	if bits.OnesCount64(nbEvals) != 1 {
		return read, fmt.Errorf("invalid evaluation count %d: not a power of two", nbEvals)
	}

	evals := make([]fr.Element, 0, min(nbEvals, maxReadPrealloc))
	var buf [fr.Bytes]byte
	var e fr.Element
	for i := uint64(0); i < nbEvals; i++ {
		n, err := io.ReadFull(r, buf[:])
		read += int64(n)
		if err != nil {
			return read, err
		}
		if err := e.SetBytesCanonical(buf[:]); err != nil {
			return read, fmt.Errorf("evaluation %d: %w", i, err)
		}
		evals = append(evals, e)
	}

	m.NbVars = bits.TrailingZeros64(nbEvals)
	m.Evals = evals
	return read, nil
}
