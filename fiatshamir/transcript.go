// Package fiatshamir implements the transcript turning the interactive
// sumcheck protocol into a non-interactive one.
//
// The transcript maintains a running Blake2s-256 state. Appending a message
// absorbs it with length prefixes, so variable-length inputs cannot be
// re-parsed ambiguously. A challenge is derived from a fork of the running
// state; the live state is then ratcheted with the fork's output, binding
// every later derivation to every challenge already issued.
//
// Two transcripts created with the same domain and fed the identical
// sequence of appends produce identical challenges. This replay contract is
// what the verifier relies on.
package fiatshamir

import (
	"encoding"
	"encoding/binary"
	"hash"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/blake2s"
)

const (
	tagMessage   = "APPEND_MESSAGE"
	tagChallenge = "chal"
	tagRatchet   = "ratchet"
)

// stateHash is what the transcript requires from its hash primitive:
// incremental absorption plus state duplication through binary marshalling.
type stateHash interface {
	hash.Hash
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

// Transcript is a stateful Fiat-Shamir challenge generator. It is mutated by
// every append and every challenge derivation and must be exclusively owned
// for the duration of one protocol run; it is not safe for concurrent use.
type Transcript struct {
	h   stateHash
	ctr uint64
}

func newState() stateHash {
	h, err := blake2s.New256(nil)
	if err != nil {
		panic(err) // cannot fail with a nil key
	}
	return h.(stateHash)
}

// NewTranscript returns a transcript bound to the given domain separation
// label. Prover and verifier must use identical domains for challenges to
// replay; independent protocol runs must use distinct domains.
func NewTranscript(domain []byte) *Transcript {
	h := newState()
	h.Write(domain)
	h.Write(le64(uint64(len(domain))))
	h.Write(domain)
	return &Transcript{h: h}
}

// AppendMessage absorbs a labelled message into the running state. Both the
// label and the message are length-prefixed.
func (t *Transcript) AppendMessage(label string, msg []byte) {
	t.h.Write([]byte(tagMessage))
	t.h.Write(le64(uint64(len(label))))
	t.h.Write([]byte(label))
	t.h.Write(le64(uint64(len(msg))))
	t.h.Write(msg)
}

// AppendField absorbs a field element under its canonical fixed-width
// encoding.
func (t *Transcript) AppendField(label string, x *fr.Element) {
	buf := x.Bytes()
	t.AppendMessage(label, buf[:])
}

// ChallengeScalar derives a field element from the transcript state. The
// derivation runs on a fork of the running state so the main chain absorbs
// only the finalized output: the live state is ratcheted with the fork's
// digest and the challenge counter is incremented. The counter keeps two
// challenges requested under the same label within one run distinct.
func (t *Transcript) ChallengeScalar(label string) fr.Element {
	fork := t.fork()
	fork.Write([]byte(tagChallenge))
	fork.Write(le64(uint64(len(label))))
	fork.Write([]byte(label))
	fork.Write(le64(t.ctr))
	out := fork.Sum(nil)

	t.h.Write([]byte(tagRatchet))
	t.h.Write(out)
	t.ctr++

	var res fr.Element
	setLittleEndian(&res, out)
	return res
}

// fork duplicates the running hash state.
func (t *Transcript) fork() stateHash {
	state, err := t.h.MarshalBinary()
	if err != nil {
		panic(err)
	}
	f := newState()
	if err := f.UnmarshalBinary(state); err != nil {
		panic(err)
	}
	return f
}

// setLittleEndian interprets b as a little-endian unsigned integer and sets
// z to its reduction mod the field order.
func setLittleEndian(z *fr.Element, b []byte) {
	rev := make([]byte, len(b))
	for i := range b {
		rev[len(b)-1-i] = b[i]
	}
	z.SetBytes(rev)
}

func le64(v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return buf[:]
}
