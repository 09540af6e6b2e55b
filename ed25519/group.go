// Package ed25519 implements discrete logarithm Sigma protocols over the
// Ed25519 group.
//
// Points decoded by this package are only checked for canonical encoding.
// A verifier must run CheckPoint on every statement point it did not
// compute itself, otherwise the proofs in this package are not sound.
package ed25519

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"filippo.io/edwards25519"
	"github.com/MixinNetwork/sigma-go"
)

const (
	SCALAR_SIZE = 32
	POINT_SIZE  = 32
	ORDER_BITS  = 253
)

var (
	ErrNonCanonicalScalar = errors.New("ed25519: non-canonical scalar")
	ErrNonCanonicalPoint  = errors.New("ed25519: non-canonical point")
	ErrTorsion            = errors.New("ed25519: point not in prime-order subgroup")
	ErrIdentity           = errors.New("ed25519: identity point")
)

// NormalizeChallenge maps a challenge of at most 31 bytes to a scalar
// without reduction.
func NormalizeChallenge(challenge []byte) *edwards25519.Scalar {
	buf := sigma.PadChallenge(challenge, SCALAR_SIZE)
	c, err := edwards25519.NewScalar().SetCanonicalBytes(buf)
	if err != nil {
		panic(fmt.Sprintf("ed25519: challenge %x is not canonical", challenge))
	}
	return c
}

func RandomScalar(rng io.Reader) (*edwards25519.Scalar, error) {
	var wide [64]byte
	if _, err := io.ReadFull(rng, wide[:]); err != nil {
		return nil, fmt.Errorf("ed25519: random scalar: %w", err)
	}
	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		panic(err)
	}
	return s, nil
}

func ScalarFromUint64(v uint64) *edwards25519.Scalar {
	var buf [SCALAR_SIZE]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	s, err := edwards25519.NewScalar().SetCanonicalBytes(buf[:])
	if err != nil {
		panic(err)
	}
	return s
}

func DecodeScalar(b []byte) (*edwards25519.Scalar, error) {
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNonCanonicalScalar, err)
	}
	return s, nil
}

// DecodePoint decodes a compressed point and rejects the non-canonical
// encodings edwards25519 accepts.
func DecodePoint(b []byte) (*edwards25519.Point, error) {
	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNonCanonicalPoint, err)
	}
	if !bytes.Equal(p.Bytes(), b) {
		return nil, ErrNonCanonicalPoint
	}
	return p, nil
}

// CheckPoint rejects points with a torsion component.
func CheckPoint(p *edwards25519.Point) error {
	minusOne := edwards25519.NewScalar().Negate(ScalarFromUint64(1))
	lp := edwards25519.NewIdentityPoint().ScalarMult(minusOne, p)
	lp.Add(lp, p)
	if lp.Equal(edwards25519.NewIdentityPoint()) != 1 {
		return ErrTorsion
	}
	return nil
}

func checkBase(p *edwards25519.Point) error {
	if p.Equal(edwards25519.NewIdentityPoint()) == 1 {
		return ErrIdentity
	}
	return CheckPoint(p)
}

// base carries what DL and DLG share: the challenge length and the
// encodings of scalars and points.
type base struct {
	challengeLength int
}

func newBase(challengeLength int) (base, error) {
	if err := sigma.CheckChallengeLength(challengeLength, ORDER_BITS); err != nil {
		return base{}, err
	}
	return base{challengeLength: challengeLength}, nil
}

func (b base) ChallengeLength() int {
	return b.challengeLength
}

func (base) AnnounceSize() int {
	return POINT_SIZE
}

func (base) ResponseSize() int {
	return SCALAR_SIZE
}

func (base) MarshalAnnounce(announce *edwards25519.Point) []byte {
	return announce.Bytes()
}

func (base) UnmarshalAnnounce(b []byte) (*edwards25519.Point, error) {
	return DecodePoint(b)
}

func (base) MarshalResponse(response *edwards25519.Scalar) []byte {
	return response.Bytes()
}

func (base) UnmarshalResponse(b []byte) (*edwards25519.Scalar, error) {
	return DecodeScalar(b)
}

func (base) SampleResponse(rng io.Reader) (*edwards25519.Scalar, error) {
	return RandomScalar(rng)
}

func (base) HashAnnouncement(w io.Writer, announce *edwards25519.Point) {
	w.Write(announce.Bytes())
}

func (base) HashWitness(w io.Writer, witness *edwards25519.Scalar) {
	w.Write(witness.Bytes())
}

func respond(witness, secret *edwards25519.Scalar, challenge []byte) *edwards25519.Scalar {
	c := NormalizeChallenge(challenge)
	return edwards25519.NewScalar().MultiplyAdd(c, witness, secret)
}
