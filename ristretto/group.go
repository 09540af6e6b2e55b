// Package ristretto implements the discrete logarithm Sigma protocols over
// ristretto255. The group has prime order, so decoded points need no
// subgroup check.
package ristretto

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/MixinNetwork/sigma-go"
	r255 "github.com/bwesterb/go-ristretto"
)

const (
	SCALAR_SIZE = 32
	POINT_SIZE  = 32
	ORDER_BITS  = 253
)

var (
	ErrNonCanonicalScalar = errors.New("ristretto: non-canonical scalar")
	ErrInvalidPoint       = errors.New("ristretto: invalid point encoding")
	ErrIdentity           = errors.New("ristretto: identity point")
)

func NormalizeChallenge(challenge []byte) *r255.Scalar {
	buf := sigma.PadChallenge(challenge, SCALAR_SIZE)
	c, err := DecodeScalar(buf)
	if err != nil {
		panic(fmt.Sprintf("ristretto: challenge %x is not canonical", challenge))
	}
	return c
}

func RandomScalar(rng io.Reader) (*r255.Scalar, error) {
	var wide [64]byte
	if _, err := io.ReadFull(rng, wide[:]); err != nil {
		return nil, fmt.Errorf("ristretto: random scalar: %w", err)
	}
	var s r255.Scalar
	return s.SetReduced(&wide), nil
}

func ScalarFromUint64(v uint64) *r255.Scalar {
	var buf [SCALAR_SIZE]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	var s r255.Scalar
	return s.SetBytes(&buf)
}

func DecodeScalar(b []byte) (*r255.Scalar, error) {
	if len(b) != SCALAR_SIZE {
		return nil, ErrNonCanonicalScalar
	}
	var buf [SCALAR_SIZE]byte
	copy(buf[:], b)
	var s r255.Scalar
	s.SetBytes(&buf)
	if !bytes.Equal(s.Bytes(), b) {
		return nil, ErrNonCanonicalScalar
	}
	return &s, nil
}

func DecodePoint(b []byte) (*r255.Point, error) {
	if len(b) != POINT_SIZE {
		return nil, ErrInvalidPoint
	}
	var buf [POINT_SIZE]byte
	copy(buf[:], b)
	var p r255.Point
	if !p.SetBytes(&buf) || !bytes.Equal(p.Bytes(), b) {
		return nil, ErrInvalidPoint
	}
	return &p, nil
}

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

func (base) MarshalAnnounce(announce *r255.Point) []byte {
	return announce.Bytes()
}

func (base) UnmarshalAnnounce(b []byte) (*r255.Point, error) {
	return DecodePoint(b)
}

func (base) MarshalResponse(response *r255.Scalar) []byte {
	return response.Bytes()
}

func (base) UnmarshalResponse(b []byte) (*r255.Scalar, error) {
	return DecodeScalar(b)
}

func (base) SampleResponse(rng io.Reader) (*r255.Scalar, error) {
	return RandomScalar(rng)
}

func (base) HashAnnouncement(w io.Writer, announce *r255.Point) {
	w.Write(announce.Bytes())
}

func (base) HashWitness(w io.Writer, witness *r255.Scalar) {
	w.Write(witness.Bytes())
}

// respond returns r + c * x.
func respond(witness, secret *r255.Scalar, challenge []byte) *r255.Scalar {
	c := NormalizeChallenge(challenge)
	var s r255.Scalar
	s.Mul(c, witness)
	return s.Add(&s, secret)
}

// impliedAnnouncement returns s * G - c * X in variable time.
func impliedAnnouncement(sG *r255.Point, X *r255.Point, challenge []byte) *r255.Point {
	c := NormalizeChallenge(challenge)
	var cX, R r255.Point
	cX.PublicScalarMult(X, c)
	return R.Sub(sG, &cX)
}
