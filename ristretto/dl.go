package ristretto

import (
	"io"

	"github.com/MixinNetwork/sigma-go"
	r255 "github.com/bwesterb/go-ristretto"
)

type Statement struct {
	G *r255.Point
	X *r255.Point
}

type DL struct {
	base
}

func NewDL(challengeLength int) (*DL, error) {
	b, err := newBase(challengeLength)
	if err != nil {
		return nil, err
	}
	return &DL{b}, nil
}

func MustNewDL(challengeLength int) *DL {
	dl, err := NewDL(challengeLength)
	if err != nil {
		panic(err)
	}
	return dl
}

func (dl *DL) Announce(statement Statement, announceSecret *r255.Scalar) *r255.Point {
	var R r255.Point
	return R.ScalarMult(statement.G, announceSecret)
}

func (dl *DL) GenAnnounceSecret(_ *r255.Scalar, _ Statement, rng io.Reader) (*r255.Scalar, error) {
	return RandomScalar(rng)
}

func (dl *DL) Respond(witness *r255.Scalar, _ Statement, announceSecret *r255.Scalar, _ *r255.Point, challenge []byte) *r255.Scalar {
	return respond(witness, announceSecret, challenge)
}

func (dl *DL) ImpliedAnnouncement(statement Statement, challenge []byte, response *r255.Scalar) (*r255.Point, bool) {
	var sG r255.Point
	sG.PublicScalarMult(statement.G, response)
	return impliedAnnouncement(&sG, statement.X, challenge), true
}

func (dl *DL) WriteName(w io.Writer) error {
	_, err := io.WriteString(w, "DL-ristretto255")
	return err
}

func (dl *DL) HashStatement(w io.Writer, statement Statement) {
	w.Write(statement.G.Bytes())
	w.Write(statement.X.Bytes())
}

type DLFiatShamir = sigma.FiatShamir[*r255.Scalar, Statement, *r255.Scalar, *r255.Point, *r255.Scalar]

func NewDLFiatShamir(challengeLength int, oracle sigma.OracleFactory) (*DLFiatShamir, error) {
	dl, err := NewDL(challengeLength)
	if err != nil {
		return nil, err
	}
	var p sigma.Protocol[*r255.Scalar, Statement, *r255.Scalar, *r255.Point, *r255.Scalar] = dl
	return sigma.NewFiatShamir(p, oracle)
}

type DLRelation struct{}

func (DLRelation) Generate(rng io.Reader) (*r255.Scalar, Statement, error) {
	g, err := RandomScalar(rng)
	if err != nil {
		return nil, Statement{}, err
	}
	x, err := RandomScalar(rng)
	if err != nil {
		return nil, Statement{}, err
	}
	var G, X r255.Point
	G.ScalarMultBase(g)
	X.ScalarMult(&G, x)
	return x, Statement{G: &G, X: &X}, nil
}

func (DLRelation) EncodeWitness(witness *r255.Scalar) []byte {
	return witness.Bytes()
}

func (DLRelation) DecodeWitness(b []byte) (*r255.Scalar, error) {
	return DecodeScalar(b)
}

func (DLRelation) EncodeStatement(statement Statement) []byte {
	return append(statement.G.Bytes(), statement.X.Bytes()...)
}

func (DLRelation) DecodeStatement(b []byte) (Statement, error) {
	if len(b) != 2*POINT_SIZE {
		return Statement{}, ErrInvalidPoint
	}
	G, err := DecodePoint(b[:POINT_SIZE])
	if err != nil {
		return Statement{}, err
	}
	var zero r255.Point
	if G.Equals(zero.SetZero()) {
		return Statement{}, ErrIdentity
	}
	X, err := DecodePoint(b[POINT_SIZE:])
	if err != nil {
		return Statement{}, err
	}
	return Statement{G: G, X: X}, nil
}

func NewDLScheme(challengeLength int, oracle sigma.OracleFactory) (sigma.Scheme, error) {
	fs, err := NewDLFiatShamir(challengeLength, oracle)
	if err != nil {
		return nil, err
	}
	var r sigma.Relation[*r255.Scalar, Statement] = DLRelation{}
	return sigma.NewScheme(fs, r), nil
}
