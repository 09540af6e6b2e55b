package ed25519

import (
	"io"

	"filippo.io/edwards25519"
	"github.com/MixinNetwork/sigma-go"
)

// Statement claims knowledge of x with X = x * G.
type Statement struct {
	G *edwards25519.Point
	X *edwards25519.Point
}

// DL proves knowledge of the discrete logarithm of X to the base G, where
// both points are part of the statement.
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

func (dl *DL) Announce(statement Statement, announceSecret *edwards25519.Scalar) *edwards25519.Point {
	return edwards25519.NewIdentityPoint().ScalarMult(announceSecret, statement.G)
}

func (dl *DL) GenAnnounceSecret(_ *edwards25519.Scalar, _ Statement, rng io.Reader) (*edwards25519.Scalar, error) {
	return RandomScalar(rng)
}

func (dl *DL) Respond(witness *edwards25519.Scalar, _ Statement, announceSecret *edwards25519.Scalar, _ *edwards25519.Point, challenge []byte) *edwards25519.Scalar {
	return respond(witness, announceSecret, challenge)
}

// ImpliedAnnouncement returns s * G - c * X. It runs in variable time and
// only touches public values.
func (dl *DL) ImpliedAnnouncement(statement Statement, challenge []byte, response *edwards25519.Scalar) (*edwards25519.Point, bool) {
	c := NormalizeChallenge(challenge)
	negC := edwards25519.NewScalar().Negate(c)
	R := edwards25519.NewIdentityPoint().VarTimeMultiScalarMult(
		[]*edwards25519.Scalar{response, negC},
		[]*edwards25519.Point{statement.G, statement.X},
	)
	return R, true
}

func (dl *DL) WriteName(w io.Writer) error {
	_, err := io.WriteString(w, "DL-ed25519")
	return err
}

func (dl *DL) HashStatement(w io.Writer, statement Statement) {
	w.Write(statement.G.Bytes())
	w.Write(statement.X.Bytes())
}

type DLFiatShamir = sigma.FiatShamir[*edwards25519.Scalar, Statement, *edwards25519.Scalar, *edwards25519.Point, *edwards25519.Scalar]

type DLProof = sigma.Proof[*edwards25519.Point, *edwards25519.Scalar]

func NewDLFiatShamir(challengeLength int, oracle sigma.OracleFactory) (*DLFiatShamir, error) {
	dl, err := NewDL(challengeLength)
	if err != nil {
		return nil, err
	}
	var p sigma.Protocol[*edwards25519.Scalar, Statement, *edwards25519.Scalar, *edwards25519.Point, *edwards25519.Scalar] = dl
	return sigma.NewFiatShamir(p, oracle)
}

// DLRelation encodes a Statement as G || X and checks both points on decode.
type DLRelation struct{}

func (DLRelation) Generate(rng io.Reader) (*edwards25519.Scalar, Statement, error) {
	g, err := RandomScalar(rng)
	if err != nil {
		return nil, Statement{}, err
	}
	x, err := RandomScalar(rng)
	if err != nil {
		return nil, Statement{}, err
	}
	G := edwards25519.NewIdentityPoint().ScalarBaseMult(g)
	X := edwards25519.NewIdentityPoint().ScalarMult(x, G)
	return x, Statement{G: G, X: X}, nil
}

func (DLRelation) EncodeWitness(witness *edwards25519.Scalar) []byte {
	return witness.Bytes()
}

func (DLRelation) DecodeWitness(b []byte) (*edwards25519.Scalar, error) {
	return DecodeScalar(b)
}

func (DLRelation) EncodeStatement(statement Statement) []byte {
	return append(statement.G.Bytes(), statement.X.Bytes()...)
}

func (DLRelation) DecodeStatement(b []byte) (Statement, error) {
	if len(b) != 2*POINT_SIZE {
		return Statement{}, ErrNonCanonicalPoint
	}
	G, err := DecodePoint(b[:POINT_SIZE])
	if err != nil {
		return Statement{}, err
	}
	if err := checkBase(G); err != nil {
		return Statement{}, err
	}
	X, err := DecodePoint(b[POINT_SIZE:])
	if err != nil {
		return Statement{}, err
	}
	if err := CheckPoint(X); err != nil {
		return Statement{}, err
	}
	return Statement{G: G, X: X}, nil
}

func NewDLScheme(challengeLength int, oracle sigma.OracleFactory) (sigma.Scheme, error) {
	fs, err := NewDLFiatShamir(challengeLength, oracle)
	if err != nil {
		return nil, err
	}
	var r sigma.Relation[*edwards25519.Scalar, Statement] = DLRelation{}
	return sigma.NewScheme(fs, r), nil
}
