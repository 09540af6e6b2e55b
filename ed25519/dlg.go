package ed25519

import (
	"io"

	"filippo.io/edwards25519"
	"github.com/MixinNetwork/sigma-go"
)

// DLG proves knowledge of the discrete logarithm of X to the Ed25519
// base point.
type DLG struct {
	base
}

func NewDLG(challengeLength int) (*DLG, error) {
	b, err := newBase(challengeLength)
	if err != nil {
		return nil, err
	}
	return &DLG{b}, nil
}

func MustNewDLG(challengeLength int) *DLG {
	dlg, err := NewDLG(challengeLength)
	if err != nil {
		panic(err)
	}
	return dlg
}

func (dlg *DLG) Announce(_ *edwards25519.Point, announceSecret *edwards25519.Scalar) *edwards25519.Point {
	return edwards25519.NewIdentityPoint().ScalarBaseMult(announceSecret)
}

func (dlg *DLG) GenAnnounceSecret(_ *edwards25519.Scalar, _ *edwards25519.Point, rng io.Reader) (*edwards25519.Scalar, error) {
	return RandomScalar(rng)
}

func (dlg *DLG) Respond(witness *edwards25519.Scalar, _ *edwards25519.Point, announceSecret *edwards25519.Scalar, _ *edwards25519.Point, challenge []byte) *edwards25519.Scalar {
	return respond(witness, announceSecret, challenge)
}

// ImpliedAnnouncement returns -c * X + s * B in one variable time double
// scalar multiplication.
func (dlg *DLG) ImpliedAnnouncement(X *edwards25519.Point, challenge []byte, response *edwards25519.Scalar) (*edwards25519.Point, bool) {
	c := NormalizeChallenge(challenge)
	negC := edwards25519.NewScalar().Negate(c)
	return edwards25519.NewIdentityPoint().VarTimeDoubleScalarBaseMult(negC, X, response), true
}

func (dlg *DLG) WriteName(w io.Writer) error {
	_, err := io.WriteString(w, "DLG-ed25519")
	return err
}

func (dlg *DLG) HashStatement(w io.Writer, X *edwards25519.Point) {
	w.Write(X.Bytes())
}

type DLGFiatShamir = sigma.FiatShamir[*edwards25519.Scalar, *edwards25519.Point, *edwards25519.Scalar, *edwards25519.Point, *edwards25519.Scalar]

type DLGProof = sigma.Proof[*edwards25519.Point, *edwards25519.Scalar]

func NewDLGFiatShamir(challengeLength int, oracle sigma.OracleFactory) (*DLGFiatShamir, error) {
	dlg, err := NewDLG(challengeLength)
	if err != nil {
		return nil, err
	}
	var p sigma.Protocol[*edwards25519.Scalar, *edwards25519.Point, *edwards25519.Scalar, *edwards25519.Point, *edwards25519.Scalar] = dlg
	return sigma.NewFiatShamir(p, oracle)
}

type DLGRelation struct{}

func (DLGRelation) Generate(rng io.Reader) (*edwards25519.Scalar, *edwards25519.Point, error) {
	x, err := RandomScalar(rng)
	if err != nil {
		return nil, nil, err
	}
	return x, edwards25519.NewIdentityPoint().ScalarBaseMult(x), nil
}

func (DLGRelation) EncodeWitness(witness *edwards25519.Scalar) []byte {
	return witness.Bytes()
}

func (DLGRelation) DecodeWitness(b []byte) (*edwards25519.Scalar, error) {
	return DecodeScalar(b)
}

func (DLGRelation) EncodeStatement(X *edwards25519.Point) []byte {
	return X.Bytes()
}

func (DLGRelation) DecodeStatement(b []byte) (*edwards25519.Point, error) {
	X, err := DecodePoint(b)
	if err != nil {
		return nil, err
	}
	if err := CheckPoint(X); err != nil {
		return nil, err
	}
	return X, nil
}

func NewDLGScheme(challengeLength int, oracle sigma.OracleFactory) (sigma.Scheme, error) {
	fs, err := NewDLGFiatShamir(challengeLength, oracle)
	if err != nil {
		return nil, err
	}
	var r sigma.Relation[*edwards25519.Scalar, *edwards25519.Point] = DLGRelation{}
	return sigma.NewScheme(fs, r), nil
}
