package ristretto

import (
	"io"

	"github.com/MixinNetwork/sigma-go"
	r255 "github.com/bwesterb/go-ristretto"
)

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

func (dlg *DLG) Announce(_ *r255.Point, announceSecret *r255.Scalar) *r255.Point {
	var R r255.Point
	return R.ScalarMultBase(announceSecret)
}

func (dlg *DLG) GenAnnounceSecret(_ *r255.Scalar, _ *r255.Point, rng io.Reader) (*r255.Scalar, error) {
	return RandomScalar(rng)
}

func (dlg *DLG) Respond(witness *r255.Scalar, _ *r255.Point, announceSecret *r255.Scalar, _ *r255.Point, challenge []byte) *r255.Scalar {
	return respond(witness, announceSecret, challenge)
}

// ImpliedAnnouncement uses the precomputed base point table for s * B.
func (dlg *DLG) ImpliedAnnouncement(X *r255.Point, challenge []byte, response *r255.Scalar) (*r255.Point, bool) {
	var sB r255.Point
	sB.PublicScalarMultBase(response)
	return impliedAnnouncement(&sB, X, challenge), true
}

func (dlg *DLG) WriteName(w io.Writer) error {
	_, err := io.WriteString(w, "DLG-ristretto255")
	return err
}

func (dlg *DLG) HashStatement(w io.Writer, X *r255.Point) {
	w.Write(X.Bytes())
}

type DLGFiatShamir = sigma.FiatShamir[*r255.Scalar, *r255.Point, *r255.Scalar, *r255.Point, *r255.Scalar]

func NewDLGFiatShamir(challengeLength int, oracle sigma.OracleFactory) (*DLGFiatShamir, error) {
	dlg, err := NewDLG(challengeLength)
	if err != nil {
		return nil, err
	}
	var p sigma.Protocol[*r255.Scalar, *r255.Point, *r255.Scalar, *r255.Point, *r255.Scalar] = dlg
	return sigma.NewFiatShamir(p, oracle)
}

type DLGRelation struct{}

func (DLGRelation) Generate(rng io.Reader) (*r255.Scalar, *r255.Point, error) {
	x, err := RandomScalar(rng)
	if err != nil {
		return nil, nil, err
	}
	var X r255.Point
	return x, X.ScalarMultBase(x), nil
}

func (DLGRelation) EncodeWitness(witness *r255.Scalar) []byte {
	return witness.Bytes()
}

func (DLGRelation) DecodeWitness(b []byte) (*r255.Scalar, error) {
	return DecodeScalar(b)
}

func (DLGRelation) EncodeStatement(X *r255.Point) []byte {
	return X.Bytes()
}

func (DLGRelation) DecodeStatement(b []byte) (*r255.Point, error) {
	return DecodePoint(b)
}

func NewDLGScheme(challengeLength int, oracle sigma.OracleFactory) (sigma.Scheme, error) {
	fs, err := NewDLGFiatShamir(challengeLength, oracle)
	if err != nil {
		return nil, err
	}
	var r sigma.Relation[*r255.Scalar, *r255.Point] = DLGRelation{}
	return sigma.NewScheme(fs, r), nil
}
