package ristretto

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/MixinNetwork/sigma-go"
	r255 "github.com/bwesterb/go-ristretto"
	"github.com/dchest/blake2b"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
)

func TestDLCompleteness(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	for _, oracle := range []sigma.OracleFactory{
		sigma.NewHashOracle(sha256.New),
		sigma.NewHashOracle(blake2b.New512),
		sigma.NewTranscriptOracle("ristretto-dl"),
	} {
		dl, err := NewDLFiatShamir(31, oracle)
		require.Nil(err)
		dlg, err := NewDLGFiatShamir(31, oracle)
		require.Nil(err)
		for i := 0; i < 16; i++ {
			x, statement, err := DLRelation{}.Generate(frand.Reader)
			require.Nil(err)
			proof, err := dl.Prove(x, statement, frand.Reader)
			require.Nil(err)
			assert.True(dl.Verify(statement, proof))
			assert.True(dl.VerifyNaive(statement, proof))

			var X r255.Point
			X.ScalarMultBase(x)
			gproof, err := dlg.Prove(x, &X, frand.Reader)
			require.Nil(err)
			assert.True(dlg.Verify(&X, gproof))
		}
	}
}

func TestDLSoundness(t *testing.T) {
	assert := assert.New(t)

	dl, err := NewDLFiatShamir(31, sigma.NewHashOracle(blake2b.New512))
	assert.Nil(err)
	x, statement, err := DLRelation{}.Generate(frand.Reader)
	assert.Nil(err)
	proof, err := dl.Prove(x, statement, frand.Reader)
	assert.Nil(err)
	assert.True(dl.Verify(statement, proof))

	var one, x1 r255.Scalar
	one.SetOne()
	x1.Add(x, &one)
	var X1 r255.Point
	X1.ScalarMult(statement.G, &x1)
	assert.False(dl.Verify(Statement{G: statement.G, X: &X1}, proof))
	assert.False(dl.VerifyNaive(Statement{G: statement.G, X: &X1}, proof))

	swapped := Statement{G: statement.X, X: statement.G}
	assert.False(dl.Verify(swapped, proof))

	_, other, err := DLRelation{}.Generate(frand.Reader)
	assert.Nil(err)
	assert.False(dl.Verify(Statement{G: other.G, X: statement.X}, proof))
}

func TestDLGSoundness(t *testing.T) {
	assert := assert.New(t)

	dlg, err := NewDLGFiatShamir(31, sigma.NewHashOracle(sha256.New))
	assert.Nil(err)
	x, X, err := DLGRelation{}.Generate(frand.Reader)
	assert.Nil(err)
	proof, err := dlg.Prove(x, X, frand.Reader)
	assert.Nil(err)

	var one, x1 r255.Scalar
	one.SetOne()
	x1.Add(x, &one)
	var X1 r255.Point
	X1.ScalarMultBase(&x1)
	assert.False(dlg.Verify(&X1, proof))
}

func TestDLAlgebraicConsistency(t *testing.T) {
	assert := assert.New(t)

	dl := MustNewDL(31)
	dlg := MustNewDLG(31)
	for i := 0; i < 32; i++ {
		x, statement, _ := DLRelation{}.Generate(frand.Reader)
		r, _ := RandomScalar(frand.Reader)
		challenge := frand.Bytes(31)

		announce := dl.Announce(statement, r)
		response := dl.Respond(x, statement, r, announce, challenge)
		implied, ok := dl.ImpliedAnnouncement(statement, challenge, response)
		assert.True(ok)
		assert.Equal(hex.EncodeToString(announce.Bytes()), hex.EncodeToString(implied.Bytes()))

		var X r255.Point
		X.ScalarMultBase(x)
		announce = dlg.Announce(&X, r)
		response = dlg.Respond(x, &X, r, announce, challenge)
		implied, ok = dlg.ImpliedAnnouncement(&X, challenge, response)
		assert.True(ok)
		assert.True(implied.Equals(announce))
	}
}

func TestDLExample(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	dlg, err := NewDLGFiatShamir(31, sigma.NewHashOracle(sha256.New))
	require.Nil(err)

	x := ScalarFromUint64(7)
	var X r255.Point
	X.ScalarMultBase(x)
	assert.Equal("44f53520926ec81fbd5a387845beb7df85a96a24ece18738bdcfa6a7822a176d", hex.EncodeToString(X.Bytes()))

	proof, err := dlg.ProveDeterministic(x, &X)
	require.Nil(err)
	buf := dlg.MarshalProof(proof)
	assert.Equal("aa931fcb6c76b87c291811f592c9712a2591785dae5f36ea7c7f35281e933e1dd00aa2f319870e25f97bbae4412c7253214ef6056f56337cd4f40a13198d3a07", hex.EncodeToString(buf))
	assert.True(dlg.Verify(&X, proof))

	seed := [32]byte{7}
	seeded, err := dlg.Prove(x, &X, sigma.NewSeededReader(seed))
	require.Nil(err)
	again, err := dlg.Prove(x, &X, sigma.NewSeededReader(seed))
	require.Nil(err)
	assert.Equal(dlg.MarshalProof(seeded), dlg.MarshalProof(again))
	assert.True(dlg.Verify(&X, seeded))

	for i := POINT_SIZE; i < len(buf); i++ {
		tampered := bytes.Clone(buf)
		tampered[i] ^= 0x01
		p, err := dlg.UnmarshalProof(tampered)
		if err != nil {
			continue
		}
		assert.False(dlg.Verify(&X, p), "byte %d", i)
	}
}

func TestDLMalformedProof(t *testing.T) {
	assert := assert.New(t)

	dl, err := NewDLFiatShamir(31, sigma.NewTranscriptOracle("ristretto-malformed"))
	assert.Nil(err)
	x, statement, err := DLRelation{}.Generate(frand.Reader)
	assert.Nil(err)
	proof, err := dl.Prove(x, statement, frand.Reader)
	assert.Nil(err)

	for i, p := range []*sigma.Proof[*r255.Point, *r255.Scalar]{nil, {}, {Announce: proof.Announce}, {Response: proof.Response}} {
		assert.NotPanics(func() {
			assert.False(dl.Verify(statement, p), "proof %d", i)
			assert.False(dl.VerifyNaive(statement, p), "proof %d", i)
		})
	}
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() { NormalizeChallenge(make([]byte, 32)) })
	c := NormalizeChallenge(bytes.Repeat([]byte{0xff}, 31))
	assert.Equal("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff00", hex.EncodeToString(c.Bytes()))

	_, err := DecodeScalar(bytes.Repeat([]byte{0xff}, 32))
	assert.ErrorIs(err, ErrNonCanonicalScalar)
	_, err = DecodePoint(bytes.Repeat([]byte{0xff}, 32))
	assert.ErrorIs(err, ErrInvalidPoint)

	_, err = NewDL(32)
	assert.ErrorIs(err, sigma.ErrChallengeLength)
	_, err = NewDLG(0)
	assert.ErrorIs(err, sigma.ErrChallengeLength)

	var zero r255.Point
	zero.SetZero()
	var G r255.Point
	G.SetBase()
	statement := append(zero.Bytes(), G.Bytes()...)
	_, err = DLRelation{}.DecodeStatement(statement)
	assert.ErrorIs(err, ErrIdentity)
}

func TestDLScheme(t *testing.T) {
	assert := assert.New(t)

	for _, newScheme := range []func(int, sigma.OracleFactory) (sigma.Scheme, error){NewDLScheme, NewDLGScheme} {
		scheme, err := newScheme(24, sigma.NewTranscriptOracle("ristretto-scheme"))
		assert.Nil(err)
		witness, statement, err := scheme.Generate(frand.Reader)
		assert.Nil(err)
		proof, err := scheme.Prove(witness, statement, nil)
		assert.Nil(err)
		valid, err := scheme.Verify(statement, proof)
		assert.Nil(err)
		assert.True(valid, scheme.Name())

		proof[len(proof)-1] ^= 0x01
		valid, _ = scheme.Verify(statement, proof)
		assert.False(valid, scheme.Name())
	}
}
