package sigma_test

import (
	"crypto/sha256"
	"testing"

	"filippo.io/edwards25519"
	"github.com/MixinNetwork/sigma-go"
	"github.com/MixinNetwork/sigma-go/ed25519"
	"github.com/MixinNetwork/sigma-go/ristretto"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

func TestFiatShamirProofEncoding(t *testing.T) {
	assert := assert.New(t)

	fs, err := ed25519.NewDLGFiatShamir(31, sigma.NewHashOracle(sha256.New))
	assert.Nil(err)
	assert.Equal(64, fs.ProofSize())

	x, X, err := ed25519.DLGRelation{}.Generate(frand.Reader)
	assert.Nil(err)
	proof, err := fs.Prove(x, X, frand.Reader)
	assert.Nil(err)

	buf := fs.MarshalProof(proof)
	assert.Equal(proof.Announce.Bytes(), buf[:32])
	assert.Equal(proof.Response.Bytes(), buf[32:])

	_, err = fs.UnmarshalProof(buf[:63])
	assert.ErrorIs(err, sigma.ErrInvalidProofLength)
	_, err = fs.UnmarshalProof(append(buf, 0))
	assert.ErrorIs(err, sigma.ErrInvalidProofLength)

	assert.False(fs.Verify(X, nil))
	assert.False(fs.VerifyNaive(X, nil))
	assert.False(fs.VerifyCompact(X, nil))
}

func TestFiatShamirChallengeLength(t *testing.T) {
	assert := assert.New(t)

	x, X, _ := ed25519.DLGRelation{}.Generate(frand.Reader)
	for _, l := range []int{1, 8, 31} {
		fs, err := ed25519.NewDLGFiatShamir(l, sigma.NewHashOracle(sha256.New))
		assert.Nil(err)
		proof, err := fs.Prove(x, X, frand.Reader)
		assert.Nil(err)
		assert.Len(fs.Challenge(X, proof.Announce), l)
		assert.Len(fs.MarshalProof(proof), 64)
		assert.True(fs.Verify(X, proof))
	}
}

func TestFiatShamirDomainSeparation(t *testing.T) {
	assert := assert.New(t)

	oracle := sigma.NewHashOracle(sha256.New)
	dl, _ := ed25519.NewDLFiatShamir(31, oracle)
	dlg, _ := ed25519.NewDLGFiatShamir(31, oracle)

	x, X, _ := ed25519.DLGRelation{}.Generate(frand.Reader)
	proof, err := dlg.Prove(x, X, frand.Reader)
	assert.Nil(err)

	// the name is absorbed, so DL over the base point is a different oracle
	statement := ed25519.Statement{G: edwards25519.NewGeneratorPoint(), X: X}
	assert.NotEqual(dlg.Challenge(X, proof.Announce), dl.Challenge(statement, proof.Announce))
	assert.False(dl.Verify(statement, &ed25519.DLProof{Announce: proof.Announce, Response: proof.Response}))
}

func TestFiatShamirConcurrent(t *testing.T) {
	assert := assert.New(t)

	ed, err := ed25519.NewDLGScheme(31, sigma.NewTranscriptOracle("concurrent"))
	assert.Nil(err)
	rist, err := ristretto.NewDLGScheme(31, sigma.NewTranscriptOracle("concurrent"))
	assert.Nil(err)

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		scheme := ed
		if i%2 == 1 {
			scheme = rist
		}
		seed := [32]byte{byte(i)}
		g.Go(func() error {
			rng := sigma.NewSeededReader(seed)
			witness, statement, err := scheme.Generate(rng)
			if err != nil {
				return err
			}
			proof, err := scheme.Prove(witness, statement, rng)
			if err != nil {
				return err
			}
			valid, err := scheme.Verify(statement, proof)
			if err != nil {
				return err
			}
			assert.True(valid, scheme.Name())
			return nil
		})
	}
	assert.Nil(g.Wait())
}

func TestSeededReader(t *testing.T) {
	assert := assert.New(t)

	a := make([]byte, 64)
	b := make([]byte, 64)
	sigma.NewSeededReader([32]byte{1}).Read(a)
	sigma.NewSeededReader([32]byte{1}).Read(b)
	assert.Equal(a, b)
	sigma.NewSeededReader([32]byte{2}).Read(b)
	assert.NotEqual(a, b)
}
