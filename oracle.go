package sigma

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"
	"math"

	"github.com/dchest/blake2b"
	"github.com/gtank/merlin"
	"golang.org/x/crypto/sha3"
)

const (
	MERLIN_CHALLENGE_LABEL = "challenge"
)

// Oracle is a random oracle instance for one challenge derivation. Each
// Absorb call opens a new labelled section of the oracle input.
type Oracle interface {
	Absorb(label string) io.Writer
	Squeeze(n int) []byte
}

// OracleFactory creates a fresh Oracle per challenge.
type OracleFactory interface {
	New() Oracle
	// Size is the longest challenge Squeeze can return.
	Size() int
}

type hashOracleFactory struct {
	newHash func() hash.Hash
	size    int
}

// NewHashOracle derives challenges as the truncated digest of a hash.Hash.
// Labels are not hashed, so every section written to it must have a fixed
// length or be self delimiting.
func NewHashOracle(newHash func() hash.Hash) OracleFactory {
	return &hashOracleFactory{newHash: newHash, size: newHash().Size()}
}

func (f *hashOracleFactory) New() Oracle {
	return &hashOracle{f.newHash()}
}

func (f *hashOracleFactory) Size() int {
	return f.size
}

type hashOracle struct {
	hash.Hash
}

func (o *hashOracle) Absorb(string) io.Writer {
	return o.Hash
}

func (o *hashOracle) Squeeze(n int) []byte {
	return o.Sum(nil)[:n]
}

type transcriptOracleFactory struct {
	label string
}

// NewTranscriptOracle derives challenges from a merlin transcript
// initialised with label.
func NewTranscriptOracle(label string) OracleFactory {
	return &transcriptOracleFactory{label}
}

func (f *transcriptOracleFactory) New() Oracle {
	return &transcriptOracle{merlin.NewTranscript(f.label)}
}

func (f *transcriptOracleFactory) Size() int {
	return math.MaxInt32
}

type transcriptOracle struct {
	t *merlin.Transcript
}

func (o *transcriptOracle) Absorb(label string) io.Writer {
	return &transcriptWriter{t: o.t, label: []byte(label)}
}

func (o *transcriptOracle) Squeeze(n int) []byte {
	return o.t.ExtractBytes([]byte(MERLIN_CHALLENGE_LABEL), n)
}

type transcriptWriter struct {
	t     *merlin.Transcript
	label []byte
}

func (w *transcriptWriter) Write(p []byte) (int, error) {
	w.t.AppendMessage(w.label, p)
	return len(p), nil
}

// HashByName maps a configuration name to a hash constructor.
func HashByName(name string) (func() hash.Hash, error) {
	switch name {
	case "sha256":
		return sha256.New, nil
	case "sha512":
		return sha512.New, nil
	case "blake2b":
		return blake2b.New512, nil
	case "blake2b-256":
		return blake2b.New256, nil
	case "sha3-256":
		return sha3.New256, nil
	case "sha3-512":
		return sha3.New512, nil
	}
	return nil, fmt.Errorf("sigma: unknown hash %q", name)
}
