package sigma

import (
	"bytes"
	"crypto/subtle"
	"fmt"
	"io"
)

const (
	FIAT_SHAMIR_DOMAIN_TAG = "sigma-go/fiat-shamir"
)

// Proof is a non interactive proof: the announcement and the response.
type Proof[A, R any] struct {
	Announce A
	Response R
}

func (p *Proof[A, R]) wellFormed() bool {
	return p != nil && !isNil(p.Announce) && !isNil(p.Response)
}

// CompactProof carries the challenge in place of the announcement, which
// the verifier reconstructs with ImpliedAnnouncement.
type CompactProof[R any] struct {
	Challenge []byte
	Response  R
}

// FiatShamir makes a Protocol non interactive by deriving the challenge
// from an oracle over the protocol name, the statement and the
// announcement.
type FiatShamir[W, S, AS, A, R any] struct {
	*Interactive[W, S, AS, A, R]
	oracle OracleFactory
}

func NewFiatShamir[W, S, AS, A, R any](p Protocol[W, S, AS, A, R], oracle OracleFactory) (*FiatShamir[W, S, AS, A, R], error) {
	if oracle.Size() < p.ChallengeLength() {
		return nil, fmt.Errorf("%w: %d < %d", ErrOracleTooShort, oracle.Size(), p.ChallengeLength())
	}
	return &FiatShamir[W, S, AS, A, R]{Interactive: NewInteractive(p), oracle: oracle}, nil
}

func (fs *FiatShamir[W, S, AS, A, R]) Challenge(statement S, announce A) []byte {
	o := fs.oracle.New()
	o.Absorb("dom-sep").Write([]byte(FIAT_SHAMIR_DOMAIN_TAG))
	writeLabel(o.Absorb("name"), Name(fs.Protocol))
	fs.Protocol.HashStatement(o.Absorb("statement"), statement)
	fs.Protocol.HashAnnouncement(o.Absorb("announce"), announce)
	return o.Squeeze(fs.Protocol.ChallengeLength())
}

func (fs *FiatShamir[W, S, AS, A, R]) Prove(witness W, statement S, rng io.Reader) (*Proof[A, R], error) {
	secret, announce, err := fs.Commit(witness, statement, rng)
	if err != nil {
		return nil, err
	}
	challenge := fs.Challenge(statement, announce)
	response := fs.Protocol.Respond(witness, statement, secret, announce, challenge)
	return &Proof[A, R]{Announce: announce, Response: response}, nil
}

// ProveDeterministic derives the announce secret from the witness, the
// statement, the oracle and the challenge length instead of an rng.
func (fs *FiatShamir[W, S, AS, A, R]) ProveDeterministic(witness W, statement S) (*Proof[A, R], error) {
	return fs.Prove(witness, statement, fs.nonceChain(witness, statement))
}

func (fs *FiatShamir[W, S, AS, A, R]) Verify(statement S, proof *Proof[A, R]) bool {
	if !proof.wellFormed() {
		return false
	}
	challenge := fs.Challenge(statement, proof.Announce)
	return fs.Check(statement, &Transcript[A, R]{Announce: proof.Announce, Challenge: challenge, Response: proof.Response})
}

// VerifyNaive accepts iff the announcement and the implied announcement
// hash to the same challenge.
func (fs *FiatShamir[W, S, AS, A, R]) VerifyNaive(statement S, proof *Proof[A, R]) bool {
	if !proof.wellFormed() {
		return false
	}
	challenge := fs.Challenge(statement, proof.Announce)
	implied, ok := fs.Protocol.ImpliedAnnouncement(statement, challenge, proof.Response)
	if !ok {
		return false
	}
	return bytes.Equal(fs.Challenge(statement, implied), challenge)
}

func (fs *FiatShamir[W, S, AS, A, R]) ProveCompact(witness W, statement S, rng io.Reader) (*CompactProof[R], error) {
	secret, announce, err := fs.Commit(witness, statement, rng)
	if err != nil {
		return nil, err
	}
	challenge := fs.Challenge(statement, announce)
	response := fs.Protocol.Respond(witness, statement, secret, announce, challenge)
	return &CompactProof[R]{Challenge: challenge, Response: response}, nil
}

func (fs *FiatShamir[W, S, AS, A, R]) VerifyCompact(statement S, proof *CompactProof[R]) bool {
	if proof == nil || isNil(proof.Response) || len(proof.Challenge) != fs.Protocol.ChallengeLength() {
		return false
	}
	implied, ok := fs.Protocol.ImpliedAnnouncement(statement, proof.Challenge, proof.Response)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare(fs.Challenge(statement, implied), proof.Challenge) == 1
}

func (fs *FiatShamir[W, S, AS, A, R]) ProofSize() int {
	return fs.Protocol.AnnounceSize() + fs.Protocol.ResponseSize()
}

func (fs *FiatShamir[W, S, AS, A, R]) MarshalProof(proof *Proof[A, R]) []byte {
	buf := make([]byte, 0, fs.ProofSize())
	buf = append(buf, fs.Protocol.MarshalAnnounce(proof.Announce)...)
	return append(buf, fs.Protocol.MarshalResponse(proof.Response)...)
}

func (fs *FiatShamir[W, S, AS, A, R]) UnmarshalProof(b []byte) (*Proof[A, R], error) {
	if len(b) != fs.ProofSize() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidProofLength, len(b))
	}
	n := fs.Protocol.AnnounceSize()
	announce, err := fs.Protocol.UnmarshalAnnounce(b[:n])
	if err != nil {
		return nil, err
	}
	response, err := fs.Protocol.UnmarshalResponse(b[n:])
	if err != nil {
		return nil, err
	}
	return &Proof[A, R]{Announce: announce, Response: response}, nil
}

func (fs *FiatShamir[W, S, AS, A, R]) MarshalCompactProof(proof *CompactProof[R]) []byte {
	buf := make([]byte, 0, fs.Protocol.ChallengeLength()+fs.Protocol.ResponseSize())
	buf = append(buf, proof.Challenge...)
	return append(buf, fs.Protocol.MarshalResponse(proof.Response)...)
}

func (fs *FiatShamir[W, S, AS, A, R]) UnmarshalCompactProof(b []byte) (*CompactProof[R], error) {
	n := fs.Protocol.ChallengeLength()
	if len(b) != n+fs.Protocol.ResponseSize() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidProofLength, len(b))
	}
	response, err := fs.Protocol.UnmarshalResponse(b[n:])
	if err != nil {
		return nil, err
	}
	return &CompactProof[R]{Challenge: append([]byte{}, b[:n]...), Response: response}, nil
}
