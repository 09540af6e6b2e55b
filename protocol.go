// Package sigma implements Sigma protocols, three move proofs of knowledge,
// and their non interactive form under the Fiat-Shamir transform.
package sigma

import (
	"io"
	"strings"
)

// ProofCodec fixes the canonical wire encoding of announcements and
// responses. Unmarshal must reject anything Marshal cannot produce.
type ProofCodec[A, R any] interface {
	AnnounceSize() int
	ResponseSize() int
	MarshalAnnounce(announce A) []byte
	UnmarshalAnnounce(b []byte) (A, error)
	MarshalResponse(response R) []byte
	UnmarshalResponse(b []byte) (R, error)
}

// Protocol is a three move proof of knowledge for the relation between a
// witness W and a statement S.
//
// AS is the prover's ephemeral secret, A the announcement and R the response.
// Challenges are ChallengeLength() bytes long; implementations check the
// length when they are constructed and never again.
type Protocol[W, S, AS, A, R any] interface {
	ProofCodec[A, R]

	ChallengeLength() int

	Announce(statement S, announceSecret AS) A
	// GenAnnounceSecret samples a fresh secret. It must never be reused.
	GenAnnounceSecret(witness W, statement S, rng io.Reader) (AS, error)
	Respond(witness W, statement S, announceSecret AS, announce A, challenge []byte) R
	// ImpliedAnnouncement recomputes the announcement a valid transcript
	// with this challenge and response must have had.
	ImpliedAnnouncement(statement S, challenge []byte, response R) (A, bool)
	SampleResponse(rng io.Reader) (R, error)

	WriteName(w io.Writer) error
	HashStatement(w io.Writer, statement S)
	HashAnnouncement(w io.Writer, announce A)
	HashWitness(w io.Writer, witness W)
}

// Name returns the label written by p.WriteName.
func Name[W, S, AS, A, R any](p Protocol[W, S, AS, A, R]) string {
	var b strings.Builder
	if err := p.WriteName(&b); err != nil {
		panic(err)
	}
	return b.String()
}
