package sigma

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
)

// Transcript is one run of commit, challenge and respond.
type Transcript[A, R any] struct {
	Announce  A
	Challenge []byte
	Response  R
}

// Interactive drives a Protocol for a single round of challenge and
// response between a prover and an honest verifier.
type Interactive[W, S, AS, A, R any] struct {
	Protocol Protocol[W, S, AS, A, R]
}

func NewInteractive[W, S, AS, A, R any](p Protocol[W, S, AS, A, R]) *Interactive[W, S, AS, A, R] {
	return &Interactive[W, S, AS, A, R]{Protocol: p}
}

// Commit is the prover's first move. The returned secret must be passed
// to Respond exactly once.
func (i *Interactive[W, S, AS, A, R]) Commit(witness W, statement S, rng io.Reader) (AS, A, error) {
	secret, err := i.Protocol.GenAnnounceSecret(witness, statement, rng)
	if err != nil {
		var a A
		return secret, a, err
	}
	return secret, i.Protocol.Announce(statement, secret), nil
}

// Challenge is the verifier's move.
func (i *Interactive[W, S, AS, A, R]) Challenge(rng io.Reader) ([]byte, error) {
	c := make([]byte, i.Protocol.ChallengeLength())
	if _, err := io.ReadFull(rng, c); err != nil {
		return nil, fmt.Errorf("sigma: challenge sampling: %w", err)
	}
	return c, nil
}

func (i *Interactive[W, S, AS, A, R]) Respond(witness W, statement S, secret AS, announce A, challenge []byte) R {
	i.checkChallenge(challenge)
	return i.Protocol.Respond(witness, statement, secret, announce, challenge)
}

// Check accepts iff the implied announcement of the transcript encodes to
// the same bytes as its announcement.
func (i *Interactive[W, S, AS, A, R]) Check(statement S, t *Transcript[A, R]) bool {
	if t == nil || isNil(t.Announce) || isNil(t.Response) {
		return false
	}
	if len(t.Challenge) != i.Protocol.ChallengeLength() {
		return false
	}
	implied, ok := i.Protocol.ImpliedAnnouncement(statement, t.Challenge, t.Response)
	if !ok {
		return false
	}
	return bytes.Equal(i.Protocol.MarshalAnnounce(implied), i.Protocol.MarshalAnnounce(t.Announce))
}

// Simulate produces an accepting transcript for challenge without the
// witness.
func (i *Interactive[W, S, AS, A, R]) Simulate(statement S, challenge []byte, rng io.Reader) (*Transcript[A, R], error) {
	i.checkChallenge(challenge)
	response, err := i.Protocol.SampleResponse(rng)
	if err != nil {
		return nil, err
	}
	announce, ok := i.Protocol.ImpliedAnnouncement(statement, challenge, response)
	if !ok {
		return nil, ErrInvalidStatement
	}
	return &Transcript[A, R]{Announce: announce, Challenge: challenge, Response: response}, nil
}

func (i *Interactive[W, S, AS, A, R]) checkChallenge(challenge []byte) {
	if len(challenge) != i.Protocol.ChallengeLength() {
		panic(fmt.Sprintf("sigma: challenge of %d bytes, protocol expects %d", len(challenge), i.Protocol.ChallengeLength()))
	}
}

// isNil reports whether v is a nil pointer, interface, slice or map. Group
// elements are pointers, and a nil one in a proof must be rejected rather
// than dereferenced.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
