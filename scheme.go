package sigma

import "io"

// Relation encodes witnesses and statements of a protocol and samples
// matching pairs. DecodeStatement performs every check the protocol leaves
// to the verifier.
type Relation[W, S any] interface {
	Generate(rng io.Reader) (W, S, error)
	EncodeWitness(witness W) []byte
	DecodeWitness(b []byte) (W, error)
	EncodeStatement(statement S) []byte
	DecodeStatement(b []byte) (S, error)
}

// Scheme is the byte oriented form of a FiatShamir instance.
type Scheme interface {
	Name() string
	Generate(rng io.Reader) (witness, statement []byte, err error)
	// Prove proves deterministically when rng is nil.
	Prove(witness, statement []byte, rng io.Reader) ([]byte, error)
	// Verify reports whether proof is valid. Errors are returned only for
	// statements that cannot be decoded; a malformed proof is rejected.
	Verify(statement, proof []byte) (bool, error)
	Simulate(statement []byte, rng io.Reader) ([]byte, error)
}

type scheme[W, S, AS, A, R any] struct {
	fs       *FiatShamir[W, S, AS, A, R]
	relation Relation[W, S]
}

func NewScheme[W, S, AS, A, R any](fs *FiatShamir[W, S, AS, A, R], relation Relation[W, S]) Scheme {
	return &scheme[W, S, AS, A, R]{fs: fs, relation: relation}
}

func (s *scheme[W, S, AS, A, R]) Name() string {
	return Name(s.fs.Protocol)
}

func (s *scheme[W, S, AS, A, R]) Generate(rng io.Reader) ([]byte, []byte, error) {
	witness, statement, err := s.relation.Generate(rng)
	if err != nil {
		return nil, nil, err
	}
	return s.relation.EncodeWitness(witness), s.relation.EncodeStatement(statement), nil
}

func (s *scheme[W, S, AS, A, R]) Prove(witness, statement []byte, rng io.Reader) ([]byte, error) {
	w, err := s.relation.DecodeWitness(witness)
	if err != nil {
		return nil, err
	}
	st, err := s.relation.DecodeStatement(statement)
	if err != nil {
		return nil, err
	}
	var proof *Proof[A, R]
	if rng == nil {
		proof, err = s.fs.ProveDeterministic(w, st)
	} else {
		proof, err = s.fs.Prove(w, st, rng)
	}
	if err != nil {
		return nil, err
	}
	return s.fs.MarshalProof(proof), nil
}

func (s *scheme[W, S, AS, A, R]) Verify(statement, proof []byte) (bool, error) {
	st, err := s.relation.DecodeStatement(statement)
	if err != nil {
		return false, err
	}
	p, err := s.fs.UnmarshalProof(proof)
	if err != nil {
		return false, nil
	}
	return s.fs.Verify(st, p), nil
}

// Simulate returns challenge || announce || response for a challenge drawn
// from rng. The transcript is accepted by the interactive check only.
func (s *scheme[W, S, AS, A, R]) Simulate(statement []byte, rng io.Reader) ([]byte, error) {
	st, err := s.relation.DecodeStatement(statement)
	if err != nil {
		return nil, err
	}
	challenge, err := s.fs.Interactive.Challenge(rng)
	if err != nil {
		return nil, err
	}
	t, err := s.fs.Simulate(st, challenge, rng)
	if err != nil {
		return nil, err
	}
	buf := append([]byte{}, challenge...)
	return append(buf, s.fs.MarshalProof(&Proof[A, R]{Announce: t.Announce, Response: t.Response})...), nil
}
