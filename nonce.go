package sigma

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/sha3"
	"lukechampine.com/frand"
)

const (
	NONCE_DOMAIN_TAG = "sigma-go/nonce"
	NONCE_KEY_SIZE   = 32
)

// NonceChain is an unbounded SHAKE256 stream keyed by the witness, the
// statement and everything the challenge depends on, used in place of an
// rng when proving deterministically.
type NonceChain struct {
	sha3.ShakeHash
}

// nonceChain derives the nonce key through the oracle itself, so that two
// instances that would compute different challenges for the same witness
// never share an announce secret.
func (fs *FiatShamir[W, S, AS, A, R]) nonceChain(witness W, statement S) *NonceChain {
	o := fs.oracle.New()
	o.Absorb("dom-sep").Write([]byte(NONCE_DOMAIN_TAG))
	writeLabel(o.Absorb("name"), Name(fs.Protocol))
	writeUint32(o.Absorb("challenge-length"), uint32(fs.Protocol.ChallengeLength()))
	fs.Protocol.HashWitness(o.Absorb("witness"), witness)
	fs.Protocol.HashStatement(o.Absorb("statement"), statement)
	key := o.Squeeze(min(fs.oracle.Size(), NONCE_KEY_SIZE))

	h := sha3.NewShake256()
	h.Write([]byte(NONCE_DOMAIN_TAG))
	writeLabel(h, Name(fs.Protocol))
	writeUint32(h, uint32(fs.Protocol.ChallengeLength()))
	writeUint32(h, uint32(len(key)))
	h.Write(key)
	fs.Protocol.HashWitness(h, witness)
	fs.Protocol.HashStatement(h, statement)
	return &NonceChain{h}
}

// NewSeededReader returns a ChaCha based deterministic rng. Callers own
// the returned reader and must not share it between goroutines.
func NewSeededReader(seed [32]byte) io.Reader {
	return frand.NewCustom(seed[:], 1024, 12)
}

func writeLabel(w io.Writer, label string) {
	writeUint32(w, uint32(len(label)))
	w.Write([]byte(label))
}

func writeUint32(w io.Writer, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.Write(buf[:])
}
