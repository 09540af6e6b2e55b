package sigma

import "fmt"

// MaxChallengeLength is the challenge bound for groups with a 253 bit order
// (ed25519, ristretto255).
const MaxChallengeLength = 31

// ChallengeBound returns the longest challenge, in bytes, whose zero padded
// little endian encoding is always below a group order of orderBits bits.
func ChallengeBound(orderBits int) int {
	return (orderBits - 1) / 8
}

func CheckChallengeLength(length, orderBits int) error {
	bound := ChallengeBound(orderBits)
	if length <= 0 || length > bound {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrChallengeLength, length, bound)
	}
	return nil
}

// PadChallenge copies challenge into a zeroed buffer of width bytes.
// The challenge must be strictly shorter than width.
func PadChallenge(challenge []byte, width int) []byte {
	if len(challenge) >= width {
		panic(fmt.Sprintf("sigma: challenge of %d bytes does not fit a %d byte scalar", len(challenge), width))
	}
	buf := make([]byte, width)
	copy(buf, challenge)
	return buf
}
