package sigma

import "errors"

var (
	ErrChallengeLength    = errors.New("sigma: invalid challenge length")
	ErrInvalidStatement   = errors.New("sigma: statement admits no implied announcement")
	ErrInvalidProofLength = errors.New("sigma: invalid proof length")
	ErrOracleTooShort     = errors.New("sigma: oracle output shorter than challenge")
)
