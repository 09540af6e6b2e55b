package cli

import (
	"github.com/pkg/errors"
	"github.com/templexxx/xhex"
)

func encodeHex(b []byte) string {
	dst := make([]byte, len(b)*2)
	xhex.Encode(dst, b)
	return string(dst)
}

func decodeHex(name, s string) ([]byte, error) {
	if s == "" {
		return nil, errors.Errorf("--%s is required", name)
	}
	if len(s)%2 != 0 {
		return nil, errors.Errorf("--%s: odd hex length %d", name, len(s))
	}
	dst := make([]byte, len(s)/2)
	if err := xhex.Decode(dst, []byte(s)); err != nil {
		return nil, errors.Wrapf(err, "--%s", name)
	}
	return dst, nil
}
