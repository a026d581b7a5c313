package sign

import (
	"encoding/hex"
	"io"

	"github.com/pkg/errors"
)

// LoadKeyFromHex decodes a hex-encoded key of exactly size bytes. It returns an error if
// keyHex is not hex-encoded or decodes to the wrong number of bytes; in the case of the
// latter, the error wraps io.ErrUnexpectedEOF.
func LoadKeyFromHex(keyHex string, size int) ([]byte, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, errors.Wrap(err, "key provided in hex failed to be decoded")
	}

	if len(key) != size {
		zero(key)
		return nil, errors.Wrapf(io.ErrUnexpectedEOF, "got key of %d byte(s), but expected %d byte(s)", len(key), size)
	}

	return key, nil
}

// zero overwrites buf with zeroes.
func zero(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
