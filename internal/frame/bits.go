package frame

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/zedseven/binmani"
)

const bitsPerByte = 8

// ErrInvalidUTF8 is returned when decoded bits do not form valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("the decoded payload is not valid UTF-8")

// ToBits returns the UTF-8 bytes of text as bits, most-significant bit first, one bit (0 or 1) per element.
func ToBits(text string) []uint8 {
	if len(text) == 0 {
		return nil
	}
	b := []byte(text)
	return *binmani.BytesToBits(&b)
}

// FromBits packs bits back into bytes, most-significant bit first, and returns them as text.
// A trailing partial byte is padded with zero bits on the low end, unlike binmani.BitsToBytes,
// which pads the high end of the first byte.
func FromBits(bits []uint8) (string, error) {
	buf := make([]byte, (len(bits)+bitsPerByte-1)/bitsPerByte)
	for i, b := range bits {
		if b != 0 {
			buf[i/bitsPerByte] |= 1 << uint(bitsPerByte-1-i%bitsPerByte)
		}
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidUTF8
	}
	return string(buf), nil
}
