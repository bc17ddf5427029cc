package frame

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrPayloadEmpty is returned when there are no payload bits to frame.
var ErrPayloadEmpty = errors.New("there are no payload bits to frame")

// OverflowError is returned when a payload has more bits than the length prefix can count.
type OverflowError struct {
	Bits  int
	Limit Limit
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("The payload is %d bits long, but a %v length prefix can count at most %d.",
		e.Bits, e.Limit, e.Limit.Max())
}

// LengthError is returned when a frame would not fit in the available capacity.
type LengthError struct {
	Needed   uint64
	Capacity int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("The frame needs %d bits, but only %d are available.", e.Needed, e.Capacity)
}

// BitReader yields the bits of a frame one at a time.
type BitReader interface {
	ReadBit() (uint8, error)
}

// Frame prefixes bits with their count, written in limit.Width() bits, most-significant bit first.
func Frame(bits []uint8, limit Limit) ([]uint8, error) {
	if !limit.IsValid() {
		return nil, &UnknownLimitError{limit}
	}
	if len(bits) == 0 {
		return nil, ErrPayloadEmpty
	}
	if uint64(len(bits)) > limit.Max() {
		return nil, &OverflowError{Bits: len(bits), Limit: limit}
	}

	width := limit.Width()
	out := make([]uint8, width, width+len(bits))
	n := uint64(len(bits))
	for i := 0; i < width; i++ {
		out[i] = uint8((n >> uint(width-1-i)) & 1)
	}
	return append(out, bits...), nil
}

// Unframe reads a length prefix from r and then as many payload bits as it announces.
// Nothing past the prefix is read when the announced frame would exceed capacity.
func Unframe(r BitReader, limit Limit, capacity int) ([]uint8, error) {
	if !limit.IsValid() {
		return nil, &UnknownLimitError{limit}
	}

	width := limit.Width()
	if width > capacity {
		return nil, &LengthError{Needed: uint64(width), Capacity: capacity}
	}

	var n uint64
	for i := 0; i < width; i++ {
		b, err := r.ReadBit()
		if err != nil {
			return nil, err
		}
		n = n<<1 | uint64(b&1)
	}

	if uint64(width)+n > uint64(capacity) {
		return nil, &LengthError{Needed: uint64(width) + n, Capacity: capacity}
	}

	bits := make([]uint8, n)
	for i := range bits {
		b, err := r.ReadBit()
		if err != nil {
			return nil, err
		}
		bits[i] = b & 1
	}
	return bits, nil
}
