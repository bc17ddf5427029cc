// Package frame converts payload text to bits and wraps the bits in a fixed-width length prefix.
package frame

import (
	"fmt"
	"strings"
)

// Limit selects the width of the length prefix, and with it the largest payload that can be framed.
type Limit int

const (
	LimitUnknown Limit = iota     // An unknown limit.
	LimitU8      Limit = iota     // An 8-bit prefix.
	LimitU16     Limit = iota     // A 16-bit prefix.
	LimitU32     Limit = iota     // A 32-bit prefix.
	maxLimitVal  Limit = iota - 1 // The maximum limit value, used for validity checking.
)

// Simply determines whether a given limit is valid.
func (l Limit) IsValid() bool {
	return l > LimitUnknown && l <= maxLimitVal
}

// Width returns the number of bits in the length prefix.
func (l Limit) Width() int {
	switch l {
	case LimitU8:
		return 8
	case LimitU16:
		return 16
	case LimitU32:
		return 32
	default:
		return 0
	}
}

// Max returns the largest payload bit count the prefix can represent.
func (l Limit) Max() uint64 {
	return 1<<uint(l.Width()) - 1
}

// Returns the name of the limit, or "<unknown>" if unknown.
func (l Limit) String() string {
	switch l {
	case LimitU8:
		return "u8"
	case LimitU16:
		return "u16"
	case LimitU32:
		return "u32"
	default:
		return "<unknown>"
	}
}

// Simply parses a string into a limit, or LimitUnknown if the string is not recognized.
// Both the bare width ("16") and the type name ("u16") are accepted.
func StringToLimit(str string) Limit {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "8", "u8":
		return LimitU8
	case "16", "u16":
		return LimitU16
	case "32", "u32":
		return LimitU32
	default:
		return LimitUnknown
	}
}

// Thrown when an unknown limit is provided.
type UnknownLimitError struct {
	Limit Limit
}

func (e UnknownLimitError) Error() string {
	return fmt.Sprintf("The specified encoding limit (%d) does not exist.", e.Limit)
}
