package lsbsteg

// EncodeBit returns value with its parity set to bit: odd for 1, even for 0.
// A value already of the right parity is returned unchanged; otherwise it is nudged up by one,
// or down by one when it is 255.
func EncodeBit(value, bit uint8) uint8 {
	if value&1 == bit&1 {
		return value
	}
	if value == 255 {
		return value - 1
	}
	return value + 1
}

// DecodeBit returns the bit held by the parity of value.
func DecodeBit(value uint8) uint8 {
	return value & 1
}
