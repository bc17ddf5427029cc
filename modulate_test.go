package lsbsteg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParitySymmetry(t *testing.T) {
	for v := 0; v <= 255; v++ {
		for bit := uint8(0); bit <= 1; bit++ {
			got := EncodeBit(uint8(v), bit)
			assert.Equal(t, bit, DecodeBit(got), "value %d bit %d", v, bit)

			diff := int(got) - v
			assert.True(t, diff >= -1 && diff <= 1, "value %d moved to %d", v, got)
			if uint8(v)&1 == bit {
				assert.Equal(t, uint8(v), got, "value %d already held bit %d", v, bit)
			}
		}
	}
}

func TestEncodeBitEdges(t *testing.T) {
	assert.Equal(t, uint8(254), EncodeBit(255, 0))
	assert.Equal(t, uint8(255), EncodeBit(254, 1))
	assert.Equal(t, uint8(1), EncodeBit(0, 1))
	assert.Equal(t, uint8(0), EncodeBit(0, 0))
}
