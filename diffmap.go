package lsbsteg

import (
	"image"
)

// mapIntensity is XORed into a diff map channel each time that channel is touched.
const mapIntensity = 0xff

// Observer is notified of every hiding spot Encode writes to, whether or not the value changed.
type Observer interface {
	Touch(pos Position)
}

// DiffMap is an image of the same size as the cover image that highlights every touched channel.
// It starts out opaque black.
type DiffMap struct {
	*image.NRGBA
}

// NewDiffMap returns an opaque black diff map of the given size.
func NewDiffMap(width, height int) *DiffMap {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return &DiffMap{img}
}

// Touch marks the channel at pos.
func (m *DiffMap) Touch(pos Position) {
	m.Pix[channelOffset(m.NRGBA, pos)] ^= mapIntensity
}

type observers []Observer

func (o observers) Touch(pos Position) {
	for _, obs := range o {
		obs.Touch(pos)
	}
}
