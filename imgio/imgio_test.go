package imgio

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noisyImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(i*37 + 11)
	}
	return img
}

func TestSaveLoadLossless(t *testing.T) {
	dir := t.TempDir()
	src := noisyImage(7, 5)

	for _, name := range []string{"out.png", "out.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, Save(src, path))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, src.Rect, got.Rect)
			assert.Equal(t, src.Pix, got.Pix)
		})
	}
}

func TestSaveRejectsLossyFormats(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.jpg", "out.gif", "out.bmp"} {
		err := Save(noisyImage(2, 2), filepath.Join(dir, name))
		var lossy *LossyFormatError
		assert.ErrorAs(t, err, &lossy, name)
	}
}

func TestLoadBMPInput(t *testing.T) {
	src := noisyImage(3, 3)
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, src, imaging.BMP))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, src.Pix, got.Pix)

	var lossy *LossyFormatError
	assert.ErrorAs(t, Encode(&bytes.Buffer{}, src, imaging.BMP), &lossy)
}

func TestSaveUnknownExtension(t *testing.T) {
	err := Save(noisyImage(2, 2), filepath.Join(t.TempDir(), "out.xyz"))
	assert.True(t, errors.Is(err, ErrRasterUnavailable))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.True(t, errors.Is(err, ErrRasterUnavailable))
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("definitely not an image")))
	assert.True(t, errors.Is(err, ErrRasterUnavailable))
}

func TestEncodeDecodeStream(t *testing.T) {
	src := noisyImage(4, 4)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src, imaging.PNG))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, src.Pix, got.Pix)
}

func TestToNRGBA(t *testing.T) {
	gray := image.NewGray(image.Rect(2, 3, 5, 5))
	gray.SetGray(2, 3, color.Gray{Y: 200})

	got := ToNRGBA(gray)
	assert.Equal(t, image.Rect(0, 0, 3, 2), got.Rect)
	assert.Equal(t, color.NRGBA{R: 200, G: 200, B: 200, A: 255}, got.NRGBAAt(0, 0))

	same := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	assert.Same(t, same, ToNRGBA(same))
}

func TestColorModelName(t *testing.T) {
	assert.Equal(t, "Gray", ColorModelName(image.NewGray(image.Rect(0, 0, 1, 1))))
	assert.Equal(t, "NRGBA", ColorModelName(image.NewNRGBA(image.Rect(0, 0, 1, 1))))
}
