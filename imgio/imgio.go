// Package imgio loads images into 8-bit NRGBA rasters and writes them back out in lossless formats.
package imgio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	// Registers the WebP decoder alongside the formats imaging registers.
	_ "golang.org/x/image/webp"
)

// ErrRasterUnavailable is returned when an image cannot be opened, decoded, created or encoded.
var ErrRasterUnavailable = errors.New("the image could not be read or written")

// LossyFormatError is returned when asked to write a format that would not preserve every channel value.
type LossyFormatError struct {
	Format imaging.Format
}

func (e *LossyFormatError) Error() string {
	return fmt.Sprintf("The %v format is lossy or palette-based and would destroy hidden data; use PNG or TIFF.", e.Format)
}

// Primary methods

// Open decodes the image at path in whatever colour model its format produces.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrRasterUnavailable, "open %q: %v", path, err)
	}
	return img, nil
}

// Load opens the image at path and returns it as an NRGBA raster whose bounds start at (0, 0).
func Load(path string) (*image.NRGBA, error) {
	img, err := Open(path)
	if err != nil {
		return nil, err
	}
	return ToNRGBA(img), nil
}

// Decode reads an image in any registered format from r and returns it as an NRGBA raster.
func Decode(r io.Reader) (*image.NRGBA, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, errors.Wrapf(ErrRasterUnavailable, "decode: %v", err)
	}
	return ToNRGBA(img), nil
}

// Save writes img to path, choosing the format from the file extension.
func Save(img image.Image, path string) error {
	format, err := OutputFormat(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(ErrRasterUnavailable, "create %q: %v", path, err)
	}

	if err = Encode(f, img, format); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(ErrRasterUnavailable, "close %q: %v", path, err)
	}
	return nil
}

// Encode writes img to w in the given lossless format. PNG output uses the best compression.
func Encode(w io.Writer, img image.Image, format imaging.Format) error {
	if !IsLossless(format) {
		return &LossyFormatError{format}
	}
	if err := imaging.Encode(w, img, format, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return errors.Wrapf(ErrRasterUnavailable, "encode %v: %v", format, err)
	}
	return nil
}

// OutputFormat returns the format implied by the extension of path, failing if it is unknown or lossy.
func OutputFormat(path string) (imaging.Format, error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return format, errors.Wrapf(ErrRasterUnavailable, "output %q: %v", path, err)
	}
	if !IsLossless(format) {
		return format, &LossyFormatError{format}
	}
	return format, nil
}

// IsLossless reports whether format round-trips 8-bit NRGBA channel values exactly.
// BMP is readable but not writable here: the encoder drops the alpha channel.
func IsLossless(format imaging.Format) bool {
	switch format {
	case imaging.PNG, imaging.TIFF:
		return true
	default:
		return false
	}
}

// Helper functions

// ToNRGBA returns img as an 8-bit NRGBA raster whose bounds start at (0, 0).
// An image that already is one is returned as is, anything else is copied.
func ToNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return nrgba
	}
	return imaging.Clone(img)
}

// ColorModelName returns a readable name for the colour model of img.
func ColorModelName(img image.Image) string {
	switch img.ColorModel() {
	case color.Alpha16Model:
		return "Alpha16"
	case color.AlphaModel:
		return "Alpha"
	case color.CMYKModel:
		return "CMYK"
	case color.Gray16Model:
		return "Gray16"
	case color.GrayModel:
		return "Gray"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.NRGBAModel:
		return "NRGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.RGBAModel:
		return "RGBA"
	case color.NYCbCrAModel:
		return "NYCbCrA"
	case color.YCbCrModel:
		return "YCbCr"
	default:
		if _, ok := img.(*image.Paletted); ok {
			return "Paletted"
		}
		return "<Unknown>"
	}
}
