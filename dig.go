package lsbsteg

import (
	"context"
	"image"

	"github.com/zedseven/lsbsteg/imgio"
	"github.com/zedseven/lsbsteg/internal/algos"
	"github.com/zedseven/lsbsteg/internal/frame"
	"github.com/zedseven/lsbsteg/internal/logtrace"
)

// Types

// DigConfig stores the configuration options for the Dig operation.
type DigConfig struct {
	ImagePath string        // The path on disk to a supported image.
	Key       string        // The key used in encoding.
	Limit     EncodingLimit // The length prefix width used in encoding.
	Channels  ChannelSet    // The channel set used in encoding.
}

// pixelReader reads hidden bits off img in traversal order.
type pixelReader struct {
	img *image.NRGBA
	t   *algos.Traverser
}

func (r *pixelReader) ReadBit() (uint8, error) {
	pos, err := r.t.Next()
	if err != nil {
		return 0, err
	}
	return DecodeBit(r.img.Pix[channelOffset(r.img, pos)]), nil
}

// Primary methods

// Decode recovers the text hidden in img. img is not modified.
//
// The key, limit and channels must match the ones used to encode. With the wrong settings Decode
// usually fails with ErrCapacityExceeded or ErrInvalidUTF8, but may also return meaningless text.
func Decode(img *image.NRGBA, opts Options) (string, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return "", err
	}

	w, h := dimensions(img)
	capacity := algos.Capacity(w, h, opts.Channels)
	if capacity == 0 {
		return "", ErrEmptyImage
	}

	t, err := algos.NewTraverser(w, h, opts.Channels, algos.SeedFromKey(opts.Key))
	if err != nil {
		return "", err
	}

	bits, err := frame.Unframe(&pixelReader{img: img, t: t}, opts.Limit, capacity)
	if err != nil {
		return "", translateErr(err)
	}

	return frame.FromBits(bits)
}

// Dig loads the image at config.ImagePath and extracts the text hidden within it.
// The configuration must perfectly match the one used in encoding in order to extract successfully.
func Dig(ctx context.Context, config *DigConfig) (string, error) {
	// Input validation
	if len(config.ImagePath) <= 0 {
		return "", &InvalidFormatError{"ImagePath is empty."}
	}

	opts := Options{
		Key:      config.Key,
		Limit:    config.Limit,
		Channels: config.Channels,
	}.withDefaults()

	fields := logtrace.Fields{logtrace.FieldOperation: "dig", logtrace.FieldPath: config.ImagePath}

	logtrace.Info(ctx, "Loading the image", fields)
	src, err := imgio.Open(config.ImagePath)
	if err != nil {
		logtrace.Error(ctx, "Unable to load the image", logtrace.WithFields(fields, logtrace.Fields{logtrace.FieldError: err.Error()}))
		return "", err
	}
	img := imgio.ToNRGBA(src)

	logtrace.Debug(ctx, "Image info", logtrace.WithFields(fields, logtrace.Fields{
		logtrace.FieldWidth:      img.Rect.Dx(),
		logtrace.FieldHeight:     img.Rect.Dy(),
		logtrace.FieldColorModel: imgio.ColorModelName(src),
	}))

	logtrace.Info(ctx, "Reading the payload from the image", logtrace.WithFields(fields, logtrace.Fields{
		logtrace.FieldLimit:    opts.Limit.String(),
		logtrace.FieldChannels: opts.Channels.String(),
	}))
	payload, err := Decode(img, opts)
	if err != nil {
		logtrace.Error(ctx, "Unable to decode the payload", logtrace.WithFields(fields, logtrace.Fields{logtrace.FieldError: err.Error()}))
		return "", err
	}

	logtrace.Debug(ctx, "Payload decoded", logtrace.WithFields(fields, logtrace.Fields{
		logtrace.FieldPayloadBits: len(payload) * 8,
	}))

	return payload, nil
}
