package lsbsteg

import (
	"context"
	"image"

	"github.com/zedseven/lsbsteg/imgio"
	"github.com/zedseven/lsbsteg/internal/algos"
	"github.com/zedseven/lsbsteg/internal/frame"
	"github.com/zedseven/lsbsteg/internal/logtrace"
	"github.com/zedseven/lsbsteg/internal/util"
)

// EncodeResult describes a completed Encode.
type EncodeResult struct {
	// Capacity is the number of bits the image could hold with the chosen channels.
	Capacity int
	// Used is the number of bits written, length prefix included.
	Used int
	// Map is the diff map, present only when Options.Map was set.
	Map *image.NRGBA
}

// Usage returns Used as a percentage of Capacity.
func (r *EncodeResult) Usage() float64 {
	return util.Percent(r.Used, r.Capacity)
}

// Encode hides payload in img, modifying img in place.
//
// Every check happens before the first write, so on error img is left untouched.
func Encode(img *image.NRGBA, payload string, opts Options) (*EncodeResult, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	w, h := dimensions(img)
	capacity := algos.Capacity(w, h, opts.Channels)
	if capacity == 0 {
		return nil, ErrEmptyImage
	}

	bits := frame.ToBits(payload)
	if len(bits) == 0 {
		return nil, ErrEmptyPayload
	}

	framed, err := frame.Frame(bits, opts.Limit)
	if err != nil {
		return nil, translateErr(err)
	}

	if len(framed) > capacity {
		return nil, &InsufficientHidingSpotsError{Needed: uint64(len(framed)), Available: capacity}
	}

	t, err := algos.NewTraverser(w, h, opts.Channels, algos.SeedFromKey(opts.Key))
	if err != nil {
		return nil, err
	}

	res := &EncodeResult{Capacity: capacity, Used: len(framed)}

	var obs observers
	if opts.Map {
		m := NewDiffMap(w, h)
		res.Map = m.NRGBA
		obs = append(obs, m)
	}
	if opts.Observer != nil {
		obs = append(obs, opts.Observer)
	}

	for _, bit := range framed {
		pos, err := t.Next()
		if err != nil {
			return nil, translateErr(err)
		}
		i := channelOffset(img, pos)
		img.Pix[i] = EncodeBit(img.Pix[i], bit)
		obs.Touch(pos)
	}

	return res, nil
}

// HideConfig stores the configuration options for the Hide operation.
type HideConfig struct {
	// ImagePath is the path on disk to a supported image.
	ImagePath string
	// Payload is the text to hide.
	Payload string
	// OutPath is the path on disk to write the output image. Defaults to DefaultOutPath.
	// Its extension picks the format, which must be lossless.
	OutPath string
	// MapPath, if set, is where the diff map is written.
	MapPath string
	// Key seeds the traversal.
	Key string
	// Limit is the width of the length prefix.
	Limit EncodingLimit
	// Channels are the channels that may be modified.
	Channels ChannelSet
}

// Hide loads the image at config.ImagePath, hides config.Payload in it and writes the result to config.OutPath.
func Hide(ctx context.Context, config *HideConfig) (*EncodeResult, error) {
	// Input validation
	if len(config.ImagePath) <= 0 {
		return nil, &InvalidFormatError{"ImagePath is empty."}
	}
	outPath := config.OutPath
	if len(outPath) <= 0 {
		outPath = DefaultOutPath
	}
	if _, err := imgio.OutputFormat(outPath); err != nil {
		return nil, err
	}
	if len(config.MapPath) > 0 {
		if _, err := imgio.OutputFormat(config.MapPath); err != nil {
			return nil, err
		}
	}

	opts := Options{
		Key:      config.Key,
		Limit:    config.Limit,
		Channels: config.Channels,
		Map:      len(config.MapPath) > 0,
	}.withDefaults()

	fields := logtrace.Fields{logtrace.FieldOperation: "hide", logtrace.FieldPath: config.ImagePath}

	logtrace.Info(ctx, "Loading the image", fields)
	src, err := imgio.Open(config.ImagePath)
	if err != nil {
		logtrace.Error(ctx, "Unable to load the image", logtrace.WithFields(fields, logtrace.Fields{logtrace.FieldError: err.Error()}))
		return nil, err
	}
	img := imgio.ToNRGBA(src)

	logtrace.Debug(ctx, "Image info", logtrace.WithFields(fields, logtrace.Fields{
		logtrace.FieldWidth:      img.Rect.Dx(),
		logtrace.FieldHeight:     img.Rect.Dy(),
		logtrace.FieldColorModel: imgio.ColorModelName(src),
	}))

	logtrace.Info(ctx, "Encoding the payload into the image", logtrace.WithFields(fields, logtrace.Fields{
		logtrace.FieldLimit:    opts.Limit.String(),
		logtrace.FieldChannels: opts.Channels.String(),
	}))
	res, err := Encode(img, config.Payload, opts)
	if err != nil {
		logtrace.Error(ctx, "Unable to encode the payload", logtrace.WithFields(fields, logtrace.Fields{logtrace.FieldError: err.Error()}))
		return nil, err
	}

	logtrace.Debug(ctx, "Payload encoded", logtrace.WithFields(fields, logtrace.Fields{
		logtrace.FieldCapacity: res.Capacity,
		logtrace.FieldUsed:     res.Used,
	}))

	logtrace.Info(ctx, "Writing the encoded image", logtrace.WithFields(fields, logtrace.Fields{logtrace.FieldOutput: outPath}))
	if err = imgio.Save(img, outPath); err != nil {
		return nil, err
	}

	if res.Map != nil {
		logtrace.Info(ctx, "Writing the diff map", logtrace.WithFields(fields, logtrace.Fields{logtrace.FieldOutput: config.MapPath}))
		if err = imgio.Save(res.Map, config.MapPath); err != nil {
			return nil, err
		}
	}

	return res, nil
}
