// Package lsbsteg hides text in the least-significant bits of an image's colour channels, at positions
// chosen by a keyed pseudo-random traversal, and recovers it again given the same key and settings.
package lsbsteg

import (
	"fmt"
	"image"

	"github.com/pkg/errors"

	"github.com/zedseven/lsbsteg/internal/algos"
	"github.com/zedseven/lsbsteg/internal/frame"
)

const (
	// DefaultOutPath is where Hide writes the encoded image when no output path is given.
	DefaultOutPath = "output.png"

	VersionMax uint8 = 1
	VersionMid uint8 = 0
	VersionMin uint8 = 0
)

// Shared types

// EncodingLimit is the width of the length prefix written ahead of the payload.
type EncodingLimit = frame.Limit

const (
	LimitU8  = frame.LimitU8
	LimitU16 = frame.LimitU16
	LimitU32 = frame.LimitU32
)

// ChannelSet selects the channels of every pixel that may hold hidden bits.
type ChannelSet = algos.ChannelSet

const (
	RGB  = algos.ChannelsRGB
	RGBA = algos.ChannelsRGBA
)

// Position is a single (x, y, channel) hiding spot.
type Position = algos.Position

// Simply parses "8", "16", "32" (or "u8", "u16", "u32") into an EncodingLimit.
func ParseLimit(str string) (EncodingLimit, error) {
	if l := frame.StringToLimit(str); l.IsValid() {
		return l, nil
	}
	return frame.LimitUnknown, &InvalidFormatError{fmt.Sprintf("Unknown encoding limit %q: use 8, 16 or 32.", str)}
}

// Simply parses "rgb" or "rgba" into a ChannelSet.
func ParseChannelSet(str string) (ChannelSet, error) {
	if s := algos.StringToChannelSet(str); s.IsValid() {
		return s, nil
	}
	return algos.ChannelsUnknown, &InvalidFormatError{fmt.Sprintf("Unknown channel set %q: use rgb or rgba.", str)}
}

// Options are the settings shared by Encode and Decode. Decoding only works with the exact
// Key, Limit and Channels that were used to encode.
type Options struct {
	// Key seeds the traversal; the empty string is a valid key.
	Key string
	// Limit is the width of the length prefix. Defaults to LimitU16.
	Limit EncodingLimit
	// Channels are the channels that may be modified. Defaults to RGBA.
	Channels ChannelSet
	// Map requests a diff map of every touched channel from Encode.
	Map bool
	// Observer, if set, is told about every position Encode writes to.
	Observer Observer
}

func (o Options) withDefaults() Options {
	if o.Limit == frame.LimitUnknown {
		o.Limit = LimitU16
	}
	if o.Channels == algos.ChannelsUnknown {
		o.Channels = RGBA
	}
	return o
}

func (o Options) validate() error {
	if !o.Limit.IsValid() {
		return &InvalidFormatError{fmt.Sprintf("Limit is invalid: %d.", o.Limit)}
	}
	if !o.Channels.IsValid() {
		return &InvalidFormatError{fmt.Sprintf("Channels is invalid: %d.", o.Channels)}
	}
	return nil
}

// Error types

var (
	// ErrEmptyImage is returned when the image has no pixels.
	ErrEmptyImage = errors.New("the image has no pixels to hide data within")
	// ErrEmptyPayload is returned when there is nothing to hide.
	ErrEmptyPayload = errors.New("the payload is empty")
	// ErrPayloadTooLarge is returned when the payload bit count does not fit in the length prefix.
	ErrPayloadTooLarge = errors.New("the payload is too large for the encoding limit")
	// ErrCapacityExceeded is returned when the frame does not fit in the image, or when a decoded
	// length prefix announces more bits than the image holds (usually a wrong key or settings).
	ErrCapacityExceeded = errors.New("there is not enough space in the image")
	// ErrInvalidUTF8 is returned when the recovered bits are not valid text (usually a wrong key or settings).
	ErrInvalidUTF8 = frame.ErrInvalidUTF8
)

type InvalidFormatError struct {
	ErrorDesc string
}

func (e *InvalidFormatError) Error() string {
	if len(e.ErrorDesc) > 0 {
		return e.ErrorDesc
	}
	return "The provided data is of an invalid format."
}

// PayloadTooLargeError carries the details of an ErrPayloadTooLarge failure.
type PayloadTooLargeError struct {
	Bits  int
	Limit EncodingLimit
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("The payload is %d bits long, but the %v encoding limit allows at most %d.",
		e.Bits, e.Limit, e.Limit.Max())
}

func (e *PayloadTooLargeError) Unwrap() error {
	return ErrPayloadTooLarge
}

// InsufficientHidingSpotsError carries the details of an ErrCapacityExceeded failure.
type InsufficientHidingSpotsError struct {
	Needed         uint64
	Available      int
	AdditionalInfo string
	InnerError     error
}

func (e *InsufficientHidingSpotsError) Error() string {
	ret := "There is not enough space available to store the payload within the image."
	if e.Needed > 0 {
		ret = fmt.Sprintf("%v %d bits are needed but only %d are available.", ret, e.Needed, e.Available)
	}
	if len(e.AdditionalInfo) > 0 {
		ret = fmt.Sprintf("%v Additional info: %v", ret, e.AdditionalInfo)
	}
	if e.InnerError != nil {
		ret = fmt.Sprintf("%v Inner error: %v", ret, e.InnerError.Error())
	}
	return ret
}

func (e *InsufficientHidingSpotsError) Unwrap() []error {
	return []error{ErrCapacityExceeded, e.InnerError}
}

// Library methods

func Version() string {
	return fmt.Sprintf("%02d.%02d.%02d", VersionMax, VersionMid, VersionMin)
}

// Shared methods

// translateErr maps errors from the internal packages onto the exported taxonomy.
func translateErr(err error) error {
	switch e := err.(type) {
	case *frame.OverflowError:
		return &PayloadTooLargeError{Bits: e.Bits, Limit: e.Limit}
	case *frame.LengthError:
		return &InsufficientHidingSpotsError{Needed: e.Needed, Available: e.Capacity,
			AdditionalInfo: "The length prefix announces more bits than the image holds; check the key, limit and channels.",
			InnerError:     err}
	case *algos.EmptyPoolError:
		return &InsufficientHidingSpotsError{InnerError: err}
	}
	if errors.Is(err, frame.ErrPayloadEmpty) {
		return ErrEmptyPayload
	}
	return err
}

// dimensions returns the size of img, treating a nil image as empty.
func dimensions(img *image.NRGBA) (w, h int) {
	if img == nil {
		return 0, 0
	}
	return img.Rect.Dx(), img.Rect.Dy()
}

// channelOffset returns the index into img.Pix of the channel at pos.
func channelOffset(img *image.NRGBA, pos Position) int {
	return img.PixOffset(img.Rect.Min.X+pos.X, img.Rect.Min.Y+pos.Y) + int(pos.Channel)
}
