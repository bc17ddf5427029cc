// Package algos provides the keyed traversal of hiding spots within an image.
package algos

import (
	"fmt"
	"strings"
)

// Channel definitions

// Channel is the index of one 8-bit component within an NRGBA pixel.
type Channel uint8

const (
	ChannelRed   Channel = 0
	ChannelGreen Channel = 1
	ChannelBlue  Channel = 2
	ChannelAlpha Channel = 3

	maxChannels = 4
)

// Returns the name of the channel.
func (c Channel) String() string {
	switch c {
	case ChannelRed:
		return "R"
	case ChannelGreen:
		return "G"
	case ChannelBlue:
		return "B"
	case ChannelAlpha:
		return "A"
	default:
		return "<unknown>"
	}
}

// Channel set definitions

// ChannelSet selects which channels of every pixel may hold hidden bits.
type ChannelSet int

const (
	ChannelsUnknown ChannelSet = iota     // An unknown channel set.
	ChannelsRGB     ChannelSet = iota     // The red, green and blue channels.
	ChannelsRGBA    ChannelSet = iota     // The red, green, blue and alpha channels.
	maxChannelSet   ChannelSet = iota - 1 // The maximum channel set value, used for validity checking.
)

var (
	rgbChannels  = []Channel{ChannelRed, ChannelGreen, ChannelBlue}
	rgbaChannels = []Channel{ChannelRed, ChannelGreen, ChannelBlue, ChannelAlpha}
)

// Simply determines whether a given channel set is valid.
func (set ChannelSet) IsValid() bool {
	return set > ChannelsUnknown && set <= maxChannelSet
}

// Returns the name of the channel set, or "<unknown>" if unknown.
func (set ChannelSet) String() string {
	switch set {
	case ChannelsRGB:
		return "rgb"
	case ChannelsRGBA:
		return "rgba"
	default:
		return "<unknown>"
	}
}

// Channels returns the channels of the set in index order. The returned slice must not be modified.
func (set ChannelSet) Channels() []Channel {
	switch set {
	case ChannelsRGB:
		return rgbChannels
	case ChannelsRGBA:
		return rgbaChannels
	default:
		return nil
	}
}

// Count returns the number of channels per pixel in the set.
func (set ChannelSet) Count() int {
	return len(set.Channels())
}

// Simply parses a string into a channel set, or ChannelsUnknown if the string is not recognized.
func StringToChannelSet(str string) ChannelSet {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "rgb":
		return ChannelsRGB
	case "rgba":
		return ChannelsRGBA
	default:
		return ChannelsUnknown
	}
}

// Capacity returns the total number of bits that can be hidden in a width x height image using the given channel set.
func Capacity(width, height int, set ChannelSet) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return width * height * set.Count()
}

// Error types

// Thrown when an unknown channel set is provided.
type UnknownChannelSetError struct {
	Set ChannelSet
}

func (e UnknownChannelSetError) Error() string {
	return fmt.Sprintf("The specified channel set (%d) does not exist.", e.Set)
}

// Thrown when the traverser is asked for a position but its pool of available hiding spots is empty.
type EmptyPoolError struct{}

func (e EmptyPoolError) Error() string {
	return "The pool of hiding spots is empty."
}

// Helper functions

func posToXY(pos, w int) (x, y int) {
	// Would normally floor here, but since all values are >= 0, integer division handles this for us
	x = pos % w
	y = pos / w
	return
}
