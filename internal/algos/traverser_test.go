package algos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, tr *Traverser) []Position {
	t.Helper()
	var out []Position
	for {
		p, err := tr.Next()
		if err != nil {
			require.IsType(t, &EmptyPoolError{}, err)
			return out
		}
		out = append(out, p)
	}
}

func TestTraverserDeterministic(t *testing.T) {
	seed := SeedFromKey("test")
	a, err := NewTraverser(7, 5, ChannelsRGBA, seed)
	require.NoError(t, err)
	b, err := NewTraverser(7, 5, ChannelsRGBA, seed)
	require.NoError(t, err)

	assert.Equal(t, drain(t, a), drain(t, b))
}

func TestTraverserCoverage(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		set    ChannelSet
		maxCh  Channel
		expect int
	}{
		{"rgb", 6, 4, ChannelsRGB, ChannelBlue, 72},
		{"rgba", 6, 4, ChannelsRGBA, ChannelAlpha, 96},
		{"single pixel", 1, 1, ChannelsRGBA, ChannelAlpha, 4},
		{"single row", 9, 1, ChannelsRGB, ChannelBlue, 27},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewTraverser(tt.w, tt.h, tt.set, SeedFromKey(tt.name))
			require.NoError(t, err)
			require.Equal(t, tt.expect, tr.Remaining())

			seen := make(map[Position]bool)
			for _, p := range drain(t, tr) {
				assert.False(t, seen[p], "position %v handed out twice", p)
				seen[p] = true
				assert.True(t, p.X >= 0 && p.X < tt.w, "x out of range: %v", p)
				assert.True(t, p.Y >= 0 && p.Y < tt.h, "y out of range: %v", p)
				assert.LessOrEqual(t, uint8(p.Channel), uint8(tt.maxCh))
			}
			assert.Len(t, seen, tt.expect)
			assert.Equal(t, tt.expect, Capacity(tt.w, tt.h, tt.set))
			assert.Zero(t, tr.Remaining())
		})
	}
}

func TestTraverserExhausted(t *testing.T) {
	tr, err := NewTraverser(0, 10, ChannelsRGB, SeedFromKey(""))
	require.NoError(t, err)

	_, err = tr.Next()
	assert.IsType(t, &EmptyPoolError{}, err)

	_, err = tr.Next()
	assert.IsType(t, &EmptyPoolError{}, err)
}

func TestTraverserKeySensitivity(t *testing.T) {
	a, err := NewTraverser(16, 16, ChannelsRGBA, SeedFromKey("A"))
	require.NoError(t, err)
	b, err := NewTraverser(16, 16, ChannelsRGBA, SeedFromKey("B"))
	require.NoError(t, err)

	same := 0
	const n = 64
	for i := 0; i < n; i++ {
		pa, err := a.Next()
		require.NoError(t, err)
		pb, err := b.Next()
		require.NoError(t, err)
		if pa == pb {
			same++
		}
	}
	assert.Less(t, same, n/2)
}

func TestNewTraverserRejectsUnknownChannelSet(t *testing.T) {
	_, err := NewTraverser(2, 2, ChannelsUnknown, SeedFromKey(""))
	assert.IsType(t, &UnknownChannelSetError{}, err)
}

func TestSeedFromKey(t *testing.T) {
	assert.Equal(t, SeedFromKey("key"), SeedFromKey("key"))
	assert.NotEqual(t, SeedFromKey("key"), SeedFromKey("Key"))

	// SHA-256 of the empty string.
	empty := SeedFromKey("")
	assert.Equal(t, byte(0xe3), empty[0])
	assert.Equal(t, byte(0x55), empty[SeedSize-1])
}

func TestStringToChannelSet(t *testing.T) {
	assert.Equal(t, ChannelsRGB, StringToChannelSet("RGB"))
	assert.Equal(t, ChannelsRGBA, StringToChannelSet(" rgba "))
	assert.Equal(t, ChannelsUnknown, StringToChannelSet("cmyk"))
	assert.False(t, ChannelsUnknown.IsValid())
	assert.Equal(t, "rgba", ChannelsRGBA.String())
	assert.Equal(t, 3, ChannelsRGB.Count())
}
