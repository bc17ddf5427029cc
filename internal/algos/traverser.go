package algos

import (
	"fmt"
	"math/rand/v2"
)

// Position is a single hiding spot: one channel of the pixel at (X, Y).
type Position struct {
	X, Y    int
	Channel Channel
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d, %v)", p.X, p.Y, p.Channel)
}

// poolEntry is a pixel that still has at least one unused channel.
type poolEntry struct {
	pixel    int
	channels [maxChannels]Channel
	n        uint8
}

// Traverser hands out unique, pseudo-random hiding spots in an image, drawn without replacement.
// Two traversers built from the same dimensions, channel set and seed return the same sequence.
// A Traverser is not safe for concurrent use.
type Traverser struct {
	rng       *rand.Rand
	pool      []poolEntry
	width     int
	remaining int
}

// NewTraverser builds the pool of every (pixel, channel) pair of a width x height image and seeds
// the traverser's own generator with seed.
func NewTraverser(width, height int, set ChannelSet, seed [SeedSize]byte) (*Traverser, error) {
	if !set.IsValid() {
		return nil, &UnknownChannelSetError{set}
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	src, err := newKeystreamSource(seed)
	if err != nil {
		return nil, err
	}

	channels := set.Channels()
	pool := make([]poolEntry, width*height)
	for i := range pool {
		pool[i].pixel = i
		pool[i].n = uint8(copy(pool[i].channels[:], channels))
	}

	return &Traverser{
		rng:       rand.New(src),
		pool:      pool,
		width:     width,
		remaining: len(pool) * len(channels),
	}, nil
}

// Next returns the next hiding spot, or an EmptyPoolError once every spot has been handed out.
//
// A pixel is picked uniformly among the pixels left in the pool, then one of its remaining
// channels is picked uniformly. Pixels whose channels are all used leave the pool.
func (t *Traverser) Next() (Position, error) {
	if len(t.pool) == 0 {
		return Position{}, &EmptyPoolError{}
	}

	j := t.rng.IntN(len(t.pool))
	entry := &t.pool[j]

	var c Channel
	if entry.n == 1 {
		c = entry.channels[0]
		entry.n = 0
	} else {
		k := t.rng.IntN(int(entry.n))
		c = entry.channels[k]
		copy(entry.channels[k:entry.n], entry.channels[k+1:entry.n])
		entry.n--
	}

	pixel := entry.pixel
	if entry.n == 0 {
		last := len(t.pool) - 1
		t.pool[j] = t.pool[last]
		t.pool = t.pool[:last]
	}
	t.remaining--

	x, y := posToXY(pixel, t.width)
	return Position{X: x, Y: y, Channel: c}, nil
}

// Remaining returns the number of hiding spots not yet handed out.
func (t *Traverser) Remaining() int {
	return t.remaining
}
