package algos

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// SeedSize is the size in bytes of a traversal seed.
const SeedSize = sha256.Size

// SeedFromKey derives the traversal seed from a key. An absent key is the empty string.
func SeedFromKey(key string) [SeedSize]byte {
	return sha256.Sum256([]byte(key))
}

// keystreamSource is a math/rand/v2 Source reading little-endian words off a ChaCha20 keystream
// keyed by the seed, with an all-zero nonce.
type keystreamSource struct {
	cipher *chacha20.Cipher
	buf    [8]byte
}

func newKeystreamSource(seed [SeedSize]byte) (*keystreamSource, error) {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		return nil, err
	}
	return &keystreamSource{cipher: c}, nil
}

func (s *keystreamSource) Uint64() uint64 {
	s.buf = [8]byte{}
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}
