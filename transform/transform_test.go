package transform

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"binary", []byte{0x00, 0xff, 0x10, 0x80, 0x7f}},
		{"repetitive", bytes.Repeat([]byte("steg"), 4096)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := BytesToText(tt.data)
			require.NoError(t, err)
			assert.NotContains(t, text, "\n")

			got, err := TextToBytes(text)
			require.NoError(t, err)
			assert.Equal(t, tt.data, got)
		})
	}
}

func TestCompressionShrinksRepetitiveInput(t *testing.T) {
	data := bytes.Repeat([]byte("a"), 10000)
	text, err := BytesToText(data)
	require.NoError(t, err)
	assert.Less(t, len(text), len(data)/10)
}

func TestTextToBytesMalformed(t *testing.T) {
	for _, text := range []string{"!!not base64!!", "aGVsbG8="} {
		_, err := TextToBytes(text)
		assert.True(t, errors.Is(err, ErrMalformedText), text)
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.bin")
	out := filepath.Join(dir, "out.bin")
	data := []byte("some file\x00with binary\xffcontent")
	require.NoError(t, os.WriteFile(in, data, 0o600))

	text, err := FileToText(in)
	require.NoError(t, err)
	require.NoError(t, TextToFile(text, out))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestFileToTextMissing(t *testing.T) {
	_, err := FileToText(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
