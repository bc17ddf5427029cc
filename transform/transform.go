// Package transform turns arbitrary bytes into printable text that can be hidden as a payload, and back.
//
// The bytes are zlib-compressed and then base64-encoded with the standard alphabet.
package transform

import (
	"bytes"
	"encoding/base64"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"
)

// ErrMalformedText is returned when text was not produced by BytesToText.
var ErrMalformedText = errors.New("the payload text is not a compressed base64 file")

// BytesToText compresses data and encodes it as base64 text.
func BytesToText(data []byte) (string, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		_ = zw.Close()
		return "", errors.Wrap(err, "compress")
	}
	if err := zw.Close(); err != nil {
		return "", errors.Wrap(err, "compress")
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// TextToBytes reverses BytesToText.
func TextToBytes(text string) ([]byte, error) {
	compressed, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedText, "base64: %v", err)
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedText, "zlib: %v", err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedText, "zlib: %v", err)
	}
	return data, nil
}

// FileToText reads the file at path and returns its contents as payload text.
func FileToText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read %q", path)
	}
	return BytesToText(data)
}

// TextToFile decodes payload text and writes the recovered bytes to path.
func TextToFile(text, path string) error {
	data, err := TextToBytes(text)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %q", path)
	}
	return nil
}
