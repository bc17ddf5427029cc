package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"output.png", "output_map.png"},
		{"dir/secret.tiff", "dir/secret_map.tiff"},
		{"noext", "noext_map"},
		{"dir.d/img.v2.bmp", "dir.d/img.v2_map.bmp"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MapPath(tt.in), tt.in)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 50.0, Percent(32, 64))
	assert.Equal(t, 0.0, Percent(5, 0))
}
