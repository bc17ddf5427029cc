// Package util provides some basic utility functions.
package util

import (
	"path/filepath"
	"strings"
)

// mapSuffix is inserted before the extension of an output path to name its diff map.
const mapSuffix = "_map"

// MapPath returns the path of the diff map belonging to the output image at path,
// e.g. "out/secret.png" becomes "out/secret_map.png".
func MapPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + mapSuffix + ext
}

// Percent returns part as a percentage of total, or 0 if total is not positive.
func Percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
