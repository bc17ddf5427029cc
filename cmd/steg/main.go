// Command steg hides text or files in the least-significant bits of an image, and digs them back out.
//
// Usage:
//
//	steg encode <value> <image> [--key k] [--output out.png] [--limit 8|16|32] [--channels rgb|rgba] [--verbose] [--map] [--file]
//	steg decode <image> [--key k] [--limit 8|16|32] [--channels rgb|rgba] [--file out]
//	steg version
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
