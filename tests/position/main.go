// +build gofuzz

package fuzz

import "github.com/tdewolff/sxml"

// Fuzz is a fuzz test.
func Fuzz(data []byte) int {
	for _, offset := range []int{-1, 0, len(data) / 2, len(data), len(data) + 1} {
		line, col, _ := sxml.Position(data, offset)
		if line < 1 || col < 1 {
			panic("position must be one-based")
		}
	}
	return 1
}
