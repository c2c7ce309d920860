// +build gofuzz

package fuzz

import (
	"errors"

	"github.com/tdewolff/sxml"
	"github.com/tdewolff/sxml/xml"
)

// Fuzz checks that resuming on a growing buffer gives the same result as tokenizing all data at once.
func Fuzz(data []byte) int {
	data = sxml.Copy(data)

	var s xml.State
	tokens := make([]xml.Token, len(data)+1)
	err := xml.Parse(&s, data, tokens)
	if err != nil && err != xml.ErrBufferDry && !errors.Is(err, xml.ErrInvalid) {
		panic("unexpected error: " + err.Error())
	}

	var s2 xml.State
	tokens2 := make([]xml.Token, len(data)+1)
	var err2 error
	for n := 0; n <= len(data); n++ {
		if err2 = xml.Parse(&s2, data[:n], tokens2); err2 != xml.ErrBufferDry {
			break
		}
	}
	if (err == nil) != (err2 == nil) || errors.Is(err, xml.ErrInvalid) != errors.Is(err2, xml.ErrInvalid) {
		panic("resumed result differs")
	} else if err == nil {
		if s != s2 {
			panic("resumed state differs")
		}
		for i := 0; i < s.NTokens; i++ {
			if tokens[i] != tokens2[i] {
				panic("resumed tokens differ")
			}
		}
		return 1
	}
	return 0
}
