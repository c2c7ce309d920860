package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tdewolff/sxml/xml"
)

// stdinName is the file name that reads from standard input.
const stdinName = "-"

// decodeFile tokenizes the file at path. A byte order mark is stripped and UTF-16 input is converted to UTF-8, so
// token offsets refer to the UTF-8 document.
func (a *app) decodeFile(path string, stdin io.Reader) (*xml.Document, error) {
	r := stdin
	if path != stdinName {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	r = transform.NewReader(r, unicode.BOMOverride(transform.Nop))

	d := xml.NewDecoder(r)
	d.MatchEndTags = a.cfg.MatchEndTags
	d.MinTokens = a.cfg.Tokens
	d.MaxBuf = a.cfg.MaxBuf
	d.ChunkSize = a.cfg.Chunk
	d.OnSuspend = func(err error, s xml.State) {
		log.Debug().Str("file", path).Err(err).
			Int("pos", s.Pos).Int("tokens", s.NTokens).Int("depth", s.Depth).
			Msg("suspended")
	}

	doc, err := d.Decode()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Info().Str("file", path).Int("bytes", len(doc.Buf)).Int("tokens", len(doc.Tokens)).Msg("tokenized")
	return doc, nil
}
