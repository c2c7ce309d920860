package xml // import "github.com/tdewolff/sxml/xml"

import (
	"errors"
	"io"

	"github.com/tdewolff/sxml"
)

// Default sizes of the Decoder buffers.
const (
	DefaultMinBuf    = 4096
	DefaultMinTokens = 64
)

// ErrBufferExceeded is returned when the document does not fit in Decoder.MaxBuf bytes.
var ErrBufferExceeded = errors.New("xml: max buffer exceeded")

// Document is a tokenized document. The tokens index Buf.
type Document struct {
	Buf    []byte
	Tokens []Token
}

// Text returns the bytes of the ith token.
func (doc *Document) Text(i int) []byte {
	return doc.Tokens[i].Text(doc.Buf)
}

////////////////////////////////////////////////////////////////

// Decoder tokenizes a document from an io.Reader. It keeps all data in a growing buffer and doubles the token slice
// when it runs full, calling Parse again with the same State each time.
type Decoder struct {
	Parser

	MinBuf    int // initial buffer capacity
	MaxBuf    int // maximum buffer capacity, zero means unlimited
	MinTokens int // initial token slice length
	ChunkSize int // maximum number of bytes per Read, zero means as much as fits in the buffer

	// OnSuspend is called, when set, every time Parse returns ErrBufferDry or ErrTokensFull.
	OnSuspend func(err error, s State)

	r io.Reader
}

// NewDecoder returns a new Decoder for a given io.Reader.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		MinBuf:    DefaultMinBuf,
		MinTokens: DefaultMinTokens,
		r:         r,
	}
}

// Decode reads and tokenizes the document up to the end of its root element. It returns io.ErrUnexpectedEOF if the
// reader ends earlier, ErrBufferExceeded if MaxBuf is too small, and an *sxml.Error wrapping ErrInvalid on syntax errors.
func (d *Decoder) Decode() (*Document, error) {
	minBuf, minTokens := d.MinBuf, d.MinTokens
	if minBuf <= 0 {
		minBuf = DefaultMinBuf
	}
	if minTokens <= 0 {
		minTokens = DefaultMinTokens
	}

	var s State
	var readErr error
	buf := make([]byte, 0, minBuf)
	tokens := make([]Token, minTokens)
	for {
		err := d.Parser.Parse(&s, buf, tokens)
		if err == nil {
			return &Document{buf, tokens[:s.NTokens]}, nil
		} else if d.OnSuspend != nil && (err == ErrBufferDry || err == ErrTokensFull) {
			d.OnSuspend(err, s)
		}

		switch err {
		case ErrTokensFull:
			tokens1 := make([]Token, 2*len(tokens))
			copy(tokens1, tokens[:s.NTokens])
			tokens = tokens1
		case ErrBufferDry:
			if readErr != nil {
				if readErr == io.EOF {
					return nil, io.ErrUnexpectedEOF
				}
				return nil, readErr
			}
			if buf, readErr = d.read(buf); readErr == ErrBufferExceeded {
				return nil, readErr
			}
		default:
			var syntaxErr *SyntaxError
			if errors.As(err, &syntaxErr) {
				return nil, sxml.NewError(ErrInvalid, syntaxErr.Msg, buf, syntaxErr.Offset)
			}
			return nil, err
		}
	}
}

// read appends at least one byte to buf unless the reader returns an error, reallocating when buf is at capacity.
func (d *Decoder) read(buf []byte) ([]byte, error) {
	for {
		if len(buf) == cap(buf) {
			c := 2 * cap(buf)
			if 0 < d.MaxBuf && d.MaxBuf < c {
				if d.MaxBuf <= cap(buf) {
					return buf, ErrBufferExceeded
				}
				c = d.MaxBuf
			}
			buf1 := make([]byte, len(buf), c)
			copy(buf1, buf)
			buf = buf1
		}

		end := cap(buf)
		if 0 < d.ChunkSize && len(buf)+d.ChunkSize < end {
			end = len(buf) + d.ChunkSize
		}
		n, err := d.r.Read(buf[len(buf):end])
		buf = buf[:len(buf)+n]
		if 0 < n || err != nil {
			return buf, err
		}
	}
}
