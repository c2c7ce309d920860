package xml // import "github.com/tdewolff/sxml/xml"

import (
	"errors"
	"strconv"
)

// ErrBufferDry is returned when the buffer ends before the construct at the cursor does. Append more bytes and call again.
var ErrBufferDry = errors.New("xml: buffer ends within a construct")

// ErrTokensFull is returned when the token slice is too small. Pass a larger slice that keeps the first State.NTokens tokens and call again.
var ErrTokensFull = errors.New("xml: token slice is full")

// ErrInvalid is the class of all syntax errors, test with errors.Is. The state cannot be resumed after it.
var ErrInvalid = errors.New("xml: invalid syntax")

// ErrBufferTooLarge is returned when the buffer is too large for token offsets to address.
var ErrBufferTooLarge = errors.New("xml: buffer exceeds 4GB")

// ErrBadState is returned when the state does not fit the buffer, eg. when its cursor lies past the end of the buffer.
var ErrBadState = errors.New("xml: state does not match buffer")

// SyntaxError is returned by Parse when the bytes at Offset do not form the construct they start.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return "xml: " + e.Msg + " at offset " + strconv.Itoa(e.Offset)
}

// Unwrap returns ErrInvalid.
func (e *SyntaxError) Unwrap() error {
	return ErrInvalid
}
