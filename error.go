package sxml // import "github.com/tdewolff/sxml"

import (
	"fmt"
)

// Error is a parsing error returned by the tokenizer. It contains a message and the position at which the error occurred.
type Error struct {
	Message string
	Offset  int
	Line    int
	Column  int
	Context string
	Err     error
}

// NewError creates a new error for the given offset into buffer b. The cause err may be nil.
func NewError(err error, msg string, b []byte, offset int) *Error {
	line, column, context := Position(b, offset)
	return &Error{
		Message: msg,
		Offset:  offset,
		Line:    line,
		Column:  column,
		Context: context,
		Err:     err,
	}
}

// Position returns the line, column, and context of the error.
// Context is the entire line at which the error occurred.
func (e *Error) Position() (int, int, string) {
	return e.Line, e.Column, e.Context
}

// Error returns the error string, containing the context and line + column number.
func (e *Error) Error() string {
	return fmt.Sprintf("%s on line %d and column %d\n%s", e.Message, e.Line, e.Column, e.Context)
}

// Unwrap returns the underlying error class, such as xml.ErrInvalid.
func (e *Error) Unwrap() error {
	return e.Err
}
