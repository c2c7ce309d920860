package sxml

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestError(t *testing.T) {
	errClass := errors.New("class")
	err := NewError(errClass, "message", []byte("buffer"), 3)

	line, column, context := err.Position()
	test.T(t, line, 1, "line")
	test.T(t, column, 4, "column")
	test.T(t, "\n"+context, "\n    1: buffer\n          ^", "context")

	test.T(t, err.Error(), "message on line 1 and column 4\n    1: buffer\n          ^", "error")
	test.That(t, errors.Is(err, errClass), "must unwrap to its class")
	test.T(t, err.Offset, 3)
}

func TestErrorNoClass(t *testing.T) {
	err := NewError(nil, "message", []byte("a\nbc"), 3)
	test.T(t, err.Line, 2)
	test.T(t, err.Column, 2)
	test.That(t, err.Unwrap() == nil)
}
