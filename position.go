package sxml // import "github.com/tdewolff/sxml"

import (
	"fmt"
	"strings"
)

// maxContext is the maximum number of bytes of the offending line shown in the context.
const maxContext = 60

// Position returns the line and column number for a certain offset in a buffer. It is useful for recovering the position in a file that caused an error.
// It only treats \n, \r, and \r\n as newlines. Columns count bytes, starting at 1. Offsets past the end of the buffer are clamped.
func Position(b []byte, offset int) (line, col int, context string) {
	if offset < 0 || len(b) < offset {
		offset = len(b)
	}

	line = 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if b[i] == '\n' {
			line++
			lineStart = i + 1
		} else if b[i] == '\r' {
			if i+1 < len(b) && b[i+1] == '\n' {
				if i+1 == offset {
					break // error is at \n in \r\n
				}
				i++
			}
			line++
			lineStart = i + 1
		}
	}
	col = offset - lineStart + 1

	lineEnd := lineStart
	for lineEnd < len(b) && b[lineEnd] != '\n' && b[lineEnd] != '\r' {
		lineEnd++
	}
	context = positionContext(b[lineStart:lineEnd], line, col)
	return
}

func positionContext(b []byte, line, col int) string {
	start, end := 0, len(b)
	if maxContext < end {
		start = col - 1 - maxContext/2
		if start < 0 {
			start = 0
		}
		end = start + maxContext
		if len(b) < end {
			end = len(b)
			start = end - maxContext
		}
	}

	caret := col - 1 - start
	s := string(b[start:end])
	if 0 < start {
		s = "..." + s
		caret += 3
	}
	if end < len(b) {
		s += "..."
	}

	context := fmt.Sprintf("%5d: %s\n", line, s)
	context += fmt.Sprintf("%s^", strings.Repeat(" ", caret+7))
	return context
}
