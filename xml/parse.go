package xml // import "github.com/tdewolff/sxml/xml"

import (
	"fortio.org/safecast"

	"github.com/tdewolff/sxml"
)

// Parser holds the options of the tokenizer. The zero value is ready to use.
type Parser struct {
	// MatchEndTags makes end tags that do not close the innermost open element invalid. By default only
	// the nesting depth is balanced and names are not compared. It needs all earlier tokens of the document to index
	// the buffer passed to Parse, so it cannot be combined with State.Shift.
	MatchEndTags bool
}

// Parse tokenizes buf from s.Pos onwards and writes the tokens to tokens[s.NTokens:], see Parser.Parse.
func Parse(s *State, buf []byte, tokens []Token) error {
	return Parser{}.Parse(s, buf, tokens)
}

// Parse tokenizes buf from s.Pos onwards and writes the tokens to tokens[s.NTokens:]. It returns nil once the root
// element has been closed, and leaves anything after it alone.
//
// On ErrBufferDry the buffer ended within a construct: call again with the same state and a buffer that holds more data.
// On ErrTokensFull call again with the same state and a larger token slice that starts with the same s.NTokens tokens.
// In both cases s covers exactly the constructs that were consumed entirely, so nothing is tokenized twice.
// Any other error wraps ErrInvalid (or is ErrBufferTooLarge/ErrBadState) and cannot be recovered from.
//
// Parse does not allocate, unless it returns a syntax error.
func (p Parser) Parse(s *State, buf []byte, tokens []Token) error {
	if _, err := safecast.Conv[uint32](len(buf)); err != nil {
		return ErrBufferTooLarge
	} else if s.Pos < 0 || len(buf) < s.Pos || s.Depth < 0 || s.NTokens < 0 {
		return ErrBadState
	} else if len(tokens) < s.NTokens {
		return ErrTokensFull
	}

	l := lexer{
		buf:          buf,
		tokens:       tokens,
		matchEndTags: p.MatchEndTags,
	}

	// every recognizer works on tmp, which is committed to s only when it succeeds
	tmp := *s

	// prolog
	for tmp.Depth == 0 {
		lt := sxml.TrimLeft(buf, tmp.Pos, len(buf))
		if len(buf)-lt < minTagLen {
			return ErrBufferDry
		} else if buf[lt] != '<' {
			return l.errorf(lt, "expected '<'")
		}
		tmp.Pos = lt
		*s = tmp

		var err error
		root := false
		switch buf[lt+1] {
		case '?':
			err = l.parseInstruction(&tmp)
		case '!':
			if buf[lt+2] == '-' {
				err = l.parseComment(&tmp)
			} else {
				err = l.parseDOCTYPE(&tmp)
			}
		default:
			err = l.parseStartTag(&tmp)
			root = true
		}
		if err != nil {
			return err
		}
		*s = tmp
		if root {
			break // a self-closing root leaves the depth at zero
		}
	}

	// root element
	for 0 < tmp.Depth {
		if err := l.parseCharData(&tmp); err != nil {
			return err
		}
		*s = tmp

		lt := tmp.Pos
		if len(buf)-lt < minTagLen {
			return ErrBufferDry
		}

		var err error
		switch buf[lt+1] {
		case '?':
			err = l.parseInstruction(&tmp)
		case '/':
			err = l.parseEndTag(&tmp)
		case '!':
			if buf[lt+2] == '-' {
				err = l.parseComment(&tmp)
			} else {
				err = l.parseCDATA(&tmp)
			}
		default:
			err = l.parseStartTag(&tmp)
		}
		if err != nil {
			return err
		}
		*s = tmp
	}
	return nil
}
