// Package xml is a resumable XML tokenizer that writes byte offsets into a caller-provided token slice.
// It handles a practical subset of http://www.w3.org/TR/xml/: one root element, attributes with quoted values,
// comments, processing instructions, a DOCTYPE, CDATA sections and character data. Entities are not decoded.
package xml // import "github.com/tdewolff/sxml/xml"

import (
	"github.com/tdewolff/sxml"
)

// minTagLen is the number of bytes needed to tell constructs starting with '<' apart.
const minTagLen = 3

// lexer holds the arguments of a single Parse call. The recognizers read from s.Pos onwards and, on success,
// push their tokens and move s.Pos past the construct. On failure s must be discarded by the caller.
type lexer struct {
	buf    []byte
	tokens []Token

	matchEndTags bool
}

func (l *lexer) errorf(pos int, msg string) error {
	return &SyntaxError{Offset: pos, Msg: msg}
}

// open checks that the construct at pos starts with lit. If the buffer ends before lit does, the available
// bytes decide: a prefix of lit means more data is needed, anything else is invalid.
func (l *lexer) open(pos int, lit string) error {
	if n := len(l.buf) - pos; n < len(lit) {
		if string(l.buf[pos:]) == lit[:n] {
			return ErrBufferDry
		}
		return l.errorf(pos, "expected "+lit)
	} else if !sxml.HasPrefix(l.buf, pos, len(l.buf), lit) {
		return l.errorf(pos, "expected "+lit)
	}
	return nil
}

////////////////////////////////////////////////////////////////

// parseAttributes tokenizes name="value" pairs in buf[start:end] for the start tag or instruction at tokens[owner].
func (l *lexer) parseAttributes(s *State, owner, start, end int) error {
	name := sxml.TrimLeft(l.buf, start, end)
	for name != end {
		if !sxml.IsLetter(l.buf[name]) {
			return l.errorf(name, "attribute name must start with a letter")
		}

		eq := sxml.FindByte(l.buf, name, end, '=')
		if eq == end {
			return l.errorf(name, "expected '=' after attribute name")
		}
		if !s.pushToken(l.tokens, CharDataToken, name, sxml.TrimRight(l.buf, name, eq)) {
			return ErrTokensFull
		}

		quote := sxml.TrimLeft(l.buf, eq+1, end)
		if quote == end || l.buf[quote] != '"' && l.buf[quote] != '\'' {
			return l.errorf(quote, "expected quoted attribute value")
		}
		val := quote + 1
		closing := sxml.FindByte(l.buf, val, end, l.buf[quote])
		if closing == end {
			return l.errorf(quote, "unterminated attribute value")
		}
		if !s.pushToken(l.tokens, AttrValToken, val, closing) {
			return ErrTokensFull
		}

		l.tokens[owner].Size++
		name = sxml.TrimLeft(l.buf, closing+1, end)
	}
	return nil
}

func (l *lexer) parseComment(s *State) error {
	start := s.Pos
	if err := l.open(start, "<!--"); err != nil {
		return err
	}

	start += len("<!--")
	dash := sxml.FindString(l.buf, start, len(l.buf), "-->")
	if dash == len(l.buf) {
		return ErrBufferDry
	}

	s.pushToken(l.tokens, CommentToken, start, dash)
	return s.setPos(l.tokens, dash+len("-->"))
}

func (l *lexer) parseInstruction(s *State) error {
	start := s.Pos
	if err := l.open(start, "<?"); err != nil {
		return err
	}

	start += len("<?")
	quest := sxml.FindString(l.buf, start, len(l.buf), "?>")
	if quest == len(l.buf) {
		return ErrBufferDry
	}

	space := sxml.FirstWhitespace(l.buf, start, quest)
	if !s.pushToken(l.tokens, InstructionToken, start, space) {
		return ErrTokensFull
	}
	if err := l.parseAttributes(s, s.NTokens-1, space, quest); err != nil {
		return err
	}
	return s.setPos(l.tokens, quest+len("?>"))
}

// parseDOCTYPE ends the declaration at "]>" when it has an internal subset, that is when a '[' comes before the first '>'.
// Otherwise it ends at the first '>'.
func (l *lexer) parseDOCTYPE(s *State) error {
	start := s.Pos
	if err := l.open(start, "<!DOCTYPE"); err != nil {
		return err
	}

	start += len("<!DOCTYPE")
	gt := sxml.FindByte(l.buf, start, len(l.buf), '>')
	if gt == len(l.buf) {
		return ErrBufferDry
	}

	end, next := gt, gt+1
	if sxml.FindByte(l.buf, start, gt, '[') != gt {
		bracket := sxml.FindString(l.buf, start, len(l.buf), "]>")
		if bracket == len(l.buf) {
			return ErrBufferDry
		}
		end, next = bracket, bracket+len("]>")
	}

	s.pushToken(l.tokens, DOCTYPEToken, start, end)
	return s.setPos(l.tokens, next)
}

func (l *lexer) parseCDATA(s *State) error {
	start := s.Pos
	if err := l.open(start, "<![CDATA["); err != nil {
		return err
	}

	start += len("<![CDATA[")
	bracket := sxml.FindString(l.buf, start, len(l.buf), "]]>")
	if bracket == len(l.buf) {
		return ErrBufferDry
	}

	s.pushToken(l.tokens, CharDataToken, start, bracket)
	return s.setPos(l.tokens, bracket+len("]]>"))
}

func (l *lexer) parseStartTag(s *State) error {
	start := s.Pos
	if len(l.buf)-start < 2 {
		return ErrBufferDry
	} else if l.buf[start] != '<' || !sxml.IsLetter(l.buf[start+1]) {
		return l.errorf(start, "expected start tag")
	}

	start++
	gt := sxml.FindByte(l.buf, start, len(l.buf), '>')
	if gt == len(l.buf) {
		return ErrBufferDry
	}

	empty := sxml.HasSuffix(l.buf, start, gt+1, "/>")
	end := gt
	if empty {
		end--
	}

	name := start
	space := sxml.FirstWhitespace(l.buf, name, end)
	if !s.pushToken(l.tokens, StartTagToken, name, space) {
		return ErrTokensFull
	}
	if err := l.parseAttributes(s, s.NTokens-1, space, end); err != nil {
		return err
	}

	if empty {
		s.pushToken(l.tokens, EndTagToken, name, space)
	}
	return s.setPos(l.tokens, gt+1)
}

func (l *lexer) parseEndTag(s *State) error {
	start := s.Pos
	if len(l.buf)-start < minTagLen {
		return ErrBufferDry
	} else if !sxml.HasPrefix(l.buf, start, len(l.buf), "</") || !sxml.IsLetter(l.buf[start+2]) {
		return l.errorf(start, "expected end tag")
	}

	start += len("</")
	gt := sxml.FindByte(l.buf, start, len(l.buf), '>')
	if gt == len(l.buf) {
		return ErrBufferDry
	}

	space := sxml.FirstWhitespace(l.buf, start, gt)
	if sxml.TrimLeft(l.buf, space, gt) != gt {
		return l.errorf(space, "unexpected characters after end tag name")
	}
	if l.matchEndTags {
		if err := l.matchStartTag(s, start, space); err != nil {
			return err
		}
	}

	s.pushToken(l.tokens, EndTagToken, start, space)
	return s.setPos(l.tokens, gt+1)
}

// matchStartTag finds the innermost open start tag by walking back through the tokens and compares its name with
// buf[start:end]. Earlier tokens must still refer to the same buffer.
func (l *lexer) matchStartTag(s *State, start, end int) error {
	n := s.NTokens
	if len(l.tokens) < n {
		n = len(l.tokens)
	}

	depth := 0
	for i := n - 1; 0 <= i; i-- {
		switch t := l.tokens[i]; t.TokenType {
		case EndTagToken:
			depth++
		case StartTagToken:
			if 0 < depth {
				depth--
				continue
			}
			if len(l.buf) < int(t.End) || string(t.Text(l.buf)) != string(l.buf[start:end]) {
				return l.errorf(start, "end tag does not match start tag")
			}
			return nil
		}
	}
	return l.errorf(start, "end tag without start tag")
}

// parseCharData emits the text up to the next '<', if any, and stops the cursor at the '<'.
func (l *lexer) parseCharData(s *State) error {
	start := s.Pos
	lt := sxml.FindByte(l.buf, start, len(l.buf), '<')
	if lt == len(l.buf) {
		return ErrBufferDry
	}

	if lt != start {
		s.pushToken(l.tokens, CharDataToken, start, lt)
	}
	return s.setPos(l.tokens, lt)
}
