package xml // import "github.com/tdewolff/sxml/xml"

// State is the position of a parse between calls to Parse. It is owned by the caller; the zero value starts a new document.
// Parse only writes to it after a construct has been consumed entirely, so after ErrBufferDry or ErrTokensFull the same
// State can be passed again to continue where the previous call stopped.
type State struct {
	Pos     int // cursor in the buffer, everything before it has been tokenized
	NTokens int // number of tokens written to the token slice
	Depth   int // number of open elements
}

// Reset prepares the state for a new document.
func (s *State) Reset() {
	*s = State{}
}

// Shift moves the cursor back by n bytes, for when the caller drops the first n bytes of its buffer before the next call.
// Tokens emitted earlier keep referring to the old buffer.
func (s *State) Shift(n int) {
	if n < 0 || s.Pos < n {
		panic("xml: shift beyond cursor")
	}
	s.Pos -= n
}

// pushToken writes a token at NTokens and keeps Depth up to date. It returns false when the token slice is full,
// in which case NTokens is past the capacity and setPos will report ErrTokensFull.
func (s *State) pushToken(tokens []Token, tt TokenType, start, end int) bool {
	i := s.NTokens
	s.NTokens++
	if len(tokens) < s.NTokens {
		return false
	}
	tokens[i] = Token{tt, uint32(start), uint32(end), 0}

	switch tt {
	case StartTagToken:
		s.Depth++
	case EndTagToken:
		if s.Depth == 0 {
			panic("xml: end tag token without open element")
		}
		s.Depth--
	}
	return true
}

// setPos moves the cursor after a construct has been consumed.
func (s *State) setPos(tokens []Token, pos int) error {
	if len(tokens) < s.NTokens {
		return ErrTokensFull
	}
	s.Pos = pos
	return nil
}
