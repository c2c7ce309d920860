package xml // import "github.com/tdewolff/sxml/xml"

import (
	"strconv"
)

// TokenType determines the type of token, eg. a start tag or an attribute value.
type TokenType uint32

// TokenType values.
const (
	ErrorToken       TokenType = iota // zero value, never emitted
	StartTagToken                     // element name of <name ...>
	EndTagToken                       // element name of </name>, or a repeat of the start tag name for <name/>
	CommentToken                      // interior of <!-- -->
	InstructionToken                  // target name of <?name ...?>
	DOCTYPEToken                      // interior of <!DOCTYPE ]>
	CharDataToken                     // text between tags, CDATA section contents, and attribute names
	AttrValToken                      // attribute value between the quotes
)

// String returns the string representation of a TokenType.
func (tt TokenType) String() string {
	switch tt {
	case ErrorToken:
		return "Error"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case CommentToken:
		return "Comment"
	case InstructionToken:
		return "Instruction"
	case DOCTYPEToken:
		return "DOCTYPE"
	case CharDataToken:
		return "CharData"
	case AttrValToken:
		return "AttrVal"
	}
	return "Invalid(" + strconv.Itoa(int(tt)) + ")"
}

////////////////////////////////////////////////////////////////

// Token is a typed span [Start,End) into the input buffer. Size is the number of attribute name/value pairs
// that directly follow a StartTagToken or InstructionToken in the token slice, and zero otherwise.
type Token struct {
	TokenType
	Start uint32
	End   uint32
	Size  uint32
}

// Text returns the bytes the token spans in buf. No copy is made and no entities are decoded.
func (t Token) Text(buf []byte) []byte {
	return buf[t.Start:t.End]
}

// Attributes returns the attribute tokens that belong to the start tag or instruction at tokens[i], alternating between
// CharDataToken names and AttrValToken values. It returns nil for other token types.
func Attributes(tokens []Token, i int) []Token {
	t := tokens[i]
	if t.TokenType != StartTagToken && t.TokenType != InstructionToken || t.Size == 0 {
		return nil
	}
	return tokens[i+1 : i+1+2*int(t.Size)]
}
