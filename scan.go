package sxml // import "github.com/tdewolff/sxml"

// The scan functions below work on the half-open window b[start:end] and never look outside of it.
// They return positions instead of booleans so that calls can be chained, where a result equal to end means "not found".
// The caller must make sure that 0 <= start <= end <= len(b).

// FindByte returns the position of the first occurrence of c in b[start:end], or end if there is none.
// The byte c must be ASCII: bytes of a multi-byte UTF-8 sequence are all >= 0x80, so an ASCII byte can never match in the middle of a character.
// This is what makes searching for structural characters such as '<' or '"' safe on UTF-8 input.
func FindByte(b []byte, start, end int, c byte) int {
	if 0x7F < c {
		panic("sxml: FindByte needs an ASCII byte")
	}
	for i := start; i < end; i++ {
		if b[i] == c {
			return i
		}
	}
	return end
}

// FindString returns the position of the first occurrence of the ASCII literal needle in b[start:end], or end if there is none.
func FindString(b []byte, start, end int, needle string) int {
	if len(needle) == 0 {
		panic("sxml: FindString needs a non-empty needle")
	}
	first := needle[0]
	for start+len(needle) <= end {
		i := FindByte(b, start, end-len(needle)+1, first)
		if i == end-len(needle)+1 {
			break
		}
		if string(b[i:i+len(needle)]) == needle {
			return i
		}
		start = i + 1
	}
	return end
}

// HasPrefix returns true if b[start:end] begins with prefix.
func HasPrefix(b []byte, start, end int, prefix string) bool {
	if end-start < len(prefix) {
		return false
	}
	return string(b[start:start+len(prefix)]) == prefix
}

// HasSuffix returns true if b[start:end] ends with suffix.
func HasSuffix(b []byte, start, end int, suffix string) bool {
	if end-start < len(suffix) {
		return false
	}
	return string(b[end-len(suffix):end]) == suffix
}

// TrimLeft returns the position of the first non-whitespace byte in b[start:end], or end.
func TrimLeft(b []byte, start, end int) int {
	for start < end && whitespaceTable[b[start]] {
		start++
	}
	return start
}

// TrimRight returns the position just after the last non-whitespace byte in b[start:end], or start.
func TrimRight(b []byte, start, end int) int {
	for start < end && whitespaceTable[b[end-1]] {
		end--
	}
	return end
}

// FirstWhitespace returns the position of the first whitespace byte in b[start:end], or end.
func FirstWhitespace(b []byte, start, end int) int {
	for start < end && !whitespaceTable[b[start]] {
		start++
	}
	return start
}
