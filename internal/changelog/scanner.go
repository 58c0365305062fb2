package changelog

import "regexp"

// Scanner is a forward-only cursor over changelog text.
//
// Operations slice the source rather than copy it, and none of them panic on
// short input. Once AtEnd reports true it stays true.
type Scanner struct {
	src string
	pos int
}

// NewScanner returns a Scanner positioned at the start of src.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// Pos returns the current byte offset of the cursor.
func (s *Scanner) Pos() int {
	return s.pos
}

// AtEnd reports whether the cursor has reached the end of the source.
func (s *Scanner) AtEnd() bool {
	return s.pos >= len(s.src)
}

// Peek returns up to n bytes following the cursor without advancing it.
func (s *Scanner) Peek(n int) string {
	if n <= 0 || s.AtEnd() {
		return ""
	}
	end := s.pos + n
	if end > len(s.src) {
		end = len(s.src)
	}
	return s.src[s.pos:end]
}

// Match returns the length of a match of re anchored at the cursor, or -1.
// The cursor does not move. re must be anchored with ^ to be meaningful.
func (s *Scanner) Match(re *regexp.Regexp) int {
	if s.AtEnd() {
		return -1
	}
	loc := re.FindStringIndex(s.src[s.pos:])
	if loc == nil || loc[0] != 0 {
		return -1
	}
	return loc[1]
}

// ScanUntil advances past the first match of re at or after the cursor and
// returns the consumed text, match included. When re does not match, the
// remainder of the source is consumed and returned.
func (s *Scanner) ScanUntil(re *regexp.Regexp) string {
	if s.AtEnd() {
		return ""
	}
	rest := s.src[s.pos:]
	end := len(rest)
	if loc := re.FindStringIndex(rest); loc != nil {
		end = loc[1]
	}
	s.pos += end
	return rest[:end]
}

// Skip advances the cursor by n bytes, stopping at the end of the source.
func (s *Scanner) Skip(n int) {
	if n <= 0 {
		return
	}
	s.pos += n
	if s.pos > len(s.src) {
		s.pos = len(s.src)
	}
}
