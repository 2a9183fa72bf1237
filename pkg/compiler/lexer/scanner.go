package lexer

import (
	"bytes"
)

// Scanner performs lexical analysis on fen expression source.
type Scanner struct {
	source    []byte
	cursor    int
	line      int
	lineStart int // cursor position of the current line's first byte
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// Reset re-initializes the scanner with new source for pool reuse.
func (s *Scanner) Reset(source []byte) {
	s.source = source
	s.cursor = 0
	s.line = 1
	s.lineStart = 0
}

// Lexeme returns the source bytes covered by t.
func (s *Scanner) Lexeme(t Token) []byte {
	return s.source[t.Offset : t.Offset+t.Length]
}

// Next returns the next token from the source.
func (s *Scanner) Next() Token {
	s.skipWhitespace()

	if s.cursor >= len(s.source) {
		return s.token(KindEOF, s.cursor, 0)
	}

	start := s.cursor
	ch := s.source[s.cursor]

	// Comments run to end of line.
	if ch == '#' {
		s.skipComment()
		return s.Next()
	}

	if ch == '"' {
		return s.scanString()
	}

	if isDigit(ch) {
		return s.scanNumber()
	}

	if isAlpha(ch) {
		return s.scanIdentifier()
	}

	// Concat is the only two-byte operator.
	if ch == '.' && s.peek() == '.' {
		s.cursor += 2
		return s.token(KindStrConcat, start, 2)
	}

	s.cursor++
	kind := KindError
	switch ch {
	case '+':
		kind = KindPlus
	case '-':
		kind = KindMinus
	case '*':
		kind = KindMultiply
	case '/':
		kind = KindDivide
	case '%':
		kind = KindModulus
	case '^':
		kind = KindExponent
	case '(':
		kind = KindLParen
	case ')':
		kind = KindRParen
	case '=':
		kind = KindAssign
	}

	return s.token(kind, start, 1)
}

func (s *Scanner) token(kind Kind, start, length int) Token {
	return Token{
		Kind:   kind,
		Offset: uint32(start),
		Length: uint32(length),
		Line:   uint32(s.line),
		Col:    uint32(start - s.lineStart + 1),
	}
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		if ch == ' ' || ch == '\t' || ch == '\r' {
			s.cursor++
		} else if ch == '\n' {
			s.cursor++
			s.line++
			s.lineStart = s.cursor
		} else {
			break
		}
	}
}

func (s *Scanner) skipComment() {
	for s.cursor < len(s.source) && s.source[s.cursor] != '\n' {
		s.cursor++
	}
}

// scanString returns a token covering only the string contents; the
// surrounding quotes are consumed but excluded from the lexeme.
func (s *Scanner) scanString() Token {
	start := s.cursor
	s.cursor++ // Skip opening '"'
	contentStart := s.cursor
	for s.cursor < len(s.source) && s.source[s.cursor] != '"' && s.source[s.cursor] != '\n' {
		s.cursor++
	}

	if s.cursor >= len(s.source) || s.source[s.cursor] == '\n' {
		return s.token(KindError, start, s.cursor-start)
	}

	s.cursor++ // Skip closing '"'
	tok := s.token(KindStringLit, contentStart, s.cursor-1-contentStart)
	tok.Col = uint32(start - s.lineStart + 1)
	return tok
}

// scanNumber distinguishes integer from double literals: a '.' only
// belongs to the number when followed by a digit, so "1..2" scans as
// integer, concat, integer.
func (s *Scanner) scanNumber() Token {
	start := s.cursor
	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		s.cursor++
	}

	kind := KindIntegerLit
	if s.cursor < len(s.source) && s.source[s.cursor] == '.' && isDigit(s.peek()) {
		kind = KindDoubleLit
		s.cursor++
		for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
			s.cursor++
		}
	}

	return s.token(kind, start, s.cursor-start)
}

func (s *Scanner) scanIdentifier() Token {
	start := s.cursor
	for s.cursor < len(s.source) && (isAlpha(s.source[s.cursor]) || isDigit(s.source[s.cursor]) || s.source[s.cursor] == '_') {
		s.cursor++
	}

	literal := s.source[start:s.cursor]
	kind := KindIdentifier
	if bytes.Equal(literal, []byte("true")) {
		kind = KindTrue
	} else if bytes.Equal(literal, []byte("false")) {
		kind = KindFalse
	}

	return s.token(kind, start, s.cursor-start)
}

func (s *Scanner) peek() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}
