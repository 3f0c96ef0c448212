package lexer

import (
	"unicode/utf8"
)

// Scanner performs a single left-to-right pass over source text with one
// character of lookahead.
type Scanner struct {
	source string
	start  int
	cursor int
	line   uint

	tokens []Token
	errors []Error
}

// NewScanner creates a scanner over source.
func NewScanner(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// Reset re-initializes the scanner with new source.
func (s *Scanner) Reset(source string) {
	s.source = source
	s.start = 0
	s.cursor = 0
	s.line = 1
	s.tokens = nil
	s.errors = nil
}

// Scan tokenizes source, returning every token produced (always terminated
// by exactly one EOF token) together with any lexical errors.
func Scan(source string) ([]Token, []Error) {
	return NewScanner(source).ScanTokens()
}

// ScanTokens runs the scanner to the end of its input.
func (s *Scanner) ScanTokens() ([]Token, []Error) {
	for !s.atEnd() {
		s.start = s.cursor
		s.scanToken()
	}
	s.tokens = append(s.tokens, NewToken(KindEOF, "", s.line))
	return s.tokens, s.errors
}

func (s *Scanner) scanToken() {
	ch := s.advance()
	switch ch {
	case ' ', '\t', '\r':
	case '\n':
		s.line++
	case '(':
		s.add(KindLeftParen)
	case ')':
		s.add(KindRightParen)
	case '{':
		s.add(KindLeftBrace)
	case '}':
		s.add(KindRightBrace)
	case ',':
		s.add(KindComma)
	case '.':
		s.add(KindDot)
	case '-':
		s.add(KindMinus)
	case '+':
		s.add(KindPlus)
	case ';':
		s.add(KindSemicolon)
	case '*':
		s.add(KindStar)
	case '!':
		s.addOperator(KindBang, KindBangEqual)
	case '=':
		s.addOperator(KindEqual, KindEqualEqual)
	case '<':
		s.addOperator(KindLess, KindLessEqual)
	case '>':
		s.addOperator(KindGreater, KindGreaterEqual)
	case '/':
		if s.match('/') {
			s.skipComment()
			return
		}
		s.add(KindSlash)
	case '"':
		s.scanString()
	default:
		switch {
		case isDigit(ch):
			s.scanNumber()
		case isAlpha(ch):
			s.scanIdentifier()
		default:
			s.unexpected(ch)
		}
	}
}

// addOperator emits the two-character form when the next character is '='.
// A prefix that is the final character of the input is still emitted, but
// recorded as TokenMissing.
func (s *Scanner) addOperator(single, double Kind) {
	if s.match('=') {
		s.add(double)
		return
	}
	if s.atEnd() {
		s.errors = append(s.errors, Error{Kind: TokenMissing, Line: s.line, Char: s.source[s.start:s.cursor]})
	}
	s.add(single)
}

func (s *Scanner) skipComment() {
	for !s.atEnd() && s.peek() != '\n' {
		s.cursor++
	}
}

func (s *Scanner) scanString() {
	startLine := s.line
	for !s.atEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.line++
		}
		s.cursor++
	}
	if s.atEnd() {
		s.errors = append(s.errors, Error{Kind: TokenMissing, Line: s.line, Char: "\""})
		return
	}
	s.cursor++ // closing quote
	s.tokens = append(s.tokens, NewToken(KindString, s.source[s.start+1:s.cursor-1], startLine))
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.cursor++
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.cursor++
		for isDigit(s.peek()) {
			s.cursor++
		}
	}
	s.add(KindNumber)
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.cursor++
	}
	s.add(LookupIdentifier(s.source[s.start:s.cursor]))
}

// unexpected records one error per rune, so a multi-byte character does
// not produce an error for each of its bytes.
func (s *Scanner) unexpected(first byte) {
	char := string(first)
	if first >= utf8.RuneSelf {
		r, size := utf8.DecodeRuneInString(s.source[s.start:])
		s.cursor = s.start + size
		char = string(r)
	}
	s.errors = append(s.errors, Error{Kind: UnexpectedCharacter, Line: s.line, Char: char})
}

func (s *Scanner) add(kind Kind) {
	s.tokens = append(s.tokens, NewToken(kind, s.source[s.start:s.cursor], s.line))
}

func (s *Scanner) advance() byte {
	ch := s.source[s.cursor]
	s.cursor++
	return ch
}

func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.source[s.cursor] != expected {
		return false
	}
	s.cursor++
	return true
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.cursor]
}

func (s *Scanner) peekNext() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

func (s *Scanner) atEnd() bool {
	return s.cursor >= len(s.source)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isAlphaNumeric(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}
