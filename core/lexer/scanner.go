package lexer

import "unicode/utf8"

// Scanner performs single-pass lexical analysis over one mission input.
// It never backtracks and holds no state other than its cursor, so
// scanning the same text twice from two scanners yields identical
// streams.
type Scanner struct {
	source string // logical name for diagnostics, e.g. the file path
	input  string
	cursor int
	line   int
	col    int
}

// NewScanner creates a scanner over an already-materialized input
// buffer. source names the input in diagnostics.
func NewScanner(source, input string) *Scanner {
	return &Scanner{
		source: source,
		input:  input,
		line:   1,
		col:    1,
	}
}

// Next returns the next token. After the input is exhausted it returns
// an EOF token on every call.
func (s *Scanner) Next() (Token, error) {
	s.skipBlanks()

	pos := Pos{Line: s.line, Column: s.col}

	if s.cursor >= len(s.input) {
		return Token{Kind: EOF, Pos: pos}, nil
	}

	ch := s.input[s.cursor]
	switch {
	case ch == '\n':
		s.advance(1)
		s.line++
		s.col = 1
		return Token{Kind: Newline, Pos: pos}, nil

	case ch == '\r' && s.peek(1) == '\n':
		s.advance(2)
		s.line++
		s.col = 1
		return Token{Kind: Newline, Pos: pos}, nil

	case isDigit(ch) || (ch == '-' && isDigit(s.peek(1))):
		start := s.cursor
		s.advance(1)
		for s.cursor < len(s.input) && isDigit(s.input[s.cursor]) {
			s.advance(1)
		}
		return Token{Kind: Number, Text: s.input[start:s.cursor], Pos: pos}, nil

	case isLetter(ch):
		start := s.cursor
		for s.cursor < len(s.input) && isLetter(s.input[s.cursor]) {
			s.advance(1)
		}
		return Token{Kind: Word, Text: s.input[start:s.cursor], Pos: pos}, nil

	default:
		r, _ := utf8.DecodeRuneInString(s.input[s.cursor:])
		return Token{}, &LexicalError{Source: s.source, Pos: pos, Rune: r}
	}
}

func (s *Scanner) skipBlanks() {
	for s.cursor < len(s.input) {
		switch s.input[s.cursor] {
		case ' ', '\t':
			s.advance(1)
		default:
			return
		}
	}
}

func (s *Scanner) peek(off int) byte {
	if s.cursor+off >= len(s.input) {
		return 0
	}
	return s.input[s.cursor+off]
}

func (s *Scanner) advance(n int) {
	s.cursor += n
	s.col += n
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}
