// Package lexer splits raw mission text into a stream of typed tokens.
//
// The instruction format is line oriented, so newlines are significant
// and produce their own tokens; spaces and tabs only separate tokens.
package lexer

import "fmt"

// Kind classifies a lexical unit of the mission format.
type Kind uint8

const (
	// EOF marks the end of the token stream. Every stream ends with
	// exactly one EOF token.
	EOF Kind = iota
	// Number is a base-10 integer literal, optionally signed.
	Number
	// Word is an unbroken run of letters, e.g. an orientation or a
	// command string.
	Word
	// Newline is a line terminator. Consecutive newlines are not
	// collapsed; the parser decides what a blank line means.
	Newline
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of input"
	case Number:
		return "number"
	case Word:
		return "word"
	case Newline:
		return "end of line"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Pos is a 1-indexed location in the source text.
type Pos struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is one classified lexical unit. Tokens are immutable once
// produced.
type Token struct {
	Kind Kind
	// Text is the literal source text of the token. Empty for Newline
	// and EOF.
	Text string
	Pos  Pos
}

// LexicalError reports a character that matches no token class.
type LexicalError struct {
	Source string
	Pos    Pos
	Rune   rune
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("%s:%s: unrecognized character %q", e.Source, e.Pos, e.Rune)
}
