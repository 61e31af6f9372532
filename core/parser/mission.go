// Package parser turns the token stream of a mission file into an
// ordered sequence of validated records: one grid declaration followed
// by zero or more robot scripts.
package parser

import (
	"fmt"

	"github.com/jdrake/marsrover/core/lexer"
)

// Command is a single robot instruction.
type Command byte

const (
	Left    Command = 'L'
	Right   Command = 'R'
	Forward Command = 'F'
)

func (c Command) String() string { return string(rune(c)) }

// MarshalJSON renders the command as its input letter so that
// marshaled missions read like the source text.
func (c Command) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// Heading is a compass orientation. The zero value is North.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return fmt.Sprintf("Heading(%d)", uint8(h))
	}
}

// MarshalJSON renders the heading as its input letter.
func (h Heading) MarshalJSON() ([]byte, error) {
	return []byte(`"` + h.String() + `"`), nil
}

// Grid declares the upper-right corner of the world; the lower-left
// corner is always (0, 0).
type Grid struct {
	MaxX int       `json:"max_x"`
	MaxY int       `json:"max_y"`
	Pos  lexer.Pos `json:"pos"`
}

// Robot is one parsed robot script: a start pose plus the command
// sequence to execute. Commands preserve input order.
type Robot struct {
	X        int       `json:"x"`
	Y        int       `json:"y"`
	Heading  Heading   `json:"heading"`
	Commands []Command `json:"commands"`
	Pos      lexer.Pos `json:"pos"`
}

// Mission is the fully parsed record sequence for one input.
type Mission struct {
	Source string  `json:"source"`
	Grid   Grid    `json:"grid"`
	Robots []Robot `json:"robots"`
}

// SyntaxError reports a structurally invalid token with what the
// parser expected in its place.
type SyntaxError struct {
	Source   string
	Pos      lexer.Pos
	Expected string
	Found    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%s: expected %s, found %s", e.Source, e.Pos, e.Expected, e.Found)
}
