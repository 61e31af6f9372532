package parser

import (
	"fmt"
	"strconv"

	"github.com/jdrake/marsrover/core/lexer"
)

// Parse lexes and parses one complete mission input. It is a single
// forward pass with one token of lookahead: the first malformed unit
// aborts the parse, and a successful parse has consumed every token up
// to end of input.
func Parse(source, input string) (*Mission, error) {
	p := &parser{
		source:  source,
		scanner: lexer.NewScanner(source, input),
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseMission()
}

type parser struct {
	source  string
	scanner *lexer.Scanner
	tok     lexer.Token // one-token lookahead
}

func (p *parser) advance() error {
	tok, err := p.scanner.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) parseMission() (*Mission, error) {
	if err := p.skipBlankLines(); err != nil {
		return nil, err
	}

	grid, err := p.parseGrid()
	if err != nil {
		return nil, err
	}

	mission := &Mission{Source: p.source, Grid: grid}
	for {
		if err := p.skipBlankLines(); err != nil {
			return nil, err
		}
		if p.tok.Kind == lexer.EOF {
			return mission, nil
		}

		robot, err := p.parseRobot()
		if err != nil {
			return nil, err
		}
		mission.Robots = append(mission.Robots, robot)
	}
}

// parseGrid consumes the "maxX maxY" declaration line.
func (p *parser) parseGrid() (Grid, error) {
	pos := p.tok.Pos
	maxX, err := p.expectInt("grid width")
	if err != nil {
		return Grid{}, err
	}
	maxY, err := p.expectInt("grid height")
	if err != nil {
		return Grid{}, err
	}
	if err := p.expectLineEnd(); err != nil {
		return Grid{}, err
	}
	return Grid{MaxX: maxX, MaxY: maxY, Pos: pos}, nil
}

// parseRobot consumes one robot block: the "x y H" start line followed
// immediately by a command line. A blank line in place of the command
// line means an empty command sequence, but end of input there is an
// error: every robot must at least have a line to read commands from.
func (p *parser) parseRobot() (Robot, error) {
	pos := p.tok.Pos

	x, err := p.expectInt("robot x coordinate")
	if err != nil {
		return Robot{}, err
	}
	y, err := p.expectInt("robot y coordinate")
	if err != nil {
		return Robot{}, err
	}
	heading, err := p.expectHeading()
	if err != nil {
		return Robot{}, err
	}
	if err := p.expectLineEnd(); err != nil {
		return Robot{}, err
	}

	robot := Robot{X: x, Y: y, Heading: heading, Pos: pos}
	switch p.tok.Kind {
	case lexer.Word:
		robot.Commands, err = p.parseCommands()
		if err != nil {
			return Robot{}, err
		}
		if err := p.expectLineEnd(); err != nil {
			return Robot{}, err
		}
	case lexer.Newline:
		// Blank line: robot with no commands.
	default:
		return Robot{}, p.syntaxError("command line", p.tok)
	}
	return robot, nil
}

func (p *parser) parseCommands() ([]Command, error) {
	tok := p.tok
	commands := make([]Command, 0, len(tok.Text))
	for i := 0; i < len(tok.Text); i++ {
		switch c := tok.Text[i]; c {
		case 'L', 'R', 'F':
			commands = append(commands, Command(c))
		default:
			return nil, &SyntaxError{
				Source:   p.source,
				Pos:      lexer.Pos{Line: tok.Pos.Line, Column: tok.Pos.Column + i},
				Expected: "command (L, R or F)",
				Found:    fmt.Sprintf("%q", rune(c)),
			}
		}
	}
	return commands, p.advance()
}

func (p *parser) expectInt(what string) (int, error) {
	tok := p.tok
	if tok.Kind != lexer.Number {
		return 0, p.syntaxError(what, tok)
	}
	n, err := strconv.Atoi(tok.Text)
	if err != nil {
		return 0, &SyntaxError{
			Source:   p.source,
			Pos:      tok.Pos,
			Expected: what,
			Found:    fmt.Sprintf("malformed number %q", tok.Text),
		}
	}
	return n, p.advance()
}

func (p *parser) expectHeading() (Heading, error) {
	tok := p.tok
	if tok.Kind != lexer.Word {
		return North, p.syntaxError("orientation (N, E, S or W)", tok)
	}
	var heading Heading
	switch tok.Text {
	case "N":
		heading = North
	case "E":
		heading = East
	case "S":
		heading = South
	case "W":
		heading = West
	default:
		return North, p.syntaxError("orientation (N, E, S or W)", tok)
	}
	return heading, p.advance()
}

// expectLineEnd consumes a newline. End of input also terminates a
// line so that files without a trailing newline parse.
func (p *parser) expectLineEnd() error {
	switch p.tok.Kind {
	case lexer.Newline:
		return p.advance()
	case lexer.EOF:
		return nil
	default:
		return p.syntaxError("end of line", p.tok)
	}
}

func (p *parser) skipBlankLines() error {
	for p.tok.Kind == lexer.Newline {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) syntaxError(expected string, tok lexer.Token) error {
	return &SyntaxError{
		Source:   p.source,
		Pos:      tok.Pos,
		Expected: expected,
		Found:    describe(tok),
	}
}

func describe(tok lexer.Token) string {
	switch tok.Kind {
	case lexer.Number, lexer.Word:
		return fmt.Sprintf("%s %q", tok.Kind, tok.Text)
	default:
		return tok.Kind.String()
	}
}
