// Package sim evaluates a parsed mission: it folds each robot's
// command sequence through the shared world state and reports where
// every robot ends up.
package sim

import (
	"fmt"

	"github.com/jdrake/marsrover/core/parser"
)

// Limits caps the inputs the evaluator will accept. Values come from
// the configuration file; see core/config.
type Limits struct {
	// MaxCoordinate is the largest allowed grid coordinate.
	MaxCoordinate int
	// MaxInstructions is the largest allowed command count per robot.
	MaxInstructions int
}

// Outcome is the final pose of one robot. Lost robots report the last
// pose they held on the grid.
type Outcome struct {
	X       int
	Y       int
	Heading parser.Heading
	Lost    bool
}

// SemanticError reports a structurally valid record the evaluator
// rejected. Record counts robot scripts from 1 in input order; the
// grid declaration is record 0.
type SemanticError struct {
	Source string
	Record int
	Reason string
}

func (e *SemanticError) Error() string {
	if e.Record == 0 {
		return fmt.Sprintf("%s: grid: %s", e.Source, e.Reason)
	}
	return fmt.Sprintf("%s: robot %d: %s", e.Source, e.Record, e.Reason)
}

type point struct {
	x, y int
}

// world owns the grid bounds and the scents left by lost robots. A
// world is private to one Evaluate call; nothing is shared between
// runs.
type world struct {
	maxX, maxY int
	scents     map[point]bool
}

func newWorld(source string, grid parser.Grid, limits Limits) (*world, error) {
	switch {
	case grid.MaxX < 0 || grid.MaxY < 0:
		return nil, &SemanticError{
			Source: source,
			Reason: fmt.Sprintf("dimensions %d %d are negative", grid.MaxX, grid.MaxY),
		}
	case grid.MaxX > limits.MaxCoordinate || grid.MaxY > limits.MaxCoordinate:
		return nil, &SemanticError{
			Source: source,
			Reason: fmt.Sprintf("dimensions %d %d exceed the maximum coordinate %d", grid.MaxX, grid.MaxY, limits.MaxCoordinate),
		}
	}
	return &world{
		maxX:   grid.MaxX,
		maxY:   grid.MaxY,
		scents: make(map[point]bool),
	}, nil
}

func (w *world) contains(p point) bool {
	return p.x >= 0 && p.y >= 0 && p.x <= w.maxX && p.y <= w.maxY
}

// run executes one robot's commands against the world, mutating only
// the scent set. Each command application is a pure function of the
// current pose and the command.
func (w *world) run(robot parser.Robot) Outcome {
	x, y, heading := robot.X, robot.Y, robot.Heading

	for _, command := range robot.Commands {
		switch command {
		case parser.Left:
			heading = left(heading)
		case parser.Right:
			heading = right(heading)
		case parser.Forward:
			dx, dy := delta(heading)
			target := point{x: x + dx, y: y + dy}
			if w.scents[target] {
				// A previous robot was lost moving here; the
				// command is ignored.
				continue
			}
			if !w.contains(target) {
				w.scents[target] = true
				return Outcome{X: x, Y: y, Heading: heading, Lost: true}
			}
			x, y = target.x, target.y
		}
	}
	return Outcome{X: x, Y: y, Heading: heading}
}

func left(h parser.Heading) parser.Heading {
	switch h {
	case parser.North:
		return parser.West
	case parser.West:
		return parser.South
	case parser.South:
		return parser.East
	default:
		return parser.North
	}
}

func right(h parser.Heading) parser.Heading {
	switch h {
	case parser.North:
		return parser.East
	case parser.East:
		return parser.South
	case parser.South:
		return parser.West
	default:
		return parser.North
	}
}

func delta(h parser.Heading) (dx, dy int) {
	switch h {
	case parser.North:
		return 0, 1
	case parser.East:
		return 1, 0
	case parser.South:
		return 0, -1
	default:
		return -1, 0
	}
}
