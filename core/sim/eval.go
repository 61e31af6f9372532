package sim

import (
	"fmt"

	"github.com/jdrake/marsrover/core/parser"
)

// Evaluate folds the mission's robot scripts left to right through a
// fresh world. Robots run strictly in input order, exactly once each;
// the first semantic violation aborts the run with no partial result.
// Evaluation is deterministic: the same mission and limits always
// produce the same outcomes.
func Evaluate(mission *parser.Mission, limits Limits) ([]Outcome, error) {
	w, err := newWorld(mission.Source, mission.Grid, limits)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(mission.Robots))
	for i, robot := range mission.Robots {
		if err := validate(mission.Source, i+1, robot, w, limits); err != nil {
			return nil, err
		}
		outcomes = append(outcomes, w.run(robot))
	}
	return outcomes, nil
}

func validate(source string, record int, robot parser.Robot, w *world, limits Limits) error {
	if !w.contains(point{x: robot.X, y: robot.Y}) {
		return &SemanticError{
			Source: source,
			Record: record,
			Reason: fmt.Sprintf("start position %d %d is outside the grid", robot.X, robot.Y),
		}
	}
	if len(robot.Commands) > limits.MaxInstructions {
		return &SemanticError{
			Source: source,
			Record: record,
			Reason: fmt.Sprintf("%d commands exceed the maximum of %d", len(robot.Commands), limits.MaxInstructions),
		}
	}
	return nil
}
