// Package core wires the mission pipeline together: lex, parse,
// evaluate, render. The stages run to completion in sequence and share
// nothing between invocations, so concurrent runs need no locking.
package core

import (
	"github.com/jdrake/marsrover/core/parser"
	"github.com/jdrake/marsrover/core/report"
	"github.com/jdrake/marsrover/core/sim"
)

// Run executes the full pipeline over one already-materialized input
// buffer. source names the input in diagnostics (typically the file
// path). On any error the rendered output is empty: the pipeline never
// produces partial results.
func Run(source, input string, limits sim.Limits) (string, error) {
	mission, err := parser.Parse(source, input)
	if err != nil {
		return "", err
	}

	outcomes, err := sim.Evaluate(mission, limits)
	if err != nil {
		return "", err
	}

	return report.Render(outcomes), nil
}

// Check runs only the front half of the pipeline, returning the parsed
// mission without evaluating it.
func Check(source, input string) (*parser.Mission, error) {
	return parser.Parse(source, input)
}
