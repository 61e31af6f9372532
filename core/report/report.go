// Package report renders evaluation outcomes in the mission output
// format: one "x y H" line per robot, with " LOST" appended for robots
// that fell off the grid.
package report

import (
	"fmt"
	"strings"

	"github.com/jdrake/marsrover/core/sim"
)

// Render produces the report text for the outcomes, in order. It is a
// pure function: equal outcomes render to byte-identical text.
func Render(outcomes []sim.Outcome) string {
	var b strings.Builder
	for _, o := range outcomes {
		fmt.Fprintf(&b, "%d %d %s", o.X, o.Y, o.Heading)
		if o.Lost {
			b.WriteString(" LOST")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
