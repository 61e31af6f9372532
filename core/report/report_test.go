package report

import (
	"path/filepath"
	"testing"

	"github.com/jdrake/marsrover/core/parser"
	"github.com/jdrake/marsrover/core/sim"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", Render(nil))
}

func TestRender(t *testing.T) {
	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)

	cases := map[string][]sim.Outcome{
		"sample": {
			{X: 1, Y: 1, Heading: parser.East},
			{X: 3, Y: 3, Heading: parser.North, Lost: true},
			{X: 2, Y: 3, Heading: parser.South},
		},
		"single": {
			{X: 0, Y: 0, Heading: parser.West},
		},
		"all_lost": {
			{X: 50, Y: 50, Heading: parser.North, Lost: true},
			{X: 0, Y: 0, Heading: parser.South, Lost: true},
		},
	}

	for tn, outcomes := range cases {
		t.Run(tn, func(t *testing.T) {
			g.Assert(t, tn, []byte(Render(outcomes)))
		})
	}
}
