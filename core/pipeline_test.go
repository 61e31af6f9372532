package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jdrake/marsrover/core/lexer"
	"github.com/jdrake/marsrover/core/parser"
	"github.com/jdrake/marsrover/core/sim"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

var testLimits = sim.Limits{MaxCoordinate: 50, MaxInstructions: 99}

func readSample(t *testing.T) string {
	t.Helper()

	input, err := os.ReadFile(filepath.Join("testdata", "sample.txt"))
	if err != nil {
		t.Fatal(err)
	}
	return string(input)
}

func TestRun(t *testing.T) {
	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)

	out, err := Run("sample.txt", readSample(t), testLimits)
	if err != nil {
		t.Fatal(err)
	}

	g.Assert(t, "sample", []byte(out))
}

func TestRunDeterministic(t *testing.T) {
	input := readSample(t)

	first, err := Run("sample.txt", input, testLimits)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Run("sample.txt", input, testLimits)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, first, second)
}

// Runs share no state, so parallel pipelines over different inputs
// must not observe each other's scents.
func TestRunIsolation(t *testing.T) {
	inputs := map[string]string{
		"lost":     "1 1\n0 1 N\nF\n",
		"survivor": "5 5\n2 2 E\nFF\n",
		"sample":   readSample(t),
	}
	wants := map[string]string{
		"lost":     "0 1 N LOST\n",
		"survivor": "4 2 E\n",
		"sample":   "1 1 E\n3 3 N LOST\n2 3 S\n",
	}

	for tn := range inputs {
		tn := tn
		t.Run(tn, func(t *testing.T) {
			t.Parallel()

			out, err := Run(tn+".txt", inputs[tn], testLimits)
			assert.NoError(t, err)
			assert.Equal(t, wants[tn], out)
		})
	}
}

func TestRunFailFast(t *testing.T) {
	cases := map[string]struct {
		input   string
		wantErr interface{}
	}{
		"lexical":  {input: "5 3\n1 1 E\nRF?F", wantErr: new(*lexer.LexicalError)},
		"syntax":   {input: "5 3\n1 2 3\nF", wantErr: new(*parser.SyntaxError)},
		"semantic": {input: "51 1\n", wantErr: new(*sim.SemanticError)},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			out, err := Run("bad.txt", tc.input, testLimits)

			// No partial output, ever.
			assert.Empty(t, out)
			if !errors.As(err, tc.wantErr) {
				t.Fatalf("wrong error type: %v", err)
			}
		})
	}
}

func TestCheckSkipsEvaluation(t *testing.T) {
	// Semantically invalid but structurally fine: check accepts it.
	mission, err := Check("big.txt", "5000 5000\n")
	assert.NoError(t, err)
	assert.Equal(t, 5000, mission.Grid.MaxX)

	_, err = Check("bad.txt", "5\n")
	assert.Error(t, err)
}
