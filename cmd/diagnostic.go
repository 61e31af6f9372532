package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jdrake/marsrover/core/lexer"
	"github.com/jdrake/marsrover/core/parser"
	"github.com/jdrake/marsrover/core/sim"
)

var errorLabel = color.New(color.FgRed, color.Bold)

// printDiagnostic writes a one-line human-readable error. Pipeline
// errors get a label naming the stage that rejected the input; colors
// are stripped automatically when w is not a terminal.
func printDiagnostic(w io.Writer, err error) {
	var (
		lexErr *lexer.LexicalError
		synErr *parser.SyntaxError
		semErr *sim.SemanticError
	)

	label := "error"
	switch {
	case errors.As(err, &lexErr):
		label = "lexical error"
	case errors.As(err, &synErr):
		label = "syntax error"
	case errors.As(err, &semErr):
		label = "semantic error"
	}

	errorLabel.Fprintf(w, "%s:", label)
	fmt.Fprintf(w, " %v\n", err)
}
