package commands

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/tacloc/internal/cli/output"
	"github.com/leapstack-labs/tacloc/pkg/parser"
)

// Pseudo file names for clauses that do not come from a file.
const (
	stdinName = "<stdin>"
	argName   = "<arg>"
)

// Diagnostic is a parse failure located in a file.
type Diagnostic struct {
	File    string `json:"file" yaml:"file"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

// newDiagnostic locates err, reported for the clause on line of file.
func newDiagnostic(file string, line int, err error) Diagnostic {
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return Diagnostic{
			File:    file,
			Line:    line + pe.Pos.Line - 1,
			Column:  pe.Pos.Column,
			Kind:    pe.Kind.String(),
			Message: pe.Message,
		}
	}
	return Diagnostic{File: file, Line: line, Column: 1, Kind: "error", Message: err.Error()}
}

// String renders the diagnostic as "file:line:col: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.File, d.Line, d.Column, d.Message)
}

// renderDiagnostic writes d to the renderer's error output, styled when
// attached to a terminal.
func renderDiagnostic(r *output.Renderer, d Diagnostic) {
	s := r.Styles()
	_, _ = fmt.Fprintf(r.ErrWriter(), "%s:%s: %s\n",
		s.Path.Render(d.File),
		s.Position.Render(fmt.Sprintf("%d:%d", d.Line, d.Column)),
		s.Error.Render(d.Message),
	)
}
