package commands

import (
	"fmt"

	"github.com/leapstack-labs/tacloc/pkg/format"
	"github.com/leapstack-labs/tacloc/pkg/parser"
	"github.com/spf13/cobra"
)

// NewFmtCommand creates the fmt command.
func NewFmtCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt [clause...]",
		Short: "Print location clauses in canonical form",
		Long: `Parse each location clause and print it back in canonical form, one per
line. A clause without "at" acts on the goal and prints as an empty line.

Clauses are taken from the arguments, or one per line from stdin when no
arguments are given. Use --ascii to spell the turnstile "|-".`,
		Example: `  tacloc fmt 'at  ( h₁ ,h₂{ -1 })|-{2}'
  # at (h₁, h₂ {-1}) ⊢ {2}

  echo 'at * ⊢ *' | tacloc fmt
  # at *`,
		RunE: runFmt,
	}
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	clauses, err := clauseArgs(cmd, args)
	if err != nil {
		return err
	}
	source := argName
	if len(args) == 0 {
		source = stdinName
	}

	failed := 0
	for _, c := range clauses {
		loc, err := parser.Parse(c.Text)
		if err != nil {
			renderDiagnostic(r, newDiagnostic(source, c.Line, err))
			failed++
			continue
		}
		r.Println(format.Location(loc, cmdCtx.FormatOptions()...))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d clauses failed to parse", failed, len(clauses))
	}
	return nil
}
