package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/tacloc/internal/cli/output"
	"github.com/leapstack-labs/tacloc/pkg/core"
	"github.com/leapstack-labs/tacloc/pkg/format"
	"github.com/leapstack-labs/tacloc/pkg/parser"
	"github.com/spf13/cobra"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	Tokens bool // Include the token stream
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [clause...]",
		Short: "Parse location clauses and show their structure",
		Long: `Parse each location clause and show the location it denotes.

Clauses are taken from the arguments, or one per line from stdin when no
arguments are given.

Output adapts to environment:
  - Terminal: Table
  - Piped/Scripted: JSON
  - YAML: with --output yaml`,
		Example: `  # Parse a single clause
  tacloc parse 'at h {1 2}'

  # Parse several clauses as YAML
  tacloc parse -o yaml 'at *' 'at (h₁, h₂) ⊢ {2}'

  # Show the token stream
  tacloc parse --tokens 'at h |- {-1}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Tokens, "tokens", false, "Include the token stream of each clause")

	return cmd
}

// parseEntry is the structured output for one clause.
type parseEntry struct {
	Input     string         `json:"input" yaml:"input"`
	Location  *core.Document `json:"location,omitempty" yaml:"location,omitempty"`
	Canonical string         `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Tokens    []tokenEntry   `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	Error     *Diagnostic    `json:"error,omitempty" yaml:"error,omitempty"`

	loc core.Location
}

type tokenEntry struct {
	Type     string `json:"type" yaml:"type"`
	Literal  string `json:"literal,omitempty" yaml:"literal,omitempty"`
	Position string `json:"position" yaml:"position"`
}

func runParse(cmd *cobra.Command, opts *ParseOptions, args []string) error {
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

	entries := make([]parseEntry, 0, len(clauses))
	failed := 0
	for _, c := range clauses {
		entry := parseEntry{Input: c.Text}
		if opts.Tokens {
			entry.Tokens = tokenEntries(c.Text)
		}

		loc, err := parser.Parse(c.Text)
		if err != nil {
			d := newDiagnostic(source, c.Line, err)
			entry.Error = &d
			failed++
			cmdCtx.Logger.Debug("parse failed", "input", c.Text, "error", err)
		} else {
			doc := core.Describe(loc)
			entry.Location = &doc
			entry.Canonical = format.Location(loc, cmdCtx.FormatOptions()...)
			entry.loc = loc
			cmdCtx.Logger.Debug("parsed clause", "input", c.Text, "kind", loc.Kind())
		}
		entries = append(entries, entry)
	}

	handled, err := r.Structured(entries)
	if err != nil {
		return err
	}
	if !handled {
		renderParseText(r, entries, opts.Tokens)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d clauses failed to parse", failed, len(entries))
	}
	return nil
}

func tokenEntries(input string) []tokenEntry {
	tokens := parser.Tokenize(input)
	entries := make([]tokenEntry, len(tokens))
	for i, tok := range tokens {
		entries[i] = tokenEntry{
			Type:     tok.Type.String(),
			Literal:  tok.Literal,
			Position: tok.Pos.String(),
		}
	}
	return entries
}

func renderParseText(r *output.Renderer, entries []parseEntry, withTokens bool) {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Input", "Kind", "Goal", "Hypotheses", "Canonical"})

	for i, e := range entries {
		if e.Error != nil {
			t.AppendRow(table.Row{i + 1, e.Input, "error", "", "", ""})
			continue
		}
		t.AppendRow(table.Row{
			i + 1,
			e.Input,
			e.loc.Kind().String(),
			describeGoal(e.loc),
			describeHypotheses(e.loc),
			e.Canonical,
		})
	}
	t.Render()

	if withTokens {
		for i, e := range entries {
			r.Println("")
			r.Println(r.Styles().Bold.Render(fmt.Sprintf("Tokens of #%d", i+1)))
			renderTokens(r, e.Tokens)
		}
	}

	for _, e := range entries {
		if e.Error != nil {
			renderDiagnostic(r, *e.Error)
		}
	}
}

func renderTokens(r *output.Renderer, tokens []tokenEntry) {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Type", "Literal", "Position"})
	for _, tok := range tokens {
		t.AppendRow(table.Row{tok.Type, tok.Literal, tok.Position})
	}
	t.Render()
}

// describeGoal summarizes which goal occurrences a location selects.
func describeGoal(loc core.Location) string {
	occ, ok := core.GoalOccurrence(loc)
	switch {
	case !ok:
		return "-"
	case occ.IsAll():
		return "all"
	default:
		return format.Occurrence(occ)
	}
}

// describeHypotheses summarizes which hypotheses a location selects.
func describeHypotheses(loc core.Location) string {
	if loc.IsWildcard() {
		return "*"
	}
	targets := loc.Targets()
	if len(targets) == 0 {
		return "-"
	}
	parts := make([]string, len(targets))
	for i, t := range targets {
		parts[i] = format.Name(t.Name)
		if !t.Occurrence.IsAll() {
			parts[i] += " " + format.Occurrence(t.Occurrence)
		}
	}
	return strings.Join(parts, ", ")
}
