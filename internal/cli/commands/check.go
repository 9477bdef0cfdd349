package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/leapstack-labs/tacloc/internal/cli/output"
	"github.com/leapstack-labs/tacloc/pkg/parser"
	"github.com/spf13/cobra"
)

// ErrCheckFailed is returned by check when any clause fails to parse.
var ErrCheckFailed = errors.New("check failed")

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Watch bool // Re-check when a file changes
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check files of location clauses",
		Long: `Parse every clause in the given files, one clause per line, and report
each failure as file:line:col: message.

Blank lines and lines starting with "--" are skipped. Clauses are parsed
concurrently; --workers bounds the number of parsers running at once.
The command exits non-zero if any clause fails.`,
		Example: `  # Check a file
  tacloc check locations.tac

  # Keep checking as the files change
  tacloc check --watch a.tac b.tac`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-check when a file changes")

	return cmd
}

// CheckOutput is the structured result of a check run.
type CheckOutput struct {
	Files       int          `json:"files" yaml:"files"`
	Clauses     int          `json:"clauses" yaml:"clauses"`
	Diagnostics []Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

func runCheck(cmd *cobra.Command, opts *CheckOptions, files []string) error {
	cmdCtx := NewCommandContext(cmd)
	ctx := cmd.Context()

	result, err := checkFiles(ctx, cmdCtx, files)
	switch {
	case err != nil && !opts.Watch:
		return err
	case err != nil:
		cmdCtx.Renderer.Error(err.Error())
	default:
		if err := renderCheck(cmdCtx.Renderer, result); err != nil {
			return err
		}
	}

	if !opts.Watch {
		if len(result.Diagnostics) > 0 {
			return ErrCheckFailed
		}
		return nil
	}

	w, err := newFileWatcher(files, cmdCtx.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	cmdCtx.Renderer.Println(cmdCtx.Renderer.Styles().Muted.Render("Watching for changes. Press Ctrl+C to stop."))
	return w.Run(ctx, func() {
		result, err := checkFiles(ctx, cmdCtx, files)
		if err != nil {
			cmdCtx.Renderer.Error(err.Error())
			return
		}
		if err := renderCheck(cmdCtx.Renderer, result); err != nil {
			cmdCtx.Logger.Warn("failed to render check result", "error", err)
		}
	})
}

// fileClause is a clause together with where it came from.
type fileClause struct {
	file string
	clauseLine
}

// checkFiles parses every clause of every file concurrently.
func checkFiles(ctx context.Context, cmdCtx *CommandContext, files []string) (*CheckOutput, error) {
	var clauses []fileClause
	for _, file := range files {
		lines, err := readClauseFile(file)
		if err != nil {
			return nil, err
		}
		for _, l := range lines {
			clauses = append(clauses, fileClause{file: file, clauseLine: l})
		}
	}

	inputs := make([]string, len(clauses))
	for i, c := range clauses {
		inputs[i] = c.Text
	}

	cmdCtx.Logger.Debug("checking clauses",
		"files", len(files), "clauses", len(inputs), "workers", cmdCtx.Cfg.Workers)

	results, err := parser.ParseAll(ctx, inputs, cmdCtx.Cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("check interrupted: %w", err)
	}

	out := &CheckOutput{
		Files:       len(files),
		Clauses:     len(clauses),
		Diagnostics: []Diagnostic{},
	}
	for i, res := range results {
		if res.Err != nil {
			out.Diagnostics = append(out.Diagnostics, newDiagnostic(clauses[i].file, clauses[i].Line, res.Err))
		}
	}
	return out, nil
}

func readClauseFile(path string) ([]clauseLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	lines, err := readClauses(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

func renderCheck(r *output.Renderer, result *CheckOutput) error {
	handled, err := r.Structured(result)
	if err != nil || handled {
		return err
	}

	for _, d := range result.Diagnostics {
		renderDiagnostic(r, d)
	}

	if len(result.Diagnostics) == 0 {
		r.Success(fmt.Sprintf("%d clauses in %d files OK", result.Clauses, result.Files))
		return nil
	}
	r.Printf("Found %d errors in %d clauses\n", len(result.Diagnostics), result.Clauses)
	return nil
}
