package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/tacloc/internal/cli/output"
	"github.com/leapstack-labs/tacloc/pkg/format"
	"github.com/leapstack-labs/tacloc/pkg/parser"
	"github.com/spf13/cobra"
)

const replPrompt = "tacloc> "

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse location clauses interactively",
		Long: `Start an interactive session. Each line is parsed as a location clause
and the resulting location is printed with its canonical form.

Type .help for commands, .quit to exit.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     replHistoryFile(),
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	session := newREPLSession(cmdCtx.Renderer, cmdCtx.Cfg.ASCII)

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "tacloc REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if quit := session.eval(line); quit {
			return nil
		}
	}
}

// replHistoryFile returns the history path under the user cache directory,
// or "" to disable history when there is none.
func replHistoryFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	dir = filepath.Join(dir, "tacloc")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return ""
	}
	return filepath.Join(dir, "repl_history")
}

func newREPLCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".ascii"),
		readline.PcItem(".tokens"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
		readline.PcItem("at"),
	)
}

// replSession evaluates REPL input lines.
type replSession struct {
	r     *output.Renderer
	ascii bool
}

func newREPLSession(r *output.Renderer, ascii bool) *replSession {
	return &replSession{r: r, ascii: ascii}
}

// eval handles one input line and reports whether the session should end.
func (s *replSession) eval(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, ".") {
		return s.dotCommand(trimmed)
	}
	s.parse(line)
	return false
}

func (s *replSession) dotCommand(line string) bool {
	command, rest, _ := strings.Cut(line, " ")

	switch strings.ToLower(command) {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.r.Writer())

	case ".ascii":
		s.ascii = !s.ascii
		state := "off"
		if s.ascii {
			state = "on"
		}
		s.r.Printf("ascii turnstile %s\n", state)

	case ".tokens":
		if strings.TrimSpace(rest) == "" {
			s.r.Error("Usage: .tokens <clause>")
			return false
		}
		renderTokens(s.r, tokenEntries(rest))

	default:
		s.r.Error(fmt.Sprintf("Unknown command: %s (type .help for commands)", command))
	}
	return false
}

func (s *replSession) parse(line string) {
	loc, err := parser.Parse(line)
	if err != nil {
		var pe *parser.ParseError
		if errors.As(err, &pe) {
			_, _ = fmt.Fprintf(s.r.ErrWriter(), "%s%s^\n",
				strings.Repeat(" ", len(replPrompt)), strings.Repeat(" ", max(pe.Pos.Column-1, 0)))
			s.r.Error(pe.Message)
			return
		}
		s.r.Error(err.Error())
		return
	}

	var opts []format.Option
	if s.ascii {
		opts = append(opts, format.WithASCII())
	}
	styles := s.r.Styles()
	s.r.Printf("%s  %s\n", styles.Keyword.Render(loc.Kind().String()), format.Location(loc, opts...))
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help             Show this help message
  .ascii            Toggle spelling the turnstile as |-
  .tokens <clause>  Show the tokens of a clause
  .quit / .exit     Exit the REPL

Anything else is parsed as a location clause, for example:
  at h {1 2}
  at (h₁, h₂ {-1}) ⊢ {2}
  at * ⊢
`
	_, _ = fmt.Fprintln(w, help)
}
