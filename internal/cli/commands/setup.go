package commands

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/tacloc/internal/cli/config"
	"github.com/leapstack-labs/tacloc/internal/cli/output"
	"github.com/leapstack-labs/tacloc/pkg/format"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration
// and the logger stored in the command context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// FormatOptions returns the formatter options selected by the configuration.
func (c *CommandContext) FormatOptions() []format.Option {
	if c.Cfg.ASCII {
		return []format.Option{format.WithASCII()}
	}
	return nil
}

// Helper functions shared across commands

// getConfig returns the current configuration, or defaults when the root
// command has not loaded one.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// clauseLine is one clause read from a file or stdin.
type clauseLine struct {
	Line int
	Text string
}

// readClauses reads one clause per line, skipping blank lines and lines
// that are only a "--" comment.
func readClauses(r io.Reader) ([]clauseLine, error) {
	var clauses []clauseLine
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "--") {
			continue
		}
		clauses = append(clauses, clauseLine{Line: line, Text: scanner.Text()})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read clauses: %w", err)
	}
	return clauses, nil
}

// clauseArgs returns args as clauses, or reads them from stdin when there
// are none.
func clauseArgs(cmd *cobra.Command, args []string) ([]clauseLine, error) {
	if len(args) == 0 {
		return readClauses(cmd.InOrStdin())
	}
	clauses := make([]clauseLine, len(args))
	for i, arg := range args {
		clauses[i] = clauseLine{Line: i + 1, Text: arg}
	}
	return clauses, nil
}
