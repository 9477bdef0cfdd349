package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/leapstack-labs/tacloc/pkg/token"
)

var validOutputs = []string{"auto", "text", "json", "yaml"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !slices.Contains(validOutputs, c.Output) {
		return fmt.Errorf("invalid output %q (want one of %s)", c.Output, strings.Join(validOutputs, ", "))
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	for _, word := range c.Reserved {
		if !isWord(word) {
			return fmt.Errorf("reserved word %q is not a plain identifier", word)
		}
	}
	return nil
}

// Level returns the slog level for LogLevel. Verbose forces debug.
func (c *Config) Level() (slog.Level, error) {
	if c.Verbose {
		return slog.LevelDebug, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// isWord reports whether s lexes as a single undotted identifier that is not
// a builtin keyword. Words registered earlier are accepted again.
func isWord(s string) bool {
	if s == "" || token.LookupIdent(s) != token.IDENT {
		return false
	}
	for i, r := range s {
		if i == 0 && !token.IsIdentStart(r) {
			return false
		}
		if !token.IsIdentRune(r) {
			return false
		}
	}
	return true
}
