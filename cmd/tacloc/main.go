// Package main provides the CLI for the tacloc tactic location parser.
package main

import (
	"os"

	"github.com/leapstack-labs/tacloc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
