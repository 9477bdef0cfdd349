// Package main provides tests for the tacloc CLI.
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leapstack-labs/tacloc/internal/cli"
)

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("version command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "tacloc") {
		t.Errorf("version output should contain 'tacloc', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("help command error = %v", err)
	}

	output := buf.String()
	for _, expected := range []string{"parse", "fmt", "check", "repl", "version", "completion"} {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestFmtPipeline(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := cli.NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("at h{1,2}\nat ( a ,b{-3} ) |- \n"))
	cmd.SetArgs([]string{"fmt"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("fmt command error = %v", err)
	}

	want := "at h {1 2}\nat (a, b {-3}) ⊢\n"
	if got := out.String(); got != want {
		t.Errorf("fmt output = %q, want %q", got, want)
	}
}
