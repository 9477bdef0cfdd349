package commands

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/tacloc/internal/cli/config"
	clitestutil "github.com/leapstack-labs/tacloc/internal/cli/testutil"
	"github.com/leapstack-labs/tacloc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCheckFiles(t *testing.T) (good, bad string) {
	t.Helper()
	dir := t.TempDir()
	good = clitestutil.WriteClauseFile(t, dir, "good.tac",
		"at *",
		"",
		"-- goal occurrences",
		"at h {1 2}",
	)
	bad = clitestutil.WriteClauseFile(t, dir, "bad.tac",
		"at *",
		"at h {1 -2}",
		"at (a, b",
	)
	return good, bad
}

func TestCheck_Clean(t *testing.T) {
	loadTestConfig(t, "-o", "text")
	good, _ := writeCheckFiles(t)

	out, errOut, err := executeCommand(NewCheckCommand(), "", good)
	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.Equal(t, "✓ 2 clauses in 1 files OK\n", out)
}

func TestCheck_Diagnostics(t *testing.T) {
	loadTestConfig(t, "-o", "text", "--workers", "2")
	good, bad := writeCheckFiles(t)

	out, errOut, err := executeCommand(NewCheckCommand(), "", good, bad)
	require.ErrorIs(t, err, ErrCheckFailed)

	assert.Equal(t,
		bad+":2:9: cannot mix positive and negative occurrences\n"+
			bad+":3:9: ')' expected\n",
		errOut)
	assert.Equal(t, "Found 2 errors in 5 clauses\n", out)
}

func TestCheck_JSON(t *testing.T) {
	loadTestConfig(t, "-o", "json")
	good, bad := writeCheckFiles(t)

	out, _, err := executeCommand(NewCheckCommand(), "", bad, good)
	require.ErrorIs(t, err, ErrCheckFailed)

	var result CheckOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result), out)
	assert.Equal(t, 2, result.Files)
	assert.Equal(t, 5, result.Clauses)
	require.Len(t, result.Diagnostics, 2)
	assert.Equal(t, Diagnostic{
		File:    bad,
		Line:    2,
		Column:  9,
		Kind:    "mixed occurrence signs",
		Message: "cannot mix positive and negative occurrences",
	}, result.Diagnostics[0])
	assert.Equal(t, "missing ')'", result.Diagnostics[1].Kind)
}

func TestCheck_JSONCleanHasEmptyDiagnostics(t *testing.T) {
	loadTestConfig(t, "-o", "json")
	good, _ := writeCheckFiles(t)

	out, _, err := executeCommand(NewCheckCommand(), "", good)
	require.NoError(t, err)
	assert.JSONEq(t, `{"files": 1, "clauses": 2, "diagnostics": []}`, out)
}

func TestCheck_MissingFile(t *testing.T) {
	loadTestConfig(t)

	_, _, err := executeCommand(NewCheckCommand(), "", filepath.Join(t.TempDir(), "missing.tac"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}

func TestCheck_RequiresFile(t *testing.T) {
	loadTestConfig(t)

	_, _, err := executeCommand(NewCheckCommand(), "")
	require.Error(t, err)
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{File: "a.tac", Line: 3, Column: 7, Message: "')' expected"}
	assert.Equal(t, "a.tac:3:7: ')' expected", d.String())
}

func TestCheck_DebugLogging(t *testing.T) {
	loadTestConfig(t, "-o", "json", "--workers", "3")
	good, _ := writeCheckFiles(t)

	logger, logs := testutil.NewCaptureLogger()
	cmd := NewCheckCommand()
	cmd.SetContext(context.WithValue(context.Background(), config.LoggerKey(), logger))

	_, _, err := executeCommand(cmd, "", good)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `msg="checking clauses" files=1 clauses=2 workers=3`)
}
