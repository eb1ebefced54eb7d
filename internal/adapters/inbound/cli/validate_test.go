package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tunelint/tunelint/internal/adapters/inbound/cli"
	"github.com/tunelint/tunelint/internal/domain"
)

const validLine = `{"contents":[{"role":"user","parts":[{"text":"hi"}]}]}`

func writeJSONL(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestValidateCommand_PassingFile(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONL(t, dir, "ok.jsonl", validLine+"\n"+validLine+"\n")

	out, err := runCommand(t, "validate", path, "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Validating:")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "All files passed")
}

func TestValidateCommand_FailingFileReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONL(t, dir, "bad.jsonl", `{}`+"\n")

	out, err := runCommand(t, "validate", path, "--data", dir)
	require.Error(t, err)
	assert.Contains(t, out, "Line 1: Missing required field 'contents'")
	assert.Contains(t, out, "Validation failed")
}

func TestValidateCommand_BareNameResolvesViaDataDir(t *testing.T) {
	dir := t.TempDir()
	writeJSONL(t, dir, "train.jsonl", validLine+"\n")

	out, err := runCommand(t, "validate", "train.jsonl", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "train.jsonl")
	assert.Contains(t, out, "PASS")
}

func TestValidateCommand_UnresolvableArg(t *testing.T) {
	_, err := runCommand(t, "validate", "missing.jsonl", "--data", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInputNotFound))
}

func TestValidateCommand_ZeroArgsScansDataDir(t *testing.T) {
	dir := t.TempDir()
	writeJSONL(t, dir, "a.jsonl", validLine+"\n")
	writeJSONL(t, dir, "b.jsonl", `not json`+"\n")

	out, err := runCommand(t, "validate", "--data", dir)
	require.Error(t, err)
	assert.Contains(t, out, "a.jsonl")
	assert.Contains(t, out, "b.jsonl")
	assert.Contains(t, out, "Line 1: Invalid JSON syntax")
}

func TestValidateCommand_NoFilesIsWarningNotError(t *testing.T) {
	out, err := runCommand(t, "validate", "--data", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "nothing to validate")
}

func TestValidateCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONL(t, dir, "ok.jsonl", validLine+"\n")

	out, err := runCommand(t, "validate", path, "--data", dir, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"summary"`)
	assert.Contains(t, out, `"lines_checked"`)
}

func TestValidateCommand_MaxDefects(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONL(t, dir, "bad.jsonl", "x\ny\nz\n")

	out, err := runCommand(t, "validate", path, "--data", dir, "--max-defects", "1")
	require.Error(t, err)
	assert.Contains(t, out, "Line 1: Invalid JSON syntax")
	assert.Contains(t, out, "and 2 more")
}

func TestValidateCommand_NoHints(t *testing.T) {
	dir := t.TempDir()
	line := `{"system_instruction":{},"contents":[{"role":"u","parts":[{"text":"x"}]}]}`
	path := writeJSONL(t, dir, "h.jsonl", line+"\n")

	out, err := runCommand(t, "validate", path, "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "did you mean 'systemInstruction'")

	out, err = runCommand(t, "validate", path, "--data", dir, "--no-hints")
	require.NoError(t, err)
	assert.NotContains(t, out, "did you mean")
}

func TestHistoryCommand(t *testing.T) {
	dir := t.TempDir()
	writeJSONL(t, dir, "train.jsonl", validLine+"\n")

	out, err := runCommand(t, "history", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No run history found")

	_, err = runCommand(t, "validate", "--data", dir)
	require.NoError(t, err)

	out, err = runCommand(t, "history", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Run History")
	assert.Contains(t, out, "1 files / 1 lines")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tunelint")
}
