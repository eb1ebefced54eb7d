package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tunelint/tunelint/internal/adapters/outbound/dataset"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validLine = `{"contents":[{"role":"user","parts":[{"text":"hi"}]}]}`

func TestScanFile_AllValid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ok.jsonl",
		validLine+"\n"+validLine+"\n"+validLine+"\n")

	report, err := dataset.New().ScanFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, report.LinesChecked)
	assert.Equal(t, 0, report.LinesFailed)
	assert.Empty(t, report.Defects)
	assert.True(t, report.Passed())
}

func TestScanFile_BlankLinesPreservePhysicalNumbering(t *testing.T) {
	// 5 physical lines, line 3 blank, line 5 missing 'contents'.
	content := validLine + "\n" + validLine + "\n\n" + validLine + "\n" + `{}` + "\n"
	path := writeFile(t, t.TempDir(), "mixed.jsonl", content)

	report, err := dataset.New().ScanFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, report.LinesChecked)
	assert.Equal(t, 1, report.LinesFailed)
	require.Len(t, report.Defects, 1)
	assert.Equal(t, "Line 5: Missing required field 'contents'", report.Defects[0].String())
}

func TestScanFile_WhitespaceOnlyLinesSkipped(t *testing.T) {
	content := "   \n" + validLine + "\n\t\n"
	path := writeFile(t, t.TempDir(), "ws.jsonl", content)

	report, err := dataset.New().ScanFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, report.LinesChecked)
	assert.True(t, report.Passed())
}

func TestScanFile_DefectsInFileOrder(t *testing.T) {
	content := "not json\n" + validLine + "\n" + `{"contents":[]}` + "\n"
	path := writeFile(t, t.TempDir(), "bad.jsonl", content)

	report, err := dataset.New().ScanFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, report.LinesChecked)
	assert.Equal(t, 2, report.LinesFailed)
	require.Len(t, report.Defects, 2)
	assert.Equal(t, "Line 1: Invalid JSON syntax", report.Defects[0].String())
	assert.Equal(t, "Line 3: 'contents' array is empty", report.Defects[1].String())
}

func TestScanFile_Hints(t *testing.T) {
	content := `{"system_instruction":{"role":"s","parts":[]},"contents":[{"role":"u","parts":[{"text":"x"}]}]}` + "\n"
	path := writeFile(t, t.TempDir(), "hints.jsonl", content)

	report, err := dataset.New().ScanFile(path)
	require.NoError(t, err)
	require.Len(t, report.Hints, 1)
	assert.Contains(t, report.Hints[0].Message, "systemInstruction")
	// Near-miss keys are hints, not defects.
	assert.True(t, report.Passed())

	sc := dataset.New()
	sc.Hints = false
	report, err = sc.ScanFile(path)
	require.NoError(t, err)
	assert.Empty(t, report.Hints)
}

func TestScanFile_LongLine(t *testing.T) {
	// Longer than bufio.Scanner's default 64KB token limit.
	long := `{"contents":[{"role":"user","parts":[{"text":"` + strings.Repeat("a", 200*1024) + `"}]}]}`
	path := writeFile(t, t.TempDir(), "long.jsonl", long+"\n"+validLine+"\n")

	report, err := dataset.New().ScanFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, report.LinesChecked)
	assert.True(t, report.Passed())
}

func TestScanFile_MissingFile(t *testing.T) {
	_, err := dataset.New().ScanFile(filepath.Join(t.TempDir(), "nope.jsonl"))
	assert.Error(t, err)
}
