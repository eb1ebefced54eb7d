package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/tunelint/tunelint/internal/domain"
)

// maxLineSize caps a single line read. Fine-tuning examples are one-line
// JSON documents and can get long.
const maxLineSize = 4 * 1024 * 1024

// JSONLScanner implements domain.DatasetScanner by reading a file line by
// line and running the line validator on every non-blank line.
type JSONLScanner struct {
	// Hints enables the near-miss key pass on valid-JSON lines.
	Hints bool
}

func New() *JSONLScanner {
	return &JSONLScanner{Hints: true}
}

// ScanFile validates one JSONL file. Physical 1-based line numbers are
// preserved across blank lines so reported positions match the file on
// disk; blank lines are neither validated nor counted as checked.
func (s *JSONLScanner) ScanFile(path string) (*domain.FileReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	report := &domain.FileReport{Path: path}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)

	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		report.LinesChecked++

		defects := domain.ValidateLine(line, text)
		if len(defects) > 0 {
			report.LinesFailed++
			report.Defects = append(report.Defects, defects...)
		}
		if s.Hints {
			report.Hints = append(report.Hints, domain.KeyHints(line, text)...)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return report, nil
}
