package domain

import (
	"errors"
	"fmt"
)

// ErrInputNotFound means a CLI argument resolved to neither a direct path nor
// a file inside the data directory. It aborts the run before any validation.
var ErrInputNotFound = errors.New("input file not found")

// ErrJSONEngineUnavailable means the JSON query engine failed its startup
// self-check. No file I/O is attempted after this.
var ErrJSONEngineUnavailable = errors.New("JSON query engine unavailable")

// Defect is one schema or syntax violation found on one line.
type Defect struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func (d Defect) String() string {
	return fmt.Sprintf("Line %d: %s", d.Line, d.Message)
}

// Hint is an informational near-miss key suggestion. Hints never affect
// pass/fail status or any counter.
type Hint struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func (h Hint) String() string {
	return fmt.Sprintf("Line %d: %s", h.Line, h.Message)
}

// FileReport aggregates validation results for one JSONL file. Blank lines
// are excluded from LinesChecked but still advance physical line numbering.
type FileReport struct {
	Path         string   `json:"path"`
	LinesChecked int      `json:"lines_checked"`
	LinesFailed  int      `json:"lines_failed"`
	Defects      []Defect `json:"defects,omitempty"`
	Hints        []Hint   `json:"hints,omitempty"`
}

// Passed reports whether every checked line was defect-free.
func (r *FileReport) Passed() bool { return r.LinesFailed == 0 }

// RunSummary aggregates counts across a whole invocation.
type RunSummary struct {
	FilesChecked int `json:"files_checked"`
	FilesPassed  int `json:"files_passed"`
	FilesFailed  int `json:"files_failed"`
	LinesChecked int `json:"lines_checked"`
	LinesFailed  int `json:"lines_failed"`
}

// Passed reports whether every file in the run passed.
func (s RunSummary) Passed() bool { return s.FilesFailed == 0 }

// Add folds one file's counts into the summary.
func (s *RunSummary) Add(r *FileReport) {
	s.FilesChecked++
	if r.Passed() {
		s.FilesPassed++
	} else {
		s.FilesFailed++
	}
	s.LinesChecked += r.LinesChecked
	s.LinesFailed += r.LinesFailed
}

// RunReport is the full result of one validation run.
type RunReport struct {
	Files   []*FileReport `json:"files"`
	Summary RunSummary    `json:"summary"`
}

// RunEntry is one stored history record of a past run.
type RunEntry struct {
	Timestamp    string `json:"timestamp"`
	CommitHash   string `json:"commit_hash,omitempty"`
	FilesChecked int    `json:"files_checked"`
	FilesFailed  int    `json:"files_failed"`
	LinesChecked int    `json:"lines_checked"`
	LinesFailed  int    `json:"lines_failed"`
}
