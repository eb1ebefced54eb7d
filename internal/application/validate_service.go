package application

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tunelint/tunelint/internal/domain"
)

// ValidateService runs the whole validation pass: input resolution, per-file
// scanning, summary aggregation, and best-effort run history.
type ValidateService struct {
	scanner domain.DatasetScanner
	history domain.RunHistory
	git     domain.GitInfo
}

// NewValidateService creates a ValidateService. history and git may be nil,
// in which case no run history is recorded.
func NewValidateService(scanner domain.DatasetScanner, history domain.RunHistory, git domain.GitInfo) *ValidateService {
	return &ValidateService{scanner: scanner, history: history, git: git}
}

// Run validates the files named by args, or every matching file in the data
// directory when args is empty. Files are processed strictly sequentially;
// a defect never aborts the run, only unresolvable inputs and I/O errors do.
//
// An empty report (no files) is not an error: the caller decides how to
// surface "nothing to validate".
func (s *ValidateService) Run(cfg domain.RunConfig, args []string) (*domain.RunReport, error) {
	if err := domain.CheckJSONEngine(); err != nil {
		return nil, err
	}

	dataDir := DataDir(cfg)
	paths, err := resolveInputs(dataDir, cfg.Extension, args)
	if err != nil {
		return nil, err
	}

	report := &domain.RunReport{}
	for _, p := range paths {
		fr, err := s.scanner.ScanFile(p)
		if err != nil {
			return nil, err
		}
		report.Files = append(report.Files, fr)
		report.Summary.Add(fr)
	}

	if len(report.Files) > 0 {
		s.saveHistory(dataDir, report)
	}

	return report, nil
}

// DataDir returns the effective data directory: the configured one, or
// data/ next to the running executable.
func DataDir(cfg domain.RunConfig) string {
	if cfg.DataDir != "" {
		return cfg.DataDir
	}
	exe, err := os.Executable()
	if err != nil {
		return domain.DefaultDataDirName
	}
	return filepath.Join(filepath.Dir(exe), domain.DefaultDataDirName)
}

// resolveInputs maps CLI arguments to file paths. Each argument must resolve
// either directly or under dataDir; the first one that resolves to neither
// aborts the run before any validation output. With no arguments, every
// *<ext> file directly inside dataDir is selected, in sorted order.
func resolveInputs(dataDir, ext string, args []string) ([]string, error) {
	if len(args) == 0 {
		matches, err := filepath.Glob(filepath.Join(dataDir, "*"+ext))
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", dataDir, err)
		}
		return matches, nil
	}

	var paths []string
	for _, arg := range args {
		switch {
		case fileExists(arg):
			paths = append(paths, arg)
		case fileExists(filepath.Join(dataDir, arg)):
			paths = append(paths, filepath.Join(dataDir, arg))
		default:
			return nil, fmt.Errorf("%w: %s", domain.ErrInputNotFound, arg)
		}
	}
	return paths, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (s *ValidateService) saveHistory(dataDir string, report *domain.RunReport) {
	if s.history == nil {
		return
	}

	entry := domain.RunEntry{
		Timestamp:    time.Now().Format(time.RFC3339),
		FilesChecked: report.Summary.FilesChecked,
		FilesFailed:  report.Summary.FilesFailed,
		LinesChecked: report.Summary.LinesChecked,
		LinesFailed:  report.Summary.LinesFailed,
	}
	if s.git != nil && s.git.IsGitRepo(dataDir) {
		if hash, err := s.git.CommitHash(dataDir); err == nil {
			entry.CommitHash = hash
		}
	}

	_ = s.history.Save(dataDir, entry) // best-effort
}
