package domain

// DatasetScanner reads one JSONL file and validates every non-blank line.
type DatasetScanner interface {
	ScanFile(path string) (*FileReport, error)
}

// ConfigLoader loads tool configuration for a working directory.
type ConfigLoader interface {
	Load(dir string) (RunConfig, error)
}

// RunHistory persists summaries of past validation runs.
type RunHistory interface {
	Save(dir string, entry RunEntry) error
	Load(dir string) ([]RunEntry, error)
}

// GitInfo reports version-control metadata for a directory.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
