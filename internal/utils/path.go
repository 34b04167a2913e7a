package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// PathResolver anchors every input and output path to one base directory.
// Nothing resolves against the process working directory after construction.
type PathResolver struct {
	baseDir string
}

// NewPathResolver resolves base to an absolute, writable directory.
// An empty base means the current working directory.
func NewPathResolver(base string) (*PathResolver, error) {
	if base == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		base = cwd
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", base, err)
	}
	status := CheckDirStatus(abs)
	if status.Error != nil {
		return nil, fmt.Errorf("base dir %s: %w", abs, status.Error)
	}
	if !status.Writable {
		return nil, fmt.Errorf("base dir %s is not writable", abs)
	}

	log.Debugf("PathResolver initialized: base=%s", abs)
	return &PathResolver{baseDir: abs}, nil
}

// BaseDir returns the resolved base directory
func (pr *PathResolver) BaseDir() string {
	return pr.baseDir
}

// Resolve returns p unchanged when absolute, otherwise joined onto the base dir
func (pr *PathResolver) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(pr.baseDir, p)
}

// GetConfigPath returns the full path for a config file inside the base dir
func (pr *PathResolver) GetConfigPath(filename string) string {
	return filepath.Join(pr.baseDir, filename)
}
