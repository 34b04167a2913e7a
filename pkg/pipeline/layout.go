package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/bastiangx/gamo/pkg/corpus"
	"github.com/bastiangx/gamo/pkg/lexicon"
)

// File and directory names under the base directory.
const (
	CandidateFile = "word.on"
	ExcludedFile  = "word.off"
	PartsDir      = "parts"
	ConcordDir    = "booktore"
	BuildDir      = "build"
)

// Layout resolves every pipeline path against one base directory.
type Layout struct {
	BaseDir string
}

// CandidatePath is the candidate ("on") list.
func (l Layout) CandidatePath() string { return filepath.Join(l.BaseDir, CandidateFile) }

// ExcludedPath is the excluded ("off") list.
func (l Layout) ExcludedPath() string { return filepath.Join(l.BaseDir, ExcludedFile) }

// PartsPath is the Sort output directory.
func (l Layout) PartsPath() string { return filepath.Join(l.BaseDir, PartsDir) }

// IntakePath is the canonical filtered candidate list.
func (l Layout) IntakePath() string { return filepath.Join(l.PartsPath(), CandidateFile) }

// CategoryPath is the bare list of a category that is not bucketed.
func (l Layout) CategoryPath(cat lexicon.Category) string {
	return filepath.Join(l.PartsPath(), cat.String()+".on")
}

// BucketListPath is the bare list of one length bucket, e.g. parts/F-5.on.
func (l Layout) BucketListPath(cat lexicon.Category, n int) string {
	return filepath.Join(l.PartsPath(), fmt.Sprintf("%s-%d.on", cat.Code(), n))
}

// BucketRecordPath holds the composite records of one length bucket, e.g. parts/F-5.off.
func (l Layout) BucketRecordPath(cat lexicon.Category, n int) string {
	return filepath.Join(l.PartsPath(), fmt.Sprintf("%s-%d.off", cat.Code(), n))
}

// ConcordPath is the Concord output directory.
func (l Layout) ConcordPath() string { return filepath.Join(l.BaseDir, ConcordDir) }

// BuildPath is the Build output directory.
func (l Layout) BuildPath() string { return filepath.Join(l.BaseDir, BuildDir) }

// SnapshotPath is the msgpack export of the concordance store.
func (l Layout) SnapshotPath() string { return filepath.Join(l.BaseDir, corpus.SnapshotFileName) }

// CorpusDirs resolves corpus directories relative to the base directory.
func (l Layout) CorpusDirs(dirs []string) []string {
	out := make([]string, len(dirs))
	for i, dir := range dirs {
		if filepath.IsAbs(dir) {
			out[i] = dir
			continue
		}
		out[i] = filepath.Join(l.BaseDir, dir)
	}
	return out
}
