package pipeline

import (
	"path/filepath"

	"github.com/bastiangx/gamo/internal/logger"
	"github.com/bastiangx/gamo/internal/utils"
)

// Build writes build/<list>.on for every non-empty list of vocab, one word per
// line, or "<rank>,<word>,s" lines when keys is set.
func Build(baseDir string, vocab Vocabulary, keys bool) ([]string, error) {
	l := logger.New("build")
	layout := Layout{BaseDir: baseDir}
	if err := utils.ResetDir(layout.BuildPath()); err != nil {
		return nil, err
	}

	var files []string
	for _, list := range vocab {
		if len(list.Words) == 0 {
			continue
		}
		content := FormatList(list.Words)
		if keys {
			content = FormatKeys(list.Words)
		}
		path := filepath.Join(layout.BuildPath(), list.Name+".on")
		if err := utils.WriteText(path, content); err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	l.Infof("Wrote %d lists", len(files))
	return files, nil
}
