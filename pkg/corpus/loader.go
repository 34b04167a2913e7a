package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bastiangx/gamo/internal/utils"
	"github.com/charmbracelet/log"
)

// ListDocuments walks dirs in order and returns every file whose name contains
// ".txt", in lexical order within each dir. The first dir must exist; later
// ones are skipped when missing.
func ListDocuments(dirs ...string) ([]string, error) {
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no corpus directories given")
	}

	var files []string
	for i, dir := range dirs {
		if !utils.IsDir(dir) {
			if i == 0 {
				return nil, fmt.Errorf("corpus directory %s: %w", dir, os.ErrNotExist)
			}
			log.Debugf("optional corpus directory %s not found, skipping", dir)
			continue
		}
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.Contains(d.Name(), ".txt") {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", dir, err)
		}
	}
	return files, nil
}

// LoadCorpus reads every document under dirs and joins their tokens with
// single spaces, documents in listing order.
func LoadCorpus(dirs ...string) (string, error) {
	files, err := ListDocuments(dirs...)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, file := range files {
		content, err := utils.ReadText(file)
		if err != nil {
			return "", err
		}
		tokens := strings.Fields(content)
		if len(tokens) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strings.Join(tokens, " "))
	}
	log.Debugf("loaded corpus: %d documents, %d bytes", len(files), sb.Len())
	return sb.String(), nil
}
