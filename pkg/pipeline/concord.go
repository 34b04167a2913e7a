package pipeline

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bastiangx/gamo/internal/logger"
	"github.com/bastiangx/gamo/internal/utils"
	"github.com/bastiangx/gamo/pkg/config"
	"github.com/bastiangx/gamo/pkg/corpus"
	"github.com/charmbracelet/log"
)

// Concorder attaches corpus examples to every list of a vocabulary.
type Concorder struct {
	cfg    *config.Config
	layout Layout
	log    *log.Logger
}

// NewConcorder creates a Concorder reading and writing under baseDir.
func NewConcorder(cfg *config.Config, baseDir string) *Concorder {
	return &Concorder{
		cfg:    cfg,
		layout: Layout{BaseDir: baseDir},
		log:    logger.New("concord"),
	}
}

// Run indexes the corpus, ranks every indexed word by popularity and writes
// booktore/<list>.off for each list, its words ordered by occurrence count.
// Lists where no word occurs in the corpus produce no file.
func (c *Concorder) Run(vocab Vocabulary) ([]string, error) {
	_, store, err := corpus.Build(
		c.layout.CorpusDirs(c.cfg.Corpus.Dirs),
		corpus.ModePopularity,
		nil,
		corpus.NewRanker(c.layout.BaseDir),
		WindowFrom(c.cfg),
		c.cfg.Concordance.OccurrencesPerWord,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build concordance: %w", err)
	}

	if err := utils.ResetDir(c.layout.ConcordPath()); err != nil {
		return nil, err
	}

	var files []string
	for _, list := range vocab {
		words := append([]string(nil), list.Words...)
		sort.SliceStable(words, func(i, j int) bool {
			return store.Count(words[i]) > store.Count(words[j])
		})
		records := FormatRecords(words, store)
		if records == "" {
			c.log.Debugf("no corpus examples for list %s", list.Name)
			continue
		}
		path := filepath.Join(c.layout.ConcordPath(), list.Name+".off")
		if err := utils.WriteText(path, records); err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	c.log.Infof("Wrote %d lists with %d corpus entries", len(files), store.Len())
	return files, nil
}
