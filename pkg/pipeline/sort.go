package pipeline

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bastiangx/gamo/internal/logger"
	"github.com/bastiangx/gamo/internal/utils"
	"github.com/bastiangx/gamo/pkg/config"
	"github.com/bastiangx/gamo/pkg/corpus"
	"github.com/bastiangx/gamo/pkg/lexicon"
	"github.com/charmbracelet/log"
)

// SortResult describes what a Sort run accepted and wrote.
type SortResult struct {
	Accepted   []string
	Categories map[lexicon.Category][]string
	Files      []string
}

// Sorter runs the classification and bucketing pipeline.
type Sorter struct {
	cfg    *config.Config
	layout Layout
	log    *log.Logger
	files  []string
}

// NewSorter creates a Sorter reading and writing under baseDir.
func NewSorter(cfg *config.Config, baseDir string) *Sorter {
	return &Sorter{
		cfg:    cfg,
		layout: Layout{BaseDir: baseDir},
		log:    logger.New("sort"),
	}
}

// Run filters word.on against word.off and disallowed, classifies and buckets
// the accepted words and writes them under parts/. An excluded word missing
// from word.on aborts the run with a *lexicon.IntegrityError.
func (s *Sorter) Run(disallowed []string) (*SortResult, error) {
	s.files = nil
	opts := ParseOptionsFrom(s.cfg)
	classifier, err := ClassifierFrom(s.cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid classify config: %w", err)
	}

	for _, path := range []string{s.layout.CandidatePath(), s.layout.ExcludedPath()} {
		if err := utils.EnsureFile(path); err != nil {
			return nil, err
		}
	}
	onContent, err := utils.ReadText(s.layout.CandidatePath())
	if err != nil {
		return nil, err
	}
	offContent, err := utils.ReadText(s.layout.ExcludedPath())
	if err != nil {
		return nil, err
	}

	candidates := lexicon.ParseLines(onContent, opts)
	excluded := lexicon.ParseLines(offContent, opts)
	s.log.Debug("parsed inputs", "candidates", len(candidates), "excluded", len(excluded), "disallowed", len(disallowed))

	if s.cfg.Intake.RequireSupersetCheck {
		if err := lexicon.CheckSuperset(candidates, excluded); err != nil {
			var integrity *lexicon.IntegrityError
			if errors.As(err, &integrity) {
				for _, word := range integrity.Missing {
					s.log.Errorf("(%s) does not exist! in %s", word, CandidateFile)
				}
			}
			return nil, err
		}
	}

	forbidden := lexicon.NewForbiddenSet(excluded, disallowed)
	accepted := opts.Rules.Filter(candidates, forbidden)
	split := classifier.Split(accepted)

	var (
		ix    *corpus.Index
		store *corpus.Store
	)
	if s.cfg.Concordance.Attach {
		ix, store, err = corpus.Build(
			s.layout.CorpusDirs(s.cfg.Corpus.Dirs),
			s.cfg.Concordance.RankMode,
			accepted,
			corpus.NewRanker(s.layout.BaseDir),
			WindowFrom(s.cfg),
			s.cfg.Concordance.OccurrencesPerWord,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to build concordance: %w", err)
		}
	}

	if err := utils.ResetDir(s.layout.PartsPath()); err != nil {
		return nil, err
	}
	if err := s.write(s.layout.IntakePath(), FormatList(accepted)); err != nil {
		return nil, err
	}
	for _, cat := range lexicon.EmitOrder {
		if err := s.emit(cat, split[cat], store); err != nil {
			return nil, err
		}
	}

	if s.cfg.Intake.PruneExcluded {
		if err := s.pruneExcluded(excluded, disallowed); err != nil {
			return nil, err
		}
	}
	if store != nil && s.cfg.Concordance.ExportSnapshot {
		if err := corpus.WriteSnapshot(s.layout.SnapshotPath(), ix, store); err != nil {
			return nil, err
		}
		s.files = append(s.files, s.layout.SnapshotPath())
	}

	s.log.Infof("Accepted: %d", len(accepted))
	return &SortResult{Accepted: accepted, Categories: split, Files: s.files}, nil
}

// emit writes one category: a bare list for unbucketed categories, otherwise
// a bare list and, with a store, composite records per non-empty length.
func (s *Sorter) emit(cat lexicon.Category, words []string, store *corpus.Store) error {
	if !cat.Bucketed() {
		if len(words) == 0 {
			return nil
		}
		return s.write(s.layout.CategoryPath(cat), FormatList(words))
	}

	buckets := lexicon.Bucket(words, s.cfg.Rules.MinLen, s.cfg.Rules.MaxLen)
	for _, n := range buckets.Lengths() {
		list := buckets.Get(n)
		if len(list) == 0 {
			continue
		}
		if err := s.write(s.layout.BucketListPath(cat, n), FormatList(list)); err != nil {
			return err
		}
		if store == nil {
			continue
		}
		if records := FormatRecords(list, store); records != "" {
			if err := s.write(s.layout.BucketRecordPath(cat, n), records); err != nil {
				return err
			}
		}
	}
	return nil
}

// pruneExcluded rewrites word.off without the disallowed words, shortest first.
func (s *Sorter) pruneExcluded(excluded, disallowed []string) error {
	drop := lexicon.NewForbiddenSet(disallowed)
	kept := make([]string, 0, len(excluded))
	for _, word := range excluded {
		if !drop.Contains(word) {
			kept = append(kept, word)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return len(kept[i]) < len(kept[j]) })
	s.log.Debug("pruned excluded list", "before", len(excluded), "after", len(kept))
	return utils.WriteText(s.layout.ExcludedPath(), strings.Join(kept, "\n"))
}

func (s *Sorter) write(path, content string) error {
	if err := utils.WriteText(path, content); err != nil {
		return err
	}
	s.files = append(s.files, path)
	return nil
}
