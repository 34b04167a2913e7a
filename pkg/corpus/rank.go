package corpus

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/gamo/internal/utils"
	"github.com/bastiangx/gamo/pkg/lexicon"
)

// RankFileName is the side file every ranking call overwrites.
const RankFileName = "palabras.on"

// Ranked is a word with its occurrence count.
type Ranked struct {
	Word  string
	Count int
}

// SortByCount keeps valid words longer than one letter and orders them by
// occurrence count, highest first. Absent words count 0; ties keep input order.
func SortByCount(candidates []string, ix *Index) []Ranked {
	ranked := make([]Ranked, 0, len(candidates))
	for _, word := range candidates {
		if !lexicon.Valid(word) || utf8.RuneCountInString(word) <= 1 {
			continue
		}
		ranked = append(ranked, Ranked{Word: word, Count: ix.Count(word)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// Words returns the words of ranked, in order.
func Words(ranked []Ranked) []string {
	words := make([]string, len(ranked))
	for i, r := range ranked {
		words[i] = r.Word
	}
	return words
}

// Ranker sorts words by popularity and records the order in its side file.
type Ranker struct {
	SidePath string
}

// NewRanker writes its side file into baseDir.
func NewRanker(baseDir string) *Ranker {
	return &Ranker{SidePath: filepath.Join(baseDir, RankFileName)}
}

// Rank sorts candidates with SortByCount and overwrites the side file with
// the result, one word per line.
func (r *Ranker) Rank(candidates []string, ix *Index) ([]Ranked, error) {
	ranked := SortByCount(candidates, ix)
	if err := utils.WriteText(r.SidePath, strings.Join(Words(ranked), "\n")); err != nil {
		return nil, fmt.Errorf("failed to record ranking: %w", err)
	}
	return ranked, nil
}
