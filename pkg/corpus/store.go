package corpus

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Ranking modes for SelectWords.
const (
	ModeInsertion  = "insertion"
	ModeCandidates = "candidates"
	ModePopularity = "popularity"
)

// Entry is a word, its occurrence count, and its stitched example block.
type Entry struct {
	Word    string `msgpack:"w"`
	Count   int    `msgpack:"c"`
	Example string `msgpack:"e"`
}

// Store holds the entries of one run in ranked order.
type Store struct {
	entries []Entry
	byWord  map[string]int
}

// BuildStore creates an entry for every word in order that occurs in ix,
// with an example block stitched from its first k occurrences.
func BuildStore(ix *Index, words []string, w Window, k int) *Store {
	s := &Store{byWord: make(map[string]int, len(words))}
	for _, word := range words {
		positions := ix.Positions(word)
		if len(positions) == 0 {
			continue
		}
		if _, dup := s.byWord[word]; dup {
			continue
		}
		s.byWord[word] = len(s.entries)
		s.entries = append(s.entries, Entry{
			Word:    word,
			Count:   len(positions),
			Example: w.Stitch(positions, k, ix.Tokens()),
		})
	}
	return s
}

// NewStore wraps already built entries, e.g. from a snapshot.
func NewStore(entries []Entry) *Store {
	s := &Store{entries: entries, byWord: make(map[string]int, len(entries))}
	for i, e := range entries {
		s.byWord[e.Word] = i
	}
	return s
}

// Get returns the entry of word.
func (s *Store) Get(word string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	i, ok := s.byWord[word]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Count returns the occurrence count of word, 0 when it has no entry.
func (s *Store) Count(word string) int {
	e, _ := s.Get(word)
	return e.Count
}

// Entries returns every entry in ranked order.
func (s *Store) Entries() []Entry {
	if s == nil {
		return nil
	}
	return s.entries
}

// Len returns the number of entries.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// SelectWords picks and orders the words a store is built for.
// "insertion" keeps first-encounter order of the index; "candidates" ranks the
// given candidates; "popularity" ranks every indexed word. The two ranking
// modes overwrite the ranker's side file.
func SelectWords(mode string, ix *Index, candidates []string, r *Ranker) ([]string, error) {
	switch mode {
	case ModeInsertion:
		return ix.Words(), nil
	case ModeCandidates:
		ranked, err := r.Rank(candidates, ix)
		if err != nil {
			return nil, err
		}
		return Words(ranked), nil
	case ModePopularity:
		ranked, err := r.Rank(ix.Words(), ix)
		if err != nil {
			return nil, err
		}
		return Words(ranked), nil
	}
	return nil, fmt.Errorf("unknown rank mode %q", mode)
}

// Build loads the corpus from dirs, indexes it and builds the store in one go.
func Build(dirs []string, mode string, candidates []string, r *Ranker, w Window, k int) (*Index, *Store, error) {
	text, err := LoadCorpus(dirs...)
	if err != nil {
		return nil, nil, err
	}
	ix := BuildIndex(text)
	words, err := SelectWords(mode, ix, candidates, r)
	if err != nil {
		return nil, nil, err
	}
	store := BuildStore(ix, words, w, k)
	log.Debugf("concordance store: %d entries (%s)", store.Len(), mode)
	return ix, store, nil
}
