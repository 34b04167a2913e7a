package lexicon

import (
	"unicode/utf8"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Rules bounds accepted word length, both ends inclusive.
type Rules struct {
	MinLen int
	MaxLen int
}

// DefaultRules returns the 2..25 bounds.
func DefaultRules() Rules {
	return Rules{MinLen: 2, MaxLen: 25}
}

// InRange reports whether the rune length of word lies in [MinLen, MaxLen].
func (r Rules) InRange(word string) bool {
	n := utf8.RuneCountInString(word)
	return n >= r.MinLen && n <= r.MaxLen
}

// Accept reports whether word passes the length bounds and is not forbidden.
func (r Rules) Accept(word string, forbidden *ForbiddenSet) bool {
	return r.InRange(word) && !forbidden.Contains(word)
}

// ForbiddenSet is the union of the excluded and disallowed word lists.
// It is rebuilt on every run and never modified after construction.
type ForbiddenSet struct {
	trie *patricia.Trie
	size int
}

// NewForbiddenSet builds the union of every given list.
func NewForbiddenSet(lists ...[]string) *ForbiddenSet {
	s := &ForbiddenSet{trie: patricia.NewTrie()}
	for _, list := range lists {
		for _, word := range list {
			if word == "" {
				continue
			}
			if s.trie.Insert(patricia.Prefix(word), true) {
				s.size++
			}
		}
	}
	return s
}

// Contains reports whether word is forbidden. A nil set forbids nothing.
func (s *ForbiddenSet) Contains(word string) bool {
	if s == nil || word == "" {
		return false
	}
	return s.trie.Match(patricia.Prefix(word))
}

// Len returns the number of distinct forbidden words.
func (s *ForbiddenSet) Len() int {
	if s == nil {
		return 0
	}
	return s.size
}

// CheckSuperset verifies every excluded word is present in candidates.
// All missing words are collected, in excluded-list order, before failing.
func CheckSuperset(candidates, excluded []string) error {
	present := make(map[string]struct{}, len(candidates))
	for _, word := range candidates {
		present[word] = struct{}{}
	}

	var missing []string
	for _, word := range excluded {
		if _, ok := present[word]; !ok {
			missing = append(missing, word)
		}
	}
	if len(missing) > 0 {
		return &IntegrityError{Missing: missing}
	}
	return nil
}

// Filter keeps the words Accept lets through, preserving order.
func (r Rules) Filter(words []string, forbidden *ForbiddenSet) []string {
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if r.Accept(word, forbidden) {
			kept = append(kept, word)
		}
	}
	return kept
}
