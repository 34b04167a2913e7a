package corpus

import (
	"strings"

	"github.com/bastiangx/gamo/pkg/lexicon"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Index maps every normalized word of a corpus to its token positions.
type Index struct {
	tokens      []string
	words       []string
	occurrences map[string][]int
	trie        *patricia.Trie
}

// BuildIndex tokenizes text on whitespace and indexes every token that
// normalizes to a valid word. Rejected tokens stay in Tokens but get no entry.
func BuildIndex(text string) *Index {
	tokens := strings.Fields(text)
	ix := &Index{
		tokens:      tokens,
		occurrences: make(map[string][]int),
		trie:        patricia.NewTrie(),
	}
	for i, tok := range tokens {
		word, ok := lexicon.Normalize(tok)
		if !ok {
			continue
		}
		positions, seen := ix.occurrences[word]
		if !seen {
			ix.words = append(ix.words, word)
			ix.trie.Insert(patricia.Prefix(word), true)
		}
		ix.occurrences[word] = append(positions, i)
	}
	log.Debugf("indexed %d tokens, %d distinct words", len(ix.tokens), len(ix.words))
	return ix
}

// Tokens returns the raw token sequence. Callers must not modify it.
func (ix *Index) Tokens() []string {
	return ix.tokens
}

// Words returns the indexed words in first-encounter order.
func (ix *Index) Words() []string {
	return ix.words
}

// Positions returns the ascending token positions of word.
func (ix *Index) Positions(word string) []int {
	return ix.occurrences[word]
}

// Count returns how often word occurs, 0 when absent.
func (ix *Index) Count(word string) int {
	return len(ix.occurrences[word])
}

// Contains reports whether word occurs at least once.
func (ix *Index) Contains(word string) bool {
	_, ok := ix.occurrences[word]
	return ok
}

// Len returns the number of tokens.
func (ix *Index) Len() int {
	return len(ix.tokens)
}

// WithPrefix returns the indexed words starting with prefix, in lexical order.
func (ix *Index) WithPrefix(prefix string) []string {
	var words []string
	err := ix.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		words = append(words, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting index subtree: %v", err)
	}
	return words
}
