package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bastiangx/gamo/internal/utils"
	"github.com/bastiangx/gamo/pkg/lexicon"
)

// List is one named word list of a vocabulary.
type List struct {
	Name  string
	Words []string
}

// Vocabulary is an ordered set of named word lists.
type Vocabulary []List

// LoadVocabulary reads every *.on file directly inside dir, in lexical order.
// A list is named after its file stem and parsed like a candidate list.
func LoadVocabulary(dir string, opts lexicon.ParseOptions) (Vocabulary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary dir %s: %w", dir, err)
	}

	var vocab Vocabulary
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".on" {
			continue
		}
		content, err := utils.ReadText(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		vocab = append(vocab, List{
			Name:  strings.TrimSuffix(entry.Name(), ".on"),
			Words: lexicon.ParseLines(content, opts),
		})
	}
	return vocab, nil
}

// Words returns the words of every list, in list order, without repeats.
func (v Vocabulary) Words() []string {
	filter := utils.NewSeenFilter(0)
	var words []string
	for _, list := range v {
		for _, word := range list.Words {
			if filter.ShouldInclude(word) {
				words = append(words, word)
			}
		}
	}
	return words
}
