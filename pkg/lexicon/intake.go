package lexicon

import (
	"sort"
	"strings"

	"github.com/bastiangx/gamo/internal/utils"
)

// ParseOptions controls how a raw word list becomes a candidate list.
type ParseOptions struct {
	Rules Rules
	// ReorderByFrequency puts the most repeated raw tokens first before dedup.
	ReorderByFrequency bool
}

// ParseLines turns whitespace separated raw tokens into a deduplicated list of
// valid words within the length bounds. The first occurrence of a word wins.
func ParseLines(content string, opts ParseOptions) []string {
	tokens := strings.Fields(content)
	if opts.ReorderByFrequency {
		tokens = ReorderByFrequency(tokens)
	}

	filter := utils.NewSeenFilter(len(tokens))
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		word := Clean(tok)
		if !opts.Rules.InRange(word) || filter.Seen(word) || !Valid(word) {
			continue
		}
		filter.ShouldInclude(word)
		words = append(words, word)
	}
	return words
}

// ReorderByFrequency returns the distinct raw tokens ordered by how often they
// occur, most frequent first. Ties keep first-appearance order.
func ReorderByFrequency(tokens []string) []string {
	order, counts := utils.CountTokens(tokens)
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order
}
