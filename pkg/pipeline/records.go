package pipeline

import (
	"fmt"
	"strings"

	"github.com/bastiangx/gamo/internal/utils"
	"github.com/bastiangx/gamo/pkg/corpus"
)

// FormatRecords renders "<rank>: <word>\n<example-block>" for every word that
// has a store entry; rank is the word's 1-based position in words, so ranks
// skip the words without examples. Records are separated by a newline, which
// leaves a blank line between blocks. Returns "" when no word has an entry.
func FormatRecords(words []string, store *corpus.Store) string {
	var records []string
	for i, rank := range utils.CreateRankList(len(words)) {
		entry, ok := store.Get(words[i])
		if !ok {
			continue
		}
		records = append(records, fmt.Sprintf("%d: %s\n%s", rank, words[i], entry.Example))
	}
	return strings.Join(records, "\n")
}

// FormatList renders one word per line with a trailing newline.
func FormatList(words []string) string {
	return utils.JoinLines(words)
}

// FormatKeys renders "<rank>,<word>,s" lines.
func FormatKeys(words []string) string {
	var sb strings.Builder
	for i, rank := range utils.CreateRankList(len(words)) {
		fmt.Fprintf(&sb, "%d,%s,s\n", rank, words[i])
	}
	return sb.String()
}
