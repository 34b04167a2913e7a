package utils

// SeenFilter drops repeated words, keeping the first occurrence.
// Not safe for concurrent use; every pass builds its own filter.
type SeenFilter struct {
	seenWords map[string]struct{}
}

// NewSeenFilter creates an empty filter sized for about n words.
func NewSeenFilter(n int) *SeenFilter {
	return &SeenFilter{seenWords: make(map[string]struct{}, n)}
}

// ShouldInclude reports whether word is new, and records it.
// Returns true on the first call for a word and false for every repeat.
func (f *SeenFilter) ShouldInclude(word string) bool {
	if _, ok := f.seenWords[word]; ok {
		return false
	}
	f.seenWords[word] = struct{}{}
	return true
}

// Seen reports whether word was already included.
func (f *SeenFilter) Seen(word string) bool {
	_, ok := f.seenWords[word]
	return ok
}

// Len returns the number of distinct words seen.
func (f *SeenFilter) Len() int {
	return len(f.seenWords)
}
