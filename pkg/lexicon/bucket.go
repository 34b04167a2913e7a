package lexicon

import (
	"fmt"
	"unicode/utf8"
)

// Buckets groups words by exact length. Every length in [Min, Max] has an
// entry from construction on, even when no word lands in it.
type Buckets struct {
	Min   int
	Max   int
	lists map[int][]string
}

// NewBuckets pre-populates every length in [min, max] with an empty list.
func NewBuckets(min, max int) *Buckets {
	b := &Buckets{Min: min, Max: max, lists: make(map[int][]string, max-min+1)}
	for n := min; n <= max; n++ {
		b.lists[n] = []string{}
	}
	return b
}

// Bucket distributes words into length buckets, preserving insertion order.
// It panics when a word falls outside [min, max]: the rule filter upstream
// should have rejected it.
func Bucket(words []string, min, max int) *Buckets {
	b := NewBuckets(min, max)
	for _, word := range words {
		b.Add(word)
	}
	return b
}

// Add appends word to the bucket of its length.
func (b *Buckets) Add(word string) {
	n := utf8.RuneCountInString(word)
	list, ok := b.lists[n]
	if !ok {
		panic(fmt.Sprintf("lexicon: word %q has length %d outside bucket range [%d,%d]", word, n, b.Min, b.Max))
	}
	b.lists[n] = append(list, word)
}

// Get returns the words of length n.
func (b *Buckets) Get(n int) []string {
	return b.lists[n]
}

// Lengths returns every bucket key in ascending order.
func (b *Buckets) Lengths() []int {
	keys := make([]int, 0, len(b.lists))
	for n := b.Min; n <= b.Max; n++ {
		keys = append(keys, n)
	}
	return keys
}

// Len returns the number of buckets.
func (b *Buckets) Len() int {
	return len(b.lists)
}
