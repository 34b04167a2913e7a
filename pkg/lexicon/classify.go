package lexicon

import (
	"fmt"
	"strings"
)

// Category is the class a word is routed to.
type Category int

const (
	Simple Category = iota
	Matching
	Ing
	Ed
	Plural
)

// EmitOrder is the order categories are written out in.
var EmitOrder = []Category{Matching, Ed, Ing, Plural, Simple}

var categoryNames = map[Category]string{
	Simple:   "simple",
	Matching: "match",
	Ing:      "ing",
	Ed:       "ed",
	Plural:   "plural",
}

// bucket file letters; Matching has no buckets
var categoryCodes = map[Category]string{
	Simple: "F",
	Ing:    "O",
	Ed:     "N",
	Plural: "P",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Code returns the letter used in bucket file names.
func (c Category) Code() string {
	return categoryCodes[c]
}

// Bucketed reports whether the category is split into per-length buckets.
func (c Category) Bucketed() bool {
	_, ok := categoryCodes[c]
	return ok
}

// ParseCategory maps a config name to its Category.
func ParseCategory(name string) (Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range categoryNames {
		if n == name {
			return c, nil
		}
	}
	return Simple, fmt.Errorf("unknown category %q", name)
}

// IsIng reports a word longer than 3 ending in "ing".
func IsIng(word string) bool {
	return len(word) > 3 && strings.HasSuffix(word, "ing")
}

// IsEd reports a word longer than 2 ending in "ed".
func IsEd(word string) bool {
	return len(word) > 2 && strings.HasSuffix(word, "ed")
}

// IsPlural reports a word longer than 2 ending in a single "s", so "discuss" is not plural.
func IsPlural(word string) bool {
	n := len(word)
	return n > 2 && word[n-1] == 's' && word[n-2] != 's'
}

// Matcher is a literal affix test.
type Matcher struct {
	Pattern string
	// AnchorEnd compares against the suffix, otherwise the prefix.
	AnchorEnd bool
}

// Match is true iff word has at least 4 letters, the pattern is non-empty,
// and the word's suffix (or prefix) equals the pattern.
func (m Matcher) Match(word string) bool {
	pattern := strings.TrimSpace(m.Pattern)
	if len(word) < 4 || pattern == "" {
		return false
	}
	if m.AnchorEnd {
		return strings.HasSuffix(word, pattern)
	}
	return strings.HasPrefix(word, pattern)
}

// Rule routes words satisfying Test to Category.
type Rule struct {
	Category Category
	Test     func(word string) bool
}

// Classifier tries its rules in priority order; the first match decides.
// Simple closes every chain, so Classify always returns a category.
type Classifier struct {
	rules []Rule
}

// NewClassifier builds a chain from config names ("match", "ing", "ed",
// "plural", "simple"). Rules after "simple" are unreachable and dropped.
func NewClassifier(order []string, m Matcher) (*Classifier, error) {
	c := &Classifier{}
	seen := make(map[Category]bool, len(order))
	for _, name := range order {
		cat, err := ParseCategory(name)
		if err != nil {
			return nil, err
		}
		if seen[cat] {
			return nil, fmt.Errorf("category %q listed twice", cat)
		}
		seen[cat] = true
		if cat == Simple {
			break
		}
		c.rules = append(c.rules, Rule{Category: cat, Test: testFor(cat, m)})
	}
	return c, nil
}

// DefaultClassifier is the two-way Matching/Simple split.
func DefaultClassifier(m Matcher) *Classifier {
	return &Classifier{rules: []Rule{{Category: Matching, Test: m.Match}}}
}

func testFor(cat Category, m Matcher) func(string) bool {
	switch cat {
	case Matching:
		return m.Match
	case Ing:
		return IsIng
	case Ed:
		return IsEd
	case Plural:
		return IsPlural
	}
	return func(string) bool { return false }
}

// Classify returns the category of word.
func (c *Classifier) Classify(word string) Category {
	for _, r := range c.rules {
		if r.Test(word) {
			return r.Category
		}
	}
	return Simple
}

// Categories lists the categories this chain can produce, in priority order.
func (c *Classifier) Categories() []Category {
	cats := make([]Category, 0, len(c.rules)+1)
	for _, r := range c.rules {
		cats = append(cats, r.Category)
	}
	return append(cats, Simple)
}

// Split classifies every word, keeping input order inside each category.
func (c *Classifier) Split(words []string) map[Category][]string {
	out := make(map[Category][]string)
	for _, word := range words {
		cat := c.Classify(word)
		out[cat] = append(out[cat], word)
	}
	return out
}
