package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLinesDedupAndFilter(t *testing.T) {
	content := "Hello\nworld hello\n  a\n42\nWORLD!\ndon't\n" + "abcdefghijklmnopqrstuvwxyz\nzebra"
	got := ParseLines(content, ParseOptions{Rules: DefaultRules()})
	assert.Equal(t, []string{"hello", "world", "zebra"}, got)
}

func TestParseLinesEmpty(t *testing.T) {
	assert.Empty(t, ParseLines("", ParseOptions{Rules: DefaultRules()}))
	assert.Empty(t, ParseLines(" \n\t\n", ParseOptions{Rules: DefaultRules()}))
}

func TestParseLinesReorderByFrequency(t *testing.T) {
	content := "beta alpha gamma alpha gamma alpha"
	plain := ParseLines(content, ParseOptions{Rules: DefaultRules()})
	assert.Equal(t, []string{"beta", "alpha", "gamma"}, plain)

	reordered := ParseLines(content, ParseOptions{Rules: DefaultRules(), ReorderByFrequency: true})
	assert.Equal(t, []string{"alpha", "gamma", "beta"}, reordered)
}

func TestReorderByFrequencyStableTies(t *testing.T) {
	got := ReorderByFrequency([]string{"c", "a", "b", "a", "c", "b"})
	assert.Equal(t, []string{"c", "a", "b"}, got)
}
