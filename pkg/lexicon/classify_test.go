package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEd(t *testing.T) {
	assert.True(t, IsEd("worked"))
	assert.False(t, IsEd("ed"))
	assert.False(t, IsEd("work"))
}

func TestIsIng(t *testing.T) {
	assert.True(t, IsIng("working"))
	assert.False(t, IsIng("worknng"))
	assert.False(t, IsIng(""))
	assert.False(t, IsIng("ing"))
}

func TestIsPlural(t *testing.T) {
	assert.True(t, IsPlural("houses"))
	assert.False(t, IsPlural("discuss"))
	assert.False(t, IsPlural("es"))
	assert.False(t, IsPlural("house"))
}

func TestMatcher(t *testing.T) {
	suffix := Matcher{Pattern: "tion", AnchorEnd: true}
	assert.True(t, suffix.Match("nation"))
	assert.False(t, suffix.Match("tional"))
	// words shorter than 4 never match
	assert.False(t, Matcher{Pattern: "on", AnchorEnd: true}.Match("on"))

	prefix := Matcher{Pattern: "pre", AnchorEnd: false}
	assert.True(t, prefix.Match("prefix"))
	assert.False(t, prefix.Match("suffix"))

	// pattern longer than the word
	assert.False(t, Matcher{Pattern: "abcdefgh", AnchorEnd: true}.Match("abcd"))

	assert.False(t, Matcher{Pattern: "", AnchorEnd: true}.Match("anything"))
	assert.False(t, Matcher{Pattern: "  ", AnchorEnd: true}.Match("anything"))
}

func TestEmptyPatternAlwaysSimple(t *testing.T) {
	c := DefaultClassifier(Matcher{AnchorEnd: true})
	for _, w := range []string{"working", "houses", "worked", "nation"} {
		assert.Equal(t, Simple, c.Classify(w), w)
	}
}

func TestDefaultChainLeavesAffixRulesUnwired(t *testing.T) {
	c, err := NewClassifier([]string{"match", "simple"}, Matcher{Pattern: "ing", AnchorEnd: true})
	require.NoError(t, err)
	assert.Equal(t, []Category{Matching, Simple}, c.Categories())

	split := c.Split([]string{"working", "houses", "worked", "sing"})
	assert.Equal(t, []string{"working", "sing"}, split[Matching])
	assert.Equal(t, []string{"houses", "worked"}, split[Simple])
	assert.Empty(t, split[Ing])
	assert.Empty(t, split[Plural])
}

func TestClassifierPriorityOrder(t *testing.T) {
	c, err := NewClassifier([]string{"plural", "ing", "ed"}, Matcher{})
	require.NoError(t, err)
	assert.Equal(t, []Category{Plural, Ing, Ed, Simple}, c.Categories())

	assert.Equal(t, Ing, c.Classify("working"))
	assert.Equal(t, Ed, c.Classify("worked"))
	assert.Equal(t, Plural, c.Classify("houses"))
	assert.Equal(t, Simple, c.Classify("discuss"))
	assert.Equal(t, Plural, c.Classify("beings"))
}

func TestNewClassifierErrors(t *testing.T) {
	_, err := NewClassifier([]string{"match", "verbs"}, Matcher{})
	assert.Error(t, err)

	_, err = NewClassifier([]string{"ing", "ing"}, Matcher{})
	assert.Error(t, err)
}

func TestNewClassifierStopsAtSimple(t *testing.T) {
	c, err := NewClassifier([]string{"simple", "ing"}, Matcher{})
	require.NoError(t, err)
	assert.Equal(t, []Category{Simple}, c.Categories())
	assert.Equal(t, Simple, c.Classify("working"))
}

func TestCategoryCodes(t *testing.T) {
	assert.Equal(t, "F", Simple.Code())
	assert.Equal(t, "N", Ed.Code())
	assert.Equal(t, "O", Ing.Code())
	assert.Equal(t, "P", Plural.Code())
	assert.False(t, Matching.Bucketed())
	assert.True(t, Simple.Bucketed())
	assert.Equal(t, "match", Matching.String())

	cat, err := ParseCategory(" Plural ")
	require.NoError(t, err)
	assert.Equal(t, Plural, cat)
}
