package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var foxTokens = []string{"the", "quick", "brown", "fox", "jumps", "over", "a", "lazy", "dog", "today", "now"}

func TestSentenceForFox(t *testing.T) {
	w := DefaultWindow()
	got := w.SentenceFor(3, foxTokens)
	assert.Equal(t, "the quick brown, fox jumps over a lazy dog today now \n", got)
	assert.True(t, strings.HasPrefix(got, "the quick brown, fox "))
}

func TestSentenceForEdges(t *testing.T) {
	w := DefaultWindow()
	assert.Equal(t, ", the quick brown fox jumps over a lazy dog today \n", w.SentenceFor(0, foxTokens))
	assert.Equal(t, "the, quick brown fox jumps over a lazy dog today now \n", w.SentenceFor(1, foxTokens))
	assert.Equal(t, "lazy dog today, now  \n", w.SentenceFor(10, foxTokens))
	assert.Equal(t, "", w.SentenceFor(11, foxTokens))
	assert.Equal(t, "", w.SentenceFor(-1, foxTokens))
	assert.Equal(t, "", w.SentenceFor(0, nil))
}

func TestRightContextBudget(t *testing.T) {
	ten := strings.Repeat("x", 10)
	tokens := []string{"w"}
	for i := 0; i < 9; i++ {
		tokens = append(tokens, ten)
	}
	w := DefaultWindow()
	got := w.SentenceFor(0, tokens)
	// 5 tokens reach exactly 50 characters, the sixth would pass it
	assert.Equal(t, ", w "+strings.Join(tokens[1:6], " ")+" \n", got)
}

func TestRightContextStopsBeforeOverflow(t *testing.T) {
	tokens := []string{"w", strings.Repeat("a", 20), strings.Repeat("b", 20), strings.Repeat("c", 11), "d"}
	w := DefaultWindow()
	got := w.SentenceFor(0, tokens)
	// "d" would fit on its own but truncation stops at the first overflow
	assert.Equal(t, ", w "+tokens[1]+" "+tokens[2]+" \n", got)
}

func TestRightContextWindowSize(t *testing.T) {
	w := Window{Left: 1, Right: 2, RightBudget: 50}
	assert.Equal(t, "quick, brown fox jumps \n", w.SentenceFor(2, foxTokens))

	narrow := Window{Left: 0, Right: 9, RightBudget: 0}
	assert.Equal(t, ", fox  \n", narrow.SentenceFor(3, foxTokens))
}

func TestStitch(t *testing.T) {
	ix := BuildIndex("one two one three one four one")
	w := DefaultWindow()
	got := w.Stitch(ix.Positions("one"), 3, ix.Tokens())
	want := ", one two one three one four one \n" +
		"one two, one three one four one \n" +
		"two one three, one four one\n"
	assert.Equal(t, want, got)
}

func TestStitchFewerThanK(t *testing.T) {
	ix := BuildIndex("alpha beta")
	w := DefaultWindow()
	assert.Equal(t, ", alpha beta\n", w.Stitch(ix.Positions("alpha"), 3, ix.Tokens()))
	assert.Equal(t, "\n", w.Stitch(nil, 3, ix.Tokens()))
}
