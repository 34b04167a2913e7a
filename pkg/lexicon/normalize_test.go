package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{" HeLLo ", "hello"},
		{"1/#*hello1/#*", "hello"},
		{"  ", ""},
		{" hello", "hello"},
		{"hello ", "hello"},
		{"1/#*hello", "hello"},
		{"hello1/#*", "hello"},
		{"«déjà»", "déj"},
		{"¿qué?", "qu"},
		{"don't", "don't"},
		{"42", ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, Clean(tc.input), "input %q", tc.input)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("z"))
	assert.True(t, Valid("ab"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("don't"))
	assert.False(t, Valid("Hello"))
}

func TestNormalize(t *testing.T) {
	word, ok := Normalize(" HeLLo ")
	assert.True(t, ok)
	assert.Equal(t, "hello", word)

	word, ok = Normalize("  ")
	assert.False(t, ok)
	assert.Equal(t, "", word)

	word, ok = Normalize("*!?")
	assert.False(t, ok)
	assert.Equal(t, "", word)

	_, ok = Normalize("don't")
	assert.False(t, ok)
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, raw := range []string{" HeLLo ", "1/#*hello1/#*", "World!", "zebra"} {
		once := Clean(raw)
		assert.Equal(t, once, Clean(once), "input %q", raw)
	}
}
