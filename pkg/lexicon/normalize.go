package lexicon

import (
	"strings"

	"github.com/bastiangx/gamo/internal/utils"
)

// Clean trims whitespace, lowercases, and strips the longest prefix and suffix
// of runes outside 'a'..'z'. The result may be empty or still contain
// non-letters in the middle; use Valid or Normalize to check it.
func Clean(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	start := strings.IndexFunc(s, utils.IsLowerLetter)
	if start < 0 {
		return ""
	}
	// the last letter is a single ASCII byte
	end := strings.LastIndexFunc(s, utils.IsLowerLetter) + 1
	return s[start:end]
}

// Valid reports whether word is non-empty and made only of 'a'..'z'.
func Valid(word string) bool {
	return utils.IsLowerWord(word)
}

// Normalize cleans raw and reports whether the result is a valid word.
// A rejected token still returns its cleaned form.
func Normalize(raw string) (string, bool) {
	word := Clean(raw)
	return word, Valid(word)
}
