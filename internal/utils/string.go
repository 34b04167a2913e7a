package utils

import (
	"strings"
)

// IsLowerLetter checks if a rune is in 'a'..'z'.
func IsLowerLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// IsLowerWord checks if s is non-empty and made only of 'a'..'z'.
func IsLowerWord(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !IsLowerLetter(r) {
			return false
		}
	}
	return true
}

// JoinLines joins words one per line with a trailing newline.
func JoinLines(words []string) string {
	return strings.Join(words, "\n") + "\n"
}

// CountTokens counts whitespace separated tokens, keeping their first-appearance order.
func CountTokens(tokens []string) (order []string, counts map[string]int) {
	counts = make(map[string]int, len(tokens))
	for _, tok := range tokens {
		if _, ok := counts[tok]; !ok {
			order = append(order, tok)
		}
		counts[tok]++
	}
	return order, counts
}
