package corpus

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Window sets how much context surrounds an occurrence.
type Window struct {
	Left  int
	Right int
	// RightBudget caps the summed character length of right-context tokens;
	// the separators between them are not counted.
	RightBudget int
}

// DefaultWindow is 3 tokens left, 9 right, 50 characters of right context.
func DefaultWindow() Window {
	return Window{Left: 3, Right: 9, RightBudget: 50}
}

// SentenceFor renders the occurrence at pos as
//
//	"<left>, <token> <right> \n"
//
// An out-of-range pos yields "".
func (w Window) SentenceFor(pos int, tokens []string) string {
	if pos < 0 || pos >= len(tokens) {
		return ""
	}
	left := w.leftContext(pos, tokens)
	right := w.rightContext(pos, tokens)
	return fmt.Sprintf("%s, %s %s \n", left, tokens[pos], right)
}

func (w Window) leftContext(pos int, tokens []string) string {
	start := pos - w.Left
	if start < 0 {
		start = 0
	}
	if start >= pos {
		return ""
	}
	return strings.Join(tokens[start:pos], " ")
}

func (w Window) rightContext(pos int, tokens []string) string {
	start := pos + 1
	if start >= len(tokens) {
		return ""
	}
	end := start + w.Right
	if end > len(tokens) {
		end = len(tokens)
	}
	return strings.Join(truncateToBudget(tokens[start:end], w.RightBudget), " ")
}

// truncateToBudget keeps tokens while their running character total stays
// within budget and stops at the first token that would exceed it.
func truncateToBudget(tokens []string, budget int) []string {
	total := 0
	for i, tok := range tokens {
		total += utf8.RuneCountInString(tok)
		if total > budget {
			return tokens[:i]
		}
	}
	return tokens
}

// Stitch concatenates the sentences of the first k positions, trims the
// trailing whitespace, and ends the block with one newline.
func (w Window) Stitch(positions []int, k int, tokens []string) string {
	if k > len(positions) {
		k = len(positions)
	}
	if k < 0 {
		k = 0
	}
	var sb strings.Builder
	for _, pos := range positions[:k] {
		sb.WriteString(w.SentenceFor(pos, tokens))
	}
	return strings.TrimRight(sb.String(), " \t\r\n") + "\n"
}
