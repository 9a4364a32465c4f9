package markup

import (
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
)

// HighlightWord encloses every case-insensitive whole-word occurrence of
// phrase in text with '+' so the blue rule picks it up. Word boundaries
// follow Unicode text segmentation, so "cat" matches in "猫cat" but not in
// "category". Occurrences already enclosed in '+' are left alone. A phrase
// containing '+' itself cannot be delimited and is not highlighted.
func HighlightWord(text, phrase string) string {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" || text == "" || strings.Contains(phrase, "+") {
		return text
	}

	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(phrase))
	if err != nil {
		return text
	}

	bounds := wordBoundaries(text)

	return replaceMatches(text, re, -1, func(_ string, m []int) (string, bool) {
		start, end := m[0], m[1]
		if !bounds[start] || !bounds[end] {
			return "", false
		}
		if start > 0 && text[start-1] == '+' && end < len(text) && text[end] == '+' {
			return "", false
		}
		return "+" + text[start:end] + "+", true
	})
}

// wordBoundaries returns the byte offsets of all UAX #29 word boundaries
func wordBoundaries(s string) map[int]bool {
	bounds := map[int]bool{0: true}

	var word string
	offset, state := 0, -1
	for len(s) > 0 {
		word, s, state = uniseg.FirstWordInString(s, state)
		offset += len(word)
		bounds[offset] = true
	}

	return bounds
}
