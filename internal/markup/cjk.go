package markup

import (
	"strings"
	"unicode"
)

// isCJK reports whether r belongs to a CJK script or to the CJK symbol and
// full-width ranges.
func isCJK(r rune) bool {
	switch {
	case unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul):
		return true
	case r >= 0x3000 && r <= 0x303F: // CJK symbols and punctuation
		return true
	case r >= 0xFF00 && r <= 0xFFEF: // half-width and full-width forms
		return true
	}
	return false
}

// splitCJK cuts s at its first CJK rune. ok is false when s has none.
func splitCJK(s string) (en, zh string, ok bool) {
	i := strings.IndexFunc(s, isCJK)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i:], true
}

// openSpanAt returns the offset of the outermost emitted span still open at
// the end of s.
func openSpanAt(s string) (int, bool) {
	var starts []int
	for _, t := range emittedTag.FindAllStringIndex(s, -1) {
		if strings.HasPrefix(s[t[0]:], "</") {
			if len(starts) > 0 {
				starts = starts[:len(starts)-1]
			}
			continue
		}
		starts = append(starts, t[0])
	}
	if len(starts) == 0 {
		return 0, false
	}
	return starts[0], true
}
