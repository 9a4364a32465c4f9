package note

import (
	"regexp"
	"strings"
	"unicode"
)

// TagSeparator joins tags in their canonical form
const TagSeparator = ", "

// A tag token is '#' followed by a letter and then letters, digits, '_' or
// '-'. It must start the input or follow whitespace or a comma so that text
// like "C#" or "issue#12" is not mistaken for a tag.
var tagPattern = regexp.MustCompile(`(?:^|[\s,，])(#\p{L}[\p{L}\p{N}_-]*)`)

// findTags returns the byte ranges of tag tokens in s, at most limit of them
// (limit < 0 means all).
func findTags(s string, limit int) [][2]int {
	var found [][2]int
	for _, m := range tagPattern.FindAllStringSubmatchIndex(s, limit) {
		found = append(found, [2]int{m[2], m[3]})
	}
	return found
}

// firstTagIndex returns the byte offset of the first tag token in s or -1
func firstTagIndex(s string) int {
	if m := tagPattern.FindStringSubmatchIndex(s); m != nil {
		return m[2]
	}
	return -1
}

// NormalizeTags rewrites a comma- or whitespace-delimited tag list into the
// canonical ", " separated form. Tokens are kept as typed.
func NormalizeTags(raw string) string {
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '，' || unicode.IsSpace(r)
	})
	return strings.Join(tokens, TagSeparator)
}

// SplitTags returns the individual tags of a tag list without the leading '#'
func SplitTags(raw string) []string {
	var tags []string
	for _, token := range strings.Split(NormalizeTags(raw), TagSeparator) {
		if token = strings.TrimPrefix(token, "#"); token != "" {
			tags = append(tags, token)
		}
	}
	return tags
}
