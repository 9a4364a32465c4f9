package markup

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// spanAttrs is the attribute list of an opening tag written by Span.open
const spanAttrs = `span class="[^"<>]*"(?: dict="[^"<>]*")?(?: style="[^"<>]*")?`

// emittedTag matches the tags the renderer itself writes
var emittedTag = regexp.MustCompile(`<` + spanAttrs + `>|</span>`)

// ownOpenTag matches the inside of an emitted opening tag as captured by the
// angle-bracket rule
var ownOpenTag = regexp.MustCompile(`^` + spanAttrs + `$`)

// replaceMatches rebuilds s from left to right. fn receives the text before
// a match and its submatch indexes and returns the replacement; returning
// false keeps the match as it is. limit caps the number of matches, -1
// means all.
func replaceMatches(s string, re *regexp.Regexp, limit int, fn func(prefix string, m []int) (string, bool)) string {
	matches := re.FindAllStringSubmatchIndex(s, limit)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m[0]])
		if repl, ok := fn(s[:m[0]], m); ok {
			b.WriteString(repl)
		} else {
			b.WriteString(s[m[0]:m[1]])
		}
		last = m[1]
	}
	b.WriteString(s[last:])

	return b.String()
}

// mapText applies fn to the text between emitted tags only
func mapText(s string, fn func(string) string) string {
	tags := emittedTag.FindAllStringIndex(s, -1)
	if len(tags) == 0 {
		return fn(s)
	}

	var b strings.Builder
	last := 0
	for _, t := range tags {
		b.WriteString(fn(s[last:t[0]]))
		b.WriteString(s[t[0]:t[1]])
		last = t[1]
	}
	b.WriteString(fn(s[last:]))

	return b.String()
}

// apply runs one rule across s
func (rd *Renderer) apply(rule *Rule, s string) string {
	switch rule.Kind {
	case KindWrap:
		return replaceMatches(s, rule.pattern, -1, func(prefix string, m []int) (string, bool) {
			content := s[m[2]:m[3]]
			if rule.Open == '<' && isOwnTag(prefix, content) {
				return "", false
			}
			if rule.KeepDelimiters {
				content = string(rule.Open) + content + string(rule.Close)
			}
			return rule.wrap(content, rd.inline), true
		})

	case KindBilingual:
		return replaceMatches(s, rule.pattern, -1, func(_ string, m []int) (string, bool) {
			return rule.wrap(rd.bilingual(s[m[2]:m[3]], rule.Sub), rd.inline), true
		})

	case KindNested:
		return replaceMatches(s, rule.pattern, -1, func(_ string, m []int) (string, bool) {
			content := rd.applyAll(rule.Sub, s[m[2]:m[3]])
			content = rd.separate(rule.Separators, content)
			return rule.wrap(content, rd.inline), true
		})

	case KindBareWord:
		return replaceMatches(s, rule.pattern, 1, func(prefix string, m []int) (string, bool) {
			if rule.openedBy(prefix) {
				return "", false
			}
			return rule.wrap(s[m[0]:m[1]], rd.inline), true
		})

	case KindCrossRef:
		return replaceMatches(s, rule.pattern, -1, func(prefix string, m []int) (string, bool) {
			if r, _ := utf8.DecodeLastRuneInString(prefix); r == '<' || r == '.' || unicode.IsLetter(r) {
				return "", false
			}
			if rule.openedBy(prefix) {
				return "", false
			}
			return rule.wrap(s[m[0]:m[1]], rd.inline), true
		})
	}

	return s
}

// isOwnTag reports whether the angle-bracket content found after prefix is a
// tag written by an earlier pass. A "</span>" only counts when it closes an
// emitted span; typed by the user it is plain text.
func isOwnTag(prefix, content string) bool {
	if content == "/span" {
		_, open := openSpanAt(prefix)
		return open
	}
	return ownOpenTag.MatchString(content)
}

func (rd *Renderer) applyAll(rules []Rule, s string) string {
	for i := range rules {
		s = rd.apply(&rules[i], s)
	}
	return s
}

// bilingual applies the sub-rules to content, then splits it into an
// English and a Chinese span. A split point inside a span moves back to
// where that span opens.
func (rd *Renderer) bilingual(content string, sub []Rule) string {
	content = rd.applyAll(sub, content)

	en, zh, ok := splitCJK(content)
	if !ok {
		return content
	}
	if at, open := openSpanAt(en); open {
		en, zh = content[:at], content[at:]
	}

	var b strings.Builder
	if en != "" {
		b.WriteString(rd.reg.English.wrap(en, rd.inline))
	}
	b.WriteString(rd.reg.Chinese.wrap(zh, rd.inline))

	return b.String()
}

// separate wraps separator literals outside of emitted tags
func (rd *Renderer) separate(seps []Separator, s string) string {
	if len(seps) == 0 {
		return s
	}

	pairs := make([]string, 0, 2*len(seps))
	for _, sep := range seps {
		pairs = append(pairs, sep.Literal, rd.reg.Sep.wrap(sep.Display, rd.inline))
	}
	replacer := strings.NewReplacer(pairs...)

	return mapText(s, replacer.Replace)
}
