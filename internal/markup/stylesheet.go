package markup

import (
	"fmt"
	"strings"
)

// Stylesheet returns CSS giving the emitted class names their styles, so
// class-only output renders like inline-style output.
func (reg *Registry) Stylesheet() string {
	var b strings.Builder

	seen := make(map[string]bool)
	add := func(selector, style string) {
		if style == "" || seen[selector] {
			return
		}
		seen[selector] = true
		fmt.Fprintf(&b, "%s { %s }\n", selector, style)
	}

	add(selector(reg.Note.Class), reg.Note.Style)
	add(selector(reg.Label.Class), reg.Label.Style)
	add(selector(reg.Tags.Class), reg.Tags.Style)

	for _, r := range reg.rules {
		parent := selector(r.Class)
		add(parent, r.Style)
		for _, sub := range r.Sub {
			add(parent+" "+selector(sub.Class), sub.Style)
		}
	}

	add(selector(reg.English.Class), reg.English.Style)
	add(selector(reg.Chinese.Class), reg.Chinese.Style)
	add(selector(reg.Sep.Class), reg.Sep.Style)
	if reg.Divider.Class != "" {
		add("hr"+selector(reg.Divider.Class), reg.Divider.Style)
	}

	return b.String()
}

// selector turns a class attribute into a compound class selector
func selector(class string) string {
	fields := strings.Fields(class)
	if len(fields) == 0 {
		return ""
	}
	return "." + strings.Join(fields, ".")
}
