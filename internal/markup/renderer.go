package markup

import (
	"strings"

	"codeberg.org/snonux/eudicnotes/internal/note"
)

// Renderer turns note fields into HTML. It is immutable after construction
// and safe for concurrent use.
type Renderer struct {
	reg    *Registry
	inline bool
}

// Option configures a Renderer
type Option func(*Renderer)

// WithInlineStyles adds each rule's inline style to the emitted spans, for
// targets without the note stylesheet.
func WithInlineStyles(inline bool) Option {
	return func(rd *Renderer) {
		rd.inline = inline
	}
}

// NewRenderer creates a renderer over reg. A nil registry means the
// default one.
func NewRenderer(reg *Registry, opts ...Option) *Renderer {
	if reg == nil {
		reg = DefaultRegistry()
	}

	rd := &Renderer{reg: reg}
	for _, opt := range opts {
		opt(rd)
	}

	return rd
}

// Registry returns the registry the renderer applies
func (rd *Renderer) Registry() *Registry {
	return rd.reg
}

// InlineStyles reports whether spans carry inline styles
func (rd *Renderer) InlineStyles() bool {
	return rd.inline
}

// Render produces the HTML of a full note
func (rd *Renderer) Render(f note.Fields) string {
	source, text := rd.highlighted(f)
	source = rd.RenderSource(source)
	text = rd.RenderOriginalText(text)

	var b strings.Builder

	b.WriteString(rd.label(note.MarkerSource, "source"))
	b.WriteString(" ")
	b.WriteString(source)
	b.WriteString("\n\n")
	b.WriteString(rd.label(note.MarkerOriginalText, "original-text"))
	b.WriteString("\n\n")
	b.WriteString(text)

	if strings.TrimSpace(f.Notes) != "" {
		b.WriteString("\n\n")
		b.WriteString(rd.label(note.MarkerNotes, "notes"))
		b.WriteString(" ")
		b.WriteString(rd.RenderNotes(f.Notes))
	}

	if strings.TrimSpace(f.Tags) != "" {
		b.WriteString("\n\n")
		b.WriteString(rd.reg.Tags.wrap(f.Tags, rd.inline))
	}

	return rd.reg.Note.wrap(b.String(), true)
}

// PlainNote composes the unrendered note with the word phrase highlighted
// in the source and original text.
func (rd *Renderer) PlainNote(f note.Fields) string {
	f.Source, f.OriginalText = rd.highlighted(f)
	return note.Compose(f)
}

func (rd *Renderer) highlighted(f note.Fields) (source, text string) {
	if strings.TrimSpace(f.WordPhrase) == "" {
		return f.Source, f.OriginalText
	}
	return HighlightWord(f.Source, f.WordPhrase), HighlightWord(f.OriginalText, f.WordPhrase)
}

// RenderSource applies the blue rule
func (rd *Renderer) RenderSource(s string) string {
	return rd.applyNamed(s, RuleBlue)
}

// RenderOriginalText applies the red, green and blue rules in that order
func (rd *Renderer) RenderOriginalText(s string) string {
	return rd.applyNamed(s, RuleRed, RuleGreen, RuleBlue)
}

// RenderNotes applies every registry rule in registry order
func (rd *Renderer) RenderNotes(s string) string {
	return rd.applyAll(rd.reg.rules, s)
}

func (rd *Renderer) applyNamed(s string, names ...string) string {
	for _, name := range names {
		if i, ok := rd.reg.byName[name]; ok {
			s = rd.apply(&rd.reg.rules[i], s)
		}
	}
	return s
}

func (rd *Renderer) label(marker, slug string) string {
	span := rd.reg.Label
	span.Class += " " + slug
	return span.wrap(marker, rd.inline)
}

// Combine joins rendered notes with a horizontal rule, skipping blank ones
func (rd *Renderer) Combine(rendered []string) string {
	parts := make([]string, 0, len(rendered))
	for _, r := range rendered {
		if strings.TrimSpace(r) != "" {
			parts = append(parts, r)
		}
	}

	return strings.Join(parts, "\n"+rd.divider()+"\n")
}

func (rd *Renderer) divider() string {
	d := rd.reg.Divider
	if rd.inline && d.Style != "" {
		return `<hr class="` + d.Class + `" style="` + d.Style + `">`
	}
	return `<hr class="` + d.Class + `">`
}
