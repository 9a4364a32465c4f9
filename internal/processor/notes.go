package processor

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"codeberg.org/snonux/eudicnotes/internal/batch"
	"codeberg.org/snonux/eudicnotes/internal/history"
	"codeberg.org/snonux/eudicnotes/internal/markup"
	"codeberg.org/snonux/eudicnotes/internal/note"
	"codeberg.org/snonux/eudicnotes/internal/passage"
	"codeberg.org/snonux/eudicnotes/internal/preview"
)

// Render renders the note given by the field flags. It prints the plain
// note followed by its HTML and saves the note into the history.
func (p *Processor) Render() error {
	f := note.Fields{
		Source:       p.flags.Source,
		OriginalText: p.flags.Text,
		WordPhrase:   p.flags.WordPhrase,
		Notes:        p.flags.Notes,
		Tags:         note.NormalizeTags(p.flags.Tags),
	}
	if f.IsEmpty() {
		return errors.New("nothing to render: give at least --source or --text")
	}

	rd := p.renderer()
	rendered := rd.Render(f)

	fmt.Fprintln(p.out, rd.PlainNote(f))
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, rendered)

	if p.flags.Copy {
		if err := p.copyToClipboard(rendered); err != nil {
			return err
		}
	}

	if p.flags.Preview != "" {
		if err := preview.Write(p.flags.Preview, f.Summary(60), []string{rendered}); err != nil {
			return err
		}
		fmt.Fprintf(p.errOut, "Preview written to: %s\n", p.flags.Preview)
	}

	if !p.flags.NoHistory {
		p.saveHistory(f)
	}

	return nil
}

// saveHistory stores the note and its inputs. Failures are not fatal.
func (p *Processor) saveHistory(f note.Fields) {
	nh, err := p.noteHistory()
	if err != nil {
		p.warnf("note not saved to history: %v", err)
		return
	}
	if err := nh.Save(f); err != nil {
		p.warnf("note not saved to history: %v", err)
		return
	}
	p.debugf("Saved note, history holds %d notes", nh.Len())

	inputs := []struct {
		key   string
		value string
	}{
		{history.KeySourceHistory, f.Source},
		{history.KeyWordPhraseHistory, f.WordPhrase},
		{history.KeyTagsHistory, f.Tags},
	}
	for _, in := range inputs {
		ih, err := p.inputHistory(in.key)
		if err == nil {
			err = ih.Add(in.value)
		}
		if err != nil {
			p.warnf("%s not updated: %v", in.key, err)
		}
	}
}

// Recognize parses a composed note and prints its fields as YAML
func (p *Processor) Recognize(arg string) error {
	text, err := p.readInput(arg)
	if err != nil {
		return err
	}

	f := p.recognizer().Recognize(text)
	if f.IsEmpty() {
		p.warnf("no note sections recognized")
	}

	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("failed to encode fields: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode fields: %w", err)
	}

	if p.flags.RenderOutput && !f.IsEmpty() {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, p.renderer().Render(f))
	}

	return nil
}

// ClearLabels prints the input with all base labels removed. A composed
// note keeps its labels outside the original text and loses its word
// phrase.
func (p *Processor) ClearLabels(arg string) error {
	text, err := p.readInput(arg)
	if err != nil {
		return err
	}

	if !strings.Contains(text, note.MarkerSource) {
		fmt.Fprintln(p.out, trimmed(markup.StripLabels(text)))
		return nil
	}

	f := markup.ClearLabels(p.recognizer().Recognize(text))
	fmt.Fprintln(p.out, note.Compose(f))
	return nil
}

// Combine renders every composed note of the input and joins them into one
// HTML fragment.
func (p *Processor) Combine(arg string) error {
	text, err := p.readInput(arg)
	if err != nil {
		return err
	}

	notes := batch.ParseNotes(text, p.recognizer())
	if len(notes) == 0 {
		return fmt.Errorf("no notes found: every note must start with %s", note.MarkerSource)
	}
	p.debugf("Combining %d notes", len(notes))

	rd := p.renderer()
	rendered := make([]string, len(notes))
	for i, f := range notes {
		rendered[i] = rd.Render(f)
	}

	combined := rd.Combine(rendered)
	fmt.Fprintln(p.out, combined)

	if p.flags.Copy {
		return p.copyToClipboard(combined)
	}
	return nil
}

// Trim cleans up a pasted passage
func (p *Processor) Trim(arg string) error {
	text, err := p.readInput(arg)
	if err != nil {
		return err
	}

	result := passage.Trim(text, p.replacements())
	if strings.TrimSpace(result) == "" {
		p.warnf("passage is empty after trimming")
	}
	fmt.Fprintln(p.out, result)

	if p.flags.Copy {
		return p.copyToClipboard(result)
	}
	return nil
}
