package processor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"

	"codeberg.org/snonux/eudicnotes/internal/cli"
	"codeberg.org/snonux/eudicnotes/internal/clipboard"
	"codeberg.org/snonux/eudicnotes/internal/history"
	"codeberg.org/snonux/eudicnotes/internal/markup"
	"codeberg.org/snonux/eudicnotes/internal/note"
	"codeberg.org/snonux/eudicnotes/internal/passage"
)

// Processor runs the eudicnotes commands
type Processor struct {
	flags  *cli.Flags
	clip   clipboard.Clipboard
	store  history.Store
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// ownStore is set when the store was opened here and must be closed
	ownStore bool
}

// Option configures a Processor
type Option func(*Processor)

// WithClipboard replaces the system clipboard
func WithClipboard(c clipboard.Clipboard) Option {
	return func(p *Processor) { p.clip = c }
}

// WithStore replaces the SQLite history database
func WithStore(s history.Store) Option {
	return func(p *Processor) { p.store = s }
}

// WithOutput redirects standard output and standard error
func WithOutput(out, errOut io.Writer) Option {
	return func(p *Processor) {
		p.out = out
		p.errOut = errOut
	}
}

// WithInput replaces standard input
func WithInput(r io.Reader) Option {
	return func(p *Processor) { p.in = r }
}

// NewProcessor creates a new note processor. The history database is opened
// on first use.
func NewProcessor(flags *cli.Flags, opts ...Option) *Processor {
	p := &Processor{
		flags:  flags,
		clip:   clipboard.NewSystem(),
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Close closes the history database if this processor opened it
func (p *Processor) Close() error {
	if p.store == nil || !p.ownStore {
		return nil
	}

	err := p.store.Close()
	p.store = nil
	p.ownStore = false
	return err
}

// Settings come from the config file or environment when set there, the
// flags otherwise.

func (p *Processor) stringSetting(key, fallback string) string {
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return fallback
}

func (p *Processor) intSetting(key string, fallback int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return fallback
}

func (p *Processor) dbPath() string {
	return p.stringSetting("history.db", p.flags.DBPath)
}

func (p *Processor) deckName() string {
	return p.stringSetting("export.deck_name", p.flags.DeckName)
}

func (p *Processor) renderer() *markup.Renderer {
	inline := p.flags.InlineStyles
	if viper.IsSet("render.inline_styles") {
		inline = viper.GetBool("render.inline_styles")
	}
	return markup.NewRenderer(markup.DefaultRegistry(), markup.WithInlineStyles(inline))
}

func (p *Processor) recognizer() *note.Recognizer {
	return note.NewRecognizer(note.ParseTagMode(p.stringSetting("render.tag_mode", p.flags.TagMode)))
}

func (p *Processor) replacements() []passage.Replacement {
	var reps []passage.Replacement
	if err := viper.UnmarshalKey("passage.replacements", &reps); err != nil {
		p.warnf("ignoring passage.replacements: %v", err)
		return nil
	}
	return reps
}

func (p *Processor) openStore() (history.Store, error) {
	if p.store != nil {
		return p.store, nil
	}

	path := p.dbPath()
	p.debugf("Opening history database %s", path)

	store, err := history.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	p.store = store
	p.ownStore = true

	return store, nil
}

func (p *Processor) noteHistory() (*history.NoteHistory, error) {
	store, err := p.openStore()
	if err != nil {
		return nil, err
	}
	nh, err := history.NewNoteHistory(store, p.intSetting("history.note_limit", history.DefaultNoteLimit))
	if err != nil {
		return nil, err
	}
	if n := nh.Skipped(); n > 0 {
		p.warnf("skipped %d unreadable history entries", n)
	}
	return nh, nil
}

func (p *Processor) inputHistory(key string) (*history.InputHistory, error) {
	store, err := p.openStore()
	if err != nil {
		return nil, err
	}
	return history.NewInputHistory(store, key, p.intSetting("history.input_limit", history.DefaultInputLimit))
}

// readInput returns the text of the clipboard, standard input ("" or "-")
// or the named file.
func (p *Processor) readInput(arg string) (string, error) {
	if p.flags.FromClipboard {
		p.debugf("Reading input from the clipboard")
		return p.clip.ReadText()
	}

	if arg == "" || arg == "-" {
		data, err := io.ReadAll(p.in)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

func (p *Processor) copyToClipboard(text string) error {
	if err := p.clip.WriteText(text); err != nil {
		return err
	}
	fmt.Fprintln(p.errOut, "Copied to clipboard.")
	return nil
}

func (p *Processor) warnf(format string, args ...interface{}) {
	fmt.Fprintf(p.errOut, "Warning: "+format+"\n", args...)
}

func (p *Processor) debugf(format string, args ...interface{}) {
	if os.Getenv("EUDICNOTES_DEBUG") != "" {
		fmt.Fprintf(p.errOut, "  [DEBUG] "+format+"\n", args...)
	}
}

func trimmed(s string) string {
	return strings.TrimRight(s, "\n")
}
