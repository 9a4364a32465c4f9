package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	DBPath       string
	InlineStyles bool
	TagMode      string

	// Note fields
	Source     string
	Text       string
	WordPhrase string
	Notes      string
	Tags       string

	// Input and output
	FromClipboard bool
	Copy          bool
	RenderOutput  bool
	Preview       string
	NoHistory     bool

	// Export flags
	CSV       bool
	DeckName  string
	Output    string
	BatchFile string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		TagMode:  "all",
		DeckName: "EudicNotes",
	}
}
