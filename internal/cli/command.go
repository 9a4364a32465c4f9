package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/eudicnotes/internal"
)

// CreateRootCommand creates and configures the root cobra command with all
// subcommands. Run functions are attached by the caller.
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "eudicnotes",
		Short: "Reading note formatter for Eudic",
		Long: `eudicnotes turns annotated reading notes into styled HTML for the Eudic
dictionary app and Anki.

Inline markup: +blue+ <red> [green] *shortcut 中文* &definition 释义&
@collocation, other@ ^geo 地区^ !prefix! and bare part-of-speech words.

Examples:
  eudicnotes render --source "Genshin" --text "The wind <carries> stories." --word wind
  eudicnotes recognize --from-clipboard --render
  eudicnotes combine notes.txt --copy
  eudicnotes history list
  eudicnotes export --deck-name Reading`,
		Version:      internal.Version,
		SilenceUsage: true,
	}

	setupFlags(rootCmd, flags)

	rootCmd.AddCommand(
		newRenderCommand(flags),
		newRecognizeCommand(flags),
		newClearLabelsCommand(),
		newCombineCommand(flags),
		newTrimCommand(flags),
		newHistoryCommand(),
		newExportCommand(flags),
		newArchiveCommand(),
	)

	// Accept --deck_name for --deck-name and so on, like the config keys
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	return rootCmd
}

func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.eudicnotes.yaml)")
	cmd.PersistentFlags().StringVar(&flags.DBPath, "db", internal.DefaultDBPath(), "History database file")
	cmd.PersistentFlags().BoolVar(&flags.InlineStyles, "inline-styles", false, "Add inline style attributes to the rendered spans")
	cmd.PersistentFlags().StringVar(&flags.TagMode, "tag-mode", flags.TagMode, "Tags to recognize after the last section: all or first")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("history.db", cmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("render.inline_styles", cmd.PersistentFlags().Lookup("inline-styles"))
	viper.BindPFlag("render.tag_mode", cmd.PersistentFlags().Lookup("tag-mode"))
}

func newRenderCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a note from its fields",
		Long: `Render composes the plain note and its HTML from the given fields. The
word or phrase is highlighted in the source and the original text.`,
		Args: cobra.NoArgs,
	}

	cmd.Flags().StringVarP(&flags.Source, "source", "s", "", "Source of the passage")
	cmd.Flags().StringVarP(&flags.Text, "text", "t", "", "Original text")
	cmd.Flags().StringVarP(&flags.WordPhrase, "word", "w", "", "Word or phrase to highlight")
	cmd.Flags().StringVarP(&flags.Notes, "notes", "n", "", "Notes")
	cmd.Flags().StringVar(&flags.Tags, "tags", "", "Tags, e.g. \"#Genshin, #Reading\"")
	cmd.Flags().BoolVar(&flags.Copy, "copy", false, "Copy the rendered HTML to the clipboard")
	cmd.Flags().StringVar(&flags.Preview, "preview", "", "Write an HTML preview page to this file")
	cmd.Flags().BoolVar(&flags.NoHistory, "no-history", false, "Do not save the note into the history")

	return cmd
}

func newRecognizeCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recognize [FILE|-]",
		Short: "Parse a composed note back into its fields",
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.Flags().BoolVar(&flags.FromClipboard, "from-clipboard", false, "Read the note from the clipboard")
	cmd.Flags().BoolVar(&flags.RenderOutput, "render", false, "Also print the rendered HTML")

	return cmd
}

func newClearLabelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-labels [FILE|-]",
		Short: "Strip +blue+, <red> and [green] labels from text",
		Args:  cobra.MaximumNArgs(1),
	}
}

func newCombineCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combine [FILE|-]",
		Short: "Render several composed notes and join them",
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.Flags().BoolVar(&flags.FromClipboard, "from-clipboard", false, "Read the notes from the clipboard")
	cmd.Flags().BoolVar(&flags.Copy, "copy", false, "Copy the combined HTML to the clipboard")

	return cmd
}

func newTrimCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trim [FILE|-]",
		Short: "Clean up a pasted passage",
		Long: `Trim normalises the passage, applies the passage.replacements from the
config file, trims every line and separates paragraphs by a blank line.`,
		Args: cobra.MaximumNArgs(1),
	}

	cmd.Flags().BoolVar(&flags.FromClipboard, "from-clipboard", false, "Read the passage from the clipboard")
	cmd.Flags().BoolVar(&flags.Copy, "copy", false, "Copy the trimmed passage to the clipboard")

	return cmd
}

func newHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse and manage saved notes",
	}

	cmd.AddCommand(
		&cobra.Command{Use: "list", Short: "List saved notes", Args: cobra.NoArgs},
		&cobra.Command{Use: "show INDEX", Short: "Show a saved note", Args: cobra.ExactArgs(1)},
		&cobra.Command{Use: "delete INDEX", Short: "Delete a saved note", Args: cobra.ExactArgs(1)},
		&cobra.Command{Use: "search QUERY", Short: "Fuzzy search saved notes", Args: cobra.MinimumNArgs(1)},
		&cobra.Command{Use: "sources [QUERY]", Short: "List or search recently used sources", Args: cobra.ArbitraryArgs},
		&cobra.Command{Use: "export FILE|-", Short: "Export saved notes as YAML", Args: cobra.ExactArgs(1)},
		&cobra.Command{Use: "import FILE|-", Short: "Import notes from a YAML export", Args: cobra.ExactArgs(1)},
	)

	return cmd
}

func newExportCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export notes to Anki",
		Long: `Export writes the saved notes, or the notes of a batch file, as an Anki
package (APKG). Use --csv for the legacy CSV import format.`,
		Args: cobra.NoArgs,
	}

	cmd.Flags().BoolVar(&flags.CSV, "csv", false, "Generate legacy CSV format instead of APKG")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output file (default derived from the deck name)")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Export the notes of this file instead of the history")

	viper.BindPFlag("export.deck_name", cmd.Flags().Lookup("deck-name"))

	return cmd
}

func newArchiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "archive",
		Short: "Move the history database into the archive directory",
		Args:  cobra.NoArgs,
	}
}

// CommandPath returns the path of cmd below the root, e.g. "history list"
func CommandPath(cmd *cobra.Command) string {
	path := strings.Fields(cmd.CommandPath())
	if len(path) <= 1 {
		return ""
	}
	return strings.Join(path[1:], " ")
}

// Walk calls fn for cmd and every command below it
func Walk(cmd *cobra.Command, fn func(*cobra.Command)) {
	fn(cmd)
	for _, sub := range cmd.Commands() {
		Walk(sub, fn)
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".eudicnotes" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".eudicnotes")
	}

	// Environment variables, e.g. EUDICNOTES_HISTORY_DB
	viper.SetEnvPrefix("EUDICNOTES")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
