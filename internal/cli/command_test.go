package cli

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/eudicnotes/internal"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd.Use != "eudicnotes" {
		t.Errorf("Expected Use to be 'eudicnotes', got %s", cmd.Use)
	}
	if cmd.Version != internal.Version {
		t.Errorf("Expected Version %s, got %s", internal.Version, cmd.Version)
	}

	for _, name := range []string{"config", "db", "inline-styles", "tag-mode"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Expected persistent flag %s to exist", name)
		}
	}

	var paths []string
	Walk(cmd, func(c *cobra.Command) {
		if p := CommandPath(c); p != "" {
			paths = append(paths, p)
		}
	})
	sort.Strings(paths)

	want := []string{
		"archive", "clear-labels", "combine", "export", "history",
		"history delete", "history export", "history import", "history list",
		"history search", "history show", "history sources",
		"recognize", "render", "trim",
	}
	if strings.Join(paths, ",") != strings.Join(want, ",") {
		t.Errorf("Commands = %v, want %v", paths, want)
	}
}

func TestSubcommandFlags(t *testing.T) {
	cmd := CreateRootCommand(NewFlags())

	tests := map[string][]string{
		"render":    {"source", "text", "word", "notes", "tags", "copy", "preview", "no-history"},
		"recognize": {"from-clipboard", "render"},
		"combine":   {"from-clipboard", "copy"},
		"trim":      {"from-clipboard", "copy"},
		"export":    {"csv", "deck-name", "output", "batch"},
	}

	for name, flagNames := range tests {
		sub, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Fatalf("Find(%s) error = %v", name, err)
		}
		for _, f := range flagNames {
			if sub.Flags().Lookup(f) == nil {
				t.Errorf("Expected flag --%s on %s", f, name)
			}
		}
	}
}

func TestRenderFlagsParse(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	render, _, _ := cmd.Find([]string{"render"})
	render.RunE = func(cmd *cobra.Command, args []string) error { return nil }

	cmd.SetArgs([]string{"render", "-s", "Genshin", "--text", "The wind", "-w", "wind", "--tags", "#a", "--copy", "--tag-mode", "first"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if flags.Source != "Genshin" || flags.Text != "The wind" || flags.WordPhrase != "wind" || flags.Tags != "#a" {
		t.Errorf("Unexpected note flags: %+v", flags)
	}
	if !flags.Copy || flags.TagMode != "first" {
		t.Errorf("Unexpected flags: copy=%v tag-mode=%s", flags.Copy, flags.TagMode)
	}
}

func TestSetupFlagsDefaults(t *testing.T) {
	cmd := &cobra.Command{}
	setupFlags(cmd, NewFlags())

	db := cmd.PersistentFlags().Lookup("db")
	if db == nil {
		t.Fatal("db flag not found")
	}
	if db.DefValue != internal.DefaultDBPath() {
		t.Errorf("Expected default db %s, got %s", internal.DefaultDBPath(), db.DefValue)
	}

	if tm := cmd.PersistentFlags().Lookup("tag-mode"); tm == nil || tm.DefValue != "all" {
		t.Errorf("Unexpected tag-mode flag: %+v", tm)
	}
}

func TestInitConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	t.Run("with config file", func(t *testing.T) {
		viper.Reset()

		cfgPath := filepath.Join(t.TempDir(), "test-config.yaml")
		content := `history:
  note_limit: 5
render:
  tag_mode: first
passage:
  replacements:
    - from: "Excerpt From"
      to: ""
`
		if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create test config: %v", err)
		}

		InitConfig(cfgPath)

		if got := viper.GetInt("history.note_limit"); got != 5 {
			t.Errorf("history.note_limit = %d, want 5", got)
		}
		if got := viper.GetString("render.tag_mode"); got != "first" {
			t.Errorf("render.tag_mode = %q, want first", got)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		viper.Reset()

		InitConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		os.Setenv("EUDICNOTES_HISTORY_DB", "/tmp/test-history.db")
		defer os.Unsetenv("EUDICNOTES_HISTORY_DB")

		if got := viper.GetString("history.db"); got != "/tmp/test-history.db" {
			t.Errorf("history.db = %q, want value from environment", got)
		}
	})
}

func TestCommandPath(t *testing.T) {
	root := CreateRootCommand(NewFlags())

	list, _, err := root.Find([]string{"history", "list"})
	if err != nil {
		t.Fatal(err)
	}
	if got := CommandPath(list); got != "history list" {
		t.Errorf("CommandPath() = %q", got)
	}
	if got := CommandPath(root); got != "" {
		t.Errorf("CommandPath(root) = %q", got)
	}
}

func TestFlagNameNormalization(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	export, _, _ := cmd.Find([]string{"export"})
	export.RunE = func(cmd *cobra.Command, args []string) error { return nil }

	cmd.SetArgs([]string{"export", "--deck_name", "Reading", "--inline_styles"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if flags.DeckName != "Reading" {
		t.Errorf("DeckName = %q, want Reading", flags.DeckName)
	}
	if !flags.InlineStyles {
		t.Error("InlineStyles not set by --inline_styles")
	}
}
