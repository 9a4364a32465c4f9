package markup

import (
	"strings"
	"testing"
)

func TestStylesheet(t *testing.T) {
	css := DefaultRegistry().Stylesheet()

	for _, want := range []string{
		".highlight.blue { color: #0072CF; font-weight: bold; }",
		".lm5pp_POS.phr {",
		".cf .geo { color: #007A6C; font-weight: normal; }",
		".geo { color: #007A6C; font-style: italic; }",
		".OALECD_chn {",
		"hr.note-separator {",
		".label { font-family: Bookerly; color: #4F7DC0; font-weight: 500; }",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("Stylesheet() misses %q:\n%s", want, css)
		}
	}

	if n := strings.Count(css, ".cf .ndv {"); n != 1 {
		t.Errorf("selector .cf .ndv written %d times", n)
	}
}

func TestSelector(t *testing.T) {
	tests := map[string]string{
		"highlight blue": ".highlight.blue",
		"ACTIV":          ".ACTIV",
		"":               "",
	}
	for in, want := range tests {
		if got := selector(in); got != want {
			t.Errorf("selector(%q) = %q, want %q", in, got, want)
		}
	}
}
