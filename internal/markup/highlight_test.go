package markup

import "testing"

func TestHighlightWord(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		phrase string
		want   string
	}{
		{"whole words only", "Cats category cat", "cat", "Cats category +cat+"},
		{"case insensitive, case kept", "The Wind and the wind", "wind", "The +Wind+ and the +wind+"},
		{"phrase", "look up the word, Look Up", "look up", "+look up+ the word, +Look Up+"},
		{"next to chinese", "风cat风", "cat", "风+cat+风"},
		{"metacharacters are literal", "what? who", "what?", "+what?+ who"},
		{"metacharacters do not widen", "wha who", "what?", "wha who"},
		{"already enclosed", "already +wind+ here wind", "wind", "already +wind+ here +wind+"},
		{"empty phrase", "text", "", "text"},
		{"blank phrase", "text", "  ", "text"},
		{"phrase is trimmed", "a wind b", " wind ", "a +wind+ b"},
		{"empty text", "", "wind", ""},
		{"phrase with delimiter", "I like C++ a lot", "c++", "I like C++ a lot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HighlightWord(tt.text, tt.phrase); got != tt.want {
				t.Errorf("HighlightWord(%q, %q) = %q, want %q", tt.text, tt.phrase, got, tt.want)
			}
		})
	}
}

func TestWordBoundaries(t *testing.T) {
	b := wordBoundaries("ab cd")
	for _, off := range []int{0, 2, 3, 5} {
		if !b[off] {
			t.Errorf("expected boundary at %d", off)
		}
	}
	if b[1] || b[4] {
		t.Errorf("unexpected boundary inside a word: %v", b)
	}
}
