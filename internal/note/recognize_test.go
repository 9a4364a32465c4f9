package note

import (
	"reflect"
	"testing"
)

func TestRecognize(t *testing.T) {
	tests := []struct {
		name     string
		composed string
		want     Fields
	}{
		{
			name:     "no markers",
			composed: "no markers here",
			want:     Fields{},
		},
		{
			name:     "empty input",
			composed: "",
			want:     Fields{},
		},
		{
			name: "full note",
			composed: `[Source] Genshin Impact > Mondstadt

[Original Text]

The wind carries the song.

[Notes] carry verb to take something from one place to another

#Genshin`,
			want: Fields{
				Source:       "Genshin Impact > Mondstadt",
				OriginalText: "The wind carries the song.",
				Notes:        "carry verb to take something from one place to another",
				Tags:         "#Genshin",
			},
		},
		{
			name:     "without notes",
			composed: "[Source] Book\n\n[Original Text]\n\nA line of text.\n\n#IELTS",
			want: Fields{
				Source:       "Book",
				OriginalText: "A line of text.",
				Tags:         "#IELTS",
			},
		},
		{
			name:     "without tags",
			composed: "[Source] Book\n\n[Original Text]\n\nA line of text.\n\n[Notes] a note",
			want: Fields{
				Source:       "Book",
				OriginalText: "A line of text.",
				Notes:        "a note",
			},
		},
		{
			name:     "markers mid string",
			composed: "copied from chat: [Source] S [Original Text] O [Notes] N #a",
			want:     Fields{Source: "S", OriginalText: "O", Notes: "N", Tags: "#a"},
		},
		{
			name:     "source without original text marker",
			composed: "[Source] dangling source",
			want:     Fields{},
		},
		{
			name:     "several tags comma delimited",
			composed: "[Source] S\n\n[Original Text]\n\nO\n\n#Genshin, #IELTS",
			want:     Fields{Source: "S", OriginalText: "O", Tags: "#Genshin, #IELTS"},
		},
		{
			name:     "several tags space delimited",
			composed: "[Source] S\n\n[Original Text]\n\nO\n\n#Genshin #IELTS",
			want:     Fields{Source: "S", OriginalText: "O", Tags: "#Genshin, #IELTS"},
		},
		{
			name:     "hash inside words is not a tag",
			composed: "[Source] S\n\n[Original Text]\n\nI write C# and issue#12 daily.",
			want:     Fields{Source: "S", OriginalText: "I write C# and issue#12 daily."},
		},
		{
			name:     "chinese text and tags",
			composed: "[Source] 原神\n\n[Original Text]\n\n风带来故事的种子。\n\n[Notes] 种子 seed\n\n#原神",
			want:     Fields{Source: "原神", OriginalText: "风带来故事的种子。", Notes: "种子 seed", Tags: "#原神"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recognize(tt.composed)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Recognize() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestRecognizeTagsFirst(t *testing.T) {
	r := NewRecognizer(TagsFirst)
	got := r.Recognize("[Source] S\n\n[Original Text]\n\nO\n\n#Genshin, #IELTS")

	if got.Tags != "#Genshin" {
		t.Errorf("Tags = %q, want %q", got.Tags, "#Genshin")
	}
	if got.OriginalText != "O" {
		t.Errorf("OriginalText = %q, want %q", got.OriginalText, "O")
	}
}

func TestRecognizeResetsWordPhrase(t *testing.T) {
	f := Fields{Source: "S", OriginalText: "O", WordPhrase: "O"}
	got := Recognize(Compose(f))
	if got.WordPhrase != "" {
		t.Errorf("WordPhrase = %q, want empty", got.WordPhrase)
	}
}

func TestComposeRecognizeRoundTrip(t *testing.T) {
	notes := []Fields{
		{Source: "S", OriginalText: "O"},
		{Source: "Genshin > Liyue", OriginalText: "Rex Lapis <descended> to [Liyue].", Notes: "&descend 下降&", Tags: "#Genshin"},
		{Source: "Cambridge IELTS 18", OriginalText: "Line one.\n\nLine two.", Notes: "noun\n/look up", Tags: "#IELTS, #Reading"},
		{Source: "词典", OriginalText: "他们*在*学习。", Tags: "#中文"},
	}

	for _, f := range notes {
		t.Run(f.Source, func(t *testing.T) {
			got := Recognize(Compose(f))
			if !reflect.DeepEqual(got, f) {
				t.Errorf("round trip mismatch\ngot:  %#v\nwant: %#v", got, f)
			}
		})
	}
}

func TestParseTagMode(t *testing.T) {
	tests := map[string]TagMode{
		"first":  TagsFirst,
		"FIRST ": TagsFirst,
		"all":    TagsAll,
		"":       TagsAll,
		"bogus":  TagsAll,
	}
	for input, want := range tests {
		if got := ParseTagMode(input); got != want {
			t.Errorf("ParseTagMode(%q) = %v, want %v", input, got, want)
		}
	}
}
