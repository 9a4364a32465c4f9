package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// PlainText returns the text content of a rendered fragment
func PlainText(fragment string) string {
	var b strings.Builder

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
