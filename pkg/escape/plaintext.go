package escape

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// blockElements end a paragraph when their closing tag is seen.
var blockElements = map[string]struct{}{
	"address": {}, "article": {}, "aside": {}, "blockquote": {}, "dd": {},
	"div": {}, "dl": {}, "dt": {}, "figcaption": {}, "figure": {},
	"footer": {}, "h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"header": {}, "li": {}, "main": {}, "nav": {}, "ol": {}, "p": {},
	"pre": {}, "section": {}, "table": {}, "tr": {}, "ul": {},
}

// PlainText strips tags from s like StripTags but keeps the text structure:
// <br> becomes a newline and closing block elements become a blank line. The
// result of paragraph rendering therefore survives a second pass unchanged.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	b.Grow(len(s))

	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if bytes.Equal(name, []byte("br")) {
				b.WriteByte('\n')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if _, ok := blockElements[string(name)]; ok {
				b.WriteString("\n\n")
			}
		}
	}
}
