package markup

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-htmlextra/pkg/escape"
)

var (
	blankLines = regexp.MustCompile(`\n{2,}`)
	whitespace = regexp.MustCompile(`\s{2,}`)
)

// Paragraphize strips tags and wraps blank line separated blocks in <p>.
// With nl2br single line breaks become <br>, otherwise they are removed.
// Paragraphize is idempotent: its output paragraphizes to itself.
func (p *Processor) Paragraphize(text escape.Markup, nl2br bool) escape.Markup {
	plain := escape.PlainText(string(text))
	plain = strings.TrimSpace(plain)
	plain = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(plain)
	plain = blankLines.ReplaceAllString(plain, "\n\n")

	var b strings.Builder
	for _, para := range strings.Split(plain, "\n\n") {
		if strings.TrimSpace(para) == "" {
			continue
		}

		var body string
		if nl2br {
			lines := make([]string, 0, strings.Count(para, "\n")+1)
			for _, line := range strings.Split(para, "\n") {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				lines = append(lines, p.paragraphText(line))
			}
			body = strings.Join(lines, hardBreak)
		} else {
			body = p.paragraphText(strings.ReplaceAll(para, "\n", ""))
		}

		b.WriteString("<p>")
		b.WriteString(body)
		b.WriteString("</p>")
	}
	return escape.Markup(b.String())
}

func (p *Processor) paragraphText(s string) string {
	s = whitespace.ReplaceAllString(strings.TrimSpace(s), " ")
	return p.escaper.Escape(s, escape.ContextHTML)
}
