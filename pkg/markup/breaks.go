package markup

import (
	"github.com/goliatone/go-htmlextra/pkg/escape"
)

const (
	hardBreak = "<br>"
	softBreak = "&shy;"
)

// Breakerize turns live "||" into <br> and the remaining live "|" into a soft
// hyphen.
func (p *Processor) Breakerize(text escape.Markup, stripSlashes bool) escape.Markup {
	return escape.Markup(replaceBreaks(string(text), hardBreak, softBreak, slashes(stripSlashes)))
}

// StripControlCharacters removes the wrappers of the given control sequences
// ("**" when none are given), keeping their bodies, then turns live "||" into
// a space and drops live "|". Backslash escapes are removed last.
func (p *Processor) StripControlCharacters(text string, sequences ...string) string {
	if len(sequences) == 0 {
		sequences = []string{"**"}
	}

	out := text
	for _, seq := range sequences {
		if seq == "" {
			continue
		}
		// keep never fails.
		out, _ = replacePairs(out, seq, keep, func(body string) (string, error) {
			return body, nil
		})
	}
	out = replaceBreaks(out, " ", "", keep)
	return stripSlashes(out)
}
