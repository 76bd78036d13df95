package markup

import (
	"github.com/goliatone/go-htmlextra/pkg/escape"
)

// WrapText wraps every body delimited by a pair of live sequence delimiters
// in opts.Tag. Delimiters pair left to right with the nearest following live
// delimiter and never across a line break; an unpaired delimiter is left as
// is. An empty sequence matches nothing.
func (p *Processor) WrapText(text escape.Markup, sequence string, opts WrapOptions) (escape.Markup, error) {
	literal := slashes(opts.StripSlashes)
	if sequence == "" {
		return escape.Markup(literal(string(text))), nil
	}

	out, err := replacePairs(string(text), sequence, literal, func(body string) (string, error) {
		wrapped, err := p.wrap(opts.tagName(), opts.ClassName, escape.Markup(literal(body)))
		return string(wrapped), err
	})
	if err != nil {
		return "", err
	}
	return escape.Markup(out), nil
}

// Highlight wraps text delimited by "**".
func (p *Processor) Highlight(text escape.Markup, opts WrapOptions) (escape.Markup, error) {
	return p.WrapText(text, "**", opts)
}
