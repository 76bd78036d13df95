package playground

import (
	"fmt"

	"github.com/goliatone/go-htmlextra/pkg/attrs"
	"github.com/goliatone/go-htmlextra/pkg/extension"
	"github.com/goliatone/go-htmlextra/pkg/markup"
)

// Operations lists the names Execute accepts, in menu order.
var Operations = []string{
	"paragraphize",
	"breakerize",
	"highlight",
	"wrap_text",
	"contextualize",
	"strip_control_characters",
	"html_attributes",
}

// Request describes one operation applied to Text.
type Request struct {
	Operation string
	Text      string
	// Term is the contextualize search term.
	Term string
	// Sequence is the wrap_text delimiter, or the control sequence removed
	// by strip_control_characters.
	Sequence  string
	Length    int
	Tag       string
	ClassName string
	// NoBreaks disables nl2br for paragraphize.
	NoBreaks bool
	// KeepSlashes keeps backslash escapes for breakerize, highlight and wrap_text.
	KeepSlashes bool
}

// Execute applies the requested operation. For html_attributes, Text holds a
// YAML attribute set or a list of sets.
func Execute(x *extension.Extension, req Request) (string, error) {
	wrap := markup.DefaultWrapOptions()
	wrap.StripSlashes = !req.KeepSlashes
	if req.Tag != "" {
		wrap.Tag = req.Tag
	}
	wrap.ClassName = req.ClassName

	switch req.Operation {
	case "paragraphize":
		return string(x.Paragraphize(req.Text, !req.NoBreaks)), nil
	case "breakerize":
		return string(x.Breakerize(req.Text, wrap.StripSlashes)), nil
	case "highlight":
		out, err := x.Highlight(req.Text, wrap)
		return string(out), err
	case "wrap_text":
		out, err := x.WrapText(req.Text, req.Sequence, wrap)
		return string(out), err
	case "contextualize":
		opts := markup.DefaultContextOptions()
		if req.Length > 0 {
			opts.Length = req.Length
		}
		opts.Tag = wrap.Tag
		opts.ClassName = req.ClassName
		out, err := x.Contextualize(req.Text, req.Term, opts)
		return string(out), err
	case "strip_control_characters":
		if req.Sequence != "" {
			return x.StripControlCharacters(req.Text, req.Sequence), nil
		}
		return x.StripControlCharacters(req.Text), nil
	case "html_attributes":
		sets, err := attrs.DecodeYAMLSets([]byte(req.Text))
		if err != nil {
			return "", err
		}
		sources := make([]any, len(sets))
		for i, set := range sets {
			sources[i] = set
		}
		out, err := x.HTMLAttributes(sources...)
		return string(out), err
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, req.Operation)
	}
}
