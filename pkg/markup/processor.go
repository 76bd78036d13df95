package markup

import (
	"github.com/goliatone/go-htmlextra/pkg/escape"
	"github.com/goliatone/go-htmlextra/pkg/tag"
)

// DefaultEllipsis marks text removed by Contextualize.
const DefaultEllipsis = "…"

// Option configures a Processor.
type Option func(*Processor)

// WithTagRenderer overrides the renderer used for wrap tags.
func WithTagRenderer(r *tag.Renderer) Option {
	return func(p *Processor) {
		if r != nil {
			p.tags = r
		}
	}
}

// WithEscaper overrides the escaper used for plain text.
func WithEscaper(e escape.Escaper) Option {
	return func(p *Processor) {
		if e != nil {
			p.escaper = e
		}
	}
}

// WithEllipsis overrides the marker used when Contextualize cuts text.
func WithEllipsis(ellipsis string) Option {
	return func(p *Processor) {
		p.ellipsis = ellipsis
	}
}

// Processor applies the inline markup operations. It holds no mutable state
// and is safe for concurrent use.
type Processor struct {
	tags     *tag.Renderer
	escaper  escape.Escaper
	ellipsis string
}

// New constructs a Processor applying the provided options.
func New(options ...Option) *Processor {
	p := &Processor{
		tags:     tag.Default(),
		escaper:  escape.HTML,
		ellipsis: DefaultEllipsis,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// WrapOptions controls WrapText and Highlight.
type WrapOptions struct {
	StripSlashes bool
	Tag          string
	ClassName    string
}

// DefaultWrapOptions strips slashes and wraps in <em>.
func DefaultWrapOptions() WrapOptions {
	return WrapOptions{StripSlashes: true, Tag: "em"}
}

func (o WrapOptions) tagName() string {
	if o.Tag == "" {
		return "em"
	}
	return o.Tag
}

// ContextOptions controls Contextualize.
type ContextOptions struct {
	Length    int
	Tag       string
	ClassName string
}

// DefaultContextLength is the snippet length used when none is given.
const DefaultContextLength = 250

// DefaultContextOptions keeps 250 characters and wraps matches in <em>.
func DefaultContextOptions() ContextOptions {
	return ContextOptions{Length: DefaultContextLength, Tag: "em"}
}

func (o ContextOptions) tagName() string {
	if o.Tag == "" {
		return "em"
	}
	return o.Tag
}

func (o ContextOptions) length() int {
	if o.Length <= 0 {
		return DefaultContextLength
	}
	return o.Length
}

func (p *Processor) wrap(name, className string, body escape.Markup) (escape.Markup, error) {
	return p.tags.RenderMarkup(name, body, map[string]any{"class": className})
}

var defaultProcessor = New()

// Default returns the shared Processor.
func Default() *Processor {
	return defaultProcessor
}

// Paragraphize runs Processor.Paragraphize on the default Processor.
func Paragraphize(text escape.Markup, nl2br bool) escape.Markup {
	return defaultProcessor.Paragraphize(text, nl2br)
}

// Breakerize runs Processor.Breakerize on the default Processor.
func Breakerize(text escape.Markup, stripSlashes bool) escape.Markup {
	return defaultProcessor.Breakerize(text, stripSlashes)
}

// WrapText runs Processor.WrapText on the default Processor.
func WrapText(text escape.Markup, sequence string, opts WrapOptions) (escape.Markup, error) {
	return defaultProcessor.WrapText(text, sequence, opts)
}

// Highlight runs Processor.Highlight on the default Processor.
func Highlight(text escape.Markup, opts WrapOptions) (escape.Markup, error) {
	return defaultProcessor.Highlight(text, opts)
}

// StripControlCharacters runs Processor.StripControlCharacters on the default Processor.
func StripControlCharacters(text string, sequences ...string) string {
	return defaultProcessor.StripControlCharacters(text, sequences...)
}

// Contextualize runs Processor.Contextualize on the default Processor.
func Contextualize(text escape.Markup, term string, opts ContextOptions) (escape.Markup, error) {
	return defaultProcessor.Contextualize(text, term, opts)
}
