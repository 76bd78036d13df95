package htmlextra

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-htmlextra/pkg/attrs"
	"github.com/goliatone/go-htmlextra/pkg/escape"
	"github.com/goliatone/go-htmlextra/pkg/extension"
	"github.com/goliatone/go-htmlextra/pkg/markup"
	"github.com/goliatone/go-htmlextra/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

type (
	// Markup is text already safe to emit as HTML.
	Markup = escape.Markup
	// WrapOptions configures WrapText and Highlight.
	WrapOptions = markup.WrapOptions
	// ContextOptions configures Contextualize.
	ContextOptions = markup.ContextOptions
	// Pairs is an ordered attribute set.
	Pairs = attrs.Pairs
	// Pair is one attribute in Pairs.
	Pair = attrs.Pair
)

// EmbeddedTemplates exposes the bundled example templates (card, snippet) so
// callers can render or extend them.
func EmbeddedTemplates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// Option configures NewEngine.
type Option func(*config)

type config struct {
	engine    []gotemplate.Option
	extension []extension.Option
	logger    *zap.Logger
	embedded  bool
}

// WithEngineOptions forwards options to the template engine.
func WithEngineOptions(opts ...gotemplate.Option) Option {
	return func(cfg *config) {
		cfg.engine = append(cfg.engine, opts...)
	}
}

// WithExtensionOptions forwards options to the helper extension.
func WithExtensionOptions(opts ...extension.Option) Option {
	return func(cfg *config) {
		cfg.extension = append(cfg.extension, opts...)
	}
}

// WithLogger sets the logger of both the engine and the extension.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithEmbeddedTemplates makes EmbeddedTemplates loadable by name. Templates
// from WithEngineOptions loaders take precedence.
func WithEmbeddedTemplates() Option {
	return func(cfg *config) {
		cfg.embedded = true
	}
}

// Environment is a template engine with every helper registered.
type Environment struct {
	*gotemplate.Engine
	Extension *extension.Extension
}

// NewEngine builds a pongo2 engine and registers the helper extension on it.
func NewEngine(options ...Option) (*Environment, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}

	engineOpts := cfg.engine
	extOpts := cfg.extension
	if cfg.logger != nil {
		engineOpts = append([]gotemplate.Option{gotemplate.WithLogger(cfg.logger)}, engineOpts...)
		extOpts = append([]extension.Option{extension.WithLogger(cfg.logger)}, extOpts...)
	}
	if cfg.embedded {
		engineOpts = append(engineOpts, gotemplate.WithFS(EmbeddedTemplates()))
	}

	engine, err := gotemplate.New(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("htmlextra: create engine: %w", err)
	}
	ext := extension.New(extOpts...)
	if err := ext.Register(engine); err != nil {
		return nil, fmt.Errorf("htmlextra: register helpers: %w", err)
	}
	return &Environment{Engine: engine, Extension: ext}, nil
}

var (
	defaultOnce      sync.Once
	defaultExtension *extension.Extension
)

// Default returns the shared extension behind the package-level helpers.
// It has its own ID registry; use extension.New for request-scoped IDs.
func Default() *extension.Extension {
	defaultOnce.Do(func() {
		defaultExtension = extension.New()
	})
	return defaultExtension
}

// Attributes merges the sources and renders them as an attribute string.
func Attributes(sources ...any) (Markup, error) {
	return Default().HTMLAttributes(sources...)
}

// Attribute renders a single attribute.
func Attribute(name string, value any) (Markup, error) {
	return Default().HTMLAttribute(name, value, true)
}

// Tag renders an element. Plain string content is escaped, Markup is not.
func Tag(name string, content any, attributes ...any) (Markup, error) {
	return Default().HTMLTag(name, content, attributes...)
}

// Styles renders a style declaration list, or nil when nothing remains.
func Styles(properties any) (*string, error) {
	return Default().HTMLStyles(properties)
}

// Paragraphize wraps blank line separated blocks of text in <p>.
func Paragraphize(text any, nl2br bool) Markup {
	return Default().Paragraphize(text, nl2br)
}

// Breakerize turns "||" into <br> and "|" into a soft hyphen.
func Breakerize(text any, stripSlashes bool) Markup {
	return Default().Breakerize(text, stripSlashes)
}

// Highlight wraps "**" delimited spans.
func Highlight(text any, opts WrapOptions) (Markup, error) {
	return Default().Highlight(text, opts)
}

// WrapText wraps spans delimited by sequence.
func WrapText(text any, sequence string, opts WrapOptions) (Markup, error) {
	return Default().WrapText(text, sequence, opts)
}

// Contextualize cuts text down around the first match of term and wraps
// every match.
func Contextualize(text any, term string, opts ContextOptions) (Markup, error) {
	return Default().Contextualize(text, term, opts)
}

// StripControlCharacters removes markup control sequences, leaving plain text.
func StripControlCharacters(text any, sequences ...string) string {
	return Default().StripControlCharacters(text, sequences...)
}
