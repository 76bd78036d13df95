package extension

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-htmlextra/pkg/attrs"
	"github.com/goliatone/go-htmlextra/pkg/datauri"
	"github.com/goliatone/go-htmlextra/pkg/escape"
	"github.com/goliatone/go-htmlextra/pkg/ids"
	"github.com/goliatone/go-htmlextra/pkg/markup"
	"github.com/goliatone/go-htmlextra/pkg/tag"
)

// Option configures an Extension.
type Option func(*config)

type config struct {
	logger    *zap.Logger
	escaper   escape.Escaper
	registry  *ids.Registry
	ellipsis  *string
	classList attrs.ClassNormalizer
}

// WithLogger sets the logger used to report failing helpers. Defaults to a
// no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithEscaper overrides the escaper used by every helper. A nil escaper
// restores the default.
func WithEscaper(e escape.Escaper) Option {
	return func(cfg *config) {
		cfg.escaper = escape.OrDefault(e)
	}
}

// WithIDRegistry sets the registry backing html_id. Each Extension gets its
// own registry by default.
func WithIDRegistry(r *ids.Registry) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.registry = r
		}
	}
}

// WithEllipsis overrides the marker contextualize puts at cut ends.
func WithEllipsis(ellipsis string) Option {
	return func(cfg *config) {
		cfg.ellipsis = &ellipsis
	}
}

// WithClassNormalizer overrides how token attributes such as class are joined.
func WithClassNormalizer(fn attrs.ClassNormalizer) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.classList = fn
		}
	}
}

// Extension binds the helpers to one escaper, logger and ID registry.
type Extension struct {
	escaper escape.Escaper
	attrs   *attrs.Renderer
	tags    *tag.Renderer
	markup  *markup.Processor
	ids     *ids.Registry
	logger  *zap.Logger
}

// New constructs an Extension applying the provided options.
func New(options ...Option) *Extension {
	cfg := &config{
		logger:  zap.NewNop(),
		escaper: escape.HTML,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.registry == nil {
		cfg.registry = ids.NewRegistry()
	}

	attrRenderer := attrs.New(attrs.WithEscaper(cfg.escaper), attrs.WithClassNormalizer(cfg.classList))
	tags := tag.New(tag.WithAttributeRenderer(attrRenderer), tag.WithEscaper(cfg.escaper))
	markupOpts := []markup.Option{markup.WithTagRenderer(tags), markup.WithEscaper(cfg.escaper)}
	if cfg.ellipsis != nil {
		markupOpts = append(markupOpts, markup.WithEllipsis(*cfg.ellipsis))
	}

	return &Extension{
		escaper: cfg.escaper,
		attrs:   attrRenderer,
		tags:    tags,
		markup:  markup.New(markupOpts...),
		ids:     cfg.registry,
		logger:  cfg.logger,
	}
}

// IDs returns the registry backing html_id.
func (x *Extension) IDs() *ids.Registry {
	return x.ids
}

// HTMLAttributes merges sources and renders them as attributes.
func (x *Extension) HTMLAttributes(sources ...any) (escape.Markup, error) {
	out, err := x.attrs.Attributes(sources...)
	return escape.Markup(out), err
}

// HTMLAttribute renders one attribute.
func (x *Extension) HTMLAttribute(name string, value any, topLevel bool) (escape.Markup, error) {
	out, err := x.attrs.Attribute(name, value, topLevel)
	return escape.Markup(out), err
}

// HTMLTag renders an element. Plain content is escaped, escape.Markup content
// is used as is.
func (x *Extension) HTMLTag(name string, content any, attributes ...any) (escape.Markup, error) {
	if m, ok := content.(escape.Markup); ok {
		return x.tags.RenderMarkup(name, m, attributes...)
	}
	return x.tags.Render(name, text(content), attributes...)
}

// HTMLClasses joins class names given as strings, lists or name => condition
// mappings. Names are deduplicated in first-seen order; a false condition
// skips the name without removing one added by an earlier argument.
func (x *Extension) HTMLClasses(args ...any) (string, error) {
	set := attrs.NewTokenSet()
	for i, arg := range args {
		v, err := attrs.ValueOf(arg)
		if err != nil {
			return "", fmt.Errorf("html_classes: argument %d: %w", i, err)
		}
		switch v.Kind() {
		case attrs.KindString, attrs.KindList, attrs.KindTokens, attrs.KindMap:
		default:
			return "", fmt.Errorf("html_classes: argument %d should be a string, a list or a mapping, got %s", i, v.Kind())
		}
		for _, token := range attrs.ParseTokens(attrs.NormalizeClassList(v)).Tokens() {
			set.Add(token)
		}
	}
	return set.String(), nil
}

// DataURI encodes data as a data URI. An empty mimeType is detected from the
// content. parameters is a name => value mapping written in order.
func (x *Extension) DataURI(data any, mimeType string, parameters any) (string, error) {
	var params []datauri.Parameter
	if parameters != nil {
		v, err := attrs.ValueOf(parameters)
		if err != nil {
			return "", fmt.Errorf("data_uri: parameters: %w", err)
		}
		switch v.Kind() {
		case attrs.KindNull:
		case attrs.KindMap:
			for k, item := range v.Map().All() {
				params = append(params, datauri.Parameter{Name: k.String(), Value: item.Text()})
			}
		default:
			return "", fmt.Errorf("data_uri: parameters should be a mapping, got %s", v.Kind())
		}
	}

	var raw []byte
	if b, ok := data.([]byte); ok {
		raw = b
	} else {
		raw = []byte(text(data))
	}
	return datauri.Encode(raw, mimeType, params...), nil
}

// HTMLStyles serialises CSS properties. A nil result means nothing to render.
func (x *Extension) HTMLStyles(properties any) (*string, error) {
	return x.attrs.Styles(properties)
}

// HTMLID returns an ID unique within the Extension's registry.
func (x *Extension) HTMLID(base string) string {
	if base == "" {
		return x.ids.Random()
	}
	return x.ids.Unique(base)
}

// Paragraphize wraps paragraphs of text in <p>.
func (x *Extension) Paragraphize(input any, nl2br bool) escape.Markup {
	return x.markup.Paragraphize(x.preEscape(input), nl2br)
}

// Breakerize turns "||" and "|" into hard and soft breaks.
func (x *Extension) Breakerize(input any, stripSlashes bool) escape.Markup {
	return x.markup.Breakerize(x.preEscape(input), stripSlashes)
}

// Highlight wraps text delimited by "**".
func (x *Extension) Highlight(input any, opts markup.WrapOptions) (escape.Markup, error) {
	return x.markup.Highlight(x.preEscape(input), opts)
}

// WrapText wraps text delimited by sequence.
func (x *Extension) WrapText(input any, sequence string, opts markup.WrapOptions) (escape.Markup, error) {
	return x.markup.WrapText(x.preEscape(input), x.escaper.Escape(sequence, escape.ContextHTML), opts)
}

// Contextualize cuts text down around term and wraps its occurrences.
func (x *Extension) Contextualize(input any, term string, opts markup.ContextOptions) (escape.Markup, error) {
	return x.markup.Contextualize(x.preEscape(input), term, opts)
}

// StripControlCharacters removes control sequences from text.
func (x *Extension) StripControlCharacters(input any, sequences ...string) string {
	return x.markup.StripControlCharacters(text(input), sequences...)
}

// preEscape escapes plain input; escape.Markup passes through.
func (x *Extension) preEscape(input any) escape.Markup {
	if m, ok := input.(escape.Markup); ok {
		return m
	}
	return escape.Markup(x.escaper.Escape(text(input), escape.ContextHTML))
}

func text(input any) string {
	switch v := input.(type) {
	case nil:
		return ""
	case string:
		return v
	case escape.Markup:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
