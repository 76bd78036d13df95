// Package tag renders single HTML elements from a name, content and a list
// of attribute sources.
package tag

import (
	"strings"

	"github.com/goliatone/go-htmlextra/pkg/attrs"
	"github.com/goliatone/go-htmlextra/pkg/escape"
)

// DefaultVoidElements lists the elements rendered without content or a
// closing tag.
var DefaultVoidElements = []string{
	"area", "base", "br", "col", "embed", "hr", "img", "input",
	"link", "meta", "param", "source", "track", "wbr",
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithAttributeRenderer overrides the attribute renderer.
func WithAttributeRenderer(r *attrs.Renderer) Option {
	return func(t *Renderer) {
		if r != nil {
			t.attrs = r
		}
	}
}

// WithEscaper overrides the escaper used for tag names and text content.
func WithEscaper(e escape.Escaper) Option {
	return func(t *Renderer) {
		if e != nil {
			t.escaper = e
		}
	}
}

// WithVoidElements replaces the set of void elements.
func WithVoidElements(names ...string) Option {
	return func(t *Renderer) {
		t.void = voidSet(names)
	}
}

// Renderer builds element markup.
type Renderer struct {
	attrs   *attrs.Renderer
	escaper escape.Escaper
	void    map[string]struct{}
}

// New constructs a Renderer applying the provided options.
func New(options ...Option) *Renderer {
	t := &Renderer{
		attrs:   attrs.Default(),
		escaper: escape.HTML,
		void:    voidSet(DefaultVoidElements),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(t)
	}
	return t
}

var defaultRenderer = New()

// Default returns the shared Renderer.
func Default() *Renderer {
	return defaultRenderer
}

// Render renders name with escaped text content using the default Renderer.
func Render(name, content string, attributes ...any) (escape.Markup, error) {
	return defaultRenderer.Render(name, content, attributes...)
}

// IsVoid reports whether name is a void element for the Renderer.
func (t *Renderer) IsVoid(name string) bool {
	_, ok := t.void[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Render escapes content and renders it inside the element name.
func (t *Renderer) Render(name, content string, attributes ...any) (escape.Markup, error) {
	return t.RenderMarkup(name, escape.Markup(t.escaper.Escape(content, escape.ContextHTML)), attributes...)
}

// RenderMarkup renders content, which must already be safe, inside the
// element name. Attribute sources are merged left to right. Void elements
// drop the content.
func (t *Renderer) RenderMarkup(name string, content escape.Markup, attributes ...any) (escape.Markup, error) {
	tagName := t.escaper.Escape(strings.ToLower(strings.TrimSpace(name)), escape.ContextHTML)

	rendered, err := t.attrs.Attributes(attributes...)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tagName)
	if rendered != "" {
		b.WriteByte(' ')
		b.WriteString(rendered)
	}
	b.WriteByte('>')

	if t.IsVoid(tagName) {
		return escape.Markup(b.String()), nil
	}

	b.WriteString(string(content))
	b.WriteString("</")
	b.WriteString(tagName)
	b.WriteByte('>')
	return escape.Markup(b.String()), nil
}

func voidSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}
