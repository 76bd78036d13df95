package escape

import (
	"html"
	"strings"
)

// Context names the output context a value is escaped for.
type Context string

const (
	// ContextHTML escapes text placed between tags.
	ContextHTML Context = "html"
	// ContextAttribute escapes text placed inside a double-quoted attribute value.
	ContextAttribute Context = "html_attr"
)

// Markup is HTML that is safe to emit without further escaping.
type Markup string

func (m Markup) String() string {
	return string(m)
}

// PreserveInTemplate keeps Markup values typed when they travel through
// template data, so helpers can tell them apart from plain strings.
func (Markup) PreserveInTemplate() {}

// Escaper escapes text for the given context.
type Escaper interface {
	Escape(text string, ctx Context) string
}

// EscaperFunc adapts a function to the Escaper interface.
type EscaperFunc func(text string, ctx Context) string

// Escape calls fn(text, ctx).
func (fn EscaperFunc) Escape(text string, ctx Context) string {
	return fn(text, ctx)
}

// HTML is the default escaper. Both contexts escape &, <, >, ' and ".
var HTML Escaper = EscaperFunc(func(text string, _ Context) string {
	return html.EscapeString(text)
})

// OrDefault returns e, or HTML when e is nil.
func OrDefault(e Escaper) Escaper {
	if e == nil {
		return HTML
	}
	return e
}

// Text escapes plain text into Markup using the default escaper.
func Text(text string) Markup {
	return Markup(HTML.Escape(text, ContextHTML))
}

// Join concatenates markup fragments using sep.
func Join(parts []Markup, sep string) Markup {
	if len(parts) == 0 {
		return ""
	}
	raw := make([]string, len(parts))
	for i, part := range parts {
		raw[i] = string(part)
	}
	return Markup(strings.Join(raw, sep))
}
