package template

import (
	"io"
)

// FilterFunc transforms a filter input using its optional parameter. Results
// of type escape.Markup are emitted without escaping.
type FilterFunc func(input any, param any) (any, error)

// TemplateRenderer is the contract the extension registers its filters and
// functions on.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	RegisterFunction(name string, fn any) error
	GlobalContext(data any) error
}

// Preserved marks values handed to templates as they are. Without it the
// engine normalises data through JSON, which drops the key order of ordered
// attribute sets and the type of pre-escaped markup.
type Preserved interface {
	PreserveInTemplate()
}
