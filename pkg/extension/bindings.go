package extension

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/flosch/pongo2/v6"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/goliatone/go-htmlextra/pkg/escape"
	"github.com/goliatone/go-htmlextra/pkg/markup"
	"github.com/goliatone/go-htmlextra/pkg/render/template"
)

// Function is the signature of template functions. Arguments arrive as
// pongo2 values so that optional arguments can be told apart from nil ones.
type Function func(args ...*pongo2.Value) (*pongo2.Value, error)

// Filters returns the single-parameter helpers keyed by filter name.
func (x *Extension) Filters() map[string]template.FilterFunc {
	return map[string]template.FilterFunc{
		"html_attributes": func(in, _ any) (any, error) {
			return x.HTMLAttributes(in)
		},
		"html_styles": func(in, _ any) (any, error) {
			return styleResult(x.HTMLStyles(in))
		},
		"data_uri": func(in, param any) (any, error) {
			return x.DataURI(in, text(param), nil)
		},
		"strip_tags": func(in, _ any) (any, error) {
			return escape.StripTags(text(in)), nil
		},
		"paragraphize": func(in, param any) (any, error) {
			return x.Paragraphize(in, boolParam(param, true)), nil
		},
		"breakerize": func(in, param any) (any, error) {
			return x.Breakerize(in, boolParam(param, true)), nil
		},
		"highlight": func(in, param any) (any, error) {
			opts := markup.DefaultWrapOptions()
			opts.ClassName = text(param)
			return x.Highlight(in, opts)
		},
		"wrap_text": func(in, param any) (any, error) {
			return x.WrapText(in, text(param), markup.DefaultWrapOptions())
		},
		"contextualize": func(in, param any) (any, error) {
			return x.Contextualize(in, text(param), markup.DefaultContextOptions())
		},
		"strip_control_characters": func(in, param any) (any, error) {
			return x.StripControlCharacters(in, sequences(param)...), nil
		},
	}
}

// Functions returns every helper keyed by function name.
func (x *Extension) Functions() map[string]Function {
	return map[string]Function{
		"html_attributes": func(args ...*pongo2.Value) (*pongo2.Value, error) {
			sources := make([]any, 0, len(args))
			for _, arg := range args {
				sources = append(sources, arg.Interface())
			}
			return x.safe(x.HTMLAttributes(sources...))
		},
		"html_attribute": func(args ...*pongo2.Value) (*pongo2.Value, error) {
			if err := atLeast(args, 1); err != nil {
				return nil, err
			}
			return x.safe(x.HTMLAttribute(args[0].String(), interfaceArg(args, 1), boolArg(args, 2, false)))
		},
		"html_tag": func(args ...*pongo2.Value) (*pongo2.Value, error) {
			if err := atLeast(args, 1); err != nil {
				return nil, err
			}
			var attributes []any
			for _, arg := range args[min(len(args), 2):] {
				attributes = append(attributes, arg.Interface())
			}
			return x.safe(x.HTMLTag(args[0].String(), interfaceArg(args, 1), attributes...))
		},
		"html_styles": func(args ...*pongo2.Value) (*pongo2.Value, error) {
			out, err := styleResult(x.HTMLStyles(interfaceArg(args, 0)))
			if err != nil {
				return nil, err
			}
			return pongo2.AsValue(out), nil
		},
		"html_classes": func(args ...*pongo2.Value) (*pongo2.Value, error) {
			classes := make([]any, 0, len(args))
			for _, arg := range args {
				classes = append(classes, arg.Interface())
			}
			out, err := x.HTMLClasses(classes...)
			if err != nil {
				return nil, err
			}
			return pongo2.AsValue(out), nil
		},
		"data_uri": func(args ...*pongo2.Value) (*pongo2.Value, error) {
			if err := atLeast(args, 1); err != nil {
				return nil, err
			}
			out, err := x.DataURI(args[0].Interface(), stringArg(args, 1, ""), interfaceArg(args, 2))
			if err != nil {
				return nil, err
			}
			return pongo2.AsValue(out), nil
		},
		"html_id": func(args ...*pongo2.Value) (*pongo2.Value, error) {
			return pongo2.AsValue(x.HTMLID(stringArg(args, 0, ""))), nil
		},
		"paragraphize": func(args ...*pongo2.Value) (*pongo2.Value, error) {
			return x.safe(x.Paragraphize(interfaceArg(args, 0), boolArg(args, 1, true)), nil)
		},
		"breakerize": func(args ...*pongo2.Value) (*pongo2.Value, error) {
			return x.safe(x.Breakerize(interfaceArg(args, 0), boolArg(args, 1, true)), nil)
		},
		"highlight": func(args ...*pongo2.Value) (*pongo2.Value, error) {
			return x.safe(x.Highlight(interfaceArg(args, 0), wrapOptions(args, 1)))
		},
		"wrap_text": func(args ...*pongo2.Value) (*pongo2.Value, error) {
			if err := atLeast(args, 2); err != nil {
				return nil, err
			}
			return x.safe(x.WrapText(interfaceArg(args, 0), args[1].String(), wrapOptions(args, 2)))
		},
		"contextualize": func(args ...*pongo2.Value) (*pongo2.Value, error) {
			if err := atLeast(args, 2); err != nil {
				return nil, err
			}
			opts := markup.DefaultContextOptions()
			opts.Length = intArg(args, 2, opts.Length)
			opts.Tag = stringArg(args, 3, opts.Tag)
			opts.ClassName = stringArg(args, 4, "")
			return x.safe(x.Contextualize(interfaceArg(args, 0), args[1].String(), opts))
		},
		"strip_control_characters": func(args ...*pongo2.Value) (*pongo2.Value, error) {
			return pongo2.AsValue(x.StripControlCharacters(interfaceArg(args, 0), sequences(interfaceArg(args, 1))...)), nil
		},
	}
}

// Register adds every filter and function to r. Failures are collected and
// returned together.
func (x *Extension) Register(r template.TemplateRenderer) error {
	if r == nil {
		return errors.New("extension: template renderer is nil")
	}

	var err error
	filters := x.Filters()
	for _, name := range sortedNames(filters) {
		err = multierr.Append(err, r.RegisterFilter(name, x.logFilter(name, filters[name])))
	}
	functions := x.Functions()
	for _, name := range sortedNames(functions) {
		err = multierr.Append(err, r.RegisterFunction(name, x.logFunction(name, functions[name])))
	}
	if err != nil {
		return fmt.Errorf("extension: register helpers: %w", err)
	}
	x.logger.Debug("registered template helpers", zap.Int("filters", len(filters)), zap.Int("functions", len(functions)))
	return nil
}

func (x *Extension) logFilter(name string, fn template.FilterFunc) func(any, any) (any, error) {
	return func(in, param any) (any, error) {
		out, err := fn(in, param)
		if err != nil {
			x.logger.Warn("template filter failed", zap.String("name", name), zap.Error(err))
		}
		return out, err
	}
}

func (x *Extension) logFunction(name string, fn Function) Function {
	return func(args ...*pongo2.Value) (*pongo2.Value, error) {
		out, err := fn(args...)
		if err != nil {
			x.logger.Warn("template function failed", zap.String("name", name), zap.Error(err))
		}
		return out, err
	}
}

func (x *Extension) safe(m escape.Markup, err error) (*pongo2.Value, error) {
	if err != nil {
		return nil, err
	}
	return pongo2.AsSafeValue(m), nil
}

func styleResult(out *string, err error) (any, error) {
	if err != nil || out == nil {
		return nil, err
	}
	return *out, nil
}

func atLeast(args []*pongo2.Value, n int) error {
	if len(args) < n {
		return fmt.Errorf("extension: expected at least %d arguments, got %d", n, len(args))
	}
	return nil
}

func present(args []*pongo2.Value, i int) bool {
	return i < len(args) && args[i] != nil && !args[i].IsNil()
}

func interfaceArg(args []*pongo2.Value, i int) any {
	if !present(args, i) {
		return nil
	}
	return args[i].Interface()
}

func stringArg(args []*pongo2.Value, i int, def string) string {
	if !present(args, i) {
		return def
	}
	return args[i].String()
}

func boolArg(args []*pongo2.Value, i int, def bool) bool {
	if !present(args, i) {
		return def
	}
	return args[i].IsTrue()
}

func intArg(args []*pongo2.Value, i int, def int) int {
	if !present(args, i) {
		return def
	}
	return args[i].Integer()
}

func wrapOptions(args []*pongo2.Value, from int) markup.WrapOptions {
	opts := markup.DefaultWrapOptions()
	opts.StripSlashes = boolArg(args, from, opts.StripSlashes)
	opts.Tag = stringArg(args, from+1, opts.Tag)
	opts.ClassName = stringArg(args, from+2, "")
	return opts
}

func boolParam(param any, def bool) bool {
	if param == nil {
		return def
	}
	return pongo2.AsValue(param).IsTrue()
}

// sequences reads a control sequence parameter given as a string or a list.
func sequences(param any) []string {
	switch v := param.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := strings.TrimSpace(text(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{text(v)}
	}
}

func sortedNames[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
