package attrs

import (
	"strings"

	"github.com/goliatone/go-htmlextra/pkg/escape"
)

// Attributes merges sources and renders the result as a space separated list
// of attributes. Positional entries have no attribute name and are skipped.
func (r *Renderer) Attributes(sources ...any) (string, error) {
	merged, err := r.Merge(sources...)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, merged.Len())
	for k, v := range merged.All() {
		if k.Positional {
			continue
		}
		out, err := r.render(k.Name, v, true)
		if err != nil {
			return "", err
		}
		if out != "" {
			parts = append(parts, out)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " ")), nil
}

// Attribute renders a single attribute. The result is empty when there is
// nothing to render. Namespace attributes such as data and aria only expand
// into prefixed attributes when topLevel is set.
func (r *Renderer) Attribute(name string, value any, topLevel bool) (string, error) {
	v, err := r.Coerce(name, value)
	if err != nil {
		return "", err
	}
	return r.render(name, v, topLevel)
}

func (r *Renderer) render(name string, v Value, topLevel bool) (string, error) {
	if !ValidName(name) || v.IsNull() {
		return "", nil
	}

	class := r.classify(name)
	if class == ClassBoolean || v.Kind() == KindBool {
		if v.Truthy() {
			return name, nil
		}
		return "", nil
	}

	switch class {
	case ClassNamespace:
		if topLevel && v.structured() {
			parts := make([]string, 0, v.asMap().Len())
			for k, item := range v.asMap().All() {
				out, err := r.render(name+"-"+k.String(), item, false)
				if err != nil {
					return "", err
				}
				if out != "" {
					parts = append(parts, out)
				}
			}
			return strings.Join(parts, " "), nil
		}
	case ClassTokens:
		var joined string
		if v.Kind() == KindTokens {
			joined = r.classList(v.Tokens().Tokens())
		} else {
			joined = r.classList(v.Text())
		}
		if joined == "" {
			return "", nil
		}
		return r.pair(name, joined), nil
	case ClassStyle:
		out, err := r.styles(v)
		if err != nil {
			return "", err
		}
		if out == nil {
			return "", nil
		}
		return r.pair(name, *out), nil
	}

	return r.pair(name, v.Text()), nil
}

func (r *Renderer) pair(name, value string) string {
	return name + `="` + r.escaper.Escape(value, escape.ContextAttribute) + `"`
}

// ValidName reports whether name can be written as an attribute name.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		switch c {
		case ' ', '\t', '\n', '\f', '\r', '"', '\'', '<', '>', '/', '=', 0:
			return false
		}
		if c < 0x20 || c == 0x7f {
			return false
		}
	}
	return true
}
