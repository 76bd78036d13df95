package attrs

import "strings"

// Styles serialises CSS properties as "property: value;" declarations joined
// by spaces. A nil result means there is nothing to render. Properties given
// as a non-empty list fail with a *ConfigurationError.
func (r *Renderer) Styles(properties any) (*string, error) {
	v, err := convert(properties, 0, r.maxDepth)
	if err != nil {
		return nil, err
	}
	return r.styles(v)
}

func (r *Renderer) styles(v Value) (*string, error) {
	switch v.Kind() {
	case KindNull:
		return nil, nil
	case KindBool:
		if !v.Bool() {
			return nil, nil
		}
		return nil, &ConfigurationError{Attribute: "style", Reason: "style properties must be a mapping, not a boolean"}
	case KindList, KindTokens:
		if v.IsEmpty() {
			return nil, nil
		}
		return nil, &ConfigurationError{Attribute: "style", Reason: "style properties must be a mapping, not a list"}
	case KindMap:
		if v.Map().isList() && v.Map().Len() > 0 {
			return nil, &ConfigurationError{Attribute: "style", Reason: "style properties must be a mapping, not a list"}
		}
		parts := make([]string, 0, v.Map().Len())
		for k, item := range v.Map().All() {
			if item.IsNull() || (item.Kind() == KindString && strings.TrimSpace(item.Str()) == "") {
				continue
			}
			parts = append(parts, k.String()+": "+strings.TrimSpace(item.Text())+";")
		}
		if len(parts) == 0 {
			return nil, nil
		}
		out := strings.Join(parts, " ")
		return &out, nil
	default:
		out := strings.TrimSpace(v.Text())
		if out == "" {
			return nil, nil
		}
		return &out, nil
	}
}
