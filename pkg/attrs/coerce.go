package attrs

import (
	"fmt"
)

// Coerce converts raw into the canonical value for the attribute name:
//
//   - token attributes become a TokenSet (strings split on whitespace, lists
//     deduplicated, mappings read as token => keep flag);
//   - namespace attributes coerce each entry as "{name}-{key}";
//   - style attributes must be mappings; a non-empty list fails with a
//     *ConfigurationError;
//   - everything else is converted as is.
func (r *Renderer) Coerce(name string, raw any) (Value, error) {
	v, err := convert(raw, 0, r.maxDepth)
	if err != nil {
		return Value{}, err
	}
	return r.coerce(name, v, 0)
}

func (r *Renderer) coerce(name string, v Value, depth int) (Value, error) {
	if depth > r.maxDepth {
		return Value{}, ErrDepthExceeded
	}

	switch r.classify(name) {
	case ClassTokens:
		return coerceTokens(v), nil
	case ClassStyle:
		if v.Kind() == KindList {
			if len(v.List()) == 0 {
				return Null(), nil
			}
			return Value{}, &ConfigurationError{Attribute: name, Reason: "style properties must be a mapping, not a list"}
		}
		return v, nil
	case ClassNamespace:
		if !v.structured() {
			return v, nil
		}
		out := NewMap()
		for k, item := range v.asMap().All() {
			coerced, err := r.coerce(fmt.Sprintf("%s-%s", name, k), item, depth+1)
			if err != nil {
				return Value{}, err
			}
			out.Put(k, coerced)
		}
		return MapValue(out), nil
	default:
		return v, nil
	}
}

func coerceTokens(v Value) Value {
	switch v.Kind() {
	case KindString:
		return Tokens(ParseTokens(v.Str()))
	case KindNumber:
		return Tokens(NewTokenSet(v.Str()))
	case KindList:
		set := NewTokenSet()
		for _, item := range v.List() {
			addTokens(set, item)
		}
		return Tokens(set)
	case KindMap:
		set := NewTokenSet()
		for k, item := range v.Map().All() {
			if k.Positional {
				addTokens(set, item)
				continue
			}
			if item.Truthy() {
				set.Add(k.Name)
			} else {
				set.Remove(k.Name)
			}
		}
		return Tokens(set)
	default:
		return v
	}
}

func addTokens(set *TokenSet, item Value) {
	switch item.Kind() {
	case KindString:
		for _, token := range ParseTokens(item.Str()).Tokens() {
			set.Add(token)
		}
	case KindNumber:
		set.Add(item.Str())
	case KindTokens:
		for _, token := range item.Tokens().Tokens() {
			set.Add(token)
		}
	case KindList:
		for _, nested := range item.List() {
			addTokens(set, nested)
		}
	}
}
