package attrs

import (
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindBool
	KindNumber
	KindList
	KindTokens
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindList:
		return "list"
	case KindTokens:
		return "tokens"
	case KindMap:
		return "map"
	default:
		return "null"
	}
}

// Value is the canonical form of an attribute value. The zero Value is null.
type Value struct {
	kind   Kind
	text   string
	flag   bool
	list   []Value
	tokens *TokenSet
	fields *Map
}

// Null returns the null Value.
func Null() Value { return Value{} }

// String wraps s.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Bool wraps b.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Int wraps an integer.
func Int(n int64) Value { return Value{kind: KindNumber, text: strconv.FormatInt(n, 10)} }

// Float wraps a floating point number using the shortest exact representation.
func Float(f float64) Value {
	return Value{kind: KindNumber, text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// Number wraps a number already formatted as text.
func Number(text string) Value { return Value{kind: KindNumber, text: text} }

// List wraps an ordered list of values.
func List(items ...Value) Value { return Value{kind: KindList, list: items} }

// Tokens wraps a token set. A nil set is treated as empty.
func Tokens(set *TokenSet) Value {
	if set == nil {
		set = NewTokenSet()
	}
	return Value{kind: KindTokens, tokens: set}
}

// MapValue wraps a mapping. A nil map is treated as empty.
func MapValue(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: KindMap, fields: m}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the text of a string or number value.
func (v Value) Str() string { return v.text }

// Bool returns the flag of a boolean value.
func (v Value) Bool() bool { return v.kind == KindBool && v.flag }

// List returns the items of a list value.
func (v Value) List() []Value { return v.list }

// Tokens returns the token set of a tokens value.
func (v Value) Tokens() *TokenSet { return v.tokens }

// Map returns the mapping of a map value.
func (v Value) Map() *Map { return v.fields }

// IsFalse reports whether v is the boolean false.
func (v Value) IsFalse() bool { return v.kind == KindBool && !v.flag }

// IsEmpty reports whether v is null, false, an empty string or an empty
// collection. Numbers are never empty.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return !v.flag
	case KindString:
		return v.text == ""
	case KindList:
		return len(v.list) == 0
	case KindTokens:
		return v.tokens.Len() == 0
	case KindMap:
		return v.fields.Len() == 0
	default:
		return false
	}
}

// Truthy reports whether v counts as "set" for presence-only attributes.
// Besides empty values, the string "0" and numeric zero are falsy.
func (v Value) Truthy() bool {
	if v.IsEmpty() {
		return false
	}
	switch v.kind {
	case KindString:
		return v.text != "0"
	case KindNumber:
		f, err := strconv.ParseFloat(v.text, 64)
		return err != nil || f != 0
	case KindTokens:
		return len(v.tokens.Tokens()) > 0
	default:
		return true
	}
}

// Text stringifies scalars. Collections are encoded as HTML-safe JSON.
func (v Value) Text() string {
	switch v.kind {
	case KindString, KindNumber:
		return v.text
	case KindBool:
		if v.flag {
			return "true"
		}
		return "false"
	case KindNull:
		return ""
	case KindTokens:
		return strings.Join(v.tokens.Tokens(), " ")
	default:
		return encodeJSON(v)
	}
}

// structured reports whether v can take part in a nested merge.
func (v Value) structured() bool {
	return v.kind == KindList || v.kind == KindMap
}

// asMap views a list as a mapping with positional keys.
func (v Value) asMap() *Map {
	switch v.kind {
	case KindMap:
		return v.fields
	case KindList:
		m := NewMap()
		for _, item := range v.list {
			m.Append(item)
		}
		return m
	default:
		return NewMap()
	}
}
