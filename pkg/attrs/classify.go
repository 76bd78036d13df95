package attrs

import "strings"

// Class groups attribute names that share merge and render rules.
type Class uint8

const (
	// ClassPlain is the default: the value is stringified and escaped.
	ClassPlain Class = iota
	// ClassBoolean attributes render as a bare name when truthy.
	ClassBoolean
	// ClassTokens attributes hold a set of space-separated tokens.
	ClassTokens
	// ClassNamespace attributes expand a mapping into prefixed attributes.
	ClassNamespace
	// ClassStyle holds CSS property declarations.
	ClassStyle
	// ClassEmptyAllowed attributes keep an explicit empty string.
	ClassEmptyAllowed
)

func (c Class) String() string {
	switch c {
	case ClassBoolean:
		return "boolean"
	case ClassTokens:
		return "tokens"
	case ClassNamespace:
		return "namespace"
	case ClassStyle:
		return "style"
	case ClassEmptyAllowed:
		return "empty-allowed"
	default:
		return "plain"
	}
}

// Classifier assigns a Class to an attribute name.
type Classifier func(name string) Class

// https://html.spec.whatwg.org/multipage/indices.html#attributes-3
var booleanAttributes = map[string]struct{}{
	"allowfullscreen":          {},
	"async":                    {},
	"autofocus":                {},
	"autoplay":                 {},
	"checked":                  {},
	"controls":                 {},
	"default":                  {},
	"defer":                    {},
	"disabled":                 {},
	"formnovalidate":           {},
	"hidden":                   {},
	"inert":                    {},
	"ismap":                    {},
	"itemscope":                {},
	"loop":                     {},
	"multiple":                 {},
	"muted":                    {},
	"nomodule":                 {},
	"novalidate":               {},
	"open":                     {},
	"playsinline":              {},
	"readonly":                 {},
	"required":                 {},
	"reversed":                 {},
	"selected":                 {},
	"shadowrootclonable":       {},
	"shadowrootdelegatesfocus": {},
	"shadowrootserializable":   {},
}

var tokenAttributes = map[string]struct{}{
	"accesskey": {},
	"blocking":  {},
	"class":     {},
	"headers":   {},
	"itemprop":  {},
	"itemref":   {},
	"itemtype":  {},
	"part":      {},
	"ping":      {},
	"rel":       {},
	"sandbox":   {},
}

var namespaceAttributes = map[string]struct{}{
	"data": {},
	"aria": {},
}

var emptyAllowedAttributes = map[string]struct{}{
	"value": {},
	"alt":   {},
}

// Classify returns the Class for name. Unknown names are ClassPlain.
func Classify(name string) Class {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "style" {
		return ClassStyle
	}
	if _, ok := booleanAttributes[key]; ok {
		return ClassBoolean
	}
	if _, ok := tokenAttributes[key]; ok {
		return ClassTokens
	}
	if _, ok := namespaceAttributes[key]; ok {
		return ClassNamespace
	}
	if _, ok := emptyAllowedAttributes[key]; ok {
		return ClassEmptyAllowed
	}
	return ClassPlain
}
