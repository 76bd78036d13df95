package attrs

import "strings"

// ClassNormalizer joins the tokens of a token attribute into its rendered
// form. It accepts a string, a list of tokens or a token => keep mapping.
type ClassNormalizer func(value any) string

// NormalizeClassList is the default ClassNormalizer. Tokens are deduplicated
// in first-seen order and joined with single spaces.
func NormalizeClassList(value any) string {
	switch v := value.(type) {
	case string:
		return ParseTokens(v).String()
	case []string:
		return NewTokenSet(v...).String()
	case *TokenSet:
		return v.String()
	}

	raw, err := ValueOf(value)
	if err != nil {
		return ""
	}
	set := coerceTokens(raw)
	if set.Kind() != KindTokens {
		return strings.TrimSpace(raw.Text())
	}
	return set.Tokens().String()
}
