package attrs

import (
	"strings"

	"github.com/elliotchance/orderedmap/v3"
)

// TokenSet is an ordered set of tokens. Each token carries a keep flag: a
// removed token stays in the set as a tombstone so that merging it over an
// earlier set drops the token there too.
type TokenSet struct {
	tokens *orderedmap.OrderedMap[string, bool]
}

// NewTokenSet returns a set holding tokens in first-seen order.
func NewTokenSet(tokens ...string) *TokenSet {
	s := &TokenSet{tokens: orderedmap.NewOrderedMap[string, bool]()}
	for _, token := range tokens {
		s.Add(token)
	}
	return s
}

// ParseTokens splits s on whitespace into a TokenSet.
func ParseTokens(s string) *TokenSet {
	return NewTokenSet(strings.Fields(s)...)
}

// Add marks token as kept. Blank tokens are ignored.
func (s *TokenSet) Add(token string) {
	s.set(token, true)
}

// Remove marks token as removed.
func (s *TokenSet) Remove(token string) {
	s.set(token, false)
}

// Has reports whether token is kept.
func (s *TokenSet) Has(token string) bool {
	if s == nil || s.tokens == nil {
		return false
	}
	keep, _ := s.tokens.Get(token)
	return keep
}

// Len returns the number of entries, tombstones included.
func (s *TokenSet) Len() int {
	if s == nil || s.tokens == nil {
		return 0
	}
	return s.tokens.Len()
}

// Tokens returns the kept tokens in first-seen order.
func (s *TokenSet) Tokens() []string {
	if s.Len() == 0 {
		return nil
	}
	out := make([]string, 0, s.tokens.Len())
	for token, keep := range s.tokens.AllFromFront() {
		if keep {
			out = append(out, token)
		}
	}
	return out
}

// Union returns a new set holding s followed by other. Entries of other
// override the keep flag of tokens already in s without moving them.
func (s *TokenSet) Union(other *TokenSet) *TokenSet {
	out := NewTokenSet()
	for _, src := range []*TokenSet{s, other} {
		if src.Len() == 0 {
			continue
		}
		for token, keep := range src.tokens.AllFromFront() {
			out.set(token, keep)
		}
	}
	return out
}

func (s *TokenSet) String() string {
	return strings.Join(s.Tokens(), " ")
}

func (s *TokenSet) set(token string, keep bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}
	if s.tokens == nil {
		s.tokens = orderedmap.NewOrderedMap[string, bool]()
	}
	s.tokens.Set(token, keep)
}
