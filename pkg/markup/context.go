package markup

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/goliatone/go-htmlextra/pkg/escape"
)

// Contextualize strips tags from text and cuts it down to opts.Length
// characters around the first case-insensitive occurrence of term. When the
// text is longer than the limit and the term starts past the midpoint, the
// snippet is re-anchored to start half the limit before the term. Cut ends are
// marked with the ellipsis. Every occurrence of term is then wrapped in
// opts.Tag.
//
// Lengths count user-perceived characters (grapheme clusters), so multi-byte
// text is never cut inside a character.
func (p *Processor) Contextualize(text escape.Markup, term string, opts ContextOptions) (escape.Markup, error) {
	plain := escape.StripTags(string(text))
	length := opts.length()

	clusters := graphemes(plain)
	if len(clusters) > length {
		midway := int(math.Round(float64(length) / 2))
		if idx := matchCluster(clusters, term); idx > midway {
			clusters = append([]string{p.ellipsis}, clusters[idx-midway:]...)
		}
		if len(clusters) > length {
			clusters = append(clusters[:length:length], p.ellipsis)
		}
		plain = strings.Join(clusters, "")
	}

	if term == "" {
		return escape.Markup(p.escaper.Escape(plain, escape.ContextHTML)), nil
	}

	var b strings.Builder
	last := 0
	for i := 0; i < len(plain); {
		end := matchFold(plain, i, term)
		if end < 0 {
			_, size := utf8.DecodeRuneInString(plain[i:])
			i += size
			continue
		}
		b.WriteString(p.escaper.Escape(plain[last:i], escape.ContextHTML))
		wrapped, err := p.wrap(opts.tagName(), opts.ClassName, escape.Markup(p.escaper.Escape(plain[i:end], escape.ContextHTML)))
		if err != nil {
			return "", err
		}
		b.WriteString(string(wrapped))
		i, last = end, end
	}
	b.WriteString(p.escaper.Escape(plain[last:], escape.ContextHTML))
	return escape.Markup(b.String()), nil
}

func graphemes(s string) []string {
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// matchCluster returns the index of the cluster where the first
// case-insensitive occurrence of term starts, or -1.
func matchCluster(clusters []string, term string) int {
	if term == "" {
		return -1
	}
	s := strings.Join(clusters, "")
	for idx, offset := 0, 0; idx < len(clusters); idx++ {
		if matchFold(s, offset, term) >= 0 {
			return idx
		}
		offset += len(clusters[idx])
	}
	return -1
}

// matchFold reports the end offset of term when it occurs in s at offset i
// under Unicode case folding, or -1.
func matchFold(s string, i int, term string) int {
	n := utf8.RuneCountInString(term)
	end := i
	for k := 0; k < n; k++ {
		if end >= len(s) {
			return -1
		}
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	if strings.EqualFold(s[i:end], term) {
		return end
	}
	return -1
}
