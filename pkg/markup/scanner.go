package markup

import "strings"

// live reports whether the delimiter starting at i is preceded by an even
// number of backslashes.
func live(s string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		n++
	}
	return n%2 == 0
}

// findLive returns the index of the first live delim at or after from, or -1.
func findLive(s, delim string, from int) int {
	if delim == "" {
		return -1
	}
	for i := from; i <= len(s)-len(delim); {
		j := strings.Index(s[i:], delim)
		if j < 0 {
			return -1
		}
		pos := i + j
		if live(s, pos) {
			return pos
		}
		i = pos + 1
	}
	return -1
}

// span is one delimited body found by scanPairs.
type span struct {
	start, end int // delimiters included
	body       string
}

// scanPairs finds non-overlapping pairs of live delimiters, pairing each
// opening delimiter with the nearest live delimiter after it. A pair never
// crosses a line break.
func scanPairs(s, delim string) []span {
	var spans []span
	for i := 0; ; {
		open := findLive(s, delim, i)
		if open < 0 {
			return spans
		}
		bodyStart := open + len(delim)
		end := findLive(s, delim, bodyStart)
		if end < 0 {
			return spans
		}
		if strings.IndexByte(s[bodyStart:end], '\n') >= 0 {
			i = open + 1
			continue
		}
		spans = append(spans, span{start: open, end: end + len(delim), body: s[bodyStart:end]})
		i = end + len(delim)
	}
}

// replacePairs rewrites every span found by scanPairs with fn(body) and passes
// the text around the spans through literal.
func replacePairs(s, delim string, literal func(string) string, fn func(body string) (string, error)) (string, error) {
	var b strings.Builder
	last := 0
	for _, sp := range scanPairs(s, delim) {
		b.WriteString(literal(s[last:sp.start]))
		out, err := fn(sp.body)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
		last = sp.end
	}
	b.WriteString(literal(s[last:]))
	return b.String(), nil
}

// replaceBreaks rewrites live "||" as hard and remaining live "|" as soft in
// a single pass.
func replaceBreaks(s, hard, soft string, literal func(string) string) string {
	var b strings.Builder
	last := 0
	for i := 0; i < len(s); {
		if s[i] != '|' || !live(s, i) {
			i++
			continue
		}
		b.WriteString(literal(s[last:i]))
		if i+1 < len(s) && s[i+1] == '|' {
			b.WriteString(hard)
			i += 2
		} else {
			b.WriteString(soft)
			i++
		}
		last = i
	}
	b.WriteString(literal(s[last:]))
	return b.String()
}

// stripSlashes removes one level of backslash escaping: "\x" becomes "x" and
// "\\" becomes "\". A trailing lone backslash is kept.
func stripSlashes(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func keep(s string) string { return s }

func slashes(strip bool) func(string) string {
	if strip {
		return stripSlashes
	}
	return keep
}
