package attrs

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// encodeJSON serialises v as JSON that can sit inside an HTML attribute:
// quotes, apostrophes, angle brackets and ampersands inside strings are
// written as \u escapes, other unicode is kept verbatim and map keys keep
// their order.
func encodeJSON(v Value) string {
	var b strings.Builder
	writeJSON(&b, v)
	return b.String()
}

func writeJSON(b *strings.Builder, v Value) {
	switch v.Kind() {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		b.WriteString(strconv.FormatBool(v.Bool()))
	case KindNumber:
		// ParseFloat returns ±Inf on overflow
		f, err := strconv.ParseFloat(v.Str(), 64)
		switch {
		case math.IsNaN(f) || math.IsInf(f, 0):
			b.WriteString("null")
		case err == nil && json.Valid([]byte(v.Str())):
			b.WriteString(v.Str())
		default:
			writeJSONString(b, v.Str())
		}
	case KindString:
		writeJSONString(b, v.Str())
	case KindTokens:
		b.WriteByte('[')
		for i, token := range v.Tokens().Tokens() {
			if i > 0 {
				b.WriteByte(',')
			}
			writeJSONString(b, token)
		}
		b.WriteByte(']')
	case KindList:
		b.WriteByte('[')
		for i, item := range v.List() {
			if i > 0 {
				b.WriteByte(',')
			}
			writeJSON(b, item)
		}
		b.WriteByte(']')
	case KindMap:
		m := v.Map()
		if m.Len() > 0 && m.isList() {
			b.WriteByte('[')
			i := 0
			for _, item := range m.All() {
				if i > 0 {
					b.WriteByte(',')
				}
				writeJSON(b, item)
				i++
			}
			b.WriteByte(']')
			return
		}
		b.WriteByte('{')
		i := 0
		for k, item := range m.All() {
			if i > 0 {
				b.WriteByte(',')
			}
			writeJSONString(b, k.String())
			b.WriteByte(':')
			writeJSON(b, item)
			i++
		}
		b.WriteByte('}')
	}
}

func writeJSONString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\'', '<', '>', '&':
			fmt.Fprintf(b, `\u%04X`, r)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028', '\u2029':
			fmt.Fprintf(b, `\u%04X`, r)
		case utf8.RuneError:
			b.WriteString(`\ufffd`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}
