// Package markup turns lightly marked author text into HTML.
//
// Control sequences are literal delimiters such as "|", "||" or "**". A
// delimiter is live unless it is preceded by an odd number of backslashes, in
// which case it stays literal and the escaping backslash is removed when
// slashes are stripped:
//
//	p := markup.New()
//	out, _ := p.Highlight(`a **b** \**c\**`, markup.DefaultWrapOptions())
//	// a <em>b</em> **c**
//
// Inputs are escape.Markup: text that has already been HTML escaped, or that
// is trusted. The template extension escapes plain strings before they reach
// these functions.
package markup
