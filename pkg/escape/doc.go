// Package escape holds the escaping primitives shared by the attribute, tag and
// inline markup packages. Markup marks strings that are already safe to emit,
// Escaper converts untrusted text into Markup, and the strip helpers reduce
// HTML back to plain text before it is reprocessed.
package escape
