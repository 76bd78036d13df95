// Package attrs composes and renders HTML attributes from loosely typed,
// nested descriptions.
//
// Raw inputs (strings, booleans, numbers, slices, maps, Pairs, YAML nodes) are
// converted into the Value tagged union once, coerced according to the
// attribute's Class, deep-merged left to right and finally serialised in the
// order their keys were first established:
//
//	r := attrs.New()
//	out, err := r.Attributes(
//		attrs.Pairs{{"class", "btn"}, {"disabled", true}},
//		attrs.Pairs{{"class", []string{"btn", "btn-primary"}}, {"disabled", false}},
//	)
//	// out == `class="btn btn-primary"`
//
// A false value removes a key set by an earlier source, class-like token
// attributes are unioned, data and aria mappings expand into prefixed
// attributes and style mappings are serialised as CSS declarations.
package attrs
