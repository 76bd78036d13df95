// Package extension exposes the attribute, tag and inline markup helpers to
// templates.
//
// Every helper is available as a function, and the ones taking a single
// argument besides their input are also available as filters:
//
//	{{ html_tag("a", label, link_attrs) }}
//	{{ intro|paragraphize }}
//	{{ title|highlight:"hl" }}
//	<div class="{{ html_classes("card", flags) }}">
//	<img src="{{ icon|data_uri:"image/svg+xml" }}">
//
// Plain string inputs are HTML escaped before markup processing, so author
// text can never inject tags. Values of type escape.Markup, such as the output
// of another helper, are used as they are.
package extension
