// Package htmlextra provides HTML helpers for templates: attribute merging and
// rendering, tag building, and light text markup ("**" highlights, "||" line
// breaks, paragraphs and search-result snippets).
//
// NewEngine returns a pongo2 engine with every helper registered:
//
//	env, err := htmlextra.NewEngine(htmlextra.WithEmbeddedTemplates())
//	if err != nil {
//		return err
//	}
//	out, err := env.RenderTemplate("card", map[string]any{
//		"base":  map[string]any{"class": "card"},
//		"attrs": map[string]any{"class": "featured"},
//		"title": "**New** & notable",
//		"body":  "First para.\n\nSecond para.",
//	})
//
// The package-level helpers share one Extension and can be used without a
// template engine.
//
// Go maps have no order, so attributes and namespace keys from a map (including
// template data decoded into map[string]any) render in sorted key order. Use
// Pairs or an attrs.Map to keep the written order.
package htmlextra
