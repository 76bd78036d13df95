package extension_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-htmlextra/pkg/attrs"
	"github.com/goliatone/go-htmlextra/pkg/escape"
	"github.com/goliatone/go-htmlextra/pkg/extension"
	"github.com/goliatone/go-htmlextra/pkg/ids"
	"github.com/goliatone/go-htmlextra/pkg/render/template/gotemplate"
	"github.com/goliatone/go-htmlextra/pkg/testsupport"
)

func TestExtension_TemplateHelpers(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]any
		want     string
	}{
		{
			name:     "paragraphize filter escapes plain text",
			template: "{{ text|paragraphize }}",
			data:     map[string]any{"text": "a < b\n\nc"},
			want:     "<p>a &lt; b</p><p>c</p>",
		},
		{
			name:     "paragraphize without line breaks",
			template: "{{ text|paragraphize:false }}",
			data:     map[string]any{"text": "a\nb"},
			want:     "<p>ab</p>",
		},
		{
			name:     "highlight filter",
			template: "{{ title|highlight }}",
			data:     map[string]any{"title": "Hello **World** <3"},
			want:     "Hello <em>World</em> &lt;3",
		},
		{
			name:     "highlight filter with class",
			template: `{{ title|highlight:"hl" }}`,
			data:     map[string]any{"title": "**x**"},
			want:     `<em class="hl">x</em>`,
		},
		{
			name:     "chained filters keep markup",
			template: "{{ title|highlight|breakerize }}",
			data:     map[string]any{"title": "a **b**|c"},
			want:     "a <em>b</em>&shy;c",
		},
		{
			name:     "wrap_text filter",
			template: `{{ title|wrap_text:"__" }}`,
			data:     map[string]any{"title": "a __b__"},
			want:     "a <em>b</em>",
		},
		{
			name:     "strip_control_characters result is escaped by the engine",
			template: "{{ text|strip_control_characters }}",
			data:     map[string]any{"text": "a **b** <c>"},
			want:     "a b &lt;c&gt;",
		},
		{
			name:     "html_tag function",
			template: `{{ html_tag("a", label, link) }}`,
			data: map[string]any{
				"label": "Tom & Jerry",
				"link":  attrs.Pairs{{Name: "href", Value: "/x?a=1&b=2"}, {Name: "class", Value: "nav"}},
			},
			want: `<a href="/x?a=1&amp;b=2" class="nav">Tom &amp; Jerry</a>`,
		},
		{
			name:     "html_tag keeps markup content",
			template: `{{ html_tag("h1", highlight(title)) }}`,
			data:     map[string]any{"title": "**Big** news"},
			want:     `<h1><em>Big</em> news</h1>`,
		},
		{
			name:     "html_attributes merges sources",
			template: `<button {{ html_attributes(base, extra) }}>`,
			data: map[string]any{
				"base":  attrs.Pairs{{Name: "class", Value: "btn"}, {Name: "disabled", Value: true}},
				"extra": attrs.Pairs{{Name: "class", Value: "primary"}, {Name: "disabled", Value: false}},
			},
			want: `<button class="btn primary">`,
		},
		{
			name:     "html_attribute expands namespaces",
			template: `<div {{ html_attribute("data", data, true) }}>`,
			data:     map[string]any{"data": attrs.Pairs{{Name: "id", Value: 5}, {Name: "active", Value: true}}},
			want:     `<div data-id="5" data-active>`,
		},
		{
			name:     "html_styles function",
			template: `{{ html_styles(styles) }}`,
			data:     map[string]any{"styles": attrs.Pairs{{Name: "color", Value: "red"}}},
			want:     "color: red;",
		},
		{
			name:     "contextualize function",
			template: `{{ contextualize(text, "key", 10) }}`,
			data:     map[string]any{"text": "aaaaaaaaaaaaaaa key bb"},
			want:     "…aaaa <em>key</em> …",
		},
		{
			name:     "html_classes function",
			template: `{{ html_classes("a b", list, flags) }}`,
			data: map[string]any{
				"list":  []string{"c", "a"},
				"flags": map[string]any{"d": true, "e": false},
			},
			want: "a b c d",
		},
		{
			name:     "data_uri filter with mime",
			template: `{{ text|data_uri:"text/plain" }}`,
			data:     map[string]any{"text": "a b"},
			want:     "data:text/plain,a%20b",
		},
		{
			name:     "data_uri filter detects mime",
			template: `{{ text|data_uri }}`,
			data:     map[string]any{"text": "hi"},
			want:     "data:text/plain,hi",
		},
		{
			name:     "data_uri function with parameters",
			template: `{{ data_uri(text, "text/html", params) }}`,
			data: map[string]any{
				"text":   "<b>",
				"params": attrs.Pairs{{Name: "charset", Value: "utf-8"}, {Name: "name", Value: "x y"}},
			},
			want: "data:text/html;charset=utf-8;name=x%20y,%3Cb%3E",
		},
		{
			name:     "data_uri function base64",
			template: `{{ data_uri("hi", "image/png") }}`,
			want:     "data:image/png;base64,aGk=",
		},
		{
			name:     "strip_tags filter",
			template: `{{ html|strip_tags }}`,
			data:     map[string]any{"html": "<b>a</b> &amp; b"},
			want:     "a &amp; b",
		},
		{
			name:     "html_id function",
			template: `{{ html_id("Main Menu") }} {{ html_id("Main Menu") }}`,
			want:     "main-menu main-menu-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newEngine(t, extension.New(extension.WithLogger(testsupport.Logger(t))))

			got, err := engine.RenderString(tt.template, tt.data)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("render mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtension_LogsFailures(t *testing.T) {
	logger, logs := testsupport.ObservedLogger(zapcore.WarnLevel)
	engine := newEngine(t, extension.New(extension.WithLogger(logger)))

	_, err := engine.RenderString(`{{ html_styles(styles) }}`, map[string]any{"styles": []string{"red"}})
	if err == nil {
		t.Fatalf("expected style list to fail rendering")
	}

	entries := logs.FilterMessage("template function failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one warning, got %d", len(entries))
	}
	if name := entries[0].ContextMap()["name"]; name != "html_styles" {
		t.Fatalf("expected html_styles in log context, got %v", name)
	}
}

func TestExtension_GoHelpers(t *testing.T) {
	x := extension.New()

	tag, err := x.HTMLTag("p", escape.Markup("<b>x</b>"), map[string]any{"id": "intro"})
	if err != nil {
		t.Fatalf("html tag: %v", err)
	}
	if diff := cmp.Diff(escape.Markup(`<p id="intro"><b>x</b></p>`), tag); diff != "" {
		t.Fatalf("html tag mismatch (-want +got):\n%s", diff)
	}

	escaped, err := x.HTMLTag("p", "<b>x</b>")
	if err != nil {
		t.Fatalf("html tag: %v", err)
	}
	if diff := cmp.Diff(escape.Markup(`<p>&lt;b&gt;x&lt;/b&gt;</p>`), escaped); diff != "" {
		t.Fatalf("html tag mismatch (-want +got):\n%s", diff)
	}

	if got := x.Breakerize("a<b|c", true); got != "a&lt;b&shy;c" {
		t.Fatalf("unexpected breakerize output %q", got)
	}
	if got := x.Breakerize(escape.Markup("<i>a</i>||b"), true); got != "<i>a</i><br>b" {
		t.Fatalf("unexpected breakerize output %q", got)
	}

	styles, err := x.HTMLStyles(map[string]any{})
	if err != nil || styles != nil {
		t.Fatalf("expected nil styles, got %v (err=%v)", styles, err)
	}
}

func TestExtension_SharedIDRegistry(t *testing.T) {
	registry := ids.NewRegistry()
	page := extension.New(extension.WithIDRegistry(registry))
	partial := extension.New(extension.WithIDRegistry(registry))

	got := []string{page.HTMLID("Main Menu"), partial.HTMLID("Main Menu"), extension.New().HTMLID("Main Menu")}
	want := []string{"main-menu", "main-menu-2", "main-menu"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	if page.IDs() != registry {
		t.Fatalf("expected the shared registry to be exposed")
	}
}

func TestExtension_NilEscaperRestoresDefault(t *testing.T) {
	blank := escape.EscaperFunc(func(string, escape.Context) string { return "" })
	x := extension.New(extension.WithEscaper(blank), extension.WithEscaper(nil))
	if got := x.Paragraphize("a & b", true); got != "<p>a &amp; b</p>" {
		t.Fatalf("unexpected paragraphize output %q", got)
	}
}

func TestExtension_HTMLClasses(t *testing.T) {
	x := extension.New()

	got, err := x.HTMLClasses(" a  b ", attrs.Pairs{{Name: "b", Value: false}, {Name: "c", Value: 1}}, []any{"d", "a"}, escape.Markup("e"))
	if err != nil {
		t.Fatalf("html classes: %v", err)
	}
	if diff := cmp.Diff("a b c d e", got); diff != "" {
		t.Fatalf("html classes mismatch (-want +got):\n%s", diff)
	}

	for _, arg := range []any{5, true, nil} {
		if _, err := x.HTMLClasses("a", arg); err == nil {
			t.Fatalf("expected error for argument %v", arg)
		}
	}

	engine := newEngine(t, x)
	if _, err := engine.RenderString(`{{ html_classes(5) }}`, nil); err == nil {
		t.Fatalf("expected html_classes to fail rendering")
	}
}

func TestExtension_DataURI(t *testing.T) {
	x := extension.New()

	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	got, err := x.DataURI(png, "", nil)
	if err != nil {
		t.Fatalf("data uri: %v", err)
	}
	if diff := cmp.Diff("data:image/png;base64,iVBORw0KGgo=", got); diff != "" {
		t.Fatalf("data uri mismatch (-want +got):\n%s", diff)
	}

	if _, err := x.DataURI("x", "text/plain", []string{"charset"}); err == nil {
		t.Fatalf("expected error for list parameters")
	}
}

var sortStrings = cmpopts.SortSlices(func(a, b string) bool { return a < b })

func TestExtension_RegisterListsHelpers(t *testing.T) {
	x := extension.New()

	wantFilters := []string{
		"breakerize", "contextualize", "data_uri", "highlight", "html_attributes", "html_styles",
		"paragraphize", "strip_control_characters", "strip_tags", "wrap_text",
	}
	var gotFilters []string
	for name := range x.Filters() {
		gotFilters = append(gotFilters, name)
	}
	if diff := cmp.Diff(wantFilters, gotFilters, sortStrings); diff != "" {
		t.Fatalf("filters mismatch (-want +got):\n%s", diff)
	}

	wantFunctions := []string{
		"breakerize", "contextualize", "data_uri", "highlight", "html_attribute", "html_attributes",
		"html_classes", "html_id", "html_styles", "html_tag", "paragraphize", "strip_control_characters",
		"wrap_text",
	}
	var gotFunctions []string
	for name := range x.Functions() {
		gotFunctions = append(gotFunctions, name)
	}
	if diff := cmp.Diff(wantFunctions, gotFunctions, sortStrings); diff != "" {
		t.Fatalf("functions mismatch (-want +got):\n%s", diff)
	}

	if err := x.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}

func newEngine(t *testing.T, x *extension.Extension) *gotemplate.Engine {
	t.Helper()

	engine, err := gotemplate.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if err := x.Register(engine); err != nil {
		t.Fatalf("register extension: %v", err)
	}
	return engine
}
