package markup_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-htmlextra/pkg/escape"
	"github.com/goliatone/go-htmlextra/pkg/markup"
)

func TestBreakerize(t *testing.T) {
	tests := []struct {
		name         string
		text         escape.Markup
		stripSlashes bool
		want         escape.Markup
	}{
		{name: "escaped pipe and hard break", text: "a\\|b||c", stripSlashes: true, want: "a|b<br>c"},
		{name: "soft break", text: "super|cali", stripSlashes: true, want: "super&shy;cali"},
		{name: "three pipes", text: "a|||b", stripSlashes: true, want: "a<br>&shy;b"},
		{name: "even backslash run keeps break live", text: `a\\||b`, stripSlashes: true, want: `a\<br>b`},
		{name: "slashes kept", text: `a\|b`, stripSlashes: false, want: `a\|b`},
		{name: "no control sequences", text: "plain", stripSlashes: true, want: "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := markup.Breakerize(tt.text, tt.stripSlashes)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("breakerize mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStripControlCharacters(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		sequences []string
		want      string
	}{
		{name: "defaults", text: "a **b** c||d|e", want: "a b c de"},
		{name: "escaped sequences stay literal", text: `a \*\*b\*\* \|`, want: "a **b** |"},
		{name: "custom sequence", text: "__a__ **b**", sequences: []string{"__"}, want: "a **b**"},
		{name: "several sequences", text: "__a__ **b**", sequences: []string{"__", "**"}, want: "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := markup.StripControlCharacters(tt.text, tt.sequences...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("strip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHighlight_RoundTrip(t *testing.T) {
	source := "Say **hello** to **everyone** here"

	highlighted, err := markup.Highlight(escape.Markup(source), markup.DefaultWrapOptions())
	if err != nil {
		t.Fatalf("highlight: %v", err)
	}
	if diff := cmp.Diff(escape.Markup("Say <em>hello</em> to <em>everyone</em> here"), highlighted); diff != "" {
		t.Fatalf("highlight mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff("Say hello to everyone here", markup.StripControlCharacters(source)); diff != "" {
		t.Fatalf("strip mismatch (-want +got):\n%s", diff)
	}
}
