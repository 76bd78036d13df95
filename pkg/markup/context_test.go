package markup_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-htmlextra/pkg/escape"
	"github.com/goliatone/go-htmlextra/pkg/markup"
)

func TestContextualize(t *testing.T) {
	tests := []struct {
		name string
		text escape.Markup
		term string
		opts markup.ContextOptions
		want escape.Markup
	}{
		{
			name: "short text is only wrapped",
			text: "The quick fox",
			term: "quick",
			opts: markup.DefaultContextOptions(),
			want: "The <em>quick</em> fox",
		},
		{
			name: "match past midpoint re-anchors",
			text: "aaaaaaaaaaaaaaa key bb",
			term: "key",
			opts: markup.ContextOptions{Length: 10},
			want: "…aaaa <em>key</em> …",
		},
		{
			name: "match before midpoint only truncates",
			text: "a key bbbbbbbbbbbbbbbbbb",
			term: "key",
			opts: markup.ContextOptions{Length: 10},
			want: "a <em>key</em> bbbb…",
		},
		{
			name: "case insensitive occurrences",
			text: "Go is GREAT and great",
			term: "great",
			opts: markup.ContextOptions{Length: 100, Tag: "mark", ClassName: "hit"},
			want: `Go is <mark class="hit">GREAT</mark> and <mark class="hit">great</mark>`,
		},
		{
			name: "multi-byte text is cut on characters",
			text: "ééééééééééé",
			opts: markup.ContextOptions{Length: 5},
			want: "ééééé…",
		},
		{
			name: "tags stripped and text escaped",
			text: "<p>a &lt;b&gt; c</p>",
			term: "b",
			opts: markup.DefaultContextOptions(),
			want: "a &lt;<em>b</em>&gt; c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := markup.Contextualize(tt.text, tt.term, tt.opts)
			if err != nil {
				t.Fatalf("contextualize: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("contextualize mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContextualize_CustomEllipsis(t *testing.T) {
	p := markup.New(markup.WithEllipsis("..."))

	got, err := p.Contextualize("abcdefghij", "", markup.ContextOptions{Length: 4})
	if err != nil {
		t.Fatalf("contextualize: %v", err)
	}
	if got != "abcd..." {
		t.Fatalf("unexpected snippet %q", got)
	}
}
