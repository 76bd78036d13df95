package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-htmlextra/internal/state"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	app.Reader = strings.NewReader(stdin)
	err := app.Run(state.ContextWithEnv(context.Background()), append([]string{appName}, args...))
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestMarkupCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "highlight by default",
			args: []string{"markup", "a **b** & c"},
			want: "a <em>b</em> &amp; c\n",
		},
		{
			name:  "reads stdin",
			stdin: "one\n\ntwo\n",
			args:  []string{"markup", "--op", "paragraphize"},
			want:  "<p>one</p><p>two</p>\n",
		},
		{
			name: "contextualize",
			args: []string{"markup", "--op", "contextualize", "--term", "key", "--length", "10", "aaaa key bbbb"},
			want: "aaaa <em>key</em> b…\n",
		},
		{
			name: "wrap text with tag",
			args: []string{"markup", "--op", "wrap_text", "--sequence", "__", "--tag", "strong", "x __y__"},
			want: "x <strong>y</strong>\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := run(t, "", "markup", "--op", "nope", "x"); err == nil {
		t.Fatalf("expected error for unknown operation")
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	tplDir := filepath.Join(dir, "templates")
	if err := os.Mkdir(tplDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, tplDir, "nav.tpl", `<nav {{ html_attributes(attrs) }}>{{ site }}: {{ title|highlight }}</nav>`)
	cfg := writeFile(t, dir, "config.yaml", "templates:\n  dir: "+tplDir+"\nglobals:\n  site: Docs\n")
	data := writeFile(t, dir, "data.yaml", "attrs:\n  class: [main, wide]\n  hidden: true\ntitle: \"**Home**\"\n")

	got, err := run(t, "", "--config", cfg, "render", "--data", data, "nav")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<nav class="main wide" hidden>Docs: <em>Home</em></nav>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}

	embedded, err := run(t, "", "render", "--data", writeFile(t, dir, "snippet.yaml", "text: The quick fox\nterm: quick\n"), "snippet")
	if err != nil {
		t.Fatalf("render embedded: %v", err)
	}
	if diff := cmp.Diff("<p class=\"snippet\">The <em>quick</em> fox</p>\n", embedded); diff != "" {
		t.Fatalf("embedded mismatch (-want +got):\n%s", diff)
	}

	if _, err := run(t, "", "render"); err == nil {
		t.Fatalf("expected error without template")
	}
}

func TestAttrsCommand(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", "- id: main\n  class: a\n- class: [b, a]\n  data-x: 1\n")
	bad := writeFile(t, dir, "bad.yaml", "style: [a, b]\n")
	other := writeFile(t, dir, "other.yaml", "title: x\n")

	got, err := run(t, "", "attrs", good, bad, other)
	if err == nil || !strings.Contains(err.Error(), "bad.yaml") {
		t.Fatalf("expected error naming bad.yaml, got %v", err)
	}
	want := "id=\"main\" class=\"a b\" data-x=\"1\"\ntitle=\"x\"\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpConfigCommand(t *testing.T) {
	got, err := run(t, "", "dumpconfig", "--default")
	if err != nil {
		t.Fatalf("dumpconfig: %v", err)
	}
	if !strings.Contains(got, "context_length: 250") {
		t.Fatalf("unexpected default configuration:\n%s", got)
	}

	dest := filepath.Join(t.TempDir(), "out.yaml")
	if _, err := run(t, "", "dumpconfig", dest); err != nil {
		t.Fatalf("dumpconfig to file: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}
	if !strings.Contains(string(data), "ellipsis: …") {
		t.Fatalf("unexpected actual configuration:\n%s", data)
	}
}

func TestBadConfiguration(t *testing.T) {
	cfg := writeFile(t, t.TempDir(), "config.yaml", "unknown: 1\n")
	if _, err := run(t, "", "--config", cfg, "markup", "x"); err == nil {
		t.Fatalf("expected configuration error")
	}
}
