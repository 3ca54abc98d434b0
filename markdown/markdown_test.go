package markdown

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func TestRenderHeadingsCollectTOC(t *testing.T) {
	src := "# Title\n\n## Getting Started\n\ntext\n\n### Install `folio`\n\n#### Too Deep\n"
	doc, err := New().Render([]byte(src))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(doc.TOC) != 2 {
		t.Fatalf("TOC length = %d, want 2: %+v", len(doc.TOC), doc.TOC)
	}
	if doc.TOC[0].Text != "Getting Started" || doc.TOC[0].Level != 2 {
		t.Errorf("TOC[0] = %+v", doc.TOC[0])
	}
	if doc.TOC[0].ID != "getting-started" {
		t.Errorf("TOC[0].ID = %q, want %q", doc.TOC[0].ID, "getting-started")
	}
	if doc.TOC[1].Level != 3 || !strings.Contains(doc.TOC[1].Text, "Install") {
		t.Errorf("TOC[1] = %+v", doc.TOC[1])
	}
	if !strings.Contains(doc.HTML, `<h2 id="getting-started">`) {
		t.Errorf("HTML missing heading id: %q", doc.HTML)
	}
}

func TestRenderTOCLevels(t *testing.T) {
	src := "# One\n\n## Two\n\n### Three\n"
	doc, err := New(WithTOCLevels(1, 1)).Render([]byte(src))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(doc.TOC) != 1 || doc.TOC[0].Text != "One" {
		t.Errorf("TOC = %+v, want only level 1", doc.TOC)
	}
}

func TestRenderCodeBlockHighlighted(t *testing.T) {
	src := "```go\nfunc main() {}\n```\n"
	doc, err := New().Render([]byte(src))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(doc.HTML, "<pre") {
		t.Errorf("expected <pre> in %q", doc.HTML)
	}
	if !strings.Contains(doc.HTML, "main") {
		t.Errorf("code block missing content: %q", doc.HTML)
	}
}

func TestRenderCodeSpanDefault(t *testing.T) {
	doc, err := New().Render([]byte("use `a < b` here"))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(doc.HTML, "<code>a &lt; b</code>") {
		t.Errorf("unexpected code span: %q", doc.HTML)
	}
}

func TestRenderCodeSpanComponent(t *testing.T) {
	span := func(s string) templ.Component {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, `<code class="x">`+templ.EscapeString(s)+`</code>`)
			return err
		})
	}
	doc, err := New(WithCodeSpan(span)).Render([]byte("run `go <test>` now"))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(doc.HTML, `<code class="x">go &lt;test&gt;</code>`) {
		t.Errorf("code span not delegated: %q", doc.HTML)
	}
}

func TestRenderWordCount(t *testing.T) {
	doc, err := New().Render([]byte("one two three\n\nfour **five**"))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if doc.Words != 5 {
		t.Errorf("Words = %d, want 5", doc.Words)
	}
}

func TestRenderGFMTable(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	doc, err := New().Render([]byte(src))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(doc.HTML, "<table>") {
		t.Errorf("expected table: %q", doc.HTML)
	}
}

func TestRenderWithStyle(t *testing.T) {
	src := []byte("```go\nfunc main() {}\n```\n")
	dracula, err := New().Render(src)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	monokai, err := New(WithStyle("monokai")).Render(src)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(dracula.HTML, "<pre") || !strings.Contains(monokai.HTML, "<pre") {
		t.Fatalf("expected highlighted code blocks: %q", dracula.HTML)
	}
	if dracula.HTML == monokai.HTML {
		t.Error("style option did not change the highlighted output")
	}
}
