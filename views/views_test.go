package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/rizkimcitra/folio/content"
	"github.com/rizkimcitra/folio/markdown"
	"github.com/rizkimcitra/folio/timeline"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf.String()
}

var testSite = Site{Name: "Folio", URL: "https://example.com", Owner: "Owner", Year: 2026}

func TestCode(t *testing.T) {
	got := render(t, Code("a < b"))
	want := `<code class="` + CodeClass + `"><span>a &lt; b</span></code>`
	if got != want {
		t.Errorf("Code = %q, want %q", got, want)
	}
}

func TestMainLayoutWithHeader(t *testing.T) {
	got := render(t, MainLayout(LayoutProps{Site: testSite, Class: "lg:max-w-5xl"}, templ.Raw("<p>child</p>")))
	if !strings.Contains(got, "<header") {
		t.Error("expected header")
	}
	if !strings.Contains(got, `<main id="skip-content" class="layout lg:max-w-5xl"><p>child</p></main>`) {
		t.Errorf("unexpected main: %q", got)
	}
}

func TestMainLayoutNoHeader(t *testing.T) {
	got := render(t, MainLayout(LayoutProps{Site: testSite, NoHeader: true}, templ.Raw("x")))
	if strings.Contains(got, "<header") {
		t.Error("header should be omitted")
	}
	if got != `<main id="skip-content" class="layout">x</main>` {
		t.Errorf("MainLayout = %q", got)
	}
}

func TestTW(t *testing.T) {
	if got := tw("layout", "", "  ", "a b"); got != "layout a b" {
		t.Errorf("tw = %q", got)
	}
}

func TestTagLabel(t *testing.T) {
	tests := map[string]string{
		"go":       "Go",
		"web-dev":  "Web Dev",
		" GOLANG ": "Golang",
	}
	for in, want := range tests {
		if got := TagLabel(in); got != want {
			t.Errorf("TagLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPostHeader(t *testing.T) {
	got := render(t, PostHeader(PostHeaderProps{
		FrontMatter:    content.FrontMatter{Title: "Hello <World>", Date: "2024-01-15", Tags: []string{"go"}},
		Views:          42,
		ReadingMinutes: 3,
	}))
	for _, want := range []string{"Hello &lt;World&gt;", "January 15, 2024", "3 min read", "42 views", `href="/?tag=go"`} {
		if !strings.Contains(got, want) {
			t.Errorf("PostHeader missing %q in %q", want, got)
		}
	}
}

func TestPostContentTOC(t *testing.T) {
	got := render(t, PostContent(PostContentProps{
		TOC: []markdown.Heading{{ID: "intro", Text: "Intro", Level: 2}},
	}, templ.Raw("<p>body</p>")))
	if !strings.Contains(got, "<p>body</p>") {
		t.Error("body missing")
	}
	if !strings.Contains(got, `<a href="#intro">Intro</a>`) {
		t.Errorf("toc missing: %q", got)
	}
}

func TestPostContentWithoutTOC(t *testing.T) {
	got := render(t, PostContent(PostContentProps{}, templ.Raw("b")))
	if strings.Contains(got, "<aside") {
		t.Error("empty toc should not render aside")
	}
}

func TestPostReaction(t *testing.T) {
	got := render(t, PostReaction("hello world", content.Reactions{content.ReactionLove: 7}))
	if !strings.Contains(got, `action="/api/reactions/hello%20world/"`) {
		t.Errorf("form action wrong: %q", got)
	}
	if strings.Count(got, `name="kind"`) != len(content.ReactionKinds) {
		t.Error("expected one button per reaction kind")
	}
	if !strings.Contains(got, "<span>7</span>") {
		t.Error("love count missing")
	}
}

func TestPostReactionTotal(t *testing.T) {
	got := render(t, PostReaction("p", content.Reactions{content.ReactionLike: 2, content.ReactionInsightful: 3}))
	if !strings.Contains(got, "5 reactions") {
		t.Errorf("total missing: %q", got)
	}
	if got := render(t, PostReaction("p", nil)); !strings.Contains(got, "0 reactions") {
		t.Errorf("empty total missing: %q", got)
	}
}

func TestFonts(t *testing.T) {
	got := render(t, Fonts(FiraCode, FiraCodeVF))
	if strings.Count(got, `rel="preload"`) != 6 {
		t.Errorf("expected 6 preload links: %q", got)
	}
	if !strings.Contains(got, ".font-fira-code{--font-fira-code:") {
		t.Error("variable class missing")
	}
	if FiraCodeVF.ClassName() != "font-fira-code-vf" {
		t.Errorf("ClassName = %q", FiraCodeVF.ClassName())
	}
}

func TestTimeline(t *testing.T) {
	got := render(t, Timeline(timeline.Entries()))
	if !strings.Contains(got, "High School") || !strings.Contains(got, "Present") {
		t.Errorf("timeline incomplete: %q", got)
	}
	if !strings.Contains(got, "Jun 2018 &ndash; May 2021") {
		t.Error("high school range missing")
	}
}

func TestPostListEmpty(t *testing.T) {
	if got := render(t, PostList(nil, nil, "")); !strings.Contains(got, "No posts yet.") {
		t.Errorf("PostList = %q", got)
	}
}

func TestNotFoundPage(t *testing.T) {
	got := render(t, NotFound(testSite))
	if !strings.HasPrefix(got, "<!DOCTYPE html>") || !strings.Contains(got, "404") {
		t.Errorf("NotFound = %q", got)
	}
}
