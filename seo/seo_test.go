package seo

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestCreateMetadataResolvesCanonical(t *testing.T) {
	m := CreateMetadata(Fields{
		BaseURL:   "https://example.com",
		Title:     "Hello World",
		Canonical: "blog/hello-world",
	})
	if m.Canonical != "https://example.com/blog/hello-world/" {
		t.Errorf("Canonical = %q", m.Canonical)
	}
}

func TestCreateMetadataKeepsAbsoluteCanonical(t *testing.T) {
	m := CreateMetadata(Fields{BaseURL: "https://example.com", Canonical: "https://other.dev/x"})
	if m.Canonical != "https://other.dev/x" {
		t.Errorf("Canonical = %q", m.Canonical)
	}
}

func TestCreateMetadataDefaultsOpenGraph(t *testing.T) {
	m := CreateMetadata(Fields{
		BaseURL:       "https://example.com",
		Title:         "Hello World",
		Description:   "desc",
		TemplateTitle: "Site",
		Canonical:     "blog/hello",
		OpenGraph:     &OpenGraph{Type: "article", Tags: []string{"go", " ", ""}},
		Twitter:       &TwitterCard{},
	})
	if m.OpenGraph.Title != "Hello World" {
		t.Errorf("og title = %q", m.OpenGraph.Title)
	}
	if m.OpenGraph.URL != m.Canonical {
		t.Errorf("og url = %q, want %q", m.OpenGraph.URL, m.Canonical)
	}
	if m.OpenGraph.SiteName != "Site" {
		t.Errorf("og site name = %q", m.OpenGraph.SiteName)
	}
	if len(m.OpenGraph.Tags) != 1 {
		t.Errorf("og tags = %v", m.OpenGraph.Tags)
	}
	if m.Twitter.Card != "summary" || m.Twitter.Title != "Hello World" || m.Twitter.Description != "desc" {
		t.Errorf("twitter = %+v", m.Twitter)
	}
}

func TestCreateMetadataDoesNotAliasInput(t *testing.T) {
	og := &OpenGraph{}
	CreateMetadata(Fields{Title: "x", OpenGraph: og})
	if og.Title != "" {
		t.Error("CreateMetadata should not mutate its input")
	}
}

func TestDocumentTitle(t *testing.T) {
	tests := []struct {
		title, template, want string
	}{
		{"Hello", "Site", "Hello | Site"},
		{"Hello", "", "Hello"},
		{"", "Site", "Site"},
		{"Site", "Site", "Site"},
	}
	for _, tt := range tests {
		got := Metadata{Title: tt.title, TemplateTitle: tt.template}.DocumentTitle()
		if got != tt.want {
			t.Errorf("DocumentTitle(%q, %q) = %q, want %q", tt.title, tt.template, got, tt.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.com", nil, "https://example.com"},
		{"https://example.com", []string{"blog", "post"}, "https://example.com/blog/post/"},
		{"https://example.com/sub", []string{"blog"}, "https://example.com/sub/blog/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}

func TestBlogPostingJSONLD(t *testing.T) {
	out := BlogPostingJSONLD(Article{
		Headline: "Hello <World>",
		URL:      "https://example.com/blog/hello/",
		Author:   "Owner",
		Keywords: []string{"go", "web"},
	})
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if data["headline"] != "Hello <World>" {
		t.Errorf("headline = %v", data["headline"])
	}
	if data["keywords"] != "go, web" {
		t.Errorf("keywords = %v", data["keywords"])
	}
	if strings.Contains(out, "<World>") {
		t.Error("JSON-LD should escape angle brackets")
	}
}

func TestHeadRendersTags(t *testing.T) {
	m := CreateMetadata(Fields{
		BaseURL:       "https://example.com",
		Title:         `Quotes "and" <tags>`,
		TemplateTitle: "Site",
		Description:   "desc",
		Canonical:     "blog/q",
		OpenGraph:     &OpenGraph{Type: "article", Images: []string{"https://example.com/api/og?title=x"}},
		Twitter:       &TwitterCard{Card: "summary_large_image"},
	})
	var buf bytes.Buffer
	if err := Head(m).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		"<title>Quotes &#34;and&#34; &lt;tags&gt; | Site</title>",
		`<link rel="canonical" href="https://example.com/blog/q/">`,
		`<meta property="og:type" content="article">`,
		`<meta name="twitter:card" content="summary_large_image">`,
		`<meta property="og:image" content="https://example.com/api/og?title=x">`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("head missing %q in %q", want, got)
		}
	}
}

func TestHeadFallbackOnlyTitle(t *testing.T) {
	var buf bytes.Buffer
	if err := Head(Metadata{Title: "Unavailable"}).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if buf.String() != "<title>Unavailable</title>" {
		t.Errorf("head = %q", buf.String())
	}
}
