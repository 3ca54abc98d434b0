// Package seo builds page metadata (title, canonical, Open Graph, Twitter
// card, JSON-LD) and renders it into the document head.
package seo

import (
	"net/url"
	"path"
	"strings"
)

// Author is a person credited in the page metadata.
type Author struct {
	Name string
	URL  string
}

// OpenGraph carries og:* properties.
type OpenGraph struct {
	Type        string
	Title       string
	Description string
	URL         string
	SiteName    string
	Images      []string
	Authors     []string
	Tags        []string
}

// TwitterCard carries twitter:* properties.
type TwitterCard struct {
	Card        string
	Title       string
	Description string
	Site        string
	SiteID      string
	Creator     string
	CreatorID   string
	Images      []string
}

// Fields is the loose input to CreateMetadata. Canonical may be relative to BaseURL.
type Fields struct {
	BaseURL       string
	Title         string
	Description   string
	TemplateTitle string
	Canonical     string
	Keywords      []string
	Authors       []Author
	OpenGraph     *OpenGraph
	Twitter       *TwitterCard
	JSONLD        string
}

// Metadata is the resolved head metadata for one page.
type Metadata struct {
	Title         string
	TemplateTitle string
	Description   string
	Canonical     string
	Keywords      []string
	Authors       []Author
	OpenGraph     *OpenGraph
	Twitter       *TwitterCard
	JSONLD        string
}

// DocumentTitle is the text of the <title> element: the page title followed
// by the template title when both are set.
func (m Metadata) DocumentTitle() string {
	switch {
	case m.Title == "":
		return m.TemplateTitle
	case m.TemplateTitle == "" || m.Title == m.TemplateTitle:
		return m.Title
	default:
		return m.Title + " | " + m.TemplateTitle
	}
}

// CreateMetadata resolves f into Metadata. It never fails: a canonical that
// cannot be resolved against BaseURL is kept as given.
func CreateMetadata(f Fields) Metadata {
	m := Metadata{
		Title:         strings.TrimSpace(f.Title),
		TemplateTitle: f.TemplateTitle,
		Description:   f.Description,
		Keywords:      nonEmpty(f.Keywords),
		Authors:       f.Authors,
		JSONLD:        f.JSONLD,
	}
	if f.Canonical != "" {
		m.Canonical = resolve(f.BaseURL, f.Canonical)
	}
	if f.OpenGraph != nil {
		og := *f.OpenGraph
		if og.Title == "" {
			og.Title = m.Title
		}
		if og.Description == "" {
			og.Description = m.Description
		}
		if og.URL == "" {
			og.URL = m.Canonical
		}
		if og.SiteName == "" {
			og.SiteName = f.TemplateTitle
		}
		og.Tags = nonEmpty(og.Tags)
		m.OpenGraph = &og
	}
	if f.Twitter != nil {
		tw := *f.Twitter
		if tw.Card == "" {
			tw.Card = "summary"
		}
		if tw.Title == "" {
			tw.Title = m.Title
		}
		if tw.Description == "" {
			tw.Description = m.Description
		}
		m.Twitter = &tw
	}
	return m
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

func resolve(base, ref string) string {
	if u, err := url.Parse(ref); err == nil && u.IsAbs() {
		return ref
	}
	if base == "" {
		return ref
	}
	return BuildURL(base, strings.Split(strings.Trim(ref, "/"), "/")...)
}

func nonEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
