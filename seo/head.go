package seo

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Head renders the metadata as <title>, <meta>, <link> and JSON-LD elements.
func Head(m Metadata) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, "<title>%s</title>", templ.EscapeString(m.DocumentTitle()))
		meta(&b, "name", "description", m.Description)
		meta(&b, "name", "keywords", strings.Join(m.Keywords, ", "))
		for _, a := range m.Authors {
			meta(&b, "name", "author", a.Name)
			if a.URL != "" {
				fmt.Fprintf(&b, `<link rel="author" href="%s">`, templ.EscapeString(a.URL))
			}
		}
		if m.Canonical != "" {
			fmt.Fprintf(&b, `<link rel="canonical" href="%s">`, templ.EscapeString(m.Canonical))
		}
		if og := m.OpenGraph; og != nil {
			meta(&b, "property", "og:type", og.Type)
			meta(&b, "property", "og:title", og.Title)
			meta(&b, "property", "og:description", og.Description)
			meta(&b, "property", "og:url", og.URL)
			meta(&b, "property", "og:site_name", og.SiteName)
			for _, img := range og.Images {
				meta(&b, "property", "og:image", img)
			}
			for _, a := range og.Authors {
				meta(&b, "property", "article:author", a)
			}
			for _, t := range og.Tags {
				meta(&b, "property", "article:tag", t)
			}
		}
		if tw := m.Twitter; tw != nil {
			meta(&b, "name", "twitter:card", tw.Card)
			meta(&b, "name", "twitter:title", tw.Title)
			meta(&b, "name", "twitter:description", tw.Description)
			meta(&b, "name", "twitter:site", tw.Site)
			meta(&b, "name", "twitter:site:id", tw.SiteID)
			meta(&b, "name", "twitter:creator", tw.Creator)
			meta(&b, "name", "twitter:creator:id", tw.CreatorID)
			for _, img := range tw.Images {
				meta(&b, "name", "twitter:image", img)
			}
		}
		if m.JSONLD != "" {
			fmt.Fprintf(&b, `<script type="application/ld+json">%s</script>`, m.JSONLD)
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func meta(b *strings.Builder, attr, key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, `<meta %s="%s" content="%s">`, attr, key, templ.EscapeString(value))
}
