package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Header renders the site navigation bar.
func Header(site Site, class string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := printf(w, `<a href="#skip-content" class="skip-nav">Skip to content</a><header class="sticky top-0 z-40"><nav class="%s">`,
			esc(tw("layout flex items-center justify-between py-4", class))); err != nil {
			return err
		}
		if err := printf(w, `<a href="/" class="font-bold">%s</a><ul class="flex gap-4">`, esc(site.Name)); err != nil {
			return err
		}
		for _, l := range Nav {
			if err := printf(w, `<li><a href="%s">%s</a></li>`, esc(l.Href), esc(l.Label)); err != nil {
				return err
			}
		}
		return printf(w, `</ul></nav></header>`)
	})
}

// Footer renders the site footer.
func Footer(site Site, class string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return printf(w, `<footer class="%s"><p>&copy; %s %s</p><p><a href="/feed.xml">RSS</a> &middot; <a href="/sitemap.xml">Sitemap</a></p></footer>`,
			esc(tw("layout py-8 text-sm text-theme-500", class)), strconv.Itoa(site.Year), esc(site.Owner))
	})
}

// LayoutProps configures MainLayout.
type LayoutProps struct {
	Site     Site
	Class    string
	NoHeader bool
}

// MainLayout renders the header unless NoHeader is set, then wraps children
// in the main container.
func MainLayout(props LayoutProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !props.NoHeader {
			if err := Header(props.Site, "").Render(ctx, w); err != nil {
				return err
			}
		}
		if err := printf(w, `<main id="skip-content" class="%s">`, esc(tw("layout", props.Class))); err != nil {
			return err
		}
		if err := renderAll(ctx, w, children); err != nil {
			return err
		}
		return printf(w, `</main>`)
	})
}

// Document renders the HTML shell: head metadata, stylesheets and body.
func Document(head templ.Component, body ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := printf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><link rel="icon" href="/favicon.svg" type="image/svg+xml"><link rel="alternate" type="application/rss+xml" href="/feed.xml"><link rel="stylesheet" href="/public/site.css">`); err != nil {
			return err
		}
		if head != nil {
			if err := head.Render(ctx, w); err != nil {
				return err
			}
		}
		if err := printf(w, `</head><body class="bg-theme-50 dark:bg-theme-900">`); err != nil {
			return err
		}
		if err := renderAll(ctx, w, body); err != nil {
			return err
		}
		return printf(w, `</body></html>`)
	})
}

// Divider renders a horizontal rule.
func Divider(class string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return printf(w, `<hr class="%s">`, esc(class))
	})
}

// Section wraps children in a <section> with the given classes.
func Section(class string, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := printf(w, `<section class="%s">`, esc(class)); err != nil {
			return err
		}
		if err := renderAll(ctx, w, children); err != nil {
			return err
		}
		return printf(w, `</section>`)
	})
}
