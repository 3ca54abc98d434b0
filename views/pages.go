package views

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/rizkimcitra/folio/content"
	"github.com/rizkimcitra/folio/timeline"
)

// PostList renders post cards with an optional active tag filter.
func PostList(posts []content.Post, tags []string, activeTag string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := printf(w, `<section id="posts" class="mt-8"><h2 class="text-2xl font-bold">Blog</h2>`); err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := printf(w, `<ul class="mt-4 flex flex-wrap gap-2"><li><a class="%s" href="/">All</a></li>`, TagClass(activeTag == "")); err != nil {
				return err
			}
			for _, tag := range tags {
				if err := printf(w, `<li><a class="%s" href="/?tag=%s">%s</a></li>`,
					TagClass(tag == activeTag), esc(url.QueryEscape(tag)), esc(TagLabel(tag))); err != nil {
					return err
				}
			}
			if err := printf(w, `</ul>`); err != nil {
				return err
			}
		}
		if len(posts) == 0 {
			return printf(w, `<p class="mt-6">No posts yet.</p></section>`)
		}
		if err := printf(w, `<ul class="mt-6 space-y-6">`); err != nil {
			return err
		}
		for _, p := range posts {
			if err := printf(w, `<li><a href="%s" class="block"><h3 class="text-xl font-semibold">%s</h3><p>%s</p><p class="text-sm">%s &middot; %s views</p></a></li>`,
				esc(p.Link()), esc(p.FrontMatter.Title), esc(p.FrontMatter.Description),
				esc(p.FrontMatter.Date), strconv.FormatInt(p.Views, 10)); err != nil {
				return err
			}
		}
		return printf(w, `</ul></section>`)
	})
}

// Timeline renders the life events in the order given.
func Timeline(entries []timeline.Entry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := printf(w, `<section class="mt-8"><h2 class="text-2xl font-bold">Timeline</h2><ol class="mt-6 border-l border-theme-300 dark:border-theme-700">`); err != nil {
			return err
		}
		for _, e := range entries {
			end := "Present"
			if !e.Ongoing() {
				end = e.EndDate.Format("Jan 2006")
			}
			if err := printf(w, `<li class="ml-4 mb-8"><time datetime="%s" class="text-sm">%s &ndash; %s</time><h3 class="text-lg font-semibold">%s</h3>`,
				e.StartDate.Format(time.DateOnly), e.StartDate.Format("Jan 2006"), end, esc(e.Title)); err != nil {
				return err
			}
			if e.HasPlace() {
				if err := printf(w, `<p class="text-sm">%s</p>`, esc(e.Place)); err != nil {
					return err
				}
			}
			if err := printf(w, `<p class="mt-2">%s</p></li>`, esc(e.Description)); err != nil {
				return err
			}
		}
		return printf(w, `</ol></section>`)
	})
}

// Message renders a heading and a line of text, used by error pages.
func Message(title, text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return printf(w, `<section class="py-24 text-center"><h1 class="text-4xl font-bold">%s</h1><p class="mt-4">%s</p><p class="mt-8"><a href="/">Back to home</a></p></section>`,
			esc(title), esc(text))
	})
}

// Page wraps children in the document shell with the main layout and footer.
func Page(site Site, head templ.Component, children ...templ.Component) templ.Component {
	return Document(head,
		MainLayout(LayoutProps{Site: site}, children...),
		Footer(site, ""),
	)
}

// NotFound is the 404 page.
func NotFound(site Site) templ.Component {
	return Page(site, pageTitle("Page not found", site.Name), Message("404", "The page you are looking for does not exist."))
}

// ServerError is the 5xx page.
func ServerError(site Site) templ.Component {
	return Page(site, pageTitle("Something went wrong", site.Name), Message("500", "Something went wrong on our side. Please try again later."))
}

func pageTitle(title, siteName string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return printf(w, `<title>%s | %s</title>`, esc(title), esc(siteName))
	})
}
