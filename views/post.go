package views

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/rizkimcitra/folio/content"
	"github.com/rizkimcitra/folio/markdown"
)

// PostHeaderProps is what the post header prints above the divider.
type PostHeaderProps struct {
	FrontMatter    content.FrontMatter
	Views          int64
	ReadingMinutes int
}

// PostHeader renders the title, description, date, counters and tags of a post.
func PostHeader(props PostHeaderProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fm := props.FrontMatter
		if err := printf(w, `<header class="max-w-prose"><h1 class="text-3xl font-bold">%s</h1>`, esc(fm.Title)); err != nil {
			return err
		}
		if fm.Description != "" {
			if err := printf(w, `<p class="mt-2 text-theme-600 dark:text-theme-300">%s</p>`, esc(fm.Description)); err != nil {
				return err
			}
		}
		if err := printf(w, `<p class="mt-4 flex gap-3 text-sm">`); err != nil {
			return err
		}
		if t := fm.PublishedAt(); !t.IsZero() {
			if err := printf(w, `<time datetime="%s">%s</time>`, esc(fm.Date), esc(t.Format("January 2, 2006"))); err != nil {
				return err
			}
		}
		if err := printf(w, `<span>%s min read</span><span>%s views</span></p>`,
			strconv.Itoa(props.ReadingMinutes), strconv.FormatInt(props.Views, 10)); err != nil {
			return err
		}
		if len(fm.Tags) > 0 {
			if err := printf(w, `<ul class="mt-4 flex flex-wrap gap-2">`); err != nil {
				return err
			}
			for _, tag := range fm.Tags {
				if err := printf(w, `<li><a class="%s" href="/?tag=%s">%s</a></li>`,
					TagClass(false), esc(url.QueryEscape(tag)), esc(TagLabel(tag))); err != nil {
					return err
				}
			}
			if err := printf(w, `</ul>`); err != nil {
				return err
			}
		}
		return printf(w, `</header>`)
	})
}

// PostContentProps is the body and table of contents of a post.
type PostContentProps struct {
	FrontMatter content.FrontMatter
	TOC         []markdown.Heading
}

// PostContent renders the table of contents beside the post body.
func PostContent(props PostContentProps, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := printf(w, `<div class="lg:grid lg:grid-cols-[auto,250px] lg:gap-8">`); err != nil {
			return err
		}
		if err := printf(w, `<article class="prose dark:prose-invert max-w-prose" aria-label="%s">`, esc(props.FrontMatter.Title)); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		if err := printf(w, `</article>`); err != nil {
			return err
		}
		if len(props.TOC) > 0 {
			if err := printf(w, `<aside class="hidden lg:block"><nav class="sticky top-24" aria-label="Table of contents"><p class="font-semibold">Table of Contents</p><ul>`); err != nil {
				return err
			}
			for _, h := range props.TOC {
				if err := printf(w, `<li class="toc-level-%d"><a href="#%s">%s</a></li>`, h.Level, esc(h.ID), esc(h.Text)); err != nil {
					return err
				}
			}
			if err := printf(w, `</ul></nav></aside>`); err != nil {
				return err
			}
		}
		return printf(w, `</div>`)
	})
}

var reactionLabels = map[content.ReactionKind]string{
	content.ReactionLike:       "👍",
	content.ReactionLove:       "❤️",
	content.ReactionInsightful: "💡",
}

// PostReaction renders the reaction form of a post with current counts.
func PostReaction(slug string, reactions content.Reactions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := printf(w, `<h2 class="text-lg font-semibold">Did you enjoy this post?</h2><form method="post" action="/api/reactions/%s/" class="mt-4 flex gap-3">`,
			esc(url.PathEscape(slug))); err != nil {
			return err
		}
		for _, kind := range content.ReactionKinds {
			if err := printf(w, `<button type="submit" name="kind" value="%s" class="rounded border px-3 py-1" aria-label="%s"><span>%s</span> <span>%s</span></button>`,
				esc(string(kind)), esc(string(kind)), reactionLabels[kind], strconv.FormatInt(reactions[kind], 10)); err != nil {
				return err
			}
		}
		return printf(w, `</form><p class="mt-2 text-sm">%s reactions</p>`, strconv.FormatInt(reactions.Total(), 10))
	})
}
