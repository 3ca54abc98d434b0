// Package postpage renders blog post pages: the page body, its head metadata
// and the list of slugs to pre-render.
package postpage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/a-h/templ"

	"github.com/rizkimcitra/folio/content"
	"github.com/rizkimcitra/folio/seo"
	"github.com/rizkimcitra/folio/views"
)

// Revalidate is how long a rendered post page stays fresh. The serving layer
// caches for this long; the renderer itself never caches.
const Revalidate = 30 * time.Second

// UnavailableTitle is the metadata title used when a slug has no post.
const UnavailableTitle = "You might searching for unavailable post"

// ErrNotFound is returned by RenderPostPage when the slug has no post.
// The caller must answer with its standard not-found response.
var ErrNotFound = fmt.Errorf("postpage: %w", content.ErrNotFound)

// Twitter identifies the site's Twitter account.
type Twitter struct {
	Username string
	ID       string
}

// Config is the site information the renderer prints.
type Config struct {
	Site       views.Site
	Twitter    Twitter
	Production bool
	// OGProductionHost is the base host of preview-image URLs in production.
	// Other run modes use the site URL.
	OGProductionHost string
}

// StaticParam names one page to pre-render.
type StaticParam struct {
	Slug string
}

// Renderer turns posts from a content.Source into pages and metadata.
// It holds no per-request state and is safe for concurrent use.
type Renderer struct {
	source content.Source
	cfg    Config
}

// New creates a Renderer reading posts from source.
func New(source content.Source, cfg Config) *Renderer {
	return &Renderer{source: source, cfg: cfg}
}

// Lookup is the outcome of fetching a post: either Found with a Post, or not.
type Lookup struct {
	Post  content.Post
	Found bool
}

func (r *Renderer) lookup(ctx context.Context, slug string) (Lookup, error) {
	post, err := r.source.GetPost(ctx, slug)
	switch {
	case errors.Is(err, content.ErrNotFound):
		return Lookup{}, nil
	case err != nil:
		return Lookup{}, err
	}
	return Lookup{Post: post, Found: true}, nil
}

// RenderPostPage renders the page body for slug: header, divider, content
// with table of contents, reactions, footer. It returns ErrNotFound, and no
// component, when the slug has no post.
func (r *Renderer) RenderPostPage(ctx context.Context, slug string) (templ.Component, error) {
	l, err := r.lookup(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !l.Found {
		return nil, ErrNotFound
	}
	post := l.Post
	site := r.cfg.Site

	return templ.Join(
		views.Header(site, "lg:max-w-5xl"),
		views.MainLayout(views.LayoutProps{
			Site:     site,
			NoHeader: true,
			Class:    "lg:max-w-5xl " + views.FiraCode.ClassName() + " " + views.FiraCodeVF.ClassName(),
		},
			views.PostHeader(views.PostHeaderProps{
				FrontMatter:    post.FrontMatter,
				Views:          post.Views,
				ReadingMinutes: post.ReadingMinutes(),
			}),
			views.Divider("my-4 max-w-prose"),
			views.PostContent(views.PostContentProps{
				FrontMatter: post.FrontMatter,
				TOC:         post.TOC,
			}, templ.Raw(post.HTML)),
			views.Section("max-w-prose mt-8", views.PostReaction(post.Slug, post.Reactions)),
		),
		views.Footer(site, "lg:max-w-5xl"),
	), nil
}

// GenerateMetadata builds the head metadata for slug with a fresh lookup.
// A slug without a post yields the fallback metadata, not an error.
func (r *Renderer) GenerateMetadata(ctx context.Context, slug string) (seo.Metadata, error) {
	l, err := r.lookup(ctx, slug)
	if err != nil {
		return seo.Metadata{}, err
	}
	switch {
	case l.Found:
		return r.postMetadata(l.Post), nil
	default:
		return seo.Metadata{Title: UnavailableTitle}, nil
	}
}

// RenderDocument renders the complete HTML document for slug. Metadata and
// body are looked up separately.
func (r *Renderer) RenderDocument(ctx context.Context, slug string) (templ.Component, error) {
	body, err := r.RenderPostPage(ctx, slug)
	if err != nil {
		return nil, err
	}
	meta, err := r.GenerateMetadata(ctx, slug)
	if err != nil {
		return nil, err
	}
	head := templ.Join(seo.Head(meta), views.Fonts(views.FiraCode, views.FiraCodeVF))
	return views.Document(head, body), nil
}

// GenerateStaticParams lists every known slug once. It returns an empty
// slice when there are no posts.
func (r *Renderer) GenerateStaticParams(ctx context.Context) ([]StaticParam, error) {
	posts, err := r.source.GetPosts(ctx)
	if err != nil {
		return nil, err
	}
	params := make([]StaticParam, 0, len(posts))
	seen := make(map[string]struct{}, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.Slug]; ok {
			continue
		}
		seen[p.Slug] = struct{}{}
		params = append(params, StaticParam{Slug: p.Slug})
	}
	return params, nil
}

// DefaultOGTitle is the Open Graph title of a post without a title.
func (r *Renderer) DefaultOGTitle() string {
	return r.cfg.Site.Owner + "'s Post"
}

func (r *Renderer) postMetadata(post content.Post) seo.Metadata {
	site := r.cfg.Site
	fm := post.FrontMatter
	image := r.ogImageURL(fm.Title)

	ogTitle := fm.Title
	if ogTitle == "" {
		ogTitle = r.DefaultOGTitle()
	}

	return seo.CreateMetadata(seo.Fields{
		BaseURL:       site.URL,
		Title:         fm.Title,
		Description:   fm.Description,
		TemplateTitle: site.Name,
		Canonical:     "blog/" + post.Slug,
		Keywords:      fm.Keywords,
		Authors:       []seo.Author{{Name: site.Owner, URL: site.URL}},
		OpenGraph: &seo.OpenGraph{
			Images:      []string{image},
			Type:        "article",
			Title:       ogTitle,
			Authors:     []string{site.Owner},
			Description: site.Tagline,
			Tags:        fm.Tags,
		},
		Twitter: &seo.TwitterCard{
			Card:        "summary_large_image",
			Description: site.Tagline,
			Site:        site.URL,
			Creator:     r.cfg.Twitter.Username,
			CreatorID:   r.cfg.Twitter.ID,
			SiteID:      r.cfg.Twitter.ID,
			Title:       site.Owner,
			Images:      []string{image},
		},
		JSONLD: seo.BlogPostingJSONLD(seo.Article{
			Headline:    ogTitle,
			Description: fm.Description,
			Published:   fm.Date,
			Modified:    fm.Updated,
			URL:         seo.BuildURL(site.URL, "blog", post.Slug),
			Image:       image,
			Author:      site.Owner,
			Publisher:   site.Name,
			Keywords:    fm.Keywords,
		}),
	})
}

// ogImageURL returns the preview-image endpoint URL for title.
func (r *Renderer) ogImageURL(title string) string {
	base := r.cfg.Site.URL
	if r.cfg.Production {
		base = r.cfg.OGProductionHost
	}
	endpoint := &url.URL{Path: "api/og"}
	if b, err := url.Parse(base); err == nil && b.IsAbs() {
		endpoint = b.ResolveReference(endpoint)
	} else {
		endpoint.Path = "/api/og"
	}
	q := endpoint.Query()
	q.Set("title", title)
	endpoint.RawQuery = q.Encode()
	return endpoint.String()
}
