package folio

import (
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/rizkimcitra/folio/content"
	"github.com/rizkimcitra/folio/og"
	"github.com/rizkimcitra/folio/postpage"
	"github.com/rizkimcitra/folio/seo"
	"github.com/rizkimcitra/folio/timeline"
	"github.com/rizkimcitra/folio/views"
)

func (a *App) handleHome(c echo.Context) error {
	ctx := c.Request().Context()
	tag := c.QueryParam("tag")
	posts, err := a.Posts.ListPosts(ctx, tag)
	if err != nil {
		return err
	}
	tags, err := a.Posts.ListTags(ctx)
	if err != nil {
		return err
	}
	return Render(c, a.homePage(posts, tags, tag))
}

func (a *App) homePage(posts []content.Post, tags []string, tag string) templ.Component {
	site := a.Config.Site()
	head := a.pageHead(seo.Fields{
		Title:     site.Name,
		Canonical: "/",
		JSONLD:    seo.WebsiteJSONLD(site.Name, site.URL, site.Tagline, site.Owner),
	})
	return views.Page(site, head, views.PostList(posts, tags, tag))
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, a.aboutPage())
}

func (a *App) aboutPage() templ.Component {
	site := a.Config.Site()
	head := a.pageHead(seo.Fields{
		Title:     "About",
		Canonical: "about",
	})
	return views.Page(site, head, views.Timeline(timeline.Entries()))
}

// pageHead resolves f against the site defaults and renders it with the fonts.
func (a *App) pageHead(f seo.Fields) templ.Component {
	site := a.Config.Site()
	f.BaseURL = site.URL
	f.TemplateTitle = site.Name
	if f.Description == "" {
		f.Description = site.Tagline
	}
	f.Authors = []seo.Author{{Name: site.Owner, URL: site.URL}}
	f.OpenGraph = &seo.OpenGraph{Type: "website"}
	return templ.Join(seo.Head(seo.CreateMetadata(f)), views.Fonts(views.FiraCode, views.FiraCodeVF))
}

func (a *App) handlePost(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	if page, ok := a.Pages.Get(ctx, slug); ok {
		a.countView(c, slug)
		return HTMLBlob(c, http.StatusOK, page)
	}

	doc, err := a.Renderer.RenderDocument(ctx, slug)
	if errors.Is(err, postpage.ErrNotFound) {
		return RenderStatus(c, http.StatusNotFound, views.NotFound(a.Config.Site()))
	}
	if err != nil {
		return err
	}
	page, err := RenderBytes(ctx, doc)
	if err != nil {
		return err
	}
	a.Pages.Set(ctx, slug, page)
	a.countView(c, slug)
	return HTMLBlob(c, http.StatusOK, page)
}

// countView records a post view. A failed write never fails the request.
func (a *App) countView(c echo.Context, slug string) {
	if _, err := a.Store.IncrementViews(c.Request().Context(), slug); err != nil {
		slog.Warn("count view", "slug", slug, "error", err)
	}
}

func (a *App) handleReaction(c echo.Context) error {
	ctx := c.Request().Context()
	if !a.reactionLimiter.Allow(c.RealIP()) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "Too many reactions. Please wait a moment.")
	}

	post, err := a.Posts.GetPost(ctx, c.Param("slug"))
	if errors.Is(err, content.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	kind, err := content.ParseReactionKind(c.FormValue("kind"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	visitor, err := visitorID(c)
	if err != nil {
		return err
	}
	added, err := a.Store.AddReaction(ctx, post.Slug, kind, visitor)
	if err != nil {
		return err
	}
	if added {
		slog.Info("reaction added", "slug", post.Slug, "kind", kind)
		a.Posts.Invalidate()
		a.Pages.Invalidate(ctx, post.Slug)
	}
	return c.Redirect(http.StatusSeeOther, post.Link())
}

func (a *App) handleOGImage(c echo.Context) error {
	title := strings.TrimSpace(c.QueryParam("title"))
	c.Response().Header().Set(echo.HeaderContentType, "image/png")
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	c.Response().WriteHeader(http.StatusOK)
	return og.Encode(c.Response(), og.Card{Title: title, SiteName: a.Config.Name})
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Posts.ListPosts(c.Request().Context(), "")
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Posts.ListPosts(c.Request().Context(), "")
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(filepath.Join(a.Config.StaticDir, "favicon.svg"))
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(filepath.Join(a.Config.StaticDir, "robots.txt"))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Config.Site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		slog.Error("server error", "method", c.Request().Method, "uri", c.Request().RequestURI, "error", err)
		_ = RenderStatus(c, code, views.ServerError(a.Config.Site()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
