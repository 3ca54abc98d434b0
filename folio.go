// Package folio is a personal blog and portfolio server built with Go, Echo
// and templ. It renders markdown posts with SEO metadata, a life timeline,
// Open Graph preview images, reactions, RSS and a sitemap.
package folio

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/rizkimcitra/folio/content"
	"github.com/rizkimcitra/folio/markdown"
	"github.com/rizkimcitra/folio/pagecache"
	"github.com/rizkimcitra/folio/postpage"
	"github.com/rizkimcitra/folio/views"
)

// App is the central folio application. It wires together the content
// source, counters, caches, renderer, handlers and middleware.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Store    *content.Store
	Posts    *PostCache
	Pages    *pagecache.PageCache
	Renderer *postpage.Renderer

	reactionLimiter *RateLimiter
	redis           *redis.Client
	contentFS       fs.FS
	customRoutes    []func(*App)
	stopWatch       func()
	initialized     bool
}

// New creates a new folio App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	a := &App{
		Config: cfg,
		Echo:   e,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init opens the counter store, builds the content pipeline and registers
// middleware and routes. Start calls it; tests and the export command call
// it directly.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}
	if err := a.Config.validate(); err != nil {
		return err
	}

	store, err := content.NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("folio: init store: %w", err)
	}
	a.Store = store

	fsys := a.contentFS
	if fsys == nil {
		fsys = os.DirFS(a.Config.ContentDir)
	}
	md := markdown.New(
		markdown.WithCodeSpan(views.Code),
		markdown.WithStyle(a.Config.MarkdownStyle),
	)
	library := content.NewLibrary(content.NewFileSource(fsys, md), store)

	a.Posts = NewPostCache(library, postpage.Revalidate)
	a.Renderer = postpage.New(a.Posts, a.Config.rendererConfig())
	a.reactionLimiter = NewRateLimiter(a.Config.ReactionLimit, a.Config.ReactionWindow)

	if a.Config.RedisAddr != "" {
		client, err := pagecache.Connect(a.Config.RedisAddr, a.Config.RedisPassword)
		if err != nil {
			slog.Warn("page cache disabled", "error", err)
		} else {
			a.redis = client
			a.Pages = pagecache.New(client, postpage.Revalidate)
		}
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.initialized = true
	return nil
}

// Start initializes the app, watches the content directory and starts the server.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}

	if a.contentFS == nil {
		stop, err := content.Watch(a.Config.ContentDir, 300*time.Millisecond, a.invalidateContent)
		if err != nil {
			slog.Warn("content watcher disabled", "dir", a.Config.ContentDir, "error", err)
		} else {
			a.stopWatch = stop
		}
	}

	slog.Info("starting server", "addr", a.Config.Addr, "env", a.Config.Env)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

// invalidateContent drops every cached post and page after the content changed.
func (a *App) invalidateContent() {
	slog.Info("content changed, invalidating caches")
	a.Posts.Invalidate()
	a.Pages.InvalidateAll(context.Background())
}

func (a *App) setupRoutes() {
	e := a.Echo

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	// User's static assets
	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Public routes
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/blog", handleBlogRedirect)
	e.GET("/", a.handleHome)
	e.GET("/about/", a.handleAbout)
	e.GET("/blog/:slug/", a.handlePost)

	// API
	e.GET("/api/og", a.handleOGImage)
	e.POST("/api/reactions/:slug/", a.handleReaction)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.stopWatch != nil {
		a.stopWatch()
	}
	if a.reactionLimiter != nil {
		a.reactionLimiter.Stop()
	}
	if a.redis != nil {
		a.redis.Close()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
