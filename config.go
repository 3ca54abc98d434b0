package folio

import (
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/rizkimcitra/folio/postpage"
	"github.com/rizkimcitra/folio/views"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string `mapstructure:"name"`        // Site name (default "Folio")
	URL         string `mapstructure:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `mapstructure:"description"` // Tagline for meta tags and RSS
	Owner       string `mapstructure:"owner"`       // Author credited in metadata

	TwitterUsername string `mapstructure:"twitter_username"`
	TwitterID       string `mapstructure:"twitter_id"`

	Env          string `mapstructure:"env"`           // "development" or "production"
	Addr         string `mapstructure:"addr"`          // Listen address (default ":3000")
	ContentDir   string `mapstructure:"content_dir"`   // Markdown posts (default "content/posts")
	DatabasePath string `mapstructure:"database_path"` // SQLite counters (default "data/folio.db")
	StaticDir    string `mapstructure:"static_dir"`    // User static assets (default "public")

	RedisAddr     string `mapstructure:"redis_addr"` // Page cache; disabled when empty
	RedisPassword string `mapstructure:"redis_password"`

	// OGProductionHost is the base host of preview-image URLs in production.
	OGProductionHost string `mapstructure:"og_production_host"`

	SessionSecret string `mapstructure:"session_secret"` // Required in production
	CookieSecure  bool   `mapstructure:"cookie_secure"`  // Set true for HTTPS

	ReactionLimit  int           `mapstructure:"reaction_limit"`  // Reactions per IP per window (default 10)
	ReactionWindow time.Duration `mapstructure:"reaction_window"` // default 1m

	MarkdownStyle string `mapstructure:"markdown_style"` // Chroma style for code blocks (default "dracula")
}

const devSessionSecret = "folio-development-secret"

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Folio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Owner == "" {
		c.Owner = c.Name
	}
	if c.Env == "" {
		c.Env = "development"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content/posts"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/folio.db"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.OGProductionHost == "" {
		c.OGProductionHost = "http://localhost:3222"
	}
	if c.MarkdownStyle == "" {
		c.MarkdownStyle = "dracula"
	}
	if c.ReactionLimit <= 0 {
		c.ReactionLimit = 10
	}
	if c.ReactionWindow <= 0 {
		c.ReactionWindow = time.Minute
	}
}

func (c *SiteConfig) validate() error {
	if c.SessionSecret == "" {
		if c.IsProduction() {
			return fmt.Errorf("folio: SessionSecret is required in production")
		}
		slog.Warn("using development session secret")
		c.SessionSecret = devSessionSecret
	}
	return nil
}

// IsProduction reports whether the site runs in production mode.
func (c SiteConfig) IsProduction() bool {
	return c.Env == "production"
}

// Site returns the values components print.
func (c SiteConfig) Site() views.Site {
	return views.Site{
		Name:    c.Name,
		URL:     c.URL,
		Owner:   c.Owner,
		Tagline: c.Description,
		Year:    time.Now().Year(),
	}
}

func (c SiteConfig) rendererConfig() postpage.Config {
	return postpage.Config{
		Site:             c.Site(),
		Twitter:          postpage.Twitter{Username: c.TwitterUsername, ID: c.TwitterID},
		Production:       c.IsProduction(),
		OGProductionHost: c.OGProductionHost,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithContentFS reads posts from fsys instead of ContentDir. The content
// watcher is disabled.
func WithContentFS(fsys fs.FS) Option {
	return func(a *App) {
		a.contentFS = fsys
	}
}
