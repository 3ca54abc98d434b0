package folio

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"
)

// Export pre-renders the home page, the about page and every post into
// outDir as index.html files. It returns the number of pages written.
func (a *App) Export(ctx context.Context, outDir string) (int, error) {
	if err := a.Init(); err != nil {
		return 0, err
	}

	posts, err := a.Posts.ListPosts(ctx, "")
	if err != nil {
		return 0, err
	}
	tags, err := a.Posts.ListTags(ctx)
	if err != nil {
		return 0, err
	}

	pages := map[string]templ.Component{
		"index.html":       a.homePage(posts, tags, ""),
		"about/index.html": a.aboutPage(),
	}

	params, err := a.Renderer.GenerateStaticParams(ctx)
	if err != nil {
		return 0, err
	}
	for _, p := range params {
		doc, err := a.Renderer.RenderDocument(ctx, p.Slug)
		if err != nil {
			return 0, fmt.Errorf("folio: export %q: %w", p.Slug, err)
		}
		pages[filepath.Join("blog", p.Slug, "index.html")] = doc
	}

	for name, cmp := range pages {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		html, err := RenderBytes(ctx, cmp)
		if err != nil {
			return 0, fmt.Errorf("folio: export %s: %w", name, err)
		}
		dst := filepath.Join(outDir, name)
		if rel, err := filepath.Rel(outDir, dst); err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return 0, fmt.Errorf("folio: export %s: path escapes %s", name, outDir)
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return 0, err
		}
		if err := os.WriteFile(dst, html, 0o644); err != nil {
			return 0, err
		}
		slog.Debug("exported page", "path", dst)
	}
	return len(pages), nil
}
