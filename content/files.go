package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/rizkimcitra/folio/markdown"
)

// FileSource reads posts from markdown files with a YAML front matter header.
// Every call reads the files again; caching belongs to the caller.
type FileSource struct {
	fsys fs.FS
	md   *markdown.Renderer
}

// NewFileSource creates a FileSource over fsys, rendering bodies with md.
func NewFileSource(fsys fs.FS, md *markdown.Renderer) *FileSource {
	return &FileSource{fsys: fsys, md: md}
}

// GetPosts returns every non-draft post, newest first. A missing content
// root yields no posts.
func (s *FileSource) GetPosts(ctx context.Context) ([]Post, error) {
	var paths []string
	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == "." && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if !d.IsDir() && isPostFile(p) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk content: %w", err)
	}
	sort.Strings(paths)

	seen := make(map[string]string, len(paths))
	posts := make([]Post, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		post, err := s.readPost(p)
		if err != nil {
			return nil, err
		}
		if post.FrontMatter.Draft {
			continue
		}
		if prev, ok := seen[post.Slug]; ok {
			slog.Warn("duplicate post slug ignored", "slug", post.Slug, "file", p, "kept", prev)
			continue
		}
		seen[post.Slug] = p
		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].FrontMatter.Date > posts[j].FrontMatter.Date
	})
	return posts, nil
}

// GetPost returns the non-draft post with the given slug.
func (s *FileSource) GetPost(ctx context.Context, slug string) (Post, error) {
	posts, err := s.GetPosts(ctx)
	if err != nil {
		return Post{}, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}

func (s *FileSource) readPost(p string) (Post, error) {
	raw, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return Post{}, err
	}
	var fm FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return Post{}, fmt.Errorf("parse front matter %s: %w", p, err)
	}
	doc, err := s.md.Render(body)
	if err != nil {
		return Post{}, fmt.Errorf("render %s: %w", p, err)
	}
	fileSlug := strings.TrimSuffix(path.Base(p), path.Ext(p))
	slug := strings.TrimSpace(fm.Slug)
	if slug != "" && !validSlug(slug) {
		slog.Warn("invalid front matter slug, using file name", "file", p, "slug", slug)
		slug = ""
	}
	if slug == "" {
		slug = fileSlug
	}
	if !validSlug(slug) {
		return Post{}, fmt.Errorf("parse front matter %s: invalid slug %q", p, slug)
	}
	return Post{
		Slug:        slug,
		FrontMatter: fm,
		Source:      string(body),
		HTML:        doc.HTML,
		TOC:         doc.TOC,
		Words:       doc.Words,
	}, nil
}

// validSlug reports whether s can be used as a single URL path segment and
// directory name.
func validSlug(s string) bool {
	return s != "" && s != "." &&
		!strings.Contains(s, "..") &&
		!strings.ContainsAny(s, `/\`)
}

func isPostFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".md", ".mdx":
		return true
	}
	return false
}
