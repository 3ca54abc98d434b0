// Package content loads blog posts from markdown files and keeps their view
// and reaction counters in SQLite.
package content

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/rizkimcitra/folio/markdown"
)

// ErrNotFound is returned when no post exists for a slug.
var ErrNotFound = errors.New("content: post not found")

// Source is the read-only lookup the rest of the site depends on.
type Source interface {
	GetPost(ctx context.Context, slug string) (Post, error)
	GetPosts(ctx context.Context) ([]Post, error)
}

// FrontMatter is the YAML header at the top of a post file.
type FrontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	Tags        []string `yaml:"tags"`
	Date        string   `yaml:"date"`
	Updated     string   `yaml:"updated"`
	Slug        string   `yaml:"slug"`
	Draft       bool     `yaml:"draft"`
}

// PublishedAt parses Date as YYYY-MM-DD. It returns the zero time when Date
// is empty or malformed.
func (f FrontMatter) PublishedAt() time.Time {
	t, err := time.Parse(time.DateOnly, f.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Post is a rendered post plus its counters.
type Post struct {
	Slug        string
	FrontMatter FrontMatter
	Source      string
	HTML        string
	TOC         []markdown.Heading
	Words       int
	Views       int64
	Reactions   Reactions
}

// Link returns the site-relative URL of the post.
func (p Post) Link() string {
	return "/blog/" + p.Slug + "/"
}

// ReadingMinutes estimates reading time at 200 words per minute, never less than one.
func (p Post) ReadingMinutes() int {
	m := int(math.Ceil(float64(p.Words) / 200))
	if m < 1 {
		return 1
	}
	return m
}
