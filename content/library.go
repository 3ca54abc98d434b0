package content

import (
	"context"
	"log/slog"
)

// Library is a Source that decorates posts with their counters.
// Counter failures are logged and leave the counts at zero.
type Library struct {
	posts    Source
	counters *Store
}

// NewLibrary combines a post source with a counter store.
func NewLibrary(posts Source, counters *Store) *Library {
	return &Library{posts: posts, counters: counters}
}

func (l *Library) GetPost(ctx context.Context, slug string) (Post, error) {
	p, err := l.posts.GetPost(ctx, slug)
	if err != nil {
		return Post{}, err
	}
	if views, err := l.counters.Views(ctx, slug); err != nil {
		slog.Warn("load view count failed", "slug", slug, "error", err)
	} else {
		p.Views = views
	}
	if reactions, err := l.counters.ReactionCounts(ctx, slug); err != nil {
		slog.Warn("load reactions failed", "slug", slug, "error", err)
	} else {
		p.Reactions = reactions
	}
	return p, nil
}

func (l *Library) GetPosts(ctx context.Context) ([]Post, error) {
	posts, err := l.posts.GetPosts(ctx)
	if err != nil {
		return nil, err
	}
	views, err := l.counters.ViewCounts(ctx)
	if err != nil {
		slog.Warn("load view counts failed", "error", err)
	}
	reactions, err := l.counters.AllReactionCounts(ctx)
	if err != nil {
		slog.Warn("load reaction counts failed", "error", err)
	}
	for i := range posts {
		posts[i].Views = views[posts[i].Slug]
		posts[i].Reactions = reactions[posts[i].Slug]
	}
	return posts, nil
}
