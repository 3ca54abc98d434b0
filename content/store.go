package content

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations
var embedMigrations embed.FS

// Store wraps a SQLite database holding per-post view and reaction counters.
// Post bodies live on disk; only the counters are stored here.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and applies migrations.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open counters db: %w", err)
	}
	// readers must not block on a view being recorded
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	slog.Debug("counter migrations applied")
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// IncrementViews records one view of slug and returns the new total.
func (s *Store) IncrementViews(ctx context.Context, slug string) (int64, error) {
	var views int64
	err := s.db.QueryRowContext(ctx, `
INSERT INTO post_views (slug, views, updated_at) VALUES (?, 1, ?)
ON CONFLICT(slug) DO UPDATE SET views = views + 1, updated_at = excluded.updated_at
RETURNING views`, slug, now()).Scan(&views)
	if err != nil {
		return 0, fmt.Errorf("increment views %q: %w", slug, err)
	}
	return views, nil
}

// Views returns the view count of slug, zero when it was never viewed.
func (s *Store) Views(ctx context.Context, slug string) (int64, error) {
	var views int64
	err := s.db.QueryRowContext(ctx, `SELECT views FROM post_views WHERE slug = ?`, slug).Scan(&views)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return views, nil
}

// ViewCounts returns the view count of every post that has been viewed.
func (s *Store) ViewCounts(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slug, views FROM post_views`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var slug string
		var views int64
		if err := rows.Scan(&slug, &views); err != nil {
			return nil, err
		}
		counts[slug] = views
	}
	return counts, rows.Err()
}

// AddReaction records a reaction of kind by visitor on slug. A visitor can
// leave each kind once per post; repeats report added=false.
func (s *Store) AddReaction(ctx context.Context, slug string, kind ReactionKind, visitor string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO reactions (slug, kind, visitor, created_at) VALUES (?, ?, ?, ?)`,
		slug, string(kind), visitor, now())
	if err != nil {
		return false, fmt.Errorf("add reaction %q: %w", slug, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// ReactionCounts returns the reaction totals of a single post.
func (s *Store) ReactionCounts(ctx context.Context, slug string) (Reactions, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT kind, COUNT(*) FROM reactions WHERE slug = ? GROUP BY kind`, slug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(Reactions)
	for rows.Next() {
		var kind string
		var n int64
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		counts[ReactionKind(kind)] = n
	}
	return counts, rows.Err()
}

// AllReactionCounts returns reaction totals keyed by slug.
func (s *Store) AllReactionCounts(ctx context.Context) (map[string]Reactions, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slug, kind, COUNT(*) FROM reactions GROUP BY slug, kind`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]Reactions)
	for rows.Next() {
		var slug, kind string
		var n int64
		if err := rows.Scan(&slug, &kind, &n); err != nil {
			return nil, err
		}
		if counts[slug] == nil {
			counts[slug] = make(Reactions)
		}
		counts[slug][ReactionKind(kind)] = n
	}
	return counts, rows.Err()
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
