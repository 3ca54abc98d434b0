package content

import (
	"context"
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "test_folio.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore(t *testing.T) {
	s := setupTestStore(t)
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
}

func TestIncrementViews(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := s.IncrementViews(ctx, "hello-world")
		if err != nil {
			t.Fatalf("IncrementViews failed: %v", err)
		}
		if got != want {
			t.Errorf("IncrementViews = %d, want %d", got, want)
		}
	}

	views, err := s.Views(ctx, "hello-world")
	if err != nil {
		t.Fatalf("Views failed: %v", err)
	}
	if views != 3 {
		t.Errorf("Views = %d, want 3", views)
	}
}

func TestViewsUnknownSlug(t *testing.T) {
	s := setupTestStore(t)
	views, err := s.Views(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Views failed: %v", err)
	}
	if views != 0 {
		t.Errorf("Views = %d, want 0", views)
	}
}

func TestViewCounts(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	s.IncrementViews(ctx, "a")
	s.IncrementViews(ctx, "a")
	s.IncrementViews(ctx, "b")

	counts, err := s.ViewCounts(ctx)
	if err != nil {
		t.Fatalf("ViewCounts failed: %v", err)
	}
	if counts["a"] != 2 || counts["b"] != 1 {
		t.Errorf("ViewCounts = %v", counts)
	}
}

func TestAddReactionOncePerVisitor(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	added, err := s.AddReaction(ctx, "post", ReactionLove, "visitor-1")
	if err != nil {
		t.Fatalf("AddReaction failed: %v", err)
	}
	if !added {
		t.Error("first reaction should be added")
	}
	added, err = s.AddReaction(ctx, "post", ReactionLove, "visitor-1")
	if err != nil {
		t.Fatalf("AddReaction failed: %v", err)
	}
	if added {
		t.Error("repeated reaction should be ignored")
	}
	if _, err := s.AddReaction(ctx, "post", ReactionLike, "visitor-1"); err != nil {
		t.Fatalf("AddReaction failed: %v", err)
	}
	if _, err := s.AddReaction(ctx, "post", ReactionLove, "visitor-2"); err != nil {
		t.Fatalf("AddReaction failed: %v", err)
	}

	counts, err := s.ReactionCounts(ctx, "post")
	if err != nil {
		t.Fatalf("ReactionCounts failed: %v", err)
	}
	if counts[ReactionLove] != 2 || counts[ReactionLike] != 1 {
		t.Errorf("ReactionCounts = %v", counts)
	}
	if counts.Total() != 3 {
		t.Errorf("Total = %d, want 3", counts.Total())
	}

	all, err := s.AllReactionCounts(ctx)
	if err != nil {
		t.Fatalf("AllReactionCounts failed: %v", err)
	}
	if all["post"][ReactionLove] != 2 {
		t.Errorf("AllReactionCounts = %v", all)
	}
}

func TestReopenStoreKeepsCounters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.db")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if _, err := s.IncrementViews(context.Background(), "kept"); err != nil {
		t.Fatalf("IncrementViews failed: %v", err)
	}
	s.Close()

	s, err = NewStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()
	views, err := s.Views(context.Background(), "kept")
	if err != nil {
		t.Fatalf("Views failed: %v", err)
	}
	if views != 1 {
		t.Errorf("Views = %d, want 1", views)
	}
}

func TestParseReactionKind(t *testing.T) {
	tests := []struct {
		input   string
		want    ReactionKind
		wantErr bool
	}{
		{"like", ReactionLike, false},
		{"love", ReactionLove, false},
		{"insightful", ReactionInsightful, false},
		{"LIKE", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseReactionKind(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseReactionKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseReactionKind(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
