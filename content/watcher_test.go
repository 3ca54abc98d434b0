package content

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchCallsOnChange(t *testing.T) {
	dir := t.TempDir()
	changed := make(chan struct{}, 1)
	stop, err := Watch(dir, 20*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer stop()

	if err := os.WriteFile(filepath.Join(dir, "new.md"), []byte("---\ntitle: x\n---\n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("expected onChange after writing a file")
	}
}

func TestWatchMissingDir(t *testing.T) {
	if _, err := Watch(filepath.Join(t.TempDir(), "missing"), time.Millisecond, func() {}); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
