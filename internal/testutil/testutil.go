// Package testutil provides shared test helpers for worklog databases.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/starford/worklog/internal/store"
)

// TestDBPath returns a database path inside a fresh temporary directory.
// The file itself does not exist yet.
func TestDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "worklog", "db.sqlite3")
}

// TestStore opens a store in a temporary directory that is automatically
// cleaned up.
func TestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), TestDBPath(t))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
