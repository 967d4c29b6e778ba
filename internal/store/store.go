// Package store persists worklog events in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/starford/worklog/internal/models"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS evt_type (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

INSERT OR IGNORE INTO evt_type (name) VALUES ('START'), ('STOP');

CREATE TABLE IF NOT EXISTS events (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	evt_type  INTEGER NOT NULL REFERENCES evt_type(id),
	timestamp TEXT NOT NULL,
	message   TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_events_timestamp ON events(timestamp);
`

// timestampLayout is fixed width so that lexical order of stored values is
// chronological order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// kinds maps event kinds to evt_type row ids and back.
type kinds struct {
	ids   map[models.EventKind]int64
	names map[int64]models.EventKind
}

// Store wraps a sql.DB holding the event log.
type Store struct {
	conn  *sql.DB
	kinds kinds
}

// Open opens (or creates) the database at path, creating its parent
// directory and applying the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create dir: %w", err)
		}
	}

	conn, err := sql.Open(driverName, dsn(path))
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	if _, err := conn.ExecContext(ctx, schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	k, err := loadKinds(ctx, conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return &Store{conn: conn, kinds: k}, nil
}

func loadKinds(ctx context.Context, conn *sql.DB) (kinds, error) {
	rows, err := conn.QueryContext(ctx, `SELECT id, name FROM evt_type`)
	if err != nil {
		return kinds{}, fmt.Errorf("store: load kinds: %w", err)
	}
	defer rows.Close()

	k := kinds{
		ids:   make(map[models.EventKind]int64, 2),
		names: make(map[int64]models.EventKind, 2),
	}
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return kinds{}, fmt.Errorf("store: load kinds: %w", err)
		}
		kind, err := models.ParseEventKind(name)
		if err != nil {
			// Kinds added by a newer release are not ours to interpret.
			continue
		}
		k.ids[kind] = id
		k.names[id] = kind
	}
	if err := rows.Err(); err != nil {
		return kinds{}, fmt.Errorf("store: load kinds: %w", err)
	}
	for _, kind := range []models.EventKind{models.Start, models.Stop} {
		if _, ok := k.ids[kind]; !ok {
			return kinds{}, fmt.Errorf("store: load kinds: missing %s", kind)
		}
	}
	return k, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}
