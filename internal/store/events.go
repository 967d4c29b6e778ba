package store

import (
	"context"
	"fmt"
	"time"

	"github.com/starford/worklog/internal/models"
)

// InsertEvent records an event and returns its id.
func (s *Store) InsertEvent(ctx context.Context, kind models.EventKind, ts time.Time, message string) (int64, error) {
	kindID, ok := s.kinds.ids[kind]
	if !ok {
		return 0, fmt.Errorf("store: insert: unknown kind %s", kind)
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx,
		`INSERT INTO events (evt_type, timestamp, message) VALUES (?, ?, ?)`,
		kindID, formatTimestamp(ts), message)
	if err != nil {
		return 0, fmt.Errorf("store: insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("store: insert: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: insert: commit: %w", err)
	}
	return id, nil
}

// EventsBetween returns events with start <= timestamp < end, oldest first.
func (s *Store) EventsBetween(ctx context.Context, start, end time.Time) ([]models.Event, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, evt_type, timestamp, message
		FROM events
		WHERE timestamp >= ? AND timestamp < ?
		ORDER BY timestamp, id
	`, formatTimestamp(start), formatTimestamp(end))
	if err != nil {
		return nil, fmt.Errorf("store: retrieve: %w", err)
	}
	defer rows.Close()

	var out []models.Event
	for rows.Next() {
		var (
			ev     models.Event
			kindID int64
			ts     string
		)
		if err := rows.Scan(&ev.ID, &kindID, &ts, &ev.Message); err != nil {
			return nil, fmt.Errorf("store: retrieve: %w", err)
		}
		kind, ok := s.kinds.names[kindID]
		if !ok {
			return nil, fmt.Errorf("store: retrieve: event #%d has unknown kind id %d", ev.ID, kindID)
		}
		ev.Kind = kind
		if ev.Timestamp, err = time.Parse(timestampLayout, ts); err != nil {
			return nil, fmt.Errorf("store: retrieve: event #%d: %w", ev.ID, err)
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: retrieve: %w", err)
	}
	return out, nil
}

// DeleteEvent removes the event with the given id and reports whether it
// existed.
func (s *Store) DeleteEvent(ctx context.Context, id int64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("store: delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("store: delete: %w", err)
	}
	return n > 0, nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
