package store

import (
	"context"
	"time"

	"github.com/starford/worklog/internal/models"
)

// EventStore is the persistence surface used by the command runner.
type EventStore interface {
	InsertEvent(ctx context.Context, kind models.EventKind, ts time.Time, message string) (int64, error)
	EventsBetween(ctx context.Context, start, end time.Time) ([]models.Event, error)
	DeleteEvent(ctx context.Context, id int64) (bool, error)
	Close() error
}

// Verify *Store satisfies EventStore at compile time.
var _ EventStore = (*Store)(nil)
