package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/worklog/internal/models"
	"github.com/starford/worklog/internal/store"
	"github.com/starford/worklog/internal/testutil"
)

var base = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func TestInsertEvent_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := testutil.TestStore(t)

	loc := time.FixedZone("CEST", 2*3600)
	ts := time.Date(2026, 10, 19, 11, 30, 15, 123456789, loc)

	id, err := s.InsertEvent(ctx, models.Start, ts, "writing docs")
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := s.EventsBetween(ctx, base, base.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].ID)
	assert.Equal(t, models.Start, got[0].Kind)
	assert.True(t, ts.Equal(got[0].Timestamp), "got %s", got[0].Timestamp)
	assert.Equal(t, "writing docs", got[0].Message)
}

func TestEventsBetween_HalfOpenAndOrdered(t *testing.T) {
	ctx := context.Background()
	s := testutil.TestStore(t)

	insert := func(kind models.EventKind, ts time.Time, msg string) int64 {
		id, err := s.InsertEvent(ctx, kind, ts, msg)
		require.NoError(t, err)
		return id
	}
	insert(models.Start, base.Add(-time.Nanosecond), "before")
	late := insert(models.Stop, base.Add(2*time.Hour), "")
	first := insert(models.Start, base, "first")
	same := insert(models.Start, base, "same instant")
	insert(models.Start, base.Add(24*time.Hour), "next day")

	got, err := s.EventsBetween(ctx, base, base.Add(24*time.Hour))
	require.NoError(t, err)

	var ids []int64
	for _, ev := range got {
		ids = append(ids, ev.ID)
	}
	assert.Equal(t, []int64{first, same, late}, ids)
}

func TestEventsBetween_Empty(t *testing.T) {
	s := testutil.TestStore(t)
	got, err := s.EventsBetween(context.Background(), base, base.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()
	s := testutil.TestStore(t)

	keep, err := s.InsertEvent(ctx, models.Start, base, "keep")
	require.NoError(t, err)
	drop, err := s.InsertEvent(ctx, models.Stop, base.Add(time.Minute), "")
	require.NoError(t, err)

	ok, err := s.DeleteEvent(ctx, drop+100)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := s.EventsBetween(ctx, base, base.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	ok, err = s.DeleteEvent(ctx, drop)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = s.EventsBetween(ctx, base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, keep, got[0].ID)

	ok, err = s.DeleteEvent(ctx, drop)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpen_CreatesParentAndReopens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "a", "b", "db.sqlite3")

	s, err := store.Open(ctx, path)
	require.NoError(t, err)
	_, err = s.InsertEvent(ctx, models.Start, base, "persisted")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = os.Stat(path)
	require.NoError(t, err)

	s, err = store.Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.EventsBetween(ctx, base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "persisted", got[0].Message)
}

func TestOpen_UnwritableParent(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := store.Open(context.Background(), filepath.Join(blocker, "db.sqlite3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store: create dir")
}
