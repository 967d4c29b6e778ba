package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/starford/worklog/internal/action"
	"github.com/starford/worklog/internal/apperr"
	"github.com/starford/worklog/internal/models"
	"github.com/starford/worklog/internal/render"
	"github.com/starford/worklog/internal/report"
	"github.com/starford/worklog/internal/store"
)

type executor struct {
	out        io.Writer
	logger     *slog.Logger
	loc        *time.Location
	json       bool
	dbPath     string
	configPath string
}

func (e *executor) execute(ctx context.Context, act action.Action) error {
	switch act.(type) {
	case action.PathDatabase:
		return render.Path(e.out, e.dbPath)
	case action.PathConfig:
		return render.Path(e.out, e.configPath)
	}

	st, err := store.Open(ctx, e.dbPath)
	if err != nil {
		return err
	}
	defer st.Close()
	e.logger.Debug("store opened", slog.String("path", e.dbPath))

	return e.withStore(ctx, st, act)
}

func (e *executor) withStore(ctx context.Context, st store.EventStore, act action.Action) error {
	if kind, ev, ok := action.Kind(act); ok {
		return e.record(ctx, st, kind, ev)
	}

	switch act := act.(type) {
	case action.Report:
		events, err := e.eventsOn(ctx, st, act.Date)
		if err != nil {
			return err
		}
		r := report.Build(act.Date, events)
		if e.json {
			return render.ReportJSON(e.out, r, e.loc)
		}
		return render.Report(e.out, r, e.loc)

	case action.EventsList:
		events, err := e.eventsOn(ctx, st, act.Date)
		if err != nil {
			return err
		}
		if e.json {
			return render.EventsJSON(e.out, act.Date, events, e.loc)
		}
		return render.Events(e.out, act.Date, events, e.loc)

	case action.EventRemove:
		removed, err := st.DeleteEvent(ctx, act.ID)
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("event #%d: %w", act.ID, apperr.ErrNotFound)
		}
		return render.Deleted(e.out, act.ID)
	}
	return fmt.Errorf("unhandled action %T", act)
}

func (e *executor) record(ctx context.Context, st store.EventStore, kind models.EventKind, ev action.Event) error {
	id, err := st.InsertEvent(ctx, kind, ev.Timestamp, ev.Message)
	if err != nil {
		return err
	}
	return render.Ack(e.out, models.Event{ID: id, Kind: kind, Timestamp: ev.Timestamp, Message: ev.Message}, e.loc)
}

func (e *executor) eventsOn(ctx context.Context, st store.EventStore, date models.Date) ([]models.Event, error) {
	start, end, err := report.Bounds(date, e.loc)
	if err != nil {
		return nil, err
	}
	return st.EventsBetween(ctx, start, end)
}
