package render

import (
	"encoding/json"
	"io"
	"time"

	"github.com/starford/worklog/internal/models"
	"github.com/starford/worklog/internal/report"
)

type taskJSON struct {
	ID       int64      `json:"id"`
	Start    time.Time  `json:"start"`
	Stop     *time.Time `json:"stop"`
	Seconds  int64      `json:"duration_seconds"`
	Duration string     `json:"duration"`
	Message  string     `json:"message"`
}

type reportJSON struct {
	Date         models.Date `json:"date"`
	Tasks        []taskJSON  `json:"tasks"`
	TotalSeconds int64       `json:"total_seconds"`
	Total        string      `json:"total"`
}

type eventsJSON struct {
	Date   models.Date    `json:"date"`
	Events []models.Event `json:"events"`
}

// ReportJSON writes r as indented JSON with times in loc.
func ReportJSON(w io.Writer, r report.Report, loc *time.Location) error {
	out := reportJSON{
		Date:         r.Date,
		Tasks:        make([]taskJSON, 0, len(r.Tasks)),
		TotalSeconds: int64(r.Total / time.Second),
		Total:        Duration(r.Total),
	}
	for _, t := range r.Tasks {
		tj := taskJSON{
			ID:       t.SourceID,
			Start:    t.Start.In(loc),
			Seconds:  int64(t.Duration() / time.Second),
			Duration: Duration(t.Duration()),
			Message:  t.Message,
		}
		if t.Stop != nil {
			stop := t.Stop.In(loc)
			tj.Stop = &stop
		}
		out.Tasks = append(out.Tasks, tj)
	}
	return writeJSON(w, out)
}

// EventsJSON writes the events of date as indented JSON with times in loc.
func EventsJSON(w io.Writer, date models.Date, events []models.Event, loc *time.Location) error {
	out := eventsJSON{Date: date, Events: make([]models.Event, 0, len(events))}
	for _, ev := range events {
		ev.Timestamp = ev.Timestamp.In(loc)
		out.Events = append(out.Events, ev)
	}
	return writeJSON(w, out)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
