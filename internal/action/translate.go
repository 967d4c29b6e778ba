package action

import (
	"fmt"
	"time"

	"github.com/starford/worklog/internal/apperr"
	"github.com/starford/worklog/internal/command"
	"github.com/starford/worklog/internal/models"
)

// Translator converts commands into actions using a single reading of the
// clock per call.
type Translator struct {
	now func() time.Time
	loc *time.Location
}

// NewTranslator returns a Translator. now defaults to time.Now and loc to
// time.Local.
func NewTranslator(now func() time.Time, loc *time.Location) *Translator {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Translator{now: now, loc: loc}
}

// Translate maps cmd onto its action.
func (t *Translator) Translate(cmd command.Command) (Action, error) {
	now := t.now().In(t.loc)

	switch c := cmd.(type) {
	case command.Start:
		return Start{Event{Timestamp: now, Message: c.Message}}, nil
	case command.Stop:
		return Stop{Event{Timestamp: now, Message: c.Message}}, nil
	case command.StartedRelative:
		return Start{Event{Timestamp: now.Add(-c.Ago), Message: c.Message}}, nil
	case command.StoppedRelative:
		return Stop{Event{Timestamp: now.Add(-c.Ago), Message: c.Message}}, nil
	case command.StartedAbsolute:
		return Start{Event{Timestamp: c.Time, Message: c.Message}}, nil
	case command.StoppedAbsolute:
		return Stop{Event{Timestamp: c.Time, Message: c.Message}}, nil
	case command.Report:
		return Report{Date: dateOrToday(c.Date, now)}, nil
	case command.EventsList:
		return EventsList{Date: dateOrToday(c.Date, now)}, nil
	case command.EventRemove:
		return EventRemove{ID: c.ID}, nil
	case command.PathDatabase:
		return PathDatabase{}, nil
	case command.PathConfig:
		return PathConfig{}, nil
	case command.Unknown:
		return nil, apperr.UnknownCommand(c.Name)
	}
	return nil, fmt.Errorf("action: unhandled command %T", cmd)
}

func dateOrToday(d *models.Date, now time.Time) models.Date {
	if d != nil {
		return *d
	}
	return models.DateOf(now)
}
