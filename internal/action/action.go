// Package action maps parsed commands onto the operations worklog performs.
package action

import (
	"time"

	"github.com/starford/worklog/internal/models"
)

// Action is one of the types in this file.
type Action interface {
	isAction()
}

// Event is the payload of a Start or Stop action.
type Event struct {
	Timestamp time.Time
	Message   string
}

type Start struct{ Event }

type Stop struct{ Event }

type Report struct{ Date models.Date }

type EventsList struct{ Date models.Date }

type EventRemove struct{ ID int64 }

type PathDatabase struct{}

type PathConfig struct{}

func (Start) isAction()        {}
func (Stop) isAction()         {}
func (Report) isAction()       {}
func (EventsList) isAction()   {}
func (EventRemove) isAction()  {}
func (PathDatabase) isAction() {}
func (PathConfig) isAction()   {}

// Kind returns the stored event kind for Start and Stop actions.
func Kind(a Action) (models.EventKind, Event, bool) {
	switch a := a.(type) {
	case Start:
		return models.Start, a.Event, true
	case Stop:
		return models.Stop, a.Event, true
	}
	return 0, Event{}, false
}
