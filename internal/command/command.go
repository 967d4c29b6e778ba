// Package command parses worklog command lines into typed commands.
package command

import (
	"time"

	"github.com/starford/worklog/internal/models"
)

// Command is one of the types in this file.
type Command interface {
	isCommand()
}

// Start begins a task now.
type Start struct {
	Message string
}

// Stop ends the current task now.
type Stop struct {
	Message string
}

// StartedRelative begins a task Ago before now.
type StartedRelative struct {
	Ago     time.Duration
	Message string
}

// StoppedRelative ends the current task Ago before now.
type StoppedRelative struct {
	Ago     time.Duration
	Message string
}

// StartedAbsolute begins a task at Time.
type StartedAbsolute struct {
	Time    time.Time
	Message string
}

// StoppedAbsolute ends the current task at Time.
type StoppedAbsolute struct {
	Time    time.Time
	Message string
}

// Report summarises the tasks of one day. A nil Date means today.
type Report struct {
	Date *models.Date
}

// EventsList lists the raw events of one day. A nil Date means today.
type EventsList struct {
	Date *models.Date
}

// EventRemove deletes one event by id.
type EventRemove struct {
	ID int64
}

// PathDatabase prints the database location.
type PathDatabase struct{}

// PathConfig prints the config file location.
type PathConfig struct{}

// Unknown is a line whose first word is not a command.
type Unknown struct {
	Name string
}

func (Start) isCommand()           {}
func (Stop) isCommand()            {}
func (StartedRelative) isCommand() {}
func (StoppedRelative) isCommand() {}
func (StartedAbsolute) isCommand() {}
func (StoppedAbsolute) isCommand() {}
func (Report) isCommand()          {}
func (EventsList) isCommand()      {}
func (EventRemove) isCommand()     {}
func (PathDatabase) isCommand()    {}
func (PathConfig) isCommand()      {}
func (Unknown) isCommand()         {}
