// Package models defines the domain types for worklog.
package models

import (
	"fmt"
	"strings"
	"time"
)

// EventKind is the type of a stored event.
type EventKind int

const (
	Start EventKind = iota + 1
	Stop
)

// Name returns the canonical upper-case name stored in the evt_type table.
func (k EventKind) Name() string {
	switch k {
	case Start:
		return "START"
	case Stop:
		return "STOP"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

func (k EventKind) String() string { return k.Name() }

// MarshalText renders the kind as its name.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.Name()), nil
}

// ParseEventKind is the inverse of Name.
func ParseEventKind(name string) (EventKind, error) {
	switch strings.ToUpper(name) {
	case "START":
		return Start, nil
	case "STOP":
		return Stop, nil
	}
	return 0, fmt.Errorf("unknown event kind %q", name)
}

// Event is a timestamped start or stop marker.
type Event struct {
	ID        int64     `json:"id"`
	Kind      EventKind `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}
