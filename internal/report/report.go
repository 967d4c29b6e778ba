// Package report rebuilds tasks from a day's start/stop events.
package report

import (
	"fmt"
	"time"

	"github.com/starford/worklog/internal/models"
	"github.com/starford/worklog/internal/timeexpr"
)

// Task is a span of work opened by a start event. Stop is nil while the
// task is still running.
type Task struct {
	Start    time.Time
	Stop     *time.Time
	SourceID int64
	Message  string
}

// InProgress reports whether the task has not been stopped yet.
func (t Task) InProgress() bool { return t.Stop == nil }

// Duration is zero for a task in progress.
func (t Task) Duration() time.Duration {
	if t.Stop == nil {
		return 0
	}
	return t.Stop.Sub(t.Start)
}

// Report is the reconstructed work for one day.
type Report struct {
	Date  models.Date
	Tasks []Task
	Total time.Duration
}

// Bounds returns the half-open interval covering date in loc.
func Bounds(date models.Date, loc *time.Location) (time.Time, time.Time, error) {
	start, err := timeexpr.Midnight(date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("report: bounds: %w", err)
	}
	end, err := timeexpr.Midnight(date.AddDays(1), loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("report: bounds: %w", err)
	}
	return start, end, nil
}

// Reconstruct turns chronologically ordered events into tasks. Every event
// closes the running task; a start event then opens the next one. A stop
// with nothing running is ignored.
func Reconstruct(events []models.Event) []Task {
	tasks := make([]Task, 0, len(events))
	var open *Task
	for _, ev := range events {
		if open != nil {
			stop := ev.Timestamp
			open.Stop = &stop
			tasks = append(tasks, *open)
			open = nil
		}
		if ev.Kind == models.Start {
			open = &Task{Start: ev.Timestamp, SourceID: ev.ID, Message: ev.Message}
		}
	}
	if open != nil {
		tasks = append(tasks, *open)
	}
	return tasks
}

// Build reconstructs the tasks of date and sums their durations.
func Build(date models.Date, events []models.Event) Report {
	tasks := Reconstruct(events)
	var total time.Duration
	for _, t := range tasks {
		total += t.Duration()
	}
	return Report{Date: date, Tasks: tasks, Total: total}
}
