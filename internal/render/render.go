// Package render writes command results to the console.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/starford/worklog/internal/models"
	"github.com/starford/worklog/internal/report"
)

const (
	maxAckMessage = 40
	separator     = "----------------------------------------"
)

// Truncate shortens messages longer than 40 characters to 39 characters
// followed by an ellipsis.
func Truncate(message string) string {
	r := []rune(message)
	if len(r) <= maxAckMessage {
		return message
	}
	return string(r[:maxAckMessage-1]) + "…"
}

// Ack prints the acknowledgement for a recorded start or stop event.
func Ack(w io.Writer, ev models.Event, loc *time.Location) error {
	line := fmt.Sprintf("[%s] #%d: %s", ev.Timestamp.In(loc).Format("2006-01-02 1504"), ev.ID, ev.Kind.Name())
	if msg := Truncate(ev.Message); msg != "" {
		line += " " + msg
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

// Report prints one line per task followed by the day's total.
func Report(w io.Writer, r report.Report, loc *time.Location) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n%s\n", r.Date, separator)
	for _, t := range r.Tasks {
		stop, dur := "   …", "-:--"
		if !t.InProgress() {
			stop = t.Stop.In(loc).Format("1504")
			dur = Duration(t.Duration())
		}
		fmt.Fprintf(&b, "[%s–%s] (%s) #%d: %s\n", t.Start.In(loc).Format("1504"), stop, dur, t.SourceID, t.Message)
	}
	fmt.Fprintf(&b, "%s\n %2d tasks   %s\n", separator, len(r.Tasks), Duration(r.Total))
	_, err := io.WriteString(w, b.String())
	return err
}

// Events prints the raw events of a day.
func Events(w io.Writer, date models.Date, events []models.Event, loc *time.Location) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n%s\n", date, separator)
	for _, ev := range events {
		line := fmt.Sprintf("#%d %s: %s", ev.ID, ev.Timestamp.In(loc).Format("150405"), ev.Kind.Name())
		if ev.Message != "" {
			line += " " + ev.Message
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(separator + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Deleted confirms an event removal.
func Deleted(w io.Writer, id int64) error {
	_, err := fmt.Fprintf(w, "deleted event #%d\n", id)
	return err
}

// Path prints a resolved filesystem path.
func Path(w io.Writer, path string) error {
	_, err := fmt.Fprintln(w, path)
	return err
}

// Duration formats d as H:MM, truncated to whole minutes.
func Duration(d time.Duration) string {
	if d < 0 {
		return "-" + Duration(-d)
	}
	m := int64(d / time.Minute)
	return fmt.Sprintf("%d:%02d", m/60, m%60)
}
