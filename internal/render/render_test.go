package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/worklog/internal/models"
	"github.com/starford/worklog/internal/report"
)

var day = models.Date{Year: 2026, Month: time.October, Day: 19}

func at(hour, min int) time.Time {
	return time.Date(2026, 10, 19, hour, min, 0, 0, time.UTC)
}

func TestTruncate(t *testing.T) {
	exact := strings.Repeat("x", 40)
	assert.Equal(t, exact, Truncate(exact))
	assert.Equal(t, strings.Repeat("x", 39)+"…", Truncate(exact+"y"))
	assert.Equal(t, "", Truncate(""))

	wide := strings.Repeat("é", 41)
	assert.Equal(t, strings.Repeat("é", 39)+"…", Truncate(wide))
}

func TestAck(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Ack(&buf, models.Event{ID: 7, Kind: models.Start, Timestamp: at(9, 5), Message: "writing"}, time.UTC))
	assert.Equal(t, "[2026-10-19 0905] #7: START writing\n", buf.String())

	buf.Reset()
	require.NoError(t, Ack(&buf, models.Event{ID: 8, Kind: models.Stop, Timestamp: at(17, 30)}, time.UTC))
	assert.Equal(t, "[2026-10-19 1730] #8: STOP\n", buf.String())
}

func TestAck_UsesLocation(t *testing.T) {
	var buf bytes.Buffer
	loc := time.FixedZone("UTC+2", 2*3600)
	require.NoError(t, Ack(&buf, models.Event{ID: 1, Kind: models.Start, Timestamp: at(23, 0), Message: "late"}, loc))
	assert.Equal(t, "[2026-10-20 0100] #1: START late\n", buf.String())
}

func TestReport(t *testing.T) {
	r := report.Build(day, []models.Event{
		{ID: 1, Kind: models.Start, Timestamp: at(9, 0), Message: "A"},
		{ID: 2, Kind: models.Start, Timestamp: at(9, 30), Message: "B"},
		{ID: 3, Kind: models.Stop, Timestamp: at(10, 0)},
		{ID: 4, Kind: models.Start, Timestamp: at(13, 0), Message: "C"},
	})

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, r, time.UTC))

	want := "2026-10-19:\n" +
		separator + "\n" +
		"[0900–0930] (0:30) #1: A\n" +
		"[0930–1000] (0:30) #2: B\n" +
		"[1300–   …] (-:--) #4: C\n" +
		separator + "\n" +
		"  3 tasks   1:00\n"
	assert.Equal(t, want, buf.String())
}

func TestEvents(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Events(&buf, day, []models.Event{
		{ID: 1, Kind: models.Start, Timestamp: at(9, 0).Add(5 * time.Second), Message: "A"},
		{ID: 2, Kind: models.Stop, Timestamp: at(10, 0)},
	}, time.UTC))

	want := "2026-10-19:\n" +
		separator + "\n" +
		"#1 090005: START A\n" +
		"#2 100000: STOP\n" +
		separator + "\n"
	assert.Equal(t, want, buf.String())
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "0:00", Duration(0))
	assert.Equal(t, "0:59", Duration(59*time.Minute+59*time.Second))
	assert.Equal(t, "12:05", Duration(12*time.Hour+5*time.Minute))
}

func TestReportJSON(t *testing.T) {
	r := report.Build(day, []models.Event{
		{ID: 1, Kind: models.Start, Timestamp: at(9, 0), Message: "A"},
		{ID: 2, Kind: models.Stop, Timestamp: at(9, 45)},
		{ID: 3, Kind: models.Start, Timestamp: at(10, 0), Message: "B"},
	})

	var buf bytes.Buffer
	require.NoError(t, ReportJSON(&buf, r, time.UTC))

	var got struct {
		Date  string `json:"date"`
		Tasks []struct {
			ID      int64   `json:"id"`
			Stop    *string `json:"stop"`
			Seconds int64   `json:"duration_seconds"`
		} `json:"tasks"`
		TotalSeconds int64  `json:"total_seconds"`
		Total        string `json:"total"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "2026-10-19", got.Date)
	require.Len(t, got.Tasks, 2)
	assert.Equal(t, int64(45*60), got.Tasks[0].Seconds)
	assert.Nil(t, got.Tasks[1].Stop)
	assert.Equal(t, int64(45*60), got.TotalSeconds)
	assert.Equal(t, "0:45", got.Total)
}

func TestEventsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EventsJSON(&buf, day, nil, time.UTC))
	assert.JSONEq(t, `{"date":"2026-10-19","events":[]}`, buf.String())

	buf.Reset()
	require.NoError(t, EventsJSON(&buf, day, []models.Event{
		{ID: 4, Kind: models.Stop, Timestamp: at(10, 0), Message: "done"},
	}, time.UTC))
	assert.JSONEq(t, `{"date":"2026-10-19","events":[
		{"id":4,"kind":"STOP","timestamp":"2026-10-19T10:00:00Z","message":"done"}
	]}`, buf.String())
}
