package timeexpr

import (
	"fmt"
	"sort"
	"time"

	"github.com/starford/worklog/internal/apperr"
	"github.com/starford/worklog/internal/models"
)

// WallClock returns every instant at which clocks in loc read hour:min:sec on
// date, in ascending order. The result is empty inside a spring-forward gap
// and has two elements inside a fall-back overlap.
func WallClock(date models.Date, hour, min, sec int, loc *time.Location) []time.Time {
	naive := time.Date(date.Year, date.Month, date.Day, hour, min, sec, 0, time.UTC)
	guess := time.Date(date.Year, date.Month, date.Day, hour, min, sec, 0, loc)

	var out []time.Time
	seen := make(map[int]struct{}, 3)
	for _, probe := range []time.Time{guess.Add(-24 * time.Hour), guess, guess.Add(24 * time.Hour)} {
		_, offset := probe.Zone()
		if _, dup := seen[offset]; dup {
			continue
		}
		seen[offset] = struct{}{}

		cand := naive.Add(-time.Duration(offset) * time.Second).In(loc)
		if models.DateOf(cand) == date && cand.Hour() == hour && cand.Minute() == min && cand.Second() == sec {
			out = append(out, cand)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// exact resolves a wall-clock time that must occur exactly once.
func exact(fragment string, date models.Date, hour, min, sec int, loc *time.Location) (time.Time, error) {
	at := WallClock(date, hour, min, sec, loc)
	switch len(at) {
	case 1:
		return at[0], nil
	case 0:
		return time.Time{}, apperr.InvalidTime(fragment,
			fmt.Errorf("%s %02d:%02d:%02d does not exist in %s", date, hour, min, sec, loc))
	default:
		return time.Time{}, apperr.InvalidTime(fragment,
			fmt.Errorf("%s %02d:%02d:%02d occurs %d times in %s", date, hour, min, sec, len(at), loc))
	}
}

// Midnight returns the instant the given date begins in loc.
func Midnight(date models.Date, loc *time.Location) (time.Time, error) {
	at := WallClock(date, 0, 0, 0, loc)
	if len(at) != 1 {
		return time.Time{}, apperr.AmbiguousLocalMidnight(date.String())
	}
	return at[0], nil
}
