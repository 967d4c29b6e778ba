package timeexpr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/starford/worklog/internal/apperr"
	"github.com/starford/worklog/internal/models"
)

var (
	// 0901, 090130
	militaryRe = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})?$`)
	// 9:01, 09:01:30, 1:23p, 1:23 PM
	civilianRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?(?:\s*([aApP])[mM]?)?$`)
)

func (r *Resolver) military(fragment string, today models.Date) (time.Time, bool, error) {
	m := militaryRe.FindStringSubmatch(fragment)
	if m == nil {
		return time.Time{}, false, nil
	}
	t, err := r.clockTime(fragment, today, atoi(m[1]), atoi(m[2]), atoi(m[3]))
	return t, true, err
}

func (r *Resolver) civilian(fragment string, today models.Date) (time.Time, bool, error) {
	m := civilianRe.FindStringSubmatch(fragment)
	if m == nil {
		return time.Time{}, false, nil
	}
	hour := atoi(m[1])
	if strings.EqualFold(m[4], "p") {
		hour += 12
	}
	t, err := r.clockTime(fragment, today, hour, atoi(m[2]), atoi(m[3]))
	return t, true, err
}

func (r *Resolver) clockTime(fragment string, today models.Date, hour, min, sec int) (time.Time, error) {
	switch {
	case hour > 23:
		return time.Time{}, apperr.InvalidTime(fragment, fmt.Errorf("hour %d out of range", hour))
	case min > 59:
		return time.Time{}, apperr.InvalidTime(fragment, fmt.Errorf("minute %d out of range", min))
	case sec > 59:
		return time.Time{}, apperr.InvalidTime(fragment, fmt.Errorf("second %d out of range", sec))
	}
	return exact(fragment, today, hour, min, sec, r.loc)
}

// atoi parses a regexp digit group; an empty optional group is zero.
func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
