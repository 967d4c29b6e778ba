package timeexpr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	str2duration "github.com/xhit/go-str2duration/v2"
)

var isoLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

var (
	durationTermRe = regexp.MustCompile(`^(\d+(?:\.\d+)?|an?)\s*([a-z]+)`)
	durationJoinRe = regexp.MustCompile(`^(?:,\s*|and\s+)`)
)

// durationUnits maps English unit words to str2duration units.
var durationUnits = map[string]string{
	"s": "s", "sec": "s", "secs": "s", "second": "s", "seconds": "s",
	"m": "m", "min": "m", "mins": "m", "minute": "m", "minutes": "m",
	"h": "h", "hr": "h", "hrs": "h", "hour": "h", "hours": "h",
	"d": "d", "day": "d", "days": "d",
	"w": "w", "wk": "w", "wks": "w", "week": "w", "weeks": "w",
}

// English is a NaturalResolver for English text.
type English struct {
	parser *when.Parser
}

// NewEnglish builds an English resolver with the en and common rule sets.
func NewEnglish() *English {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &English{parser: w}
}

// ResolveInstant accepts ISO dates first, then anything the English rule
// set recognises. The recognised text must cover the whole input.
func (e *English) ResolveInstant(text string, anchor time.Time) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, errors.New("empty date expression")
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, text, anchor.Location()); err == nil {
			return t, nil
		}
	}

	res, err := e.parser.Parse(text, anchor)
	if err != nil {
		return time.Time{}, err
	}
	if res == nil {
		return time.Time{}, errors.New("no date or time recognised")
	}
	if end := res.Index + len(res.Text); res.Index >= 0 && end <= len(text) {
		if rest := strings.TrimSpace(text[:res.Index] + " " + text[end:]); rest != "" {
			return time.Time{}, fmt.Errorf("unrecognised text %q", rest)
		}
	}
	return res.Time, nil
}

// ResolveDuration accepts compact ("1h30m") and spelled-out ("1 hour and
// 30 minutes", "an hour") spans.
func (e *English) ResolveDuration(text string) (time.Duration, error) {
	rest := strings.ToLower(strings.TrimSpace(text))
	if rest == "" {
		return 0, errors.New("empty duration")
	}

	var compact strings.Builder
	for rest != "" {
		m := durationTermRe.FindStringSubmatch(rest)
		if m == nil {
			return 0, fmt.Errorf("unrecognised duration %q", rest)
		}
		qty := m[1]
		if qty == "a" || qty == "an" {
			qty = "1"
		}
		unit, ok := durationUnits[m[2]]
		if !ok {
			return 0, fmt.Errorf("unknown unit %q", m[2])
		}
		compact.WriteString(qty)
		compact.WriteString(unit)

		rest = strings.TrimSpace(rest[len(m[0]):])
		rest = durationJoinRe.ReplaceAllString(rest, "")
	}

	return str2duration.ParseDuration(compact.String())
}
