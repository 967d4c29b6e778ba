// Package timeexpr turns time fragments from a command line into instants
// and durations.
package timeexpr

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/starford/worklog/internal/apperr"
	"github.com/starford/worklog/internal/models"
)

// Expression is either an Absolute instant or a Relative span in the past.
type Expression interface {
	// At resolves the expression against now.
	At(now time.Time) time.Time
	isExpression()
}

// Absolute is a fully resolved point in time.
type Absolute struct {
	Time time.Time
}

func (a Absolute) At(time.Time) time.Time { return a.Time }
func (Absolute) isExpression()            {}

// Relative is a span subtracted from now. Ago is never negative.
type Relative struct {
	Ago time.Duration
}

func (r Relative) At(now time.Time) time.Time { return now.Add(-r.Ago) }
func (Relative) isExpression()                {}

// NaturalResolver understands free-form date/time and duration text.
type NaturalResolver interface {
	ResolveInstant(text string, anchor time.Time) (time.Time, error)
	ResolveDuration(text string) (time.Duration, error)
}

var agoRe = regexp.MustCompile(`(?i)(?:^|\s+)ago$`)

// Resolver resolves fragments in a fixed local zone.
type Resolver struct {
	natural NaturalResolver
	loc     *time.Location
}

// NewResolver returns a Resolver. A nil natural resolver means English,
// a nil location means time.Local.
func NewResolver(natural NaturalResolver, loc *time.Location) *Resolver {
	if natural == nil {
		natural = NewEnglish()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Resolver{natural: natural, loc: loc}
}

// Location returns the zone fragments are interpreted in.
func (r *Resolver) Location() *time.Location { return r.loc }

// Absolute resolves fragment as military time, then civilian time, then
// free-form text anchored at now. The first notation that matches wins even
// if its value is invalid.
func (r *Resolver) Absolute(fragment string, now time.Time) (Absolute, error) {
	fragment = strings.TrimSpace(fragment)
	now = now.In(r.loc)
	today := models.DateOf(now)

	if t, ok, err := r.military(fragment, today); ok {
		return Absolute{Time: t}, err
	}
	if t, ok, err := r.civilian(fragment, today); ok {
		return Absolute{Time: t}, err
	}
	if fragment == "" {
		return Absolute{}, apperr.ParseDatetime(fragment, errors.New("missing time"))
	}

	t, err := r.natural.ResolveInstant(fragment, now)
	if err != nil {
		return Absolute{}, apperr.ParseDatetime(fragment, err)
	}
	return Absolute{Time: t.In(r.loc)}, nil
}

// Relative resolves fragment as a span in the past. A trailing "ago" is
// accepted and ignored.
func (r *Resolver) Relative(fragment string) (Relative, error) {
	fragment = strings.TrimSpace(fragment)
	text := strings.TrimSpace(agoRe.ReplaceAllString(fragment, ""))
	if text == "" {
		return Relative{}, apperr.ParseInterval(fragment, errors.New("missing interval"))
	}

	d, err := r.natural.ResolveDuration(text)
	if err != nil {
		return Relative{}, apperr.ParseInterval(fragment, err)
	}
	if d < 0 {
		return Relative{}, apperr.ParseInterval(fragment, errors.New("interval is negative"))
	}
	return Relative{Ago: d}, nil
}

// Date resolves a whole-day fragment using free-form text only.
func (r *Resolver) Date(fragment string, now time.Time) (models.Date, error) {
	fragment = strings.TrimSpace(fragment)
	t, err := r.natural.ResolveInstant(fragment, now.In(r.loc))
	if err != nil {
		return models.Date{}, apperr.ParseDatetime(fragment, err)
	}
	return models.DateOf(t.In(r.loc)), nil
}
