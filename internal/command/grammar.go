package command

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/starford/worklog/internal/apperr"
	"github.com/starford/worklog/internal/models"
	"github.com/starford/worklog/internal/timeexpr"
)

// alternative is one command shape. keyword matches the structural prefix;
// build interprets the remainder and its error is final.
type alternative struct {
	name    string
	keyword *regexp.Regexp
	build   func(p *Parser, rest string) (Command, error)
}

func keyword(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^(?:` + pattern + `)`)
}

// grammar is tried top to bottom. Longer phrases precede their prefixes.
var grammar = []alternative{
	{"started at", keyword(`started\s+at`), (*Parser).startedAt},
	{"started", keyword(`started`), (*Parser).started},
	{"start", keyword(`start`), (*Parser).start},
	{"stopped at", keyword(`stopped\s+at`), (*Parser).stoppedAt},
	{"stopped", keyword(`stopped`), (*Parser).stopped},
	{"stop", keyword(`stop`), (*Parser).stop},
	{"path database", keyword(`paths?\s+(?:database|db)`), (*Parser).pathDatabase},
	{"path config", keyword(`paths?\s+(?:config|cfg)`), (*Parser).pathConfig},
	{"report", keyword(`report`), (*Parser).report},
	{"event remove", keyword(`events?\s+(?:delete|del|remove|rm)`), (*Parser).eventRemove},
	{"events", keyword(`events`), (*Parser).events},
}

var (
	forRe  = keyword(`for`)
	listRe = keyword(`list`)
)

// Parser turns command lines into commands.
type Parser struct {
	resolver *timeexpr.Resolver
	now      func() time.Time
}

// NewParser returns a Parser resolving times with resolver. now defaults to
// time.Now.
func NewParser(resolver *timeexpr.Resolver, now func() time.Time) *Parser {
	if now == nil {
		now = time.Now
	}
	return &Parser{resolver: resolver, now: now}
}

// Parse returns the command for line. A line whose first word is not a
// command fails with apperr.ErrUnknownCommand.
func (p *Parser) Parse(line string) (Command, error) {
	cmd, err := p.match(line)
	if err != nil {
		return nil, err
	}
	if u, ok := cmd.(Unknown); ok {
		return nil, apperr.UnknownCommand(u.Name)
	}
	return cmd, nil
}

func (p *Parser) match(line string) (Command, error) {
	line = strings.TrimSpace(line)
	for _, alt := range grammar {
		rest, ok := matchKeyword(alt.keyword, line)
		if !ok {
			continue
		}
		cmd, err := alt.build(p, rest)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", alt.name, err)
		}
		return cmd, nil
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, apperr.Parse(line, errors.New("empty command line"))
	}
	return Unknown{Name: fields[0]}, nil
}

// matchKeyword reports whether re matches a whole word at the start of line
// and returns what follows it.
func matchKeyword(re *regexp.Regexp, line string) (string, bool) {
	loc := re.FindStringIndex(line)
	if loc == nil {
		return "", false
	}
	rest := line[loc[1]:]
	if rest != "" && rest[0] != ':' && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return rest, true
}

func (p *Parser) start(rest string) (Command, error) {
	msg := bareMessage(rest)
	if msg == "" {
		return nil, apperr.NoStartMessage()
	}
	return Start{Message: msg}, nil
}

func (p *Parser) stop(rest string) (Command, error) {
	return Stop{Message: bareMessage(rest)}, nil
}

func (p *Parser) started(rest string) (Command, error) {
	ago, msg, err := p.relative(rest, true)
	if err != nil {
		return nil, err
	}
	return StartedRelative{Ago: ago, Message: msg}, nil
}

func (p *Parser) stopped(rest string) (Command, error) {
	ago, msg, err := p.relative(rest, false)
	if err != nil {
		return nil, err
	}
	return StoppedRelative{Ago: ago, Message: msg}, nil
}

func (p *Parser) startedAt(rest string) (Command, error) {
	t, msg, err := p.absolute(rest, true)
	if err != nil {
		return nil, err
	}
	return StartedAbsolute{Time: t, Message: msg}, nil
}

func (p *Parser) stoppedAt(rest string) (Command, error) {
	t, msg, err := p.absolute(rest, false)
	if err != nil {
		return nil, err
	}
	return StoppedAbsolute{Time: t, Message: msg}, nil
}

// relative parses "<interval> [ago] [: message]". The message check runs
// after the interval resolved so a bad interval is reported first.
func (p *Parser) relative(rest string, requireMessage bool) (time.Duration, string, error) {
	fragment, msg := splitTimed(rest)
	rel, err := p.resolver.Relative(fragment)
	if err != nil {
		return 0, "", err
	}
	if requireMessage && msg == "" {
		return 0, "", apperr.NoStartMessage()
	}
	return rel.Ago, msg, nil
}

func (p *Parser) absolute(rest string, requireMessage bool) (time.Time, string, error) {
	fragment, msg := splitTimed(rest)
	abs, err := p.resolver.Absolute(fragment, p.now())
	if err != nil {
		return time.Time{}, "", err
	}
	if requireMessage && msg == "" {
		return time.Time{}, "", apperr.NoStartMessage()
	}
	return abs.Time, msg, nil
}

func (p *Parser) pathDatabase(rest string) (Command, error) {
	if err := noTrailing(rest); err != nil {
		return nil, err
	}
	return PathDatabase{}, nil
}

func (p *Parser) pathConfig(rest string) (Command, error) {
	if err := noTrailing(rest); err != nil {
		return nil, err
	}
	return PathConfig{}, nil
}

func (p *Parser) report(rest string) (Command, error) {
	rest = strings.TrimSpace(rest)
	if r, ok := matchKeyword(forRe, rest); ok {
		rest = r
	}
	date, err := p.date(rest)
	if err != nil {
		return nil, err
	}
	return Report{Date: date}, nil
}

func (p *Parser) events(rest string) (Command, error) {
	rest = strings.TrimSpace(rest)
	if r, ok := matchKeyword(listRe, rest); ok {
		rest = r
	}
	date, err := p.date(rest)
	if err != nil {
		return nil, err
	}
	return EventsList{Date: date}, nil
}

func (p *Parser) eventRemove(rest string) (Command, error) {
	raw := strings.TrimSpace(rest)
	id, err := strconv.ParseInt(strings.TrimPrefix(raw, "#"), 10, 64)
	if err != nil || id <= 0 {
		return nil, apperr.Parse(raw, errors.New("event id must be a positive integer"))
	}
	return EventRemove{ID: id}, nil
}

// date resolves an optional whole-day expression; empty means today.
func (p *Parser) date(fragment string) (*models.Date, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, nil
	}
	d, err := p.resolver.Date(fragment, p.now())
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func noTrailing(rest string) error {
	if rest = strings.TrimSpace(rest); rest != "" {
		return apperr.Parse(rest, errors.New("unexpected trailing text"))
	}
	return nil
}
