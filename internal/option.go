package internal

import (
	"io"
	"time"

	"github.com/starford/worklog/internal/timeexpr"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config     *Config
	configPath string
	out        io.Writer
	logOut     io.Writer
	clock      func() time.Time
	json       bool
	natural    timeexpr.NaturalResolver
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithConfigPath records the configuration file the config was loaded from,
// reported by "paths config".
func WithConfigPath(path string) Option {
	return func(a *application) {
		a.configPath = path
	}
}

// WithOutput redirects rendered results. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(a *application) {
		a.out = w
	}
}

// WithLogOutput redirects log records. Defaults to os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(a *application) {
		a.logOut = w
	}
}

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) Option {
	return func(a *application) {
		a.clock = clock
	}
}

// WithJSON switches reports and event lists to JSON output.
func WithJSON(enabled bool) Option {
	return func(a *application) {
		a.json = enabled
	}
}

// WithResolver replaces the English natural-language time resolver.
func WithResolver(r timeexpr.NaturalResolver) Option {
	return func(a *application) {
		a.natural = r
	}
}
