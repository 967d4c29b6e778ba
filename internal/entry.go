// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/starford/worklog/internal/action"
	"github.com/starford/worklog/internal/command"
	"github.com/starford/worklog/internal/paths"
	"github.com/starford/worklog/internal/timeexpr"
)

// Run parses one command line and carries it out.
func Run(ctx context.Context, line string, opts ...Option) error {
	app := &application{
		out:    os.Stdout,
		logOut: os.Stderr,
		clock:  time.Now,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config
	logger := newLogger(app.logOut, cfg.App)
	slog.SetDefault(logger)

	loc, err := cfg.Time.Location()
	if err != nil {
		return fmt.Errorf("time zone %q: %w", cfg.Time.Timezone, err)
	}

	// One reading of the clock serves the whole command line.
	now := app.clock()
	clock := func() time.Time { return now }

	resolver := timeexpr.NewResolver(app.natural, loc)
	cmd, err := command.NewParser(resolver, clock).Parse(line)
	if err != nil {
		return err
	}
	logger.Debug("parsed command", slog.String("line", line), slog.String("command", fmt.Sprintf("%#v", cmd)))

	act, err := action.NewTranslator(clock, loc).Translate(cmd)
	if err != nil {
		return err
	}

	ex := &executor{
		out:    app.out,
		logger: logger,
		loc:    loc,
		json:   app.json,
	}
	ex.dbPath = databasePath(cfg)
	if ex.configPath = app.configPath; ex.configPath == "" {
		ex.configPath = paths.Config()
	}

	if err := ex.execute(ctx, act); err != nil {
		return err
	}
	logger.Debug("executed action", slog.String("action", fmt.Sprintf("%T", act)))
	return nil
}

func databasePath(cfg *Config) string {
	if cfg.Database.Path != "" {
		return cfg.Database.Path
	}
	return paths.Database()
}

func newLogger(w io.Writer, cfg ApplicationConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
