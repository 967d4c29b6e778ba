package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/worklog/internal"
	"github.com/starford/worklog/internal/paths"
	pkgconfig "github.com/starford/worklog/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" {
		configPath = paths.Config()
	}

	cfg := internal.NewDefaultConfig()
	if cmd.IsSet("config") {
		if err := pkgconfig.Load(configPath, cfg); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	} else if _, err := pkgconfig.LoadOptional(configPath, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if db := cmd.String("database"); db != "" {
		cfg.Database.Path = db
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithConfigPath(configPath),
		internal.WithJSON(cmd.Bool("json")),
	}

	return internal.Run(ctx, strings.Join(cmd.Args().Slice(), " "), opts...)
}

func main() {
	cmd := &cli.Command{
		Name:      "worklog",
		Usage:     "Record what you work on and report where the day went",
		ArgsUsage: "<command words...>",
		Description: `Commands:
   start <message>                    start a task now
   started <interval> [ago]: <msg>    start a task some time ago
   started at <time>: <msg>           start a task at a clock time
   stop | stopped ... | stopped at ... same forms for stopping
   report [for] [<date>]              tasks and total for a day
   events [list] [<date>]             raw events for a day
   events rm <id>                     delete an event
   paths database | paths config      print file locations`,
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Sources: cli.EnvVars("WORKLOG_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "database",
				Aliases: []string{"d"},
				Usage:   "Path to the event database",
				Sources: cli.EnvVars("WORKLOG_DATABASE"),
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print reports and event lists as JSON",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "worklog: %v\n", err)
		os.Exit(1)
	}
}
