package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/daily/internal"
	"github.com/starford/daily/internal/dailylog"
	pkgconfig "github.com/starford/daily/pkg/config"
)

var version = "dev"

// loadConfig applies, in order: defaults, the config file, then the
// --dir flag (or DAILY_DIR). A missing default config file is fine; an
// explicitly given one must exist.
func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()

	path, err := internal.ExpandHome(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if cmd.IsSet("config") {
		err = pkgconfig.Load(path, cfg)
	} else {
		_, err = pkgconfig.LoadWithDefaults(path, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if dir := cmd.String("dir"); dir != "" {
		cfg.DailiesDir = dir
	}
	return cfg, cfg.Validate()
}

func buildApp(cmd *cli.Command) (*internal.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithVerbose(cmd.Bool("verbose")),
	}

	app, err := internal.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("app init error: %w", err)
	}
	app.Logger.Debug("Running command", slog.String("command", cmd.Name))
	return app, nil
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:    "daily",
		Usage:   "CLI for daily work logging",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file (.toml or .yaml)",
				DefaultText: internal.DefaultConfigPath,
				Value:       internal.DefaultConfigPath,
				Sources:     cli.EnvVars("DAILY_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Directory holding the daily files",
				Sources: cli.EnvVars("DAILY_DIR"),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log debug output to stderr",
			},
		},
		Commands: []*cli.Command{
			entryCommand("did", "Log completed work (Done section)", dailylog.KeyDid),
			entryCommand("plan", "Plan work (To Do section)", dailylog.KeyPlan),
			entryCommand("block", "Log a blocker (Blockers section)", dailylog.KeyBlock),
			entryCommand("meeting", "Log a meeting (Meetings section)", dailylog.KeyMeeting),
			entryCommand("note", "Jot a quick note (Quick Notes section)", dailylog.KeyNotes),
			cheatCommand(),
			searchCommand(),
			listCommand(),
			showCommand(),
			editCommand(),
			checkCommand(),
			mcpCommand(),
		},
	}
}

func main() {
	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
