package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/urfave/cli/v3"

	"github.com/starford/daily/internal"
	"github.com/starford/daily/internal/apperr"
	"github.com/starford/daily/internal/dailylog"
	"github.com/starford/daily/internal/editor"
	"github.com/starford/daily/internal/picker"
	"github.com/starford/daily/internal/render"
	"github.com/starford/daily/internal/section"
)

func tagsFlag(usage string) cli.Flag {
	return &cli.StringFlag{Name: "tags", Aliases: []string{"t"}, Usage: usage}
}

func dateFlag() cli.Flag {
	return &cli.StringFlag{Name: "date", Usage: "Date as YYYY-MM-DD (default today)"}
}

// targetDate returns the --date value, or today when it is unset.
func targetDate(cmd *cli.Command, app *internal.App) (time.Time, error) {
	raw := strings.TrimSpace(cmd.String("date"))
	if raw == "" {
		return app.Today(), nil
	}
	d, err := dailylog.ParseDate(raw)
	if err != nil {
		return time.Time{}, cli.Exit(fmt.Sprintf("Invalid date %q: use YYYY-MM-DD", raw), 2)
	}
	return d, nil
}

// noEntries turns a missing daily file into the exit message shown to the
// user.
func noEntries(date, today time.Time, defaultedToPrevious bool) error {
	switch {
	case defaultedToPrevious:
		return cli.Exit("No entries from yesterday. Use 'daily cheat --today' to see today's file.", 1)
	case date.Equal(today):
		return cli.Exit("No entries for today. Use 'daily did' to get started.", 1)
	default:
		return cli.Exit(fmt.Sprintf("No entries for %s.", date.Format(dailylog.DateLayout)), 1)
	}
}

func noFilesMessage(tags []string) string {
	if len(tags) > 0 {
		return "No daily files found with tags: " + strings.Join(tags, ", ")
	}
	return "No daily files found."
}

func entryCommand(name, usage, key string) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<text>",
		Flags:     []cli.Flag{tagsFlag("Comma-separated tags"), dateFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			text := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
			if text == "" {
				return cli.Exit("Text cannot be empty", 2)
			}

			app, err := buildApp(cmd)
			if err != nil {
				return err
			}
			date, err := targetDate(cmd, app)
			if err != nil {
				return err
			}

			sec, err := dailylog.Lookup(key)
			if err != nil {
				return err
			}
			tags := section.ParseTagList(cmd.String("tags"))
			_, err = app.Dailies.InsertBullet(key, text, tags, date)
			if errors.Is(err, apperr.ErrInvalidText) {
				return cli.Exit("Text and tags must be a single line", 2)
			}
			if err != nil {
				return err
			}
			return render.New(cmd.Root().Writer).Added(sec.Label, text, tags)
		},
	}
}

func cheatCommand() *cli.Command {
	return &cli.Command{
		Name:  "cheat",
		Usage: "Show the standup cheat sheet (reads the previous workday by default)",
		Flags: []cli.Flag{
			tagsFlag("Filter by tags"),
			&cli.BoolFlag{Name: "plain", Aliases: []string{"p"}, Usage: "Plain text output (no colors)"},
			&cli.BoolFlag{Name: "today", Usage: "Show today's file instead of the previous workday's"},
			&cli.StringFlag{Name: "date", Usage: "Show the file for this date (YYYY-MM-DD)"},
			&cli.BoolFlag{Name: "workdays", Usage: "Skip weekends when looking for the previous workday"},
			&cli.BoolFlag{Name: "no-workdays", Usage: "Do not skip weekends when looking for the previous workday"},
			&cli.BoolFlag{Name: "copy", Usage: "Also copy the plain text cheat sheet to the clipboard"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := buildApp(cmd)
			if err != nil {
				return err
			}

			skip := app.Config.SkipWeekends
			if cmd.IsSet("workdays") {
				skip = cmd.Bool("workdays")
			}
			if cmd.IsSet("no-workdays") {
				skip = !cmd.Bool("no-workdays")
			}

			today := app.Today()
			date := dailylog.PreviousWorkday(today, skip)
			previous := true
			switch {
			case cmd.IsSet("date"):
				if date, err = targetDate(cmd, app); err != nil {
					return err
				}
				previous = false
			case cmd.Bool("today"):
				date, previous = today, false
			}

			sections, err := app.Dailies.CheatSheet(section.ParseTagList(cmd.String("tags")), date)
			if errors.Is(err, apperr.ErrNotFound) {
				return noEntries(date, today, previous)
			}
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			plain := dailylog.FormatCheatPlain(sections)
			if cmd.Bool("plain") {
				_, err = fmt.Fprintln(w, plain)
			} else {
				err = render.New(w).CheatSheet(date, sections)
			}
			if err != nil {
				return err
			}

			if cmd.Bool("copy") {
				if err := clipboard.WriteAll(plain); err != nil {
					app.Logger.Warn("clipboard copy failed", slog.String("error", err.Error()))
					return cli.Exit("Could not copy to clipboard: "+err.Error(), 1)
				}
				fmt.Fprintln(cmd.Root().ErrWriter, "Copied to clipboard.")
			}
			return nil
		},
	}
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Pick a daily file interactively and open it in $EDITOR",
		Flags: []cli.Flag{
			tagsFlag("Only list files with a bullet carrying one of these tags"),
			&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Usage: "Initial picker filter"},
			&cli.BoolFlag{Name: "print", Usage: "Print the selected path instead of opening it"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := buildApp(cmd)
			if err != nil {
				return err
			}

			tags := section.ParseTagList(cmd.String("tags"))
			entries, err := app.Dailies.List(tags)
			if err != nil {
				return cli.Exit("Error listing daily files: "+err.Error(), 1)
			}
			w := cmd.Root().Writer
			if len(entries) == 0 {
				fmt.Fprintln(w, noFilesMessage(tags))
				return nil
			}

			items := make([]picker.Item, len(entries))
			for i, e := range entries {
				items[i] = picker.Item{Path: e.Path, Label: app.Dailies.Describe(e.Path, e.Date)}
			}
			chosen, ok, err := picker.Pick(items, "Select daily file", cmd.String("query"))
			if err != nil {
				return cli.Exit("Error during search: "+err.Error(), 1)
			}
			if !ok {
				return nil
			}

			if cmd.Bool("print") {
				_, err := fmt.Fprintln(w, chosen.Path)
				return err
			}
			return openInEditor(app, chosen.Path)
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List daily files, newest first",
		Flags: []cli.Flag{tagsFlag("Only list files with a bullet carrying one of these tags")},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := buildApp(cmd)
			if err != nil {
				return err
			}

			tags := section.ParseTagList(cmd.String("tags"))
			entries, err := app.Dailies.List(tags)
			if err != nil {
				return err
			}
			w := cmd.Root().Writer
			if len(entries) == 0 {
				fmt.Fprintln(w, noFilesMessage(tags))
				return nil
			}
			for _, e := range entries {
				fmt.Fprintln(w, app.Dailies.Describe(e.Path, e.Date))
			}
			return nil
		},
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print a daily file",
		Flags: []cli.Flag{dateFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := buildApp(cmd)
			if err != nil {
				return err
			}
			date, err := targetDate(cmd, app)
			if err != nil {
				return err
			}

			content, err := app.Dailies.Read(date)
			if errors.Is(err, apperr.ErrNotFound) {
				return noEntries(date, app.Today(), false)
			}
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.Root().Writer, content)
			return err
		},
	}
}

func editCommand() *cli.Command {
	return &cli.Command{
		Name:  "edit",
		Usage: "Open a daily file in $EDITOR, creating it if needed",
		Flags: []cli.Flag{dateFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := buildApp(cmd)
			if err != nil {
				return err
			}
			date, err := targetDate(cmd, app)
			if err != nil {
				return err
			}

			path, err := app.Dailies.EnsureExists(date)
			if err != nil {
				return err
			}
			return openInEditor(app, path)
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Report frontmatter and section header problems in a daily file",
		Flags: []cli.Flag{dateFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := buildApp(cmd)
			if err != nil {
				return err
			}
			date, err := targetDate(cmd, app)
			if err != nil {
				return err
			}

			report, err := app.Dailies.Check(date)
			if errors.Is(err, apperr.ErrNotFound) {
				return noEntries(date, app.Today(), false)
			}
			if err != nil {
				return err
			}
			if err := render.New(cmd.Root().Writer).Check(report); err != nil {
				return err
			}
			if !report.OK() {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

func mcpCommand() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Serve the daily log tools over MCP on stdin/stdout",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := buildApp(cmd)
			if err != nil {
				return err
			}
			return app.ServeMCP(ctx, version, os.Stdin, os.Stdout)
		},
	}
}

func openInEditor(app *internal.App, path string) error {
	opener := editor.NewOpener(app.Config.Editor)
	if err := opener.OpenFile(path); err != nil {
		return cli.Exit(fmt.Sprintf("Failed to open %s: %v", path, err), 1)
	}
	return nil
}
