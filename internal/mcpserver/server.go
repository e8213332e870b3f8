// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes daily log tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/daily/internal/apperr"
	"github.com/starford/daily/internal/dailylog"
	"github.com/starford/daily/internal/section"
)

// FormatURI identifies the daily log format resource.
const FormatURI = "daily://format"

// Server wraps the MCP server with daily log tools.
type Server struct {
	mcp *server.MCPServer
	svc *dailylog.Service
	now func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// New creates a new MCP server with all daily log tools registered.
func New(svc *dailylog.Service, version string, opts ...Option) *Server {
	s := &Server{svc: svc, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	s.mcp = server.NewMCPServer(
		"daily",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("log_entry",
		mcp.WithDescription("Append a bullet to a section of a daily log, creating the log from "+
			"the template if needed. Read the daily://format resource for the file layout."),
		mcp.WithString("section", mcp.Required(), mcp.Enum(dailylog.Keys()...),
			mcp.Description("Section key: did, plan, block, meeting or notes")),
		mcp.WithString("text", mcp.Required(), mcp.Description("Bullet text")),
		mcp.WithString("tags", mcp.Description("Optional comma-separated tags (e.g. aws,cicd)")),
		mcp.WithString("date", mcp.Description("Optional date YYYY-MM-DD (default today)")),
	), s.logEntry)

	s.mcp.AddTool(mcp.NewTool("cheat_sheet",
		mcp.WithDescription("Standup summary of a daily log: Done, Meetings, To Do, Blockers, Quick Notes. "+
			"Defaults to the previous workday."),
		mcp.WithString("tags", mcp.Description("Optional comma-separated tags to filter bullets")),
		mcp.WithString("date", mcp.Description("Optional date YYYY-MM-DD; overrides today")),
		mcp.WithBoolean("today", mcp.Description("Summarise today's log instead of the previous workday")),
	), s.cheatSheet)

	s.mcp.AddTool(mcp.NewTool("list_dailies",
		mcp.WithDescription("List daily logs newest first, one per line with weekday and tags."),
		mcp.WithString("tags", mcp.Description("Optional comma-separated tags; keeps logs with a matching bullet")),
	), s.listDailies)

	s.mcp.AddTool(mcp.NewTool("read_daily",
		mcp.WithDescription("Read the full Markdown content of a daily log."),
		mcp.WithString("date", mcp.Description("Optional date YYYY-MM-DD (default today)")),
	), s.readDaily)

	s.mcp.AddTool(mcp.NewTool("previous_workday",
		mcp.WithDescription("Return the workday before a date."),
		mcp.WithString("date", mcp.Description("Optional reference date YYYY-MM-DD (default today)")),
		mcp.WithBoolean("skip_weekends", mcp.Description("Step over Saturdays and Sundays (default from config)")),
	), s.previousWorkday)

	s.mcp.AddResource(
		mcp.NewResource(FormatURI, "Daily Log Format",
			mcp.WithResourceDescription("Layout of a daily log file: frontmatter, sections, bullets and tags."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readFormatResource,
	)

	return s
}

// Serve runs the MCP server over in/out until ctx is cancelled or in is
// exhausted.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer, errLog *log.Logger) error {
	stdio := server.NewStdioServer(s.mcp)
	if errLog != nil {
		stdio.SetErrorLogger(errLog)
	}
	err := stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// date reads the optional "date" argument, falling back to today.
func (s *Server) date(req mcp.CallToolRequest) (time.Time, bool, error) {
	raw := strings.TrimSpace(req.GetString("date", ""))
	if raw == "" {
		return s.today(), false, nil
	}
	d, err := dailylog.ParseDate(raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid date %q: use YYYY-MM-DD", raw)
	}
	return d, true, nil
}

func (s *Server) logEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("section")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return mcp.NewToolResultError("text must not be empty"), nil
	}
	date, _, err := s.date(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sec, err := dailylog.Lookup(key)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tags := section.ParseTagList(req.GetString("tags", ""))
	path, err := s.svc.InsertBullet(key, text, tags, date)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Added to %s: %s\n%s",
		sec.Label, section.FormatWithTags(text, tags), path)), nil
}

func (s *Server) cheatSheet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, explicit, err := s.date(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !explicit && !req.GetBool("today", false) {
		date = s.svc.PreviousWorkday(date)
	}

	sections, err := s.svc.CheatSheet(section.ParseTagList(req.GetString("tags", "")), date)
	if errors.Is(err, apperr.ErrNotFound) {
		return mcp.NewToolResultError("no daily log for " + date.Format(dailylog.DateLayout)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	header := fmt.Sprintf("%s (%s)\n\n", date.Format(dailylog.DateLayout), date.Weekday())
	return mcp.NewToolResultText(header + dailylog.FormatCheatPlain(sections)), nil
}

func (s *Server) listDailies(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries, err := s.svc.List(section.ParseTagList(req.GetString("tags", "")))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(entries) == 0 {
		return mcp.NewToolResultText("no daily logs found"), nil
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, s.svc.Describe(e.Path, e.Date))
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) readDaily(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, _, err := s.date(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := s.svc.Read(date)
	if errors.Is(err, apperr.ErrNotFound) {
		return mcp.NewToolResultError("no daily log for " + date.Format(dailylog.DateLayout)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(content), nil
}

func (s *Server) previousWorkday(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, _, err := s.date(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	prev := s.svc.PreviousWorkday(ref)
	if args := req.GetArguments(); args != nil {
		if _, ok := args["skip_weekends"]; ok {
			prev = dailylog.PreviousWorkday(ref, req.GetBool("skip_weekends", true))
		}
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s (%s)", prev.Format(dailylog.DateLayout), prev.Weekday())), nil
}

func (s *Server) readFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      FormatURI,
			MIMEType: "text/markdown",
			Text:     FormatContract,
		},
	}, nil
}
