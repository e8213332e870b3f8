// Package dailylog maps calendar dates to daily log files and exposes the
// operations the CLI and MCP tools are built on: inserting categorised
// bullets, reading sections back, building cheat sheets and listing logs.
//
// Every operation takes the date explicitly; callers decide what "today" is.
package dailylog

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/starford/daily/internal/apperr"
	"github.com/starford/daily/internal/section"
	"github.com/starford/daily/internal/storage"
)

// Service reads and writes daily logs through a storage.Provider.
type Service struct {
	store        storage.Provider
	skipWeekends func() bool
}

// Option configures a Service.
type Option func(*Service)

// WithSkipWeekends sets the source of the default used by
// (*Service).PreviousWorkday.
func WithSkipWeekends(fn func() bool) Option {
	return func(s *Service) {
		s.skipWeekends = fn
	}
}

// NewService creates a new daily log service.
func NewService(store storage.Provider, opts ...Option) *Service {
	s := &Service{
		store:        store,
		skipWeekends: func() bool { return true },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the directory holding the daily logs.
func (s *Service) Root() string {
	return s.store.Root()
}

// Path returns the absolute path of the log for date.
func (s *Service) Path(date time.Time) string {
	return filepath.Join(s.store.Root(), FileName(date))
}

// EnsureExists creates the log for date from the template unless a file is
// already there. An existing file is never touched.
func (s *Service) EnsureExists(date time.Time) (string, error) {
	name := FileName(date)
	ok, err := s.store.Exists(name)
	if err != nil {
		return "", err
	}
	if !ok {
		if err := s.store.Write(name, []byte(Template(date))); err != nil {
			return "", err
		}
	}
	return s.Path(date), nil
}

// Read returns the content of the log for date. It fails with
// apperr.ErrNotFound when no log exists.
func (s *Service) Read(date time.Time) (string, error) {
	name := FileName(date)
	data, err := s.store.Read(name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("no daily file exists for %s: %w", name, apperr.ErrNotFound)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write overwrites the log for date with content.
func (s *Service) Write(date time.Time, content string) (string, error) {
	if err := s.store.Write(FileName(date), []byte(content)); err != nil {
		return "", err
	}
	return s.Path(date), nil
}

// InsertBullet appends text, tagged with tags, to the section named by key
// in the log for date, creating the log first if needed. Nothing is
// created or written when key is invalid or text or a tag holds a line
// break.
func (s *Service) InsertBullet(key, text string, tags []string, date time.Time) (string, error) {
	sec, err := Lookup(key)
	if err != nil {
		return "", err
	}
	if err := singleLine(text, tags); err != nil {
		return "", err
	}
	if _, err := s.EnsureExists(date); err != nil {
		return "", err
	}
	content, err := s.Read(date)
	if err != nil {
		return "", err
	}
	updated, err := section.InsertContent(content, sec.Title, section.FormatWithTags(text, tags))
	if err != nil {
		return "", fmt.Errorf("%s: %w", FileName(date), err)
	}
	return s.Write(date, updated)
}

// singleLine rejects line breaks in text and tags.
func singleLine(text string, tags []string) error {
	if strings.ContainsAny(text, "\r\n") {
		return fmt.Errorf("bullet text must be a single line: %w", apperr.ErrInvalidText)
	}
	for _, tag := range tags {
		if strings.ContainsAny(tag, "\r\n") {
			return fmt.Errorf("tag %q must be a single line: %w", tag, apperr.ErrInvalidText)
		}
	}
	return nil
}

// Bullets returns the bullets of the section named by key in the log for date.
func (s *Service) Bullets(key string, date time.Time) ([]string, error) {
	sec, err := Lookup(key)
	if err != nil {
		return nil, err
	}
	content, err := s.Read(date)
	if err != nil {
		return nil, err
	}
	return section.ExtractContentBullets(content, sec.Title), nil
}

// FilteredBullets is Bullets narrowed to the bullets carrying any of tags.
func (s *Service) FilteredBullets(key string, tags []string, date time.Time) ([]string, error) {
	bullets, err := s.Bullets(key, date)
	if err != nil {
		return nil, err
	}
	return section.FilterByTags(bullets, tags), nil
}

// PreviousWorkday is the package function with the configured
// skip-weekends default.
func (s *Service) PreviousWorkday(ref time.Time) time.Time {
	return PreviousWorkday(ref, s.skipWeekends())
}

// PreviousWorkday returns the day before ref. With skipWeekends, Saturdays
// and Sundays are stepped over, so Saturday, Sunday and Monday all map to
// the preceding Friday.
func PreviousWorkday(ref time.Time, skipWeekends bool) time.Time {
	prev := ref.AddDate(0, 0, -1)
	if skipWeekends {
		for prev.Weekday() == time.Saturday || prev.Weekday() == time.Sunday {
			prev = prev.AddDate(0, 0, -1)
		}
	}
	return prev
}
