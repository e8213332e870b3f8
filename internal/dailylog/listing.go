package dailylog

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/starford/daily/internal/section"
)

// Entry identifies one daily log found on disk.
type Entry struct {
	Path string    `json:"path"`
	Date time.Time `json:"date"`
}

// List returns every daily log under the root, newest first. With tags,
// only logs holding at least one bullet (in any section) that carries one
// of the tags are kept. Files whose name does not parse as a date, or that
// cannot be read while filtering, are skipped.
func (s *Service) List(tags []string) ([]Entry, error) {
	names, err := s.store.Glob("*" + FileSuffix)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		date, err := ParseFileName(name)
		if err != nil {
			continue
		}
		if len(tags) > 0 {
			data, err := s.store.Read(name)
			if err != nil {
				continue
			}
			if !hasTaggedBullet(string(data), tags) {
				continue
			}
		}
		entries = append(entries, Entry{Path: filepath.Join(s.store.Root(), name), Date: date})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}

func hasTaggedBullet(content string, tags []string) bool {
	lines := section.Split(content)
	for _, sec := range Sections {
		if len(section.FilterByTags(section.ExtractBullets(lines, sec.Title), tags)) > 0 {
			return true
		}
	}
	return false
}

// CollectTags returns every tag used in the log at path, as written. A log
// that cannot be read yields an empty set.
func (s *Service) CollectTags(path string) map[string]struct{} {
	tags := map[string]struct{}{}

	name, err := filepath.Rel(s.store.Root(), path)
	if err != nil {
		return tags
	}
	data, err := s.store.Read(name)
	if err != nil {
		return tags
	}

	lines := section.Split(string(data))
	for _, sec := range Sections {
		for _, bullet := range section.ExtractBullets(lines, sec.Title) {
			for _, tag := range section.ParseTags(bullet) {
				tags[tag] = struct{}{}
			}
		}
	}
	return tags
}

// Describe renders a listing line such as
// "2026-01-26 (Monday) - tags: aws,cicd".
func (s *Service) Describe(path string, date time.Time) string {
	base := date.Format(DateLayout) + " (" + date.Weekday().String() + ")"

	set := s.CollectTags(path)
	if len(set) == 0 {
		return base
	}
	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return base + " - tags: " + strings.Join(tags, ",")
}
