package dailylog

import (
	"strings"
	"time"

	"github.com/starford/daily/internal/section"
)

// CheatSection is one block of a cheat sheet.
type CheatSection struct {
	Title   string   `json:"title"`
	Key     string   `json:"key"`
	Bullets []string `json:"bullets"`
}

// CheatSheet summarises the log for date for a standup: Done, Meetings,
// To Do, Blockers and Quick Notes, in that order, each optionally narrowed
// to bullets carrying one of tags. It fails with apperr.ErrNotFound when
// the log does not exist.
func (s *Service) CheatSheet(tags []string, date time.Time) ([]CheatSection, error) {
	content, err := s.Read(date)
	if err != nil {
		return nil, err
	}
	lines := section.Split(content)

	out := make([]CheatSection, 0, len(cheatOrder))
	for _, c := range cheatOrder {
		sec, _ := Lookup(c.key)
		bullets := section.ExtractBullets(lines, sec.Title)
		if len(tags) > 0 {
			bullets = section.FilterByTags(bullets, tags)
		}
		out = append(out, CheatSection{Title: c.title, Key: c.key, Bullets: bullets})
	}
	return out, nil
}

// FormatCheatPlain renders sections as plain text: a title line, one
// "- bullet" line per entry (or "(no entries)"), and a blank line between
// sections.
func FormatCheatPlain(sections []CheatSection) string {
	var lines []string
	for _, sec := range sections {
		lines = append(lines, sec.Title)
		if len(sec.Bullets) == 0 {
			lines = append(lines, "(no entries)")
		}
		for _, b := range sec.Bullets {
			lines = append(lines, section.BulletMarker+b)
		}
		lines = append(lines, "")
	}
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return strings.Join(lines, "\n")
}
