package dailylog

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/daily/internal/parser"
	"github.com/starford/daily/internal/section"
)

// SectionStatus reports how a canonical header was found in a log.
type SectionStatus struct {
	Key   string        `json:"key"`
	Title string        `json:"title"`
	Match section.Match `json:"match"`
	Line  int           `json:"line"` // 1-based, 0 when missing
}

// Report is the result of checking a daily log against its expected shape.
type Report struct {
	Path        string          `json:"path"`
	Frontmatter error           `json:"-"`
	Sections    []SectionStatus `json:"sections"`
}

// OK reports whether the frontmatter is valid and every header was found.
func (r *Report) OK() bool {
	if r.Frontmatter != nil {
		return false
	}
	for _, s := range r.Sections {
		if s.Match == section.NoMatch {
			return false
		}
	}
	return true
}

// Check inspects the log for date without modifying it. It fails with
// apperr.ErrNotFound when no log exists.
func (s *Service) Check(date time.Time) (*Report, error) {
	content, err := s.Read(date)
	if err != nil {
		return nil, err
	}

	r := &Report{Path: s.Path(date)}
	r.Frontmatter = validateMeta(parser.Parse([]byte(content)), date.Format(DateLayout))

	lines := section.Split(content)
	for _, sec := range Sections {
		idx, m := section.Locate(lines, sec.Title)
		r.Sections = append(r.Sections, SectionStatus{
			Key:   sec.Key,
			Title: sec.Title,
			Match: m,
			Line:  idx + 1,
		})
	}
	return r, nil
}

func validateMeta(res *parser.Result, date string) error {
	if !res.HasFrontmatter {
		return validation.NewError("validation_frontmatter_missing", "frontmatter is missing or not valid YAML")
	}
	meta := res.Meta
	return validation.ValidateStruct(&meta,
		validation.Field(&meta.Type, validation.Required, validation.In("daily")),
		validation.Field(&meta.Date, validation.Required, validation.In(date).Error("must match the file date "+date)),
	)
}
