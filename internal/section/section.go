// Package section edits the "## "-headed regions of a daily log in memory.
//
// A buffer is the document split on "\n". A section runs from its header
// line up to, but not including, the next line that starts with "##" (or
// the end of the buffer). Headers are found by exact match first and, when
// that fails, by the prefix made of the title's first three tokens, so a
// header whose trailing text drifted ("## 🧠 Quick Notesa") still resolves.
package section

import (
	"fmt"
	"strings"

	"github.com/starford/daily/internal/apperr"
)

const (
	// HeaderMarker starts every section header line.
	HeaderMarker = "##"
	// BulletMarker prefixes every bullet line.
	BulletMarker = "- "
)

// Lines is a document split into lines. Joining it back with "\n"
// reproduces the original content byte for byte.
type Lines []string

// Split breaks content into Lines.
func Split(content string) Lines {
	return Lines(strings.Split(content, "\n"))
}

// String joins the lines back into a document.
func (l Lines) String() string {
	return strings.Join(l, "\n")
}

// Match tells how a header line was found.
type Match int

const (
	// NoMatch means the header is absent.
	NoMatch Match = iota
	// ExactMatch means a line equals the title after trimming.
	ExactMatch
	// FuzzyMatch means a line shares the title's first three fields.
	FuzzyMatch
)

func (m Match) String() string {
	switch m {
	case ExactMatch:
		return "exact"
	case FuzzyMatch:
		return "fuzzy"
	default:
		return "missing"
	}
}

// MarshalText encodes m as its String form.
func (m Match) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// LocateHeader returns the index of the line holding title. The second
// result is false when neither the exact nor the fuzzy pass finds it.
func LocateHeader(lines Lines, title string) (int, bool) {
	idx, m := Locate(lines, title)
	return idx, m != NoMatch
}

// Locate is LocateHeader that also reports which pass matched.
func Locate(lines Lines, title string) (int, Match) {
	for i, line := range lines {
		if strings.TrimSpace(line) == title {
			return i, ExactMatch
		}
	}

	prefix, ok := fuzzyPrefix(title)
	if !ok {
		return -1, NoMatch
	}
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), prefix) {
			return i, FuzzyMatch
		}
	}
	return -1, NoMatch
}

// fuzzyPrefix reduces "## <glyph> <word> ..." to "## <glyph> <word>".
func fuzzyPrefix(title string) (string, bool) {
	if !strings.HasPrefix(title, HeaderMarker+" ") || len(title) <= len(HeaderMarker)+1 {
		return "", false
	}
	parts := strings.Fields(title)
	if len(parts) < 3 {
		return "", false
	}
	return strings.Join(parts[:3], " "), true
}

// LocateNextHeader returns the index of the first header line after
// after, or len(lines) when the section runs to the end of the buffer.
func LocateNextHeader(lines Lines, after int) int {
	for i := after + 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), HeaderMarker) {
			return i
		}
	}
	return len(lines)
}

// Insert returns a copy of lines with "- text" appended to the section
// titled title, directly after the section's last non-blank line. The
// input buffer is left untouched. text must not contain a line break.
func Insert(lines Lines, title, text string) (Lines, error) {
	if strings.ContainsAny(text, "\r\n") {
		return nil, fmt.Errorf("bullet must be a single line: %w", apperr.ErrInvalidText)
	}
	header, ok := LocateHeader(lines, title)
	if !ok {
		return nil, fmt.Errorf("section %q not found: %w", title, apperr.ErrMalformedDocument)
	}
	next := LocateNextHeader(lines, header)

	pos := header + 1
	for i := next - 1; i > header; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			pos = i + 1
			break
		}
	}

	out := make(Lines, 0, len(lines)+1)
	out = append(out, lines[:pos]...)
	out = append(out, BulletMarker+text)
	out = append(out, lines[pos:]...)
	return out, nil
}

// ExtractBullets returns the text of every bullet in the section titled
// title, in document order and without the "- " marker. A missing section
// yields an empty result.
func ExtractBullets(lines Lines, title string) []string {
	header, ok := LocateHeader(lines, title)
	if !ok {
		return []string{}
	}
	next := LocateNextHeader(lines, header)

	bullets := []string{}
	for _, line := range lines[header+1 : next] {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, BulletMarker) {
			bullets = append(bullets, trimmed[len(BulletMarker):])
		}
	}
	return bullets
}

// InsertContent is Insert over a whole document string.
func InsertContent(content, title, text string) (string, error) {
	lines, err := Insert(Split(content), title, text)
	if err != nil {
		return "", err
	}
	return lines.String(), nil
}

// ExtractContentBullets is ExtractBullets over a whole document string.
func ExtractContentBullets(content, title string) []string {
	return ExtractBullets(Split(content), title)
}
