package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/starford/daily/internal/dailylog"
	"github.com/starford/daily/internal/section"
)

// Printer writes styled output to a terminal. Colors are dropped when the
// writer is not a TTY.
type Printer struct {
	out    io.Writer
	styles Styles
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{out: w, styles: newStyles(lipgloss.NewRenderer(w))}
}

// Banner formats a date as "── Monday, February 02 ──".
func Banner(date time.Time) string {
	return "── " + date.Format("Monday, January 02") + " ──"
}

// SplitTags separates the bullet text from its trailing tag list.
func SplitTags(bullet string) (string, []string) {
	idx := strings.LastIndex(bullet, section.TagPrefix)
	if idx < 0 {
		return bullet, nil
	}
	return strings.TrimSpace(bullet[:idx]), section.ParseTags(bullet)
}

// Bullet renders a bullet with its tags as "#tag" tokens.
func (p *Printer) Bullet(bullet string) string {
	text, tags := SplitTags(bullet)
	if len(tags) == 0 {
		return text
	}
	tokens := make([]string, len(tags))
	for i, tag := range tags {
		tokens[i] = p.styles.Tag.Render("#" + tag)
	}
	return text + " " + strings.Join(tokens, " ")
}

// CheatSheet prints the styled cheat sheet for date.
func (p *Printer) CheatSheet(date time.Time, sections []dailylog.CheatSection) error {
	var b strings.Builder
	b.WriteString(p.styles.Banner.Render(Banner(date)))
	b.WriteString("\n")

	for _, sec := range sections {
		b.WriteString("\n")
		cs := cheatStyles[sec.Key]
		title := sec.Title
		if cs.icon != "" {
			title = cs.icon + " " + title
		}
		if style, ok := p.styles.section[sec.Key]; ok {
			title = style.Render(title)
		}
		b.WriteString(title + "\n")

		if len(sec.Bullets) == 0 {
			b.WriteString("  " + p.styles.Empty.Render("(no entries)") + "\n")
			continue
		}
		for _, bullet := range sec.Bullets {
			b.WriteString("  • " + p.Bullet(bullet) + "\n")
		}
	}

	_, err := io.WriteString(p.out, b.String())
	return err
}

// Added confirms a new bullet: "✓ Added to Done: text #tags: a,b".
func (p *Printer) Added(label, text string, tags []string) error {
	_, err := fmt.Fprintf(p.out, "%s Added to %s: %s\n",
		p.styles.Check.Render("✓"), label, section.FormatWithTags(text, tags))
	return err
}

// Check prints a dailylog.Report, one line per section.
func (p *Printer) Check(r *dailylog.Report) error {
	var b strings.Builder
	b.WriteString(r.Path + "\n")

	if r.Frontmatter != nil {
		b.WriteString(p.styles.Fail.Render("✗") + " frontmatter: " + r.Frontmatter.Error() + "\n")
	} else {
		b.WriteString(p.styles.Check.Render("✓") + " frontmatter\n")
	}

	for _, s := range r.Sections {
		switch s.Match {
		case section.ExactMatch:
			fmt.Fprintf(&b, "%s %s %s\n", p.styles.Check.Render("✓"), s.Title, p.styles.Muted.Render(fmt.Sprintf("line %d", s.Line)))
		case section.FuzzyMatch:
			fmt.Fprintf(&b, "%s %s %s\n", p.styles.Warn.Render("~"), s.Title, p.styles.Muted.Render(fmt.Sprintf("fuzzy match on line %d", s.Line)))
		default:
			fmt.Fprintf(&b, "%s %s %s\n", p.styles.Fail.Render("✗"), s.Title, p.styles.Muted.Render("missing"))
		}
	}

	_, err := io.WriteString(p.out, b.String())
	return err
}
