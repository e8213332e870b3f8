// Package render prints daily log output for a terminal.
package render

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primary = lipgloss.Color("#7C3AED") // Purple
	green   = lipgloss.Color("#10B981")
	muted   = lipgloss.Color("#6B7280")
	amber   = lipgloss.Color("#F59E0B")
	red     = lipgloss.Color("#EF4444")
	blue    = lipgloss.Color("#60A5FA")
	pink    = lipgloss.Color("#EC4899")
)

// sectionStyle decorates one cheat sheet block.
type sectionStyle struct {
	icon  string
	color lipgloss.Color
}

var cheatStyles = map[string]sectionStyle{
	"did":     {icon: "✅", color: green},
	"meeting": {icon: "🗓", color: blue},
	"plan":    {icon: "▶️", color: primary},
	"block":   {icon: "🚧", color: red},
	"notes":   {icon: "🧠", color: pink},
}

// Styles holds the lipgloss styles bound to one renderer.
type Styles struct {
	Banner  lipgloss.Style
	Empty   lipgloss.Style
	Tag     lipgloss.Style
	Check   lipgloss.Style
	Warn    lipgloss.Style
	Fail    lipgloss.Style
	Muted   lipgloss.Style
	section map[string]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) Styles {
	s := Styles{
		Banner:  r.NewStyle().Bold(true).Foreground(primary),
		Empty:   r.NewStyle().Foreground(muted).Italic(true),
		Tag:     r.NewStyle().Foreground(amber),
		Check:   r.NewStyle().Foreground(green).Bold(true),
		Warn:    r.NewStyle().Foreground(amber).Bold(true),
		Fail:    r.NewStyle().Foreground(red).Bold(true),
		Muted:   r.NewStyle().Foreground(muted),
		section: make(map[string]lipgloss.Style, len(cheatStyles)),
	}
	for key, cs := range cheatStyles {
		s.section[key] = r.NewStyle().Bold(true).Foreground(cs.color)
	}
	return s
}
