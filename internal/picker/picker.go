// Package picker is an interactive, filterable chooser over daily logs.
package picker

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Item is one selectable daily log.
type Item struct {
	Path  string
	Label string // e.g. "2026-01-26 (Monday) - tags: aws"
}

func (i Item) Title() string       { return i.Label }
func (i Item) Description() string { return i.Path }
func (i Item) FilterValue() string { return i.Label }

type keymap struct {
	choose key.Binding
	back   key.Binding
	quit   key.Binding
}

var keys = keymap{
	choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter/quit")),
	quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the bubbletea model behind Pick.
type Model struct {
	list   list.Model
	chosen *Item
}

// NewModel builds a picker over items with filter pre-applied.
func NewModel(items []Item, title, filter string) Model {
	li := make([]list.Item, len(items))
	for i, it := range items {
		li[i] = it
	}

	lm := list.New(li, list.NewDefaultDelegate(), 80, 20)
	lm.Title = title
	lm.SetShowStatusBar(false)
	lm.SetFilteringEnabled(true)
	lm.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{keys.choose, keys.quit} }
	hs := lm.Styles.HelpStyle
	lm.Styles.HelpStyle = hs.Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#B0B7C3"})
	if filter != "" {
		lm.SetFilterText(filter)
	}
	return Model{list: lm}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		// While typing a filter, keys belong to the filter input.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, keys.choose):
			if it, ok := m.list.SelectedItem().(Item); ok {
				m.chosen = &it
			}
			return m, tea.Quit
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.back) && m.list.FilterState() == list.Unfiltered:
			return m, tea.Quit
		}
		// esc with a filter applied falls through so the list clears it.
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

// Chosen returns the selected item, if any.
func (m Model) Chosen() (Item, bool) {
	if m.chosen == nil {
		return Item{}, false
	}
	return *m.chosen, true
}

// Pick runs the picker until the user chooses an item or quits. The
// second result is false when nothing was chosen.
func Pick(items []Item, title, filter string, opts ...tea.ProgramOption) (Item, bool, error) {
	final, err := tea.NewProgram(NewModel(items, title, filter), opts...).Run()
	if err != nil {
		return Item{}, false, err
	}
	m, ok := final.(Model)
	if !ok {
		return Item{}, false, nil
	}
	it, chosen := m.Chosen()
	return it, chosen, nil
}
