package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/robo/internal/model"
)

type (
	loadHistoryMsg   struct{ id string }
	deleteHistoryMsg struct{ id string }
	closeHistoryMsg  struct{}
)

// historyItem adapts a saved plan to bubbles/list.Item.
type historyItem struct {
	saved model.SavedPlan
}

func (i historyItem) Title() string { return i.saved.BusinessName }
func (i historyItem) Description() string {
	t := i.saved.CreatedTime()
	return t.Format("Jan 2, 2006") + " • " + t.Format("15:04")
}
func (i historyItem) FilterValue() string { return i.saved.BusinessName }

// historyModel is the drawer listing saved plans, newest first.
type historyModel struct {
	list list.Model
}

func newHistoryModel(saved []model.SavedPlan, w, h int) historyModel {
	l := list.New(historyItems(saved), list.NewDefaultDelegate(), w, h)
	l.Title = "Saved Plans"
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName("plan", "plans")
	l.SetFilteringEnabled(true)
	l.FilterInput.Prompt = "/ "
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{keys.Load, keys.Delete, keys.Close} }
	// the root model owns quitting; q is an ordinary key inside the drawer
	l.DisableQuitKeybindings()
	return historyModel{list: l}
}

func historyItems(saved []model.SavedPlan) []list.Item {
	items := make([]list.Item, 0, len(saved))
	for _, s := range saved {
		items = append(items, historyItem{saved: s})
	}
	return items
}

func (m *historyModel) setItems(saved []model.SavedPlan) {
	m.list.SetItems(historyItems(saved))
}

func (m *historyModel) setSize(w, h int) { m.list.SetSize(w, h) }

func (m historyModel) selected() (model.SavedPlan, bool) {
	it, ok := m.list.SelectedItem().(historyItem)
	if !ok {
		return model.SavedPlan{}, false
	}
	return it.saved, true
}

func (m historyModel) Update(msg tea.Msg) (historyModel, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(k, keys.Close) && m.list.FilterState() == list.Unfiltered:
			return m, func() tea.Msg { return closeHistoryMsg{} }
		case key.Matches(k, keys.Load):
			if s, ok := m.selected(); ok {
				return m, func() tea.Msg { return loadHistoryMsg{id: s.ID} }
			}
			return m, nil
		case key.Matches(k, keys.Delete):
			if s, ok := m.selected(); ok {
				return m, func() tea.Msg { return deleteHistoryMsg{id: s.ID} }
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m historyModel) View() string {
	if len(m.list.Items()) == 0 {
		return titleStyle.Render("Saved Plans") + "\n\n" +
			mutedStyle.Render("No saved plans yet. Generate one to see it here.") + "\n\n" +
			helpLine(keys.Close)
	}
	return m.list.View()
}
