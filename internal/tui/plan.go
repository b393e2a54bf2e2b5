package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/robo/internal/model"
	"github.com/Makepad-fr/robo/internal/viewer"
)

const sidebarWidth = 30

// resetMsg asks the root model to start a new plan.
type resetMsg struct{}

// sectionItem adapts a plan section to bubbles/list.Item.
type sectionItem struct {
	index int
	title string
}

func (i sectionItem) Title() string       { return i.title }
func (i sectionItem) Description() string { return "" }
func (i sectionItem) FilterValue() string { return i.title }

// sectionDelegate renders one numbered section per line.
type sectionDelegate struct{}

func (d sectionDelegate) Height() int                               { return 1 }
func (d sectionDelegate) Spacing() int                              { return 0 }
func (d sectionDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d sectionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(sectionItem)
	label := fmt.Sprintf("%d. %s", it.index+1, it.title)
	if index == m.Index() {
		fmt.Fprintln(w, selectedStyle.Render("> "+label))
		return
	}
	fmt.Fprintln(w, "  "+mutedStyle.Render(label))
}

// planModel is the COMPLETE screen: section sidebar plus a rendered viewport.
type planModel struct {
	v        *viewer.Viewer
	sidebar  list.Model
	content  viewport.Model
	printing bool
	flash    string

	clip      viewer.Clipboard
	exportDir string
	now       func() time.Time
	width     int
	height    int
}

func newPlanModel(plan model.BusinessPlan, name string, clip viewer.Clipboard, exportDir string, now func() time.Time) planModel {
	items := make([]list.Item, 0, len(plan))
	for i, s := range plan {
		items = append(items, sectionItem{index: i, title: s.Title})
	}
	l := list.New(items, sectionDelegate{}, sidebarWidth, 10)
	l.Title = "Sections"
	l.Styles.Title = titleStyle
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)

	m := planModel{
		v:         viewer.New(plan, name),
		sidebar:   l,
		content:   viewport.New(60, 10),
		clip:      clip,
		exportDir: exportDir,
		now:       now,
		width:     sidebarWidth + 60,
		height:    10,
	}
	m.refresh()
	return m
}

func (m *planModel) setSize(w, h int) {
	m.width, m.height = w, h
	m.sidebar.SetSize(sidebarWidth, max(3, h))
	m.content.Width = max(20, w-sidebarWidth-3)
	m.content.Height = max(3, h)
	m.refresh()
}

// refresh re-renders the viewport from the active section or the print view.
func (m *planModel) refresh() {
	var md string
	if m.printing {
		md = viewer.PrintDocument(m.v.BusinessName(), m.v.Plan(), m.now())
	} else if sec, ok := m.v.ActiveSection(); ok {
		md = "# " + sec.Title + "\n\n" + sec.Content
	} else {
		md = "_The generated plan has no sections._"
	}
	out, _ := viewer.Render(md, m.content.Width)
	m.content.SetContent(out)
	m.content.GotoTop()
}

func (m *planModel) selectSection(i int) {
	if m.v.Select(i) {
		m.printing = false
		m.sidebar.Select(i)
		m.refresh()
	}
}

func (m planModel) Update(msg tea.Msg) (planModel, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd
	}
	switch {
	case key.Matches(k, keys.Up):
		m.selectSection(m.v.Active() - 1)
	case key.Matches(k, keys.Down):
		m.selectSection(m.v.Active() + 1)
	case key.Matches(k, keys.Copy):
		m.copySection()
	case key.Matches(k, keys.Markdown):
		m.exportMarkdown()
	case key.Matches(k, keys.Print):
		m.togglePrint()
	case key.Matches(k, keys.Reset):
		return m, func() tea.Msg { return resetMsg{} }
	default:
		if s := k.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			m.selectSection(int(s[0] - '1'))
			return m, nil
		}
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *planModel) copySection() {
	copied, err := m.v.Copy(m.clip)
	switch {
	case err != nil:
		m.flash = errorStyle.Render("Copy failed: " + err.Error())
	case copied:
		m.flash = successStyle.Render("✔ Copied to clipboard")
	}
}

func (m *planModel) exportMarkdown() {
	path, err := viewer.WriteMarkdown(m.exportDir, m.v.BusinessName(), m.v.Plan())
	if err != nil {
		m.flash = errorStyle.Render("Export failed: " + err.Error())
		return
	}
	m.flash = successStyle.Render("✔ Saved " + path)
}

func (m *planModel) togglePrint() {
	if m.printing {
		m.printing = false
		m.refresh()
		m.flash = ""
		return
	}
	m.printing = true
	m.refresh()
	path, err := viewer.WritePrintHTML(m.exportDir, m.v.BusinessName(), m.v.Plan(), m.now())
	if err != nil {
		m.flash = errorStyle.Render("Print export failed: " + err.Error())
		return
	}
	m.flash = successStyle.Render("✔ Print view saved to " + path + " (open it to print or save as PDF)")
}

func (m planModel) View() string {
	header := brandAccent.Render(m.v.BusinessName()) + mutedStyle.Render("  Strategic Business Plan")
	if m.printing {
		header += "  " + accentStyle.Render("[print view]")
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebarStyle.Render(m.sidebar.View()), " ", m.content.View())

	var b strings.Builder
	b.WriteString(header + "\n\n" + body + "\n")
	if m.flash != "" {
		b.WriteString(m.flash + "\n")
	}
	b.WriteString(helpLine(keys.Up, keys.Down, keys.Copy, keys.Markdown, keys.Print, keys.Reset, keys.History))
	return b.String()
}
