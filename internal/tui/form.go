package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/robo/internal/form"
	"github.com/Makepad-fr/robo/internal/model"
)

// submitMsg is emitted once per submit key press on a complete form.
type submitMsg struct {
	data model.BusinessInput
}

// fieldInput wraps either a single-line or a multi-line editor.
type fieldInput struct {
	field form.Field
	line  textinput.Model
	area  textarea.Model
}

func newFieldInput(f form.Field) fieldInput {
	in := fieldInput{field: f}
	if f.Multiline {
		ta := textarea.New()
		ta.Placeholder = f.Placeholder
		ta.ShowLineNumbers = false
		ta.SetHeight(3)
		ta.CharLimit = 2000
		in.area = ta
		return in
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = f.Placeholder
	ti.CharLimit = 200
	in.line = ti
	return in
}

func (f *fieldInput) Value() string {
	if f.field.Multiline {
		return f.area.Value()
	}
	return f.line.Value()
}

func (f *fieldInput) SetValue(s string) {
	if f.field.Multiline {
		f.area.SetValue(s)
		return
	}
	f.line.SetValue(s)
	f.line.CursorEnd()
}

func (f *fieldInput) Focus() tea.Cmd {
	if f.field.Multiline {
		return f.area.Focus()
	}
	return f.line.Focus()
}

func (f *fieldInput) Blur() {
	if f.field.Multiline {
		f.area.Blur()
		return
	}
	f.line.Blur()
}

func (f *fieldInput) SetWidth(w int) {
	if f.field.Multiline {
		f.area.SetWidth(w)
		return
	}
	f.line.Width = w
}

func (f *fieldInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.field.Multiline {
		f.area, cmd = f.area.Update(msg)
	} else {
		f.line, cmd = f.line.Update(msg)
	}
	return cmd
}

func (f *fieldInput) View() string {
	if f.field.Multiline {
		return f.area.View()
	}
	return f.line.View()
}

// formModel is the INPUT screen.
type formModel struct {
	inputs  []fieldInput
	focus   int
	hint    string
	src     form.Source
	offset  int
	visible int
}

func newFormModel(src form.Source) formModel {
	m := formModel{src: src, visible: len(form.Fields)}
	for _, f := range form.Fields {
		m.inputs = append(m.inputs, newFieldInput(f))
	}
	m.inputs[0].Focus()
	return m
}

// values returns what the user typed, untrimmed.
func (m formModel) values() model.BusinessInput {
	var in model.BusinessInput
	for i := range m.inputs {
		*m.inputs[i].field.Ptr(&in) = m.inputs[i].Value()
	}
	return in
}

func (m *formModel) setValues(in model.BusinessInput) {
	for i := range m.inputs {
		m.inputs[i].SetValue(m.inputs[i].field.Value(in))
	}
}

func (m *formModel) setWidth(w int) {
	if w < 20 {
		w = 20
	}
	for i := range m.inputs {
		m.inputs[i].SetWidth(w)
	}
}

// setHeight limits how many fields are drawn at once.
func (m *formModel) setHeight(h int) {
	// one line label, one for single-line inputs, three plus the label for text areas
	m.visible = max(1, h/5)
	m.scrollToFocus()
}

func (m *formModel) scrollToFocus() {
	if m.focus < m.offset {
		m.offset = m.focus
	}
	if m.focus >= m.offset+m.visible {
		m.offset = m.focus - m.visible + 1
	}
}

func (m *formModel) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	n := len(m.inputs)
	m.focus = (m.focus + delta + n) % n
	m.scrollToFocus()
	return m.inputs[m.focus].Focus()
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Submit):
			data := m.values()
			if missing := form.Missing(data); len(missing) > 0 {
				m.hint = "Please fill in: " + strings.Join(missing, ", ")
				return m, nil
			}
			m.hint = ""
			return m, func() tea.Msg { return submitMsg{data: data} }
		case key.Matches(k, keys.Inspire):
			m.setValues(form.Inspire(m.src))
			m.hint = ""
			return m, nil
		case key.Matches(k, keys.Next):
			return m, m.moveFocus(1)
		case key.Matches(k, keys.Prev):
			return m, m.moveFocus(-1)
		}
	}
	cmd := m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Define Your Vision") + "\n")
	b.WriteString(mutedStyle.Render("Tell us about your business. Our AI will architect a comprehensive strategy for you.") + "\n\n")

	end := min(len(m.inputs), m.offset+m.visible)
	for i := m.offset; i < end; i++ {
		in := m.inputs[i]
		label := in.field.Label
		if in.field.Required {
			label += " *"
		}
		if i == m.focus {
			b.WriteString(focusedLabel.Render(label) + "\n")
		} else {
			b.WriteString(labelStyle.Render(label) + "\n")
		}
		b.WriteString(in.View() + "\n")
	}
	if end < len(m.inputs) {
		b.WriteString(mutedStyle.Render("  ↓ more fields") + "\n")
	}
	if m.hint != "" {
		b.WriteString("\n" + errorStyle.Render(m.hint) + "\n")
	}
	b.WriteString("\n" + helpLine(keys.Next, keys.Prev, keys.Inspire, keys.Submit, keys.History, keys.Quit))
	return b.String()
}
