package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Submit   key.Binding
	Inspire  key.Binding
	History  key.Binding
	Up       key.Binding
	Down     key.Binding
	Copy     key.Binding
	Markdown key.Binding
	Print    key.Binding
	Reset    key.Binding
	Retry    key.Binding
	Load     key.Binding
	Delete   key.Binding
	Close    key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	Submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "generate plan")),
	Inspire:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "inspire me")),
	History:  key.NewBinding(key.WithKeys("ctrl+o", "h"), key.WithHelp("h/ctrl+o", "history")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev section")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next section")),
	Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy section")),
	Markdown: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "export .md")),
	Print:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "print view / pdf")),
	Reset:    key.NewBinding(key.WithKeys("r", "n"), key.WithHelp("r", "new plan")),
	Retry:    key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("enter", "try again")),
	Load:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Delete:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
	Close:    key.NewBinding(key.WithKeys("esc", "h"), key.WithHelp("esc", "close")),
}

func helpLine(bs ...key.Binding) string {
	s := ""
	for i, b := range bs {
		if i > 0 {
			s += "  •  "
		}
		h := b.Help()
		s += h.Key + " " + h.Desc
	}
	return helpStyle.Render(s)
}
