package viewer

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Render formats Markdown for a terminal of the given width. If glamour
// fails the raw text is returned with the error.
func Render(input string, width int) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithWordWrap(width),
		glamour.WithStandardStyle("dark"),
	)
	if err != nil {
		return input, err
	}
	out, err := renderer.Render(input)
	if err != nil {
		return input, err
	}
	return out, nil
}
