package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Warn, Error string
	Bullet, SymOK, SymFail                     string
	CornerTL, CornerTR, CornerBL, CornerBR     string
	H, V                                       string
}

var current = classic()

// SetTheme selects classic (default), neon or mono.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		disableColor = false
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Warn: "\033[93m", Error: fgRed,
			Bullet: "◆", SymOK: symCheck, SymFail: symCross,
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
		}
	case "mono":
		disableColor = true
		current = Theme{
			Bullet: "-", SymOK: "ok", SymFail: "error:",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
		}
	default:
		disableColor = false
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Title: bold, Muted: fgGray, Accent: fgCyan,
		Success: fgGreen, Warn: fgYellow, Error: fgRed,
		Bullet: "•", SymOK: symCheck, SymFail: symCross,
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
	}
}

// Current is the active theme.
func Current() Theme { return current }
