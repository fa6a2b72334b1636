package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine renders a text input as exactly one visual line of width w.
func renderInputLine(w int, inputView string, focused bool) string {
	if w < 10 {
		w = 10
	}

	// A newline (or overflow from cursor styling) would wrap and look like an inserted line.
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	bg := colorInputBg
	if focused {
		bg = colorFocusBg
	}
	line := lipgloss.PlaceHorizontal(
		w,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(bg),
	)
	if xansi.StringWidth(line) > w {
		// Terminate styling so it doesn't bleed into the next column.
		line = xansi.Cut(line, 0, w) + "\x1b[0m"
	}
	return line
}

func renderSubmitButton(label string, editing bool, focused bool) string {
	bg := colorAddBg
	if editing {
		bg = colorSaveBg
	}
	st := lipgloss.NewStyle().
		Padding(0, 3).
		Foreground(colorButtonFg).
		Background(bg)
	if focused {
		st = st.Bold(true).Underline(true)
	}
	return st.Render(label)
}
