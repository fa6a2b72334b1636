package tui

import (
	"strconv"
	"strings"

	"postboard/internal/loader"

	"github.com/charmbracelet/lipgloss"
)

const (
	// Header, form row, results heading and the blank lines between them.
	chromeTop = 6
	// Flash line + footer.
	chromeBottom = 3

	previewMinWidth = 100
	buttonGap       = 1
)

func itoa(n int) string { return strconv.Itoa(n) }

func (m *appModel) resize() {
	listW, _ := m.splitWidths()
	h := m.height - chromeTop - chromeBottom
	if h < 5 {
		h = 5
	}
	m.postsList.SetSize(listW, h)

	inputW := m.inputWidth()
	m.titleInput.Width = inputW - 3
	m.bodyInput.Width = inputW - 3
}

// splitWidths returns the card list width and the preview width (0 when hidden).
func (m appModel) splitWidths() (int, int) {
	w := m.width
	if w < 40 {
		w = 40
	}
	if w < previewMinWidth {
		return w, 0
	}
	listW := w * 55 / 100
	return listW, w - listW - 2
}

func (m appModel) inputWidth() int {
	w := m.width
	if w < 40 {
		w = 40
	}
	btnW := lipgloss.Width(renderSubmitButton("Save Edit", true, false))
	iw := (w - btnW - 2*buttonGap) / 2
	if iw < 10 {
		iw = 10
	}
	return iw
}

func (m appModel) View() string {
	switch m.status {
	case loader.StatusLoading:
		return m.spinner.View() + " Loading..."
	case loader.StatusError:
		return lipgloss.JoinVertical(lipgloss.Left,
			"An error has occurred: "+m.loadErr,
			"",
			styleMuted().Render("q: quit"),
		)
	}

	w := m.width
	if w < 40 {
		w = 40
	}
	center := lipgloss.NewStyle().Width(w).Align(lipgloss.Center)

	header := center.Bold(true).Render(m.board.Header())
	form := m.viewForm()
	results := center.Bold(true).Render(m.board.ResultsHeading())

	body := m.postsList.View()
	if len(m.postsList.Items()) == 0 {
		body = styleMuted().Render("No posts.")
	}
	if listW, previewW := m.splitWidths(); previewW > 0 {
		left := lipgloss.NewStyle().Width(listW).Render(body)
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", m.viewPreview(previewW))
	}

	footer := styleMuted().Render(m.footerHelp())

	return strings.Join([]string{
		header,
		"",
		form,
		"",
		results,
		body,
		m.flash,
		footer,
	}, "\n")
}

func (m appModel) viewForm() string {
	iw := m.inputWidth()
	_, editing := m.board.Editing()
	title := renderInputLine(iw, m.titleInput.View(), m.focus == focusTitle)
	body := renderInputLine(iw, m.bodyInput.View(), m.focus == focusBody)
	btn := renderSubmitButton(m.board.SubmitLabel(), editing, m.focus == focusSubmit)
	gap := strings.Repeat(" ", buttonGap)
	return lipgloss.JoinHorizontal(lipgloss.Top, title, gap, body, gap, btn)
}

func (m appModel) viewPreview(w int) string {
	p, ok := selectedPost(m.postsList)
	if !ok {
		return lipgloss.NewStyle().Width(w).Render(styleMuted().Render("No post selected."))
	}
	title := lipgloss.NewStyle().Bold(true).Width(w).Render("#" + itoa(p.ID) + " " + p.Title)
	md := renderMarkdown(p.Body, w)
	if md == "" {
		md = styleMuted().Render("(no body)")
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, "", md)
}

func (m appModel) footerHelp() string {
	switch m.focus {
	case focusList:
		return "e: edit  d: delete  y: copy  a: new  tab: focus  esc: cancel edit  q: quit"
	default:
		return "enter: " + strings.ToLower(m.board.SubmitLabel()) + "  tab: focus  esc: cancel/back  ctrl+c: quit"
	}
}
