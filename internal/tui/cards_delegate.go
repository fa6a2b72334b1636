package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// postCardDelegate renders each post as a bordered card: title, body, actions.
type postCardDelegate struct {
	normalCard   lipgloss.Style
	selectedCard lipgloss.Style

	titleStyle  lipgloss.Style
	bodyStyle   lipgloss.Style
	actionStyle lipgloss.Style
	deleteStyle lipgloss.Style
	markerStyle lipgloss.Style
}

func newPostCardDelegate() postCardDelegate {
	base := lipgloss.NewStyle().
		Padding(0, 1, 0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Foreground(colorSurfaceFg)

	return postCardDelegate{
		normalCard:   base,
		selectedCard: base.BorderForeground(colorSelectedBorder),
		titleStyle:   lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg),
		bodyStyle:    lipgloss.NewStyle().Foreground(colorCardMeta),
		actionStyle:  styleMuted(),
		deleteStyle:  lipgloss.NewStyle().Foreground(colorDangerFg),
		markerStyle:  lipgloss.NewStyle().Foreground(colorSaveBg).Bold(true),
	}
}

func (d postCardDelegate) Height() int  { return 5 } // 3 inner lines + border top/bottom
func (d postCardDelegate) Spacing() int { return 0 }
func (d postCardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d postCardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	totalW := m.Width()
	if totalW < 12 {
		fmt.Fprint(w, "")
		return
	}

	card := d.normalCard
	if index == m.Index() {
		card = d.selectedCard
	}
	innerW := totalW - card.GetHorizontalFrameSize()
	if innerW < 1 {
		innerW = 1
	}
	card = card.Width(innerW)

	var lines []string
	switch it := item.(type) {
	case postItem:
		title := d.titleStyle.Render(truncateToWidth(it.Title(), innerW))
		if it.editing {
			title = truncateToWidth(it.Title(), innerW-len(" (editing)")) + d.markerStyle.Render(" (editing)")
			title = d.titleStyle.Render(title)
		}
		body := strings.TrimSpace(it.post.Body)
		if body == "" {
			body = "(no body)"
		}
		actions := d.actionStyle.Render("[e] Edit  ") + d.deleteStyle.Render("[d] Delete")
		lines = []string{
			title,
			d.bodyStyle.Render(truncateToWidth(body, innerW)),
			actions,
		}
	default:
		lines = []string{truncateToWidth(fmt.Sprint(item), innerW), "", ""}
	}

	for i := range lines {
		lines[i] = padOrCutANSI(lines[i], innerW)
	}
	fmt.Fprint(w, card.Render(strings.Join(lines, "\n")))
}

func truncateToWidth(s string, w int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if w <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= w {
		return s
	}
	if w <= 1 {
		return "…"
	}
	return xansi.Cut(s, 0, w-1) + "…"
}

func padOrCutANSI(s string, w int) string {
	cur := xansi.StringWidth(s)
	switch {
	case cur < w:
		return s + strings.Repeat(" ", w-cur)
	case cur > w:
		return xansi.Cut(s, 0, w) + "\x1b[0m"
	default:
		return s
	}
}
