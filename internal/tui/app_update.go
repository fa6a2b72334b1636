package tui

import (
	"time"

	"postboard/internal/loader"
	"postboard/internal/model"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const flashDuration = 2 * time.Second

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if m.status != loader.StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case postsLoadedMsg:
		// The fetch result is consumed once; anything later is ignored.
		if m.status != loader.StatusLoading {
			return m, nil
		}
		m.status = msg.res.Status
		switch msg.res.Status {
		case loader.StatusReady:
			m.seed(msg.res.Posts)
			m.log.Debug().Int("count", m.board.Len()).Msg("seeded board")
		case loader.StatusError:
			m.loadErr = msg.res.Message()
		}
		return m, nil

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateFocused(msg)
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.status != loader.StatusReady {
		if msg.String() == "q" || msg.String() == "esc" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "tab":
		m.setFocus(m.focus.next(1))
		return m, nil
	case "shift+tab":
		m.setFocus(m.focus.next(-1))
		return m, nil
	case "esc":
		if _, editing := m.board.Editing(); editing {
			m.cancelEdit()
			return m, nil
		}
		if m.focus != focusList {
			m.setFocus(focusList)
		}
		return m, nil
	}

	switch m.focus {
	case focusTitle, focusBody:
		if msg.String() == "enter" {
			return m.submit()
		}
	case focusSubmit:
		switch msg.String() {
		case "enter", " ":
			return m.submit()
		case "q":
			return m, tea.Quit
		}
		return m, nil
	case focusList:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "e", "enter":
			m.beginEdit()
			return m, nil
		case "d", "x", "delete":
			m.deleteSelected()
			return m, nil
		case "a", "n":
			if _, editing := m.board.Editing(); editing {
				m.cancelEdit()
			}
			m.setFocus(focusTitle)
			return m, nil
		case "y":
			return m.copySelected()
		}
	}
	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused component and mirrors text input
// edits into the board's form.
func (m appModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.status != loader.StatusReady {
		return m, nil
	}
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
		if v := m.titleInput.Value(); v != m.board.Form().Title {
			m.board = m.board.UpdateField(model.FieldTitle, v)
		}
	case focusBody:
		m.bodyInput, cmd = m.bodyInput.Update(msg)
		if v := m.bodyInput.Value(); v != m.board.Form().Body {
			m.board = m.board.UpdateField(model.FieldBody, v)
		}
	case focusList:
		m.postsList, cmd = m.postsList.Update(msg)
	}
	return m, cmd
}

func (m appModel) submit() (tea.Model, tea.Cmd) {
	editingID, editing := m.board.Editing()
	before := m.board.Len()
	m.board = m.board.Submit()

	keepID := editingID
	if !editing {
		posts := m.board.Posts()
		if len(posts) > before {
			keepID = posts[len(posts)-1].ID
			m.log.Debug().Int("id", keepID).Msg("add post")
		}
	} else {
		m.log.Debug().Int("id", editingID).Msg("commit edit")
	}
	m.syncInputs()
	m.refreshPosts(keepID, true)
	m.setFocus(focusTitle)
	return m, nil
}

func (m *appModel) beginEdit() {
	p, ok := selectedPost(m.postsList)
	if !ok {
		return
	}
	m.board = m.board.BeginEdit(p.ID)
	m.syncInputs()
	m.refreshPosts(p.ID, true)
	m.setFocus(focusTitle)
	m.titleInput.CursorEnd()
	m.log.Debug().Int("id", p.ID).Msg("begin edit")
}

func (m *appModel) cancelEdit() {
	id, _ := m.board.Editing()
	m.board = m.board.CancelEdit()
	m.syncInputs()
	m.refreshPosts(id, true)
}

func (m *appModel) deleteSelected() {
	p, ok := selectedPost(m.postsList)
	if !ok {
		return
	}
	m.board = m.board.Delete(p.ID)
	m.refreshPosts(0, false)
	m.log.Debug().Int("id", p.ID).Msg("delete post")
}

func (m appModel) copySelected() (tea.Model, tea.Cmd) {
	p, ok := selectedPost(m.postsList)
	if !ok {
		return m, nil
	}
	if err := m.copyText(postClipboardText(p)); err != nil {
		m.log.Warn().Err(err).Msg("copy to clipboard")
		return m.showFlash("Copy failed: " + err.Error())
	}
	return m.showFlash("Copied post #" + itoa(p.ID))
}

func (m appModel) showFlash(s string) (tea.Model, tea.Cmd) {
	m.flash = s
	m.flashSeq++
	seq := m.flashSeq
	return m, tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}
