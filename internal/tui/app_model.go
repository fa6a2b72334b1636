package tui

import (
	"context"
	"errors"

	"postboard/internal/board"
	"postboard/internal/loader"
	"postboard/internal/model"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

type appModel struct {
	loader *loader.Loader
	log    zerolog.Logger

	width  int
	height int

	status  loader.Status
	loadErr string
	spinner spinner.Model

	board board.State

	titleInput textinput.Model
	bodyInput  textinput.Model
	focus      focusArea
	postsList  list.Model

	flash    string
	flashSeq int

	// copyText is swapped out in tests.
	copyText func(string) error
}

func newAppModel(opts Options) appModel {
	m := appModel{
		loader:   opts.Loader,
		log:      opts.Log,
		status:   loader.StatusLoading,
		board:    board.New(opts.IDPolicy),
		focus:    focusTitle,
		copyText: copyToClipboard,
	}

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot

	m.titleInput = textinput.New()
	m.titleInput.Placeholder = "Title"
	m.titleInput.Prompt = ""
	m.titleInput.CharLimit = 500

	m.bodyInput = textinput.New()
	m.bodyInput.Placeholder = "Description"
	m.bodyInput.Prompt = ""
	m.bodyInput.CharLimit = 0

	m.postsList = newList("Posts", nil)
	m.applyFocus()
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchPosts(m.loader))
}

var errNoLoader = errors.New("no posts loader configured")

func fetchPosts(l *loader.Loader) tea.Cmd {
	if l == nil {
		return func() tea.Msg {
			return postsLoadedMsg{res: loader.Failed(errNoLoader)}
		}
	}
	return func() tea.Msg {
		return postsLoadedMsg{res: l.Load(context.Background())}
	}
}

// applyFocus moves the text cursor to the focused input (if any).
func (m *appModel) applyFocus() {
	m.titleInput.Blur()
	m.bodyInput.Blur()
	switch m.focus {
	case focusTitle:
		m.titleInput.Focus()
	case focusBody:
		m.bodyInput.Focus()
	}
}

func (m *appModel) setFocus(f focusArea) {
	m.focus = f
	m.applyFocus()
}

// syncInputs copies the board's form into the text inputs after a transition
// that changed it (submit, begin edit, cancel).
func (m *appModel) syncInputs() {
	f := m.board.Form()
	if m.titleInput.Value() != f.Title {
		m.titleInput.SetValue(f.Title)
	}
	if m.bodyInput.Value() != f.Body {
		m.bodyInput.SetValue(f.Body)
	}
}

// refreshPosts rebuilds the card list from the board, keeping selection on
// keepID when it still exists.
func (m *appModel) refreshPosts(keepID int, keep bool) {
	editingID, editing := m.board.Editing()
	idx := m.postsList.Index()
	m.postsList.SetItems(postItems(m.board.Sorted(), editingID, editing))
	if keep && selectPostByID(&m.postsList, keepID) {
		return
	}
	if n := len(m.postsList.Items()); n > 0 {
		if idx >= n {
			idx = n - 1
		}
		if idx < 0 {
			idx = 0
		}
		m.postsList.Select(idx)
	}
}

func (m *appModel) seed(posts []model.Post) {
	m.board = m.board.Seed(posts)
	m.refreshPosts(0, false)
	m.postsList.Select(0)
}
