package tui

import (
	"strconv"
	"strings"

	"postboard/internal/model"

	"github.com/charmbracelet/bubbles/list"
)

type postItem struct {
	post    model.Post
	editing bool
}

func (i postItem) FilterValue() string {
	return strings.TrimSpace(i.post.Title + " " + i.post.Body)
}

func (i postItem) Title() string {
	t := strings.TrimSpace(i.post.Title)
	if t == "" {
		t = "(untitled)"
	}
	return "#" + strconv.Itoa(i.post.ID) + " " + t
}

func (i postItem) Description() string { return i.post.Body }

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, newPostCardDelegate(), 0, 0)
	l.Title = title
	// Header, results heading and footer are rendered by the app, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("post", "posts")
	// Bubble list defaults to quitting on ESC; here ESC cancels an edit.
	l.KeyMap.Quit.SetKeys("q")
	// Emacs-style navigation aliases.
	l.KeyMap.CursorUp.SetKeys(append(l.KeyMap.CursorUp.Keys(), "ctrl+p")...)
	l.KeyMap.CursorDown.SetKeys(append(l.KeyMap.CursorDown.Keys(), "ctrl+n")...)
	l.KeyMap.GoToStart.SetKeys(append(l.KeyMap.GoToStart.Keys(), "<")...)
	l.KeyMap.GoToEnd.SetKeys(append(l.KeyMap.GoToEnd.Keys(), ">")...)
	return l
}

func postItems(posts []model.Post, editingID int, editing bool) []list.Item {
	items := make([]list.Item, 0, len(posts))
	for _, p := range posts {
		items = append(items, postItem{post: p, editing: editing && p.ID == editingID})
	}
	return items
}

func selectPostByID(l *list.Model, id int) bool {
	for i, it := range l.Items() {
		if pi, ok := it.(postItem); ok && pi.post.ID == id {
			l.Select(i)
			return true
		}
	}
	return false
}

func selectedPost(l list.Model) (model.Post, bool) {
	it, ok := l.SelectedItem().(postItem)
	if !ok {
		return model.Post{}, false
	}
	return it.post, true
}
