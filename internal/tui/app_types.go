package tui

import "postboard/internal/loader"

// focusArea is the part of the ready screen receiving keys.
type focusArea int

const (
	focusTitle focusArea = iota
	focusBody
	focusSubmit
	focusList
)

var focusOrder = []focusArea{focusTitle, focusBody, focusSubmit, focusList}

func (f focusArea) String() string {
	switch f {
	case focusTitle:
		return "title"
	case focusBody:
		return "body"
	case focusSubmit:
		return "submit"
	default:
		return "list"
	}
}

func (f focusArea) next(delta int) focusArea {
	i := int(f) + delta
	n := len(focusOrder)
	return focusOrder[((i%n)+n)%n]
}

// postsLoadedMsg carries the one and only fetch result.
type postsLoadedMsg struct {
	res loader.Result
}

type flashDoneMsg struct{ seq int }
