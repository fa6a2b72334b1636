// Package board holds the in-memory post collection and the create/edit form
// that drives it.
//
// State is a value: every operation returns a new State and leaves the
// receiver (and any slice previously returned from it) untouched.
package board

import (
	"cmp"
	"fmt"
	"slices"

	"postboard/internal/model"
)

const (
	HeaderCreate = "Create a Post"
	HeaderEdit   = "Edit a Post"

	SubmitAdd  = "Add"
	SubmitSave = "Save Edit"
)

// IDPolicy decides the id of a post created with Add.
type IDPolicy int

const (
	// IDFromLength uses len(collection)+1. Ids can repeat after a delete.
	IDFromLength IDPolicy = iota
	// IDMonotonic uses a counter seeded from the highest known id. Ids are never reused.
	IDMonotonic
)

func (p IDPolicy) String() string {
	switch p {
	case IDMonotonic:
		return "monotonic"
	default:
		return "length"
	}
}

func ParseIDPolicy(s string) (IDPolicy, error) {
	switch s {
	case "", "length":
		return IDFromLength, nil
	case "monotonic":
		return IDMonotonic, nil
	default:
		return IDFromLength, fmt.Errorf("unknown id policy: %s (expected length|monotonic)", s)
	}
}

type State struct {
	posts []model.Post
	form  model.Form

	editing   bool
	editingID int

	policy IDPolicy
	nextID int

	// seed is the slice last passed to Seed; reseeding with it is a no-op.
	seed []model.Post
}

func New(policy IDPolicy) State {
	return State{policy: policy, nextID: 1}
}

// Seed replaces the collection with items.
func (s State) Seed(items []model.Post) State {
	if s.seed != nil && sameSlice(s.seed, items) {
		return s
	}
	s.posts = slices.Clone(items)
	if s.posts == nil {
		s.posts = []model.Post{}
	}
	s.seed = items
	if s.seed == nil {
		s.seed = []model.Post{}
	}
	s.nextID = maxID(s.posts) + 1
	return s
}

func (s State) UpdateField(field model.Field, value string) State {
	switch field {
	case model.FieldTitle:
		s.form.Title = value
	case model.FieldBody:
		s.form.Body = value
	}
	return s
}

// Add appends a post built from the form and resets the form.
func (s State) Add() State {
	id := len(s.posts) + 1
	if s.policy == IDMonotonic {
		id = s.nextID
	}
	posts := make([]model.Post, 0, len(s.posts)+1)
	posts = append(posts, s.posts...)
	posts = append(posts, model.Post{ID: id, Title: s.form.Title, Body: s.form.Body})
	s.posts = posts
	if id >= s.nextID {
		s.nextID = id + 1
	}
	s.form = model.Form{}
	s.editing = false
	s.editingID = 0
	return s
}

// BeginEdit loads the post with id into the form. Unknown ids are ignored.
func (s State) BeginEdit(id int) State {
	i := s.indexOf(id)
	if i < 0 {
		return s
	}
	p := s.posts[i]
	s.form = model.Form{Title: p.Title, Body: p.Body}
	s.editing = true
	s.editingID = id
	return s
}

// CommitEdit writes the form into the post being edited.
// It is a no-op when nothing is being edited or the post no longer exists.
func (s State) CommitEdit() State {
	if !s.editing {
		return s
	}
	i := s.indexOf(s.editingID)
	if i < 0 {
		return s
	}
	posts := slices.Clone(s.posts)
	posts[i].Title = s.form.Title
	posts[i].Body = s.form.Body
	s.posts = posts
	s.form = model.Form{}
	s.editing = false
	s.editingID = 0
	return s
}

// Submit is the form's single button: Save Edit in edit mode, Add otherwise.
func (s State) Submit() State {
	if s.editing {
		return s.CommitEdit()
	}
	return s.Add()
}

// CancelEdit leaves edit mode and clears the form.
func (s State) CancelEdit() State {
	s.form = model.Form{}
	s.editing = false
	s.editingID = 0
	return s
}

func (s State) Delete(id int) State {
	i := s.indexOf(id)
	if i < 0 {
		return s
	}
	posts := make([]model.Post, 0, len(s.posts)-1)
	for _, p := range s.posts {
		if p.ID != id {
			posts = append(posts, p)
		}
	}
	s.posts = posts
	return s
}

// Posts returns the collection in insertion order.
func (s State) Posts() []model.Post { return slices.Clone(s.posts) }

// Sorted returns the collection in display order (descending id).
func (s State) Sorted() []model.Post {
	out := slices.Clone(s.posts)
	slices.SortStableFunc(out, func(a, b model.Post) int { return cmp.Compare(b.ID, a.ID) })
	return out
}

func (s State) Len() int { return len(s.posts) }

func (s State) Find(id int) (model.Post, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Post{}, false
	}
	return s.posts[i], true
}

func (s State) Form() model.Form { return s.form }

// Editing returns the id under edit, if any.
func (s State) Editing() (int, bool) { return s.editingID, s.editing }

func (s State) Policy() IDPolicy { return s.policy }

func (s State) Header() string {
	if s.editing {
		return HeaderEdit
	}
	return HeaderCreate
}

func (s State) SubmitLabel() string {
	if s.editing {
		return SubmitSave
	}
	return SubmitAdd
}

func (s State) ResultsHeading() string {
	return fmt.Sprintf("Showing %d results", len(s.posts))
}

// indexOf returns the first index holding id, or -1.
func (s State) indexOf(id int) int {
	return slices.IndexFunc(s.posts, func(p model.Post) bool { return p.ID == id })
}

func maxID(posts []model.Post) int {
	m := 0
	for _, p := range posts {
		if p.ID > m {
			m = p.ID
		}
	}
	return m
}

func sameSlice(a, b []model.Post) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return a != nil && b != nil
	}
	return &a[0] == &b[0]
}
