package model

// Post is the entity shown and edited by postboard.
//
// The upstream endpoint returns more fields (userId, ...); they are dropped on decode.
type Post struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Field names a Form field.
type Field string

const (
	FieldTitle Field = "title"
	FieldBody  Field = "body"
)

// Form holds the transient create/edit inputs.
type Form struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (f Form) IsZero() bool { return f.Title == "" && f.Body == "" }
