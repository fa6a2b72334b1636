package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"postboard/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - text (a table; posts only)
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "text":
		return WriteText(w, v)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON, one document per call.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

const bodyCellMax = 60

// WriteText renders posts as a plain table. Other values fall back to JSON.
func WriteText(w io.Writer, v any) error {
	var posts []model.Post
	switch t := v.(type) {
	case []model.Post:
		posts = t
	case model.Post:
		posts = []model.Post{t}
	default:
		return WriteJSON(w, v, true)
	}

	rows := make([][]string, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, []string{strconv.Itoa(p.ID), oneLine(p.Title, bodyCellMax), oneLine(p.Body, bodyCellMax)})
	}
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "BODY").
		Rows(rows...)
	_, err := fmt.Fprintln(w, tbl.String())
	return err
}

func oneLine(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
