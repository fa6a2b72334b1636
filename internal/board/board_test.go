package board

import (
	"math"
	"reflect"
	"testing"

	"postboard/internal/model"
)

func seeded(policy IDPolicy, posts ...model.Post) State {
	return New(policy).Seed(posts)
}

func ids(posts []model.Post) []int {
	out := make([]int, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func TestSeed_ReplacesCollection(t *testing.T) {
	items := []model.Post{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}, {ID: 3, Title: "C"}}
	s := New(IDFromLength).Seed(items)
	if s.Len() != len(items) {
		t.Fatalf("expected %d posts after seed; got %d", len(items), s.Len())
	}
	if !reflect.DeepEqual(s.Posts(), items) {
		t.Fatalf("posts mismatch:\n got: %#v\nwant: %#v", s.Posts(), items)
	}
}

func TestSeed_SameSliceIsNoOp(t *testing.T) {
	items := []model.Post{{ID: 1, Title: "A"}}
	s := New(IDFromLength).Seed(items)
	s = s.UpdateField(model.FieldTitle, "B").Add()
	if s.Len() != 2 {
		t.Fatalf("expected 2 posts; got %d", s.Len())
	}

	again := s.Seed(items)
	if again.Len() != 2 {
		t.Fatalf("expected reseed with the same slice to keep local changes; got %d posts", again.Len())
	}

	other := s.Seed([]model.Post{{ID: 9}})
	if got := ids(other.Posts()); !reflect.DeepEqual(got, []int{9}) {
		t.Fatalf("expected a different slice to reseed; got ids %v", got)
	}
}

func TestSeed_DoesNotAliasInput(t *testing.T) {
	items := []model.Post{{ID: 1, Title: "A", Body: "x"}}
	s := New(IDFromLength).Seed(items)
	s = s.BeginEdit(1).UpdateField(model.FieldTitle, "Z").CommitEdit()
	if items[0].Title != "A" {
		t.Fatalf("expected seeded slice to stay untouched; got %q", items[0].Title)
	}
	if p, _ := s.Find(1); p.Title != "Z" {
		t.Fatalf("expected edited title Z; got %q", p.Title)
	}
}

func TestUpdateField(t *testing.T) {
	s := New(IDFromLength).
		UpdateField(model.FieldTitle, "T").
		UpdateField(model.FieldBody, "B").
		UpdateField(model.Field("nope"), "ignored")
	if got := s.Form(); got != (model.Form{Title: "T", Body: "B"}) {
		t.Fatalf("unexpected form: %#v", got)
	}

	s = s.UpdateField(model.FieldTitle, "")
	if s.Form().Title != "" {
		t.Fatalf("expected empty title to be accepted; got %q", s.Form().Title)
	}
}

func TestAdd_AppendsFromForm(t *testing.T) {
	s := seeded(IDFromLength, model.Post{ID: 1, Title: "A", Body: "x"})
	s = s.UpdateField(model.FieldTitle, "B").UpdateField(model.FieldBody, "y").Add()

	want := []model.Post{{ID: 1, Title: "A", Body: "x"}, {ID: 2, Title: "B", Body: "y"}}
	if !reflect.DeepEqual(s.Posts(), want) {
		t.Fatalf("posts mismatch:\n got: %#v\nwant: %#v", s.Posts(), want)
	}
	if got := ids(s.Sorted()); !reflect.DeepEqual(got, []int{2, 1}) {
		t.Fatalf("expected display order [2 1]; got %v", got)
	}
	if !s.Form().IsZero() {
		t.Fatalf("expected form to be cleared; got %#v", s.Form())
	}
	if s.Header() != HeaderCreate || s.SubmitLabel() != SubmitAdd {
		t.Fatalf("expected create mode; got header=%q label=%q", s.Header(), s.SubmitLabel())
	}
}

func TestAdd_EmptyFormStillAdds(t *testing.T) {
	s := New(IDFromLength).Seed(nil).Add()
	if s.Len() != 1 {
		t.Fatalf("expected 1 post; got %d", s.Len())
	}
	if p, ok := s.Find(1); !ok || p.Title != "" || p.Body != "" {
		t.Fatalf("expected empty post with id 1; got %#v ok=%v", p, ok)
	}
}

func TestAdd_LengthPolicyCanRepeatIDs(t *testing.T) {
	s := seeded(IDFromLength, model.Post{ID: 1}, model.Post{ID: 2})
	s = s.Delete(2).Add()
	if got := ids(s.Posts()); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("expected ids [1 2]; got %v", got)
	}

	s = seeded(IDFromLength, model.Post{ID: 1}, model.Post{ID: 2}).Delete(1).Add()
	if got := ids(s.Posts()); !reflect.DeepEqual(got, []int{2, 2}) {
		t.Fatalf("expected duplicate id after deleting 1; got %v", got)
	}
}

func TestAdd_MonotonicPolicyNeverReuses(t *testing.T) {
	s := seeded(IDMonotonic, model.Post{ID: 1}, model.Post{ID: 2})
	s = s.Delete(2).Add()
	if got := ids(s.Posts()); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Fatalf("expected ids [1 3]; got %v", got)
	}
	s = s.Delete(1).Add()
	if got := ids(s.Posts()); !reflect.DeepEqual(got, []int{3, 4}) {
		t.Fatalf("expected ids [3 4]; got %v", got)
	}
}

func TestDelete(t *testing.T) {
	base := seeded(IDFromLength,
		model.Post{ID: 1, Title: "A", Body: "x"},
		model.Post{ID: 2, Title: "B", Body: "y"},
		model.Post{ID: 3, Title: "C", Body: "z"},
	)

	s := base.Delete(2)
	want := []model.Post{{ID: 1, Title: "A", Body: "x"}, {ID: 3, Title: "C", Body: "z"}}
	if !reflect.DeepEqual(s.Posts(), want) {
		t.Fatalf("posts mismatch:\n got: %#v\nwant: %#v", s.Posts(), want)
	}
	if base.Len() != 3 {
		t.Fatalf("expected original snapshot to keep 3 posts; got %d", base.Len())
	}

	same := base.Delete(42)
	if !reflect.DeepEqual(same.Posts(), base.Posts()) {
		t.Fatalf("expected delete of unknown id to be a no-op")
	}
}

func TestBeginEdit_CommitEdit(t *testing.T) {
	s := seeded(IDFromLength,
		model.Post{ID: 1, Title: "A", Body: "x"},
		model.Post{ID: 2, Title: "B", Body: "y"},
	)

	s = s.BeginEdit(1)
	if id, ok := s.Editing(); !ok || id != 1 {
		t.Fatalf("expected editing id 1; got %d ok=%v", id, ok)
	}
	if s.Form() != (model.Form{Title: "A", Body: "x"}) {
		t.Fatalf("expected form to be loaded from post; got %#v", s.Form())
	}
	if s.Header() != HeaderEdit || s.SubmitLabel() != SubmitSave {
		t.Fatalf("expected edit mode; got header=%q label=%q", s.Header(), s.SubmitLabel())
	}

	s = s.UpdateField(model.FieldTitle, "Z").CommitEdit()
	want := []model.Post{{ID: 1, Title: "Z", Body: "x"}, {ID: 2, Title: "B", Body: "y"}}
	if !reflect.DeepEqual(s.Posts(), want) {
		t.Fatalf("posts mismatch:\n got: %#v\nwant: %#v", s.Posts(), want)
	}
	if _, ok := s.Editing(); ok {
		t.Fatalf("expected edit marker to be cleared")
	}
	if !s.Form().IsZero() {
		t.Fatalf("expected form to be cleared; got %#v", s.Form())
	}
	if s.Header() != HeaderCreate {
		t.Fatalf("expected header reset; got %q", s.Header())
	}
}

func TestCommitEdit_DoesNotTouchOlderSnapshot(t *testing.T) {
	before := seeded(IDFromLength, model.Post{ID: 1, Title: "A", Body: "x"}).BeginEdit(1)
	after := before.UpdateField(model.FieldBody, "changed").CommitEdit()

	if p, _ := before.Find(1); p.Body != "x" {
		t.Fatalf("expected older snapshot unchanged; got body %q", p.Body)
	}
	if p, _ := after.Find(1); p.Body != "changed" {
		t.Fatalf("expected new snapshot body 'changed'; got %q", p.Body)
	}
}

func TestBeginEdit_UnknownIDIsNoOp(t *testing.T) {
	s := seeded(IDFromLength, model.Post{ID: 1, Title: "A"}).UpdateField(model.FieldTitle, "draft")
	s = s.BeginEdit(99)
	if _, ok := s.Editing(); ok {
		t.Fatalf("expected no edit marker for unknown id")
	}
	if s.Header() != HeaderCreate {
		t.Fatalf("expected create header; got %q", s.Header())
	}
	if s.Form().Title != "draft" {
		t.Fatalf("expected form untouched; got %#v", s.Form())
	}
}

func TestCommitEdit_MissingTargetIsNoOp(t *testing.T) {
	s := seeded(IDFromLength, model.Post{ID: 1, Title: "A"}, model.Post{ID: 2, Title: "B"})
	s = s.BeginEdit(2).UpdateField(model.FieldTitle, "Z").Delete(2)
	s2 := s.CommitEdit()

	if !reflect.DeepEqual(s2.Posts(), s.Posts()) {
		t.Fatalf("expected posts unchanged")
	}
	if _, ok := s2.Editing(); !ok {
		t.Fatalf("expected edit marker to remain set on a no-op commit")
	}
	if s2.Form().Title != "Z" {
		t.Fatalf("expected form to remain; got %#v", s2.Form())
	}
}

func TestSubmit_Dispatches(t *testing.T) {
	s := seeded(IDFromLength, model.Post{ID: 1, Title: "A", Body: "x"})

	s = s.UpdateField(model.FieldTitle, "B").Submit()
	if s.Len() != 2 {
		t.Fatalf("expected submit in create mode to add; got %d posts", s.Len())
	}

	s = s.BeginEdit(2).UpdateField(model.FieldTitle, "B2").Submit()
	if s.Len() != 2 {
		t.Fatalf("expected submit in edit mode not to add; got %d posts", s.Len())
	}
	if p, _ := s.Find(2); p.Title != "B2" {
		t.Fatalf("expected edited title B2; got %q", p.Title)
	}
}

func TestCancelEdit(t *testing.T) {
	s := seeded(IDFromLength, model.Post{ID: 1, Title: "A", Body: "x"}).BeginEdit(1).CancelEdit()
	if _, ok := s.Editing(); ok {
		t.Fatalf("expected edit marker cleared")
	}
	if !s.Form().IsZero() {
		t.Fatalf("expected form cleared; got %#v", s.Form())
	}
	if p, _ := s.Find(1); p.Title != "A" {
		t.Fatalf("expected post untouched; got %#v", p)
	}
}

func TestSorted_DescendingAfterMutations(t *testing.T) {
	s := seeded(IDMonotonic, model.Post{ID: 3}, model.Post{ID: 1}, model.Post{ID: 2})
	steps := []func(State) State{
		func(s State) State { return s.Add() },
		func(s State) State { return s.Delete(1) },
		func(s State) State { return s.BeginEdit(3).UpdateField(model.FieldTitle, "x").CommitEdit() },
		func(s State) State { return s.Add() },
	}
	for i, step := range steps {
		s = step(s)
		sorted := s.Sorted()
		for j := 1; j < len(sorted); j++ {
			if sorted[j-1].ID <= sorted[j].ID {
				t.Fatalf("step %d: expected strictly descending ids; got %v", i, ids(sorted))
			}
		}
	}
	if got := ids(s.Posts()); !reflect.DeepEqual(got, []int{3, 2, 4, 5}) {
		t.Fatalf("expected insertion order to be kept; got %v", got)
	}
}

func TestSorted_ExtremeIDs(t *testing.T) {
	s := seeded(IDFromLength, model.Post{ID: -5}, model.Post{ID: math.MaxInt}, model.Post{ID: 3}, model.Post{ID: math.MinInt})
	want := []int{math.MaxInt, 3, -5, math.MinInt}
	if got := ids(s.Sorted()); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v; got %v", want, got)
	}
}

func TestResultsHeading(t *testing.T) {
	s := seeded(IDFromLength, model.Post{ID: 1}, model.Post{ID: 2})
	if got := s.ResultsHeading(); got != "Showing 2 results" {
		t.Fatalf("unexpected heading %q", got)
	}
}

func TestParseIDPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    IDPolicy
		wantErr bool
	}{
		{in: "", want: IDFromLength},
		{in: "length", want: IDFromLength},
		{in: "monotonic", want: IDMonotonic},
		{in: "uuid", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseIDPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseIDPolicy(%q) err=%v wantErr=%v", tt.in, err, tt.wantErr)
		}
		if !tt.wantErr && got != tt.want {
			t.Fatalf("ParseIDPolicy(%q)=%v want %v", tt.in, got, tt.want)
		}
	}
}
