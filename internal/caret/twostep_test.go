package caret

import (
	"testing"

	"github.com/dshills/keylink/internal/model"
)

const href = "linkHref"

// newDoc returns "ab" + link "cde" + "fg" with the caret at offset.
func newDoc(offset int) *model.Document {
	return model.NewDocument([]model.Run{
		model.Plain("ab"),
		model.Attributed("cde", model.Attributes{href: "url"}),
		model.Plain("fg"),
	}, model.WithSelection(model.Collapsed(offset)))
}

func step(t *testing.T, d *model.Document, dir model.Direction) {
	t.Helper()
	if _, err := d.Step(dir); err != nil {
		t.Fatalf("Step(%s) failed: %v", dir, err)
	}
}

func hasLink(d *model.Document) bool {
	_, ok := d.SelectionAttribute(href)
	return ok
}

func TestAttach_InitialState(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		want   State
	}{
		{"plain", 1, Outside},
		{"leading boundary", 2, Outside},
		{"inside", 3, Inside},
		{"trailing boundary", 5, Outside},
		{"document end", 7, Outside},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDoc(tt.offset)
			ts, dispose := Attach(d, href)
			defer dispose()
			if ts.State() != tt.want {
				t.Errorf("State() = %s, want %s", ts.State(), tt.want)
			}
		})
	}
}

func TestTwoStep_RightwardExit(t *testing.T) {
	d := newDoc(3)
	ts, dispose := Attach(d, href)
	defer dispose()

	step(t, d, model.Right)
	if ts.State() != Inside {
		t.Fatalf("at 4: state = %s, want inside", ts.State())
	}

	step(t, d, model.Right)
	if ts.State() != AtTrailingBoundary {
		t.Fatalf("at 5: state = %s, want at-trailing-boundary", ts.State())
	}
	if !hasLink(d) {
		t.Error("selection should still carry the link at the trailing boundary")
	}

	// First step out is consumed.
	moved, err := d.Step(model.Right)
	if err != nil {
		t.Fatal(err)
	}
	if moved || d.Selection().Head != 5 {
		t.Errorf("second step moved the caret to %d", d.Selection().Head)
	}
	if ts.State() != Outside {
		t.Errorf("after consumed step: state = %s, want outside", ts.State())
	}
	if hasLink(d) {
		t.Error("selection should not carry the link once outside")
	}

	step(t, d, model.Right)
	if d.Selection().Head != 6 || ts.State() != Outside {
		t.Errorf("third step: head %d state %s", d.Selection().Head, ts.State())
	}
}

func TestTwoStep_LeftwardExitIsImmediate(t *testing.T) {
	d := newDoc(3)
	ts, dispose := Attach(d, href)
	defer dispose()

	step(t, d, model.Left)
	if d.Selection().Head != 2 {
		t.Fatalf("head = %d, want 2", d.Selection().Head)
	}
	if ts.State() != Outside {
		t.Errorf("state = %s, want outside", ts.State())
	}
	if hasLink(d) {
		t.Error("leading boundary should not carry the link")
	}
}

func TestTwoStep_LeftwardArrivalAtTrailingBoundary(t *testing.T) {
	d := newDoc(6)
	ts, dispose := Attach(d, href)
	defer dispose()

	step(t, d, model.Left)
	if d.Selection().Head != 5 || ts.State() != Outside {
		t.Errorf("head %d state %s, want 5 outside", d.Selection().Head, ts.State())
	}
	if hasLink(d) {
		t.Error("typing after arriving from the right should not extend the link")
	}

	step(t, d, model.Left)
	if ts.State() != Inside {
		t.Errorf("state = %s, want inside", ts.State())
	}
}

func TestTwoStep_TypingAtTrailingBoundary(t *testing.T) {
	d := newDoc(4)
	ts, dispose := Attach(d, href)
	defer dispose()

	step(t, d, model.Right)
	if ts.State() != AtTrailingBoundary {
		t.Fatalf("state = %s, want at-trailing-boundary", ts.State())
	}

	if err := d.Type("X"); err != nil {
		t.Fatalf("Type failed: %v", err)
	}
	if got := d.Run(1).Text; got != "cde" {
		t.Errorf("link text = %q, want cde", got)
	}
	if d.Run(2).HasAttr(href) || d.Run(2).Text != "Xfg" {
		t.Errorf("typed text should not inherit the link: %s", d)
	}
	if ts.State() != Outside {
		t.Errorf("state = %s, want outside", ts.State())
	}
}

func TestTwoStep_TypingInsideExtendsLink(t *testing.T) {
	d := newDoc(4)
	ts, dispose := Attach(d, href)
	defer dispose()

	if err := d.Type("Z"); err != nil {
		t.Fatal(err)
	}
	if d.Run(1).Text != "cdZe" {
		t.Errorf("typed text should join the link: %s", d)
	}
	if ts.State() != Inside {
		t.Errorf("state = %s, want inside", ts.State())
	}
}

func TestTwoStep_DeletedRange(t *testing.T) {
	d := newDoc(3)
	ts, dispose := Attach(d, href)
	defer dispose()

	err := d.Change(func(w *model.Writer) error {
		if err := w.Remove(model.NewRange(2, 5)); err != nil {
			return err
		}
		_, err := w.Insert(0, "zz", nil)
		return err
	})
	if err != nil {
		t.Fatalf("Change failed: %v", err)
	}
	if ts.State() != Outside {
		t.Errorf("state = %s, want outside", ts.State())
	}
}

func TestTwoStep_ExpandedSelection(t *testing.T) {
	d := newDoc(3)
	ts, dispose := Attach(d, href)
	defer dispose()

	if err := d.SetSelection(model.Select(3, 4)); err != nil {
		t.Fatal(err)
	}
	if ts.State() != Outside {
		t.Errorf("state = %s, want outside", ts.State())
	}
}

func TestTwoStep_EmptyDocument(t *testing.T) {
	d := model.NewDocument(nil)
	ts, dispose := Attach(d, href)
	defer dispose()
	if ts.State() != Outside {
		t.Errorf("state = %s, want outside", ts.State())
	}
}

func TestTwoStep_JoinOfEqualValues(t *testing.T) {
	d := model.NewDocument([]model.Run{
		model.Attributed("ab", model.Attributes{href: "u"}),
		model.Attributed("cd", model.Attributes{href: "u", "bold": true}),
	}, model.WithSelection(model.Collapsed(2)))

	ts, dispose := Attach(d, href)
	defer dispose()
	if ts.State() != Inside {
		t.Errorf("state = %s, want inside", ts.State())
	}
}

func TestTwoStep_AdjacentLinks(t *testing.T) {
	d := model.NewDocument([]model.Run{
		model.Attributed("ab", model.Attributes{href: "one"}),
		model.Attributed("cd", model.Attributes{href: "two"}),
	}, model.WithSelection(model.Collapsed(1)))

	ts, dispose := Attach(d, href)
	defer dispose()

	step(t, d, model.Right)
	if ts.State() != AtTrailingBoundary {
		t.Fatalf("state = %s, want at-trailing-boundary", ts.State())
	}
	if v, _ := d.SelectionAttribute(href); v != "one" {
		t.Errorf("selection link = %v, want one", v)
	}

	step(t, d, model.Right)
	if ts.State() != Outside || d.Selection().Head != 2 {
		t.Errorf("state %s head %d", ts.State(), d.Selection().Head)
	}
}

func TestTwoStep_Jumps(t *testing.T) {
	t.Run("from inside the same range", func(t *testing.T) {
		d := newDoc(3)
		ts, dispose := Attach(d, href)
		defer dispose()

		if err := d.SetSelection(model.Collapsed(5)); err != nil {
			t.Fatal(err)
		}
		if ts.State() != AtTrailingBoundary {
			t.Errorf("state = %s, want at-trailing-boundary", ts.State())
		}
	})

	t.Run("from outside", func(t *testing.T) {
		d := newDoc(0)
		ts, dispose := Attach(d, href)
		defer dispose()

		if err := d.SetSelection(model.Collapsed(5)); err != nil {
			t.Fatal(err)
		}
		if ts.State() != Outside {
			t.Errorf("state = %s, want outside", ts.State())
		}
	})
}

func TestTwoStep_UnrelatedEditKeepsBoundary(t *testing.T) {
	d := newDoc(4)
	ts, dispose := Attach(d, href)
	defer dispose()
	step(t, d, model.Right)

	err := d.Change(func(w *model.Writer) error {
		return w.SetAttribute(model.NewRange(0, 1), "bold", true)
	})
	if err != nil {
		t.Fatal(err)
	}
	if ts.State() != AtTrailingBoundary {
		t.Errorf("state = %s, want at-trailing-boundary", ts.State())
	}
}

func TestTwoStep_InsertElsewhereKeepsBoundary(t *testing.T) {
	d := newDoc(4)
	ts, dispose := Attach(d, href)
	defer dispose()
	step(t, d, model.Right)

	err := d.Change(func(w *model.Writer) error {
		_, err := w.Insert(7, "zz", nil)
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if d.Selection().Head != 5 || ts.State() != AtTrailingBoundary {
		t.Errorf("head %d state %s, want head 5 at-trailing-boundary", d.Selection().Head, ts.State())
	}
}

func TestTwoStep_StateListener(t *testing.T) {
	d := newDoc(4)
	var got []State
	_, dispose := Attach(d, href, WithStateListener(func(from, to State) {
		got = append(got, to)
	}))
	defer dispose()

	step(t, d, model.Right)
	step(t, d, model.Right)

	want := []State{Inside, AtTrailingBoundary, Outside}
	if len(got) != len(want) {
		t.Fatalf("transitions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("transition %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTwoStep_Dispose(t *testing.T) {
	d := newDoc(4)
	ts, dispose := Attach(d, href)
	step(t, d, model.Right)

	dispose()
	dispose()

	if _, ok := d.Override(href); ok {
		t.Error("dispose should clear the selection override")
	}
	if ts.State() != Outside {
		t.Errorf("state = %s, want outside", ts.State())
	}

	moved, err := d.Step(model.Right)
	if err != nil || !moved {
		t.Errorf("step after dispose = %v, %v; want an unconsumed move", moved, err)
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{Outside, "outside"},
		{Inside, "inside"},
		{AtTrailingBoundary, "at-trailing-boundary"},
		{State(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
