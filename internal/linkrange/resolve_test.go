package linkrange

import (
	"errors"
	"testing"

	"github.com/dshills/keylink/internal/model"
)

const key = "linkHref"

func TestResolve_SingleRun(t *testing.T) {
	// "X" carries the link, "Y" does not.
	doc := model.NewDocument([]model.Run{
		model.Attributed("X", model.Attributes{key: "link:foo"}),
		model.Plain("Y"),
	})

	r, ok, err := Resolve(doc, model.At(1), key)
	if err != nil || !ok {
		t.Fatalf("Resolve = %v, %v", ok, err)
	}
	if !r.Range.Equal(model.NewRange(0, 1)) {
		t.Errorf("range = %s, want [0:1)", r.Range)
	}
	if r.Value != "link:foo" || r.First != 0 || r.Last != 0 {
		t.Errorf("unexpected range %s first=%d last=%d", r, r.First, r.Last)
	}
}

func TestResolve_StopsAtDifferentValue(t *testing.T) {
	// a and b share url1 but differ in bold so they stay separate runs.
	doc := model.NewDocument([]model.Run{
		model.Attributed("aa", model.Attributes{key: "url1"}),
		model.Attributed("bb", model.Attributes{key: "url1", "bold": true}),
		model.Attributed("cc", model.Attributes{key: "url2"}),
	})
	if doc.Len() != 3 {
		t.Fatalf("expected 3 runs, got %s", doc)
	}

	r, ok, err := Resolve(doc, model.At(3), key)
	if err != nil || !ok {
		t.Fatalf("Resolve = %v, %v", ok, err)
	}
	if !r.Range.Equal(model.NewRange(0, 4)) || r.First != 0 || r.Last != 1 {
		t.Errorf("range = %s first=%d last=%d, want [0:4) 0..1", r.Range, r.First, r.Last)
	}
}

func TestResolve_NotFound(t *testing.T) {
	doc := model.NewDocument([]model.Run{
		model.Plain("ab"),
		model.Attributed("cd", model.Attributes{key: "u"}),
	})

	for _, pos := range []model.Position{model.At(0), model.At(1), model.At(1).WithGravity(model.Forward)} {
		if _, ok, err := Resolve(doc, pos, key); ok || err != nil {
			t.Errorf("Resolve(%s) = %v, %v; want not found", pos, ok, err)
		}
	}

	empty := model.NewDocument(nil)
	if _, ok, err := Resolve(empty, model.At(0), key); ok || err != nil {
		t.Errorf("Resolve on empty document = %v, %v", ok, err)
	}
}

func TestResolve_Gravity(t *testing.T) {
	doc := model.NewDocument([]model.Run{
		model.Attributed("ab", model.Attributes{key: "left"}),
		model.Attributed("cd", model.Attributes{key: "right"}),
	})

	tests := []struct {
		name string
		pos  model.Position
		want any
	}{
		{"backward picks before", model.At(2), "left"},
		{"forward picks after", model.At(2).WithGravity(model.Forward), "right"},
		{"start falls back to after", model.At(0), "left"},
		{"end falls back to before", model.At(4).WithGravity(model.Forward), "right"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok, err := Resolve(doc, tt.pos, key)
			if err != nil || !ok {
				t.Fatalf("Resolve = %v, %v", ok, err)
			}
			if r.Value != tt.want {
				t.Errorf("value = %v, want %v", r.Value, tt.want)
			}
		})
	}
}

func TestResolve_FallsBackToOtherSide(t *testing.T) {
	doc := model.NewDocument([]model.Run{
		model.Plain("ab"),
		model.Attributed("cd", model.Attributes{key: "u"}),
	})

	// Backward gravity at 2 prefers "ab", which has no link.
	r, ok, err := Resolve(doc, model.At(2), key)
	if err != nil || !ok {
		t.Fatalf("Resolve = %v, %v", ok, err)
	}
	if !r.Range.Equal(model.NewRange(2, 4)) {
		t.Errorf("range = %s, want [2:4)", r.Range)
	}
}

func TestResolve_InvalidPosition(t *testing.T) {
	doc := model.NewDocumentFromText("abc")
	for _, off := range []int{-1, 4} {
		_, _, err := Resolve(doc, model.At(off), key)
		if !errors.Is(err, model.ErrInvalidPosition) {
			t.Errorf("Resolve(%d) error = %v, want ErrInvalidPosition", off, err)
		}
	}
}

func TestResolve_StrictEquality(t *testing.T) {
	doc := model.NewDocument([]model.Run{
		model.Attributed("a", model.Attributes{key: "http://x"}),
		model.Attributed("b", model.Attributes{key: "http://x/"}),
		model.Attributed("c", model.Attributes{key: "HTTP://X"}),
	})
	r, ok, _ := Resolve(doc, model.At(1).WithGravity(model.Forward), key)
	if !ok || !r.Range.Equal(model.NewRange(1, 2)) {
		t.Errorf("range = %s, %v; want [1:2)", r.Range, ok)
	}
}

func TestResolveValue(t *testing.T) {
	doc := model.NewDocument([]model.Run{
		model.Attributed("ab", model.Attributes{key: "one"}),
		model.Attributed("cd", model.Attributes{key: "two"}),
	})

	// Forward gravity prefers "two" but the value pins "one".
	r, ok, err := ResolveValue(doc, model.At(2).WithGravity(model.Forward), key, "one")
	if err != nil || !ok {
		t.Fatalf("ResolveValue = %v, %v", ok, err)
	}
	if !r.Range.Equal(model.NewRange(0, 2)) {
		t.Errorf("range = %s, want [0:2)", r.Range)
	}

	if _, ok, _ := ResolveValue(doc, model.At(1), key, "two"); ok {
		t.Error("value absent next to the position should not resolve")
	}
}

func TestAll(t *testing.T) {
	doc := model.NewDocument([]model.Run{
		model.Attributed("a", model.Attributes{key: "1"}),
		model.Attributed("b", model.Attributes{key: "1", "bold": true}),
		model.Plain(" "),
		model.Attributed("c", model.Attributes{key: "2"}),
		model.Attributed("d", model.Attributes{key: "3"}),
	})

	got := All(doc, key)
	want := []model.Range{model.NewRange(0, 2), model.NewRange(3, 4), model.NewRange(4, 5)}
	if len(got) != len(want) {
		t.Fatalf("All returned %d ranges, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Range.Equal(want[i]) {
			t.Errorf("range %d = %s, want %s", i, got[i].Range, want[i])
		}
	}
}

// Every resolved range is maximal and exact, and repeated resolution is
// stable, for every position of a mixed document.
func TestResolve_Properties(t *testing.T) {
	doc := model.NewDocument([]model.Run{
		model.Plain("xx"),
		model.Attributed("a", model.Attributes{key: "u1"}),
		model.Attributed("bb", model.Attributes{key: "u1", "italic": true}),
		model.Attributed("c", model.Attributes{key: "u2"}),
		model.Plain("y"),
		model.Attributed("ddd", model.Attributes{key: "u1"}),
	})

	for off := 0; off <= doc.Size(); off++ {
		for _, g := range []model.Gravity{model.Backward, model.Forward} {
			pos := model.At(off).WithGravity(g)
			r, ok, err := Resolve(doc, pos, key)
			if err != nil {
				t.Fatalf("Resolve(%s): %v", pos, err)
			}
			if !ok {
				continue
			}

			for i := r.First; i <= r.Last; i++ {
				if v, _ := doc.Run(i).Attr(key); v != r.Value {
					t.Errorf("%s: run %d has %v inside range of %v", pos, i, v, r.Value)
				}
			}
			if r.First > 0 {
				if v, _ := doc.Run(r.First - 1).Attr(key); v == r.Value {
					t.Errorf("%s: range not maximal on the left", pos)
				}
			}
			if r.Last+1 < doc.Len() {
				if v, _ := doc.Run(r.Last + 1).Attr(key); v == r.Value {
					t.Errorf("%s: range not maximal on the right", pos)
				}
			}
			if r.Start > off || r.End < off {
				t.Errorf("%s: range %s does not touch the position", pos, r.Range)
			}

			again, _, _ := Resolve(doc, pos, key)
			if !again.Equal(r) {
				t.Errorf("%s: second resolve %s differs from %s", pos, again, r)
			}
		}
	}
}
