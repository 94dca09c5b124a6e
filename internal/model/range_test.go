package model

import "testing"

func TestRange_Overlaps(t *testing.T) {
	tests := []struct {
		a, b Range
		want bool
	}{
		{NewRange(0, 5), NewRange(3, 8), true},
		{NewRange(0, 5), NewRange(5, 8), false},
		{NewRange(3, 8), NewRange(0, 3), false},
		{NewRange(0, 10), NewRange(2, 4), true},
		{NewRange(2, 2), NewRange(0, 4), true},
	}
	for _, tt := range tests {
		if got := tt.a.Overlaps(tt.b); got != tt.want {
			t.Errorf("%s.Overlaps(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRange_Intersect(t *testing.T) {
	tests := []struct {
		a, b Range
		want Range
	}{
		{NewRange(0, 5), NewRange(3, 8), NewRange(3, 5)},
		{NewRange(3, 8), NewRange(0, 5), NewRange(3, 5)},
		{NewRange(0, 10), NewRange(2, 4), NewRange(2, 4)},
	}
	for _, tt := range tests {
		if got := tt.a.Intersect(tt.b); !got.Equal(tt.want) {
			t.Errorf("%s.Intersect(%s) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestTransformOffset(t *testing.T) {
	insertAt5 := edit{Range: NewRange(5, 5), NewLen: 3}
	remove2to6 := edit{Range: NewRange(2, 6), NewLen: 0}

	tests := []struct {
		name   string
		offset int
		e      edit
		want   int
		sticky int
	}{
		{"insert before", 8, insertAt5, 11, 11},
		{"insert at", 5, insertAt5, 8, 5},
		{"insert after", 3, insertAt5, 3, 3},
		{"remove spanning", 4, remove2to6, 2, 2},
		{"remove before", 9, remove2to6, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transformOffset(tt.offset, tt.e); got != tt.want {
				t.Errorf("transformOffset = %d, want %d", got, tt.want)
			}
			if got := transformOffsetSticky(tt.offset, tt.e); got != tt.sticky {
				t.Errorf("transformOffsetSticky = %d, want %d", got, tt.sticky)
			}
		})
	}
}

func TestAttributes_EqualIsStrict(t *testing.T) {
	a := Attributes{"n": 1}
	b := Attributes{"n": int64(1)}
	if a.Equal(b) {
		t.Error("int and int64 values should not compare equal")
	}
	if !a.Equal(Attributes{"n": 1}) {
		t.Error("identical maps should compare equal")
	}
	if !Attributes(nil).Equal(Attributes{}) {
		t.Error("nil and empty should compare equal")
	}
}

func TestAttributes_WithoutDoesNotMutate(t *testing.T) {
	a := Attributes{"x": "1", "y": "2"}
	b := a.Without("x")
	if !a.Has("x") {
		t.Error("Without mutated receiver")
	}
	if b.Has("x") || !b.Has("y") {
		t.Errorf("Without result = %s", b)
	}
	if a.Without("x", "y") != nil {
		t.Error("removing every key should return nil")
	}
}

func TestSelection_FirstPosition(t *testing.T) {
	if p := Select(6, 2).FirstPosition(); p.Offset != 2 || p.Gravity != Forward {
		t.Errorf("FirstPosition of backward selection = %s", p)
	}
	caret := Selection{Anchor: 4, Head: 4, Gravity: Forward}
	if p := caret.FirstPosition(); p.Offset != 4 || p.Gravity != Forward {
		t.Errorf("FirstPosition of caret = %s", p)
	}
}
