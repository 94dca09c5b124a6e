package event

import (
	"sync"
	"testing"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry[func()]()

	if r == nil {
		t.Fatal("expected non-nil registry")
	}
	if r.Len() != 0 {
		t.Errorf("expected count 0, got %d", r.Len())
	}
	if r.Snapshot() != nil {
		t.Error("expected nil snapshot for empty registry")
	}
}

func TestRegistry_Add_PriorityOrder(t *testing.T) {
	r := NewRegistry[string]()

	// Add in non-priority order
	r.Add("low", PriorityLow)
	r.Add("high", PriorityHigh)
	r.Add("normal", PriorityNormal)
	r.Add("critical", PriorityCritical)

	got := r.Snapshot()
	want := []string{"critical", "high", "normal", "low"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegistry_Add_SamePriorityKeepsRegistrationOrder(t *testing.T) {
	r := NewRegistry[int]()

	for i := 0; i < 10; i++ {
		r.Add(i, PriorityNormal)
	}
	r.Add(-1, PriorityHigh)

	got := r.Snapshot()
	if got[0] != -1 {
		t.Errorf("expected high priority entry first, got %d", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i] != i-1 {
			t.Errorf("position %d: got %d, want %d", i, got[i], i-1)
		}
	}
}

func TestHandle_Unregister(t *testing.T) {
	r := NewRegistry[string]()

	a := r.Add("a", PriorityNormal)
	r.Add("b", PriorityNormal)

	if !a.Unregister() {
		t.Error("first Unregister should report true")
	}
	if a.Unregister() {
		t.Error("second Unregister should report false")
	}

	got := r.Snapshot()
	if len(got) != 1 || got[0] != "b" {
		t.Errorf("expected [b], got %v", got)
	}
}

func TestHandle_ZeroValue(t *testing.T) {
	var h Handle
	if h.Unregister() {
		t.Error("zero handle should unregister nothing")
	}
	if h.ID() != 0 {
		t.Errorf("zero handle ID = %d, want 0", h.ID())
	}
}

func TestRegistry_UnregisterDuringIteration(t *testing.T) {
	r := NewRegistry[func()]()

	var calls []string
	var h Handle
	h = r.Add(func() {
		calls = append(calls, "self")
		h.Unregister()
	}, PriorityHigh)
	r.Add(func() { calls = append(calls, "other") }, PriorityLow)

	for _, fn := range r.Snapshot() {
		fn()
	}
	for _, fn := range r.Snapshot() {
		fn()
	}

	want := []string{"self", "other", "other"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestGroup_Unregister(t *testing.T) {
	r := NewRegistry[string]()
	var g Group

	g.Add(r.Add("a", PriorityNormal), r.Add("b", PriorityNormal))
	r.Add("c", PriorityNormal)

	g.Unregister()

	got := r.Snapshot()
	if len(got) != 1 || got[0] != "c" {
		t.Errorf("expected [c], got %v", got)
	}

	// Second call is a no-op
	g.Unregister()
}

func TestRegistry_ConcurrentAdd(t *testing.T) {
	r := NewRegistry[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Add(n, Priority(n%3*100))
		}(i)
	}
	wg.Wait()

	if r.Len() != 50 {
		t.Errorf("expected 50 entries, got %d", r.Len())
	}
}

func TestPriorityString(t *testing.T) {
	tests := []struct {
		p    Priority
		want string
	}{
		{PriorityCritical, "critical"},
		{PriorityHigh, "high"},
		{PriorityNormal, "normal"},
		{PriorityLow, "low"},
		{Priority(42), "custom"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Priority(%d).String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}
