package decorator

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRegexp(t *testing.T) {
	m, err := Regexp(`^https://github\.com/`)
	if err != nil {
		t.Fatal(err)
	}
	if !m.Match("https://github.com/dshills") {
		t.Error("expected match")
	}
	if m.Match("https://gitlab.com/") {
		t.Error("unexpected match")
	}

	if _, err := Regexp(`(`); err == nil {
		t.Error("expected compile error")
	}
}

func TestFunc(t *testing.T) {
	m := Func(func(url string) bool { return strings.HasSuffix(url, ".pdf") })
	if !m.Match("/a.pdf") || m.Match("/a.txt") {
		t.Error("Func matcher returned wrong results")
	}
}

func TestLua_Match(t *testing.T) {
	m, err := Lua(`return string.sub(url, -4) == '.pdf'`)
	if err != nil {
		t.Fatalf("Lua() error = %v", err)
	}
	defer m.Close()

	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com/a.pdf", true},
		{"https://example.com/a.txt", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := m.Match(tt.url); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestLua_Truthiness(t *testing.T) {
	m, err := Lua(`if url == "x" then return "yes" end`)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	if !m.Match("x") {
		t.Error("non-nil result should match")
	}
	if m.Match("y") {
		t.Error("nil result should not match")
	}
}

func TestLua_CompileError(t *testing.T) {
	if _, err := Lua(`return (`); err == nil {
		t.Error("expected compile error")
	}
}

func TestLua_Sandbox(t *testing.T) {
	sources := []string{
		`return io.open("/etc/passwd") ~= nil`,
		`return os.getenv("HOME") ~= nil`,
		`return dofile("/etc/passwd")`,
		`return loadstring("return true")()`,
		`return require("os") ~= nil`,
	}
	for _, src := range sources {
		m, err := Lua(src)
		if err != nil {
			t.Fatalf("Lua(%q) error = %v", src, err)
		}
		if _, err := m.Eval("https://example.com"); err == nil {
			t.Errorf("Eval(%q) should fail in the sandbox", src)
		}
		m.Close()
	}
}

func TestLua_RuntimeErrorIsNoMatch(t *testing.T) {
	m, err := Lua(`error("boom")`)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	if m.Match("x") {
		t.Error("failing chunk should not match")
	}
	if _, err := m.Eval("x"); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("Eval error = %v, want boom", err)
	}
}

func TestLua_Timeout(t *testing.T) {
	m, err := Lua(`while true do end`, WithLuaTimeout(20*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	start := time.Now()
	if _, err := m.Eval("x"); err == nil {
		t.Error("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("timeout took %s", elapsed)
	}

	// The state stays usable after a timeout.
	if _, err := m.Eval("y"); err == nil {
		t.Error("expected timeout error on the second run")
	}
}

func TestLua_Closed(t *testing.T) {
	m, err := Lua(`return true`)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if err := m.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if _, err := m.Eval("x"); !errors.Is(err, ErrMatcherClosed) {
		t.Errorf("Eval after Close error = %v, want ErrMatcherClosed", err)
	}
}

func TestLua_ReusesCompiledChunk(t *testing.T) {
	m, err := Lua(`count = (count or 0) + 1; return count > 1`)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	if m.Match("a") {
		t.Error("first evaluation should return false")
	}
	if !m.Match("a") {
		t.Error("globals persist between evaluations")
	}
}
