package decorator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultLuaTimeout bounds a single Lua evaluation.
const DefaultLuaTimeout = 100 * time.Millisecond

// LuaOption configures a LuaMatcher.
type LuaOption func(*LuaMatcher)

// WithLuaTimeout sets the per-evaluation timeout.
func WithLuaTimeout(d time.Duration) LuaOption {
	return func(m *LuaMatcher) {
		m.timeout = d
	}
}

// WithLuaLogger sets the logger used to report failing evaluations.
func WithLuaLogger(l *slog.Logger) LuaOption {
	return func(m *LuaMatcher) {
		if l != nil {
			m.logger = l
		}
	}
}

// LuaMatcher evaluates a Lua chunk against link URLs.
//
// The chunk is compiled once. gopher-lua states are single-threaded, so
// evaluations are serialised with a mutex.
type LuaMatcher struct {
	mu      sync.Mutex
	L       *lua.LState
	fn      *lua.LFunction
	source  string
	timeout time.Duration
	logger  *slog.Logger
	closed  bool
}

// Lua compiles source into a sandboxed matcher. The chunk reads the URL from
// the global url and returns a boolean; any other result counts as its Lua
// truthiness.
func Lua(source string, opts ...LuaOption) (*LuaMatcher, error) {
	m := &LuaMatcher{
		source:  source,
		timeout: DefaultLuaTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)

	fn, err := L.LoadString(source)
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("compile lua matcher: %w", err)
	}

	m.L = L
	m.fn = fn
	return m, nil
}

// openSafeLibraries opens the libraries a matcher may use and removes the
// functions that load code from files or strings.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// Match reports whether the chunk returns true for url. Errors count as no
// match and are logged.
func (m *LuaMatcher) Match(url string) bool {
	ok, err := m.Eval(url)
	if err != nil {
		m.logger.Warn("lua matcher failed", "url", url, "error", err)
		return false
	}
	return ok
}

// Eval runs the chunk for url.
func (m *LuaMatcher) Eval(url string) (result bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return false, ErrMatcherClosed
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()
	m.L.SetContext(ctx)
	defer m.L.RemoveContext()

	top := m.L.GetTop()
	defer m.L.SetTop(top)

	m.L.SetGlobal("url", lua.LString(url))

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()

	m.L.Push(m.fn)
	if err := m.L.PCall(0, 1, nil); err != nil {
		return false, fmt.Errorf("evaluate lua matcher: %w", err)
	}
	return lua.LVAsBool(m.L.Get(-1)), nil
}

// Source returns the chunk source.
func (m *LuaMatcher) Source() string {
	return m.source
}

// Close releases the Lua state. It is safe to call more than once.
func (m *LuaMatcher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.L.Close()
	m.closed = true
	return nil
}
