package plugin

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dshills/keylink/internal/command"
	"github.com/dshills/keylink/internal/decorator"
	"github.com/dshills/keylink/internal/model"
)

// Plugin is an editor feature.
type Plugin interface {
	// Name returns the unique plugin name.
	Name() string

	// Init attaches the plugin to the editor.
	Init(e *Editor) error

	// Destroy detaches everything Init attached.
	Destroy()
}

// Requirer is implemented by plugins that need other plugins loaded first.
type Requirer interface {
	Requires() []string
}

// Editor hosts plugins on one document.
// It is not safe for concurrent use.
type Editor struct {
	id         uuid.UUID
	doc        *model.Document
	commands   *command.Registry
	decorators *decorator.Registry
	logger     *slog.Logger

	plugins   map[string]*loaded
	loadOrder []string
	destroyed bool
}

type loaded struct {
	plugin Plugin
	state  State
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the base logger. Records carry the editor session ID.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDecorators sets the link decorator registry.
func WithDecorators(r *decorator.Registry) Option {
	return func(e *Editor) {
		if r != nil {
			e.decorators = r
		}
	}
}

// WithSessionID sets the session ID instead of generating one.
func WithSessionID(id uuid.UUID) Option {
	return func(e *Editor) {
		e.id = id
	}
}

// NewEditor creates an editor for doc.
func NewEditor(doc *model.Document, opts ...Option) *Editor {
	e := &Editor{
		id:         uuid.New(),
		doc:        doc,
		commands:   command.NewRegistry(),
		decorators: decorator.NewRegistry(),
		logger:     slog.New(slog.DiscardHandler),
		plugins:    make(map[string]*loaded),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("session", e.id.String())
	return e
}

// ID returns the session ID.
func (e *Editor) ID() uuid.UUID {
	return e.id
}

// Document returns the hosted document.
func (e *Editor) Document() *model.Document {
	return e.doc
}

// Commands returns the command registry.
func (e *Editor) Commands() *command.Registry {
	return e.commands
}

// Decorators returns the link decorator registry.
func (e *Editor) Decorators() *decorator.Registry {
	return e.decorators
}

// Logger returns the session logger.
func (e *Editor) Logger() *slog.Logger {
	return e.logger
}

// Use initialises p. A plugin whose Init fails is kept in StateError and
// the error is returned.
func (e *Editor) Use(p Plugin) error {
	if e.destroyed {
		return ErrEditorDestroyed
	}
	name := p.Name()
	if _, exists := e.plugins[name]; exists {
		return fmt.Errorf("plugin %q: %w", name, ErrAlreadyLoaded)
	}
	if r, ok := p.(Requirer); ok {
		for _, dep := range r.Requires() {
			if e.State(dep) != StateActive {
				return fmt.Errorf("plugin %q requires %q: %w", name, dep, ErrDependencyNotFound)
			}
		}
	}

	entry := &loaded{plugin: p}
	e.plugins[name] = entry
	e.loadOrder = append(e.loadOrder, name)

	if err := p.Init(e); err != nil {
		entry.state = StateError
		e.logger.Error("plugin init failed", "plugin", name, "error", err)
		return fmt.Errorf("init plugin %q: %w", name, err)
	}
	entry.state = StateActive
	e.logger.Debug("plugin active", "plugin", name)
	return nil
}

// Plugin returns the plugin registered under name.
func (e *Editor) Plugin(name string) (Plugin, bool) {
	entry, ok := e.plugins[name]
	if !ok {
		return nil, false
	}
	return entry.plugin, true
}

// State returns the lifecycle state of the named plugin.
func (e *Editor) State(name string) State {
	entry, ok := e.plugins[name]
	if !ok {
		return StateUnloaded
	}
	return entry.state
}

// Plugins returns plugin names in load order.
func (e *Editor) Plugins() []string {
	out := make([]string, len(e.loadOrder))
	copy(out, e.loadOrder)
	return out
}

// Execute runs a registered command.
func (e *Editor) Execute(name string, args ...any) error {
	if e.destroyed {
		return ErrEditorDestroyed
	}
	return e.commands.Execute(name, args...)
}

// Destroy destroys active plugins in reverse load order. It is safe to call
// more than once.
func (e *Editor) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	for i := len(e.loadOrder) - 1; i >= 0; i-- {
		entry := e.plugins[e.loadOrder[i]]
		if entry.state != StateActive {
			continue
		}
		entry.plugin.Destroy()
		entry.state = StateDestroyed
	}
}
