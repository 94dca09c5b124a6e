package command

import (
	"fmt"
	"sort"
)

// Registry maps command names to commands.
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Add registers cmd under its name.
func (r *Registry) Add(cmd Command) error {
	name := cmd.Name()
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCommand, name)
	}
	r.commands[name] = cmd
	return nil
}

// Get returns the command registered under name.
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Execute runs the named command.
func (r *Registry) Execute(name string, args ...any) error {
	cmd, ok := r.commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if err := cmd.Execute(args...); err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}
	return nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Remove unregisters name and reports whether it was registered.
func (r *Registry) Remove(name string) bool {
	if _, ok := r.commands[name]; !ok {
		return false
	}
	delete(r.commands, name)
	return true
}
