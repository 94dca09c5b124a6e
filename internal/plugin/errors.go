package plugin

import "errors"

// Plugin errors.
var (
	// ErrAlreadyLoaded is returned when a plugin name is used twice.
	ErrAlreadyLoaded = errors.New("plugin is already loaded")

	// ErrDependencyNotFound is returned when a required plugin is missing.
	ErrDependencyNotFound = errors.New("plugin dependency not found")

	// ErrEditorDestroyed is returned when using a destroyed editor.
	ErrEditorDestroyed = errors.New("editor is destroyed")
)
