package command

import "errors"

// Command errors.
var (
	// ErrDisabled is returned when executing a disabled command.
	ErrDisabled = errors.New("command: disabled")

	// ErrInvalidArgs is returned when Execute receives unexpected arguments.
	ErrInvalidArgs = errors.New("command: invalid arguments")

	// ErrUnknownCommand is returned for an unregistered command name.
	ErrUnknownCommand = errors.New("command: unknown command")

	// ErrDuplicateCommand is returned when a name is registered twice.
	ErrDuplicateCommand = errors.New("command: duplicate command")
)
