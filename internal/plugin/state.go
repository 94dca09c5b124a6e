package plugin

// State is the lifecycle state of a plugin.
type State int

// Plugin states.
const (
	// StateUnloaded - plugin is not known to the editor.
	StateUnloaded State = iota

	// StateActive - Init succeeded.
	StateActive

	// StateError - Init failed.
	StateError

	// StateDestroyed - Destroy has run.
	StateDestroyed
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateActive:
		return "active"
	case StateError:
		return "error"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}
