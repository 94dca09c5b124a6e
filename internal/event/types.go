package event

// Priority determines callback execution order.
// Lower values run first.
type Priority int

const (
	// PriorityCritical is for model invariants that must run first.
	PriorityCritical Priority = 0

	// PriorityHigh is for caret handling.
	PriorityHigh Priority = 100

	// PriorityNormal is the default priority.
	PriorityNormal Priority = 200

	// PriorityLow is for command refresh and logging callbacks that run last.
	PriorityLow Priority = 300
)

// String returns a human-readable name for well-known priorities.
func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityNormal:
		return "normal"
	case PriorityLow:
		return "low"
	default:
		return "custom"
	}
}
