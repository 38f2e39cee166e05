package layer

// Standard priority levels for configuration layers.
// Higher values override lower values during lookup.
const (
	// PriorityDefault is the lowest priority, for shipped defaults.
	PriorityDefault = 0

	// PriorityUser is for the per-user overrides.
	PriorityUser = 100
)

// DefaultPriority returns the default priority for a given source.
func DefaultPriority(source Source) int {
	switch source {
	case SourceUser:
		return PriorityUser
	default:
		return PriorityDefault
	}
}
