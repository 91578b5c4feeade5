package sheet

// State is the sheet's gesture/animation state.
type State int

const (
	StateIdle     State = iota // Resting on the committed position
	StateDragging              // Live position pinned to the pointer
	StateSettling              // Springing toward the committed position
)

// String returns a human-readable name for the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDragging:
		return "Dragging"
	case StateSettling:
		return "Settling"
	default:
		return "Unknown"
	}
}

// Change describes a new committed snap point.
type Change struct {
	Index    int
	Hidden   bool
	Position float64
}
