package env

// Phase is the environment's position in the episode lifecycle.
type Phase int

const (
	// PhaseAwaitingReset is the state before the first Reset.
	PhaseAwaitingReset Phase = iota
	// PhaseActive accepts steps.
	PhaseActive
	// PhaseDone follows a terminal step. Reset starts a new episode.
	PhaseDone
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingReset:
		return "awaiting_reset"
	case PhaseActive:
		return "active"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}
