package grid

import "fmt"

// Action is one of the four discrete moves available to the agent.
type Action int

const (
	// ActionRight moves one cell along +x.
	ActionRight Action = iota
	// ActionDown moves one cell along +y.
	ActionDown
	// ActionLeft moves one cell along -x.
	ActionLeft
	// ActionUp moves one cell along -y.
	ActionUp
)

// NumActions is the size of the discrete action space.
const NumActions = 4

// directions maps each action to its unit move.
var directions = [NumActions]Position{
	ActionRight: {X: 1, Y: 0},
	ActionDown:  {X: 0, Y: 1},
	ActionLeft:  {X: -1, Y: 0},
	ActionUp:    {X: 0, Y: -1},
}

// Valid returns true if the action is in {0, 1, 2, 3}.
func (a Action) Valid() bool {
	return a >= 0 && a < NumActions
}

// Direction returns the unit move for the action.
// Callers must check Valid first.
func (a Action) Direction() Position {
	return directions[a]
}

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionRight:
		return "right"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionUp:
		return "up"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Directions returns a copy of the action to direction table.
func Directions() [NumActions]Position {
	return directions
}
