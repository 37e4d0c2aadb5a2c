// Package episode drives environments through complete episodes.
package episode

import (
	"math/rand"

	"github.com/samdwyer/ghostlygrid/internal/grid"
)

// Policy chooses the agent's next action from an observation.
type Policy interface {
	Act(obs grid.Observation) grid.Action
}

// RandomPolicy picks uniformly among the four actions.
type RandomPolicy struct {
	rng *rand.Rand
}

// NewRandomPolicy creates a random policy drawing from rng.
func NewRandomPolicy(rng *rand.Rand) *RandomPolicy {
	return &RandomPolicy{rng: rng}
}

func (p *RandomPolicy) Act(grid.Observation) grid.Action {
	return grid.Action(p.rng.Intn(grid.NumActions))
}

// ScriptedPolicy replays a fixed action list, wrapping around at the end.
type ScriptedPolicy struct {
	actions []grid.Action
	next    int
}

// NewScriptedPolicy creates a policy cycling through actions.
// An empty list always moves right.
func NewScriptedPolicy(actions ...grid.Action) *ScriptedPolicy {
	if len(actions) == 0 {
		actions = []grid.Action{grid.ActionRight}
	}
	copied := make([]grid.Action, len(actions))
	copy(copied, actions)
	return &ScriptedPolicy{actions: copied}
}

func (p *ScriptedPolicy) Act(grid.Observation) grid.Action {
	a := p.actions[p.next]
	p.next = (p.next + 1) % len(p.actions)
	return a
}

// Reset rewinds the script to its first action.
func (p *ScriptedPolicy) Reset() {
	p.next = 0
}
