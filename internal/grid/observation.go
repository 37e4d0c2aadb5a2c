package grid

// Observation is a snapshot of every entity position.
// It is a value type, so a caller holding one never aliases environment state.
type Observation struct {
	Agent  Position `json:"agent"`
	Ghost1 Position `json:"ghost1"`
	Ghost2 Position `json:"ghost2"`
	Target Position `json:"target"`
}

// Positions returns the four positions in a fixed order: agent, ghost1, ghost2, target.
func (o Observation) Positions() [4]Position {
	return [4]Position{o.Agent, o.Ghost1, o.Ghost2, o.Target}
}

// Caught returns true if either ghost shares the agent's cell.
func (o Observation) Caught() bool {
	return o.Agent == o.Ghost1 || o.Agent == o.Ghost2
}

// Escaped returns true if the agent stands on the target cell.
func (o Observation) Escaped() bool {
	return o.Agent == o.Target
}

// Info carries auxiliary diagnostic data. It is always empty today.
type Info map[string]any

// Reward is the per-step scalar reward.
type Reward int

const (
	// RewardCaught is paid when a ghost shares the agent's cell.
	RewardCaught Reward = -1
	// RewardNone is paid for every non-terminal step.
	RewardNone Reward = 0
	// RewardEscaped is paid when the agent reaches the door.
	RewardEscaped Reward = 1
)

// Outcome describes how a step left the episode.
type Outcome int

const (
	// OutcomeRunning means the episode continues.
	OutcomeRunning Outcome = iota
	// OutcomeCaught means a ghost reached the agent.
	OutcomeCaught
	// OutcomeEscaped means the agent reached the target.
	OutcomeEscaped
	// OutcomeTruncated means a driver stopped the episode before it ended.
	OutcomeTruncated
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeCaught:
		return "caught"
	case OutcomeEscaped:
		return "escaped"
	case OutcomeTruncated:
		return "truncated"
	default:
		return "unknown"
	}
}

// Judge applies the reward rule to a post-move observation.
// A catch takes priority over reaching the target.
func Judge(o Observation) (Reward, Outcome) {
	if o.Caught() {
		return RewardCaught, OutcomeCaught
	}
	if o.Escaped() {
		return RewardEscaped, OutcomeEscaped
	}
	return RewardNone, OutcomeRunning
}

// StepResult is everything a single step returns.
type StepResult struct {
	Observation Observation `json:"observation"`
	Reward      Reward      `json:"reward"`
	Done        bool        `json:"done"`
	Outcome     Outcome     `json:"-"`
	Info        Info        `json:"info"`
}
