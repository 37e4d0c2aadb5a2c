// Package env implements the Ghostly Grid environment: an agent walks from the
// top-left corner of a square grid toward the door in the bottom-right corner
// while two ghosts wander at random. A ghost landing on the agent ends the
// episode with reward -1; reaching the door ends it with reward +1.
package env

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/samdwyer/ghostlygrid/data"
	"github.com/samdwyer/ghostlygrid/internal/config"
	"github.com/samdwyer/ghostlygrid/internal/grid"
	"github.com/samdwyer/ghostlygrid/internal/logging"
	"github.com/samdwyer/ghostlygrid/internal/registry"
	"github.com/samdwyer/ghostlygrid/internal/render"
)

// ID is the identifier the environment is registered under.
const ID = "ghostly_grid/GhostlyGridV0"

// MaxEpisodeSteps is the step cap suggested to drivers through the registry.
const MaxEpisodeSteps = 200

func init() {
	registry.MustRegister(registry.Spec{
		ID: ID,
		Factory: func(cfg config.Env) (registry.Env, error) {
			g, err := New(cfg)
			if err != nil {
				return nil, err
			}
			return g, nil
		},
		MaxEpisodeSteps: MaxEpisodeSteps,
	})
}

// Metadata describes rendering capabilities.
type Metadata struct {
	RenderModes []render.Mode
	// RenderFPS is the configured human frame rate. Zero means frames are
	// not paced; config.Default sets it to config.DefaultRenderFPS.
	RenderFPS int
}

// GhostlyGrid holds the entire simulation state for one environment instance.
// It is owned by a single driver and is not safe for concurrent use.
type GhostlyGrid struct {
	size       int
	mode       render.Mode
	windowSize int
	fps        int

	agentRegion  grid.Region
	targetRegion grid.Region
	ghostRegion  grid.Region
	directions   [grid.NumActions]grid.Position

	rng       *rand.Rand
	ghostStep func() grid.Position

	state   grid.Observation
	phase   Phase
	outcome grid.Outcome
	steps   int

	opener  render.Opener
	window  *render.Window
	palette *data.Palette
	log     zerolog.Logger
}

// New validates cfg and builds an environment. No positions are sampled
// until Reset. Zero Size, MinSize and WindowSize take their defaults; a zero
// RenderFPS is kept and disables frame pacing.
func New(cfg config.Env, opts ...Option) (*GhostlyGrid, error) {
	if cfg.Size == 0 {
		cfg.Size = config.DefaultSize
	}
	if cfg.MinSize == 0 {
		cfg.MinSize = config.DefaultMinSize
	}
	if cfg.WindowSize == 0 {
		cfg.WindowSize = config.DefaultWindowSize
	}

	if cfg.Size < cfg.MinSize {
		return nil, fmt.Errorf("%w: size %d is below the minimum %d", ErrConfiguration, cfg.Size, cfg.MinSize)
	}
	if cfg.GhostMargin < 0 || cfg.GhostMargin > cfg.Size-1 {
		return nil, fmt.Errorf("%w: ghost margin %d outside [0, %d]", ErrConfiguration, cfg.GhostMargin, cfg.Size-1)
	}
	if cfg.WindowSize < 0 {
		return nil, fmt.Errorf("%w: window size %d", ErrConfiguration, cfg.WindowSize)
	}
	if cfg.RenderFPS < 0 {
		return nil, fmt.Errorf("%w: render fps %d", ErrConfiguration, cfg.RenderFPS)
	}
	mode, err := render.ParseMode(cfg.RenderMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	g := &GhostlyGrid{
		size:         cfg.Size,
		mode:         mode,
		windowSize:   cfg.WindowSize,
		fps:          cfg.RenderFPS,
		agentRegion:  grid.Region{Low: 0, High: 0},
		targetRegion: grid.Region{Low: cfg.Size - 1, High: cfg.Size - 1},
		ghostRegion:  grid.Region{Low: cfg.GhostMargin, High: cfg.Size - 1},
		directions:   grid.Directions(),
		phase:        PhaseAwaitingReset,
		log:          logging.Logger("env"),
	}
	g.ghostStep = g.randomDirection

	if mode != render.ModeNone {
		palette, err := data.LoadPalette()
		if err != nil {
			return nil, fmt.Errorf("load palette: %w", err)
		}
		g.palette = palette
	}

	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}

	return g, nil
}

// Seed replaces the random source with one seeded by seed.
func (g *GhostlyGrid) Seed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Reset starts a new episode. The agent returns to (0, 0), the door is placed
// at (size-1, size-1) and each ghost spawns uniformly inside the ghost region.
// In human mode a frame is drawn; a drawing failure is returned after the
// state has been reset.
func (g *GhostlyGrid) Reset() (grid.Observation, grid.Info, error) {
	g.state = grid.Observation{
		Agent:  g.sample(g.agentRegion),
		Ghost1: g.sample(g.ghostRegion),
		Ghost2: g.sample(g.ghostRegion),
		Target: g.sample(g.targetRegion),
	}
	g.phase = PhaseActive
	g.outcome = grid.OutcomeRunning
	g.steps = 0

	g.log.Debug().
		Stringer("ghost1", g.state.Ghost1).
		Stringer("ghost2", g.state.Ghost2).
		Msg("reset")

	if g.mode == render.ModeHuman {
		if err := g.drawWindow(); err != nil {
			return g.state, grid.Info{}, err
		}
	}
	return g.state, grid.Info{}, nil
}

// Step moves the agent by action and each ghost by an independent uniformly
// random direction, clamps every coordinate to the board, then applies the
// reward rule. Nothing is mutated when validation fails.
func (g *GhostlyGrid) Step(action grid.Action) (grid.StepResult, error) {
	switch g.phase {
	case PhaseAwaitingReset:
		return grid.StepResult{}, ErrNotReset
	case PhaseDone:
		return grid.StepResult{}, ErrEpisodeDone
	}
	if !action.Valid() {
		return grid.StepResult{}, fmt.Errorf("%w: %d", ErrInvalidAction, int(action))
	}

	agentDir := g.directions[action]
	ghost1Dir := g.ghostStep()
	ghost2Dir := g.ghostStep()

	g.state.Agent = g.state.Agent.Add(agentDir).Clamp(g.size)
	g.state.Ghost1 = g.state.Ghost1.Add(ghost1Dir).Clamp(g.size)
	g.state.Ghost2 = g.state.Ghost2.Add(ghost2Dir).Clamp(g.size)
	g.steps++

	reward, outcome := grid.Judge(g.state)
	done := outcome != grid.OutcomeRunning
	g.outcome = outcome
	if done {
		g.phase = PhaseDone
		g.log.Debug().
			Int("steps", g.steps).
			Int("reward", int(reward)).
			Stringer("outcome", outcome).
			Msg("episode finished")
	}

	result := grid.StepResult{
		Observation: g.state,
		Reward:      reward,
		Done:        done,
		Outcome:     outcome,
		Info:        grid.Info{},
	}

	if g.mode == render.ModeHuman {
		if err := g.drawWindow(); err != nil {
			return result, err
		}
	}
	return result, nil
}

// Observation returns a copy of the current positions.
func (g *GhostlyGrid) Observation() (grid.Observation, error) {
	if g.phase == PhaseAwaitingReset {
		return grid.Observation{}, ErrNotReset
	}
	return g.state, nil
}

// Render draws the current state according to the render mode. Only
// rgb_array mode returns a frame; human mode draws to the window and returns
// nil; none does nothing.
func (g *GhostlyGrid) Render() (*render.Frame, error) {
	if g.phase == PhaseAwaitingReset {
		return nil, ErrNotReset
	}
	switch g.mode {
	case render.ModeHuman:
		return nil, g.drawWindow()
	case render.ModeRGBArray:
		return render.Rasterize(g.windowSize, g.size, g.state, g.palette), nil
	default:
		return nil, nil
	}
}

// Close releases the window if one was opened. It is safe to call at any time
// and more than once.
func (g *GhostlyGrid) Close() error {
	if g.window == nil {
		return nil
	}
	err := g.window.Close()
	g.window = nil
	return err
}

// Window returns the human-mode window, or nil before the first human frame.
func (g *GhostlyGrid) Window() *render.Window {
	return g.window
}

// Metadata reports the supported render modes and frame rate.
func (g *GhostlyGrid) Metadata() Metadata {
	modes := make([]render.Mode, len(render.Modes))
	copy(modes, render.Modes)
	return Metadata{RenderModes: modes, RenderFPS: g.fps}
}

// Size returns the board side length.
func (g *GhostlyGrid) Size() int {
	return g.size
}

// Mode returns the render mode.
func (g *GhostlyGrid) Mode() render.Mode {
	return g.mode
}

// Phase returns the lifecycle phase.
func (g *GhostlyGrid) Phase() Phase {
	return g.phase
}

// Steps returns the number of steps taken in the current episode.
func (g *GhostlyGrid) Steps() int {
	return g.steps
}

// GhostRegion returns the square ghosts spawn in.
func (g *GhostlyGrid) GhostRegion() grid.Region {
	return g.ghostRegion
}

func (g *GhostlyGrid) sample(r grid.Region) grid.Position {
	span := r.High - r.Low + 1
	return grid.Position{X: r.Low + g.rng.Intn(span), Y: r.Low + g.rng.Intn(span)}
}

func (g *GhostlyGrid) randomDirection() grid.Position {
	return g.directions[g.rng.Intn(grid.NumActions)]
}

func (g *GhostlyGrid) drawWindow() error {
	if g.window == nil {
		g.window = render.NewWindow(g.opener, g.fps, g.palette)
	}
	status := fmt.Sprintf("step %d  %s", g.steps, g.outcome)
	if err := g.window.Draw(g.size, g.state, status); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	return nil
}
