package env

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/samdwyer/ghostlygrid/internal/render"
)

// Option customises a GhostlyGrid at construction.
type Option func(*GhostlyGrid)

// WithRand sets the random source used for spawning and ghost moves.
// It takes precedence over the configured seed.
func WithRand(rng *rand.Rand) Option {
	return func(g *GhostlyGrid) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithScreen sets how the human-mode window obtains its screen.
func WithScreen(open render.Opener) Option {
	return func(g *GhostlyGrid) {
		g.opener = open
	}
}

// WithLogger replaces the component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *GhostlyGrid) {
		g.log = logger
	}
}
