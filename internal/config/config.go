// Package config holds environment configuration and the loaders that fill it
// from defaults, TOML files and environment variables.
package config

// Defaults for a freshly constructed environment.
const (
	DefaultSize        = 6
	DefaultMinSize     = 6
	DefaultGhostMargin = 2
	DefaultWindowSize  = 512
	DefaultRenderFPS   = 4
)

// Recognised render modes. An empty mode means no rendering.
const (
	RenderNone     = "none"
	RenderHuman    = "human"
	RenderRGBArray = "rgb_array"
)

// Env holds the options an environment is built from.
type Env struct {
	// Size is the side length of the square grid.
	Size int
	// MinSize is the smallest Size accepted at construction.
	MinSize int
	// GhostMargin is the lower bound of the ghost spawn square [GhostMargin, Size-1].
	GhostMargin int
	// RenderMode is one of "", "none", "human" or "rgb_array".
	RenderMode string
	// WindowSize is the pixel side length of rendered frames.
	WindowSize int
	// RenderFPS paces human rendering. Zero disables pacing.
	RenderFPS int
	// Seed for random number generation. Used for reproducible episodes.
	// A seed of 0 means a random seed will be generated.
	Seed int64
}

// Default returns the default environment configuration.
func Default() Env {
	return Env{
		Size:        DefaultSize,
		MinSize:     DefaultMinSize,
		GhostMargin: DefaultGhostMargin,
		RenderMode:  RenderNone,
		WindowSize:  DefaultWindowSize,
		RenderFPS:   DefaultRenderFPS,
	}
}
