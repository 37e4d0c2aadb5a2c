package main

import (
	"github.com/spf13/cobra"

	"github.com/samdwyer/ghostlygrid/internal/config"
)

// envFlags are the persistent flags shared by every command that builds an
// environment.
type envFlags struct {
	configPath  string
	id          string
	size        int
	minSize     int
	ghostMargin int
	seed        int64
	renderFPS   int
}

func (f *envFlags) bind(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "TOML file with environment settings")
	pf.StringVar(&f.id, "env", "ghostly_grid/GhostlyGridV0", "registered environment id")
	pf.IntVar(&f.size, "size", config.DefaultSize, "grid side length")
	pf.IntVar(&f.minSize, "min-size", config.DefaultMinSize, "smallest accepted grid size")
	pf.IntVar(&f.ghostMargin, "ghost-margin", config.DefaultGhostMargin, "lower bound of the ghost spawn square")
	pf.Int64Var(&f.seed, "seed", 0, "deterministic seed (0 for random)")
	pf.IntVar(&f.renderFPS, "fps", config.DefaultRenderFPS, "human render frame rate (0 disables pacing)")
}

// resolve layers defaults, the config file, GHOSTLYGRID_* variables and
// explicitly set flags, in that order.
func (f *envFlags) resolve(cmd *cobra.Command, renderMode string) (config.Env, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.LoadFile(f.configPath)
		if err != nil {
			return config.Env{}, err
		}
		cfg = loaded
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return config.Env{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = f.size
	}
	if flags.Changed("min-size") {
		cfg.MinSize = f.minSize
	}
	if flags.Changed("ghost-margin") {
		cfg.GhostMargin = f.ghostMargin
	}
	if flags.Changed("seed") {
		cfg.Seed = f.seed
	}
	if flags.Changed("fps") {
		cfg.RenderFPS = f.renderFPS
	}
	if renderMode != "" {
		cfg.RenderMode = renderMode
	}
	return cfg, nil
}
