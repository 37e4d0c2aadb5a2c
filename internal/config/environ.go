package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvSize        = "GHOSTLYGRID_SIZE"
	EnvMinSize     = "GHOSTLYGRID_MIN_SIZE"
	EnvGhostMargin = "GHOSTLYGRID_GHOST_MARGIN"
	EnvRenderMode  = "GHOSTLYGRID_RENDER_MODE"
	EnvWindowSize  = "GHOSTLYGRID_WINDOW_SIZE"
	EnvRenderFPS   = "GHOSTLYGRID_RENDER_FPS"
	EnvSeed        = "GHOSTLYGRID_SEED"
)

// ApplyEnv overlays GHOSTLYGRID_* environment variables onto cfg.
// Unset or blank variables are ignored; malformed numbers are errors.
func ApplyEnv(cfg *Env) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvSize, &cfg.Size},
		{EnvMinSize, &cfg.MinSize},
		{EnvGhostMargin, &cfg.GhostMargin},
		{EnvWindowSize, &cfg.WindowSize},
		{EnvRenderFPS, &cfg.RenderFPS},
	}
	for _, f := range ints {
		raw := strings.TrimSpace(os.Getenv(f.key))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("parse %s: %w", f.key, err)
		}
		*f.dst = v
	}

	if raw := strings.TrimSpace(os.Getenv(EnvSeed)); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		cfg.Seed = v
	}

	if raw := strings.TrimSpace(os.Getenv(EnvRenderMode)); raw != "" {
		cfg.RenderMode = raw
	}
	return nil
}
