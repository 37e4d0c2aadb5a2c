package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type fileConfig struct {
	Size        int    `toml:"size"`
	MinSize     int    `toml:"min_size"`
	GhostMargin int    `toml:"ghost_margin"`
	RenderMode  string `toml:"render_mode"`
	WindowSize  int    `toml:"window_size"`
	RenderFPS   int    `toml:"render_fps"`
	Seed        int64  `toml:"seed"`
}

// LoadFile reads a TOML file over the defaults. Keys absent from the file
// keep their default values.
func LoadFile(path string) (Env, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Env{}, fmt.Errorf("load env config: %w", err)
	}
	return merge(Default(), raw, meta), nil
}

// Decode parses TOML text over the defaults.
func Decode(text string) (Env, error) {
	var raw fileConfig
	meta, err := toml.Decode(text, &raw)
	if err != nil {
		return Env{}, fmt.Errorf("decode env config: %w", err)
	}
	return merge(Default(), raw, meta), nil
}

func merge(cfg Env, raw fileConfig, meta toml.MetaData) Env {
	if meta.IsDefined("size") {
		cfg.Size = raw.Size
	}
	if meta.IsDefined("min_size") {
		cfg.MinSize = raw.MinSize
	}
	if meta.IsDefined("ghost_margin") {
		cfg.GhostMargin = raw.GhostMargin
	}
	if meta.IsDefined("render_mode") {
		cfg.RenderMode = strings.TrimSpace(raw.RenderMode)
	}
	if meta.IsDefined("window_size") {
		cfg.WindowSize = raw.WindowSize
	}
	if meta.IsDefined("render_fps") {
		cfg.RenderFPS = raw.RenderFPS
	}
	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
	}
	return cfg
}
