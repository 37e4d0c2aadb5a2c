package config

import (
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Size != DefaultSize {
		t.Fatalf("unexpected size: %d", cfg.Size)
	}
	if cfg.MinSize != DefaultMinSize {
		t.Fatalf("unexpected min size: %d", cfg.MinSize)
	}
	if cfg.RenderMode != RenderNone {
		t.Fatalf("unexpected render mode: %q", cfg.RenderMode)
	}
	if cfg.Seed != 0 {
		t.Fatalf("unexpected seed: %d", cfg.Seed)
	}
}

func TestLoadFileDefaultsAndOverrides(t *testing.T) {
	cfg, err := LoadFile(filepath.Join("testdata", "env.toml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Size != 8 {
		t.Fatalf("unexpected size: %d", cfg.Size)
	}
	if cfg.GhostMargin != 3 {
		t.Fatalf("unexpected ghost margin: %d", cfg.GhostMargin)
	}
	if cfg.RenderMode != RenderRGBArray {
		t.Fatalf("unexpected render mode: %q", cfg.RenderMode)
	}
	if cfg.Seed != 42 {
		t.Fatalf("unexpected seed: %d", cfg.Seed)
	}
	if cfg.MinSize != DefaultMinSize {
		t.Fatalf("min size should keep default, got %d", cfg.MinSize)
	}
	if cfg.WindowSize != DefaultWindowSize {
		t.Fatalf("window size should keep default, got %d", cfg.WindowSize)
	}
	if cfg.RenderFPS != DefaultRenderFPS {
		t.Fatalf("render fps should keep default, got %d", cfg.RenderFPS)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join("testdata", "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDecodeExplicitZero(t *testing.T) {
	cfg, err := Decode("ghost_margin = 0\nrender_fps = 0\n")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.GhostMargin != 0 {
		t.Fatalf("explicit zero ghost margin not applied: %d", cfg.GhostMargin)
	}
	if cfg.RenderFPS != 0 {
		t.Fatalf("explicit zero fps not applied: %d", cfg.RenderFPS)
	}
	if cfg.Size != DefaultSize {
		t.Fatalf("size should keep default, got %d", cfg.Size)
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, err := Decode("size = \"big\""); err == nil {
		t.Fatalf("expected type error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvSize, "10")
	t.Setenv(EnvSeed, "7")
	t.Setenv(EnvRenderMode, "human")
	t.Setenv(EnvMinSize, " ")

	cfg := Default()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg.Size != 10 {
		t.Fatalf("unexpected size: %d", cfg.Size)
	}
	if cfg.Seed != 7 {
		t.Fatalf("unexpected seed: %d", cfg.Seed)
	}
	if cfg.RenderMode != RenderHuman {
		t.Fatalf("unexpected render mode: %q", cfg.RenderMode)
	}
	if cfg.MinSize != DefaultMinSize {
		t.Fatalf("blank variable should be ignored, got %d", cfg.MinSize)
	}
}

func TestApplyEnvMalformed(t *testing.T) {
	t.Setenv(EnvWindowSize, "wide")
	cfg := Default()
	if err := ApplyEnv(&cfg); err == nil {
		t.Fatalf("expected parse error")
	}
}
