package main

import (
	"fmt"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samdwyer/ghostlygrid/internal/config"
	"github.com/samdwyer/ghostlygrid/internal/env"
	"github.com/samdwyer/ghostlygrid/internal/grid"
	"github.com/samdwyer/ghostlygrid/internal/logging"
)

func newFrameCmd(flags *envFlags) *cobra.Command {
	var (
		out        string
		actions    string
		windowSize int
	)
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Reset, apply actions and write the rgb_array frame as PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := parseActions(actions)
			if err != nil {
				return err
			}
			cfg, err := flags.resolve(cmd, config.RenderRGBArray)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("window") {
				cfg.WindowSize = windowSize
			}
			g, err := env.New(cfg)
			if err != nil {
				return err
			}
			defer g.Close()

			if _, _, err := g.Reset(); err != nil {
				return err
			}
			for _, a := range steps {
				res, err := g.Step(a)
				if err != nil {
					return err
				}
				if res.Done {
					break
				}
			}

			frame, err := g.Render()
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer f.Close()
			if err := png.Encode(f, frame.Image()); err != nil {
				return fmt.Errorf("encode %s: %w", out, err)
			}

			obs, _ := g.Observation()
			logger := logging.Logger("frame")
			logger.Info().
				Str("path", out).
				Int("window", frame.Size).
				Stringer("agent", obs.Agent).
				Stringer("phase", g.Phase()).
				Msg("frame written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "frame.png", "output PNG path")
	cmd.Flags().StringVar(&actions, "actions", "", "comma separated actions to apply after reset (0=right 1=down 2=left 3=up)")
	cmd.Flags().IntVar(&windowSize, "window", config.DefaultWindowSize, "frame side length in pixels")
	return cmd
}

func parseActions(raw string) ([]grid.Action, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	actions := make([]grid.Action, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse action %q: %w", p, err)
		}
		a := grid.Action(v)
		if !a.Valid() {
			return nil, fmt.Errorf("action %d is not in 0-3", v)
		}
		actions = append(actions, a)
	}
	return actions, nil
}
