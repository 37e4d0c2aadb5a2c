package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/samdwyer/ghostlygrid/internal/config"
	"github.com/samdwyer/ghostlygrid/internal/env"
	"github.com/samdwyer/ghostlygrid/internal/grid"
)

func newPlayCmd(flags *envFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Drive the agent with the arrow keys in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd, config.RenderHuman)
			if err != nil {
				return err
			}
			g, err := env.New(cfg)
			if err != nil {
				return err
			}
			defer g.Close()

			if _, _, err := g.Reset(); err != nil {
				return err
			}
			return playLoop(g)
		},
	}
}

// playLoop handles input until the player quits.
func playLoop(g *env.GhostlyGrid) error {
	screen := g.Window().Screen()
	if screen == nil {
		return fmt.Errorf("play: window did not open")
	}
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			quit, err := handleKey(g, ev.Key(), ev.Rune())
			if err != nil || quit {
				return err
			}
		case nil:
			return nil
		}
	}
}

// handleKey maps a key press to an environment call. It reports whether the
// player asked to quit.
func handleKey(g *env.GhostlyGrid, key tcell.Key, r rune) (bool, error) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyRight:
		return false, stepIfActive(g, grid.ActionRight)
	case tcell.KeyDown:
		return false, stepIfActive(g, grid.ActionDown)
	case tcell.KeyLeft:
		return false, stepIfActive(g, grid.ActionLeft)
	case tcell.KeyUp:
		return false, stepIfActive(g, grid.ActionUp)
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return true, nil
		case 'r', 'R':
			_, _, err := g.Reset()
			return false, err
		}
	}
	return false, nil
}

// stepIfActive ignores moves once the episode has ended; the player resets with 'r'.
func stepIfActive(g *env.GhostlyGrid, a grid.Action) error {
	if g.Phase() != env.PhaseActive {
		return nil
	}
	_, err := g.Step(a)
	return err
}
