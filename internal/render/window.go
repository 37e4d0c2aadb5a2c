package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/ghostlygrid/data"
	"github.com/samdwyer/ghostlygrid/internal/grid"
)

// cellWidth is the number of terminal columns per grid cell, which keeps the
// board roughly square on a typical terminal font.
const cellWidth = 2

// Opener creates the screen a window draws to.
type Opener func() (*Screen, error)

// Window is a lazily opened terminal display. The screen is created on the
// first Draw and released by Close.
type Window struct {
	open    Opener
	screen  *Screen
	clock   *Clock
	palette *data.Palette
}

// NewWindow creates a window that opens its screen with open and paces
// frames to fps. A nil opener uses the real terminal.
func NewWindow(open Opener, fps int, palette *data.Palette) *Window {
	if open == nil {
		open = NewScreen
	}
	return &Window{
		open:    open,
		clock:   NewClock(fps),
		palette: palette,
	}
}

// Open returns the window's screen, creating it on first use.
func (w *Window) Open() (*Screen, error) {
	if w.screen != nil {
		return w.screen, nil
	}
	s, err := w.open()
	if err != nil {
		return nil, err
	}
	w.screen = s
	return s, nil
}

// Screen returns the open screen, or nil if the window has not been drawn yet.
func (w *Window) Screen() *Screen {
	return w.screen
}

// Draw renders the board for obs and a status line beneath it.
func (w *Window) Draw(size int, obs grid.Observation, status string) error {
	s, err := w.Open()
	if err != nil {
		return err
	}
	s.Clear()

	floor := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			s.SetContent(x*cellWidth, y, '.', floor)
		}
	}

	// Ghosts draw last so a catch shows the ghost on the agent's cell.
	w.drawEntity(s, data.EntityTarget, obs.Target)
	w.drawEntity(s, data.EntityAgent, obs.Agent)
	w.drawEntity(s, data.EntityGhost1, obs.Ghost1)
	w.drawEntity(s, data.EntityGhost2, obs.Ghost2)

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range status {
		s.SetContent(i, size+1, ch, style)
	}

	s.Show()
	w.clock.Tick()
	return nil
}

func (w *Window) drawEntity(s *Screen, id string, p grid.Position) {
	def := w.palette.Get(id)
	if def == nil {
		return
	}
	style := tcell.StyleDefault.Foreground(def.TCellColor()).Bold(true)
	s.SetContent(p.X*cellWidth, p.Y, def.GlyphRune(), style)
}

// Close releases the screen if one was opened. It is safe to call repeatedly.
func (w *Window) Close() error {
	if w.screen == nil {
		return nil
	}
	w.screen.Close()
	w.screen = nil
	return nil
}
