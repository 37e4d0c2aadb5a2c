package data

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Entity identifiers used as keys in entities.json.
const (
	EntityAgent  = "agent"
	EntityGhost1 = "ghost1"
	EntityGhost2 = "ghost2"
	EntityTarget = "target"
)

// EntityDef describes how one entity is drawn.
type EntityDef struct {
	ID    string `json:"id"`    // Entity key (e.g., "ghost1")
	Name  string `json:"name"`  // Display name (e.g., "Ghost")
	Glyph string `json:"glyph"` // Single character for terminal rendering
	Color string `json:"color"` // Hex color code (e.g., "#0000FF")
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EntityDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (e *EntityDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// PaletteFile represents the structure of entities.json.
type PaletteFile struct {
	Background string      `json:"background"`
	Gridline   string      `json:"gridline"`
	Entities   []EntityDef `json:"entities"`
}

// Palette resolves entity definitions by ID.
type Palette struct {
	Background tcell.Color
	Gridline   tcell.Color
	entities   map[string]*EntityDef
}

// NewPalette builds a palette from a decoded palette file.
// Every entity ID must be present.
func NewPalette(file PaletteFile) (*Palette, error) {
	bg, err := ParseHexColor(file.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	line, err := ParseHexColor(file.Gridline)
	if err != nil {
		return nil, fmt.Errorf("gridline: %w", err)
	}
	p := &Palette{
		Background: bg,
		Gridline:   line,
		entities:   make(map[string]*EntityDef, len(file.Entities)),
	}
	for i := range file.Entities {
		p.entities[file.Entities[i].ID] = &file.Entities[i]
	}
	for _, id := range []string{EntityAgent, EntityGhost1, EntityGhost2, EntityTarget} {
		if p.entities[id] == nil {
			return nil, fmt.Errorf("palette is missing entity %q", id)
		}
	}
	return p, nil
}

// LoadPalette loads the palette from the embedded entities.json.
func LoadPalette() (*Palette, error) {
	file, err := Load[PaletteFile]("entities.json")
	if err != nil {
		return nil, err
	}
	return NewPalette(file)
}

// MustLoadPalette loads the palette, panicking on error.
// The embedded file ships with the binary, so failure is a build defect.
func MustLoadPalette() *Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// Get returns the definition for an entity ID, or nil if not found.
func (p *Palette) Get(id string) *EntityDef {
	return p.entities[id]
}
