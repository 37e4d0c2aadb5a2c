// Package grid provides the positional data model shared by the environment,
// the renderers and the episode runner.
package grid

import (
	"encoding/json"
	"fmt"
)

// Position is a cell coordinate on the square grid.
type Position struct {
	X, Y int
}

// Add returns the position shifted by the given delta.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Clamp restricts each coordinate independently to [0, size-1].
// Moving into a wall leaves that axis unchanged.
func (p Position) Clamp(size int) Position {
	return Position{X: clampInt(p.X, 0, size-1), Y: clampInt(p.Y, 0, size-1)}
}

// InBounds returns true if the position lies on a grid of the given size.
func (p Position) InBounds(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// String returns the position as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// MarshalJSON encodes the position as a two element array.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

// UnmarshalJSON decodes a two element array.
func (p *Position) UnmarshalJSON(b []byte) error {
	var pair []int
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("grid: decode position: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("grid: decode position: want 2 coordinates, got %d", len(pair))
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

// Region is an inclusive square range of cells that positions are sampled from.
// A region with Low == High is a single point.
type Region struct {
	Low, High int
}

// Contains returns true if both coordinates of p fall inside the region.
func (r Region) Contains(p Position) bool {
	return p.X >= r.Low && p.X <= r.High && p.Y >= r.Low && p.Y <= r.High
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
