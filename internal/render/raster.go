package render

import (
	"image"
	"image/color"

	"github.com/samdwyer/ghostlygrid/data"
	"github.com/samdwyer/ghostlygrid/internal/grid"
)

// Frame is a square RGB image stored row-major, three bytes per pixel.
type Frame struct {
	Size int
	Pix  []uint8
}

// NewFrame allocates a frame of size × size pixels.
func NewFrame(size int) *Frame {
	return &Frame{Size: size, Pix: make([]uint8, size*size*3)}
}

// Shape returns the frame dimensions as (height, width, channels).
func (f *Frame) Shape() (int, int, int) {
	return f.Size, f.Size, 3
}

// At returns the colour of pixel (x, y).
func (f *Frame) At(x, y int) color.RGBA {
	i := (y*f.Size + x) * 3
	return color.RGBA{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2], A: 0xff}
}

// Set colours pixel (x, y). Out of range pixels are ignored.
func (f *Frame) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.Size || y >= f.Size {
		return
	}
	i := (y*f.Size + x) * 3
	f.Pix[i], f.Pix[i+1], f.Pix[i+2] = c.R, c.G, c.B
}

// Image converts the frame to an RGBA image, for encoding.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Size, f.Size))
	for y := 0; y < f.Size; y++ {
		for x := 0; x < f.Size; x++ {
			img.SetRGBA(x, y, f.At(x, y))
		}
	}
	return img
}

// Rasterize draws obs on a gridSize board into a windowSize frame.
// The target is a filled square; the agent and ghosts are filled circles.
func Rasterize(windowSize, gridSize int, obs grid.Observation, palette *data.Palette) *Frame {
	f := NewFrame(windowSize)
	fill(f, data.RGBA(palette.Background))

	cell := float64(windowSize) / float64(gridSize)
	entity := func(id string) color.RGBA {
		return data.RGBA(palette.Get(id).TCellColor())
	}

	x0, y0, x1, y1 := cellRect(obs.Target, cell)
	fillRect(f, x0, y0, x1, y1, entity(data.EntityTarget))

	fillCircle(f, obs.Agent, cell, entity(data.EntityAgent))
	fillCircle(f, obs.Ghost1, cell, entity(data.EntityGhost1))
	fillCircle(f, obs.Ghost2, cell, entity(data.EntityGhost2))

	line := data.RGBA(palette.Gridline)
	for i := 0; i <= gridSize; i++ {
		at := int(float64(i) * cell)
		if at >= windowSize {
			at = windowSize - 1
		}
		for k := 0; k < windowSize; k++ {
			f.Set(at, k, line)
			f.Set(k, at, line)
		}
	}
	return f
}

func cellRect(p grid.Position, cell float64) (x0, y0, x1, y1 int) {
	return int(float64(p.X) * cell), int(float64(p.Y) * cell),
		int(float64(p.X+1) * cell), int(float64(p.Y+1) * cell)
}

func fill(f *Frame, c color.RGBA) {
	fillRect(f, 0, 0, f.Size, f.Size, c)
}

func fillRect(f *Frame, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			f.Set(x, y, c)
		}
	}
}

func fillCircle(f *Frame, p grid.Position, cell float64, c color.RGBA) {
	cx := (float64(p.X) + 0.5) * cell
	cy := (float64(p.Y) + 0.5) * cell
	r := cell / 3
	x0, y0, x1, y1 := cellRect(p, cell)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				f.Set(x, y, c)
			}
		}
	}
}
