package render

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/samdwyer/ghostlygrid/data"
	"github.com/samdwyer/ghostlygrid/internal/grid"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		raw     string
		want    Mode
		wantErr bool
	}{
		{"", ModeNone, false},
		{"none", ModeNone, false},
		{"human", ModeHuman, false},
		{" RGB_ARRAY ", ModeRGBArray, false},
		{"ansi", ModeNone, true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrUnknownMode) {
			t.Errorf("ParseMode(%q) error = %v, want ErrUnknownMode", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeNone, "none"},
		{ModeHuman, "human"},
		{ModeRGBArray, "rgb_array"},
		{Mode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.expected {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.expected)
		}
	}
}

func TestClockPacesFrames(t *testing.T) {
	now := time.Unix(0, 0)
	var slept []time.Duration
	c := NewClock(4)
	c.now = func() time.Time { return now }
	c.sleep = func(d time.Duration) { slept = append(slept, d) }

	c.Tick() // first frame never waits
	now = now.Add(100 * time.Millisecond)
	c.Tick()
	now = now.Add(400 * time.Millisecond)
	c.Tick()

	if len(slept) != 1 {
		t.Fatalf("expected exactly one sleep, got %v", slept)
	}
	if slept[0] != 150*time.Millisecond {
		t.Errorf("slept %v, want 150ms", slept[0])
	}
}

func TestClockUnpaced(t *testing.T) {
	c := NewClock(0)
	c.sleep = func(time.Duration) { t.Fatal("unpaced clock should never sleep") }
	c.Tick()
	c.Tick()
}

func sampleObservation() grid.Observation {
	return grid.Observation{
		Agent:  grid.Position{X: 0, Y: 0},
		Ghost1: grid.Position{X: 2, Y: 3},
		Ghost2: grid.Position{X: 4, Y: 1},
		Target: grid.Position{X: 5, Y: 5},
	}
}

func TestWindowDraw(t *testing.T) {
	w := NewWindow(func() (*Screen, error) { return NewSimulationScreen(40, 20) }, 0, data.MustLoadPalette())
	defer w.Close()

	if w.Screen() != nil {
		t.Fatal("window should not open before the first draw")
	}
	if err := w.Draw(6, sampleObservation(), "step 1"); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	s := w.Screen()
	if s == nil {
		t.Fatal("window should be open after drawing")
	}

	checks := []struct {
		x, y int
		want rune
	}{
		{0, 0, '@'},
		{4, 3, 'G'},
		{8, 1, 'G'},
		{10, 5, 'D'},
		{2, 0, '.'},
		{0, 7, 's'},
	}
	for _, c := range checks {
		if got := s.Content(c.x, c.y); got != c.want {
			t.Errorf("Content(%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
}

func TestWindowDrawCatchShowsGhost(t *testing.T) {
	w := NewWindow(func() (*Screen, error) { return NewSimulationScreen(40, 20) }, 0, data.MustLoadPalette())
	defer w.Close()

	obs := sampleObservation()
	obs.Ghost1 = obs.Agent
	if err := w.Draw(6, obs, ""); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if got := w.Screen().Content(0, 0); got != 'G' {
		t.Errorf("caught agent cell = %q, want 'G'", got)
	}
}

func TestWindowOpenError(t *testing.T) {
	boom := errors.New("no terminal")
	w := NewWindow(func() (*Screen, error) { return nil, boom }, 0, data.MustLoadPalette())
	if err := w.Draw(6, sampleObservation(), ""); !errors.Is(err, boom) {
		t.Fatalf("Draw() error = %v, want %v", err, boom)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() after failed open error = %v", err)
	}
}

func TestWindowCloseIdempotent(t *testing.T) {
	opened := 0
	w := NewWindow(func() (*Screen, error) {
		opened++
		return NewSimulationScreen(40, 20)
	}, 0, data.MustLoadPalette())

	if err := w.Close(); err != nil {
		t.Fatalf("Close() before draw error = %v", err)
	}
	if err := w.Draw(6, sampleObservation(), ""); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if err := w.Draw(6, sampleObservation(), ""); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if opened != 1 {
		t.Errorf("screen opened %d times, want 1", opened)
	}
	for i := 0; i < 2; i++ {
		if err := w.Close(); err != nil {
			t.Fatalf("Close() #%d error = %v", i+1, err)
		}
	}
	if w.Screen() != nil {
		t.Error("screen should be released after Close")
	}
}

func TestRasterize(t *testing.T) {
	palette := data.MustLoadPalette()
	f := Rasterize(60, 6, sampleObservation(), palette)

	h, w, c := f.Shape()
	if h != 60 || w != 60 || c != 3 {
		t.Fatalf("Shape() = (%d,%d,%d), want (60,60,3)", h, w, c)
	}
	if len(f.Pix) != 60*60*3 {
		t.Fatalf("len(Pix) = %d, want %d", len(f.Pix), 60*60*3)
	}

	entity := func(id string) color.RGBA { return data.RGBA(palette.Get(id).TCellColor()) }
	checks := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"agent centre", 5, 5, entity(data.EntityAgent)},
		{"ghost1 centre", 25, 35, entity(data.EntityGhost1)},
		{"ghost2 centre", 45, 15, entity(data.EntityGhost2)},
		{"target corner", 52, 52, entity(data.EntityTarget)},
		{"empty cell", 35, 5, data.RGBA(palette.Background)},
		{"gridline", 10, 3, data.RGBA(palette.Gridline)},
	}
	for _, c := range checks {
		if got := f.At(c.x, c.y); got != c.want {
			t.Errorf("%s: At(%d,%d) = %v, want %v", c.name, c.x, c.y, got, c.want)
		}
	}
}

func TestFrameImage(t *testing.T) {
	f := NewFrame(4)
	red := color.RGBA{R: 0xff, A: 0xff}
	f.Set(1, 2, red)
	f.Set(9, 9, red) // ignored

	img := f.Image()
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Fatalf("Image bounds = %v, want 4x4", img.Bounds())
	}
	if got := img.RGBAAt(1, 2); got != red {
		t.Errorf("RGBAAt(1,2) = %v, want %v", got, red)
	}
}
