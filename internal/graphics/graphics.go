package graphics

import (
	"errors"
	"image/color"

	"nsac/internal/debug"
	"nsac/internal/window"
)

// ErrNoWindow is returned by Open when raylib could not create the window.
var ErrNoWindow = errors.New("graphics: raylib window did not initialize")

// Options tune the raylib display beyond the window spec.
type Options struct {
	// TargetFPS caps the frame rate. Zero leaves raylib unthrottled.
	TargetFPS  int
	ShowFPS    bool
	ShowMem    bool
	ShowFrames bool
}

// overlay is drawn on top of every frame just before the buffer swap.
type overlay interface {
	Draw()
}

// Display is the raylib window. The handle is process-wide inside raylib, so
// only one Display may be open at a time.
type Display struct {
	opts    Options
	rl      api
	overlay overlay
	drawing bool
	open    bool
}

// New returns a raylib display; nothing is created until Open.
func New(opts Options) *Display {
	o := debug.New()
	o.SetShowFPS(opts.ShowFPS)
	o.SetShowMemAlloc(opts.ShowMem)
	o.ShowFrames = opts.ShowFrames
	return &Display{opts: opts, rl: raylib{}, overlay: o}
}

// Surface is the raylib back buffer.
type Surface struct {
	d *Display
}

func (s *Surface) Width() int  { return s.d.rl.ScreenWidth() }
func (s *Surface) Height() int { return s.d.rl.ScreenHeight() }

// Fill begins the frame if needed and clears the back buffer.
func (s *Surface) Fill(c color.RGBA) {
	s.d.begin()
	s.d.rl.ClearBackground(c)
}

// Open creates the window. ESC does not quit; only the window's close button does.
func (d *Display) Open(spec window.Spec) (window.Surface, error) {
	d.rl.InitWindow(spec.Width, spec.Height, spec.Title)
	if !d.rl.IsWindowReady() {
		return nil, ErrNoWindow
	}
	d.open = true

	d.rl.DisableExitKey()
	d.rl.SetTargetFPS(d.opts.TargetFPS)
	return &Surface{d: d}, nil
}

// PollEvents reports a close event once raylib has seen a close request.
// raylib gathers input while swapping buffers in EndDrawing, so there is no
// separate queue to drain here.
func (d *Display) PollEvents() ([]window.Event, error) {
	if d.rl.WindowShouldClose() {
		return []window.Event{window.CloseEvent()}, nil
	}
	return nil, nil
}

// Present draws the overlays and swaps buffers.
func (d *Display) Present(window.Surface) error {
	d.begin()
	d.overlay.Draw()
	d.rl.EndDrawing()
	d.drawing = false
	return nil
}

// Close ends a frame left open by a failed iteration, then destroys the window.
func (d *Display) Close() error {
	if !d.open {
		return nil
	}
	if d.drawing {
		d.rl.EndDrawing()
		d.drawing = false
	}
	d.rl.CloseWindow()
	d.open = false
	return nil
}

func (d *Display) begin() {
	if d.drawing {
		return
	}
	d.rl.BeginDrawing()
	d.drawing = true
}
