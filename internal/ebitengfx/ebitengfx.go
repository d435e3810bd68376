// Package ebitengfx runs the window loop on top of ebiten.RunGame.
package ebitengfx

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"nsac/internal/window"
)

// ErrNotOpen is returned when the display is used before Open or after Close.
var ErrNotOpen = errors.New("ebitengfx: display not open")

// Options configure the ebiten display.
type Options struct {
	// TargetFPS sets ebiten's tick rate. Zero syncs ticks with the display
	// refresh and turns vsync off, which is as close to unthrottled as ebiten goes.
	TargetFPS int
}

// Surface records the fill color; ebiten repaints from it in Draw.
type Surface struct {
	w, h  int
	color color.RGBA
}

func (s *Surface) Width() int        { return s.w }
func (s *Surface) Height() int       { return s.h }
func (s *Surface) Fill(c color.RGBA) { s.color = c }

// Display implements window.Display and window.Driver.
type Display struct {
	opts    Options
	spec    window.Spec
	surface *Surface
	shown   color.RGBA
	open    bool

	// closing reports a pending close request; ebiten.IsWindowBeingClosed
	// outside tests.
	closing func() bool
	run     func(ebiten.Game) error
}

// New returns an ebiten display. Window settings are applied by Open.
func New(opts Options) *Display {
	return &Display{
		opts:    opts,
		closing: ebiten.IsWindowBeingClosed,
		run:     ebiten.RunGame,
	}
}

func (d *Display) Open(spec window.Spec) (window.Surface, error) {
	d.spec = spec
	ebiten.SetWindowSize(spec.Width, spec.Height)
	ebiten.SetWindowTitle(spec.Title)
	ebiten.SetWindowClosingHandled(true)
	if d.opts.TargetFPS > 0 {
		ebiten.SetTPS(d.opts.TargetFPS)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
		ebiten.SetVsyncEnabled(false)
	}
	d.surface = &Surface{w: spec.Width, h: spec.Height}
	d.open = true
	return d.surface, nil
}

func (d *Display) PollEvents() ([]window.Event, error) {
	if !d.open {
		return nil, ErrNotOpen
	}
	if d.closing() {
		return []window.Event{window.CloseEvent()}, nil
	}
	return nil, nil
}

// Present makes the surface color the one Draw paints.
func (d *Display) Present(s window.Surface) error {
	if !d.open {
		return ErrNotOpen
	}
	if es, ok := s.(*Surface); ok {
		d.shown = es.color
	}
	return nil
}

func (d *Display) Close() error {
	d.open = false
	return nil
}

// Drive hands the frame callback to ebiten and blocks until the loop is done.
func (d *Display) Drive(frame func() (bool, error)) error {
	return d.run(&game{d: d, frame: frame})
}

type game struct {
	d     *Display
	frame func() (bool, error)

	// done is set on the frame that saw the close request; drawn once that
	// frame has reached the screen.
	done  bool
	drawn bool
}

// Update runs one loop frame. After the last frame it keeps ticking until a
// Draw has shown it, then terminates.
func (g *game) Update() error {
	if g.done {
		if g.drawn {
			return ebiten.Termination
		}
		return nil
	}
	done, err := g.frame()
	if err != nil {
		return err
	}
	g.done = done
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.d.shown)
	g.markDrawn()
}

func (g *game) markDrawn() {
	if g.done {
		g.drawn = true
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.d.spec.Width, g.d.spec.Height
}
