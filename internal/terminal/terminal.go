// Package terminal shows the window loop in a terminal: the cell grid is the
// surface and closing is done with Escape, Ctrl-C or q.
package terminal

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"nsac/internal/window"
)

// ErrNotOpen is returned when the display is used before Open or after Close.
var ErrNotOpen = errors.New("terminal: display not open")

// Options configure the terminal display.
type Options struct {
	// TargetFPS caps how often Show is called. Zero never sleeps.
	TargetFPS int
	// Screen replaces the real terminal, e.g. with tcell.NewSimulationScreen.
	Screen tcell.Screen
}

// Surface is the whole terminal grid.
type Surface struct {
	screen tcell.Screen
}

func (s *Surface) Width() int {
	w, _ := s.screen.Size()
	return w
}

func (s *Surface) Height() int {
	_, h := s.screen.Size()
	return h
}

// Fill paints every cell's background with c.
func (s *Surface) Fill(c color.RGBA) {
	bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	s.screen.Fill(' ', tcell.StyleDefault.Background(bg))
}

// Display implements window.Display with tcell.
type Display struct {
	opts   Options
	screen tcell.Screen
	pacer  *window.Pacer
}

// New returns a terminal display; the screen is taken over by Open.
func New(opts Options) *Display {
	return &Display{opts: opts, pacer: window.NewPacer(opts.TargetFPS)}
}

// Open takes over the terminal. The requested pixel size and title cannot be
// honored; the surface is whatever the terminal is.
func (d *Display) Open(window.Spec) (window.Surface, error) {
	screen := d.opts.Screen
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, fmt.Errorf("terminal: new screen: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init: %w", err)
	}
	screen.HideCursor()
	d.screen = screen
	return &Surface{screen: screen}, nil
}

// PollEvents drains whatever tcell has queued without blocking.
func (d *Display) PollEvents() ([]window.Event, error) {
	if d.screen == nil {
		return nil, ErrNotOpen
	}
	var events []window.Event
	for d.screen.HasPendingEvent() {
		ev := d.screen.PollEvent()
		if ev == nil {
			// Screen finalized underneath us.
			events = append(events, window.CloseEvent())
			break
		}
		events = append(events, translate(ev))
	}
	return events, nil
}

func translate(ev tcell.Event) window.Event {
	if k, ok := ev.(*tcell.EventKey); ok {
		switch {
		case k.Key() == tcell.KeyEscape, k.Key() == tcell.KeyCtrlC:
			return window.CloseEvent()
		case k.Key() == tcell.KeyRune && (k.Rune() == 'q' || k.Rune() == 'Q'):
			return window.CloseEvent()
		}
	}
	return window.Event{Kind: window.KindOther}
}

func (d *Display) Present(window.Surface) error {
	if d.screen == nil {
		return ErrNotOpen
	}
	d.screen.Show()
	d.pacer.Wait()
	return nil
}

// Close restores the terminal.
func (d *Display) Close() error {
	if d.screen == nil {
		return nil
	}
	d.screen.Fini()
	d.screen = nil
	return nil
}
