// Package headless is a display with no window: frames are rendered into an
// in-memory image and events come from a script.
package headless

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/imgio"

	"nsac/internal/window"
)

// ErrNotOpen is returned when the display is used before Open.
var ErrNotOpen = errors.New("headless: display not open")

// Config controls a Display.
type Config struct {
	// Frames is the frame on which a close event is injected. Zero relies on
	// Script alone to end the run.
	Frames int
	// Script holds the events returned by successive polls.
	Script [][]window.Event
	// Snapshot, if set, is where the last presented frame is saved as PNG on Close.
	Snapshot string
}

// Surface is an RGBA image the size of the window.
type Surface struct {
	img *image.RGBA
}

func newSurface(w, h int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (s *Surface) Width() int  { return s.img.Bounds().Dx() }
func (s *Surface) Height() int { return s.img.Bounds().Dy() }

func (s *Surface) Fill(c color.RGBA) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Display implements window.Display without touching any windowing system.
type Display struct {
	cfg Config

	spec      window.Spec
	surface   *Surface
	presented *image.RGBA
	polls     int
	presents  int
	open      bool
}

// New returns a headless display; the surface is allocated by Open.
func New(cfg Config) *Display {
	return &Display{cfg: cfg}
}

func (d *Display) Open(spec window.Spec) (window.Surface, error) {
	d.spec = spec
	d.surface = newSurface(spec.Width, spec.Height)
	d.open = true
	return d.surface, nil
}

// PollEvents returns the next scripted batch, plus a close event once the
// configured frame count is reached.
func (d *Display) PollEvents() ([]window.Event, error) {
	if !d.open {
		return nil, ErrNotOpen
	}
	d.polls++
	var events []window.Event
	if d.polls <= len(d.cfg.Script) {
		events = append(events, d.cfg.Script[d.polls-1]...)
	}
	if d.cfg.Frames > 0 && d.polls == d.cfg.Frames {
		events = append(events, window.CloseEvent())
	}
	return events, nil
}

// Present copies the surface into the "screen" buffer.
func (d *Display) Present(s window.Surface) error {
	if !d.open {
		return ErrNotOpen
	}
	hs, ok := s.(*Surface)
	if !ok {
		return fmt.Errorf("headless: foreign surface %T", s)
	}
	if d.presented == nil {
		d.presented = image.NewRGBA(hs.img.Bounds())
	}
	copy(d.presented.Pix, hs.img.Pix)
	d.presents++
	return nil
}

// Close saves the snapshot, if one was asked for.
func (d *Display) Close() error {
	if !d.open {
		return nil
	}
	d.open = false
	if d.cfg.Snapshot == "" || d.presented == nil {
		return nil
	}
	if err := imgio.Save(d.cfg.Snapshot, d.presented, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save snapshot %q: %w", d.cfg.Snapshot, err)
	}
	return nil
}

// Spec returns what Open was called with.
func (d *Display) Spec() window.Spec { return d.spec }

// Presents returns how many frames reached the screen.
func (d *Display) Presents() int { return d.presents }

// Screen returns the last presented frame, or nil before the first Present.
func (d *Display) Screen() *image.RGBA { return d.presented }
