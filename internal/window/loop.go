package window

import (
	"errors"
	"fmt"
	"image/color"
)

const (
	DefaultWidth  = 900
	DefaultHeight = 500
	DefaultTitle  = "NSAC 2025"
)

// White is the default fill color.
var White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// ErrInvalidSize is returned by Run when the width or height is not positive.
var ErrInvalidSize = errors.New("window: invalid size")

// Logger is the subset of logger.Logger the loop writes to.
type Logger interface {
	Log(line string)
}

type nopLogger struct{}

func (nopLogger) Log(string) {}

// Loop drains events, fills and presents the surface until a close event is seen.
type Loop struct {
	display Display
	spec    Spec
	color   color.RGBA
	log     Logger

	surface Surface
	closing bool
	frames  uint64
}

// Option configures a Loop.
type Option func(*Loop)

// WithSize overrides the 900x500 default.
func WithSize(width, height int) Option {
	return func(l *Loop) {
		l.spec.Width = width
		l.spec.Height = height
	}
}

// WithTitle sets the window caption.
func WithTitle(title string) Option {
	return func(l *Loop) { l.spec.Title = title }
}

// WithColor overrides the white fill.
func WithColor(c color.RGBA) Option {
	return func(l *Loop) { l.color = c }
}

// WithLogger sends lifecycle lines to log. A nil log keeps the loop silent.
func WithLogger(log Logger) Option {
	return func(l *Loop) {
		if log != nil {
			l.log = log
		}
	}
}

// New returns a loop bound to d. Nothing is opened until Run.
func New(d Display, opts ...Option) *Loop {
	l := &Loop{
		display: d,
		spec:    Spec{Width: DefaultWidth, Height: DefaultHeight, Title: DefaultTitle},
		color:   White,
		log:     nopLogger{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Frames returns the number of completed fill+present cycles.
func (l *Loop) Frames() uint64 { return l.frames }

// Run opens the display, renders until close is requested and closes the display.
// It returns nil when the loop ended because of a close event.
func (l *Loop) Run() (err error) {
	if l.spec.Width <= 0 || l.spec.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, l.spec.Width, l.spec.Height)
	}

	surface, err := l.display.Open(l.spec)
	if err != nil {
		return fmt.Errorf("open display: %w", err)
	}
	l.surface = surface
	l.log.Log(fmt.Sprintf("window opened %dx%d %q", l.spec.Width, l.spec.Height, l.spec.Title))

	defer func() {
		if cerr := l.display.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close display: %w", cerr)
		}
		l.surface = nil
		l.log.Log(fmt.Sprintf("window closed after %d frames", l.frames))
	}()

	if d, ok := l.display.(Driver); ok {
		return d.Drive(l.frame)
	}
	for {
		done, err := l.frame()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// frame runs one iteration. The fill and present happen even on the frame that
// observes the close event.
func (l *Loop) frame() (bool, error) {
	events, err := l.display.PollEvents()
	if err != nil {
		return false, fmt.Errorf("poll events: %w", err)
	}
	for _, ev := range events {
		if ev.Kind == KindClose {
			if !l.closing {
				l.log.Log(fmt.Sprintf("close requested on frame %d", l.frames+1))
			}
			l.closing = true
		}
	}

	l.surface.Fill(l.color)
	if err := l.display.Present(l.surface); err != nil {
		return false, fmt.Errorf("present frame %d: %w", l.frames+1, err)
	}
	l.frames++

	return l.closing, nil
}
