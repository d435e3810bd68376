package window

import "image/color"

// Spec describes the surface a display is asked to create.
type Spec struct {
	Width  int
	Height int
	Title  string
}

// Surface is the drawable region handed out by a display.
type Surface interface {
	Width() int
	Height() int
	// Fill paints the whole surface with c.
	Fill(c color.RGBA)
}

// Display is the windowing collaborator the loop runs against.
//
// Open is called exactly once per run, before the first frame. Close is always
// called when Run returns, even if a later step failed.
type Display interface {
	Open(spec Spec) (Surface, error)
	PollEvents() ([]Event, error)
	Present(s Surface) error
	Close() error
}

// Driver is implemented by displays whose library insists on owning the frame
// pump (ebiten.RunGame). The display calls frame once per tick until it reports
// done or fails, then returns.
type Driver interface {
	Drive(frame func() (done bool, err error)) error
}
