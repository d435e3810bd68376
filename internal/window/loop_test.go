package window

import (
	"errors"
	"image/color"
	"testing"
	"time"
)

type fakeSurface struct {
	w, h  int
	fills []color.RGBA
	ops   *[]string
}

func (s *fakeSurface) Width() int  { return s.w }
func (s *fakeSurface) Height() int { return s.h }
func (s *fakeSurface) Fill(c color.RGBA) {
	s.fills = append(s.fills, c)
	*s.ops = append(*s.ops, "fill")
}

// fakeDisplay replays one event batch per poll. Once the script runs out it
// returns empty batches.
type fakeDisplay struct {
	script [][]Event

	opens    []Spec
	polls    int
	presents int
	closed   int
	ops      []string
	surface  *fakeSurface

	openErr    error
	presentErr error
	closeErr   error
}

func (d *fakeDisplay) Open(spec Spec) (Surface, error) {
	d.opens = append(d.opens, spec)
	if d.openErr != nil {
		return nil, d.openErr
	}
	d.surface = &fakeSurface{w: spec.Width, h: spec.Height, ops: &d.ops}
	return d.surface, nil
}

func (d *fakeDisplay) PollEvents() ([]Event, error) {
	d.polls++
	d.ops = append(d.ops, "poll")
	if d.polls <= len(d.script) {
		return d.script[d.polls-1], nil
	}
	return nil, nil
}

func (d *fakeDisplay) Present(Surface) error {
	d.ops = append(d.ops, "present")
	if d.presentErr != nil {
		return d.presentErr
	}
	d.presents++
	return nil
}

func (d *fakeDisplay) Close() error {
	d.closed++
	return d.closeErr
}

func TestRunOpensDefaultSizeOnce(t *testing.T) {
	d := &fakeDisplay{script: [][]Event{{CloseEvent()}}}
	if err := New(d).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(d.opens) != 1 {
		t.Fatalf("opened %d times, want 1", len(d.opens))
	}
	got := d.opens[0]
	if got.Width != 900 || got.Height != 500 {
		t.Errorf("opened %dx%d, want 900x500", got.Width, got.Height)
	}
	if got.Title != DefaultTitle {
		t.Errorf("title = %q, want %q", got.Title, DefaultTitle)
	}
}

func TestCloseOnFirstFrame(t *testing.T) {
	d := &fakeDisplay{script: [][]Event{{CloseEvent()}}}
	l := New(d)
	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if l.Frames() != 1 {
		t.Errorf("frames = %d, want 1", l.Frames())
	}
	if d.presents != 1 || len(d.surface.fills) != 1 {
		t.Errorf("presents = %d fills = %d, want 1 and 1", d.presents, len(d.surface.fills))
	}
	if d.closed != 1 {
		t.Errorf("closed %d times, want 1", d.closed)
	}
}

func TestCloseAfterEmptyFrames(t *testing.T) {
	const n = 7
	script := make([][]Event, n+1)
	script[n] = []Event{CloseEvent()}
	d := &fakeDisplay{script: script}

	l := New(d)
	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if l.Frames() != n+1 {
		t.Errorf("frames = %d, want %d", l.Frames(), n+1)
	}
	if d.polls != n+1 {
		t.Errorf("polls = %d, want %d", d.polls, n+1)
	}
}

func TestOtherEventsDoNotTerminate(t *testing.T) {
	other := Event{Kind: KindOther}
	d := &fakeDisplay{script: [][]Event{{other, other}, {}, {other}, {other, CloseEvent(), other}}}
	l := New(d)
	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if l.Frames() != 4 {
		t.Errorf("frames = %d, want 4", l.Frames())
	}
}

func TestFillsWhiteBeforeEveryPresent(t *testing.T) {
	d := &fakeDisplay{script: [][]Event{{}, {}, {CloseEvent()}}}
	if err := New(d).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"poll", "fill", "present", "poll", "fill", "present", "poll", "fill", "present"}
	if len(d.ops) != len(want) {
		t.Fatalf("ops = %v, want %v", d.ops, want)
	}
	for i := range want {
		if d.ops[i] != want[i] {
			t.Fatalf("ops = %v, want %v", d.ops, want)
		}
	}
	for i, c := range d.surface.fills {
		if c != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
			t.Errorf("fill %d = %v, want white", i, c)
		}
	}
}

func TestOptions(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	d := &fakeDisplay{script: [][]Event{{CloseEvent()}}}
	l := New(d, WithSize(320, 200), WithTitle("t"), WithColor(red), WithLogger(nil))
	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := d.opens[0]; got != (Spec{Width: 320, Height: 200, Title: "t"}) {
		t.Errorf("spec = %+v", got)
	}
	if d.surface.fills[0] != red {
		t.Errorf("fill = %v, want %v", d.surface.fills[0], red)
	}
}

func TestInvalidSize(t *testing.T) {
	d := &fakeDisplay{}
	err := New(d, WithSize(0, 500)).Run()
	if !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("err = %v, want ErrInvalidSize", err)
	}
	if len(d.opens) != 0 {
		t.Errorf("display opened despite invalid size")
	}
}

func TestOpenError(t *testing.T) {
	boom := errors.New("no display")
	d := &fakeDisplay{openErr: boom}
	err := New(d).Run()
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if d.closed != 0 {
		t.Errorf("closed a display that never opened")
	}
}

func TestPresentErrorStillCloses(t *testing.T) {
	boom := errors.New("lost context")
	d := &fakeDisplay{presentErr: boom}
	l := New(d)
	err := l.Run()
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if d.closed != 1 {
		t.Errorf("closed %d times, want 1", d.closed)
	}
	if l.Frames() != 0 {
		t.Errorf("frames = %d, want 0", l.Frames())
	}
}

func TestCloseErrorReported(t *testing.T) {
	boom := errors.New("teardown")
	d := &fakeDisplay{script: [][]Event{{CloseEvent()}}, closeErr: boom}
	if err := New(d).Run(); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

type recordingLogger struct{ lines []string }

func (r *recordingLogger) Log(line string) { r.lines = append(r.lines, line) }

func TestLogsLifecycleOnly(t *testing.T) {
	log := &recordingLogger{}
	d := &fakeDisplay{script: [][]Event{{}, {}, {CloseEvent(), CloseEvent()}}}
	if err := New(d, WithLogger(log)).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{
		`window opened 900x500 "NSAC 2025"`,
		"close requested on frame 3",
		"window closed after 3 frames",
	}
	if len(log.lines) != len(want) {
		t.Fatalf("lines = %q, want %q", log.lines, want)
	}
	for i := range want {
		if log.lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, log.lines[i], want[i])
		}
	}
}

// drivenDisplay pumps frames itself, the way the ebiten display does.
type drivenDisplay struct {
	fakeDisplay
	ticks int
}

func (d *drivenDisplay) Drive(frame func() (bool, error)) error {
	for {
		d.ticks++
		done, err := frame()
		if err != nil || done {
			return err
		}
	}
}

func TestDriverOwnsPump(t *testing.T) {
	d := &drivenDisplay{fakeDisplay: fakeDisplay{script: [][]Event{{}, {CloseEvent()}}}}
	l := New(d)
	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if d.ticks != 2 || l.Frames() != 2 {
		t.Errorf("ticks = %d frames = %d, want 2 and 2", d.ticks, l.Frames())
	}
	if d.closed != 1 {
		t.Errorf("closed %d times, want 1", d.closed)
	}
}

func TestPacer(t *testing.T) {
	now := time.Unix(0, 0)
	var slept []time.Duration
	p := NewPacer(10)
	p.now = func() time.Time { return now }
	p.sleep = func(d time.Duration) { slept = append(slept, d) }

	p.Wait() // first call only records the time
	now = now.Add(30 * time.Millisecond)
	p.Wait()
	now = now.Add(70*time.Millisecond + 200*time.Millisecond)
	p.Wait()

	if len(slept) != 1 || slept[0] != 70*time.Millisecond {
		t.Fatalf("slept = %v, want [70ms]", slept)
	}
}

func TestPacerDisabled(t *testing.T) {
	p := NewPacer(0)
	p.sleep = func(time.Duration) { t.Fatal("unthrottled pacer slept") }
	p.Wait()
	p.Wait()

	var nilPacer *Pacer
	nilPacer.Wait()
}
