package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws runtime overlays (FPS, heap, frame counter). All are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowFrames   bool

	frameCount   uint64
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the heap counter is drawn under FPS.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// Frames returns how many times Draw has been called.
func (d *Debug) Frames() uint64 { return d.frameCount }

// Lines returns the overlay text for the current frame and advances the frame
// counter. Text is recomputed every updateInterval frames.
func (d *Debug) Lines(fps int) []string {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	var lines []string
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", fps)
		}
		lines = append(lines, d.lastFpsText)
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		lines = append(lines, d.lastMemText)
	}
	if d.ShowFrames {
		lines = append(lines, fmt.Sprintf("Frame: %d", d.frameCount))
	}
	return lines
}

// Draw renders the enabled overlays right-aligned at the top of the window.
// Call between BeginDrawing and EndDrawing, after the background is cleared.
func (d *Debug) Draw() {
	if !d.ShowFPS && !d.ShowMemAlloc && !d.ShowFrames {
		d.frameCount++
		return
	}
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.Lines(int(rl.GetFPS())) {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
