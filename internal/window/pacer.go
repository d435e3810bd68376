package window

import "time"

// Pacer caps a frame pump at a fixed rate. The zero value, or a Pacer built
// with fps <= 0, never sleeps.
type Pacer struct {
	interval time.Duration
	last     time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer returns a Pacer for fps frames per second.
func NewPacer(fps int) *Pacer {
	p := &Pacer{now: time.Now, sleep: time.Sleep}
	if fps > 0 {
		p.interval = time.Second / time.Duration(fps)
	}
	return p
}

// Wait blocks until one interval has passed since the previous Wait.
func (p *Pacer) Wait() {
	if p == nil || p.interval <= 0 {
		return
	}
	now := p.now()
	if !p.last.IsZero() {
		if d := p.interval - now.Sub(p.last); d > 0 {
			p.sleep(d)
			now = now.Add(d)
		}
	}
	p.last = now
}
