package core

const (
	// DefaultFramesPerTick is one generation per second at 60 FPS.
	DefaultFramesPerTick = 60
	minFramesPerTick     = 1
)

// FramePacer spaces simulation ticks a fixed number of rendered frames apart.
type FramePacer struct {
	perTick   int
	remaining int
}

// NewFramePacer returns a pacer that fires on the next call to Ready and then
// every framesPerTick frames.
func NewFramePacer(framesPerTick int) *FramePacer {
	if framesPerTick < minFramesPerTick || framesPerTick > DefaultFramesPerTick {
		framesPerTick = DefaultFramesPerTick
	}
	return &FramePacer{perTick: framesPerTick}
}

// Ready is called once per frame and reports whether a tick is due.
func (p *FramePacer) Ready() bool {
	if p.remaining > 0 {
		p.remaining--
		return false
	}
	p.remaining = p.perTick
	return true
}

// Reset makes the next call to Ready fire.
func (p *FramePacer) Reset() { p.remaining = 0 }

// FramesPerTick returns the current spacing.
func (p *FramePacer) FramesPerTick() int { return p.perTick }

// Faster shortens the spacing: by 10 above 10 frames, by 5 above 5, by 2
// below that, never under one frame.
func (p *FramePacer) Faster() {
	switch {
	case p.perTick > 10:
		p.perTick -= 10
	case p.perTick > 5:
		p.perTick -= 5
	case p.perTick > minFramesPerTick:
		p.perTick -= 2
	}
	if p.perTick < minFramesPerTick {
		p.perTick = minFramesPerTick
	}
}

// Slower lengthens the spacing, mirroring Faster, up to 60 frames.
func (p *FramePacer) Slower() {
	switch {
	case p.perTick < 5:
		p.perTick += 2
	case p.perTick < 10:
		p.perTick += 5
	case p.perTick < DefaultFramesPerTick:
		p.perTick += 10
	}
	if p.perTick > DefaultFramesPerTick {
		p.perTick = DefaultFramesPerTick
	}
}
