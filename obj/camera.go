package obj

import "github.com/milk9111/purplenight/fixed"

// Camera tracks the scroll offset applied to every committed sprite and
// background, plus the screen shake countdown.
type Camera struct {
	offset    fixed.Vector
	shakeTime int
	magnitude int
	follow    bool

	screenW int
	screenH int
	// world bounds in pixels (0 means unbounded)
	worldW int
	worldH int
}

// NewCamera creates a camera for the given screen size. magnitude caps the
// shake jitter in pixels.
func NewCamera(screenW, screenH, magnitude int, follow bool) *Camera {
	return &Camera{screenW: screenW, screenH: screenH, magnitude: magnitude, follow: follow}
}

// SetWorldBounds sets the world pixel dimensions for clamping the offset.
func (c *Camera) SetWorldBounds(w, h int) {
	c.worldW = w
	c.worldH = h
}

func (c *Camera) Offset() fixed.Vector     { return c.offset }
func (c *Camera) SetOffset(o fixed.Vector) { c.offset = o }
func (c *Camera) ShakeTime() int           { return c.shakeTime }

// Shake adds frames of shake. Repeated hits stack.
func (c *Camera) Shake(frames int) {
	c.shakeTime += frames
}

// Follow centres the view on target, clamped so the view never leaves the
// world. It is a no-op when following is disabled.
func (c *Camera) Follow(target fixed.Vector) {
	if !c.follow {
		return
	}
	o := target.Sub(fixed.V(c.screenW/2, c.screenH/2))
	o.X = clampAxis(o.X, c.worldW-c.screenW)
	o.Y = clampAxis(o.Y, c.worldH-c.screenH)
	c.offset = o
}

func clampAxis(v fixed.Num, limit int) fixed.Num {
	if limit < 0 {
		limit = 0
	}
	if hi := fixed.FromInt(limit); v > hi {
		v = hi
	}
	if v < 0 {
		v = 0
	}
	return v
}

// FrameOffset returns the offset for this frame, jittered while shaking, and
// consumes one frame of shake. random supplies raw fixed-point noise.
func (c *Camera) FrameOffset(random func() int32) fixed.Vector {
	o := c.offset
	if c.shakeTime <= 0 {
		return o
	}
	if size := min(c.shakeTime, c.magnitude); size > 0 {
		half := fixed.FromInt(size).DivInt(2)
		o.X += fixed.FromRaw(random()).Rem(size) - half
		o.Y += fixed.FromRaw(random()).Rem(size) - half
	}
	c.shakeTime--
	return o
}
