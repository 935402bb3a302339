package render

import "math"

// Camera offsets the arena view. It does not scroll; it only shakes when
// something explodes.
type Camera struct {
	MaxOffset float64 // pixels at full trauma
	Decay     float64 // trauma lost per second

	trauma float64 // 0..1
	time   float64
}

// NewCamera creates a camera with default shake settings
func NewCamera() *Camera {
	return &Camera{
		MaxOffset: 8,
		Decay:     2.5,
	}
}

// Shake adds trauma, capped at 1
func (c *Camera) Shake(amount float64) {
	c.trauma = math.Min(1, c.trauma+amount)
}

// Update advances the shake by dt seconds of wall time
func (c *Camera) Update(dt float64) {
	c.time += dt
	c.trauma = math.Max(0, c.trauma-c.Decay*dt)
}

// Trauma returns the current shake level
func (c *Camera) Trauma() float64 { return c.trauma }

// Offset returns the view translation for this frame. Shake grows with
// the square of trauma so small bumps stay subtle.
func (c *Camera) Offset() (float64, float64) {
	if c.trauma == 0 {
		return 0, 0
	}
	s := c.trauma * c.trauma * c.MaxOffset
	return s * math.Sin(c.time*47), s * math.Cos(c.time*53)
}
