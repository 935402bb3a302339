package pathfind

import (
	"math"

	"github.com/1siamBot/wave-arena/engine/maplib"
)

const (
	// AvoidRadius is how close an obstacle centre must be to bend a heading
	AvoidRadius = 100.0
	// AvoidStrength scales the inverse-distance repulsion term
	AvoidStrength = 0.5
)

// SteerResult contains the computed heading and per-tick displacement
type SteerResult struct {
	Heading float64
	VX, VY  float64
}

// Seek returns the heading from (ux, uy) toward (tx, ty)
func Seek(ux, uy, tx, ty float64) float64 {
	return math.Atan2(ty-uy, tx-ux)
}

// Avoid bends heading away from every obstacle whose centre lies within
// AvoidRadius of (ux, uy). Each obstacle adds
//
//	AvoidStrength / d * (angleToCentre + π)
//
// directly to the heading angle. This is a heuristic nudge, not a vector
// sum, and it is not symmetric around the obstacle; units rely on it as is.
func Avoid(ux, uy, heading float64, obstacles []maplib.Rect) float64 {
	for _, o := range obstacles {
		cx, cy := o.Center()
		dx, dy := cx-ux, cy-uy
		d := math.Sqrt(dx*dx + dy*dy)
		if d < AvoidRadius && d > 0 {
			avoid := math.Atan2(dy, dx) + math.Pi
			heading += AvoidStrength / d * avoid
		}
	}
	return heading
}

// Steer computes the heading and step for a unit chasing (tx, ty) at speed.
// When avoid is false obstacles are ignored entirely.
func Steer(ux, uy, tx, ty, speed float64, obstacles []maplib.Rect, avoid bool) SteerResult {
	heading := Seek(ux, uy, tx, ty)
	if avoid {
		heading = Avoid(ux, uy, heading, obstacles)
	}
	return SteerResult{
		Heading: heading,
		VX:      speed * math.Cos(heading),
		VY:      speed * math.Sin(heading),
	}
}
