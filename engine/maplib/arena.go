package maplib

import (
	"math"

	"github.com/solarlune/resolv"
)

// Broadphase grid cell size in arena pixels
const cellSize = 32

var tagObstacle = resolv.NewTag("obstacle")

// Rect is an axis-aligned rectangle given by its top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two rectangles intersect (half-open on both axes,
// so rectangles that only share an edge do not overlap)
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Center returns the rectangle's centre point
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenteredRect builds a w×h rectangle centred on (cx, cy)
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Distance returns the euclidean distance between two points
func Distance(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return math.Sqrt(dx*dx + dy*dy)
}

// Arena is the playfield: its bounds and the static obstacles inside it
type Arena struct {
	Width  float64
	Height float64

	obstacles []Rect
	space     *resolv.Space
	shapes    map[resolv.IShape]int // broadphase shape -> index into obstacles
}

// NewArena creates an empty arena of the given size
func NewArena(width, height float64) *Arena {
	return &Arena{
		Width:  width,
		Height: height,
		space:  resolv.NewSpace(int(math.Ceil(width)), int(math.Ceil(height)), cellSize, cellSize),
		shapes: make(map[resolv.IShape]int),
	}
}

// Obstacles returns the current obstacle list. Callers must not modify it.
func (a *Arena) Obstacles() []Rect {
	return a.obstacles
}

// AddObstacle inserts a static obstacle
func (a *Arena) AddObstacle(r Rect) {
	sh := resolv.NewRectangleTopLeft(r.X, r.Y, r.W, r.H)
	sh.Tags().Set(tagObstacle)
	a.space.Add(sh)
	a.shapes[sh] = len(a.obstacles)
	a.obstacles = append(a.obstacles, r)
}

// ClearObstacles removes every obstacle
func (a *Arena) ClearObstacles() {
	for sh := range a.shapes {
		a.space.Remove(sh)
	}
	a.shapes = make(map[resolv.IShape]int)
	a.obstacles = a.obstacles[:0]
}

// RectOverlaps reports whether the query rectangle intersects any obstacle.
// The resolv grid only narrows the candidates; the half-open Rect test
// decides, so containment counts and edge contact does not.
func (a *Arena) RectOverlaps(x, y, w, h float64) bool {
	if len(a.obstacles) == 0 {
		return false
	}
	q := Rect{X: x, Y: y, W: w, H: h}
	if !a.touchesSpace(q) {
		return false
	}

	probe := resolv.NewRectangleTopLeft(x, y, w, h)
	a.space.Add(probe)
	defer a.space.Remove(probe)

	hit := false
	probe.SelectTouchingCells(1).FilterShapes().ByTags(tagObstacle).ForEach(func(sh resolv.IShape) bool {
		if hit {
			return false
		}
		if idx, ok := a.shapes[sh]; ok && q.Overlaps(a.obstacles[idx]) {
			hit = true
		}
		return !hit
	})
	return hit
}

// touchesSpace reports whether a rectangle reaches into the arena at all
func (a *Arena) touchesSpace(r Rect) bool {
	return r.X < a.Width && r.X+r.W > 0 && r.Y < a.Height && r.Y+r.H > 0
}

// Clamp restricts a point to [0,Width]×[0,Height]
func (a *Arena) Clamp(x, y float64) (float64, float64) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x > a.Width {
		x = a.Width
	}
	if y > a.Height {
		y = a.Height
	}
	return x, y
}

// Contains reports whether a point lies strictly inside the arena
func (a *Arena) Contains(x, y float64) bool {
	return x > 0 && x < a.Width && y > 0 && y < a.Height
}
