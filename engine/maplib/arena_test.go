package maplib

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectOverlapsHalfOpen(t *testing.T) {
	base := Rect{X: 100, Y: 100, W: 50, H: 50}

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", Rect{X: 110, Y: 110, W: 10, H: 10}, true},
		{"partial", Rect{X: 140, Y: 140, W: 20, H: 20}, true},
		{"covering", Rect{X: 0, Y: 0, W: 400, H: 400}, true},
		{"touching right edge", Rect{X: 150, Y: 100, W: 10, H: 10}, false},
		{"touching bottom edge", Rect{X: 100, Y: 150, W: 10, H: 10}, false},
		{"touching left edge", Rect{X: 90, Y: 120, W: 10, H: 10}, false},
		{"disjoint", Rect{X: 300, Y: 300, W: 10, H: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.r))
			assert.Equal(t, tt.want, tt.r.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestArenaRectOverlaps(t *testing.T) {
	a := NewArena(800, 600)
	assert.False(t, a.RectOverlaps(0, 0, 800, 600), "empty arena has nothing to hit")

	a.AddObstacle(Rect{X: 200, Y: 200, W: 100, H: 60})
	a.AddObstacle(Rect{X: 500, Y: 50, W: 80, H: 200})

	assert.True(t, a.RectOverlaps(190, 190, 20, 20))
	assert.True(t, a.RectOverlaps(540, 240, 5, 5))
	assert.False(t, a.RectOverlaps(300, 200, 20, 20), "edge contact is not overlap")
	assert.False(t, a.RectOverlaps(10, 10, 20, 20))
	assert.False(t, a.RectOverlaps(-50, -50, 20, 20), "outside the arena")

	a.ClearObstacles()
	assert.Empty(t, a.Obstacles())
	assert.False(t, a.RectOverlaps(190, 190, 20, 20))
}

func TestArenaRectOverlapsContainment(t *testing.T) {
	a := NewArena(800, 600)
	a.AddObstacle(Rect{X: 100, Y: 100, W: 200, H: 200})

	assert.True(t, a.RectOverlaps(190, 190, 20, 20), "query inside the obstacle")
	assert.True(t, a.RectOverlaps(50, 50, 400, 400), "query covering the obstacle")
	assert.True(t, a.RectOverlaps(100, 100, 200, 200), "query equal to the obstacle")
	assert.False(t, a.RectOverlaps(300, 100, 40, 200), "flush against the right edge")
}

func TestArenaRectOverlapsMatchesLinearScan(t *testing.T) {
	a := NewArena(640, 480)
	obstacles := []Rect{
		{X: 30, Y: 40, W: 120, H: 90},
		{X: 400, Y: 300, W: 55, H: 170},
		{X: 250, Y: 10, W: 64, H: 64},
	}
	for _, o := range obstacles {
		a.AddObstacle(o)
	}

	for x := -20.0; x < 660; x += 13 {
		for y := -20.0; y < 500; y += 11 {
			q := Rect{X: x, Y: y, W: 20, H: 20}
			want := false
			for _, o := range obstacles {
				if q.Overlaps(o) {
					want = true
					break
				}
			}
			require.Equal(t, want, a.RectOverlaps(q.X, q.Y, q.W, q.H), "query %+v", q)
		}
	}
}

func TestArenaClampAndContains(t *testing.T) {
	a := NewArena(800, 600)

	x, y := a.Clamp(-5, 700)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 600.0, y)

	x, y = a.Clamp(400, 300)
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 300.0, y)

	assert.True(t, a.Contains(1, 1))
	assert.False(t, a.Contains(0, 300), "boundary is outside")
	assert.False(t, a.Contains(800, 300))
}

func TestDistanceAndCenter(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(0, 0, 3, 4), 1e-12)
	assert.InDelta(t, math.Sqrt2, Distance(1, 1, 2, 2), 1e-12)

	cx, cy := Rect{X: 10, Y: 20, W: 30, H: 40}.Center()
	assert.Equal(t, 25.0, cx)
	assert.Equal(t, 40.0, cy)

	assert.Equal(t, Rect{X: 90, Y: 80, W: 20, H: 40}, CenteredRect(100, 100, 20, 40))
}
