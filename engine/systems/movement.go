package systems

import (
	"github.com/1siamBot/wave-arena/engine/core"
)

// DiagonalFactor keeps diagonal movement from being faster than straight
const DiagonalFactor = 0.707

// MovementSystem moves the hero from the held direction keys
type MovementSystem struct{}

func (s *MovementSystem) Priority() int { return 10 }

func (s *MovementSystem) Update(w *core.World, _ float64) {
	h := w.Hero
	speed := h.Speed * h.SpeedMultiplier()

	dx, dy := w.Intent.Direction()
	vx, vy := dx*speed, dy*speed
	if vx != 0 && vy != 0 {
		vx *= DiagonalFactor
		vy *= DiagonalFactor
	}

	nx, ny := h.X+vx, h.Y+vy
	// blocked moves are dropped whole; there is no sliding along walls
	if !w.Arena.RectOverlaps(nx-core.HeroWidth/2, ny-core.HeroHeight/2, core.HeroWidth, core.HeroHeight) {
		h.X, h.Y = nx, ny
	}

	h.X, h.Y = w.Arena.Clamp(h.X, h.Y)
}
