package ai

import (
	"log"

	"github.com/1siamBot/wave-arena/engine/core"
	"github.com/1siamBot/wave-arena/engine/pathfind"
)

const (
	// ContactRange is how close an enemy must be to hurt the hero
	ContactRange = 20.0
	// rollbackSize is the box tested against obstacles after an enemy steps
	rollbackSize = 20.0
)

// AISystem drives every enemy toward the hero and applies contact damage
type AISystem struct{}

func (s *AISystem) Priority() int { return 20 }

func (s *AISystem) Update(w *core.World, _ float64) {
	h := w.Hero
	obstacles := w.Arena.Obstacles()

	for _, e := range w.Enemies {
		e.Rotation++
		avoid := !e.IgnoresObstacles()

		step := pathfind.Steer(e.X, e.Y, h.X, h.Y, e.Speed, obstacles, avoid)
		e.Facing = step.Heading
		e.X += step.VX
		e.Y += step.VY
		e.X, e.Y = w.Arena.Clamp(e.X, e.Y)

		// undo the step rather than slide
		if avoid && w.Arena.RectOverlaps(e.X-rollbackSize/2, e.Y-rollbackSize/2, rollbackSize, rollbackSize) {
			e.X -= step.VX
			e.Y -= step.VY
		}

		if e.DistanceTo(&h.Position) < ContactRange {
			s.contact(w, e)
		}
	}
}

// contact applies one tick of e's damage. Overlapping enemies stack.
func (s *AISystem) contact(w *core.World, e *core.Enemy) {
	if w.GameOver() {
		return
	}
	dead := w.Hero.TakeDamage(e.Damage)
	w.Emit(core.EvtHeroDamaged, e.Damage)
	if dead && w.EndRun() {
		log.Printf("Hero killed by %s", e.Kind)
	}
}

// Threat sums the contact damage per tick of every enemy within radius of
// the hero, as a rough danger gauge for the HUD
func Threat(w *core.World, radius float64) float64 {
	threat := 0.0
	for _, e := range w.Enemies {
		d := e.DistanceTo(&w.Hero.Position)
		if d <= radius {
			threat += e.Damage * (1.0 - d/radius)
		}
	}
	return threat
}
