package systems

import (
	"github.com/1siamBot/wave-arena/engine/core"
)

// ProjectileSize is the side of the box tested against obstacles
const ProjectileSize = 10.0

// ProjectileSystem moves the hero's projectiles and drops the ones that
// leave the arena or hit an obstacle
type ProjectileSystem struct{}

func (s *ProjectileSystem) Priority() int { return 15 }

func (s *ProjectileSystem) Update(w *core.World, _ float64) {
	h := w.Hero
	kept := h.Projectiles[:0]
	for _, p := range h.Projectiles {
		p.Advance()
		if !w.Arena.Contains(p.X, p.Y) {
			continue
		}
		if !p.Phantom && w.Arena.RectOverlaps(p.X-ProjectileSize/2, p.Y-ProjectileSize/2, ProjectileSize, ProjectileSize) {
			continue
		}
		kept = append(kept, p)
	}
	clearTail(h.Projectiles, len(kept))
	h.Projectiles = kept
}

// clearTail nils out the dropped pointers past n so they can be collected
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
