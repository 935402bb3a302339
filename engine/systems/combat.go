package systems

import (
	"log"
	"math"

	"github.com/1siamBot/wave-arena/engine/core"
	"github.com/1siamBot/wave-arena/engine/maplib"
)

// Combat ranges
const (
	HitRadius           = 10.0
	HazardTriggerRadius = 15.0
	ExplosionRadius     = 75.0
	PickupRadius        = 20.0
	HazardOffset        = 20.0
	HazardSize          = 20.0
)

// CombatSystem resolves projectile hits, barrel detonations and pickups
type CombatSystem struct{}

func (s *CombatSystem) Priority() int { return 30 }

func (s *CombatSystem) Update(w *core.World, _ float64) {
	s.resolveHits(w)
	s.resolveHazards(w)
	s.resolvePickups(w)
}

// resolveHits lets every projectile within range of an enemy land on it.
// Several projectiles may hit the same enemy in one tick.
func (s *CombatSystem) resolveHits(w *core.World) {
	h := w.Hero
	alive := w.Enemies[:0]
	for _, e := range w.Enemies {
		dead := false
		kept := h.Projectiles[:0]
		for _, p := range h.Projectiles {
			if maplib.Distance(p.X, p.Y, e.X, e.Y) < HitRadius {
				dead = e.Hit() || dead
				continue
			}
			kept = append(kept, p)
		}
		clearTail(h.Projectiles, len(kept))
		h.Projectiles = kept

		if dead {
			h.Score++
			w.Emit(core.EvtEnemyKilled, core.KillPayload{Kind: e.Kind})
			continue
		}
		alive = append(alive, e)
	}
	clearTail(w.Enemies, len(alive))
	w.Enemies = alive
}

// resolveHazards detonates every barrel touched by a projectile. Each barrel
// goes off once no matter how many projectiles reach it.
func (s *CombatSystem) resolveHazards(w *core.World) {
	h := w.Hero
	intact := w.Hazards[:0]
	for _, hz := range w.Hazards {
		hit := false
		kept := h.Projectiles[:0]
		for _, p := range h.Projectiles {
			if maplib.Distance(p.X, p.Y, hz.X, hz.Y) < HazardTriggerRadius {
				hit = true
				continue
			}
			kept = append(kept, p)
		}
		clearTail(h.Projectiles, len(kept))
		h.Projectiles = kept

		if hit {
			Detonate(w, hz.X, hz.Y)
			continue
		}
		intact = append(intact, hz)
	}
	clearTail(w.Hazards, len(intact))
	w.Hazards = intact
}

// Detonate explodes a barrel at (x, y): a particle burst plus one point for
// every enemy caught inside the blast radius. It returns the kill count.
func Detonate(w *core.World, x, y float64) int {
	Burst(w, x, y)

	kills := 0
	alive := w.Enemies[:0]
	for _, e := range w.Enemies {
		if maplib.Distance(x, y, e.X, e.Y) < ExplosionRadius {
			kills++
			w.Emit(core.EvtEnemyKilled, core.KillPayload{Kind: e.Kind, Explosion: true})
			continue
		}
		alive = append(alive, e)
	}
	clearTail(w.Enemies, len(alive))
	w.Enemies = alive

	w.Hero.Score += kills
	w.Emit(core.EvtHazardDetonated, kills)
	log.Printf("Barrel detonated at (%.0f, %.0f), %d enemies caught", x, y, kills)
	return kills
}

func (s *CombatSystem) resolvePickups(w *core.World) {
	h := w.Hero
	kept := w.Pickups[:0]
	for _, p := range w.Pickups {
		if maplib.Distance(p.X, p.Y, h.X, h.Y) >= PickupRadius {
			kept = append(kept, p)
			continue
		}
		if p.Item == core.ItemBarrel {
			h.Barrels++
		} else {
			w.Arsenal.Refill(p.Item)
		}
		w.Emit(core.EvtPickupCollected, p.Item)
	}
	clearTail(w.Pickups, len(kept))
	w.Pickups = kept
}

// PlaceHazard drops a barrel HazardOffset ahead of the hero. Nothing happens
// when the hero has no barrels or the spot is inside an obstacle.
func PlaceHazard(w *core.World) bool {
	h := w.Hero
	if h.Barrels <= 0 {
		return false
	}
	x := h.X + HazardOffset*math.Cos(h.Facing)
	y := h.Y + HazardOffset*math.Sin(h.Facing)
	if w.Arena.RectOverlaps(x-HazardSize/2, y-HazardSize/2, HazardSize, HazardSize) {
		return false
	}
	h.Barrels--
	w.Hazards = append(w.Hazards, &core.Hazard{X: x, Y: y})
	w.Emit(core.EvtHazardPlaced, core.Hazard{X: x, Y: y})
	return true
}
