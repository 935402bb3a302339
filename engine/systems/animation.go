package systems

import (
	"math"

	"github.com/1siamBot/wave-arena/engine/core"
)

const (
	BurstParticles = 20
	ParticleDecay  = 0.1
)

// AnimationSystem advances cosmetic particles and drops the spent ones
type AnimationSystem struct{}

func (s *AnimationSystem) Priority() int { return 25 }

func (s *AnimationSystem) Update(w *core.World, _ float64) {
	kept := w.Particles[:0]
	for _, p := range w.Particles {
		p.X += p.Speed * math.Cos(p.Angle)
		p.Y += p.Speed * math.Sin(p.Angle)
		p.Life -= ParticleDecay
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	clearTail(w.Particles, len(kept))
	w.Particles = kept
}

// Burst emits an explosion's worth of particles at (x, y)
func Burst(w *core.World, x, y float64) {
	for i := 0; i < BurstParticles; i++ {
		c := core.ParticleOrange
		p := &core.Particle{
			X:     x,
			Y:     y,
			Angle: w.Rand.Float64() * 2 * math.Pi,
			Speed: w.Rand.Float64()*2 + 1,
			Life:  w.Rand.Float64()*2 + 1,
		}
		if w.Rand.Float64() < 0.5 {
			c = core.ParticleRed
		}
		p.Color = c
		w.Particles = append(w.Particles, p)
	}
}
