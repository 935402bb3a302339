package systems

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/wave-arena/engine/core"
	"github.com/1siamBot/wave-arena/engine/maplib"
)

func TestProjectileKinematics(t *testing.T) {
	w := newTestWorld(1)
	const angle, n = 0.3, 20
	w.Hero.Projectiles = []*core.Projectile{{X: 100, Y: 100, Angle: angle, Speed: ProjectileSpeed}}

	sys := &ProjectileSystem{}
	for i := 0; i < n; i++ {
		sys.Update(w, testDT)
	}

	require.Len(t, w.Hero.Projectiles, 1)
	p := w.Hero.Projectiles[0]
	assert.InDelta(t, 100+n*ProjectileSpeed*math.Cos(angle), p.X, 1e-9)
	assert.InDelta(t, 100+n*ProjectileSpeed*math.Sin(angle), p.Y, 1e-9)
}

func TestProjectileLeavesArena(t *testing.T) {
	w := newTestWorld(1)
	w.Hero.Projectiles = []*core.Projectile{
		{X: 795, Y: 300, Angle: 0, Speed: ProjectileSpeed},
		{X: 400, Y: 5, Angle: -math.Pi / 2, Speed: ProjectileSpeed},
		{X: 400, Y: 300, Angle: 0, Speed: ProjectileSpeed},
	}
	(&ProjectileSystem{}).Update(w, testDT)

	require.Len(t, w.Hero.Projectiles, 1)
	assert.Equal(t, 410.0, w.Hero.Projectiles[0].X)
}

func TestProjectileObstacleCollision(t *testing.T) {
	w := newTestWorld(1)
	w.Arena.AddObstacle(maplib.Rect{X: 300, Y: 250, W: 50, H: 100})
	w.Hero.Projectiles = []*core.Projectile{
		{X: 290, Y: 300, Angle: 0, Speed: ProjectileSpeed},
		{X: 290, Y: 300, Angle: 0, Speed: ProjectileSpeed, Phantom: true},
	}
	(&ProjectileSystem{}).Update(w, testDT)

	require.Len(t, w.Hero.Projectiles, 1)
	assert.True(t, w.Hero.Projectiles[0].Phantom, "phantom rounds pass through")
}
