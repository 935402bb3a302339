package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/wave-arena/engine/core"
	"github.com/1siamBot/wave-arena/engine/maplib"
)

const testDT = 1.0 / 60

func newTestWorld(seed int64) *core.World {
	return core.NewWorld(maplib.NewArena(800, 600), 60, seed)
}

func TestGenerateObstaclesKeepsInvariants(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		w := newTestWorld(seed)
		n := NewSpawner(0).GenerateObstacles(w)
		obs := w.Arena.Obstacles()

		require.Equal(t, n, len(obs))
		assert.GreaterOrEqual(t, n, ObstacleMinCount, "seed %d", seed)
		assert.LessOrEqual(t, n, ObstacleMaxCount, "seed %d", seed)

		for i, a := range obs {
			assert.GreaterOrEqual(t, a.W, ObstacleMinSize)
			assert.Less(t, a.W, ObstacleMinSize+ObstacleSizeRange)
			assert.GreaterOrEqual(t, a.H, ObstacleMinSize)
			assert.Less(t, a.H, ObstacleMinSize+ObstacleSizeRange)
			assert.GreaterOrEqual(t, rectPointDistance(a, w.Hero.X, w.Hero.Y), HeroKeepOut,
				"seed %d: obstacle %d intrudes on the hero", seed, i)
			for j := i + 1; j < len(obs); j++ {
				assert.False(t, a.Overlaps(obs[j]), "seed %d: obstacles %d and %d overlap", seed, i, j)
			}
		}
	}
}

func TestGenerateObstaclesReplacesPrevious(t *testing.T) {
	w := newTestWorld(3)
	s := NewSpawner(0)
	s.GenerateObstacles(w)
	first := append([]maplib.Rect(nil), w.Arena.Obstacles()...)

	s.GenerateObstacles(w)
	assert.LessOrEqual(t, len(w.Arena.Obstacles()), ObstacleMaxCount)
	assert.NotEqual(t, first, w.Arena.Obstacles())
}

func TestGenerateObstaclesPrunesCoveredItems(t *testing.T) {
	w := newTestWorld(5)
	s := NewSpawner(0)
	s.GenerateObstacles(w)
	o := w.Arena.Obstacles()[0]
	cx, cy := o.Center()
	w.Pickups = append(w.Pickups, &core.Pickup{X: cx, Y: cy, Item: core.ItemBarrel})
	w.Hazards = append(w.Hazards, &core.Hazard{X: cx, Y: cy})

	s.pruneBlocked(w)
	assert.Empty(t, w.Pickups)
	assert.Empty(t, w.Hazards)
}

func TestWaveComposition(t *testing.T) {
	tests := []struct {
		wave, basic, brute, runner, giant, phantom int
	}{
		{1, 5, 2, 1, 0, 1},
		{2, 10, 4, 2, 1, 2},
		{3, 15, 6, 3, 1, 3},
		{9, 45, 18, 9, 4, 9},
		{10, 50, 20, 10, 5, 20},
		{11, 55, 22, 11, 5, 11},
		{20, 100, 40, 20, 10, 20},
	}
	for _, tt := range tests {
		c := WaveComposition(tt.wave)
		assert.Equal(t, tt.basic, c[core.EnemyBasic], "wave %d basic", tt.wave)
		assert.Equal(t, tt.brute, c[core.EnemyBrute], "wave %d brute", tt.wave)
		assert.Equal(t, tt.runner, c[core.EnemyRunner], "wave %d runner", tt.wave)
		assert.Equal(t, tt.giant, c[core.EnemyGiant], "wave %d giant", tt.wave)
		assert.Equal(t, tt.phantom, c[core.EnemyPhantom], "wave %d phantom", tt.wave)
	}
}

func TestSpawnEnemiesMatchesComposition(t *testing.T) {
	for _, wave := range []int{1, 4, 10} {
		w := newTestWorld(int64(wave))
		s := NewSpawner(0)
		s.GenerateObstacles(w)

		n := s.SpawnEnemies(w, wave)
		require.Equal(t, n, len(w.Enemies))

		counts := map[core.EnemyKind]int{}
		for _, e := range w.Enemies {
			counts[e.Kind]++
			st := e.Kind.Stats()
			assert.Equal(t, st.Health, e.Health)
			assert.GreaterOrEqual(t, e.X, SpawnMargin)
			assert.Less(t, e.X, w.Arena.Width-SpawnMargin)
			if e.IgnoresObstacles() {
				assert.GreaterOrEqual(t, e.DistanceTo(&w.Hero.Position), HeroKeepOut)
				continue
			}
			assert.False(t, w.Arena.RectOverlaps(e.X-st.Size/2, e.Y-st.Size/2, st.Size, st.Size),
				"%s spawned inside an obstacle", e.Kind)
		}

		want := WaveComposition(wave)
		for _, k := range core.EnemyKinds {
			assert.Equal(t, want[k], counts[k], "wave %d %s", wave, k)
		}
	}
}

// overlapsAny checks a box against the obstacles directly, without the
// arena broadphase
func overlapsAny(obs []maplib.Rect, box maplib.Rect) bool {
	for _, o := range obs {
		if box.Overlaps(o) {
			return true
		}
	}
	return false
}

func TestSpawnAvoidsLargeObstacles(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		w := newTestWorld(seed)
		// each obstacle can swallow a giant or a pickup whole
		w.Arena.AddObstacle(maplib.Rect{X: 40, Y: 40, W: 300, H: 220})
		w.Arena.AddObstacle(maplib.Rect{X: 460, Y: 330, W: 300, H: 250})
		obs := w.Arena.Obstacles()
		s := NewSpawner(0)

		s.SpawnEnemies(w, 4)
		s.SpawnPickups(w)

		for _, e := range w.Enemies {
			if e.IgnoresObstacles() {
				continue
			}
			size := e.Kind.Stats().Size
			assert.False(t, overlapsAny(obs, maplib.CenteredRect(e.X, e.Y, size, size)),
				"seed %d: %s spawned inside an obstacle", seed, e.Kind)
		}
		for _, p := range w.Pickups {
			assert.False(t, overlapsAny(obs, maplib.CenteredRect(p.X, p.Y, PickupSize, PickupSize)),
				"seed %d: pickup %v inside an obstacle", seed, p.Item)
		}
	}
}

func TestSpawnPickupsOneOfEach(t *testing.T) {
	w := newTestWorld(9)
	s := NewSpawner(0)
	s.GenerateObstacles(w)
	s.SpawnPickups(w)

	require.Len(t, w.Pickups, len(core.ItemTypes))
	for i, p := range w.Pickups {
		assert.Equal(t, core.ItemTypes[i], p.Item)
		assert.False(t, w.Arena.RectOverlaps(p.X-PickupSize/2, p.Y-PickupSize/2, PickupSize, PickupSize))
	}
}

func TestSampleFallsBackToGridScan(t *testing.T) {
	w := core.NewWorld(maplib.NewArena(200, 200), 60, 1)
	// only a strip along the bottom is free
	w.Arena.AddObstacle(maplib.Rect{X: 0, Y: 0, W: 200, H: 150})
	s := NewSpawner(1)

	s.SpawnPickups(w)
	require.Len(t, w.Pickups, 4)
	for _, p := range w.Pickups {
		assert.False(t, w.Arena.RectOverlaps(p.X-PickupSize/2, p.Y-PickupSize/2, PickupSize, PickupSize))
	}
}

func TestSampleRelaxesWhenNothingFits(t *testing.T) {
	w := core.NewWorld(maplib.NewArena(100, 100), 60, 1)
	w.Arena.AddObstacle(maplib.Rect{X: 0, Y: 0, W: 100, H: 100})
	s := NewSpawner(5)

	s.SpawnPickups(w)
	assert.Len(t, w.Pickups, 4, "placement must terminate even when the arena is full")
	n := s.SpawnEnemies(w, 1)
	assert.Equal(t, 9, n)
}

func TestRectPointDistance(t *testing.T) {
	r := maplib.Rect{X: 10, Y: 10, W: 20, H: 20}
	assert.Zero(t, rectPointDistance(r, 15, 15))
	assert.InDelta(t, 5.0, rectPointDistance(r, 35, 20), 1e-9)
	assert.InDelta(t, 5.0, rectPointDistance(r, 33, 34), 1e-9)
}
