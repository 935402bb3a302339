package systems

import (
	"log"
	"math"

	"github.com/1siamBot/wave-arena/engine/core"
	"github.com/1siamBot/wave-arena/engine/maplib"
)

const (
	ObstacleMinCount  = 3
	ObstacleMaxCount  = 7
	ObstacleMinSize   = 50.0
	ObstacleSizeRange = 150.0

	// HeroKeepOut is the radius around the hero kept clear at generation time
	HeroKeepOut = 50.0
	// SpawnMargin keeps enemy and pickup spawn points off the arena edge
	SpawnMargin = 20.0
	PickupSize  = 20.0

	DefaultMaxAttempts = 1000

	// fallbackStep is the scan-grid pitch used once random sampling gives up
	fallbackStep = 10.0
)

// Spawner places obstacles, enemy waves and pickups. Every placement is a
// bounded rejection-sampling loop with a deterministic fallback so a
// crowded arena can never stall the tick.
type Spawner struct {
	MaxAttempts int
}

// NewSpawner creates a spawner; maxAttempts <= 0 selects DefaultMaxAttempts
func NewSpawner(maxAttempts int) *Spawner {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Spawner{MaxAttempts: maxAttempts}
}

// WaveComposition returns how many enemies of each kind wave w brings
func WaveComposition(wave int) map[core.EnemyKind]int {
	phantoms := wave
	if wave%10 == 0 {
		phantoms = 20
	}
	return map[core.EnemyKind]int{
		core.EnemyBasic:   5 * wave,
		core.EnemyBrute:   int(math.Floor(2 * float64(wave))),
		core.EnemyRunner:  wave,
		core.EnemyGiant:   int(math.Floor(float64(wave) / 2)),
		core.EnemyPhantom: phantoms,
	}
}

// GenerateObstacles replaces the arena's obstacles with 3–7 fresh ones that
// overlap neither each other nor the keep-out circle around the hero.
// It returns how many were placed.
func (s *Spawner) GenerateObstacles(w *core.World) int {
	a := w.Arena
	a.ClearObstacles()

	want := ObstacleMinCount + w.Rand.Intn(ObstacleMaxCount-ObstacleMinCount+1)
	for i := 0; i < want; i++ {
		width := w.Rand.Float64()*ObstacleSizeRange + ObstacleMinSize
		height := w.Rand.Float64()*ObstacleSizeRange + ObstacleMinSize

		placed := false
		for attempt := 0; attempt < s.MaxAttempts; attempt++ {
			r := maplib.Rect{
				X: w.Rand.Float64() * (a.Width - width),
				Y: w.Rand.Float64() * (a.Height - height),
				W: width,
				H: height,
			}
			if a.RectOverlaps(r.X, r.Y, r.W, r.H) {
				continue
			}
			if rectPointDistance(r, w.Hero.X, w.Hero.Y) < HeroKeepOut {
				continue
			}
			a.AddObstacle(r)
			placed = true
			break
		}
		if !placed {
			log.Printf("spawn: dropped obstacle %d of %d after %d attempts", i+1, want, s.MaxAttempts)
		}
	}

	s.pruneBlocked(w)
	return len(a.Obstacles())
}

// SpawnWave populates the current wave's enemies and pickups and returns
// the number of enemies added
func (s *Spawner) SpawnWave(w *core.World) int {
	n := s.SpawnEnemies(w, w.Run.Wave)
	s.SpawnPickups(w)
	return n
}

// SpawnEnemies adds wave's enemies and returns how many were added
func (s *Spawner) SpawnEnemies(w *core.World, wave int) int {
	comp := WaveComposition(wave)
	total := 0
	for _, kind := range core.EnemyKinds {
		st := kind.Stats()
		blocked := func(x, y float64) bool {
			if st.IgnoreObstacles {
				return maplib.Distance(x, y, w.Hero.X, w.Hero.Y) < HeroKeepOut
			}
			return w.Arena.RectOverlaps(x-st.Size/2, y-st.Size/2, st.Size, st.Size)
		}
		for i := 0; i < comp[kind]; i++ {
			x, y := s.sample(w, blocked, kind.String())
			w.Enemies = append(w.Enemies, core.NewEnemy(kind, x, y))
			total++
		}
	}
	return total
}

// SpawnPickups adds one pickup of every item type
func (s *Spawner) SpawnPickups(w *core.World) {
	blocked := func(x, y float64) bool {
		return w.Arena.RectOverlaps(x-PickupSize/2, y-PickupSize/2, PickupSize, PickupSize)
	}
	for _, item := range core.ItemTypes {
		x, y := s.sample(w, blocked, item.String())
		w.Pickups = append(w.Pickups, &core.Pickup{X: x, Y: y, Item: item})
	}
}

// sample draws spawn points until one is not blocked. After MaxAttempts it
// scans a fixed grid for the first free point, and failing that accepts the
// last random draw.
func (s *Spawner) sample(w *core.World, blocked func(x, y float64) bool, what string) (float64, float64) {
	a := w.Arena
	var x, y float64
	for attempt := 0; attempt < s.MaxAttempts; attempt++ {
		x = w.Rand.Float64()*(a.Width-2*SpawnMargin) + SpawnMargin
		y = w.Rand.Float64()*(a.Height-2*SpawnMargin) + SpawnMargin
		if !blocked(x, y) {
			return x, y
		}
	}

	for gy := SpawnMargin; gy < a.Height-SpawnMargin; gy += fallbackStep {
		for gx := SpawnMargin; gx < a.Width-SpawnMargin; gx += fallbackStep {
			if !blocked(gx, gy) {
				log.Printf("spawn: %s placed by grid scan after %d attempts", what, s.MaxAttempts)
				return gx, gy
			}
		}
	}

	log.Printf("spawn: no free spot for %s, placing at (%.0f, %.0f) anyway", what, x, y)
	return x, y
}

// pruneBlocked drops pickups and hazards that new obstacles now cover
func (s *Spawner) pruneBlocked(w *core.World) {
	pickups := w.Pickups[:0]
	for _, p := range w.Pickups {
		if !w.Arena.RectOverlaps(p.X-PickupSize/2, p.Y-PickupSize/2, PickupSize, PickupSize) {
			pickups = append(pickups, p)
		}
	}
	w.Pickups = pickups

	hazards := w.Hazards[:0]
	for _, hz := range w.Hazards {
		if !w.Arena.RectOverlaps(hz.X-HazardSize/2, hz.Y-HazardSize/2, HazardSize, HazardSize) {
			hazards = append(hazards, hz)
		}
	}
	w.Hazards = hazards
}

// rectPointDistance returns the distance from (px, py) to the closest point of r
func rectPointDistance(r maplib.Rect, px, py float64) float64 {
	cx := math.Max(r.X, math.Min(px, r.X+r.W))
	cy := math.Max(r.Y, math.Min(py, r.Y+r.H))
	return maplib.Distance(px, py, cx, cy)
}
