package core

import "math"

// ---- Position ----

// Position is a point in arena space with a facing direction
type Position struct {
	X, Y   float64
	Facing float64 // direction in radians (0 = east, π/2 = south)
}

// DistanceTo returns euclidean distance to another position
func (p *Position) DistanceTo(other *Position) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// AngleTo returns the angle from this position to another
func (p *Position) AngleTo(other *Position) float64 {
	return math.Atan2(other.Y-p.Y, other.X-p.X)
}

// ---- Enemies ----

// EnemyKind selects an enemy's stat block
type EnemyKind uint8

const (
	EnemyBasic EnemyKind = iota
	EnemyBrute
	EnemyRunner
	EnemyGiant
	EnemyPhantom
	enemyKindCount
)

// EnemyKinds lists every kind in spawn order
var EnemyKinds = [...]EnemyKind{EnemyBasic, EnemyBrute, EnemyRunner, EnemyGiant, EnemyPhantom}

// EnemyStats holds the fixed attributes of an enemy kind
type EnemyStats struct {
	Name            string
	Speed           float64 // pixels per tick
	Health          int
	Damage          float64 // hero health lost per tick of contact
	Size            float64 // side of the square body
	IgnoreObstacles bool
}

var enemyStats = [enemyKindCount]EnemyStats{
	EnemyBasic:   {Name: "basic", Speed: 1, Health: 1, Damage: 0.1, Size: 20},
	EnemyBrute:   {Name: "brute", Speed: 0.5, Health: 3, Damage: 0.2, Size: 30},
	EnemyRunner:  {Name: "runner", Speed: 1.5, Health: 2, Damage: 0.15, Size: 40},
	EnemyGiant:   {Name: "giant", Speed: 0.75, Health: 5, Damage: 0.25, Size: 50},
	EnemyPhantom: {Name: "phantom", Speed: 1, Health: 4, Damage: 0.2, Size: 20, IgnoreObstacles: true},
}

// Stats returns the stat block for k
func (k EnemyKind) Stats() EnemyStats {
	if k >= enemyKindCount {
		return enemyStats[EnemyBasic]
	}
	return enemyStats[k]
}

func (k EnemyKind) String() string { return k.Stats().Name }

// Enemy is a hostile mobile entity
type Enemy struct {
	Position
	Kind     EnemyKind
	Speed    float64
	Health   int
	Damage   float64
	Rotation int // cosmetic, advanced every tick
}

// NewEnemy creates an enemy of kind k at (x, y)
func NewEnemy(k EnemyKind, x, y float64) *Enemy {
	st := k.Stats()
	return &Enemy{
		Position: Position{X: x, Y: y},
		Kind:     k,
		Speed:    st.Speed,
		Health:   st.Health,
		Damage:   st.Damage,
	}
}

// IgnoresObstacles reports whether the enemy walks through obstacles
func (e *Enemy) IgnoresObstacles() bool { return e.Kind.Stats().IgnoreObstacles }

// Hit takes one point of damage and reports whether the enemy is now dead.
// Health never drops below zero.
func (e *Enemy) Hit() bool {
	if e.Health > 0 {
		e.Health--
	}
	return e.Health <= 0
}

// ---- Projectiles & particles ----

// Projectile is a straight-flying shot
type Projectile struct {
	X, Y    float64
	Angle   float64
	Speed   float64
	Phantom bool // passes through obstacles
}

// Advance moves the projectile one tick along its heading
func (p *Projectile) Advance() {
	p.X += p.Speed * math.Cos(p.Angle)
	p.Y += p.Speed * math.Sin(p.Angle)
}

// ParticleColor is the tint of an explosion particle
type ParticleColor uint8

const (
	ParticleRed ParticleColor = iota
	ParticleOrange
)

// Particle is a cosmetic explosion fragment
type Particle struct {
	X, Y  float64
	Angle float64
	Speed float64
	Life  float64
	Color ParticleColor
}

// ---- Pickups & hazards ----

// ItemType identifies what a pickup grants
type ItemType uint8

const (
	ItemBarrel ItemType = iota
	ItemMachineGunAmmo
	ItemPhantomAmmo
	ItemMinigunAmmo
)

// ItemTypes lists every pickup type in hotbar order
var ItemTypes = [...]ItemType{ItemBarrel, ItemMachineGunAmmo, ItemPhantomAmmo, ItemMinigunAmmo}

func (t ItemType) String() string {
	switch t {
	case ItemBarrel:
		return "barrel"
	case ItemMachineGunAmmo:
		return "machine gun ammo"
	case ItemPhantomAmmo:
		return "phantom ammo"
	case ItemMinigunAmmo:
		return "minigun ammo"
	default:
		return "unknown"
	}
}

// Pickup is a collectible lying in the arena
type Pickup struct {
	X, Y float64
	Item ItemType
}

// Hazard is a placed explosive barrel
type Hazard struct {
	X, Y float64
}
