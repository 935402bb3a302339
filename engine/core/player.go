package core

const (
	HeroStartHealth = 100.0
	HeroBaseSpeed   = 2.0
	HeroWidth       = 20.0
	HeroHeight      = 40.0
)

// Hero is the player-controlled entity
type Hero struct {
	Position
	Speed       float64
	Health      float64
	Score       int
	Barrels     int
	Dashing     bool
	Sprinting   bool
	Projectiles []*Projectile
}

// NewHero creates a hero at (x, y) with full health
func NewHero(x, y float64) *Hero {
	return &Hero{
		Position: Position{X: x, Y: y},
		Speed:    HeroBaseSpeed,
		Health:   HeroStartHealth,
	}
}

// SpeedMultiplier returns the movement multiplier of the held modifiers.
// Dash wins over sprint; they do not stack.
func (h *Hero) SpeedMultiplier() float64 {
	switch {
	case h.Dashing:
		return 3
	case h.Sprinting:
		return 2
	default:
		return 1
	}
}

// TakeDamage lowers health, clamping at zero, and reports whether the hero is dead
func (h *Hero) TakeDamage(d float64) bool {
	h.Health -= d
	if h.Health <= 0 {
		h.Health = 0
		return true
	}
	return false
}

// Reset restores the hero to the start-of-run state, keeping its position
func (h *Hero) Reset() {
	h.Speed = HeroBaseSpeed
	h.Health = HeroStartHealth
	h.Score = 0
	h.Barrels = 0
	h.Dashing = false
	h.Sprinting = false
	h.Projectiles = h.Projectiles[:0]
}

// ---- Weapons ----

// WeaponKind identifies one of the hero's guns
type WeaponKind int8

const (
	WeaponNone WeaponKind = iota - 1
	WeaponMachineGun
	WeaponPhantom
	WeaponMinigun
	weaponCount
)

func (k WeaponKind) String() string {
	switch k {
	case WeaponMachineGun:
		return "Machine Gun"
	case WeaponPhantom:
		return "Phantom Bullets"
	case WeaponMinigun:
		return "Minigun"
	default:
		return "None"
	}
}

// Weapon is an ammo pool plus how the gun fires
type Weapon struct {
	Kind     WeaponKind
	Ammo     int
	MaxAmmo  int
	Phantom  bool // shots pass through obstacles
	AutoFire bool // fires repeatedly while the trigger is held
}

// Refill tops the ammo pool up to its maximum
func (w *Weapon) Refill() { w.Ammo = w.MaxAmmo }

// Arsenal holds the three weapons and which one is active
type Arsenal struct {
	Weapons  [weaponCount]Weapon
	Active   WeaponKind
	autoFire *Task
}

// NewArsenal returns an arsenal with full ammo and nothing selected
func NewArsenal() *Arsenal {
	a := &Arsenal{}
	a.Reset()
	return a
}

// Reset restores full ammo, deselects everything and cancels auto-fire
func (a *Arsenal) Reset() {
	a.StopAutoFire()
	a.Weapons = [weaponCount]Weapon{
		WeaponMachineGun: {Kind: WeaponMachineGun, MaxAmmo: 100},
		WeaponPhantom:    {Kind: WeaponPhantom, MaxAmmo: 100, Phantom: true},
		WeaponMinigun:    {Kind: WeaponMinigun, MaxAmmo: 500, AutoFire: true},
	}
	for i := range a.Weapons {
		a.Weapons[i].Refill()
	}
	a.Active = WeaponNone
}

// Weapon returns the weapon of kind k, or nil for WeaponNone
func (a *Arsenal) Weapon(k WeaponKind) *Weapon {
	if k < 0 || k >= weaponCount {
		return nil
	}
	return &a.Weapons[k]
}

// Current returns the active weapon, or nil when none is selected
func (a *Arsenal) Current() *Weapon {
	return a.Weapon(a.Active)
}

// IsActive reports whether k is the selected weapon
func (a *Arsenal) IsActive(k WeaponKind) bool {
	return k != WeaponNone && a.Active == k
}

// SetAutoFire stores the running auto-fire task, cancelling any previous one
func (a *Arsenal) SetAutoFire(t *Task) {
	a.StopAutoFire()
	a.autoFire = t
}

// AutoFiring reports whether an auto-fire task is pending
func (a *Arsenal) AutoFiring() bool {
	return a.autoFire != nil && !a.autoFire.Cancelled()
}

// StopAutoFire cancels the pending auto-fire task, if any
func (a *Arsenal) StopAutoFire() {
	if a.autoFire != nil {
		a.autoFire.Cancel()
		a.autoFire = nil
	}
}

// Refill tops up the weapon the pickup item feeds
func (a *Arsenal) Refill(item ItemType) {
	switch item {
	case ItemMachineGunAmmo:
		a.Weapons[WeaponMachineGun].Refill()
	case ItemPhantomAmmo:
		a.Weapons[WeaponPhantom].Refill()
	case ItemMinigunAmmo:
		a.Weapons[WeaponMinigun].Refill()
	}
}
