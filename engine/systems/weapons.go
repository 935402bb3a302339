package systems

import (
	"log"
	"math"

	"github.com/1siamBot/wave-arena/engine/core"
)

const (
	ProjectileSpeed = 10.0
	// DefaultAutoFireInterval is the minigun cadence (8 shots per second)
	DefaultAutoFireInterval = 0.125
)

// ToggleWeapon selects k, or deselects it when it is already active.
// Whatever happens, the other weapons end up inactive and any running
// auto-fire is cancelled before the mode changes.
func ToggleWeapon(w *core.World, k core.WeaponKind) {
	a := w.Arsenal
	a.StopAutoFire()
	if a.Active == k {
		a.Active = core.WeaponNone
	} else {
		a.Active = k
	}
	state := "deactivated"
	if a.IsActive(k) {
		state = "activated"
	}
	log.Printf("%s %s", k, state)
	w.Emit(core.EvtWeaponChanged, a.Active)
}

// PullTrigger fires the active weapon. Single-shot weapons fire once; an
// auto-fire weapon starts a repeating task that runs until the trigger is
// released, the mode changes or the ammo runs out.
func PullTrigger(w *core.World, autoFireInterval float64) {
	wp := w.Arsenal.Current()
	if wp == nil || wp.Ammo <= 0 {
		return
	}
	if !wp.AutoFire {
		Fire(w, wp)
		return
	}

	kind := wp.Kind
	var task *core.Task
	task = w.Scheduler.Every(autoFireInterval, func() {
		cur := w.Arsenal.Current()
		if cur == nil || cur.Kind != kind || !Fire(w, cur) {
			task.Cancel()
		}
	})
	w.Arsenal.SetAutoFire(task)
}

// ReleaseTrigger stops any auto-fire in progress
func ReleaseTrigger(w *core.World) {
	w.Arsenal.StopAutoFire()
}

// Fire spends one round of wp and launches a projectile from the hero toward
// the aim point. It reports false when wp is out of ammo.
func Fire(w *core.World, wp *core.Weapon) bool {
	if wp.Ammo <= 0 {
		return false
	}
	h := w.Hero
	wp.Ammo--
	h.Projectiles = append(h.Projectiles, &core.Projectile{
		X:       h.X,
		Y:       h.Y,
		Angle:   math.Atan2(w.Intent.AimY-h.Y, w.Intent.AimX-h.X),
		Speed:   ProjectileSpeed,
		Phantom: wp.Phantom,
	})
	w.Emit(core.EvtProjectileFired, wp.Kind)
	return true
}
