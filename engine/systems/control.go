package systems

import (
	"math"

	"github.com/1siamBot/wave-arena/engine/core"
)

// Hotbar slot assignments
const (
	SlotBarrel     = 1
	SlotMachineGun = 2
	SlotPhantom    = 3
	SlotMinigun    = 4
)

// ControlSystem turns the tick's intent into hero actions: modifiers,
// facing, hotbar use and trigger handling
type ControlSystem struct {
	AutoFireInterval float64
}

func (s *ControlSystem) Priority() int { return 0 }

func (s *ControlSystem) Update(w *core.World, _ float64) {
	in := &w.Intent
	h := w.Hero

	h.Dashing = in.Dash
	h.Sprinting = in.Sprint

	if in.AimX != h.X || in.AimY != h.Y {
		h.Facing = math.Atan2(in.AimY-h.Y, in.AimX-h.X)
	}

	for _, slot := range in.Slots {
		UseSlot(w, slot)
	}

	// press before release: a tap inside one tick still fires a single-shot weapon
	if in.TriggerPressed {
		PullTrigger(w, s.interval())
	}
	if in.TriggerReleased {
		ReleaseTrigger(w)
	}
}

func (s *ControlSystem) interval() float64 {
	if s.AutoFireInterval <= 0 {
		return DefaultAutoFireInterval
	}
	return s.AutoFireInterval
}

// UseSlot performs the hotbar action bound to slot
func UseSlot(w *core.World, slot int) {
	switch slot {
	case SlotBarrel:
		PlaceHazard(w)
	case SlotMachineGun:
		ToggleWeapon(w, core.WeaponMachineGun)
	case SlotPhantom:
		ToggleWeapon(w, core.WeaponPhantom)
	case SlotMinigun:
		ToggleWeapon(w, core.WeaponMinigun)
	}
}
