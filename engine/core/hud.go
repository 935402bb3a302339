package core

import "fmt"

// HotbarSlot is the display model of one hotbar cell
type HotbarSlot struct {
	Key   int    // keyboard digit
	Label string
	Text  string
	Ready bool // drawn green when true, red otherwise
}

// Hotbar returns the four hotbar cells: barrels, then the three weapons
func (w *World) Hotbar() [4]HotbarSlot {
	var slots [4]HotbarSlot
	slots[0] = HotbarSlot{
		Key:   1,
		Label: "Barrel",
		Text:  fmt.Sprintf("%d", w.Hero.Barrels),
		Ready: w.Hero.Barrels > 0,
	}
	for i, k := range []WeaponKind{WeaponMachineGun, WeaponPhantom, WeaponMinigun} {
		wp := w.Arsenal.Weapon(k)
		s := HotbarSlot{Key: i + 2, Label: k.String(), Text: "Inactive"}
		if w.Arsenal.IsActive(k) {
			s.Text = fmt.Sprintf("Bullets: %d", wp.Ammo)
			s.Ready = true
		}
		slots[i+1] = s
	}
	return slots
}
