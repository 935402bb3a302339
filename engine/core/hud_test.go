package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHotbarMirrorsInventoryAndWeapons(t *testing.T) {
	w := newTestWorld()

	slots := w.Hotbar()
	assert.Equal(t, "0", slots[0].Text)
	assert.False(t, slots[0].Ready)
	for _, s := range slots[1:] {
		assert.Equal(t, "Inactive", s.Text)
		assert.False(t, s.Ready)
	}

	w.Hero.Barrels = 2
	w.Arsenal.Active = WeaponMinigun
	w.Arsenal.Weapon(WeaponMinigun).Ammo = 321

	slots = w.Hotbar()
	assert.Equal(t, "2", slots[0].Text)
	assert.True(t, slots[0].Ready)
	assert.Equal(t, "Inactive", slots[1].Text)
	assert.Equal(t, "Bullets: 321", slots[3].Text)
	assert.True(t, slots[3].Ready)
	assert.Equal(t, 4, slots[3].Key)
}
