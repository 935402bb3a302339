package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/1siamBot/wave-arena/engine/core"
)

func TestEveryKindHasAColour(t *testing.T) {
	for _, k := range core.EnemyKinds {
		_, ok := EnemyColors[k]
		assert.True(t, ok, "enemy %s", k)
	}
	for _, it := range core.ItemTypes {
		_, ok := PickupColors[it]
		assert.True(t, ok, "pickup %s", it)
	}
	assert.Len(t, ParticleColors, 2)
}

func TestProjectileColour(t *testing.T) {
	assert.NotEqual(t, ProjectileColor(&core.Projectile{}), ProjectileColor(&core.Projectile{Phantom: true}))
}

func TestHealthBarFill(t *testing.T) {
	assert.Equal(t, float32(40), HealthBarFill(100))
	assert.Equal(t, float32(20), HealthBarFill(50))
	assert.Equal(t, float32(0), HealthBarFill(0))
	assert.Equal(t, float32(0), HealthBarFill(-3))
}
