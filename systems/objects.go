package systems

import (
	"github.com/automoto/treasure-hunt/components"
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/automoto/treasure-hunt/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollectibles advances coin and powerup animations.
func UpdateCollectibles(e *ecs.ECS) {
	components.Coin.Each(e.World, func(entry *donburi.Entry) {
		components.Coin.Get(entry).Update()
	})
	components.PowerUp.Each(e.World, func(entry *donburi.Entry) {
		components.PowerUp.Get(entry).Update()
	})
}

// UpdateProjectiles moves projectiles, respawning those that left the field.
func UpdateProjectiles(e *ecs.ECS) {
	rng := GetOrCreateSession(e).Rand
	field := cfg.FieldBounds()
	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		components.Projectile.Get(entry).Update(rng, field)
	})
}

// UpdateObjects moves each collision object to its entity's position.
// Must run after every movement system and before UpdateCollisions.
func UpdateObjects(e *ecs.ECS) {
	for entry := range components.Object.Iter(e.World) {
		factory.SyncObject(entry)
	}
}
