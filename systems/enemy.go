package systems

import (
	"github.com/automoto/treasure-hunt/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies advances every enemy's territory patrol.
func UpdateEnemies(e *ecs.ECS) {
	rng := GetOrCreateSession(e).Rand
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		components.Enemy.Get(entry).Update(rng)
	})
}
