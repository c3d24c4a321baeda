package factory

import (
	"image"
	"math/rand"

	"github.com/automoto/treasure-hunt/archetypes"
	"github.com/automoto/treasure-hunt/components"
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/automoto/treasure-hunt/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a pirate at the center of its territory.
func CreateEnemy(ecs *ecs.ECS, territory image.Rectangle, rng *rand.Rand) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	data := components.NewEnemyData(territory, rng)
	components.Enemy.SetValue(enemy, data)
	attachObject(ecs, enemy, data.Pos, cfg.Enemy.FallbackSize, tags.ResolvEnemy)

	return enemy
}
