package factory

import (
	"math/rand"

	"github.com/automoto/treasure-hunt/archetypes"
	"github.com/automoto/treasure-hunt/components"
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/automoto/treasure-hunt/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a cannonball on a random field edge.
func CreateProjectile(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(ecs)

	var data components.ProjectileData
	data.Reset(rng, cfg.FieldBounds())
	components.Projectile.SetValue(projectile, data)
	attachObject(ecs, projectile, data.Pos, 2*cfg.Projectile.Radius, tags.ResolvProjectile)

	return projectile
}
