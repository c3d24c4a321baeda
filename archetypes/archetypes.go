package archetypes

import (
	"github.com/automoto/treasure-hunt/components"
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/automoto/treasure-hunt/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		tags.Round,
		components.Player,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		tags.Round,
		components.Enemy,
		components.Object,
	)
	Coin = newArchetype(
		tags.Coin,
		tags.Round,
		components.Coin,
		components.Object,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		tags.Round,
		components.PowerUp,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		tags.Round,
		components.Projectile,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Session = newArchetype(
		components.Session,
		components.Countdown,
		components.Menu,
		components.Particles,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
