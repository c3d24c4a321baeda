package factory

import (
	"github.com/automoto/treasure-hunt/archetypes"
	"github.com/automoto/treasure-hunt/assets"
	"github.com/automoto/treasure-hunt/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel stores the loaded level layout every round is built from.
func CreateLevel(ecs *ecs.ECS, level assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: level,
	})
	return entry
}
